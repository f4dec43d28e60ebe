package importer

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/cleared-dev/expense/internal/ledger"
	"github.com/cleared-dev/expense/internal/model"
)

// DateFormat is how statement dates are written into the ledger.
const DateFormat = "2006-01-02"

// Entry is a statement row in the shape Ledger.Append takes.
type Entry struct {
	Date        string
	Description string
	Credited    string
	Debited     string
	Category    string // suggested by the statement, empty when unknown
}

// Parser converts a bank statement CSV into entries.
type Parser interface {
	Parse(r io.Reader) ([]Entry, error)
	Format() string
}

// Registry holds named parsers.
type Registry struct {
	parsers map[string]Parser
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]Parser)}
}

// Register adds a parser. Panics on duplicate format.
func (r *Registry) Register(p Parser) {
	key := strings.ToLower(p.Format())
	if _, ok := r.parsers[key]; ok {
		panic("duplicate parser format: " + key)
	}
	r.parsers[key] = p
}

// Get returns the parser for format, or nil.
func (r *Registry) Get(format string) Parser {
	return r.parsers[strings.ToLower(format)]
}

// Formats returns the registered format names, sorted.
func (r *Registry) Formats() []string {
	names := make([]string, 0, len(r.parsers))
	for k := range r.parsers {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// DefaultRegistry returns a registry with all built-in parsers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&ChaseParser{})
	return r
}

// Apply appends entries to the ledger in order and returns the recorded
// transactions. A non-blank category overrides every entry's suggestion;
// entries without either land in "Other".
func Apply(l *ledger.Ledger, entries []Entry, category string) ([]model.Transaction, error) {
	override := strings.TrimSpace(category)

	added := make([]model.Transaction, 0, len(entries))
	for i, e := range entries {
		cat := override
		if cat == "" {
			cat = model.NormalizeCategory(e.Category)
		}

		txn, err := l.Append(e.Date, e.Credited, e.Debited, cat)
		if err != nil {
			return added, fmt.Errorf("entry %d: %w", i+1, err)
		}
		added = append(added, txn)
	}
	return added, nil
}
