package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/expense/internal/model"
)

// ChaseParser parses Chase bank checking CSV exports. Columns are found by
// header name, so reordered or extended exports still parse.
type ChaseParser struct{}

const chaseDateFormat = "01/02/2006"

// Chase export column names.
const (
	chaseColDetails = "Details"
	chaseColDate    = "Posting Date"
	chaseColDesc    = "Description"
	chaseColAmount  = "Amount"
	chaseColType    = "Type"
)

// chaseCategories suggests a ledger category for a Chase transaction type.
var chaseCategories = map[string]string{
	"BILLPAY":         model.CategoryUtilities,
	"LOAN_PMT":        model.CategoryUtilities,
	"ATM":             model.CategoryOther,
	"FEE_TRANSACTION": model.CategoryOther,
}

// chaseLayout holds the position of each column the parser reads.
type chaseLayout struct {
	details, date, desc, amount, typ int
	width                            int // fields a row needs
}

func newChaseLayout(header []string) (chaseLayout, error) {
	pos := make(map[string]int, len(header))
	for i, name := range header {
		pos[strings.TrimSpace(name)] = i
	}

	var layout chaseLayout
	for _, c := range []struct {
		name string
		dst  *int
	}{
		{chaseColDetails, &layout.details},
		{chaseColDate, &layout.date},
		{chaseColDesc, &layout.desc},
		{chaseColAmount, &layout.amount},
		{chaseColType, &layout.typ},
	} {
		i, ok := pos[c.name]
		if !ok {
			return chaseLayout{}, fmt.Errorf("missing column %q", c.name)
		}
		*c.dst = i
		layout.width = max(layout.width, i+1)
	}
	return layout, nil
}

// Format returns the parser name.
func (p *ChaseParser) Format() string { return "chase" }

// Parse reads a Chase CSV and returns one entry per row. Any bad row fails
// the whole file.
func (p *ChaseParser) Parse(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	// Chase leaves the trailing check number column off some rows.
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading chase CSV: %w", err)
	}
	layout, err := newChaseLayout(header)
	if err != nil {
		return nil, fmt.Errorf("reading chase CSV: %w", err)
	}

	var entries []Entry
	for row := 2; ; row++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading chase CSV: %w", err)
		}

		e, err := layout.entry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func (l chaseLayout) entry(rec []string) (Entry, error) {
	if len(rec) < l.width {
		return Entry{}, fmt.Errorf("expected at least %d fields, got %d", l.width, len(rec))
	}

	date, err := time.Parse(chaseDateFormat, strings.TrimSpace(rec[l.date]))
	if err != nil {
		return Entry{}, fmt.Errorf("parsing date %q: %w", rec[l.date], err)
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(rec[l.amount]))
	if err != nil {
		return Entry{}, fmt.Errorf("parsing amount %q: %w", rec[l.amount], err)
	}

	e := Entry{
		Date:        date.Format(DateFormat),
		Description: rec[l.desc],
		Category:    chaseCategories[strings.ToUpper(strings.TrimSpace(rec[l.typ]))],
	}

	// Details names the side; the sign only decides for unknown details.
	switch strings.ToUpper(strings.TrimSpace(rec[l.details])) {
	case "CREDIT", "DSLIP":
		e.Credited = amount.Abs().String()
	case "DEBIT", "CHECK":
		e.Debited = amount.Abs().String()
	default:
		if amount.IsNegative() {
			e.Debited = amount.Neg().String()
		} else {
			e.Credited = amount.String()
		}
	}
	return e, nil
}
