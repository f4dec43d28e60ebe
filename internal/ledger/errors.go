package ledger

import (
	"errors"
	"fmt"
)

// ErrEmptyLedger is returned when totals are requested from a ledger with no entries.
var ErrEmptyLedger = errors.New("no expenses to visualize")

// ValidationError reports missing or unusable input, detected before any parsing.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ParseError reports a non-numeric value where a number was required.
type ParseError struct {
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s %q: must be a number", e.Field, e.Value)
}

func (e *ParseError) Unwrap() error { return e.Err }

// SchemaError reports a ledger file that lacks a required column.
type SchemaError struct {
	Column string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("missing column in CSV: %s", e.Column)
}
