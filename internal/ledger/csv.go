package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
)

// Header is the CSV header of a ledger file.
const Header = "Date,Credited,Debited,Amount,Account Balance,Category"

// ReadRecords reads every CSV record from r, header included. Rows may have
// any number of fields; LoadAll handles short rows.
func ReadRecords(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading ledger CSV: %w", err)
	}
	return records, nil
}

// WriteRecords writes records to w using standard CSV quoting.
func WriteRecords(w io.Writer, records [][]string) error {
	cw := csv.NewWriter(w)
	for i, rec := range records {
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Read parses a ledger file into a new Ledger.
func Read(r io.Reader) (*Ledger, error) {
	records, err := ReadRecords(r)
	if err != nil {
		return nil, err
	}
	l := New()
	if err := l.LoadAll(records); err != nil {
		return nil, err
	}
	return l, nil
}

// Write writes the ledger as CSV, header included.
func Write(w io.Writer, l *Ledger) error {
	return WriteRecords(w, l.Serialize())
}
