package ledger

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/expense/internal/model"
)

// Column names of a ledger file, in file order.
const (
	ColDate     = "Date"
	ColCredited = "Credited"
	ColDebited  = "Debited"
	ColAmount   = "Amount"
	ColBalance  = "Account Balance"
	ColCategory = "Category"
)

// Columns returns the required ledger columns in file order.
func Columns() []string {
	return []string{ColDate, ColCredited, ColDebited, ColAmount, ColBalance, ColCategory}
}

// Ledger is an ordered list of transactions and the current account balance.
// The zero value is an empty ledger ready to use.
type Ledger struct {
	txns    []model.Transaction
	balance decimal.Decimal
}

// New returns an empty ledger.
func New() *Ledger {
	return &Ledger{}
}

// Len returns the number of transactions.
func (l *Ledger) Len() int { return len(l.txns) }

// Balance returns the current account balance.
func (l *Ledger) Balance() decimal.Decimal { return l.balance }

// Transactions returns a copy of all transactions in entry order.
func (l *Ledger) Transactions() []model.Transaction {
	out := make([]model.Transaction, len(l.txns))
	copy(out, l.txns)
	return out
}

// Append validates and parses raw user input, records the transaction and
// returns it. Empty credited or debited values count as zero, but at least
// one of them must be given. The ledger is unchanged on error.
func (l *Ledger) Append(date, credited, debited, category string) (model.Transaction, error) {
	date = strings.TrimSpace(date)
	credited = strings.TrimSpace(credited)
	debited = strings.TrimSpace(debited)
	category = strings.TrimSpace(category)

	if date == "" {
		return model.Transaction{}, &ValidationError{Field: "date", Reason: "required"}
	}
	if category == "" || category == model.CategoryUnselected {
		return model.Transaction{}, &ValidationError{Field: "category", Reason: "select a category"}
	}
	if credited == "" && debited == "" {
		return model.Transaction{}, &ValidationError{Field: "amount", Reason: "credited or debited is required"}
	}

	cr, err := parseAmount("credited", credited)
	if err != nil {
		return model.Transaction{}, err
	}
	db, err := parseAmount("debited", debited)
	if err != nil {
		return model.Transaction{}, err
	}

	amount := cr.Sub(db)
	txn := model.Transaction{
		Date:     date,
		Credited: cr,
		Debited:  db,
		Amount:   amount,
		Balance:  l.balance.Add(amount),
		Category: model.NormalizeCategory(category),
	}
	l.txns = append(l.txns, txn)
	l.balance = txn.Balance
	return txn, nil
}

func parseAmount(field, raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, &ParseError{Field: field, Value: raw, Err: err}
	}
	return d, nil
}

// LoadAll replaces the ledger with the given records. records[0] must be a
// header naming every column in Columns (any order, extra columns ignored).
// Numeric cells that do not parse become zero and blank categories become
// "Other". Amount and Account Balance are taken as stored, without checking
// them against each other. The ledger is unchanged on error.
func (l *Ledger) LoadAll(records [][]string) error {
	var header []string
	if len(records) > 0 {
		header = records[0]
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		if _, dup := index[name]; !dup {
			index[name] = i
		}
	}
	for _, col := range Columns() {
		if _, ok := index[col]; !ok {
			return &SchemaError{Column: col}
		}
	}

	var rows [][]string
	if len(records) > 1 {
		rows = records[1:]
	}

	txns := make([]model.Transaction, 0, len(rows))
	for _, rec := range rows {
		cell := func(col string) string {
			i := index[col]
			if i >= len(rec) {
				return ""
			}
			return rec[i]
		}
		txns = append(txns, model.Transaction{
			Date:     cell(ColDate),
			Credited: coerce(cell(ColCredited)),
			Debited:  coerce(cell(ColDebited)),
			Amount:   coerce(cell(ColAmount)),
			Balance:  coerce(cell(ColBalance)),
			Category: model.NormalizeCategory(cell(ColCategory)),
		})
	}

	l.txns = txns
	l.balance = decimal.Zero
	if len(txns) > 0 {
		l.balance = txns[len(txns)-1].Balance
	}
	return nil
}

// coerce parses a numeric cell, treating anything unparseable as zero.
func coerce(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Clear removes every transaction and resets the balance to zero.
func (l *Ledger) Clear() {
	l.txns = nil
	l.balance = decimal.Zero
}

// Totals maps a category to the sum of its debited amounts.
type Totals map[string]decimal.Decimal

// CategoryTotal is one entry of Totals.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// Sorted returns the totals ordered by category name.
func (t Totals) Sorted() []CategoryTotal {
	out := make([]CategoryTotal, 0, len(t))
	for c, v := range t {
		out = append(out, CategoryTotal{Category: c, Total: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out
}

// Sum returns the grand total across all categories.
func (t Totals) Sum() decimal.Decimal {
	sum := decimal.Zero
	for _, v := range t {
		sum = sum.Add(v)
	}
	return sum
}

// CategoryTotals groups transactions by category and sums the debited
// amounts. It returns ErrEmptyLedger when there is nothing to group.
func (l *Ledger) CategoryTotals() (Totals, error) {
	if len(l.txns) == 0 {
		return nil, ErrEmptyLedger
	}
	totals := make(Totals)
	for _, t := range l.txns {
		totals[t.Category] = totals[t.Category].Add(t.Debited)
	}
	return totals, nil
}

// Serialize returns the header row followed by one row per transaction.
func (l *Ledger) Serialize() [][]string {
	records := make([][]string, 0, len(l.txns)+1)
	records = append(records, Columns())
	for _, t := range l.txns {
		records = append(records, []string{
			t.Date,
			t.Credited.String(),
			t.Debited.String(),
			t.Amount.String(),
			t.Balance.String(),
			t.Category,
		})
	}
	return records
}
