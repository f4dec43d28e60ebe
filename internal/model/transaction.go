package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Recognized categories offered by the presentation layer. Files may carry
// any other label.
const (
	CategoryFood          = "Food"
	CategoryTransport     = "Transport"
	CategoryEntertainment = "Entertainment"
	CategoryUtilities     = "Utilities"
	CategoryOther         = "Other"
)

// CategoryUnselected is the placeholder a category picker shows before the
// user chooses a value. It is never a valid category.
const CategoryUnselected = "Select Category"

// Categories returns the recognized categories in display order.
func Categories() []string {
	return []string{
		CategoryFood,
		CategoryTransport,
		CategoryEntertainment,
		CategoryUtilities,
		CategoryOther,
	}
}

// NormalizeCategory maps a blank label to CategoryOther.
func NormalizeCategory(category string) string {
	category = strings.TrimSpace(category)
	if category == "" {
		return CategoryOther
	}
	return category
}

// Transaction is one row of the ledger.
type Transaction struct {
	Date     string          // free-form label as entered
	Credited decimal.Decimal
	Debited  decimal.Decimal
	Amount   decimal.Decimal // credited - debited
	Balance  decimal.Decimal // running balance after this row
	Category string
}
