// Package display renders ledger data for the terminal.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/expense/internal/ledger"
	"github.com/cleared-dev/expense/internal/model"
)

// ChartTitle heads every rendered chart.
const ChartTitle = "Expense Distribution"

const defaultBarWidth = 30

// Theme is a named color palette.
type Theme struct {
	Name   string
	Title  lipgloss.Color
	Muted  lipgloss.Color
	Accent lipgloss.Color
	Bars   []lipgloss.Color
}

var themes = map[string]Theme{
	"light": {
		Name:   "light",
		Title:  lipgloss.Color("#2c3e50"),
		Muted:  lipgloss.Color("#7b8a8b"),
		Accent: lipgloss.Color("#18bc9c"),
		Bars: []lipgloss.Color{
			"#3b4cc0", "#6788ee", "#9abbff", "#c9d7f0", "#f7b89c", "#e7745b", "#b40426",
		},
	},
	"dark": {
		Name:   "dark",
		Title:  lipgloss.Color("#cdd6f4"),
		Muted:  lipgloss.Color("#7f849c"),
		Accent: lipgloss.Color("#a6e3a1"),
		Bars: []lipgloss.Color{
			"#89b4fa", "#74c7ec", "#94e2d5", "#a6e3a1", "#f9e2af", "#fab387", "#f38ba8",
		},
	},
}

// LookupTheme returns the theme called name.
func LookupTheme(name string) (Theme, error) {
	t, ok := themes[strings.ToLower(name)]
	if !ok {
		return Theme{}, fmt.Errorf("unknown theme %q (want light or dark)", name)
	}
	return t, nil
}

// Options controls rendering.
type Options struct {
	Theme    string
	BarWidth int // defaults to 30
}

// Share returns part as a percentage of whole, or zero when whole is zero.
func Share(part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}
	return part.Div(whole).Mul(decimal.NewFromInt(100))
}

// NegativeTotalError reports a category whose debited total is below zero.
// Such a category has no share of spending to draw.
type NegativeTotalError struct {
	Category string
	Total    decimal.Decimal
}

func (e *NegativeTotalError) Error() string {
	return fmt.Sprintf("cannot chart %s: debited total %s is negative", e.Category, e.Total.StringFixed(2))
}

// Chart writes one line per category: label, debited total, share of all
// spending, and a bar proportional to that share. Nothing is written when a
// category total is negative.
func Chart(w io.Writer, totals ledger.Totals, opts Options) error {
	theme, err := LookupTheme(opts.Theme)
	if err != nil {
		return err
	}
	rows := totals.Sorted()
	for _, row := range rows {
		if row.Total.IsNegative() {
			return &NegativeTotalError{Category: row.Category, Total: row.Total}
		}
	}

	width := opts.BarWidth
	if width <= 0 {
		width = defaultBarWidth
	}

	r := lipgloss.NewRenderer(w)
	title := r.NewStyle().Bold(true).Foreground(theme.Title)
	muted := r.NewStyle().Foreground(theme.Muted)

	sum := totals.Sum()

	labelW, amountW := 0, 0
	for _, row := range rows {
		labelW = max(labelW, len(row.Category))
		amountW = max(amountW, len(row.Total.StringFixed(2)))
	}

	var b strings.Builder
	b.WriteString(title.Render(ChartTitle))
	b.WriteString("\n")
	for i, row := range rows {
		share := Share(row.Total, sum)
		n := int(share.Mul(decimal.NewFromInt(int64(width))).Div(decimal.NewFromInt(100)).Round(0).IntPart())
		n = min(max(n, 0), width)
		bar := r.NewStyle().Foreground(theme.Bars[i%len(theme.Bars)]).Render(strings.Repeat("█", n))

		fmt.Fprintf(&b, "%-*s  %*s  %6s  %s\n",
			labelW, row.Category,
			amountW, row.Total.StringFixed(2),
			share.StringFixed(1)+"%",
			bar)
	}
	b.WriteString(muted.Render("Total spent: " + sum.StringFixed(2)))
	b.WriteString("\n")

	_, err = io.WriteString(w, b.String())
	return err
}

// Table writes the transactions as an aligned table followed by the balance.
func Table(w io.Writer, txns []model.Transaction, balance decimal.Decimal, opts Options) error {
	theme, err := LookupTheme(opts.Theme)
	if err != nil {
		return err
	}

	r := lipgloss.NewRenderer(w)
	head := r.NewStyle().Bold(true).Foreground(theme.Title)
	accent := r.NewStyle().Bold(true).Foreground(theme.Accent)

	cols := ledger.Columns()
	cells := make([][]string, 0, len(txns))
	for _, t := range txns {
		cells = append(cells, []string{
			t.Date,
			t.Credited.StringFixed(2),
			t.Debited.StringFixed(2),
			t.Amount.StringFixed(2),
			t.Balance.StringFixed(2),
			t.Category,
		})
	}

	widths := make([]int, len(cols))
	for i, c := range cols {
		widths[i] = len(c)
	}
	for _, row := range cells {
		for i, c := range row {
			widths[i] = max(widths[i], len(c))
		}
	}

	var b strings.Builder
	b.WriteString(head.Render(formatRow(cols, widths)))
	b.WriteString("\n")
	for _, row := range cells {
		b.WriteString(formatRow(row, widths))
		b.WriteString("\n")
	}
	b.WriteString(accent.Render("Balance: " + balance.StringFixed(2)))
	b.WriteString("\n")

	_, err = io.WriteString(w, b.String())
	return err
}

// formatRow left-aligns text columns and right-aligns the numeric ones.
func formatRow(row []string, widths []int) string {
	parts := make([]string, len(row))
	for i, c := range row {
		if i == 0 || i == len(row)-1 {
			parts[i] = fmt.Sprintf("%-*s", widths[i], c)
		} else {
			parts[i] = fmt.Sprintf("%*s", widths[i], c)
		}
	}
	return strings.TrimRight(strings.Join(parts, "  "), " ")
}
