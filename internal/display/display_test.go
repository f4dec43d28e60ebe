package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/expense/internal/ledger"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestLookupTheme(t *testing.T) {
	for _, name := range []string{"light", "dark", "DARK"} {
		th, err := LookupTheme(name)
		require.NoError(t, err, name)
		assert.NotEmpty(t, th.Bars)
	}

	_, err := LookupTheme("solarized")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "solarized")
}

func TestShare(t *testing.T) {
	assert.Equal(t, "66.7", Share(dec("10"), dec("15")).StringFixed(1))
	assert.Equal(t, "100.0", Share(dec("2"), dec("2")).StringFixed(1))
	assert.True(t, Share(dec("0"), dec("0")).IsZero())
}

func TestChart(t *testing.T) {
	totals := ledger.Totals{
		"Other": dec("5"),
		"Food":  dec("15"),
	}

	var buf bytes.Buffer
	require.NoError(t, Chart(&buf, totals, Options{Theme: "light", BarWidth: 20}))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, ChartTitle, lines[0])

	assert.True(t, strings.HasPrefix(lines[1], "Food "), "sorted by category: %q", lines[1])
	assert.Contains(t, lines[1], "15.00")
	assert.Contains(t, lines[1], "75.0%")
	assert.Equal(t, 15, strings.Count(lines[1], "█"))

	assert.True(t, strings.HasPrefix(lines[2], "Other"))
	assert.Contains(t, lines[2], "25.0%")
	assert.Equal(t, 5, strings.Count(lines[2], "█"))

	assert.Equal(t, "Total spent: 20.00", lines[3])
}

func TestChart_OnlyCredits(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Chart(&buf, ledger.Totals{"Other": decimal.Zero}, Options{Theme: "dark"}))

	assert.Contains(t, buf.String(), "0.0%")
	assert.NotContains(t, buf.String(), "█")
}

func TestChart_NegativeTotal(t *testing.T) {
	totals := ledger.Totals{
		"Food":  dec("10"),
		"Other": dec("-15"),
	}

	var buf bytes.Buffer
	err := Chart(&buf, totals, Options{Theme: "light"})

	var nerr *NegativeTotalError
	require.ErrorAs(t, err, &nerr)
	assert.Equal(t, "Other", nerr.Category)
	assert.True(t, nerr.Total.Equal(dec("-15")))
	assert.Empty(t, buf.String())
}

func TestChart_BarsStayWithinWidth(t *testing.T) {
	// A near-total share fills the bar, a tiny one draws nothing.
	totals := ledger.Totals{
		"A": dec("0.01"),
		"B": dec("999.99"),
	}

	var buf bytes.Buffer
	require.NoError(t, Chart(&buf, totals, Options{Theme: "light", BarWidth: 10}))
	assert.Equal(t, 10, strings.Count(buf.String(), "█"))
}

func TestChart_UnknownTheme(t *testing.T) {
	var buf bytes.Buffer
	err := Chart(&buf, ledger.Totals{"Food": dec("1")}, Options{Theme: "neon"})
	require.Error(t, err)
	assert.Empty(t, buf.String())
}

func TestTable(t *testing.T) {
	l := ledger.New()
	_, err := l.Append("2026-10-01", "2500", "", "Other")
	require.NoError(t, err)
	_, err = l.Append("2026-10-02", "", "42.5", "Food")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Table(&buf, l.Transactions(), l.Balance(), Options{Theme: "light"}))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "Date"))
	assert.Contains(t, lines[0], "Account Balance")
	assert.Contains(t, lines[1], "2500.00")
	assert.Contains(t, lines[2], "-42.50")
	assert.Contains(t, lines[2], "2457.50")
	assert.True(t, strings.HasSuffix(lines[2], "Food"))
	assert.Equal(t, "Balance: 2457.50", lines[3])
}

func TestTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Table(&buf, nil, decimal.Zero, Options{Theme: "light"}))
	assert.Contains(t, buf.String(), "Balance: 0.00")
}
