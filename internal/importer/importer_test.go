package importer

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/expense/internal/ledger"
	"github.com/cleared-dev/expense/internal/model"
)

const chaseHeader = "Details,Posting Date,Description,Amount,Type,Balance,Check or Slip #\n"

func parseTestdata(t *testing.T) []Entry {
	t.Helper()
	f, err := os.Open("../../testdata/chase_checking.csv")
	require.NoError(t, err)
	defer f.Close()

	entries, err := (&ChaseParser{}).Parse(f)
	require.NoError(t, err)
	return entries
}

func TestChaseParser_Parse(t *testing.T) {
	entries := parseTestdata(t)
	require.Len(t, entries, 3)

	assert.Equal(t, Entry{
		Date:        "2025-01-03",
		Description: "GITHUB INC",
		Debited:     "4",
	}, entries[0])

	assert.Equal(t, "3500", entries[1].Credited)
	assert.Empty(t, entries[1].Debited)
	assert.Empty(t, entries[1].Category, "ACH_CREDIT has no suggestion")

	// Quoted description containing the delimiter; BILLPAY suggests Utilities.
	assert.Equal(t, "CITY UTILITIES, INC", entries[2].Description)
	assert.Equal(t, "127.5", entries[2].Debited)
	assert.Equal(t, model.CategoryUtilities, entries[2].Category)
}

func TestChaseParser_DetailsDecideSide(t *testing.T) {
	data := chaseHeader +
		"CREDIT,01/03/2025,refund,-9.99,ACH_CREDIT,1,\n" +
		"CHECK,01/04/2025,check 101,250.00,CHECK_PAID,1,101\n" +
		"DSLIP,01/05/2025,deposit,80,DEPOSIT,1,\n" +
		"OTHER,01/06/2025,fee,-3,FEE_TRANSACTION,1,\n"

	entries, err := (&ChaseParser{}).Parse(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, entries, 4)

	assert.Equal(t, "9.99", entries[0].Credited)
	assert.Equal(t, "250", entries[1].Debited)
	assert.Equal(t, "80", entries[2].Credited)
	assert.Equal(t, "3", entries[3].Debited, "unknown details fall back to the sign")
	assert.Equal(t, model.CategoryOther, entries[3].Category)
}

func TestChaseParser_ColumnsByName(t *testing.T) {
	data := "Type,Amount,Description,Posting Date,Details\n" +
		"BILLPAY,-61.20,POWER CO,02/01/2025,DEBIT\n"

	entries, err := (&ChaseParser{}).Parse(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "2025-02-01", entries[0].Date)
	assert.Equal(t, "61.2", entries[0].Debited)
	assert.Equal(t, model.CategoryUtilities, entries[0].Category)
}

func TestChaseParser_MissingColumn(t *testing.T) {
	data := "Details,Posting Date,Description,Type\nDEBIT,01/03/2025,desc,ACH_DEBIT\n"
	_, err := (&ChaseParser{}).Parse(strings.NewReader(data))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `missing column "Amount"`)
}

func TestChaseParser_Empty(t *testing.T) {
	entries, err := (&ChaseParser{}).Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Nil(t, entries)

	entries, err = (&ChaseParser{}).Parse(strings.NewReader(chaseHeader))
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestChaseParser_BadRows(t *testing.T) {
	tests := []struct {
		name string
		row  string
		want string
	}{
		{"bad date", "DEBIT,NOTADATE,desc,-4.00,ACH_DEBIT,100.00,\n", "parsing date"},
		{"bad amount", "DEBIT,01/03/2025,desc,NOTANUMBER,ACH_DEBIT,100.00,\n", "parsing amount"},
		{"short row", "DEBIT,01/03/2025,desc\n", "expected at least 5 fields"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := (&ChaseParser{}).Parse(strings.NewReader(chaseHeader + tt.row))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "row 2")
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	assert.Nil(t, r.Get("chase"))

	r.Register(&ChaseParser{})
	assert.NotNil(t, r.Get("chase"))
	assert.NotNil(t, r.Get("CHASE"))
	assert.Equal(t, []string{"chase"}, r.Formats())

	assert.Panics(t, func() { r.Register(&ChaseParser{}) })
}

func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry()
	require.NotNil(t, r.Get("chase"))
	assert.Equal(t, "chase", r.Get("chase").Format())
}

func TestApply_SuggestedCategories(t *testing.T) {
	l := ledger.New()
	added, err := Apply(l, parseTestdata(t), "")
	require.NoError(t, err)
	require.Len(t, added, 3)

	assert.Equal(t, model.CategoryOther, added[0].Category)
	assert.Equal(t, model.CategoryOther, added[1].Category)
	assert.Equal(t, model.CategoryUtilities, added[2].Category)

	assert.Equal(t, "2025-01-03", added[0].Date)
	assert.Equal(t, "4", added[0].Debited.String())
	assert.True(t, added[1].Credited.Equal(added[1].Amount))
	assert.Equal(t, "3368.5", l.Balance().String())
}

func TestApply_CategoryOverride(t *testing.T) {
	l := ledger.New()
	added, err := Apply(l, parseTestdata(t), "Transport")
	require.NoError(t, err)
	for _, txn := range added {
		assert.Equal(t, "Transport", txn.Category)
	}
}

func TestApply_InvalidCategoryLeavesLedger(t *testing.T) {
	l := ledger.New()
	_, err := Apply(l, parseTestdata(t), model.CategoryUnselected)

	var verr *ledger.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Zero(t, l.Len())
}
