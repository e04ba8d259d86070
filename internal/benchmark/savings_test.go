package benchmark

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSavings(t *testing.T) {
	savings := Default().Savings()
	require.Len(t, savings, 3)

	credit := savings[0]
	assert.Equal(t, Credit, credit.Category)
	assert.True(t, credit.Dearest.Equal(decimal.NewFromFloat(6.29)), credit.Dearest.String())
	assert.True(t, credit.Cheapest.Equal(decimal.NewFromFloat(4.4)), credit.Cheapest.String())
	assert.Equal(t, "38.0", credit.VsDearest.StringFixed(1))
	assert.Equal(t, "11.4", credit.VsCheapest.StringFixed(1))

	debit := savings[1]
	assert.Equal(t, "29.2", debit.VsDearest.StringFixed(1))

	qr := savings[2]
	assert.Equal(t, "25.0", qr.VsDearest.StringFixed(1))
	assert.True(t, qr.VsCheapest.IsZero())
}

func TestSavings_NoHighlight(t *testing.T) {
	tbl := Default()
	for i := range tbl.Actors {
		tbl.Actors[i].Highlight = false
	}
	assert.Nil(t, tbl.Savings())
}

func TestSavings_NoCompetitors(t *testing.T) {
	tbl := &Table{Actors: []Actor{
		{Name: "Solo", Highlight: true, Rates: map[Category]float64{Credit: 1, Debit: 1, QR: 1}},
	}}
	assert.Nil(t, tbl.Savings())
}

func TestReduction_ZeroReference(t *testing.T) {
	assert.True(t, reduction(decimal.NewFromInt(1), decimal.Zero).IsZero())
}
