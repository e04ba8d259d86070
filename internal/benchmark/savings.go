package benchmark

import (
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// Saving compares the highlighted actor against the competitors on one category.
type Saving struct {
	Category    Category
	Rate        decimal.Decimal
	Competitors decimal.Decimal // mean competitor rate
	Cheapest    decimal.Decimal // lowest competitor rate
	Dearest     decimal.Decimal // highest competitor rate
	VsMean      decimal.Decimal // relative reduction in percent
	VsCheapest  decimal.Decimal
	VsDearest   decimal.Decimal
}

// Savings computes the reduction of the highlighted actor per category.
// It returns nil when no actor is highlighted or there are no competitors.
func (t *Table) Savings() []Saving {
	hl, ok := t.Highlighted()
	if !ok {
		return nil
	}
	rivals := lo.Filter(t.Actors, func(a Actor, _ int) bool { return !a.Highlight })
	if len(rivals) == 0 {
		return nil
	}

	out := make([]Saving, 0, len(Categories))
	for _, c := range Categories {
		rates := lo.Map(rivals, func(a Actor, _ int) decimal.Decimal {
			return decimal.NewFromFloat(a.Rates[c])
		})
		mean := decimal.Avg(rates[0], rates[1:]...)
		cheapest := decimal.Min(rates[0], rates[1:]...)
		dearest := decimal.Max(rates[0], rates[1:]...)
		own := decimal.NewFromFloat(hl.Rates[c])
		out = append(out, Saving{
			Category:    c,
			Rate:        own,
			Competitors: mean.Round(2),
			Cheapest:    cheapest,
			Dearest:     dearest,
			VsMean:      reduction(own, mean),
			VsCheapest:  reduction(own, cheapest),
			VsDearest:   reduction(own, dearest),
		})
	}
	return out
}

func reduction(own, ref decimal.Decimal) decimal.Decimal {
	if ref.IsZero() {
		return decimal.Zero
	}
	return ref.Sub(own).Div(ref).Mul(decimal.NewFromInt(100)).Round(1)
}
