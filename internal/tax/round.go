package tax

import "github.com/shopspring/decimal"

// All currency amounts round to 2 decimal places, half away from zero, at the
// line level. Document grand totals round to whole rupees; the difference is
// the document round-off residual.

var (
	zero    decimal.Decimal
	hundred = decimal.NewFromInt(100)
)

func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

func roundRupee(d decimal.Decimal) decimal.Decimal {
	return d.Round(0)
}
