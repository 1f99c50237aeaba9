package calculation

import (
	"github.com/rgehrsitz/finproj/pkg/money"
	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)
	twelve  = decimal.NewFromInt(12)
	one     = decimal.NewFromInt(1)
)

// compoundPlaces bounds the digits carried by compoundFactor so long horizons
// do not grow the mantissa without limit.
const compoundPlaces int32 = 20

// installmentPlaces is the precision of the installment quotient. The
// schedule compounds any error in it by (1+r)^n, so it must exceed
// compoundPlaces.
const installmentPlaces int32 = 48

// MonthlyRate converts an annual nominal percentage into the simple monthly
// fraction annual/12/100. No compound root is taken: 12% is exactly 0.01.
func MonthlyRate(annualPercent decimal.Decimal) decimal.Decimal {
	return annualPercent.Div(twelve).Div(hundred)
}

// AnnualRate converts an annual percentage into a fraction.
func AnnualRate(annualPercent decimal.Decimal) decimal.Decimal {
	return money.FromPercent(annualPercent)
}

// compoundFactor returns (1+rate)^periods for periods >= 0.
func compoundFactor(rate decimal.Decimal, periods int) decimal.Decimal {
	base := one.Add(rate)
	factor := one
	for i := 0; i < periods; i++ {
		factor = factor.Mul(base).Round(compoundPlaces)
	}
	return factor
}
