package money

import (
	"github.com/shopspring/decimal"
)

// Cents is the number of decimal places every emitted monetary figure carries.
const Cents int32 = 2

var (
	hundred = decimal.NewFromInt(100)
	twelve  = decimal.NewFromInt(12)
)

// Round rounds an amount to cents, half away from zero.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(Cents)
}

// FromPercent converts a percentage (12 meaning 12%) to a fraction (0.12).
func FromPercent(p decimal.Decimal) decimal.Decimal {
	return p.Div(hundred)
}

// ToPercent converts a fraction to a percentage.
func ToPercent(f decimal.Decimal) decimal.Decimal {
	return f.Mul(hundred)
}

// Ratio returns part/whole expressed as a percentage, or zero when whole is zero.
func Ratio(part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}
	return part.Div(whole).Mul(hundred)
}

// Monthly converts an annual amount to a monthly amount
func Monthly(annual decimal.Decimal) decimal.Decimal {
	return annual.Div(twelve)
}

// Annual converts a monthly amount to an annual amount
func Annual(monthly decimal.Decimal) decimal.Decimal {
	return monthly.Mul(twelve)
}

// Format renders an amount as dollars with two decimals.
func Format(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-$" + d.Abs().StringFixed(Cents)
	}
	return "$" + d.StringFixed(Cents)
}

// FormatPercent renders a percentage with two decimals.
func FormatPercent(p decimal.Decimal) string {
	return p.StringFixed(2) + "%"
}
