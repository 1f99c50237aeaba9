package output

import (
	"github.com/rgehrsitz/finproj/pkg/money"
	"github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal as currency with 2 decimals.
func FormatCurrency(amount decimal.Decimal) string { return money.Format(amount) }

// FormatPercentage formats a decimal percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return money.FormatPercent(amount) }

// FormatRatio formats a fraction such as 0.25 as a percentage.
func FormatRatio(fraction decimal.Decimal) string {
	return money.FormatPercent(money.ToPercent(fraction))
}

// amount renders a plain two-decimal number for machine-readable output.
func amount(d decimal.Decimal) string { return d.StringFixed(money.Cents) }
