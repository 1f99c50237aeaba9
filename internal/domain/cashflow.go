package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// RecurrenceKind says how often a recurring item repeats.
type RecurrenceKind string

const (
	RecurrenceNone       RecurrenceKind = "none"
	RecurrenceMonthly    RecurrenceKind = "monthly"
	RecurrenceQuarterly  RecurrenceKind = "quarterly"
	RecurrenceSemiannual RecurrenceKind = "semiannual"
	RecurrenceAnnual     RecurrenceKind = "annual"
)

// RecurrenceKinds lists the recognised kinds in frequency order.
var RecurrenceKinds = []RecurrenceKind{
	RecurrenceNone,
	RecurrenceMonthly,
	RecurrenceQuarterly,
	RecurrenceSemiannual,
	RecurrenceAnnual,
}

// ParseRecurrence normalizes s. Unknown values are returned as-is so they
// simply never match a forecast month.
func ParseRecurrence(s string) RecurrenceKind {
	return RecurrenceKind(strings.ToLower(strings.TrimSpace(s)))
}

// Known reports whether k is one of RecurrenceKinds.
func (k RecurrenceKind) Known() bool {
	for _, known := range RecurrenceKinds {
		if k == known {
			return true
		}
	}
	return false
}

// RecurringItem is a recurring income or expense record. Amounts are always
// positive; the side of the ledger decides the sign.
type RecurringItem struct {
	Title         string          `yaml:"title" json:"title"`
	Amount        decimal.Decimal `yaml:"amount" json:"amount"`
	Recurrence    RecurrenceKind  `yaml:"recurrence" json:"recurrence"`
	ReferenceDate time.Time       `yaml:"reference_date" json:"reference_date"`
}

// CashFlowPeriod is one forecast month.
type CashFlowPeriod struct {
	Month   string          `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Net     decimal.Decimal `json:"net"`
}

// CashFlowForecast is the month-by-month projection of recurring items.
type CashFlowForecast struct {
	Start         time.Time        `json:"start"`
	HorizonMonths int              `json:"horizon_months"`
	Periods       []CashFlowPeriod `json:"periods"`
	TotalIncome   decimal.Decimal  `json:"total_income"`
	TotalExpense  decimal.Decimal  `json:"total_expense"`
	TotalNet      decimal.Decimal  `json:"total_net"`
}
