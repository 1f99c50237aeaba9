package domain

import (
	"github.com/shopspring/decimal"
)

// LoanParameters describes a fixed-installment loan request.
type LoanParameters struct {
	Name              string          `yaml:"name,omitempty" json:"name,omitempty"`
	RequestedAmount   decimal.Decimal `yaml:"requested_amount" json:"requested_amount"`
	DownPayment       decimal.Decimal `yaml:"down_payment" json:"down_payment"`
	TermMonths        int             `yaml:"term_months" json:"term_months"`
	AnnualRatePercent decimal.Decimal `yaml:"annual_rate_percent" json:"annual_rate_percent"`
}

// PrincipalToFinance is the requested amount minus the down payment.
func (lp LoanParameters) PrincipalToFinance() decimal.Decimal {
	return lp.RequestedAmount.Sub(lp.DownPayment)
}

// Validate checks the boundary invariants of a loan request.
// A negative rate is deliberately accepted and passed through.
func (lp LoanParameters) Validate() error {
	if lp.RequestedAmount.IsNegative() {
		return NewValidationError("requested_amount", lp.RequestedAmount, "must not be negative")
	}
	if lp.DownPayment.IsNegative() {
		return NewValidationError("down_payment", lp.DownPayment, "must not be negative")
	}
	if lp.PrincipalToFinance().IsNegative() {
		return NewValidationError("down_payment", lp.DownPayment, "exceeds the requested amount")
	}
	if lp.TermMonths < 1 {
		return NewValidationError("term_months", lp.TermMonths, "must be at least 1")
	}
	return nil
}

// AmortizationRow is one period of a constant-installment schedule.
type AmortizationRow struct {
	Period           int             `json:"period"`
	Installment      decimal.Decimal `json:"installment"`
	Interest         decimal.Decimal `json:"interest"`
	Principal        decimal.Decimal `json:"principal"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
}

// LoanResult is the outcome of a loan simulation.
type LoanResult struct {
	Name               string            `json:"name,omitempty"`
	PrincipalToFinance decimal.Decimal   `json:"principal_to_finance"`
	MonthlyRate        decimal.Decimal   `json:"monthly_rate"`
	Installment        decimal.Decimal   `json:"installment"`
	TotalPaid          decimal.Decimal   `json:"total_paid"`
	TotalInterest      decimal.Decimal   `json:"total_interest"`
	Schedule           []AmortizationRow `json:"schedule"`
}

// TermMonths returns the number of scheduled installments.
func (lr *LoanResult) TermMonths() int {
	return len(lr.Schedule)
}
