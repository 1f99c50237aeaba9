package transform

import (
	"fmt"

	"github.com/rgehrsitz/finproj/internal/domain"
	"github.com/shopspring/decimal"
)

// AdjustLoanTerm lengthens or shortens a loan by a number of months.
type AdjustLoanTerm struct {
	Months int
}

func (t *AdjustLoanTerm) Name() string { return "adjust_term" }

func (t *AdjustLoanTerm) Description() string {
	return fmt.Sprintf("Change the loan term by %+d months", t.Months)
}

func (t *AdjustLoanTerm) Validate(base *domain.Scenario) error {
	if err := requireBlock(t.Name(), base, hasLoan, "loan"); err != nil {
		return err
	}
	if term := base.Loan.TermMonths + t.Months; term < 1 {
		return NewTransformError(t.Name(), "validate", fmt.Sprintf("resulting term %d is below 1 month", term), nil)
	}
	return nil
}

func (t *AdjustLoanTerm) Apply(base *domain.Scenario) (*domain.Scenario, error) {
	modified := base.DeepCopy()
	modified.Loan.TermMonths += t.Months
	return modified, nil
}

// SetLoanTerm replaces the loan term.
type SetLoanTerm struct {
	Months int
}

func (t *SetLoanTerm) Name() string { return "set_term" }

func (t *SetLoanTerm) Description() string {
	return fmt.Sprintf("Set the loan term to %d months", t.Months)
}

func (t *SetLoanTerm) Validate(base *domain.Scenario) error {
	if err := requireBlock(t.Name(), base, hasLoan, "loan"); err != nil {
		return err
	}
	if t.Months < 1 {
		return NewTransformError(t.Name(), "validate", fmt.Sprintf("months must be at least 1, got %d", t.Months), nil)
	}
	return nil
}

func (t *SetLoanTerm) Apply(base *domain.Scenario) (*domain.Scenario, error) {
	modified := base.DeepCopy()
	modified.Loan.TermMonths = t.Months
	return modified, nil
}

// AdjustLoanRate moves the annual loan rate by a number of percentage points.
type AdjustLoanRate struct {
	DeltaPercent decimal.Decimal
}

func (t *AdjustLoanRate) Name() string { return "adjust_rate" }

func (t *AdjustLoanRate) Description() string {
	return fmt.Sprintf("Change the loan rate by %s percentage points", signed(t.DeltaPercent))
}

func (t *AdjustLoanRate) Validate(base *domain.Scenario) error {
	return requireBlock(t.Name(), base, hasLoan, "loan")
}

func (t *AdjustLoanRate) Apply(base *domain.Scenario) (*domain.Scenario, error) {
	modified := base.DeepCopy()
	modified.Loan.AnnualRatePercent = modified.Loan.AnnualRatePercent.Add(t.DeltaPercent)
	return modified, nil
}

// AdjustDownPayment raises the down payment by a percentage of the
// requested amount.
type AdjustDownPayment struct {
	PercentOfAmount decimal.Decimal
}

func (t *AdjustDownPayment) Name() string { return "adjust_down_payment" }

func (t *AdjustDownPayment) Description() string {
	return fmt.Sprintf("Change the down payment by %s%% of the requested amount", signed(t.PercentOfAmount))
}

func (t *AdjustDownPayment) Validate(base *domain.Scenario) error {
	if err := requireBlock(t.Name(), base, hasLoan, "loan"); err != nil {
		return err
	}
	next := t.next(base.Loan)
	if next.IsNegative() {
		return NewTransformError(t.Name(), "validate", "resulting down payment is negative", nil)
	}
	if next.GreaterThan(base.Loan.RequestedAmount) {
		return NewTransformError(t.Name(), "validate", "resulting down payment exceeds the requested amount", nil)
	}
	return nil
}

func (t *AdjustDownPayment) Apply(base *domain.Scenario) (*domain.Scenario, error) {
	modified := base.DeepCopy()
	modified.Loan.DownPayment = t.next(base.Loan)
	return modified, nil
}

func (t *AdjustDownPayment) next(loan *domain.LoanParameters) decimal.Decimal {
	extra := loan.RequestedAmount.Mul(t.PercentOfAmount).Div(decimal.NewFromInt(100))
	return loan.DownPayment.Add(extra).Round(2)
}

func signed(d decimal.Decimal) string {
	if d.IsNegative() {
		return d.String()
	}
	return "+" + d.String()
}
