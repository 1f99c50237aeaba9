package transform

import (
	"fmt"

	"github.com/rgehrsitz/finproj/internal/domain"
	"github.com/shopspring/decimal"
)

// AdjustContribution changes the monthly investment contribution.
type AdjustContribution struct {
	Delta decimal.Decimal
}

func (t *AdjustContribution) Name() string { return "adjust_contribution" }

func (t *AdjustContribution) Description() string {
	return fmt.Sprintf("Change the monthly contribution by %s", signed(t.Delta))
}

func (t *AdjustContribution) Validate(base *domain.Scenario) error {
	if err := requireBlock(t.Name(), base, hasInvestment, "investment"); err != nil {
		return err
	}
	if base.Investment.MonthlyContribution.Add(t.Delta).IsNegative() {
		return NewTransformError(t.Name(), "validate", "resulting contribution is negative", nil)
	}
	return nil
}

func (t *AdjustContribution) Apply(base *domain.Scenario) (*domain.Scenario, error) {
	modified := base.DeepCopy()
	modified.Investment.MonthlyContribution = modified.Investment.MonthlyContribution.Add(t.Delta)
	return modified, nil
}

// SetContribution replaces the monthly investment contribution.
type SetContribution struct {
	Amount decimal.Decimal
}

func (t *SetContribution) Name() string { return "set_contribution" }

func (t *SetContribution) Description() string {
	return fmt.Sprintf("Set the monthly contribution to %s", t.Amount.StringFixed(2))
}

func (t *SetContribution) Validate(base *domain.Scenario) error {
	if err := requireBlock(t.Name(), base, hasInvestment, "investment"); err != nil {
		return err
	}
	if t.Amount.IsNegative() {
		return NewTransformError(t.Name(), "validate", "amount must not be negative", nil)
	}
	return nil
}

func (t *SetContribution) Apply(base *domain.Scenario) (*domain.Scenario, error) {
	modified := base.DeepCopy()
	modified.Investment.MonthlyContribution = t.Amount
	return modified, nil
}

// AdjustGrowthRate moves the expected annual growth of both the investment
// and retirement blocks, whichever are present.
type AdjustGrowthRate struct {
	DeltaPercent decimal.Decimal
}

func (t *AdjustGrowthRate) Name() string { return "adjust_growth" }

func (t *AdjustGrowthRate) Description() string {
	return fmt.Sprintf("Change expected growth by %s percentage points", signed(t.DeltaPercent))
}

func (t *AdjustGrowthRate) Validate(base *domain.Scenario) error {
	return requireBlock(t.Name(), base, func(s *domain.Scenario) bool {
		return s.Investment != nil || s.Retirement != nil
	}, "investment or retirement")
}

func (t *AdjustGrowthRate) Apply(base *domain.Scenario) (*domain.Scenario, error) {
	modified := base.DeepCopy()
	if modified.Investment != nil {
		modified.Investment.AnnualRatePercent = modified.Investment.AnnualRatePercent.Add(t.DeltaPercent)
	}
	if modified.Retirement != nil {
		modified.Retirement.AnnualGrowthRatePercent = modified.Retirement.AnnualGrowthRatePercent.Add(t.DeltaPercent)
	}
	return modified, nil
}

// PostponeRetirement moves the retirement age by a number of years. Negative
// values retire earlier.
type PostponeRetirement struct {
	Years int
}

func (t *PostponeRetirement) Name() string { return "postpone_retirement" }

func (t *PostponeRetirement) Description() string {
	return fmt.Sprintf("Move retirement by %+d years", t.Years)
}

func (t *PostponeRetirement) Validate(base *domain.Scenario) error {
	if err := requireBlock(t.Name(), base, hasRetirement, "retirement"); err != nil {
		return err
	}
	if age := base.Retirement.RetirementAge + t.Years; age <= base.Retirement.CurrentAge {
		return NewTransformError(t.Name(), "validate",
			fmt.Sprintf("resulting retirement age %d is not after current age %d", age, base.Retirement.CurrentAge), nil)
	}
	return nil
}

func (t *PostponeRetirement) Apply(base *domain.Scenario) (*domain.Scenario, error) {
	modified := base.DeepCopy()
	modified.Retirement.RetirementAge += t.Years
	return modified, nil
}

// AdjustSavingsRate moves the share of salary saved by percentage points.
type AdjustSavingsRate struct {
	DeltaPercent decimal.Decimal
}

func (t *AdjustSavingsRate) Name() string { return "adjust_savings_rate" }

func (t *AdjustSavingsRate) Description() string {
	return fmt.Sprintf("Change the savings rate by %s percentage points", signed(t.DeltaPercent))
}

func (t *AdjustSavingsRate) Validate(base *domain.Scenario) error {
	if err := requireBlock(t.Name(), base, hasRetirement, "retirement"); err != nil {
		return err
	}
	if base.Retirement.SavingsRatePercent.Add(t.DeltaPercent).IsNegative() {
		return NewTransformError(t.Name(), "validate", "resulting savings rate is negative", nil)
	}
	return nil
}

func (t *AdjustSavingsRate) Apply(base *domain.Scenario) (*domain.Scenario, error) {
	modified := base.DeepCopy()
	modified.Retirement.SavingsRatePercent = modified.Retirement.SavingsRatePercent.Add(t.DeltaPercent)
	return modified, nil
}

// SetSavingsRate replaces the share of salary saved.
type SetSavingsRate struct {
	Percent decimal.Decimal
}

func (t *SetSavingsRate) Name() string { return "set_savings_rate" }

func (t *SetSavingsRate) Description() string {
	return fmt.Sprintf("Set the savings rate to %s%%", t.Percent.String())
}

func (t *SetSavingsRate) Validate(base *domain.Scenario) error {
	if err := requireBlock(t.Name(), base, hasRetirement, "retirement"); err != nil {
		return err
	}
	if t.Percent.IsNegative() {
		return NewTransformError(t.Name(), "validate", "percent must not be negative", nil)
	}
	return nil
}

func (t *SetSavingsRate) Apply(base *domain.Scenario) (*domain.Scenario, error) {
	modified := base.DeepCopy()
	modified.Retirement.SavingsRatePercent = t.Percent
	return modified, nil
}
