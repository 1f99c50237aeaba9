package domain

import (
	"github.com/shopspring/decimal"
)

// RetirementInputs holds the accumulation-phase assumptions for one saver.
// Every rate is a percentage (8 means 8%).
type RetirementInputs struct {
	Name                       string          `yaml:"name,omitempty" json:"name,omitempty"`
	CurrentAge                 int             `yaml:"current_age" json:"current_age"`
	RetirementAge              int             `yaml:"retirement_age" json:"retirement_age"`
	CurrentSalary              decimal.Decimal `yaml:"current_salary" json:"current_salary"`
	SavingsRatePercent         decimal.Decimal `yaml:"savings_rate_percent" json:"savings_rate_percent"`
	AnnualGrowthRatePercent    decimal.Decimal `yaml:"annual_growth_rate_percent" json:"annual_growth_rate_percent"`
	AnnualInflationRatePercent decimal.Decimal `yaml:"annual_inflation_rate_percent" json:"annual_inflation_rate_percent"`
}

// ContributionYears is the number of years left before retirement.
func (ri RetirementInputs) ContributionYears() int {
	return ri.RetirementAge - ri.CurrentAge
}

// Validate rejects inputs that would yield no accumulation years.
func (ri RetirementInputs) Validate() error {
	if ri.CurrentAge < 0 {
		return NewValidationError("current_age", ri.CurrentAge, "must not be negative")
	}
	if ri.ContributionYears() <= 0 {
		return NewValidationError("retirement_age", ri.RetirementAge, "must be greater than current_age")
	}
	if ri.CurrentSalary.IsNegative() {
		return NewValidationError("current_salary", ri.CurrentSalary, "must not be negative")
	}
	if ri.SavingsRatePercent.IsNegative() {
		return NewValidationError("savings_rate_percent", ri.SavingsRatePercent, "must not be negative")
	}
	return nil
}

// RetirementYear is one year of the accumulation phase.
type RetirementYear struct {
	Year                    int             `json:"year"`
	Age                     int             `json:"age"`
	Balance                 decimal.Decimal `json:"balance"`
	MonthlyIncome           decimal.Decimal `json:"monthly_income"`
	AnnualContribution      decimal.Decimal `json:"annual_contribution"`
	CumulativeContributions decimal.Decimal `json:"cumulative_contributions"`
}

// RetirementResult is the outcome of a retirement simulation.
type RetirementResult struct {
	Name                    string           `json:"name,omitempty"`
	ContributionYears       int              `json:"contribution_years"`
	InflationAdjustedSalary decimal.Decimal  `json:"inflation_adjusted_salary"`
	MonthlySavings          decimal.Decimal  `json:"monthly_savings"`
	AnnualContribution      decimal.Decimal  `json:"annual_contribution"`
	FinalBalance            decimal.Decimal  `json:"final_balance"`
	MonthlyIncomeEstimate   decimal.Decimal  `json:"monthly_income_estimate"`
	Projection              []RetirementYear `json:"projection"`
}
