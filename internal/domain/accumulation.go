package domain

import (
	"github.com/shopspring/decimal"
)

// AccumulationParameters drives the generic grow-then-contribute projection.
// PeriodicRate is a fraction (0.007 for 0.7% per period).
type AccumulationParameters struct {
	InitialBalance       decimal.Decimal `json:"initial_balance"`
	PeriodicContribution decimal.Decimal `json:"periodic_contribution"`
	Periods              int             `json:"periods"`
	PeriodicRate         decimal.Decimal `json:"periodic_rate"`
}

// Validate checks the period count.
func (ap AccumulationParameters) Validate() error {
	if ap.Periods < 1 {
		return NewValidationError("periods", ap.Periods, "must be at least 1")
	}
	return nil
}

// AccumulationRow is the state at the end of one period.
type AccumulationRow struct {
	Period                  int             `json:"period"`
	Balance                 decimal.Decimal `json:"balance"`
	CumulativeContributions decimal.Decimal `json:"cumulative_contributions"`
	CumulativeGain          decimal.Decimal `json:"cumulative_gain"`
}

// InvestmentParameters describes a monthly investment plan with an annual nominal rate.
type InvestmentParameters struct {
	Name                string          `yaml:"name,omitempty" json:"name,omitempty"`
	InitialBalance      decimal.Decimal `yaml:"initial_balance" json:"initial_balance"`
	MonthlyContribution decimal.Decimal `yaml:"monthly_contribution" json:"monthly_contribution"`
	Months              int             `yaml:"months" json:"months"`
	AnnualRatePercent   decimal.Decimal `yaml:"annual_rate_percent" json:"annual_rate_percent"`
}

// Validate checks the plan boundaries. Negative balances and rates pass through.
func (ip InvestmentParameters) Validate() error {
	if ip.Months < 1 {
		return NewValidationError("months", ip.Months, "must be at least 1")
	}
	return nil
}

// InvestmentResult summarizes an investment projection.
type InvestmentResult struct {
	Name               string            `json:"name,omitempty"`
	MonthlyRate        decimal.Decimal   `json:"monthly_rate"`
	FinalBalance       decimal.Decimal   `json:"final_balance"`
	TotalContributions decimal.Decimal   `json:"total_contributions"`
	TotalGain          decimal.Decimal   `json:"total_gain"`
	Projection         []AccumulationRow `json:"projection"`
}
