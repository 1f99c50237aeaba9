package domain

import (
	"time"
)

// ScenarioResult holds the simulation outputs of one scenario.
type ScenarioResult struct {
	Name       string            `json:"name"`
	Loan       *LoanResult       `json:"loan,omitempty"`
	Investment *InvestmentResult `json:"investment,omitempty"`
	Retirement *RetirementResult `json:"retirement,omitempty"`
}

// Results is everything computed from one Configuration, in input order.
type Results struct {
	AsOf      time.Time         `json:"as_of"`
	Scenarios []ScenarioResult  `json:"scenarios"`
	CashFlow  *CashFlowForecast `json:"cash_flow,omitempty"`
	Health    *HealthSnapshot   `json:"health,omitempty"`
}

// Scenario returns the result for name, or nil.
func (r *Results) Scenario(name string) *ScenarioResult {
	for i := range r.Scenarios {
		if r.Scenarios[i].Name == name {
			return &r.Scenarios[i]
		}
	}
	return nil
}
