package domain

import (
	"time"
)

// Scenario is a named bundle of simulations. Any of the blocks may be omitted.
type Scenario struct {
	Name        string                `yaml:"name" json:"name"`
	Description string                `yaml:"description,omitempty" json:"description,omitempty"`
	Loan        *LoanParameters       `yaml:"loan,omitempty" json:"loan,omitempty"`
	Investment  *InvestmentParameters `yaml:"investment,omitempty" json:"investment,omitempty"`
	Retirement  *RetirementInputs     `yaml:"retirement,omitempty" json:"retirement,omitempty"`
}

// IsEmpty reports whether the scenario carries no simulation at all.
func (s *Scenario) IsEmpty() bool {
	return s.Loan == nil && s.Investment == nil && s.Retirement == nil
}

// DeepCopy returns a copy that shares no pointers with s.
func (s *Scenario) DeepCopy() *Scenario {
	if s == nil {
		return nil
	}
	out := &Scenario{
		Name:        s.Name,
		Description: s.Description,
	}
	if s.Loan != nil {
		loan := *s.Loan
		out.Loan = &loan
	}
	if s.Investment != nil {
		inv := *s.Investment
		out.Investment = &inv
	}
	if s.Retirement != nil {
		ret := *s.Retirement
		out.Retirement = &ret
	}
	return out
}

// CashFlowConfig holds the recurring ledger items for a forecast.
type CashFlowConfig struct {
	HorizonMonths int             `yaml:"horizon_months" json:"horizon_months"`
	Income        []RecurringItem `yaml:"income,omitempty" json:"income,omitempty"`
	Expenses      []RecurringItem `yaml:"expenses,omitempty" json:"expenses,omitempty"`
}

// LedgerConfig points at an on-disk ledger store that replaces the inline items.
type LedgerConfig struct {
	Path string `yaml:"path" json:"path"`
}

// Configuration is the complete input file.
type Configuration struct {
	AsOf      time.Time       `yaml:"as_of,omitempty" json:"as_of,omitempty"`
	Scenarios []Scenario      `yaml:"scenarios" json:"scenarios"`
	CashFlow  *CashFlowConfig `yaml:"cash_flow,omitempty" json:"cash_flow,omitempty"`
	Health    *HealthInputs   `yaml:"health,omitempty" json:"health,omitempty"`
	Ledger    *LedgerConfig   `yaml:"ledger,omitempty" json:"ledger,omitempty"`
}

// FindScenario returns the scenario with the given name, or nil.
func (c *Configuration) FindScenario(name string) *Scenario {
	for i := range c.Scenarios {
		if c.Scenarios[i].Name == name {
			return &c.Scenarios[i]
		}
	}
	return nil
}
