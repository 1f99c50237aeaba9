package config

import (
	"fmt"
	"os"
	"time"

	"github.com/rgehrsitz/finproj/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of input configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates a YAML document.
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration and normalizes
// recurrence kinds in place.
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if len(config.Scenarios) == 0 && config.CashFlow == nil && config.Health == nil && config.Ledger == nil {
		return fmt.Errorf("at least one of scenarios, cash_flow, health or ledger is required")
	}

	seen := make(map[string]bool, len(config.Scenarios))
	for i := range config.Scenarios {
		scenario := &config.Scenarios[i]
		if err := ip.validateScenario(i, scenario); err != nil {
			return err
		}
		if seen[scenario.Name] {
			return fmt.Errorf("duplicate scenario name %q", scenario.Name)
		}
		seen[scenario.Name] = true
	}

	if config.CashFlow != nil {
		if err := ip.validateCashFlow(config.CashFlow); err != nil {
			return fmt.Errorf("cash_flow validation failed: %w", err)
		}
	}

	if config.Health != nil {
		if err := ip.validateHealth(config.Health); err != nil {
			return fmt.Errorf("health validation failed: %w", err)
		}
	}

	if config.Ledger != nil && config.Ledger.Path == "" {
		return fmt.Errorf("ledger validation failed: %w", domain.NewValidationError("ledger.path", nil, "is required"))
	}

	return nil
}

func (ip *InputParser) validateScenario(index int, scenario *domain.Scenario) error {
	if scenario.Name == "" {
		return fmt.Errorf("scenario %d: %w", index, domain.NewValidationError("name", nil, "is required"))
	}
	if scenario.IsEmpty() {
		return fmt.Errorf("scenario %d (%s): %w", index, scenario.Name,
			domain.NewValidationError("scenario", scenario.Name, "needs a loan, investment or retirement block"))
	}
	if scenario.Loan != nil {
		if err := scenario.Loan.Validate(); err != nil {
			return fmt.Errorf("scenario %d (%s) loan validation failed: %w", index, scenario.Name, err)
		}
	}
	if scenario.Investment != nil {
		if err := scenario.Investment.Validate(); err != nil {
			return fmt.Errorf("scenario %d (%s) investment validation failed: %w", index, scenario.Name, err)
		}
	}
	if scenario.Retirement != nil {
		if err := scenario.Retirement.Validate(); err != nil {
			return fmt.Errorf("scenario %d (%s) retirement validation failed: %w", index, scenario.Name, err)
		}
	}
	return nil
}

func (ip *InputParser) validateCashFlow(cf *domain.CashFlowConfig) error {
	if cf.HorizonMonths < 1 {
		return domain.NewValidationError("horizon_months", cf.HorizonMonths, "must be at least 1")
	}
	if err := validateItems("income", cf.Income); err != nil {
		return err
	}
	return validateItems("expenses", cf.Expenses)
}

func validateItems(side string, items []domain.RecurringItem) error {
	for i := range items {
		item := &items[i]
		if item.Title == "" {
			return fmt.Errorf("%s[%d]: %w", side, i, domain.NewValidationError("title", nil, "is required"))
		}
		if item.Amount.IsNegative() {
			return fmt.Errorf("%s[%d] (%s): %w", side, i, item.Title, domain.NewValidationError("amount", item.Amount, "must not be negative"))
		}
		kind := domain.ParseRecurrence(string(item.Recurrence))
		if kind == "" {
			kind = domain.RecurrenceNone
		}
		if !kind.Known() {
			return fmt.Errorf("%s[%d] (%s): %w", side, i, item.Title, domain.NewValidationError("recurrence", item.Recurrence, "unknown recurrence kind"))
		}
		item.Recurrence = kind
	}
	return nil
}

func (ip *InputParser) validateHealth(h *domain.HealthInputs) error {
	if h.Income.IsNegative() {
		return domain.NewValidationError("income", h.Income, "must not be negative")
	}
	if h.Expense.IsNegative() {
		return domain.NewValidationError("expense", h.Expense, "must not be negative")
	}
	if h.Investment.IsNegative() {
		return domain.NewValidationError("investment", h.Investment, "must not be negative")
	}
	return nil
}

// CreateExampleConfiguration creates an example configuration file
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	ref := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	return &domain.Configuration{
		AsOf: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		Scenarios: []domain.Scenario{
			{
				Name:        "Baseline",
				Description: "Car loan, index fund and retirement plan as they stand today",
				Loan: &domain.LoanParameters{
					Name:              "Car",
					RequestedAmount:   decimal.NewFromInt(30000),
					DownPayment:       decimal.NewFromInt(5000),
					TermMonths:        60,
					AnnualRatePercent: decimal.NewFromFloat(7.5),
				},
				Investment: &domain.InvestmentParameters{
					Name:                "Index fund",
					InitialBalance:      decimal.NewFromInt(10000),
					MonthlyContribution: decimal.NewFromInt(500),
					Months:              120,
					AnnualRatePercent:   decimal.NewFromInt(7),
				},
				Retirement: &domain.RetirementInputs{
					CurrentAge:                 35,
					RetirementAge:              65,
					CurrentSalary:              decimal.NewFromInt(6000),
					SavingsRatePercent:         decimal.NewFromInt(10),
					AnnualGrowthRatePercent:    decimal.NewFromInt(7),
					AnnualInflationRatePercent: decimal.NewFromInt(3),
				},
			},
		},
		CashFlow: &domain.CashFlowConfig{
			HorizonMonths: 12,
			Income: []domain.RecurringItem{
				{Title: "Salary", Amount: decimal.NewFromInt(6000), Recurrence: domain.RecurrenceMonthly, ReferenceDate: ref},
				{Title: "Bonus", Amount: decimal.NewFromInt(4000), Recurrence: domain.RecurrenceAnnual, ReferenceDate: ref},
			},
			Expenses: []domain.RecurringItem{
				{Title: "Rent", Amount: decimal.NewFromInt(1800), Recurrence: domain.RecurrenceMonthly, ReferenceDate: ref},
				{Title: "Car insurance", Amount: decimal.NewFromInt(450), Recurrence: domain.RecurrenceQuarterly, ReferenceDate: ref},
				{Title: "Property tax", Amount: decimal.NewFromInt(1200), Recurrence: domain.RecurrenceSemiannual, ReferenceDate: ref},
			},
		},
		Health: &domain.HealthInputs{
			Income:     decimal.NewFromInt(6000),
			Expense:    decimal.NewFromInt(3500),
			Investment: decimal.NewFromInt(800),
		},
	}
}

// WriteExampleConfiguration writes the example configuration as YAML.
func (ip *InputParser) WriteExampleConfiguration(filename string) error {
	data, err := yaml.Marshal(ip.CreateExampleConfiguration())
	if err != nil {
		return fmt.Errorf("failed to marshal example configuration: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}
