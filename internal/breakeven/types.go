package breakeven

import (
	"fmt"

	"github.com/rgehrsitz/finproj/internal/domain"
	"github.com/shopspring/decimal"
)

// Target names the scenario parameter the solver searches over.
type Target string

const (
	// TargetMonthlyContribution finds the smallest monthly investment
	// contribution whose final balance reaches Goal.
	TargetMonthlyContribution Target = "monthly_contribution"
	// TargetSavingsRate finds the smallest savings-rate percent whose
	// retirement monthly income estimate reaches Goal.
	TargetSavingsRate Target = "savings_rate"
	// TargetLoanTerm finds the shortest loan term whose installment is at
	// most Goal.
	TargetLoanTerm Target = "loan_term"
)

// Targets lists the supported targets.
var Targets = []Target{TargetMonthlyContribution, TargetSavingsRate, TargetLoanTerm}

// ParseTarget normalizes a target name.
func ParseTarget(s string) (Target, error) {
	for _, t := range Targets {
		if string(t) == s {
			return t, nil
		}
	}
	return "", &BreakEvenError{Operation: "parse_target", Message: fmt.Sprintf("unsupported target: %s", s)}
}

// Request describes one goal-seeking run.
type Request struct {
	BaseScenario *domain.Scenario
	Target       Target
	Goal         decimal.Decimal

	// Optional search bounds. Contribution and savings rate default to
	// [0, auto] and [0, 100]; loan term defaults to [1, 600] months.
	Min *decimal.Decimal
	Max *decimal.Decimal

	MaxIterations int
	Tolerance     decimal.Decimal
}

// Validate checks the request against the scenario it edits.
func (r *Request) Validate() error {
	if r.BaseScenario == nil {
		return &BreakEvenError{Operation: "validate_request", Message: "base scenario is required"}
	}
	if !r.Goal.IsPositive() {
		return &BreakEvenError{Operation: "validate_request", Message: "goal must be positive"}
	}
	if r.Min != nil && r.Max != nil && r.Min.GreaterThan(*r.Max) {
		return &BreakEvenError{Operation: "validate_request", Message: "min cannot be greater than max"}
	}
	if r.Min != nil && r.Min.IsNegative() {
		return &BreakEvenError{Operation: "validate_request", Message: "min must not be negative"}
	}

	block := ""
	switch r.Target {
	case TargetMonthlyContribution:
		if r.BaseScenario.Investment == nil {
			block = "investment"
		}
	case TargetSavingsRate:
		if r.BaseScenario.Retirement == nil {
			block = "retirement"
		}
	case TargetLoanTerm:
		if r.BaseScenario.Loan == nil {
			block = "loan"
		}
	default:
		return &BreakEvenError{Operation: "validate_request", Message: fmt.Sprintf("unsupported target: %s", r.Target)}
	}
	if block != "" {
		return &BreakEvenError{
			Operation: "validate_request",
			Message:   fmt.Sprintf("target %s needs a scenario with a %s block", r.Target, block),
		}
	}
	return nil
}

// Result is the outcome of a goal-seeking run.
type Result struct {
	Scenario        string          `json:"scenario"`
	Target          Target          `json:"target"`
	Goal            decimal.Decimal `json:"goal"`
	Success         bool            `json:"success"`
	Iterations      int             `json:"iterations"`
	ConvergenceInfo string          `json:"convergence_info,omitempty"`

	// Parameter found and its value in the base scenario.
	OptimalValue decimal.Decimal `json:"optimal_value"`
	BaseValue    decimal.Decimal `json:"base_value"`

	// Metric at the optimum and in the base scenario: final balance,
	// monthly income or installment depending on the target.
	Achieved     decimal.Decimal `json:"achieved"`
	BaseAchieved decimal.Decimal `json:"base_achieved"`

	ScenarioResult *domain.ScenarioResult `json:"scenario_result,omitempty"`
}

// SolverOptions configures the solver algorithm
type SolverOptions struct {
	Tolerance     decimal.Decimal // Bracket width at which bisection stops
	MaxIterations int
}

// DefaultSolverOptions returns default solver configuration
func DefaultSolverOptions() SolverOptions {
	return SolverOptions{
		Tolerance:     decimal.NewFromFloat(0.01),
		MaxIterations: 100,
	}
}

// BreakEvenError represents errors from break-even solver
type BreakEvenError struct {
	Operation string
	Message   string
	Cause     error
}

func (e *BreakEvenError) Error() string {
	if e.Cause != nil {
		return e.Operation + ": " + e.Message + ": " + e.Cause.Error()
	}
	return e.Operation + ": " + e.Message
}

func (e *BreakEvenError) Unwrap() error {
	return e.Cause
}
