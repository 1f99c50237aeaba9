package breakeven

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rgehrsitz/finproj/internal/calculation"
	"github.com/rgehrsitz/finproj/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func ptr(d decimal.Decimal) *decimal.Decimal { return &d }

func savingsPlan() *domain.Scenario {
	return &domain.Scenario{
		Name: "savings",
		Investment: &domain.InvestmentParameters{
			MonthlyContribution: dec("50"),
			Months:              12,
			AnnualRatePercent:   decimal.Zero,
		},
	}
}

func retirementPlan() *domain.Scenario {
	return &domain.Scenario{
		Name: "retire",
		Retirement: &domain.RetirementInputs{
			CurrentAge:                 30,
			RetirementAge:              65,
			CurrentSalary:              dec("5000"),
			SavingsRatePercent:         dec("10"),
			AnnualGrowthRatePercent:    dec("8"),
			AnnualInflationRatePercent: dec("3"),
		},
	}
}

func carLoan() *domain.Scenario {
	return &domain.Scenario{
		Name: "car",
		Loan: &domain.LoanParameters{
			RequestedAmount:   dec("10000"),
			TermMonths:        12,
			AnnualRatePercent: dec("12"),
		},
	}
}

func newSolver() *Solver {
	return NewDefaultSolver(calculation.NewCalculationEngine())
}

func TestSolve_MonthlyContribution(t *testing.T) {
	res, err := newSolver().Solve(context.Background(), Request{
		BaseScenario: savingsPlan(),
		Target:       TargetMonthlyContribution,
		Goal:         dec("1200"),
	})
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Equal(t, "savings", res.Scenario)
	assert.True(t, dec("100").Equal(res.OptimalValue), res.OptimalValue.String())
	assert.True(t, dec("1200").Equal(res.Achieved), res.Achieved.String())
	assert.True(t, dec("50").Equal(res.BaseValue))
	assert.True(t, dec("600").Equal(res.BaseAchieved))
	require.NotNil(t, res.ScenarioResult)
	assert.Equal(t, 12, len(res.ScenarioResult.Investment.Projection))
	assert.LessOrEqual(t, res.Iterations, DefaultSolverOptions().MaxIterations)
}

func TestSolve_MonthlyContributionGrowsBracket(t *testing.T) {
	// a negative opening balance leaves the first upper bound short
	base := savingsPlan()
	base.Investment.InitialBalance = dec("-1200")

	res, err := newSolver().Solve(context.Background(), Request{
		BaseScenario: base,
		Target:       TargetMonthlyContribution,
		Goal:         dec("1200"),
	})
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.True(t, dec("200").Equal(res.OptimalValue), res.OptimalValue.String())
	assert.True(t, res.Achieved.GreaterThanOrEqual(dec("1200")))
}

func TestSolve_SavingsRate(t *testing.T) {
	// income is proportional to the savings rate, so doubling the income
	// doubles the rate
	res, err := newSolver().Solve(context.Background(), Request{
		BaseScenario: retirementPlan(),
		Target:       TargetSavingsRate,
		Goal:         dec("38790.06"),
	})
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.True(t, dec("10").Equal(res.BaseValue))
	assert.True(t, dec("19395.03").Equal(res.BaseAchieved), res.BaseAchieved.String())
	assert.True(t, res.OptimalValue.Sub(dec("20")).Abs().LessThanOrEqual(dec("0.02")), res.OptimalValue.String())
	assert.True(t, res.Achieved.GreaterThanOrEqual(dec("38790.06")), res.Achieved.String())
	assert.Equal(t, res.OptimalValue.Round(2).String(), res.OptimalValue.String())
}

func TestSolve_LoanTerm(t *testing.T) {
	res, err := newSolver().Solve(context.Background(), Request{
		BaseScenario: carLoan(),
		Target:       TargetLoanTerm,
		Goal:         dec("500"),
	})
	require.NoError(t, err)

	// 22 months costs about 508.60 a month, 23 months about 488.85
	assert.True(t, res.Success)
	assert.True(t, dec("23").Equal(res.OptimalValue), res.OptimalValue.String())
	assert.True(t, res.Achieved.LessThanOrEqual(dec("500")))
	assert.True(t, res.Achieved.GreaterThan(dec("480")))
	assert.True(t, dec("12").Equal(res.BaseValue))
	assert.True(t, dec("888.49").Equal(res.BaseAchieved))
	assert.Equal(t, 23, res.ScenarioResult.Loan.TermMonths())
}

func TestSolve_LowerBoundAlreadyMet(t *testing.T) {
	res, err := newSolver().Solve(context.Background(), Request{
		BaseScenario: carLoan(),
		Target:       TargetLoanTerm,
		Goal:         dec("20000"),
	})
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.True(t, dec("1").Equal(res.OptimalValue))
	assert.Equal(t, 1, res.Iterations)
	assert.Equal(t, "goal already met at the lower bound", res.ConvergenceInfo)
}

func TestSolve_Unreachable(t *testing.T) {
	tests := []struct {
		name string
		req  Request
	}{
		{"installment below interest", Request{BaseScenario: carLoan(), Target: TargetLoanTerm, Goal: dec("50")}},
		{"explicit max too low", Request{
			BaseScenario: savingsPlan(), Target: TargetMonthlyContribution, Goal: dec("1200"), Max: ptr(dec("90")),
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newSolver().Solve(context.Background(), tt.req)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "is not reachable within")

			var beErr *BreakEvenError
			assert.True(t, errors.As(err, &beErr))
		})
	}
}

func TestSolve_MaxIterations(t *testing.T) {
	solver := NewSolver(calculation.NewCalculationEngine(), SolverOptions{
		Tolerance:     dec("0.0001"),
		MaxIterations: 4,
	})
	res, err := solver.Solve(context.Background(), Request{
		BaseScenario: retirementPlan(),
		Target:       TargetSavingsRate,
		Goal:         dec("38790.06"),
	})
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, 4, res.Iterations)
	assert.Equal(t, "max iterations (4) reached", res.ConvergenceInfo)
	assert.True(t, res.Achieved.GreaterThanOrEqual(dec("38790.06")))
}

func TestSolve_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  Request
		want string
	}{
		{"no scenario", Request{Target: TargetLoanTerm, Goal: dec("1")}, "base scenario is required"},
		{"zero goal", Request{BaseScenario: carLoan(), Target: TargetLoanTerm}, "goal must be positive"},
		{"inverted bounds", Request{
			BaseScenario: carLoan(), Target: TargetLoanTerm, Goal: dec("500"), Min: ptr(dec("10")), Max: ptr(dec("5")),
		}, "min cannot be greater than max"},
		{"negative min", Request{
			BaseScenario: savingsPlan(), Target: TargetMonthlyContribution, Goal: dec("500"), Min: ptr(dec("-1")),
		}, "min must not be negative"},
		{"missing block", Request{BaseScenario: carLoan(), Target: TargetSavingsRate, Goal: dec("500")},
			"target savings_rate needs a scenario with a retirement block"},
		{"unknown target", Request{BaseScenario: carLoan(), Target: "speed", Goal: dec("500")}, "unsupported target: speed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newSolver().Solve(context.Background(), tt.req)
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestSolve_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := newSolver().Solve(ctx, Request{BaseScenario: carLoan(), Target: TargetLoanTerm, Goal: dec("500")})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSolve_DoesNotModifyBase(t *testing.T) {
	base := carLoan()
	_, err := newSolver().Solve(context.Background(), Request{BaseScenario: base, Target: TargetLoanTerm, Goal: dec("500")})
	require.NoError(t, err)
	assert.Equal(t, 12, base.Loan.TermMonths)
}

func TestParseTarget(t *testing.T) {
	for _, target := range Targets {
		got, err := ParseTarget(string(target))
		require.NoError(t, err)
		assert.Equal(t, target, got)
	}
	_, err := ParseTarget("speed")
	assert.EqualError(t, err, "parse_target: unsupported target: speed")
}

func TestFormatters(t *testing.T) {
	res, err := newSolver().Solve(context.Background(), Request{
		BaseScenario: carLoan(),
		Target:       TargetLoanTerm,
		Goal:         dec("500"),
	})
	require.NoError(t, err)

	out := (&TableFormatter{}).Format(res)
	assert.Contains(t, out, "GOAL SEEK RESULTS")
	assert.Contains(t, out, "Target:       loan_term")
	assert.Contains(t, out, "installment at most $500.00")
	assert.Contains(t, out, "Status:       converged")
	assert.Contains(t, out, "Term (months)")
	assert.Contains(t, out, "$888.49")

	js, err := (&JSONFormatter{Pretty: true}).Format(res)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(js), &decoded))
	assert.Equal(t, "loan_term", decoded["target"])
	assert.Equal(t, "23", decoded["optimal_value"])
	assert.Equal(t, true, decoded["success"])
}
