package breakeven

import (
	"context"
	"fmt"

	"github.com/rgehrsitz/finproj/internal/calculation"
	"github.com/rgehrsitz/finproj/internal/domain"
	"github.com/rgehrsitz/finproj/internal/transform"
	"github.com/shopspring/decimal"
)

// Solver finds the parameter value at which a scenario reaches a goal. Every
// target is monotone in its parameter, so a bisection over a bracket whose
// upper end reaches the goal and whose lower end does not always converges.
type Solver struct {
	CalcEngine *calculation.CalculationEngine
	Options    SolverOptions
}

// NewSolver creates a new break-even solver
func NewSolver(calcEngine *calculation.CalculationEngine, options SolverOptions) *Solver {
	return &Solver{
		CalcEngine: calcEngine,
		Options:    options,
	}
}

// NewDefaultSolver creates a solver with default options
func NewDefaultSolver(calcEngine *calculation.CalculationEngine) *Solver {
	return NewSolver(calcEngine, DefaultSolverOptions())
}

var (
	two            = decimal.NewFromInt(2)
	hundred        = decimal.NewFromInt(100)
	maxTermMonths  = decimal.NewFromInt(600)
	defaultMinTerm = decimal.NewFromInt(1)
)

// probe binds a target to the transform that sets its parameter and the
// metric it is judged by.
type probe struct {
	op        string
	integer   bool
	set       func(v decimal.Decimal) transform.ScenarioTransform
	metric    func(*domain.ScenarioResult) decimal.Decimal
	reached   func(metric, goal decimal.Decimal) bool
	baseValue func(*domain.Scenario) decimal.Decimal
}

var probes = map[Target]probe{
	TargetMonthlyContribution: {
		op:        "solve_monthly_contribution",
		set:       func(v decimal.Decimal) transform.ScenarioTransform { return &transform.SetContribution{Amount: v} },
		metric:    func(r *domain.ScenarioResult) decimal.Decimal { return r.Investment.FinalBalance },
		reached:   func(m, goal decimal.Decimal) bool { return m.GreaterThanOrEqual(goal) },
		baseValue: func(s *domain.Scenario) decimal.Decimal { return s.Investment.MonthlyContribution },
	},
	TargetSavingsRate: {
		op:        "solve_savings_rate",
		set:       func(v decimal.Decimal) transform.ScenarioTransform { return &transform.SetSavingsRate{Percent: v} },
		metric:    func(r *domain.ScenarioResult) decimal.Decimal { return r.Retirement.MonthlyIncomeEstimate },
		reached:   func(m, goal decimal.Decimal) bool { return m.GreaterThanOrEqual(goal) },
		baseValue: func(s *domain.Scenario) decimal.Decimal { return s.Retirement.SavingsRatePercent },
	},
	TargetLoanTerm: {
		op:      "solve_loan_term",
		integer: true,
		set: func(v decimal.Decimal) transform.ScenarioTransform {
			return &transform.SetLoanTerm{Months: int(v.IntPart())}
		},
		metric:    func(r *domain.ScenarioResult) decimal.Decimal { return r.Loan.Installment },
		reached:   func(m, goal decimal.Decimal) bool { return m.LessThanOrEqual(goal) },
		baseValue: func(s *domain.Scenario) decimal.Decimal { return decimal.NewFromInt(int64(s.Loan.TermMonths)) },
	},
}

// Solve runs one goal-seeking request.
func (s *Solver) Solve(ctx context.Context, req Request) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if req.MaxIterations == 0 {
		req.MaxIterations = s.Options.MaxIterations
	}
	if req.Tolerance.IsZero() {
		req.Tolerance = s.Options.Tolerance
	}

	p := probes[req.Target]
	baseRes, err := s.CalcEngine.RunScenario(ctx, req.BaseScenario)
	if err != nil {
		return nil, &BreakEvenError{Operation: p.op, Message: "failed to calculate base scenario", Cause: err}
	}

	result := &Result{
		Scenario:     req.BaseScenario.Name,
		Target:       req.Target,
		Goal:         req.Goal,
		BaseValue:    p.baseValue(req.BaseScenario),
		BaseAchieved: p.metric(baseRes),
	}

	lo, hi, hasMax := s.bounds(req)
	iterations := 0

	loMetric, loRes, err := s.evaluate(ctx, req, p, lo)
	iterations++
	if err != nil {
		return nil, err
	}
	if p.reached(loMetric, req.Goal) {
		result.fill(lo, loMetric, loRes, iterations, true, "goal already met at the lower bound")
		return result, nil
	}

	hiMetric, hiRes, err := s.evaluate(ctx, req, p, hi)
	iterations++
	if err != nil {
		return nil, err
	}
	for !p.reached(hiMetric, req.Goal) {
		if hasMax || iterations >= req.MaxIterations {
			return nil, &BreakEvenError{
				Operation: p.op,
				Message:   fmt.Sprintf("goal %s is not reachable within [%s, %s]", req.Goal.StringFixed(2), lo.String(), hi.String()),
			}
		}
		lo = hi
		hi = hi.Mul(two)
		if hiMetric, hiRes, err = s.evaluate(ctx, req, p, hi); err != nil {
			return nil, err
		}
		iterations++
	}

	for s.open(p, lo, hi, req.Tolerance) {
		if iterations >= req.MaxIterations {
			result.fill(hi, hiMetric, hiRes, iterations, false,
				fmt.Sprintf("max iterations (%d) reached", req.MaxIterations))
			return result, nil
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		mid := lo.Add(hi).Div(two)
		if p.integer {
			mid = mid.Floor()
		}
		m, res, err := s.evaluate(ctx, req, p, mid)
		iterations++
		if err != nil {
			return nil, err
		}
		if p.reached(m, req.Goal) {
			hi, hiMetric, hiRes = mid, m, res
		} else {
			lo = mid
		}
	}

	if !p.integer {
		// report a value in cents that still reaches the goal
		rounded := hi.Mul(hundred).Ceil().Div(hundred)
		if !rounded.Equal(hi) {
			if hiMetric, hiRes, err = s.evaluate(ctx, req, p, rounded); err != nil {
				return nil, err
			}
			hi = rounded
		}
	}

	result.fill(hi, hiMetric, hiRes, iterations, true,
		fmt.Sprintf("bisection converged within %s", req.Tolerance.String()))
	return result, nil
}

// bounds returns the search bracket. hasMax is false when the upper end may
// be grown.
func (s *Solver) bounds(req Request) (lo, hi decimal.Decimal, hasMax bool) {
	switch req.Target {
	case TargetLoanTerm:
		lo, hi = defaultMinTerm, maxTermMonths
		hasMax = true
	case TargetSavingsRate:
		lo, hi = decimal.Zero, hundred
		hasMax = true
	default:
		lo = decimal.Zero
		months := decimal.NewFromInt(int64(req.BaseScenario.Investment.Months))
		hi = decimal.Max(req.Goal.Div(months).Ceil(), decimal.NewFromInt(1))
	}

	if req.Min != nil {
		lo = *req.Min
		if req.Target == TargetLoanTerm {
			lo = decimal.Max(lo.Floor(), defaultMinTerm)
		}
	}
	if req.Max != nil {
		hi = *req.Max
		if req.Target == TargetLoanTerm {
			hi = hi.Floor()
		}
		hasMax = true
	}
	if hi.LessThan(lo) {
		hi = lo
	}
	return lo, hi, hasMax
}

// open reports whether the bracket still needs narrowing.
func (s *Solver) open(p probe, lo, hi, tolerance decimal.Decimal) bool {
	if p.integer {
		return hi.Sub(lo).GreaterThan(decimal.NewFromInt(1))
	}
	return hi.Sub(lo).GreaterThan(tolerance)
}

func (s *Solver) evaluate(ctx context.Context, req Request, p probe, v decimal.Decimal) (decimal.Decimal, *domain.ScenarioResult, error) {
	modified, err := transform.ApplyTransforms(req.BaseScenario, []transform.ScenarioTransform{p.set(v)})
	if err != nil {
		return decimal.Zero, nil, &BreakEvenError{Operation: p.op, Message: "failed to apply transform", Cause: err}
	}
	res, err := s.CalcEngine.RunScenario(ctx, modified)
	if err != nil {
		return decimal.Zero, nil, &BreakEvenError{Operation: p.op, Message: "failed to calculate scenario", Cause: err}
	}
	return p.metric(res), res, nil
}

func (r *Result) fill(value, metric decimal.Decimal, res *domain.ScenarioResult, iterations int, success bool, info string) {
	r.OptimalValue = value
	r.Achieved = metric
	r.ScenarioResult = res
	r.Iterations = iterations
	r.Success = success
	r.ConvergenceInfo = info
}
