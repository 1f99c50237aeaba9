package calculation

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/rgehrsitz/finproj/internal/domain"
	"github.com/rgehrsitz/finproj/pkg/dateutil"
)

// DefaultHorizonMonths is used when a ledger is supplied without a cash_flow block.
const DefaultHorizonMonths = 12

// LedgerSource supplies read-only snapshots of the recurring ledger and the
// aggregate totals of a calendar month.
type LedgerSource interface {
	RecurringIncome(ctx context.Context) ([]domain.RecurringItem, error)
	RecurringExpenses(ctx context.Context) ([]domain.RecurringItem, error)
	PeriodTotals(ctx context.Context, month time.Time) (domain.HealthInputs, error)
}

// CalculationEngine runs every simulation named in a configuration.
type CalculationEngine struct {
	Logger  Logger
	Workers int
}

// NewCalculationEngine creates an engine that fans scenarios out over GOMAXPROCS workers.
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{
		Logger:  NopLogger{},
		Workers: runtime.GOMAXPROCS(0),
	}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// RunScenario runs the loan, investment and retirement blocks present in scenario.
func (ce *CalculationEngine) RunScenario(ctx context.Context, scenario *domain.Scenario) (*domain.ScenarioResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &domain.ScenarioResult{Name: scenario.Name}
	if scenario.IsEmpty() {
		ce.Logger.Warnf("scenario %q has no loan, investment or retirement block", scenario.Name)
	}

	if scenario.Loan != nil {
		loan, err := SimulateLoan(*scenario.Loan)
		if err != nil {
			return nil, fmt.Errorf("scenario %s: loan: %w", scenario.Name, err)
		}
		ce.Logger.Debugf("scenario %s: installment %s over %d months", scenario.Name, loan.Installment.StringFixed(2), loan.TermMonths())
		result.Loan = loan
	}

	if scenario.Investment != nil {
		inv, err := SimulateInvestment(*scenario.Investment)
		if err != nil {
			return nil, fmt.Errorf("scenario %s: investment: %w", scenario.Name, err)
		}
		ce.Logger.Debugf("scenario %s: investment final balance %s", scenario.Name, inv.FinalBalance.StringFixed(2))
		result.Investment = inv
	}

	if scenario.Retirement != nil {
		ret, err := SimulateRetirement(*scenario.Retirement)
		if err != nil {
			return nil, fmt.Errorf("scenario %s: retirement: %w", scenario.Name, err)
		}
		ce.Logger.Debugf("scenario %s: retirement balance %s after %d years", scenario.Name, ret.FinalBalance.StringFixed(2), ret.ContributionYears)
		result.Retirement = ret
	}

	return result, nil
}

// RunScenarios runs every scenario of config over a bounded worker pool.
// Results keep the input order; the first failing scenario (in input order)
// is returned as the error.
func (ce *CalculationEngine) RunScenarios(ctx context.Context, config *domain.Configuration) ([]domain.ScenarioResult, error) {
	n := len(config.Scenarios)
	if n == 0 {
		return nil, nil
	}

	workers := ce.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > n {
		workers = n
	}

	results := make([]*domain.ScenarioResult, n)
	errs := make([]error, n)
	work := make(chan int, n)
	for i := range config.Scenarios {
		work <- i
	}
	close(work)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for idx := range work {
				results[idx], errs[idx] = ce.RunScenario(ctx, &config.Scenarios[idx])
			}
		}()
	}
	wg.Wait()

	out := make([]domain.ScenarioResult, n)
	for i := range results {
		if errs[i] != nil {
			return nil, errs[i]
		}
		out[i] = *results[i]
	}
	return out, nil
}

// Run computes everything config asks for. When src is non-nil the cash-flow
// forecast and the health score are computed from its snapshot.
func (ce *CalculationEngine) Run(ctx context.Context, config *domain.Configuration, src LedgerSource) (*domain.Results, error) {
	asOf := config.AsOf
	if asOf.IsZero() {
		asOf = nowFunc()
	}
	asOf = dateutil.MonthStart(asOf)

	scenarios, err := ce.RunScenarios(ctx, config)
	if err != nil {
		return nil, err
	}
	results := &domain.Results{AsOf: asOf, Scenarios: scenarios}

	if src == nil {
		return results, nil
	}

	horizon := DefaultHorizonMonths
	if config.CashFlow != nil {
		horizon = config.CashFlow.HorizonMonths
	}
	forecast, err := ce.Forecast(ctx, src, asOf, horizon)
	if err != nil {
		return nil, err
	}
	results.CashFlow = forecast

	health, err := ce.Health(ctx, src, asOf)
	if err != nil {
		return nil, err
	}
	results.Health = health

	return results, nil
}

// Forecast pulls the recurring items from src and projects them from start.
func (ce *CalculationEngine) Forecast(ctx context.Context, src LedgerSource, start time.Time, horizon int) (*domain.CashFlowForecast, error) {
	income, err := src.RecurringIncome(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load recurring income: %w", err)
	}
	expenses, err := src.RecurringExpenses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load recurring expenses: %w", err)
	}
	ce.Logger.Debugf("forecasting %d income and %d expense items over %d months", len(income), len(expenses), horizon)

	forecast, err := ForecastCashFlowFrom(start, income, expenses, horizon)
	if err != nil {
		return nil, fmt.Errorf("cash flow: %w", err)
	}
	return forecast, nil
}

// Health scores the totals src reports for month.
func (ce *CalculationEngine) Health(ctx context.Context, src LedgerSource, month time.Time) (*domain.HealthSnapshot, error) {
	totals, err := src.PeriodTotals(ctx, month)
	if err != nil {
		return nil, fmt.Errorf("failed to load totals for %s: %w", dateutil.MonthLabel(month), err)
	}
	snapshot := ScoreHealth(totals)
	ce.Logger.Debugf("health %s: debt ratio %s%%, score %d", dateutil.MonthLabel(month), snapshot.DebtRatio.StringFixed(2), snapshot.Score)
	return &snapshot, nil
}
