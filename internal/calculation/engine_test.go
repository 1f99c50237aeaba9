package calculation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/rgehrsitz/finproj/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCalculationEngine(t *testing.T) {
	engine := NewCalculationEngine()

	assert.NotNil(t, engine, "Should create engine")
	assert.NotNil(t, engine.Logger, "Should initialize logger")
	assert.GreaterOrEqual(t, engine.Workers, 1)
}

func TestCalculationEngine_SetLogger(t *testing.T) {
	engine := NewCalculationEngine()

	customLogger := &TestLogger{}
	engine.SetLogger(customLogger)
	assert.Equal(t, customLogger, engine.Logger, "Should set custom logger")

	engine.SetLogger(nil)
	assert.NotNil(t, engine.Logger, "Should not be nil")
	assert.IsType(t, NopLogger{}, engine.Logger, "Should be no-op logger")
}

func testConfig() *domain.Configuration {
	return &domain.Configuration{
		AsOf: time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
		Scenarios: []domain.Scenario{
			{
				Name: "loan",
				Loan: &domain.LoanParameters{RequestedAmount: d("10000"), TermMonths: 12, AnnualRatePercent: d("12")},
			},
			{
				Name:       "invest",
				Investment: &domain.InvestmentParameters{InitialBalance: d("1000"), MonthlyContribution: d("100"), Months: 12, AnnualRatePercent: d("9.6")},
			},
			{
				Name: "retire",
				Retirement: &domain.RetirementInputs{
					CurrentAge: 30, RetirementAge: 65, CurrentSalary: d("5000"),
					SavingsRatePercent: d("10"), AnnualGrowthRatePercent: d("8"), AnnualInflationRatePercent: d("3"),
				},
			},
		},
	}
}

func TestCalculationEngine_RunScenarios_PreservesOrder(t *testing.T) {
	engine := NewCalculationEngine()
	engine.Workers = 3

	cfg := testConfig()
	for i := 0; i < 20; i++ {
		cfg.Scenarios = append(cfg.Scenarios, domain.Scenario{
			Name: fmt.Sprintf("extra-%02d", i),
			Loan: &domain.LoanParameters{RequestedAmount: d("1000"), TermMonths: i + 1, AnnualRatePercent: d("6")},
		})
	}

	results, err := engine.RunScenarios(context.Background(), cfg)
	require.NoError(t, err)
	require.Len(t, results, len(cfg.Scenarios))
	for i := range cfg.Scenarios {
		assert.Equal(t, cfg.Scenarios[i].Name, results[i].Name)
	}
	assertDecimal(t, "888.49", results[0].Loan.Installment)
	assertDecimal(t, "2354.57", results[1].Investment.FinalBalance)
	assertDecimal(t, "2909254.7", results[2].Retirement.FinalBalance)
	assert.Equal(t, 20, results[22].Loan.TermMonths())
}

func TestCalculationEngine_RunScenarios_Error(t *testing.T) {
	engine := NewCalculationEngine()
	cfg := testConfig()
	cfg.Scenarios[2].Retirement.RetirementAge = 30

	results, err := engine.RunScenarios(context.Background(), cfg)
	require.Error(t, err)
	assert.Nil(t, results)
	assert.Contains(t, err.Error(), "scenario retire: retirement")
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestCalculationEngine_RunScenario_Cancelled(t *testing.T) {
	engine := NewCalculationEngine()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := engine.RunScenario(ctx, &testConfig().Scenarios[0])
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCalculationEngine_RunScenario_EmptyWarns(t *testing.T) {
	engine := NewCalculationEngine()
	logger := &TestLogger{}
	engine.SetLogger(logger)

	result, err := engine.RunScenario(context.Background(), &domain.Scenario{Name: "nothing"})
	require.NoError(t, err)
	assert.Nil(t, result.Loan)
	assert.Contains(t, logger.Messages(), "WARN: scenario %q has no loan, investment or retirement block")
}

type fakeSource struct {
	income, expenses []domain.RecurringItem
	totals           domain.HealthInputs
	err              error
	month            time.Time
}

func (f *fakeSource) RecurringIncome(ctx context.Context) ([]domain.RecurringItem, error) {
	return f.income, f.err
}

func (f *fakeSource) RecurringExpenses(ctx context.Context) ([]domain.RecurringItem, error) {
	return f.expenses, nil
}

func (f *fakeSource) PeriodTotals(ctx context.Context, month time.Time) (domain.HealthInputs, error) {
	f.month = month
	return f.totals, nil
}

func TestCalculationEngine_Run_WithLedger(t *testing.T) {
	engine := NewCalculationEngine()
	income, expenses := sampleItems()
	src := &fakeSource{
		income:   income,
		expenses: expenses,
		totals:   domain.HealthInputs{Income: d("5000"), Expense: d("4000")},
	}

	cfg := testConfig()
	cfg.CashFlow = &domain.CashFlowConfig{HorizonMonths: 6}

	results, err := engine.Run(context.Background(), cfg, src)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), results.AsOf)
	assert.Equal(t, results.AsOf, src.month)
	require.NotNil(t, results.CashFlow)
	assert.Len(t, results.CashFlow.Periods, 6)
	assert.Equal(t, "2026-01", results.CashFlow.Periods[0].Month)
	require.NotNil(t, results.Health)
	assert.Equal(t, 30, results.Health.Score)
}

func TestCalculationEngine_Run_DefaultHorizon(t *testing.T) {
	engine := NewCalculationEngine()
	results, err := engine.Run(context.Background(), &domain.Configuration{AsOf: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)}, &fakeSource{})
	require.NoError(t, err)
	assert.Len(t, results.CashFlow.Periods, DefaultHorizonMonths)
	assert.Empty(t, results.Scenarios)
}

func TestCalculationEngine_Run_SourceError(t *testing.T) {
	engine := NewCalculationEngine()
	src := &fakeSource{err: errors.New("ledger offline")}

	_, err := engine.Run(context.Background(), testConfig(), src)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load recurring income: ledger offline")
}

func TestCalculationEngine_Run_NoSource(t *testing.T) {
	SetNowFunc(func() time.Time { return time.Date(2026, 5, 20, 0, 0, 0, 0, time.UTC) })
	defer SetNowFunc(time.Now)

	cfg := testConfig()
	cfg.AsOf = time.Time{}
	results, err := NewCalculationEngine().Run(context.Background(), cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC), results.AsOf)
	assert.Nil(t, results.CashFlow)
	assert.Nil(t, results.Health)
}

func TestCalculationEngine_Deterministic(t *testing.T) {
	income, expenses := sampleItems()
	src := &fakeSource{income: income, expenses: expenses, totals: domain.HealthInputs{Income: d("3000"), Expense: d("1000")}}

	run := func() []byte {
		results, err := NewCalculationEngine().Run(context.Background(), testConfig(), src)
		require.NoError(t, err)
		out, err := json.Marshal(results)
		require.NoError(t, err)
		return out
	}
	assert.Equal(t, string(run()), string(run()))
}

// TestLogger is a simple logger for testing
type TestLogger struct {
	mu       sync.Mutex
	messages []string
}

func (tl *TestLogger) record(msg string) {
	tl.mu.Lock()
	defer tl.mu.Unlock()
	tl.messages = append(tl.messages, msg)
}

func (tl *TestLogger) Messages() []string {
	tl.mu.Lock()
	defer tl.mu.Unlock()
	return append([]string(nil), tl.messages...)
}

func (tl *TestLogger) Debugf(format string, args ...any) { tl.record("DEBUG: " + format) }
func (tl *TestLogger) Infof(format string, args ...any)  { tl.record("INFO: " + format) }
func (tl *TestLogger) Warnf(format string, args ...any)  { tl.record("WARN: " + format) }
func (tl *TestLogger) Errorf(format string, args ...any) { tl.record("ERROR: " + format) }
