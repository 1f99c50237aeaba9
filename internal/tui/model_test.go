package tui

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/finproj/internal/calculation"
	"github.com/rgehrsitz/finproj/internal/domain"
	"github.com/rgehrsitz/finproj/internal/ledger"
	"github.com/rgehrsitz/finproj/internal/tui/scenes"
	"github.com/rgehrsitz/finproj/internal/tui/tuimsg"
	"github.com/rgehrsitz/finproj/internal/tui/tuistyles"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func testConfig() *domain.Configuration {
	return &domain.Configuration{
		AsOf: time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
		Scenarios: []domain.Scenario{
			{
				Name: "car",
				Loan: &domain.LoanParameters{RequestedAmount: dec("10000"), TermMonths: 12, AnnualRatePercent: dec("12")},
			},
			{
				Name: "nest_egg",
				Investment: &domain.InvestmentParameters{
					InitialBalance: dec("1000"), MonthlyContribution: dec("100"), Months: 12, AnnualRatePercent: dec("6"),
				},
			},
		},
		Health: &domain.HealthInputs{Income: dec("5000"), Expense: dec("2000"), Investment: dec("1000")},
	}
}

func loaded(t *testing.T) Model {
	t.Helper()
	return loadedWith(t, testConfig())
}

// loadedWith runs cfg through the same source selection as the loader.
func loadedWith(t *testing.T, cfg *domain.Configuration) Model {
	t.Helper()
	src, closeSrc, err := ledger.SourceFor(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = closeSrc() })

	results, err := calculation.NewCalculationEngine().Run(context.Background(), cfg, src)
	require.NoError(t, err)

	m := NewModel("plan.yaml")
	next, _ := m.Update(ResultsLoadedMsg{Config: cfg, Results: results})
	return next.(Model)
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press sends msg and then feeds back the application messages the returned
// commands produce, the way the runtime would.
func press(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, cmd := m.Update(msg)
	m = next.(Model)
	for cmd != nil {
		out := cmd()
		switch out.(type) {
		case NavigateMsg, ResultsLoadedMsg, tuimsg.ErrorMsg, tuimsg.ScenarioSelectedMsg,
			tuimsg.ComparisonRequestedMsg, tuimsg.ComparisonCompleteMsg,
			tuimsg.GoalSeekRequestedMsg, tuimsg.GoalSeekCompleteMsg:
		default:
			return m
		}
		next, cmd = m.Update(out)
		m = next.(Model)
	}
	return m
}

func TestModel_ResultsLoaded(t *testing.T) {
	m := loaded(t)
	assert.Equal(t, SceneHome, m.CurrentScene())
	assert.Equal(t, "car", m.SelectedScenario())
	assert.False(t, m.loading)

	view := m.View()
	assert.Contains(t, view, "finproj - Financial Projections")
	assert.Contains(t, view, "car installment")
	assert.Contains(t, view, "$888.49")
	assert.Contains(t, view, "Regular (90)")
}

func TestModel_Navigation(t *testing.T) {
	m := loaded(t)

	m = press(t, m, keyRunes("s"))
	assert.Equal(t, SceneScenarios, m.CurrentScene())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, SceneSchedule, m.CurrentScene())
	assert.Equal(t, "nest_egg", m.SelectedScenario())
	assert.Contains(t, m.View(), "Final balance")

	m = press(t, m, keyRunes("e"))
	assert.Equal(t, SceneHealth, m.CurrentScene())
	assert.Contains(t, m.View(), "Rating: Regular")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, SceneSchedule, m.CurrentScene())

	m = press(t, m, keyRunes("?"))
	assert.Equal(t, SceneHelp, m.CurrentScene())
	assert.Contains(t, m.View(), "Keyboard shortcuts")

	m = press(t, m, keyRunes("h"))
	assert.Equal(t, SceneHome, m.CurrentScene())

	_, cmd := m.Update(keyRunes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModel_CashFlowWithoutLedger(t *testing.T) {
	cfg := testConfig()
	cfg.Health = nil
	m := press(t, loadedWith(t, cfg), keyRunes("f"))
	assert.Equal(t, SceneCashFlow, m.CurrentScene())
	assert.Contains(t, m.View(), "No cash flow forecast")
}

func TestModel_HealthFromConfigBlock(t *testing.T) {
	m := loaded(t)
	require.NotNil(t, m.results.Health)
	assert.Equal(t, 90, m.results.Health.Score)

	m = press(t, m, keyRunes("e"))
	assert.Equal(t, SceneHealth, m.CurrentScene())
	assert.NotContains(t, m.View(), "No health score")
	assert.Contains(t, m.View(), "Regular")
}

func TestModel_CompareFlow(t *testing.T) {
	m := press(t, loaded(t), keyRunes("c"))
	require.Equal(t, SceneCompare, m.CurrentScene())
	assert.Contains(t, m.View(), "Compare car")

	// first loan template is selected with space, then compared
	m = press(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	view := m.View()
	assert.Contains(t, view, "SCENARIO COMPARISON")
	assert.Contains(t, view, "car_")
}

func TestModel_GoalFlow(t *testing.T) {
	m := press(t, loaded(t), keyRunes("g"))
	require.Equal(t, SceneGoal, m.CurrentScene())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.goalModel.Editing())

	// global keys are typed into the input while editing
	for _, r := range "500" {
		m = press(t, m, keyRunes(string(r)))
	}
	assert.Equal(t, SceneGoal, m.CurrentScene())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, scenes.ModeShowResult, m.goalModel.Mode())
	view := m.View()
	assert.Contains(t, view, "GOAL SEEK RESULTS")
	assert.Contains(t, view, "installment at most $500.00")
}

func TestModel_ErrorIsDismissedByAnyKey(t *testing.T) {
	m := NewModel("missing.yaml")
	next, _ := m.Update(tuimsg.ErrorMsg{Err: errors.New("boom")})
	m = next.(Model)
	assert.Contains(t, m.View(), "Error: boom")

	m = press(t, m, keyRunes("x"))
	assert.NoError(t, m.Err())
}

func TestLoadResultsCmd(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`as_of: 2026-01-01T00:00:00Z
scenarios:
  - name: car
    loan:
      requested_amount: 10000
      term_months: 12
      annual_rate_percent: 12
cash_flow:
  horizon_months: 2
  income:
    - title: Salary
      amount: 5000
      recurrence: monthly
      reference_date: 2026-01-05T00:00:00Z
`), 0o600))

	msg := loadResultsCmd(path, calculation.NewCalculationEngine())()
	loadedMsg, ok := msg.(ResultsLoadedMsg)
	require.True(t, ok, "%#v", msg)
	require.NotNil(t, loadedMsg.Results.CashFlow)
	assert.Len(t, loadedMsg.Results.CashFlow.Periods, 2)

	msg = loadResultsCmd(filepath.Join(dir, "nope.yaml"), calculation.NewCalculationEngine())()
	_, isErr := msg.(tuimsg.ErrorMsg)
	assert.True(t, isErr)
}

func TestScene_String(t *testing.T) {
	assert.Equal(t, "Cash Flow", SceneCashFlow.String())
	assert.Equal(t, "Goal Seek", SceneGoal.String())
	assert.Equal(t, "Unknown", Scene(99).String())
}

func TestSetTheme(t *testing.T) {
	t.Cleanup(func() { SetTheme("dark") })

	SetTheme("light")
	assert.Equal(t, lipgloss.Color("#666666"), tuistyles.ColorMuted)
	assert.Equal(t, lipgloss.TerminalColor(lipgloss.Color("#666666")), SubtitleStyle.GetForeground())

	SetTheme("unknown")
	assert.Equal(t, lipgloss.Color("#888888"), tuistyles.ColorMuted)
}
