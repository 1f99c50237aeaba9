package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/finproj/internal/config"
	"github.com/rgehrsitz/finproj/internal/domain"
)

const planYAML = `as_of: 2026-01-01T00:00:00Z
scenarios:
  - name: car
    loan:
      requested_amount: 10000
      term_months: 12
      annual_rate_percent: 12
  - name: nest_egg
    investment:
      initial_balance: 1000
      monthly_contribution: 100
      months: 12
      annual_rate_percent: 6
health:
  income: 5000
  expense: 2000
  investment: 1000
`

const snapshotYAML = `income:
  - title: Salary
    amount: 4200
    recurrence: monthly
    reference_date: 2025-01-05
expenses:
  - id: rent-1
    title: Rent
    amount: 1500
    recurrence: monthly
    reference_date: 2025-01-01
`

// execute runs the CLI with isolated preferences and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("FINPROJ_LEDGER", "")

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRootCommand(t *testing.T) {
	cmd := newRootCmd()
	assert.Equal(t, "finproj", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
	assert.NotNil(t, cmd.PersistentFlags().Lookup("debug"))
}

func TestCommandSubcommands(t *testing.T) {
	expected := []string{
		"calculate", "validate", "example", "loan", "invest", "retire",
		"cashflow", "health", "compare", "goal", "ledger", "prefs", "wizard", "version",
	}

	registered := map[string]bool{}
	for _, c := range newRootCmd().Commands() {
		registered[c.Name()] = true
	}
	for _, name := range expected {
		assert.True(t, registered[name], "expected command %q to be registered", name)
	}
}

func TestRootCommand_InvalidCommand(t *testing.T) {
	_, err := execute(t, "invalid-command")
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "finproj dev")
}

func TestLoanCommand(t *testing.T) {
	out, err := execute(t, "loan", "--amount", "10000", "--term", "12", "--rate", "12")
	require.NoError(t, err)
	assert.Contains(t, out, "SCENARIO: loan")
	assert.Contains(t, out, "$888.49 x 12")
	assert.Contains(t, out, "$661.88")

	out, err = execute(t, "loan", "--amount", "10000", "--term", "12", "--rate", "12", "--format", "json")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(out)), out)
	assert.Contains(t, out, "installment")

	_, err = execute(t, "loan", "--amount", "ten", "--term", "12")
	assert.ErrorContains(t, err, "invalid --amount")

	_, err = execute(t, "loan", "--amount", "1000", "--down-payment", "2000", "--term", "12")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = execute(t, "loan", "--term", "12")
	assert.Error(t, err, "amount is required")
}

func TestInvestAndRetireCommands(t *testing.T) {
	out, err := execute(t, "invest", "--initial", "1000", "--monthly", "100", "--months", "12", "--rate", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "Final balance:       $2200.00")

	out, err = execute(t, "retire", "--age", "30", "--retire-at", "65", "--salary", "5000",
		"--savings", "10", "--growth", "8", "--inflation", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Monthly income estimate:   $19395.03")

	_, err = execute(t, "retire", "--age", "70", "--retire-at", "65", "--salary", "5000")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestHealthCommand_Flags(t *testing.T) {
	out, err := execute(t, "health", "--income", "5000", "--expense", "2000", "--investment", "1000")
	require.NoError(t, err)
	assert.Contains(t, out, "FINANCIAL HEALTH")
	assert.Contains(t, out, "Regular (score 90)")
}

func TestHealthCommand_NoLedger(t *testing.T) {
	_, err := execute(t, "health")
	assert.ErrorIs(t, err, errNoLedger)
}

func TestExampleValidateCalculate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.yaml")

	out, err := execute(t, "example", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Example configuration saved")

	_, err = execute(t, "example", path)
	assert.ErrorContains(t, err, "already exists")

	out, err = execute(t, "validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, "is valid")

	out, err = execute(t, "calculate", path)
	require.NoError(t, err)
	assert.Contains(t, out, "FINANCIAL PROJECTION SUMMARY")
	assert.Contains(t, out, "SCENARIO: Baseline")
	assert.Contains(t, out, "CASH FLOW FORECAST (12 months from 2026-01)")
	assert.Contains(t, out, "FINANCIAL HEALTH")

	dir := t.TempDir()
	out, err = execute(t, "calculate", path, "--format", "html", "--output-dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Report written to")
	files, err := filepath.Glob(filepath.Join(dir, "report.html"))
	require.NoError(t, err)
	assert.Len(t, files, 1)

	_, err = execute(t, "calculate", path, "--format", "pdf")
	assert.ErrorContains(t, err, "unsupported format")
}

func TestValidateCommand_Invalid(t *testing.T) {
	path := writeFile(t, "bad.yaml", "scenarios:\n  - name: empty\n")
	_, err := execute(t, "validate", path)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCompareCommand(t *testing.T) {
	path := writeFile(t, "plan.yaml", planYAML)

	out, err := execute(t, "compare", path, "--base", "car", "--with", "rate_minus_1,term_plus_12")
	require.NoError(t, err)
	assert.Contains(t, out, "SCENARIO COMPARISON")
	assert.Contains(t, out, "car_rate_minus_1")

	out, err = execute(t, "compare", path, "--base", "car", "--transform", "adjust_term:months=-6", "--format", "json")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(out)), out)
	assert.Contains(t, out, "car_adjust_term")

	out, err = execute(t, "compare", "--list-templates")
	require.NoError(t, err)
	assert.Contains(t, out, "Available Templates")

	_, err = execute(t, "compare", path, "--base", "car")
	assert.ErrorContains(t, err, "nothing to compare")

	_, err = execute(t, "compare", path, "--with", "rate_minus_1")
	assert.ErrorContains(t, err, "--base")

	_, err = execute(t, "compare", path, "--base", "car", "--with", "rate_minus_1", "--format", "xml")
	assert.ErrorContains(t, err, "unknown output format")

	_, err = execute(t, "compare")
	assert.ErrorContains(t, err, "input file required")
}

func TestGoalCommand(t *testing.T) {
	path := writeFile(t, "plan.yaml", planYAML)

	out, err := execute(t, "goal", path, "--scenario", "car", "--target", "loan_term", "--goal", "500")
	require.NoError(t, err)
	assert.Contains(t, out, "GOAL SEEK RESULTS")
	assert.Contains(t, out, "installment at most $500.00")

	out, err = execute(t, "goal", path, "--scenario", "car", "--target", "loan_term", "--goal", "500", "--format", "json")
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "23", decoded["optimal_value"])

	_, err = execute(t, "goal", path, "--target", "loan_term", "--goal", "500")
	assert.ErrorContains(t, err, "--scenario")

	_, err = execute(t, "goal", path, "--scenario", "car", "--target", "speed", "--goal", "500")
	assert.ErrorContains(t, err, "unsupported target")

	_, err = execute(t, "goal", path, "--scenario", "car", "--target", "monthly_contribution", "--goal", "500")
	assert.ErrorContains(t, err, "investment block")
}

func TestLedgerCommands(t *testing.T) {
	db := filepath.Join(t.TempDir(), "ledger.db")
	snap := writeFile(t, "ledger.yaml", snapshotYAML)

	out, err := execute(t, "ledger", "import", snap, "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 1 income, 1 expense and 0 investment entries")

	out, err = execute(t, "ledger", "show", "--db", db, "--format", "json")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(out)), out)
	assert.Contains(t, out, "Salary")
	assert.Contains(t, out, "rent-1")

	out, err = execute(t, "ledger", "show", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "title: Rent")

	out, err = execute(t, "cashflow", "--db", db, "--months", "3", "--from", "2025-01")
	require.NoError(t, err)
	assert.Contains(t, out, "CASH FLOW FORECAST (3 months from 2025-01)")
	assert.Contains(t, out, "2025-03")

	out, err = execute(t, "health", "--db", db, "--month", "2025-02")
	require.NoError(t, err)
	assert.Contains(t, out, "Income:           $4200.00")
	assert.Contains(t, out, "Expense:          $1500.00")

	_, err = execute(t, "cashflow", "--db", db, "--from", "January")
	assert.ErrorContains(t, err, "expected YYYY-MM")

	_, err = execute(t, "ledger", "show")
	assert.ErrorIs(t, err, errNoLedger)
}

func TestCashFlowCommand_ConfigFile(t *testing.T) {
	path := writeFile(t, "plan.yaml", planYAML+`cash_flow:
  horizon_months: 2
  income:
    - title: Salary
      amount: 5000
      recurrence: monthly
      reference_date: 2026-01-05T00:00:00Z
`)

	out, err := execute(t, "cashflow", path)
	require.NoError(t, err)
	assert.Contains(t, out, "CASH FLOW FORECAST (2 months from 2026-01)")

	out, err = execute(t, "cashflow", path, "--format", "csv")
	require.NoError(t, err)
	assert.Contains(t, out, "2026-02")
}

func TestPrefsCommands(t *testing.T) {
	prefs := filepath.Join(t.TempDir(), "finproj", "config.toml")

	out, err := execute(t, "prefs", "init", "--prefs", prefs, "--format", "json-pretty", "--horizon", "24")
	require.NoError(t, err)
	assert.Contains(t, out, "Saved to")

	_, err = execute(t, "prefs", "init", "--prefs", prefs)
	assert.ErrorContains(t, err, "already exists")

	_, err = execute(t, "prefs", "init", "--prefs", prefs, "--force", "--format", "pdf")
	assert.ErrorContains(t, err, "unsupported format")

	out, err = execute(t, "prefs", "show", "--prefs", prefs)
	require.NoError(t, err)
	assert.Contains(t, out, `format = "json"`)
	assert.Contains(t, out, "horizon_months = 24")

	// the preferred format applies when --format is omitted
	out, err = execute(t, "loan", "--amount", "1200", "--term", "12", "--prefs", prefs)
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(out)), out)
}

func TestWizardAnswers_Scenario(t *testing.T) {
	loan := defaultAnswers()
	loan.Name = "car"
	loan.Amount = "10000"
	loan.Term = "12"
	loan.Rate = "12"
	s, err := loan.scenario()
	require.NoError(t, err)
	require.NotNil(t, s.Loan)
	assert.Equal(t, 12, s.Loan.TermMonths)
	assert.Nil(t, s.Investment)

	inv := defaultAnswers()
	inv.Name = "fund"
	inv.Kind = kindInvestment
	inv.Monthly = "250"
	inv.Months = "36"
	s, err = inv.scenario()
	require.NoError(t, err)
	require.NotNil(t, s.Investment)
	assert.Equal(t, "250", s.Investment.MonthlyContribution.String())

	ret := defaultAnswers()
	ret.Name = "pension"
	ret.Kind = kindRetirement
	ret.Age = "30"
	ret.Salary = "5000"
	s, err = ret.scenario()
	require.NoError(t, err)
	require.NotNil(t, s.Retirement)
	assert.Equal(t, 35, s.Retirement.ContributionYears())

	tests := []struct {
		name   string
		modify func(*wizardAnswers)
	}{
		{"missing name", func(a *wizardAnswers) { a.Name = " " }},
		{"bad amount", func(a *wizardAnswers) { a.Amount = "lots" }},
		{"bad term", func(a *wizardAnswers) { a.Term = "1.5" }},
		{"zero term", func(a *wizardAnswers) { a.Term = "0" }},
		{"unknown kind", func(a *wizardAnswers) { a.Kind = "lottery" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := loan
			tt.modify(&a)
			_, err := a.scenario()
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestWizardValidators(t *testing.T) {
	assert.NoError(t, validateAmount("12.5"))
	assert.Error(t, validateAmount("x"))
	assert.NoError(t, validateCount("12"))
	assert.Error(t, validateCount("-1"))
	assert.Error(t, requireText(""))
}

func TestAppendScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.yaml")
	a := defaultAnswers()
	a.Name = "car"
	a.Amount = "10000"
	a.Term = "12"
	a.Rate = "12"
	s, err := a.scenario()
	require.NoError(t, err)

	require.NoError(t, appendScenario(path, s))
	assert.ErrorContains(t, appendScenario(path, s), "duplicate scenario name")

	s.Name = "car_2"
	require.NoError(t, appendScenario(path, s))

	cfg, err := config.NewInputParser().LoadFromFile(path)
	require.NoError(t, err)
	require.Len(t, cfg.Scenarios, 2)
	assert.True(t, cfg.Scenarios[1].Loan.RequestedAmount.Equal(s.Loan.RequestedAmount))
}
