package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenario_DeepCopy(t *testing.T) {
	original := &Scenario{
		Name: "Test Scenario",
		Loan: &LoanParameters{
			RequestedAmount:   decimal.NewFromInt(12000),
			DownPayment:       decimal.NewFromInt(2000),
			TermMonths:        12,
			AnnualRatePercent: decimal.NewFromInt(12),
		},
		Retirement: &RetirementInputs{CurrentAge: 30, RetirementAge: 65},
	}

	copied := original.DeepCopy()

	assert.NotSame(t, original, copied)
	assert.NotSame(t, original.Loan, copied.Loan)
	assert.NotSame(t, original.Retirement, copied.Retirement)
	assert.Nil(t, copied.Investment)
	assert.Equal(t, original.Loan.TermMonths, copied.Loan.TermMonths)

	copied.Loan.TermMonths = 24
	copied.Retirement.RetirementAge = 67
	assert.Equal(t, 12, original.Loan.TermMonths)
	assert.Equal(t, 65, original.Retirement.RetirementAge)
}

func TestScenario_DeepCopy_Nil(t *testing.T) {
	var s *Scenario
	assert.Nil(t, s.DeepCopy())
	assert.True(t, (&Scenario{Name: "empty"}).IsEmpty())
}

func TestLoanParameters_Validate(t *testing.T) {
	tests := []struct {
		name      string
		params    LoanParameters
		wantField string
	}{
		{
			name:   "valid",
			params: LoanParameters{RequestedAmount: decimal.NewFromInt(10000), TermMonths: 12},
		},
		{
			name:   "negative rate passes through",
			params: LoanParameters{RequestedAmount: decimal.NewFromInt(10000), TermMonths: 12, AnnualRatePercent: decimal.NewFromInt(-5)},
		},
		{
			name:      "zero term",
			params:    LoanParameters{RequestedAmount: decimal.NewFromInt(10000)},
			wantField: "term_months",
		},
		{
			name:      "down payment exceeds amount",
			params:    LoanParameters{RequestedAmount: decimal.NewFromInt(1000), DownPayment: decimal.NewFromInt(1500), TermMonths: 6},
			wantField: "down_payment",
		},
		{
			name:      "negative request",
			params:    LoanParameters{RequestedAmount: decimal.NewFromInt(-1), TermMonths: 6},
			wantField: "requested_amount",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidInput))
			field, ok := InvalidField(err)
			assert.True(t, ok)
			assert.Equal(t, tt.wantField, field)
		})
	}
}

func TestLoanParameters_PrincipalToFinance(t *testing.T) {
	lp := LoanParameters{RequestedAmount: decimal.NewFromInt(12000), DownPayment: decimal.NewFromInt(2000)}
	assert.True(t, lp.PrincipalToFinance().Equal(decimal.NewFromInt(10000)))
}

func TestRetirementInputs_Validate(t *testing.T) {
	valid := RetirementInputs{CurrentAge: 30, RetirementAge: 65, CurrentSalary: decimal.NewFromInt(5000)}
	assert.NoError(t, valid.Validate())
	assert.Equal(t, 35, valid.ContributionYears())

	for _, age := range []int{30, 29} {
		in := valid
		in.RetirementAge = age
		err := in.Validate()
		require.Error(t, err)
		field, _ := InvalidField(err)
		assert.Equal(t, "retirement_age", field)
	}
}

func TestParseRecurrence(t *testing.T) {
	assert.Equal(t, RecurrenceMonthly, ParseRecurrence(" Monthly "))
	assert.True(t, ParseRecurrence("ANNUAL").Known())
	assert.False(t, ParseRecurrence("weekly").Known())
}

func TestValidationError_Message(t *testing.T) {
	err := NewValidationError("horizon_months", 0, "must be at least 1")
	assert.Equal(t, "invalid horizon_months (0): must be at least 1", err.Error())

	err = NewValidationError("name", nil, "is required")
	assert.Equal(t, "invalid name: is required", err.Error())

	_, ok := InvalidField(errors.New("plain"))
	assert.False(t, ok)
}

func TestConfiguration_FindScenario(t *testing.T) {
	cfg := &Configuration{Scenarios: []Scenario{{Name: "a"}, {Name: "b"}}}
	require.NotNil(t, cfg.FindScenario("b"))
	assert.Nil(t, cfg.FindScenario("c"))

	res := &Results{Scenarios: []ScenarioResult{{Name: "a"}}}
	assert.NotNil(t, res.Scenario("a"))
	assert.Nil(t, res.Scenario("z"))
}
