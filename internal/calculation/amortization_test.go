package calculation

import (
	"errors"
	"testing"

	"github.com/rgehrsitz/finproj/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, d(want).Equal(got), "want %s, got %s", want, got.String())
}

func TestMonthlyRate(t *testing.T) {
	tests := []struct {
		annual string
		want   string
	}{
		{"12", "0.01"},
		{"0", "0"},
		{"7.5", "0.00625"},
		{"-6", "-0.005"},
	}
	for _, tt := range tests {
		t.Run(tt.annual, func(t *testing.T) {
			assertDecimal(t, tt.want, MonthlyRate(d(tt.annual)))
		})
	}
	assertDecimal(t, "0.08", AnnualRate(d("8")))
}

func TestCompoundFactor(t *testing.T) {
	assertDecimal(t, "1", compoundFactor(d("0.05"), 0))
	assertDecimal(t, "1.1025", compoundFactor(d("0.05"), 2))
	assertDecimal(t, "1", compoundFactor(d("-2"), 2))
}

func TestAmortize_ScenarioA(t *testing.T) {
	result, err := Amortize(d("10000"), 12, d("12"))
	require.NoError(t, err)

	assertDecimal(t, "0.01", result.MonthlyRate)
	assertDecimal(t, "888.49", result.Installment)
	assertDecimal(t, "10661.88", result.TotalPaid)
	assertDecimal(t, "661.88", result.TotalInterest)
	require.Len(t, result.Schedule, 12)

	first := result.Schedule[0]
	assert.Equal(t, 1, first.Period)
	assertDecimal(t, "100", first.Interest)
	assertDecimal(t, "788.49", first.Principal)
	assertDecimal(t, "9211.51", first.RemainingBalance)

	second := result.Schedule[1]
	assertDecimal(t, "92.12", second.Interest)
	assertDecimal(t, "796.37", second.Principal)
	assertDecimal(t, "8415.14", second.RemainingBalance)

	last := result.Schedule[11]
	assert.Equal(t, 12, last.Period)
	assertDecimal(t, "8.8", last.Interest)
	assertDecimal(t, "879.69", last.Principal)
	assert.True(t, last.RemainingBalance.IsZero(), "final balance should close at 0.00, got %s", last.RemainingBalance)
}

func TestAmortize_InstallmentSplitsIntoInterestAndPrincipal(t *testing.T) {
	result, err := Amortize(d("25000"), 60, d("7.5"))
	require.NoError(t, err)
	assertDecimal(t, "500.95", result.Installment)
	assertDecimal(t, "5057", result.TotalInterest)

	tolerance := d("0.01")
	for _, row := range result.Schedule {
		diff := row.Installment.Sub(row.Interest.Add(row.Principal)).Abs()
		assert.True(t, diff.LessThanOrEqual(tolerance), "period %d: %s != %s + %s", row.Period, row.Installment, row.Interest, row.Principal)
	}
	assert.True(t, result.Schedule[59].RemainingBalance.IsZero())
}

func TestAmortize_ZeroRate(t *testing.T) {
	tests := []struct {
		name      string
		principal string
		term      int
	}{
		{"even split", "1200", 12},
		{"thirds", "1000", 3},
		{"odd cents", "999.99", 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Amortize(d(tt.principal), tt.term, decimal.Zero)
			require.NoError(t, err)

			n := decimal.NewFromInt(int64(tt.term))
			diff := result.Installment.Mul(n).Sub(d(tt.principal)).Abs()
			assert.True(t, diff.LessThanOrEqual(d("0.01").Mul(n)), "installment x term should equal principal within rounding")
			assert.True(t, result.Schedule[tt.term-1].RemainingBalance.IsZero())
			for _, row := range result.Schedule {
				assert.True(t, row.Interest.IsZero())
			}
		})
	}
}

func TestAmortize_SinglePeriod(t *testing.T) {
	result, err := Amortize(d("1000"), 1, d("12"))
	require.NoError(t, err)
	assertDecimal(t, "1010", result.Installment)
	assertDecimal(t, "10", result.TotalInterest)
	require.Len(t, result.Schedule, 1)
	assert.True(t, result.Schedule[0].RemainingBalance.IsZero())
}

func TestAmortize_NegativeRatePassesThrough(t *testing.T) {
	result, err := Amortize(d("10000"), 12, d("-12"))
	require.NoError(t, err)
	assert.True(t, result.TotalInterest.IsNegative())
	assert.True(t, result.Schedule[11].RemainingBalance.IsZero())
}

func TestAmortize_LongHighRateLoanCloses(t *testing.T) {
	for _, principal := range []string{"1", "10000", "5000000"} {
		t.Run(principal, func(t *testing.T) {
			result, err := Amortize(d(principal), 600, d("99"))
			require.NoError(t, err)
			require.Len(t, result.Schedule, 600)

			first := result.Schedule[0]
			assert.True(t, result.Installment.GreaterThanOrEqual(first.Interest))
			assert.True(t, result.Schedule[599].RemainingBalance.IsZero(),
				"final balance %s", result.Schedule[599].RemainingBalance)
		})
	}
}

func TestAmortize_InvalidInput(t *testing.T) {
	tests := []struct {
		name      string
		principal string
		term      int
		rate      string
		wantField string
	}{
		{"zero term", "1000", 0, "12", "term_months"},
		{"negative term", "1000", -3, "12", "term_months"},
		{"negative principal", "-1", 12, "12", "principal_to_finance"},
		{"zero denominator", "1000", 2, "-2400", "annual_rate_percent"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Amortize(d(tt.principal), tt.term, d(tt.rate))
			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, errors.Is(err, domain.ErrInvalidInput))
			field, ok := domain.InvalidField(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantField, field)
		})
	}
}

func TestSimulateLoan(t *testing.T) {
	params := domain.LoanParameters{
		Name:              "car",
		RequestedAmount:   d("12000"),
		DownPayment:       d("2000"),
		TermMonths:        12,
		AnnualRatePercent: d("12"),
	}
	result, err := SimulateLoan(params)
	require.NoError(t, err)
	assert.Equal(t, "car", result.Name)
	assertDecimal(t, "10000", result.PrincipalToFinance)
	assertDecimal(t, "888.49", result.Installment)
	assert.Equal(t, 12, result.TermMonths())

	params.DownPayment = d("13000")
	_, err = SimulateLoan(params)
	require.Error(t, err)
	field, _ := domain.InvalidField(err)
	assert.Equal(t, "down_payment", field)
}

func TestAmortize_Deterministic(t *testing.T) {
	a, err := Amortize(d("18500"), 48, d("9.9"))
	require.NoError(t, err)
	b, err := Amortize(d("18500"), 48, d("9.9"))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
