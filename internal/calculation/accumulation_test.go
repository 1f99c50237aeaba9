package calculation

import (
	"testing"

	"github.com/rgehrsitz/finproj/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectAccumulation_ScenarioB(t *testing.T) {
	rows, err := ProjectAccumulation(domain.AccumulationParameters{
		InitialBalance:       d("1000"),
		PeriodicContribution: d("100"),
		Periods:              12,
		PeriodicRate:         d("0.008"),
	})
	require.NoError(t, err)
	require.Len(t, rows, 12)

	// growth first, then the contribution lands
	assertDecimal(t, "1108", rows[0].Balance)
	assertDecimal(t, "100", rows[0].CumulativeContributions)
	assertDecimal(t, "8", rows[0].CumulativeGain)

	last := rows[11]
	assert.Equal(t, 12, last.Period)
	assertDecimal(t, "2354.57", last.Balance)
	assertDecimal(t, "1200", last.CumulativeContributions)
	assertDecimal(t, "154.57", last.CumulativeGain)
}

func TestProjectAccumulation_ZeroRate(t *testing.T) {
	tests := []struct {
		name         string
		initial      string
		contribution string
		periods      int
	}{
		{"contributions only", "0", "250", 24},
		{"initial only", "5000", "0", 6},
		{"both", "1234.56", "78.9", 13},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := ProjectAccumulation(domain.AccumulationParameters{
				InitialBalance:       d(tt.initial),
				PeriodicContribution: d(tt.contribution),
				Periods:              tt.periods,
			})
			require.NoError(t, err)

			want := d(tt.initial).Add(d(tt.contribution).Mul(decimal.NewFromInt(int64(tt.periods))))
			last := rows[len(rows)-1]
			assert.True(t, want.Equal(last.Balance), "want %s, got %s", want, last.Balance)
			assert.True(t, last.CumulativeGain.IsZero())
		})
	}
}

func TestProjectAccumulation_InvalidPeriods(t *testing.T) {
	for _, periods := range []int{0, -1} {
		rows, err := ProjectAccumulation(domain.AccumulationParameters{Periods: periods})
		require.Error(t, err)
		assert.Nil(t, rows)
		field, _ := domain.InvalidField(err)
		assert.Equal(t, "periods", field)
	}
}

func TestSimulateInvestment(t *testing.T) {
	result, err := SimulateInvestment(domain.InvestmentParameters{
		Name:                "index fund",
		InitialBalance:      d("1000"),
		MonthlyContribution: d("100"),
		Months:              12,
		AnnualRatePercent:   d("9.6"),
	})
	require.NoError(t, err)

	assert.Equal(t, "index fund", result.Name)
	assertDecimal(t, "0.008", result.MonthlyRate)
	assertDecimal(t, "2354.57", result.FinalBalance)
	assertDecimal(t, "1200", result.TotalContributions)
	assertDecimal(t, "154.57", result.TotalGain)
	assert.Len(t, result.Projection, 12)

	_, err = SimulateInvestment(domain.InvestmentParameters{Months: 0})
	require.Error(t, err)
	field, _ := domain.InvalidField(err)
	assert.Equal(t, "months", field)
}
