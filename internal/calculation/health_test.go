package calculation

import (
	"testing"

	"github.com/rgehrsitz/finproj/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestScoreFinancialHealth(t *testing.T) {
	tests := []struct {
		name                        string
		income, expense, investment string
		wantDebt                    string
		wantLabel                   string
		wantBase                    int
		wantScore                   int
		wantAdjustments             int
	}{
		{"scenario C", "5000", "4000", "0", "80", domain.HealthCritical, 20, 30, 1},
		{"poor tier", "5000", "3000", "0", "60", domain.HealthPoor, 40, 60, 2},
		{"fair tier with investment", "5000", "2000", "600", "40", domain.HealthFair, 60, 90, 3},
		{"good tier", "10000", "2500", "0", "25", domain.HealthGood, 80, 100, 2},
		{"excellent is clamped", "10000", "1000", "5000", "10", domain.HealthExcellent, 100, 100, 3},
		{"boundary 70 is not critical", "1000", "700", "0", "70", domain.HealthPoor, 40, 60, 2},
		{"boundary 20 is excellent", "1000", "200", "0", "20", domain.HealthExcellent, 100, 100, 2},
		{"overspending", "1000", "1500", "0", "150", domain.HealthCritical, 20, 20, 0},
		{"no income", "0", "800", "100", "0", domain.HealthExcellent, 100, 100, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScoreFinancialHealth(d(tt.income), d(tt.expense), d(tt.investment))
			assertDecimal(t, tt.wantDebt, got.DebtRatio)
			assert.Equal(t, tt.wantLabel, got.Label)
			assert.Equal(t, tt.wantBase, got.BaseScore)
			assert.Equal(t, tt.wantScore, got.Score)
			assert.Len(t, got.Adjustments, tt.wantAdjustments)
		})
	}
}

func TestScoreFinancialHealth_ScenarioCRatios(t *testing.T) {
	got := ScoreHealth(domain.HealthInputs{Income: d("5000"), Expense: d("4000"), Investment: d("0")})
	assertDecimal(t, "20", got.SavingsRatio)
	assertDecimal(t, "0", got.InvestmentRatio)
	assertDecimal(t, "1000", got.NetBalance)
	assert.Equal(t, []domain.ScoreAdjustment{{Reason: "positive net balance", Points: 10}}, got.Adjustments)
}

func TestScoreFinancialHealth_RatiosRounded(t *testing.T) {
	got := ScoreFinancialHealth(d("3000"), d("1000"), d("100"))
	assertDecimal(t, "33.33", got.DebtRatio)
	assertDecimal(t, "3.33", got.InvestmentRatio)
	assertDecimal(t, "66.67", got.SavingsRatio)
	assert.Equal(t, domain.HealthFair, got.Label)
}

func TestClampScore(t *testing.T) {
	assert.Equal(t, 0, clampScore(-5))
	assert.Equal(t, 100, clampScore(130))
	assert.Equal(t, 55, clampScore(55))
}
