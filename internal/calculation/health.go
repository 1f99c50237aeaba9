package calculation

import (
	"github.com/rgehrsitz/finproj/internal/domain"
	"github.com/rgehrsitz/finproj/pkg/money"
	"github.com/shopspring/decimal"
)

const (
	healthBonusPoints = 10
	maxHealthScore    = 100
)

// healthTier maps a debt-ratio floor to a label and base score.
type healthTier struct {
	above decimal.Decimal
	label string
	score int
}

// healthTiers are evaluated in order; the first whose floor is exceeded wins.
var healthTiers = []healthTier{
	{decimal.NewFromInt(70), domain.HealthCritical, 20},
	{decimal.NewFromInt(50), domain.HealthPoor, 40},
	{decimal.NewFromInt(30), domain.HealthFair, 60},
	{decimal.NewFromInt(20), domain.HealthGood, 80},
}

var (
	savingsBonusFloor    = decimal.NewFromInt(20)
	investmentBonusFloor = decimal.NewFromInt(10)
)

// ScoreFinancialHealth classifies a month's totals. The label comes from the
// debt-ratio tier alone; bonuses move the score but never the label. All
// ratios are zero when there is no income.
func ScoreFinancialHealth(income, expense, investment decimal.Decimal) domain.HealthSnapshot {
	net := income.Sub(expense)
	debtRatio := money.Ratio(expense, income)
	investmentRatio := money.Ratio(investment, income)
	savingsRatio := money.Ratio(net, income)

	label, base := domain.HealthExcellent, maxHealthScore
	for _, tier := range healthTiers {
		if debtRatio.GreaterThan(tier.above) {
			label, base = tier.label, tier.score
			break
		}
	}

	var adjustments []domain.ScoreAdjustment
	if savingsRatio.GreaterThan(savingsBonusFloor) {
		adjustments = append(adjustments, domain.ScoreAdjustment{Reason: "savings ratio above 20%", Points: healthBonusPoints})
	}
	if investmentRatio.GreaterThan(investmentBonusFloor) {
		adjustments = append(adjustments, domain.ScoreAdjustment{Reason: "investment ratio above 10%", Points: healthBonusPoints})
	}
	if net.IsPositive() {
		adjustments = append(adjustments, domain.ScoreAdjustment{Reason: "positive net balance", Points: healthBonusPoints})
	}

	score := base
	for _, adj := range adjustments {
		score += adj.Points
	}
	score = clampScore(score)

	return domain.HealthSnapshot{
		Income:          money.Round(income),
		Expense:         money.Round(expense),
		Investment:      money.Round(investment),
		NetBalance:      money.Round(net),
		DebtRatio:       money.Round(debtRatio),
		InvestmentRatio: money.Round(investmentRatio),
		SavingsRatio:    money.Round(savingsRatio),
		Label:           label,
		BaseScore:       base,
		Score:           score,
		Adjustments:     adjustments,
	}
}

// ScoreHealth scores a HealthInputs aggregate.
func ScoreHealth(in domain.HealthInputs) domain.HealthSnapshot {
	return ScoreFinancialHealth(in.Income, in.Expense, in.Investment)
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > maxHealthScore {
		return maxHealthScore
	}
	return score
}
