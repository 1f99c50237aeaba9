package compare

import (
	"fmt"

	"github.com/rgehrsitz/finproj/internal/domain"
	"github.com/rgehrsitz/finproj/pkg/money"
	"github.com/shopspring/decimal"
)

// ComparisonResult holds the headline metrics of one scenario and, for
// alternatives, their difference from the base.
type ComparisonResult struct {
	ScenarioName string                 `json:"scenario_name"`
	Description  string                 `json:"description,omitempty"`
	Result       *domain.ScenarioResult `json:"-"`

	HasLoan       bool `json:"has_loan"`
	HasInvestment bool `json:"has_investment"`
	HasRetirement bool `json:"has_retirement"`

	// Key metrics
	Installment             decimal.Decimal `json:"installment"`
	LoanTermMonths          int             `json:"loan_term_months"`
	TotalInterest           decimal.Decimal `json:"total_interest"`
	InvestmentFinalBalance  decimal.Decimal `json:"investment_final_balance"`
	InvestmentGain          decimal.Decimal `json:"investment_gain"`
	RetirementFinalBalance  decimal.Decimal `json:"retirement_final_balance"`
	RetirementMonthlyIncome decimal.Decimal `json:"retirement_monthly_income"`

	// Comparison to base
	InstallmentDiff       decimal.Decimal `json:"installment_diff"`
	InterestDiff          decimal.Decimal `json:"interest_diff"`
	InvestmentBalanceDiff decimal.Decimal `json:"investment_balance_diff"`
	RetirementBalanceDiff decimal.Decimal `json:"retirement_balance_diff"`
	RetirementIncomeDiff  decimal.Decimal `json:"retirement_income_diff"`
	RetirementIncomePct   decimal.Decimal `json:"retirement_income_pct"`
}

// ComparisonSet represents a collection of scenario comparisons
type ComparisonSet struct {
	BaseScenarioName   string             `json:"base_scenario_name"`
	BaseResult         *ComparisonResult  `json:"base_result"`
	AlternativeResults []ComparisonResult `json:"alternative_results"`
	Recommendations    []string           `json:"recommendations"`
	ConfigPath         string             `json:"config_path,omitempty"`
}

// MetricsCalculator extracts key metrics from scenario results
type MetricsCalculator struct{}

// NewMetricsCalculator creates a new metrics calculator
func NewMetricsCalculator() *MetricsCalculator {
	return &MetricsCalculator{}
}

// CalculateMetrics computes the headline metrics of a scenario result.
func (mc *MetricsCalculator) CalculateMetrics(res *domain.ScenarioResult) ComparisonResult {
	result := ComparisonResult{
		ScenarioName: res.Name,
		Result:       res,
	}
	if res.Loan != nil {
		result.HasLoan = true
		result.Installment = res.Loan.Installment
		result.LoanTermMonths = res.Loan.TermMonths()
		result.TotalInterest = res.Loan.TotalInterest
	}
	if res.Investment != nil {
		result.HasInvestment = true
		result.InvestmentFinalBalance = res.Investment.FinalBalance
		result.InvestmentGain = res.Investment.TotalGain
	}
	if res.Retirement != nil {
		result.HasRetirement = true
		result.RetirementFinalBalance = res.Retirement.FinalBalance
		result.RetirementMonthlyIncome = res.Retirement.MonthlyIncomeEstimate
	}
	return result
}

// CalculateComparison fills the differences of scenario against base.
func (mc *MetricsCalculator) CalculateComparison(scenario, base ComparisonResult) ComparisonResult {
	scenario.InstallmentDiff = scenario.Installment.Sub(base.Installment)
	scenario.InterestDiff = scenario.TotalInterest.Sub(base.TotalInterest)
	scenario.InvestmentBalanceDiff = scenario.InvestmentFinalBalance.Sub(base.InvestmentFinalBalance)
	scenario.RetirementBalanceDiff = scenario.RetirementFinalBalance.Sub(base.RetirementFinalBalance)
	scenario.RetirementIncomeDiff = scenario.RetirementMonthlyIncome.Sub(base.RetirementMonthlyIncome)
	scenario.RetirementIncomePct = money.Round(money.Ratio(scenario.RetirementIncomeDiff, base.RetirementMonthlyIncome))
	return scenario
}

// GenerateRecommendations picks the best alternative for each metric the base
// carries. An alternative only wins when it beats the base.
func GenerateRecommendations(compSet *ComparisonSet) []string {
	recommendations := []string{}

	base := compSet.BaseResult
	if base == nil || len(compSet.AlternativeResults) == 0 {
		return recommendations
	}
	alts := compSet.AlternativeResults

	if base.HasLoan {
		if i := best(alts, func(a, b *ComparisonResult) bool { return a.TotalInterest.LessThan(b.TotalInterest) }, base, (*ComparisonResult).hasLoan); i >= 0 {
			saved := base.TotalInterest.Sub(alts[i].TotalInterest)
			recommendations = append(recommendations,
				"Lowest Interest: "+alts[i].ScenarioName+" saves "+money.Format(saved)+" in total interest")
		}
		if i := best(alts, func(a, b *ComparisonResult) bool { return a.Installment.LessThan(b.Installment) }, base, (*ComparisonResult).hasLoan); i >= 0 {
			lower := base.Installment.Sub(alts[i].Installment)
			recommendations = append(recommendations,
				"Lowest Installment: "+alts[i].ScenarioName+" lowers the monthly installment by "+money.Format(lower))
		}
	}

	if base.HasInvestment {
		if i := best(alts, func(a, b *ComparisonResult) bool {
			return a.InvestmentFinalBalance.GreaterThan(b.InvestmentFinalBalance)
		}, base, (*ComparisonResult).hasInvestment); i >= 0 {
			more := alts[i].InvestmentFinalBalance.Sub(base.InvestmentFinalBalance)
			recommendations = append(recommendations,
				"Best Growth: "+alts[i].ScenarioName+" ends "+money.Format(more)+" higher")
		}
	}

	if base.HasRetirement {
		if i := best(alts, func(a, b *ComparisonResult) bool {
			return a.RetirementMonthlyIncome.GreaterThan(b.RetirementMonthlyIncome)
		}, base, (*ComparisonResult).hasRetirement); i >= 0 {
			more := alts[i].RetirementMonthlyIncome.Sub(base.RetirementMonthlyIncome)
			recommendations = append(recommendations,
				fmt.Sprintf("Best Retirement Income: %s adds %s per month", alts[i].ScenarioName, money.Format(more)))
		}
	}

	return recommendations
}

func (r *ComparisonResult) hasLoan() bool       { return r.HasLoan }
func (r *ComparisonResult) hasInvestment() bool { return r.HasInvestment }
func (r *ComparisonResult) hasRetirement() bool { return r.HasRetirement }

// best returns the index of the alternative that beats base and every other
// eligible alternative, or -1 when none beats base. Ties keep the earlier one.
func best(alts []ComparisonResult, better func(a, b *ComparisonResult) bool, base *ComparisonResult, eligible func(*ComparisonResult) bool) int {
	winner := -1
	current := base
	for i := range alts {
		if !eligible(&alts[i]) {
			continue
		}
		if better(&alts[i], current) {
			winner = i
			current = &alts[i]
		}
	}
	return winner
}
