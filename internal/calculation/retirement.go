package calculation

import (
	"github.com/rgehrsitz/finproj/internal/domain"
	"github.com/rgehrsitz/finproj/pkg/money"
	"github.com/shopspring/decimal"
)

// SimulateRetirement projects the accumulation phase up to retirement.
//
// The salary is inflated once to the final year's level and a constant
// savings amount is derived from it. Each year receives twelve months of
// that saving as a single contribution after the year's growth. The income
// estimate is one year of growth on the final balance, spread monthly, with
// no principal drawdown.
func SimulateRetirement(in domain.RetirementInputs) (*domain.RetirementResult, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	years := in.ContributionYears()
	growthRate := AnnualRate(in.AnnualGrowthRatePercent)

	adjustedSalary := in.CurrentSalary.Mul(compoundFactor(AnnualRate(in.AnnualInflationRatePercent), years))
	monthlySavings := adjustedSalary.Mul(in.SavingsRatePercent).Div(hundred)
	annualContribution := money.Annual(monthlySavings)

	rows, err := ProjectAccumulation(domain.AccumulationParameters{
		PeriodicContribution: annualContribution,
		Periods:              years,
		PeriodicRate:         growthRate,
	})
	if err != nil {
		return nil, err
	}

	projection := make([]domain.RetirementYear, len(rows))
	for i, row := range rows {
		projection[i] = domain.RetirementYear{
			Year:                    row.Period,
			Age:                     in.CurrentAge + row.Period,
			Balance:                 row.Balance,
			MonthlyIncome:           monthlyIncome(row.Balance, growthRate),
			AnnualContribution:      money.Round(annualContribution),
			CumulativeContributions: row.CumulativeContributions,
		}
	}

	final := rows[len(rows)-1].Balance
	return &domain.RetirementResult{
		Name:                    in.Name,
		ContributionYears:       years,
		InflationAdjustedSalary: money.Round(adjustedSalary),
		MonthlySavings:          money.Round(monthlySavings),
		AnnualContribution:      money.Round(annualContribution),
		FinalBalance:            final,
		MonthlyIncomeEstimate:   monthlyIncome(final, growthRate),
		Projection:              projection,
	}, nil
}

func monthlyIncome(balance, growthRate decimal.Decimal) decimal.Decimal {
	return money.Round(money.Monthly(balance.Mul(growthRate)))
}
