package calculation

import (
	"github.com/rgehrsitz/finproj/internal/domain"
	"github.com/rgehrsitz/finproj/pkg/money"
	"github.com/shopspring/decimal"
)

// ProjectAccumulation compounds a balance period by period. Growth is applied
// before the contribution lands, so a contribution earns nothing in the
// period it is made.
func ProjectAccumulation(params domain.AccumulationParameters) ([]domain.AccumulationRow, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	growth := one.Add(params.PeriodicRate)
	rows := make([]domain.AccumulationRow, 0, params.Periods)
	balance := params.InitialBalance
	for period := 1; period <= params.Periods; period++ {
		balance = balance.Mul(growth).Add(params.PeriodicContribution)
		contributed := params.PeriodicContribution.Mul(decimal.NewFromInt(int64(period)))

		rows = append(rows, domain.AccumulationRow{
			Period:                  period,
			Balance:                 money.Round(balance),
			CumulativeContributions: money.Round(contributed),
			CumulativeGain:          money.Round(balance.Sub(params.InitialBalance).Sub(contributed)),
		})
	}
	return rows, nil
}

// SimulateInvestment projects a monthly plan, converting the annual
// percentage with MonthlyRate.
func SimulateInvestment(params domain.InvestmentParameters) (*domain.InvestmentResult, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	rate := MonthlyRate(params.AnnualRatePercent)
	rows, err := ProjectAccumulation(domain.AccumulationParameters{
		InitialBalance:       params.InitialBalance,
		PeriodicContribution: params.MonthlyContribution,
		Periods:              params.Months,
		PeriodicRate:         rate,
	})
	if err != nil {
		return nil, err
	}

	last := rows[len(rows)-1]
	return &domain.InvestmentResult{
		Name:               params.Name,
		MonthlyRate:        rate,
		FinalBalance:       last.Balance,
		TotalContributions: last.CumulativeContributions,
		TotalGain:          last.CumulativeGain,
		Projection:         rows,
	}, nil
}
