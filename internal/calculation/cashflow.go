package calculation

import (
	"time"

	"github.com/rgehrsitz/finproj/internal/domain"
	"github.com/rgehrsitz/finproj/pkg/dateutil"
	"github.com/rgehrsitz/finproj/pkg/money"
	"github.com/shopspring/decimal"
)

// RecurrenceMatches reports whether an item of the given kind falls in the
// calendar month. Phase is fixed to the calendar: quarterly items land in
// Jan/Apr/Jul/Oct and semiannual items in Jan/Jul, whatever the item's
// reference date.
func RecurrenceMatches(kind domain.RecurrenceKind, month time.Month) bool {
	m := int(month)
	switch kind {
	case domain.RecurrenceMonthly:
		return true
	case domain.RecurrenceQuarterly:
		return m%3 == 1
	case domain.RecurrenceSemiannual:
		return m%6 == 1
	case domain.RecurrenceAnnual:
		return m == 1
	default:
		return false
	}
}

// ForecastCashFlow projects recurring items over horizon months starting at
// the current calendar month.
func ForecastCashFlow(income, expenses []domain.RecurringItem, horizon int) (*domain.CashFlowForecast, error) {
	return ForecastCashFlowFrom(nowFunc(), income, expenses, horizon)
}

// ForecastCashFlowFrom is ForecastCashFlow with an explicit first month.
// The item slices are only read.
func ForecastCashFlowFrom(start time.Time, income, expenses []domain.RecurringItem, horizon int) (*domain.CashFlowForecast, error) {
	if horizon < 1 {
		return nil, domain.NewValidationError("horizon_months", horizon, "must be at least 1")
	}

	first := dateutil.MonthStart(start)
	forecast := &domain.CashFlowForecast{
		Start:         first,
		HorizonMonths: horizon,
		Periods:       make([]domain.CashFlowPeriod, 0, horizon),
		TotalIncome:   decimal.Zero,
		TotalExpense:  decimal.Zero,
		TotalNet:      decimal.Zero,
	}

	for i := 0; i < horizon; i++ {
		month := dateutil.AddMonths(first, i)
		in := money.Round(sumMatching(income, month.Month()))
		out := money.Round(sumMatching(expenses, month.Month()))
		net := money.Round(in.Sub(out))

		forecast.Periods = append(forecast.Periods, domain.CashFlowPeriod{
			Month:   dateutil.MonthLabel(month),
			Income:  in,
			Expense: out,
			Net:     net,
		})
		forecast.TotalIncome = forecast.TotalIncome.Add(in)
		forecast.TotalExpense = forecast.TotalExpense.Add(out)
		forecast.TotalNet = forecast.TotalNet.Add(net)
	}
	return forecast, nil
}

func sumMatching(items []domain.RecurringItem, month time.Month) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		if RecurrenceMatches(item.Recurrence, month) {
			total = total.Add(item.Amount)
		}
	}
	return total
}
