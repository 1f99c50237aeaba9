package calculation

import (
	"github.com/rgehrsitz/finproj/internal/domain"
	"github.com/rgehrsitz/finproj/pkg/money"
	"github.com/shopspring/decimal"
)

// Amortize builds a constant-installment (French) schedule for the amount
// being financed. Every emitted figure is rounded to cents; the running
// balance is carried unrounded between rows so the last row closes at 0.00.
func Amortize(principalToFinance decimal.Decimal, termPeriods int, annualRatePercent decimal.Decimal) (*domain.LoanResult, error) {
	if termPeriods < 1 {
		return nil, domain.NewValidationError("term_months", termPeriods, "must be at least 1")
	}
	if principalToFinance.IsNegative() {
		return nil, domain.NewValidationError("principal_to_finance", principalToFinance, "must not be negative")
	}

	rate := MonthlyRate(annualRatePercent)
	n := decimal.NewFromInt(int64(termPeriods))

	var installment decimal.Decimal
	if rate.IsZero() {
		installment = principalToFinance.Div(n)
	} else {
		factor := compoundFactor(rate, termPeriods)
		switch {
		case factor.Equal(one):
			return nil, domain.NewValidationError("annual_rate_percent", annualRatePercent, "yields a zero amortization denominator")
		case factor.IsZero():
			installment = decimal.Zero
		default:
			// P·r / (1 − (1+r)^−n) keeps the principal share visible when
			// (1+r)^n is too large for a 16-digit quotient.
			discount := one.Sub(one.DivRound(factor, installmentPlaces))
			installment = principalToFinance.Mul(rate).DivRound(discount, installmentPlaces)
		}
	}

	schedule := make([]domain.AmortizationRow, 0, termPeriods)
	balance := principalToFinance
	for period := 1; period <= termPeriods; period++ {
		interest := balance.Mul(rate)
		principal := installment.Sub(interest)
		balance = balance.Sub(principal)

		schedule = append(schedule, domain.AmortizationRow{
			Period:           period,
			Installment:      money.Round(installment),
			Interest:         money.Round(interest),
			Principal:        money.Round(principal),
			RemainingBalance: money.Round(balance),
		})
	}

	roundedInstallment := money.Round(installment)
	totalPaid := money.Round(roundedInstallment.Mul(n))

	return &domain.LoanResult{
		PrincipalToFinance: money.Round(principalToFinance),
		MonthlyRate:        rate,
		Installment:        roundedInstallment,
		TotalPaid:          totalPaid,
		TotalInterest:      money.Round(totalPaid.Sub(principalToFinance)),
		Schedule:           schedule,
	}, nil
}

// SimulateLoan validates a loan request and amortizes the financed amount.
func SimulateLoan(params domain.LoanParameters) (*domain.LoanResult, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	result, err := Amortize(params.PrincipalToFinance(), params.TermMonths, params.AnnualRatePercent)
	if err != nil {
		return nil, err
	}
	result.Name = params.Name
	return result, nil
}
