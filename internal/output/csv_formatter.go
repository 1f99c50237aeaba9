package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/rgehrsitz/finproj/internal/domain"
)

// CSVFormatter writes one row per emitted period. The section column tells
// loan, investment, retirement and cash-flow rows apart.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

var csvHeader = []string{"Section", "Scenario", "Period", "Amount1", "Amount2", "Amount3", "Amount4"}

func (c CSVFormatter) Format(results *domain.Results) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}

	for _, sc := range results.Scenarios {
		for _, row := range scenarioRows(sc) {
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	if cf := results.CashFlow; cf != nil {
		for _, p := range cf.Periods {
			if err := w.Write([]string{"cash_flow", "", p.Month, amount(p.Income), amount(p.Expense), amount(p.Net), ""}); err != nil {
				return nil, err
			}
		}
	}
	if h := results.Health; h != nil {
		row := []string{"health", h.Label, strconv.Itoa(h.Score), amount(h.DebtRatio), amount(h.InvestmentRatio), amount(h.SavingsRatio), amount(h.NetBalance)}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// scenarioRows flattens a scenario. Loan rows carry installment, interest,
// principal and balance; investment rows carry balance, contributions and
// gain; retirement rows carry age, balance and monthly income.
func scenarioRows(sc domain.ScenarioResult) [][]string {
	var rows [][]string
	if sc.Loan != nil {
		for _, r := range sc.Loan.Schedule {
			rows = append(rows, []string{"loan", sc.Name, strconv.Itoa(r.Period),
				amount(r.Installment), amount(r.Interest), amount(r.Principal), amount(r.RemainingBalance)})
		}
	}
	if sc.Investment != nil {
		for _, r := range sc.Investment.Projection {
			rows = append(rows, []string{"investment", sc.Name, strconv.Itoa(r.Period),
				amount(r.Balance), amount(r.CumulativeContributions), amount(r.CumulativeGain), ""})
		}
	}
	if sc.Retirement != nil {
		for _, y := range sc.Retirement.Projection {
			rows = append(rows, []string{"retirement", sc.Name, strconv.Itoa(y.Year),
				strconv.Itoa(y.Age), amount(y.Balance), amount(y.MonthlyIncome), amount(y.CumulativeContributions)})
		}
	}
	return rows
}
