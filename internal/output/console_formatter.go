package output

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/rgehrsitz/finproj/internal/domain"
	"github.com/rgehrsitz/finproj/pkg/dateutil"
)

// ConsoleFormatter renders a plain-text report for terminals.
type ConsoleFormatter struct {
	// ScheduleRows caps the amortization and projection rows printed per
	// scenario. Zero prints every row.
	ScheduleRows int
}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(results *domain.Results) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "FINANCIAL PROJECTION SUMMARY")
	fmt.Fprintln(&buf, strings.Repeat("=", 60))
	if !results.AsOf.IsZero() {
		fmt.Fprintf(&buf, "As of: %s\n", dateutil.MonthLabel(results.AsOf))
	}

	for _, sc := range results.Scenarios {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "SCENARIO: %s\n", sc.Name)
		fmt.Fprintln(&buf, strings.Repeat("-", 60))
		if sc.Loan != nil {
			c.writeLoan(&buf, sc.Loan)
		}
		if sc.Investment != nil {
			c.writeInvestment(&buf, sc.Investment)
		}
		if sc.Retirement != nil {
			c.writeRetirement(&buf, sc.Retirement)
		}
	}

	if results.CashFlow != nil {
		fmt.Fprintln(&buf)
		writeCashFlow(&buf, results.CashFlow)
	}
	if results.Health != nil {
		fmt.Fprintln(&buf)
		writeHealth(&buf, results.Health)
	}
	return buf.Bytes(), nil
}

func (c ConsoleFormatter) limit(n int) int {
	if c.ScheduleRows > 0 && c.ScheduleRows < n {
		return c.ScheduleRows
	}
	return n
}

func (c ConsoleFormatter) writeLoan(w io.Writer, loan *domain.LoanResult) {
	fmt.Fprintln(w, "Loan")
	fmt.Fprintf(w, "  Principal financed: %s\n", FormatCurrency(loan.PrincipalToFinance))
	fmt.Fprintf(w, "  Monthly rate:       %s\n", FormatRatio(loan.MonthlyRate))
	fmt.Fprintf(w, "  Installment:        %s x %d\n", FormatCurrency(loan.Installment), loan.TermMonths())
	fmt.Fprintf(w, "  Total paid:         %s\n", FormatCurrency(loan.TotalPaid))
	fmt.Fprintf(w, "  Total interest:     %s\n", FormatCurrency(loan.TotalInterest))
	fmt.Fprintf(w, "  %6s %14s %14s %14s %16s\n", "Period", "Installment", "Interest", "Principal", "Balance")
	rows := c.limit(len(loan.Schedule))
	for _, r := range loan.Schedule[:rows] {
		fmt.Fprintf(w, "  %6d %14s %14s %14s %16s\n", r.Period,
			FormatCurrency(r.Installment), FormatCurrency(r.Interest),
			FormatCurrency(r.Principal), FormatCurrency(r.RemainingBalance))
	}
	if rows < len(loan.Schedule) {
		fmt.Fprintf(w, "  ... %d more periods\n", len(loan.Schedule)-rows)
	}
}

func (c ConsoleFormatter) writeInvestment(w io.Writer, inv *domain.InvestmentResult) {
	fmt.Fprintln(w, "Investment")
	fmt.Fprintf(w, "  Final balance:       %s\n", FormatCurrency(inv.FinalBalance))
	fmt.Fprintf(w, "  Total contributions: %s\n", FormatCurrency(inv.TotalContributions))
	fmt.Fprintf(w, "  Total gain:          %s\n", FormatCurrency(inv.TotalGain))
	fmt.Fprintf(w, "  %6s %16s %16s %16s\n", "Period", "Balance", "Contributed", "Gain")
	rows := c.limit(len(inv.Projection))
	for _, r := range inv.Projection[:rows] {
		fmt.Fprintf(w, "  %6d %16s %16s %16s\n", r.Period,
			FormatCurrency(r.Balance), FormatCurrency(r.CumulativeContributions), FormatCurrency(r.CumulativeGain))
	}
	if rows < len(inv.Projection) {
		fmt.Fprintf(w, "  ... %d more periods\n", len(inv.Projection)-rows)
	}
}

func (c ConsoleFormatter) writeRetirement(w io.Writer, ret *domain.RetirementResult) {
	fmt.Fprintln(w, "Retirement")
	fmt.Fprintf(w, "  Contribution years:        %d\n", ret.ContributionYears)
	fmt.Fprintf(w, "  Inflation-adjusted salary: %s\n", FormatCurrency(ret.InflationAdjustedSalary))
	fmt.Fprintf(w, "  Monthly savings:           %s\n", FormatCurrency(ret.MonthlySavings))
	fmt.Fprintf(w, "  Annual contribution:       %s\n", FormatCurrency(ret.AnnualContribution))
	fmt.Fprintf(w, "  Final balance:             %s\n", FormatCurrency(ret.FinalBalance))
	fmt.Fprintf(w, "  Monthly income estimate:   %s\n", FormatCurrency(ret.MonthlyIncomeEstimate))
	fmt.Fprintf(w, "  %4s %4s %16s %14s\n", "Year", "Age", "Balance", "Income/mo")
	rows := c.limit(len(ret.Projection))
	for _, y := range ret.Projection[:rows] {
		fmt.Fprintf(w, "  %4d %4d %16s %14s\n", y.Year, y.Age, FormatCurrency(y.Balance), FormatCurrency(y.MonthlyIncome))
	}
	if rows < len(ret.Projection) {
		fmt.Fprintf(w, "  ... %d more years\n", len(ret.Projection)-rows)
	}
}

func writeCashFlow(w io.Writer, cf *domain.CashFlowForecast) {
	fmt.Fprintf(w, "CASH FLOW FORECAST (%d months from %s)\n", cf.HorizonMonths, dateutil.MonthLabel(cf.Start))
	fmt.Fprintln(w, strings.Repeat("-", 60))
	fmt.Fprintf(w, "  %-8s %14s %14s %14s\n", "Month", "Income", "Expense", "Net")
	for _, p := range cf.Periods {
		fmt.Fprintf(w, "  %-8s %14s %14s %14s\n", p.Month, FormatCurrency(p.Income), FormatCurrency(p.Expense), FormatCurrency(p.Net))
	}
	fmt.Fprintf(w, "  %-8s %14s %14s %14s\n", "Total", FormatCurrency(cf.TotalIncome), FormatCurrency(cf.TotalExpense), FormatCurrency(cf.TotalNet))
}

func writeHealth(w io.Writer, h *domain.HealthSnapshot) {
	fmt.Fprintln(w, "FINANCIAL HEALTH")
	fmt.Fprintln(w, strings.Repeat("-", 60))
	fmt.Fprintf(w, "  Income:           %s\n", FormatCurrency(h.Income))
	fmt.Fprintf(w, "  Expense:          %s\n", FormatCurrency(h.Expense))
	fmt.Fprintf(w, "  Investment:       %s\n", FormatCurrency(h.Investment))
	fmt.Fprintf(w, "  Net balance:      %s\n", FormatCurrency(h.NetBalance))
	fmt.Fprintf(w, "  Debt ratio:       %s\n", FormatPercentage(h.DebtRatio))
	fmt.Fprintf(w, "  Investment ratio: %s\n", FormatPercentage(h.InvestmentRatio))
	fmt.Fprintf(w, "  Savings ratio:    %s\n", FormatPercentage(h.SavingsRatio))
	fmt.Fprintf(w, "  Rating:           %s (score %d)\n", h.Label, h.Score)
	for _, adj := range h.Adjustments {
		fmt.Fprintf(w, "    %+d %s\n", adj.Points, adj.Reason)
	}
}
