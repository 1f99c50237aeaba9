package compare

import (
	"encoding/csv"
	"strconv"
	"strings"
)

// CSVFormatter formats comparison results as CSV
type CSVFormatter struct{}

// Format generates CSV output for comparison results
func (cf *CSVFormatter) Format(compSet *ComparisonSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Scenario",
		"Type",
		"Installment",
		"Loan Term (Months)",
		"Total Interest",
		"Investment Final Balance",
		"Investment Gain",
		"Retirement Final Balance",
		"Retirement Monthly Income",
		"Installment Diff",
		"Interest Diff",
		"Investment Balance Diff",
		"Retirement Balance Diff",
		"Retirement Income Diff",
		"Retirement Income % Change",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	if err := writer.Write(cf.formatRow(compSet.BaseResult, "base")); err != nil {
		return "", err
	}

	for i := range compSet.AlternativeResults {
		if err := writer.Write(cf.formatRow(&compSet.AlternativeResults[i], "alternative")); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// formatRow formats a comparison result as a CSV row
func (cf *CSVFormatter) formatRow(result *ComparisonResult, scenarioType string) []string {
	return []string{
		result.ScenarioName,
		scenarioType,
		result.Installment.StringFixed(2),
		strconv.Itoa(result.LoanTermMonths),
		result.TotalInterest.StringFixed(2),
		result.InvestmentFinalBalance.StringFixed(2),
		result.InvestmentGain.StringFixed(2),
		result.RetirementFinalBalance.StringFixed(2),
		result.RetirementMonthlyIncome.StringFixed(2),
		result.InstallmentDiff.StringFixed(2),
		result.InterestDiff.StringFixed(2),
		result.InvestmentBalanceDiff.StringFixed(2),
		result.RetirementBalanceDiff.StringFixed(2),
		result.RetirementIncomeDiff.StringFixed(2),
		result.RetirementIncomePct.StringFixed(2),
	}
}
