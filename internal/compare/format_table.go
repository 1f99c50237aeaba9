package compare

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// TableFormatter formats comparison results as a console table
type TableFormatter struct{}

const (
	nameWidth  = 28
	numWidth   = 14
	tableWidth = 90
)

// Format generates a formatted table comparing scenarios
func (tf *TableFormatter) Format(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString("SCENARIO COMPARISON\n")
	sb.WriteString(strings.Repeat("=", tableWidth) + "\n")
	sb.WriteString(fmt.Sprintf("Base Scenario: %s\n", compSet.BaseScenarioName))
	if compSet.ConfigPath != "" {
		sb.WriteString(fmt.Sprintf("Configuration: %s\n", compSet.ConfigPath))
	}
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		nameWidth, "Scenario",
		numWidth, "Installment",
		numWidth, "Interest",
		numWidth, "Invest Final",
		numWidth, "Retire Inc/mo"))
	sb.WriteString(strings.Repeat("-", tableWidth) + "\n")

	base := compSet.BaseResult
	sb.WriteString(tf.formatRow(base, true))

	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString(strings.Repeat("-", tableWidth) + "\n")
		for i := range compSet.AlternativeResults {
			sb.WriteString(tf.formatRow(&compSet.AlternativeResults[i], false))
		}
	}

	sb.WriteString(strings.Repeat("=", tableWidth) + "\n")

	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString("\nCOMPARISON TO BASE\n")
		sb.WriteString(strings.Repeat("-", tableWidth) + "\n")

		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(fmt.Sprintf("\n%s:\n", alt.ScenarioName))
			if alt.Description != "" {
				sb.WriteString(fmt.Sprintf("  %s\n", alt.Description))
			}
			if alt.HasLoan {
				sb.WriteString(fmt.Sprintf("  Installment:       %s\n", tf.formatDelta(alt.InstallmentDiff)))
				sb.WriteString(fmt.Sprintf("  Total Interest:    %s\n", tf.formatDelta(alt.InterestDiff)))
			}
			if alt.HasInvestment {
				sb.WriteString(fmt.Sprintf("  Investment Final:  %s\n", tf.formatDelta(alt.InvestmentBalanceDiff)))
			}
			if alt.HasRetirement {
				sb.WriteString(fmt.Sprintf("  Retirement Income: %s (%s%%)\n",
					tf.formatDelta(alt.RetirementIncomeDiff), alt.RetirementIncomePct.StringFixed(1)))
			}
		}
		sb.WriteString("\n")
	}

	if len(compSet.Recommendations) > 0 {
		sb.WriteString("\nRECOMMENDATIONS\n")
		sb.WriteString(strings.Repeat("-", tableWidth) + "\n")
		for _, rec := range compSet.Recommendations {
			sb.WriteString(fmt.Sprintf("* %s\n", rec))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// formatRow formats a single scenario row
func (tf *TableFormatter) formatRow(result *ComparisonResult, isBase bool) string {
	name := result.ScenarioName
	if isBase {
		name += " (base)"
	}

	cell := func(present bool, d decimal.Decimal) string {
		if !present {
			return "-"
		}
		return "$" + tf.formatDecimal(d)
	}

	return fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		nameWidth, tf.truncate(name, nameWidth),
		numWidth, cell(result.HasLoan, result.Installment),
		numWidth, cell(result.HasLoan, result.TotalInterest),
		numWidth, cell(result.HasInvestment, result.InvestmentFinalBalance),
		numWidth, cell(result.HasRetirement, result.RetirementMonthlyIncome))
}

// formatDecimal formats a decimal for display, abbreviating thousands and
// millions.
func (tf *TableFormatter) formatDecimal(d decimal.Decimal) string {
	if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(1000000)) {
		millions := d.Div(decimal.NewFromInt(1000000))
		return millions.StringFixed(2) + "M"
	} else if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(10000)) {
		thousands := d.Div(decimal.NewFromInt(1000))
		return thousands.StringFixed(1) + "K"
	}
	return d.StringFixed(2)
}

func (tf *TableFormatter) formatDelta(d decimal.Decimal) string {
	switch {
	case d.IsPositive():
		return "+$" + tf.formatDecimal(d)
	case d.IsNegative():
		return "-$" + tf.formatDecimal(d.Abs())
	}
	return "="
}

// truncate truncates a string to maxLen
func (tf *TableFormatter) truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// FormatCompact creates a compact single-line summary for each scenario
func (tf *TableFormatter) FormatCompact(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Base: %s", compSet.BaseScenarioName))

	for _, alt := range compSet.AlternativeResults {
		var parts []string
		if alt.HasLoan {
			parts = append(parts, "interest "+tf.formatDelta(alt.InterestDiff))
		}
		if alt.HasInvestment {
			parts = append(parts, "balance "+tf.formatDelta(alt.InvestmentBalanceDiff))
		}
		if alt.HasRetirement {
			parts = append(parts, "income "+tf.formatDelta(alt.RetirementIncomeDiff))
		}
		sb.WriteString(fmt.Sprintf(" | %s: %s", alt.ScenarioName, strings.Join(parts, ", ")))
	}

	return sb.String()
}
