package breakeven

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rgehrsitz/finproj/pkg/money"
	"github.com/shopspring/decimal"
)

// TableFormatter formats solver results for the console
type TableFormatter struct{}

// Format generates a formatted table for a solver result
func (tf *TableFormatter) Format(result *Result) string {
	var sb strings.Builder

	sb.WriteString("GOAL SEEK RESULTS\n")
	sb.WriteString(strings.Repeat("=", 60) + "\n")

	sb.WriteString(fmt.Sprintf("Scenario:     %s\n", result.Scenario))
	sb.WriteString(fmt.Sprintf("Target:       %s\n", result.Target))
	sb.WriteString(fmt.Sprintf("Goal:         %s\n", tf.goalLabel(result)))
	sb.WriteString(fmt.Sprintf("Status:       %s\n", tf.formatStatus(result.Success)))
	sb.WriteString(fmt.Sprintf("Iterations:   %d\n", result.Iterations))
	if result.ConvergenceInfo != "" {
		sb.WriteString(fmt.Sprintf("Convergence:  %s\n", result.ConvergenceInfo))
	}
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("%-22s %16s %16s\n", "", "Base", "Solution"))
	sb.WriteString(strings.Repeat("-", 60) + "\n")
	sb.WriteString(fmt.Sprintf("%-22s %16s %16s\n", tf.parameterLabel(result.Target),
		tf.formatParameter(result.Target, result.BaseValue), tf.formatParameter(result.Target, result.OptimalValue)))
	sb.WriteString(fmt.Sprintf("%-22s %16s %16s\n", tf.metricLabel(result.Target),
		money.Format(result.BaseAchieved), money.Format(result.Achieved)))
	sb.WriteString("\n")

	return sb.String()
}

func (tf *TableFormatter) goalLabel(result *Result) string {
	switch result.Target {
	case TargetLoanTerm:
		return "installment at most " + money.Format(result.Goal)
	case TargetSavingsRate:
		return "monthly income of " + money.Format(result.Goal)
	default:
		return "final balance of " + money.Format(result.Goal)
	}
}

func (tf *TableFormatter) parameterLabel(t Target) string {
	switch t {
	case TargetLoanTerm:
		return "Term (months)"
	case TargetSavingsRate:
		return "Savings rate"
	default:
		return "Monthly contribution"
	}
}

func (tf *TableFormatter) metricLabel(t Target) string {
	switch t {
	case TargetLoanTerm:
		return "Installment"
	case TargetSavingsRate:
		return "Monthly income"
	default:
		return "Final balance"
	}
}

func (tf *TableFormatter) formatParameter(t Target, v decimal.Decimal) string {
	switch t {
	case TargetLoanTerm:
		return v.StringFixed(0)
	case TargetSavingsRate:
		return money.FormatPercent(v)
	default:
		return money.Format(v)
	}
}

func (tf *TableFormatter) formatStatus(success bool) string {
	if success {
		return "converged"
	}
	return "did not converge"
}

// JSONFormatter formats results as JSON
type JSONFormatter struct {
	Pretty bool
}

// Format generates JSON output for a solver result
func (jf *JSONFormatter) Format(result *Result) (string, error) {
	var data []byte
	var err error

	if jf.Pretty {
		data, err = json.MarshalIndent(result, "", "  ")
	} else {
		data, err = json.Marshal(result)
	}

	if err != nil {
		return "", err
	}

	return string(data), nil
}
