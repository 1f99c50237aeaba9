package main

import (
	"context"
	"fmt"

	"github.com/rgehrsitz/finproj/internal/domain"
	"github.com/rgehrsitz/finproj/internal/output"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// decimalFlag parses a string flag as a decimal amount.
func decimalFlag(cmd *cobra.Command, name string) (decimal.Decimal, error) {
	raw, _ := cmd.Flags().GetString(name)
	if raw == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid --%s %q: %w", name, raw, err)
	}
	return d, nil
}

// decimalFlags parses several decimal flags in order.
func decimalFlags(cmd *cobra.Command, names ...string) ([]decimal.Decimal, error) {
	out := make([]decimal.Decimal, len(names))
	for i, name := range names {
		d, err := decimalFlag(cmd, name)
		if err != nil {
			return nil, err
		}
		out[i] = d
	}
	return out, nil
}

// renderScenario runs a one-off scenario and prints it with the chosen format.
func renderScenario(cmd *cobra.Command, scenario *domain.Scenario) error {
	res, err := newEngine(cmd).RunScenario(context.Background(), scenario)
	if err != nil {
		return err
	}
	results := &domain.Results{Scenarios: []domain.ScenarioResult{*res}}
	return output.Render(cmd.OutOrStdout(), results, outputFormat(cmd))
}

func newLoanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "loan",
		Short: "Simulate a fixed-installment loan",
		Long: `Simulate a fixed-installment loan and print its amortization schedule.

Examples:
  finproj loan --amount 10000 --term 12 --rate 12
  finproj loan --amount 30000 --down-payment 5000 --term 60 --rate 7.5 --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := decimalFlags(cmd, "amount", "down-payment", "rate")
			if err != nil {
				return err
			}
			term, _ := cmd.Flags().GetInt("term")
			return renderScenario(cmd, &domain.Scenario{
				Name: "loan",
				Loan: &domain.LoanParameters{
					RequestedAmount:   v[0],
					DownPayment:       v[1],
					TermMonths:        term,
					AnnualRatePercent: v[2],
				},
			})
		},
	}
	cmd.Flags().String("amount", "", "Requested amount")
	cmd.Flags().String("down-payment", "0", "Down payment")
	cmd.Flags().Int("term", 0, "Term in months")
	cmd.Flags().String("rate", "0", "Annual nominal rate in percent")
	cmd.Flags().StringP("format", "f", "", "Output format (console, html, json, csv)")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("term")
	return cmd
}

func newInvestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "invest",
		Short: "Project a monthly investment plan",
		Long: `Project an investment that earns interest monthly and then receives a contribution.

Examples:
  finproj invest --initial 1000 --monthly 200 --months 24 --rate 9.6`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := decimalFlags(cmd, "initial", "monthly", "rate")
			if err != nil {
				return err
			}
			months, _ := cmd.Flags().GetInt("months")
			return renderScenario(cmd, &domain.Scenario{
				Name: "investment",
				Investment: &domain.InvestmentParameters{
					InitialBalance:      v[0],
					MonthlyContribution: v[1],
					Months:              months,
					AnnualRatePercent:   v[2],
				},
			})
		},
	}
	cmd.Flags().String("initial", "0", "Initial balance")
	cmd.Flags().String("monthly", "0", "Monthly contribution")
	cmd.Flags().Int("months", 0, "Number of months")
	cmd.Flags().String("rate", "0", "Annual nominal rate in percent")
	cmd.Flags().StringP("format", "f", "", "Output format (console, html, json, csv)")
	_ = cmd.MarkFlagRequired("months")
	return cmd
}

func newRetireCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "retire",
		Short: "Project retirement savings and the monthly income they support",
		Long: `Project yearly retirement contributions grown at the net real rate.

Examples:
  finproj retire --age 30 --retire-at 65 --salary 5000 --savings 10 --growth 8 --inflation 3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := decimalFlags(cmd, "salary", "savings", "growth", "inflation")
			if err != nil {
				return err
			}
			age, _ := cmd.Flags().GetInt("age")
			retireAt, _ := cmd.Flags().GetInt("retire-at")
			return renderScenario(cmd, &domain.Scenario{
				Name: "retirement",
				Retirement: &domain.RetirementInputs{
					CurrentAge:                 age,
					RetirementAge:              retireAt,
					CurrentSalary:              v[0],
					SavingsRatePercent:         v[1],
					AnnualGrowthRatePercent:    v[2],
					AnnualInflationRatePercent: v[3],
				},
			})
		},
	}
	cmd.Flags().Int("age", 0, "Current age")
	cmd.Flags().Int("retire-at", 65, "Retirement age")
	cmd.Flags().String("salary", "0", "Current monthly salary")
	cmd.Flags().String("savings", "10", "Savings rate in percent of salary")
	cmd.Flags().String("growth", "0", "Annual growth rate in percent")
	cmd.Flags().String("inflation", "0", "Annual inflation rate in percent")
	cmd.Flags().StringP("format", "f", "", "Output format (console, html, json, csv)")
	_ = cmd.MarkFlagRequired("age")
	_ = cmd.MarkFlagRequired("salary")
	return cmd
}
