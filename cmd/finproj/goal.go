package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rgehrsitz/finproj/internal/breakeven"
	"github.com/rgehrsitz/finproj/internal/config"
	"github.com/spf13/cobra"
)

func newGoalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal [input-file]",
		Short: "Find the parameter value that reaches a financial goal",
		Long: `Search one scenario parameter until the scenario reaches a goal.

Targets:
  monthly_contribution  smallest contribution whose final balance reaches the goal
  savings_rate          smallest savings rate whose retirement income reaches the goal
  loan_term             shortest term whose installment is at most the goal

Examples:
  finproj goal plan.yaml --scenario car --target loan_term --goal 500
  finproj goal plan.yaml --scenario nest_egg --target monthly_contribution --goal 100000 --max 2000`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewInputParser().LoadFromFile(args[0])
			if err != nil {
				return err
			}

			scenarioName, _ := cmd.Flags().GetString("scenario")
			if scenarioName == "" {
				if len(cfg.Scenarios) != 1 {
					return errors.New("--scenario flag is required when the file has several scenarios")
				}
				scenarioName = cfg.Scenarios[0].Name
			}
			base := cfg.FindScenario(scenarioName)
			if base == nil {
				return fmt.Errorf("scenario %s not found in configuration", scenarioName)
			}

			targetName, _ := cmd.Flags().GetString("target")
			target, err := breakeven.ParseTarget(targetName)
			if err != nil {
				return err
			}

			v, err := decimalFlags(cmd, "goal", "tolerance")
			if err != nil {
				return err
			}
			req := breakeven.Request{BaseScenario: base, Target: target, Goal: v[0], Tolerance: v[1]}
			req.MaxIterations, _ = cmd.Flags().GetInt("max-iterations")

			if cmd.Flags().Changed("min") {
				lo, err := decimalFlag(cmd, "min")
				if err != nil {
					return err
				}
				req.Min = &lo
			}
			if cmd.Flags().Changed("max") {
				hi, err := decimalFlag(cmd, "max")
				if err != nil {
					return err
				}
				req.Max = &hi
			}

			result, err := breakeven.NewDefaultSolver(newEngine(cmd)).Solve(context.Background(), req)
			if err != nil {
				return err
			}

			format, _ := cmd.Flags().GetString("format")
			switch strings.ToLower(format) {
			case "json":
				formatter := &breakeven.JSONFormatter{Pretty: true}
				text, err := formatter.Format(result)
				if err != nil {
					return fmt.Errorf("failed to format JSON: %w", err)
				}
				fmt.Fprint(cmd.OutOrStdout(), text)
			case "table", "console", "":
				formatter := &breakeven.TableFormatter{}
				fmt.Fprint(cmd.OutOrStdout(), formatter.Format(result))
			default:
				return fmt.Errorf("unknown output format: %s (valid: table, json)", format)
			}
			return nil
		},
	}
	cmd.Flags().String("scenario", "", "Scenario to search (required unless the file has one scenario)")
	cmd.Flags().String("target", "", "Parameter to search: monthly_contribution, savings_rate or loan_term")
	cmd.Flags().String("goal", "", "Goal amount")
	cmd.Flags().String("min", "", "Lower search bound")
	cmd.Flags().String("max", "", "Upper search bound")
	cmd.Flags().String("tolerance", "", "Bracket width at which the search stops (default 0.01)")
	cmd.Flags().Int("max-iterations", 0, "Iteration limit (default 100)")
	cmd.Flags().StringP("format", "f", "table", "Output format (table, json)")
	_ = cmd.MarkFlagRequired("target")
	_ = cmd.MarkFlagRequired("goal")
	return cmd
}
