package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rgehrsitz/finproj/internal/compare"
	"github.com/rgehrsitz/finproj/internal/config"
	"github.com/rgehrsitz/finproj/internal/transform"
	"github.com/spf13/cobra"
)

func newCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare [input-file]",
		Short: "Compare a scenario against template variants or other scenarios",
		Long: `Compare a base scenario against alternative strategies.

Examples:
  finproj compare plan.yaml --base car --with term_minus_12,rate_minus_1
  finproj compare plan.yaml --base car --transform adjust_term:months=-6 --format csv
  finproj compare plan.yaml --base car --scenarios car_fast,car_cheap
  finproj compare --list-templates  # Show all available templates
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if listTemplates, _ := cmd.Flags().GetBool("list-templates"); listTemplates {
				fmt.Fprint(cmd.OutOrStdout(), transform.GetTemplateHelp(transform.CreateBuiltInTemplates()))
				return nil
			}

			if len(args) == 0 {
				return errors.New("input file required for comparison (use --list-templates to see available templates)")
			}
			inputFile := args[0]

			cfg, err := config.NewInputParser().LoadFromFile(inputFile)
			if err != nil {
				return err
			}

			baseScenarioName, _ := cmd.Flags().GetString("base")
			templatesStr, _ := cmd.Flags().GetString("with")
			transforms, _ := cmd.Flags().GetStringArray("transform")
			scenariosStr, _ := cmd.Flags().GetString("scenarios")
			format, _ := cmd.Flags().GetString("format")

			if baseScenarioName == "" {
				if len(cfg.Scenarios) != 1 {
					return errors.New("--base flag is required to specify the base scenario name")
				}
				baseScenarioName = cfg.Scenarios[0].Name
			}

			templateNames := transform.ParseTemplateList(templatesStr)
			scenarioNames := transform.ParseTemplateList(scenariosStr)
			if len(templateNames) == 0 && len(transforms) == 0 && len(scenarioNames) == 0 {
				return errors.New("nothing to compare: pass --with, --transform or --scenarios (or use --list-templates)")
			}
			if len(scenarioNames) > 0 && (len(templateNames) > 0 || len(transforms) > 0) {
				return errors.New("--scenarios cannot be combined with --with or --transform")
			}

			compareEngine := compare.NewCompareEngine(newEngine(cmd))
			ctx := context.Background()

			var comparisonSet *compare.ComparisonSet
			if len(scenarioNames) > 0 {
				comparisonSet, err = compareEngine.CompareScenarios(ctx, cfg, baseScenarioName, scenarioNames)
			} else {
				comparisonSet, err = compareEngine.Compare(ctx, cfg, compare.CompareOptions{
					BaseScenarioName: baseScenarioName,
					Templates:        templateNames,
					Transforms:       transforms,
				})
			}
			if err != nil {
				return fmt.Errorf("comparison failed: %w", err)
			}
			comparisonSet.ConfigPath = inputFile

			out := cmd.OutOrStdout()
			switch strings.ToLower(format) {
			case "csv":
				formatter := &compare.CSVFormatter{}
				text, err := formatter.Format(comparisonSet)
				if err != nil {
					return fmt.Errorf("failed to format CSV: %w", err)
				}
				fmt.Fprint(out, text)

			case "json":
				formatter := &compare.JSONFormatter{Pretty: true}
				text, err := formatter.Format(comparisonSet)
				if err != nil {
					return fmt.Errorf("failed to format JSON: %w", err)
				}
				fmt.Fprint(out, text)

			case "compact":
				formatter := &compare.TableFormatter{}
				fmt.Fprint(out, formatter.FormatCompact(comparisonSet))

			case "table", "console", "":
				formatter := &compare.TableFormatter{}
				fmt.Fprint(out, formatter.Format(comparisonSet))

			default:
				return fmt.Errorf("unknown output format: %s (valid: table, compact, csv, json)", format)
			}
			return nil
		},
	}
	cmd.Flags().String("base", "", "Base scenario name to compare against (required unless the file has one scenario)")
	cmd.Flags().String("with", "", "Comma-separated list of templates to compare")
	cmd.Flags().StringArray("transform", nil, "Ad-hoc transform spec, e.g. adjust_term:months=-6 (repeatable)")
	cmd.Flags().String("scenarios", "", "Comma-separated scenarios of the file to compare against the base")
	cmd.Flags().StringP("format", "f", "table", "Output format (table, compact, csv, json)")
	cmd.Flags().Bool("list-templates", false, "List all available scenario templates")
	return cmd
}
