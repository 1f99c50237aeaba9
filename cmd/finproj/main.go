package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/rgehrsitz/finproj/internal/calculation"
	"github.com/rgehrsitz/finproj/internal/config"
	"github.com/rgehrsitz/finproj/internal/domain"
	"github.com/rgehrsitz/finproj/internal/ledger"
	"github.com/rgehrsitz/finproj/internal/output"
	"github.com/spf13/cobra"
)

// simpleCLILogger implements calculation.Logger using the standard log package
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "finproj %s (commit %s, built %s)\n", version, commit, date)
			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
				if info := buildInfo(); info != "" {
					fmt.Fprintln(cmd.OutOrStdout(), info)
				}
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.String()
	}
	return ""
}

// fileExists checks if a file exists
func fileExists(filename string) bool {
	_, err := os.Stat(filename)
	return !os.IsNotExist(err)
}

// newRootCmd builds the full command tree. Tests build a fresh tree per run
// so flag values never leak between executions.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "finproj",
		Short:         "Financial projection calculator CLI",
		Long:          "Loan amortization, investment growth, retirement accumulation, cash-flow forecasts and financial health scoring.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().Bool("debug", false, "Enable debug output for detailed calculations")
	root.PersistentFlags().String("prefs", "", "Path to the preferences file (default: $XDG_CONFIG_HOME/finproj/config.toml)")

	versionCommand := versionCmd()
	versionCommand.Flags().BoolP("verbose", "v", false, "Include Go build information")

	root.AddCommand(
		newCalculateCmd(),
		newValidateCmd(),
		newExampleCmd(),
		newLoanCmd(),
		newInvestCmd(),
		newRetireCmd(),
		newCashFlowCmd(),
		newHealthCmd(),
		newCompareCmd(),
		newGoalCmd(),
		newLedgerCmd(),
		newPrefsCmd(),
		newWizardCmd(),
		versionCommand,
	)
	return root
}

// newEngine returns a calculation engine, logging through the standard
// logger when --debug is set.
func newEngine(cmd *cobra.Command) *calculation.CalculationEngine {
	engine := calculation.NewCalculationEngine()
	if debugMode, _ := cmd.Flags().GetBool("debug"); debugMode {
		engine.SetLogger(simpleCLILogger{})
	}
	return engine
}

// loadPreferences reads the user preferences named by --prefs, falling back
// to the defaults when the file is missing or unreadable.
func loadPreferences(cmd *cobra.Command) config.Preferences {
	path, _ := cmd.Flags().GetString("prefs")
	if path == "" {
		path = config.PreferencesPath()
	}
	prefs, err := config.LoadPreferences(path)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v (using defaults)\n", err)
		return config.DefaultPreferences()
	}
	return prefs
}

// outputFormat returns --format when given, else the preferred format.
func outputFormat(cmd *cobra.Command) string {
	format, _ := cmd.Flags().GetString("format")
	if format != "" {
		return format
	}
	return loadPreferences(cmd).Output.Format
}

// runConfiguration loads a configuration file, opens its ledger and runs
// every simulation it describes.
func runConfiguration(cmd *cobra.Command, path string) (*domain.Configuration, *domain.Results, error) {
	cfg, err := config.NewInputParser().LoadFromFile(path)
	if err != nil {
		return nil, nil, err
	}

	src, closeSource, err := ledger.SourceFor(cfg)
	if err != nil {
		return nil, nil, err
	}
	defer closeSource()

	results, err := newEngine(cmd).Run(context.Background(), cfg, src)
	if err != nil {
		return nil, nil, err
	}
	return cfg, results, nil
}

func newCalculateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calculate [input-file]",
		Short: "Run every scenario, forecast and health score in a configuration file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, results, err := runConfiguration(cmd, args[0])
			if err != nil {
				return err
			}

			format := outputFormat(cmd)
			dir, _ := cmd.Flags().GetString("output-dir")
			if dir == "" {
				return output.Render(cmd.OutOrStdout(), results, format)
			}

			f := output.GetFormatterByName(format)
			if f == nil {
				return fmt.Errorf("unsupported format: %s", format)
			}
			path, err := output.WriteFormatted(f, results, dir, output.Extension(format))
			if err != nil {
				return fmt.Errorf("failed to write report: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringP("format", "f", "", "Output format (console, html, json, csv; default from preferences)")
	cmd.Flags().StringP("output-dir", "o", "", "Write report.<ext> into this directory instead of stdout")
	return cmd
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [input-file]",
		Short: "Validate a configuration file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := config.NewInputParser().LoadFromFile(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Configuration file %s is valid\n", args[0])
			return nil
		},
	}
}

func newExampleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "example [output-file]",
		Short: "Generate an example configuration file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			force, _ := cmd.Flags().GetBool("force")
			if fileExists(args[0]) && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", args[0])
			}
			if err := config.NewInputParser().WriteExampleConfiguration(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Example configuration saved to %s\n", args[0])
			return nil
		},
	}
	cmd.Flags().Bool("force", false, "Overwrite an existing file")
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
