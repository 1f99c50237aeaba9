package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/rgehrsitz/finproj/internal/config"
	"github.com/rgehrsitz/finproj/internal/output"
	"github.com/spf13/cobra"
)

// preferencesPath returns --prefs, else the XDG preferences path.
func preferencesPath(cmd *cobra.Command) string {
	if path, _ := cmd.Flags().GetString("prefs"); path != "" {
		return path
	}
	return config.PreferencesPath()
}

func newPrefsCmd() *cobra.Command {
	prefsCmd := &cobra.Command{
		Use:   "prefs",
		Short: "Manage user preferences",
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a preferences file",
		Long: `Write a preferences file with the defaults, overridden by any flags given.

Examples:
  finproj prefs init --format json --horizon 24 --ledger ~/finance/ledger.db`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := preferencesPath(cmd)
			force, _ := cmd.Flags().GetBool("force")
			if fileExists(path) && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}

			prefs := config.DefaultPreferences()
			if format, _ := cmd.Flags().GetString("format"); format != "" {
				if output.GetFormatterByName(format) == nil {
					return fmt.Errorf("unsupported format: %s", format)
				}
				prefs.Output.Format = output.NormalizeFormatName(format)
			}
			if horizon, _ := cmd.Flags().GetInt("horizon"); horizon > 0 {
				prefs.Forecast.HorizonMonths = horizon
			}
			if ledgerPath, _ := cmd.Flags().GetString("ledger"); ledgerPath != "" {
				prefs.Ledger.Path = ledgerPath
			}
			if theme, _ := cmd.Flags().GetString("theme"); theme != "" {
				prefs.Appearance.Theme = theme
			}

			if err := config.SavePreferences(path, prefs); err != nil {
				return fmt.Errorf("saving preferences: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved to %s\n", path)
			return nil
		},
	}
	initCmd.Flags().String("format", "", "Default output format")
	initCmd.Flags().Int("horizon", 0, "Default forecast horizon in months")
	initCmd.Flags().String("ledger", "", "Default SQLite ledger path")
	initCmd.Flags().String("theme", "", "TUI theme")
	initCmd.Flags().Bool("force", false, "Overwrite an existing file")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := preferencesPath(cmd)
			prefs, err := config.LoadPreferences(path)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "# %s\n", path)
			return toml.NewEncoder(cmd.OutOrStdout()).Encode(prefs)
		},
	}

	prefsCmd.AddCommand(initCmd, showCmd)
	return prefsCmd
}
