package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rgehrsitz/finproj/internal/calculation"
	"github.com/rgehrsitz/finproj/internal/config"
	"github.com/rgehrsitz/finproj/internal/domain"
	"github.com/rgehrsitz/finproj/internal/ledger"
	"github.com/rgehrsitz/finproj/internal/output"
	"github.com/rgehrsitz/finproj/pkg/dateutil"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var errNoLedger = errors.New("no ledger: pass a configuration file or --db, or set ledger.path in the preferences")

// ledgerPath returns --db, else the preferred ledger path.
func ledgerPath(cmd *cobra.Command) string {
	if path, _ := cmd.Flags().GetString("db"); path != "" {
		return path
	}
	return loadPreferences(cmd).Ledger.Path
}

// openSource resolves the ledger a command reads from. A configuration file
// argument wins, with --db overriding its ledger block; otherwise the
// SQLite ledger from --db or the preferences is used.
func openSource(cmd *cobra.Command, args []string) (ledger.Source, *domain.Configuration, func() error, error) {
	noop := func() error { return nil }

	if len(args) == 1 {
		cfg, err := config.NewInputParser().LoadFromFile(args[0])
		if err != nil {
			return nil, nil, noop, err
		}
		if db, _ := cmd.Flags().GetString("db"); db != "" {
			cfg.Ledger = &domain.LedgerConfig{Path: db}
		}
		src, closeSource, err := ledger.SourceFor(cfg)
		if err != nil {
			return nil, nil, noop, err
		}
		if src == nil {
			return nil, nil, closeSource, fmt.Errorf("%s has no cash_flow, health or ledger block", args[0])
		}
		return src, cfg, closeSource, nil
	}

	path := ledgerPath(cmd)
	if path == "" {
		return nil, nil, noop, errNoLedger
	}
	store, err := ledger.Open(path)
	if err != nil {
		return nil, nil, noop, err
	}
	return store, nil, store.Close, nil
}

// monthFlag parses a YYYY-MM flag, defaulting to fallback.
func monthFlag(cmd *cobra.Command, name string, fallback time.Time) (time.Time, error) {
	raw, _ := cmd.Flags().GetString(name)
	if raw == "" {
		return dateutil.MonthStart(fallback), nil
	}
	return dateutil.ParseMonth(raw)
}

// referenceMonth is the configuration's as_of month, or the current one.
func referenceMonth(cfg *domain.Configuration) time.Time {
	if cfg != nil && !cfg.AsOf.IsZero() {
		return cfg.AsOf
	}
	return time.Now()
}

func newCashFlowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cashflow [input-file]",
		Short: "Forecast monthly income, expenses and net balance",
		Long: `Forecast the recurring ledger items month by month.

The items come from the configuration file's cash_flow or ledger block, or
from the SQLite ledger named by --db (or ledger.path in the preferences).

Examples:
  finproj cashflow plan.yaml
  finproj cashflow --db ledger.db --months 24 --from 2026-01`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, cfg, closeSource, err := openSource(cmd, args)
			if err != nil {
				return err
			}
			defer closeSource()

			start, err := monthFlag(cmd, "from", referenceMonth(cfg))
			if err != nil {
				return err
			}
			horizon, _ := cmd.Flags().GetInt("months")
			if horizon == 0 {
				horizon = loadPreferences(cmd).Forecast.HorizonMonths
				if cfg != nil && cfg.CashFlow != nil {
					horizon = cfg.CashFlow.HorizonMonths
				}
			}

			forecast, err := newEngine(cmd).Forecast(context.Background(), src, start, horizon)
			if err != nil {
				return err
			}
			return output.Render(cmd.OutOrStdout(), &domain.Results{AsOf: start, CashFlow: forecast}, outputFormat(cmd))
		},
	}
	cmd.Flags().String("db", "", "SQLite ledger database")
	cmd.Flags().Int("months", 0, "Forecast horizon in months (default from the configuration or preferences)")
	cmd.Flags().String("from", "", "First forecast month, YYYY-MM (default: as_of or the current month)")
	cmd.Flags().StringP("format", "f", "", "Output format (console, html, json, csv)")
	return cmd
}

func newHealthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "health [input-file]",
		Short: "Score the financial health of one month",
		Long: `Score one month of income, expenses and investments.

Pass --income, --expense and --investment to score amounts directly, or read
the month's totals from a configuration file or SQLite ledger.

Examples:
  finproj health --income 5000 --expense 2000 --investment 1000
  finproj health --db ledger.db --month 2026-03`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format := outputFormat(cmd)

			if cmd.Flags().Changed("income") || cmd.Flags().Changed("expense") || cmd.Flags().Changed("investment") {
				v, err := decimalFlags(cmd, "income", "expense", "investment")
				if err != nil {
					return err
				}
				snapshot := calculation.ScoreHealth(domain.HealthInputs{Income: v[0], Expense: v[1], Investment: v[2]})
				return output.Render(cmd.OutOrStdout(), &domain.Results{Health: &snapshot}, format)
			}

			src, cfg, closeSource, err := openSource(cmd, args)
			if err != nil {
				return err
			}
			defer closeSource()

			month, err := monthFlag(cmd, "month", referenceMonth(cfg))
			if err != nil {
				return err
			}
			snapshot, err := newEngine(cmd).Health(context.Background(), src, month)
			if err != nil {
				return err
			}
			return output.Render(cmd.OutOrStdout(), &domain.Results{AsOf: month, Health: snapshot}, format)
		},
	}
	cmd.Flags().String("db", "", "SQLite ledger database")
	cmd.Flags().String("month", "", "Month to score, YYYY-MM (default: as_of or the current month)")
	cmd.Flags().String("income", "0", "Monthly income")
	cmd.Flags().String("expense", "0", "Monthly expenses")
	cmd.Flags().String("investment", "0", "Monthly investments")
	cmd.Flags().StringP("format", "f", "", "Output format (console, html, json, csv)")
	return cmd
}

func newLedgerCmd() *cobra.Command {
	ledgerCmd := &cobra.Command{
		Use:   "ledger",
		Short: "Manage the SQLite ledger of income, expenses and investments",
	}
	ledgerCmd.PersistentFlags().String("db", "", "SQLite ledger database (default: ledger.path from the preferences)")

	importCmd := &cobra.Command{
		Use:   "import [snapshot-file]",
		Short: "Import a YAML ledger snapshot",
		Long: `Import income, expenses and investments from a YAML snapshot.

Entries keep their id when they have one, so importing the same file twice
updates rather than duplicates. --replace empties the ledger first.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ledgerPath(cmd)
			if path == "" {
				return errNoLedger
			}

			snap, err := ledger.LoadSnapshot(args[0])
			if err != nil {
				return err
			}

			store, err := ledger.Open(path)
			if err != nil {
				return err
			}
			defer store.Close()

			replace, _ := cmd.Flags().GetBool("replace")
			if err := store.Import(context.Background(), snap, replace); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d income, %d expense and %d investment entries into %s\n",
				len(snap.Income), len(snap.Expenses), len(snap.Investments), path)
			return nil
		},
	}
	importCmd.Flags().Bool("replace", false, "Empty the ledger before importing")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the ledger contents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ledgerPath(cmd)
			if path == "" {
				return errNoLedger
			}
			store, err := ledger.Open(path)
			if err != nil {
				return err
			}
			defer store.Close()

			snap, err := store.Snapshot(context.Background())
			if err != nil {
				return err
			}

			format, _ := cmd.Flags().GetString("format")
			var data []byte
			switch strings.ToLower(format) {
			case "json":
				data, err = json.MarshalIndent(snap, "", "  ")
				data = append(data, '\n')
			case "yaml", "":
				data, err = yaml.Marshal(snap)
			default:
				return fmt.Errorf("unknown output format: %s (valid: yaml, json)", format)
			}
			if err != nil {
				return fmt.Errorf("failed to encode ledger: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	showCmd.Flags().StringP("format", "f", "yaml", "Output format (yaml, json)")

	ledgerCmd.AddCommand(importCmd, showCmd)
	return ledgerCmd
}
