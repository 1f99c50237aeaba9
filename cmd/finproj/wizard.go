package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/rgehrsitz/finproj/internal/config"
	"github.com/rgehrsitz/finproj/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	kindLoan       = "loan"
	kindInvestment = "investment"
	kindRetirement = "retirement"
)

// wizardAnswers holds the raw form values. Amounts stay strings until the
// form completes so the inputs can validate them as typed.
type wizardAnswers struct {
	Name string
	Kind string

	Amount      string
	DownPayment string
	Term        string
	Rate        string

	Initial string
	Monthly string
	Months  string

	Age        string
	RetireAt   string
	Salary     string
	Savings    string
	Growth     string
	Inflation  string
	SaveToFile bool
}

func defaultAnswers() wizardAnswers {
	return wizardAnswers{
		Kind:        kindLoan,
		DownPayment: "0",
		Rate:        "0",
		Initial:     "0",
		Monthly:     "0",
		RetireAt:    "65",
		Savings:     "10",
		Growth:      "0",
		Inflation:   "0",
		SaveToFile:  true,
	}
}

func requireText(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("required")
	}
	return nil
}

func validateAmount(s string) error {
	if _, err := decimal.NewFromString(strings.TrimSpace(s)); err != nil {
		return errors.New("enter a number")
	}
	return nil
}

func validateCount(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return errors.New("enter a whole number")
	}
	return nil
}

func parseAmount(field, s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, domain.NewValidationError(field, s, "is not a number")
	}
	return d, nil
}

func parseCount(field, s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, domain.NewValidationError(field, s, "is not a whole number")
	}
	return n, nil
}

// scenario converts the answers into a validated scenario.
func (a wizardAnswers) scenario() (*domain.Scenario, error) {
	s := &domain.Scenario{Name: strings.TrimSpace(a.Name)}
	if s.Name == "" {
		return nil, domain.NewValidationError("name", nil, "is required")
	}

	var err error
	switch a.Kind {
	case kindLoan:
		loan := &domain.LoanParameters{}
		if loan.RequestedAmount, err = parseAmount("requested_amount", a.Amount); err != nil {
			return nil, err
		}
		if loan.DownPayment, err = parseAmount("down_payment", a.DownPayment); err != nil {
			return nil, err
		}
		if loan.TermMonths, err = parseCount("term_months", a.Term); err != nil {
			return nil, err
		}
		if loan.AnnualRatePercent, err = parseAmount("annual_rate_percent", a.Rate); err != nil {
			return nil, err
		}
		if err := loan.Validate(); err != nil {
			return nil, err
		}
		s.Loan = loan

	case kindInvestment:
		inv := &domain.InvestmentParameters{}
		if inv.InitialBalance, err = parseAmount("initial_balance", a.Initial); err != nil {
			return nil, err
		}
		if inv.MonthlyContribution, err = parseAmount("monthly_contribution", a.Monthly); err != nil {
			return nil, err
		}
		if inv.Months, err = parseCount("months", a.Months); err != nil {
			return nil, err
		}
		if inv.AnnualRatePercent, err = parseAmount("annual_rate_percent", a.Rate); err != nil {
			return nil, err
		}
		if err := inv.Validate(); err != nil {
			return nil, err
		}
		s.Investment = inv

	case kindRetirement:
		ret := &domain.RetirementInputs{}
		if ret.CurrentAge, err = parseCount("current_age", a.Age); err != nil {
			return nil, err
		}
		if ret.RetirementAge, err = parseCount("retirement_age", a.RetireAt); err != nil {
			return nil, err
		}
		if ret.CurrentSalary, err = parseAmount("current_salary", a.Salary); err != nil {
			return nil, err
		}
		if ret.SavingsRatePercent, err = parseAmount("savings_rate_percent", a.Savings); err != nil {
			return nil, err
		}
		if ret.AnnualGrowthRatePercent, err = parseAmount("annual_growth_rate_percent", a.Growth); err != nil {
			return nil, err
		}
		if ret.AnnualInflationRatePercent, err = parseAmount("annual_inflation_rate_percent", a.Inflation); err != nil {
			return nil, err
		}
		if err := ret.Validate(); err != nil {
			return nil, err
		}
		s.Retirement = ret

	default:
		return nil, domain.NewValidationError("kind", a.Kind, "must be loan, investment or retirement")
	}
	return s, nil
}

// newWizardForm lays out the questions, showing only the group for the
// chosen simulation.
func newWizardForm(a *wizardAnswers, path string) *huh.Form {
	only := func(kind string) func() bool {
		return func() bool { return a.Kind != kind }
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Scenario name").Placeholder("car").Value(&a.Name).Validate(requireText),
			huh.NewSelect[string]().
				Title("What do you want to simulate?").
				Options(
					huh.NewOption("Loan", kindLoan),
					huh.NewOption("Investment", kindInvestment),
					huh.NewOption("Retirement savings", kindRetirement),
				).
				Value(&a.Kind),
		),
		huh.NewGroup(
			huh.NewInput().Title("Requested amount").Value(&a.Amount).Validate(validateAmount),
			huh.NewInput().Title("Down payment").Value(&a.DownPayment).Validate(validateAmount),
			huh.NewInput().Title("Term (months)").Value(&a.Term).Validate(validateCount),
			huh.NewInput().Title("Annual rate (%)").Value(&a.Rate).Validate(validateAmount),
		).WithHideFunc(only(kindLoan)),
		huh.NewGroup(
			huh.NewInput().Title("Initial balance").Value(&a.Initial).Validate(validateAmount),
			huh.NewInput().Title("Monthly contribution").Value(&a.Monthly).Validate(validateAmount),
			huh.NewInput().Title("Months").Value(&a.Months).Validate(validateCount),
			huh.NewInput().Title("Annual rate (%)").Value(&a.Rate).Validate(validateAmount),
		).WithHideFunc(only(kindInvestment)),
		huh.NewGroup(
			huh.NewInput().Title("Current age").Value(&a.Age).Validate(validateCount),
			huh.NewInput().Title("Retirement age").Value(&a.RetireAt).Validate(validateCount),
			huh.NewInput().Title("Monthly salary").Value(&a.Salary).Validate(validateAmount),
			huh.NewInput().Title("Savings rate (%)").Value(&a.Savings).Validate(validateAmount),
			huh.NewInput().Title("Annual growth rate (%)").Value(&a.Growth).Validate(validateAmount),
			huh.NewInput().Title("Annual inflation rate (%)").Value(&a.Inflation).Validate(validateAmount),
		).WithHideFunc(only(kindRetirement)),
		huh.NewGroup(
			huh.NewConfirm().Title(fmt.Sprintf("Add the scenario to %s?", path)).Value(&a.SaveToFile),
		),
	)
}

// appendScenario adds s to the configuration at path, creating the file
// when it does not exist yet.
func appendScenario(path string, s *domain.Scenario) error {
	cfg := &domain.Configuration{}
	if fileExists(path) {
		loaded, err := config.NewInputParser().LoadFromFile(path)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if cfg.FindScenario(s.Name) != nil {
		return fmt.Errorf("duplicate scenario name %q", s.Name)
	}
	cfg.Scenarios = append(cfg.Scenarios, *s)

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}

func newWizardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wizard [output-file]",
		Short: "Build a scenario interactively",
		Long: `Ask for a loan, investment or retirement scenario, print its simulation
and optionally append it to a configuration file (default plan.yaml).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "plan.yaml"
			if len(args) == 1 {
				path = args[0]
			}
			accessible, _ := cmd.Flags().GetBool("accessible")

			answers := defaultAnswers()
			form := newWizardForm(&answers, path).WithAccessible(accessible)
			if err := form.Run(); err != nil {
				if errors.Is(err, huh.ErrUserAborted) {
					return errors.New("wizard cancelled")
				}
				return err
			}

			scenario, err := answers.scenario()
			if err != nil {
				return err
			}
			if err := renderScenario(cmd, scenario); err != nil {
				return err
			}
			if !answers.SaveToFile {
				return nil
			}
			if err := appendScenario(path, scenario); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\nScenario %s saved to %s\n", scenario.Name, path)
			return nil
		},
	}
	cmd.Flags().Bool("accessible", false, "Plain prompts for screen readers")
	cmd.Flags().StringP("format", "f", "", "Output format for the simulation (console, html, json, csv)")
	return cmd
}
