// Package ledger supplies read-only snapshots of recurring income, expenses
// and investments to the calculation engine.
package ledger

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rgehrsitz/finproj/internal/calculation"
	"github.com/rgehrsitz/finproj/internal/domain"
	"github.com/rgehrsitz/finproj/pkg/dateutil"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Source is the collaborator the engine reads ledger data from.
type Source = calculation.LedgerSource

// Record is a stored income or expense entry.
type Record struct {
	ID                   string `yaml:"id,omitempty" json:"id"`
	domain.RecurringItem `yaml:",inline"`
}

// Investment is principal committed to an investment over a date range.
// A zero EndDate means the investment is still active.
type Investment struct {
	ID        string          `yaml:"id,omitempty" json:"id"`
	Title     string          `yaml:"title" json:"title"`
	Principal decimal.Decimal `yaml:"principal" json:"principal"`
	StartDate time.Time       `yaml:"start_date" json:"start_date"`
	EndDate   time.Time       `yaml:"end_date,omitempty" json:"end_date,omitempty"`
}

// ActiveIn reports whether the investment overlaps the calendar month.
func (inv Investment) ActiveIn(month time.Time) bool {
	if dateutil.MonthsBetween(inv.StartDate, month) < 0 {
		return false
	}
	return inv.EndDate.IsZero() || dateutil.MonthsBetween(month, inv.EndDate) >= 0
}

// Snapshot is the full content of a ledger.
type Snapshot struct {
	Income      []Record     `yaml:"income" json:"income"`
	Expenses    []Record     `yaml:"expenses" json:"expenses"`
	Investments []Investment `yaml:"investments" json:"investments"`
}

// LoadSnapshot reads a YAML ledger export.
func LoadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	var snap Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := snap.Normalize(); err != nil {
		return nil, fmt.Errorf("ledger validation failed: %w", err)
	}
	return &snap, nil
}

// SnapshotFromConfig builds a snapshot from the inline cash_flow items.
func SnapshotFromConfig(cfg *domain.CashFlowConfig) *Snapshot {
	snap := &Snapshot{}
	if cfg == nil {
		return snap
	}
	for _, item := range cfg.Income {
		snap.Income = append(snap.Income, Record{RecurringItem: item})
	}
	for _, item := range cfg.Expenses {
		snap.Expenses = append(snap.Expenses, Record{RecurringItem: item})
	}
	return snap
}

// Normalize assigns missing IDs and validates every entry.
func (s *Snapshot) Normalize() error {
	for _, side := range []struct {
		name    string
		records []Record
	}{{"income", s.Income}, {"expenses", s.Expenses}} {
		for i := range side.records {
			r := &side.records[i]
			if r.ID == "" {
				r.ID = uuid.NewString()
			}
			if r.Title == "" {
				return fmt.Errorf("%s[%d]: %w", side.name, i, domain.NewValidationError("title", nil, "is required"))
			}
			if r.Amount.IsNegative() {
				return fmt.Errorf("%s[%d] (%s): %w", side.name, i, r.Title, domain.NewValidationError("amount", r.Amount, "must not be negative"))
			}
			r.Recurrence = domain.ParseRecurrence(string(r.Recurrence))
			if r.Recurrence == "" {
				r.Recurrence = domain.RecurrenceNone
			}
			if !r.Recurrence.Known() {
				return fmt.Errorf("%s[%d] (%s): %w", side.name, i, r.Title, domain.NewValidationError("recurrence", r.Recurrence, "unknown recurrence kind"))
			}
		}
	}
	for i := range s.Investments {
		inv := &s.Investments[i]
		if inv.ID == "" {
			inv.ID = uuid.NewString()
		}
		if inv.Principal.IsNegative() {
			return fmt.Errorf("investments[%d] (%s): %w", i, inv.Title, domain.NewValidationError("principal", inv.Principal, "must not be negative"))
		}
		if !inv.EndDate.IsZero() && inv.EndDate.Before(inv.StartDate) {
			return fmt.Errorf("investments[%d] (%s): %w", i, inv.Title, domain.NewValidationError("end_date", dateutil.MonthLabel(inv.EndDate), "is before start_date"))
		}
	}
	return nil
}

func recurringOnly(records []Record) []domain.RecurringItem {
	var items []domain.RecurringItem
	for _, r := range records {
		if r.Recurrence != domain.RecurrenceNone {
			items = append(items, r.RecurringItem)
		}
	}
	return items
}

// periodTotals aggregates one calendar month: every entry dated in the
// month, plus recurring entries dated earlier whose recurrence falls in the
// month, plus the principal of investments active in it.
func periodTotals(s *Snapshot, month time.Time) domain.HealthInputs {
	start := dateutil.MonthStart(month)
	return domain.HealthInputs{
		Income:     sumRecords(s.Income, start),
		Expense:    sumRecords(s.Expenses, start),
		Investment: sumInvestments(s.Investments, start),
	}
}

func sumRecords(records []Record, month time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		switch {
		case dateutil.SameMonth(r.ReferenceDate, month):
			total = total.Add(r.Amount)
		case r.ReferenceDate.Before(month) && calculation.RecurrenceMatches(r.Recurrence, month.Month()):
			total = total.Add(r.Amount)
		}
	}
	return total
}

func sumInvestments(investments []Investment, month time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, inv := range investments {
		if inv.ActiveIn(month) {
			total = total.Add(inv.Principal)
		}
	}
	return total
}
