package ledger

import (
	"context"
	"time"

	"github.com/rgehrsitz/finproj/internal/domain"
)

// StaticSource serves an in-memory snapshot, typically the inline items of
// a scenario file.
type StaticSource struct {
	snapshot *Snapshot
	totals   *domain.HealthInputs
}

// NewStaticSource wraps snap. When totals is non-nil it is returned for every
// month instead of aggregating the snapshot.
func NewStaticSource(snap *Snapshot, totals *domain.HealthInputs) *StaticSource {
	if snap == nil {
		snap = &Snapshot{}
	}
	return &StaticSource{snapshot: snap, totals: totals}
}

// RecurringIncome returns copies of the recurring income items.
func (s *StaticSource) RecurringIncome(ctx context.Context) ([]domain.RecurringItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return recurringOnly(s.snapshot.Income), nil
}

// RecurringExpenses returns copies of the recurring expense items.
func (s *StaticSource) RecurringExpenses(ctx context.Context) ([]domain.RecurringItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return recurringOnly(s.snapshot.Expenses), nil
}

// PeriodTotals aggregates the month, or returns the fixed totals.
func (s *StaticSource) PeriodTotals(ctx context.Context, month time.Time) (domain.HealthInputs, error) {
	if err := ctx.Err(); err != nil {
		return domain.HealthInputs{}, err
	}
	if s.totals != nil {
		return *s.totals, nil
	}
	return periodTotals(s.snapshot, month), nil
}
