package ledger

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rgehrsitz/finproj/internal/domain"
	"github.com/rgehrsitz/finproj/pkg/dateutil"
	"github.com/shopspring/decimal"

	_ "modernc.org/sqlite" // register sqlite driver
)

// SQLiteStore keeps a ledger in a SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// recordTable describes where one side of the ledger lives.
type recordTable struct {
	name    string
	dateCol string
}

var (
	incomeTable  = recordTable{name: "incomes", dateCol: "received_on"}
	expenseTable = recordTable{name: "expenses", dateCol: "due_on"}
)

// Open opens or creates the ledger database at the given path.
func Open(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating ledger dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening ledger db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the ledger database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Import writes every entry of snap in a single transaction. Entries with an
// existing ID are replaced. With replace set, the ledger is emptied first.
func (s *SQLiteStore) Import(ctx context.Context, snap *Snapshot, replace bool) error {
	if err := snap.Normalize(); err != nil {
		return fmt.Errorf("ledger validation failed: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if replace {
		for _, table := range []string{"incomes", "expenses", "investments"} {
			if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
				return fmt.Errorf("clearing %s: %w", table, err)
			}
		}
	}

	if err := insertRecords(ctx, tx, incomeTable, snap.Income); err != nil {
		return err
	}
	if err := insertRecords(ctx, tx, expenseTable, snap.Expenses); err != nil {
		return err
	}

	for _, inv := range snap.Investments {
		var ended any
		if !inv.EndDate.IsZero() {
			ended = inv.EndDate.Format(dateutil.DateLayout)
		}
		_, err = tx.ExecContext(ctx, `INSERT OR REPLACE INTO investments
			(id, title, principal, started_on, ended_on)
			VALUES (?, ?, ?, ?, ?)`,
			inv.ID, inv.Title, inv.Principal.String(), inv.StartDate.Format(dateutil.DateLayout), ended,
		)
		if err != nil {
			return fmt.Errorf("inserting investment %s: %w", inv.Title, err)
		}
	}

	return tx.Commit()
}

func insertRecords(ctx context.Context, tx *sql.Tx, table recordTable, records []Record) error {
	query := fmt.Sprintf(`INSERT OR REPLACE INTO %s (id, title, amount, recurrence, %s) VALUES (?, ?, ?, ?, ?)`,
		table.name, table.dateCol)
	for _, r := range records {
		_, err := tx.ExecContext(ctx, query,
			r.ID, r.Title, r.Amount.String(), string(r.Recurrence), r.ReferenceDate.Format(dateutil.DateLayout))
		if err != nil {
			return fmt.Errorf("inserting into %s %s: %w", table.name, r.Title, err)
		}
	}
	return nil
}

// Snapshot reads the whole ledger back.
func (s *SQLiteStore) Snapshot(ctx context.Context) (*Snapshot, error) {
	income, err := s.loadRecords(ctx, incomeTable, "")
	if err != nil {
		return nil, err
	}
	expenses, err := s.loadRecords(ctx, expenseTable, "")
	if err != nil {
		return nil, err
	}
	investments, err := s.loadInvestments(ctx, "")
	if err != nil {
		return nil, err
	}
	return &Snapshot{Income: income, Expenses: expenses, Investments: investments}, nil
}

// RecurringIncome returns every income entry that recurs.
func (s *SQLiteStore) RecurringIncome(ctx context.Context) ([]domain.RecurringItem, error) {
	records, err := s.loadRecords(ctx, incomeTable, "WHERE recurrence != 'none'")
	if err != nil {
		return nil, err
	}
	return recurringOnly(records), nil
}

// RecurringExpenses returns every expense entry that recurs.
func (s *SQLiteStore) RecurringExpenses(ctx context.Context) ([]domain.RecurringItem, error) {
	records, err := s.loadRecords(ctx, expenseTable, "WHERE recurrence != 'none'")
	if err != nil {
		return nil, err
	}
	return recurringOnly(records), nil
}

// PeriodTotals aggregates the calendar month containing month.
func (s *SQLiteStore) PeriodTotals(ctx context.Context, month time.Time) (domain.HealthInputs, error) {
	end := dateutil.AddMonths(month, 1).Format(dateutil.DateLayout)

	income, err := s.loadRecords(ctx, incomeTable, "WHERE "+incomeTable.dateCol+" < ?", end)
	if err != nil {
		return domain.HealthInputs{}, err
	}
	expenses, err := s.loadRecords(ctx, expenseTable, "WHERE "+expenseTable.dateCol+" < ?", end)
	if err != nil {
		return domain.HealthInputs{}, err
	}
	investments, err := s.loadInvestments(ctx, "WHERE started_on < ?", end)
	if err != nil {
		return domain.HealthInputs{}, err
	}

	return periodTotals(&Snapshot{Income: income, Expenses: expenses, Investments: investments}, month), nil
}

func (s *SQLiteStore) loadRecords(ctx context.Context, table recordTable, where string, args ...any) ([]Record, error) {
	query := fmt.Sprintf("SELECT id, title, amount, recurrence, %s FROM %s %s ORDER BY rowid", table.dateCol, table.name, where)
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", table.name, err)
	}
	defer func() { _ = rows.Close() }()

	var records []Record
	for rows.Next() {
		var r Record
		var amount, recurrence, date string
		if err := rows.Scan(&r.ID, &r.Title, &amount, &recurrence, &date); err != nil {
			return nil, err
		}
		if r.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("%s %s: bad amount %q: %w", table.name, r.ID, amount, err)
		}
		if r.ReferenceDate, err = dateutil.ParseDate(date); err != nil {
			return nil, fmt.Errorf("%s %s: %w", table.name, r.ID, err)
		}
		r.Recurrence = domain.RecurrenceKind(recurrence)
		records = append(records, r)
	}
	return records, rows.Err()
}

func (s *SQLiteStore) loadInvestments(ctx context.Context, where string, args ...any) ([]Investment, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, title, principal, started_on, ended_on FROM investments "+where+" ORDER BY rowid", args...)
	if err != nil {
		return nil, fmt.Errorf("querying investments: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var investments []Investment
	for rows.Next() {
		var inv Investment
		var principal, started string
		var ended sql.NullString
		if err := rows.Scan(&inv.ID, &inv.Title, &principal, &started, &ended); err != nil {
			return nil, err
		}
		if inv.Principal, err = decimal.NewFromString(principal); err != nil {
			return nil, fmt.Errorf("investment %s: bad principal %q: %w", inv.ID, principal, err)
		}
		if inv.StartDate, err = dateutil.ParseDate(started); err != nil {
			return nil, fmt.Errorf("investment %s: %w", inv.ID, err)
		}
		if ended.Valid && ended.String != "" {
			if inv.EndDate, err = dateutil.ParseDate(ended.String); err != nil {
				return nil, fmt.Errorf("investment %s: %w", inv.ID, err)
			}
		}
		investments = append(investments, inv)
	}
	return investments, rows.Err()
}
