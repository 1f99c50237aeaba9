package ledger

import (
	"github.com/rgehrsitz/finproj/internal/domain"
)

// SourceFor picks the ledger behind a configuration: the SQLite file named
// by its ledger block, else the inline cash_flow and health blocks. It
// returns a nil Source when the configuration has neither. The returned
// close function is always safe to call.
func SourceFor(cfg *domain.Configuration) (Source, func() error, error) {
	noop := func() error { return nil }

	if cfg.Ledger != nil && cfg.Ledger.Path != "" {
		store, err := Open(cfg.Ledger.Path)
		if err != nil {
			return nil, noop, err
		}
		return store, store.Close, nil
	}

	if cfg.CashFlow == nil && cfg.Health == nil {
		return nil, noop, nil
	}
	return NewStaticSource(SnapshotFromConfig(cfg.CashFlow), cfg.Health), noop, nil
}
