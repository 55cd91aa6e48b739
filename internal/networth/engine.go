// Package networth keeps the per-player financial snapshots and their turn-by-turn history.
package networth

import (
	"context"

	"github.com/cedrichille/monopoly-companion-app/internal/domain"
	"github.com/cedrichille/monopoly-companion-app/internal/store"
	"github.com/cedrichille/monopoly-companion-app/internal/store/schema"
)

// LogEntry is a logged end-of-turn snapshot
type LogEntry struct {
	domain.Snapshot
	// NetWorth is the value frozen when the turn was logged
	NetWorth int64 `json:"net_worth"`
}

// Engine applies deltas to snapshots and writes the net worth log
type Engine struct {
	store store.Store
}

// New creates an engine over the given store
func New(st store.Store) *Engine {
	return &Engine{store: st}
}

// Seed creates the opening snapshot rows
func (e *Engine) Seed(ctx context.Context, snapshots []domain.Snapshot) error {
	rows := make([]schema.NetWorth, 0, len(snapshots))
	for _, s := range snapshots {
		rows = append(rows, schema.NetWorth{
			PlayerID:           s.PlayerID,
			Turn:               s.Turn,
			CashBalance:        s.CashBalance,
			NetPropertyValue:   s.NetPropertyValue,
			ImprovementValue:   s.ImprovementValue,
			GrossPropertyValue: s.GrossPropertyValue,
		})
	}
	return e.store.CreateNetWorths(ctx, rows)
}

// ApplyDelta adds a delta to the player's current snapshot in one statement
func (e *Engine) ApplyDelta(ctx context.Context, playerID int64, turn int, delta domain.Delta) error {
	if delta.IsZero() {
		return nil
	}

	ok, err := e.store.ApplyNetWorthDelta(ctx, playerID, turn, delta)
	if err != nil {
		return err
	}
	if !ok {
		return domain.NewNotFoundError("net worth for player", playerID)
	}
	return nil
}

// Get returns the current snapshot of a player
func (e *Engine) Get(ctx context.Context, playerID int64) (domain.Snapshot, error) {
	row, err := e.store.GetNetWorth(ctx, playerID)
	if err != nil {
		return domain.Snapshot{}, err
	}
	if row == nil {
		return domain.Snapshot{}, domain.NewNotFoundError("net worth for player", playerID)
	}
	return snapshotFromRow(*row), nil
}

// SnapshotAll returns every current snapshot ordered by player id
func (e *Engine) SnapshotAll(ctx context.Context) ([]domain.Snapshot, error) {
	rows, err := e.store.ListNetWorths(ctx)
	if err != nil {
		return nil, err
	}

	snapshots := make([]domain.Snapshot, 0, len(rows))
	for _, row := range rows {
		snapshots = append(snapshots, snapshotFromRow(row))
	}
	return snapshots, nil
}

// LogTurn copies every current snapshot into the log for the completed turn.
// A turn that was already logged keeps its first rows.
func (e *Engine) LogTurn(ctx context.Context, turn int) (int, error) {
	return e.store.AppendNetWorthLog(ctx, turn)
}

// History returns logged snapshots ordered by turn then player id
func (e *Engine) History(ctx context.Context, filter store.NetWorthLogFilter) ([]LogEntry, error) {
	rows, err := e.store.ListNetWorthLog(ctx, filter)
	if err != nil {
		return nil, err
	}

	entries := make([]LogEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, LogEntry{
			Snapshot: domain.Snapshot{
				PlayerID:           row.PlayerID,
				Turn:               row.Turn,
				CashBalance:        row.CashBalance,
				NetPropertyValue:   row.NetPropertyValue,
				ImprovementValue:   row.ImprovementValue,
				GrossPropertyValue: row.GrossPropertyValue,
			},
			NetWorth: row.NetWorth,
		})
	}
	return entries, nil
}

func snapshotFromRow(row schema.NetWorth) domain.Snapshot {
	return domain.Snapshot{
		PlayerID:           row.PlayerID,
		Turn:               row.Turn,
		CashBalance:        row.CashBalance,
		NetPropertyValue:   row.NetPropertyValue,
		ImprovementValue:   row.ImprovementValue,
		GrossPropertyValue: row.GrossPropertyValue,
	}
}
