// Package txlog appends to and reads the transaction log.
package txlog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/oklog/ulid/v2"
	"gorm.io/datatypes"

	"github.com/cedrichille/monopoly-companion-app/internal/adapter"
	"github.com/cedrichille/monopoly-companion-app/internal/domain"
	"github.com/cedrichille/monopoly-companion-app/internal/store"
	"github.com/cedrichille/monopoly-companion-app/internal/store/schema"
)

// Entry is one cash or asset movement between the acting player and a counterparty.
// Amounts are seen from the acting player's side.
type Entry struct {
	Turn           int
	PlayerID       int64
	CounterpartyID int64
	Action         domain.ActionType
	PropertyID     *int64
	CashReceived   int64
	CashPaid       int64
	AssetReceived  int64
	AssetPaid      int64
	Details        map[string]interface{}
}

// Log appends transactions; rows are never updated or deleted
type Log struct {
	store store.Store
	clock adapter.Clock
}

// New creates a transaction log over the given store
func New(st store.Store, clock adapter.Clock) *Log {
	return &Log{store: st, clock: clock}
}

// Record appends one transaction row and returns it
func (l *Log) Record(ctx context.Context, entry Entry) (*schema.Transaction, error) {
	if entry.CashReceived < 0 || entry.CashPaid < 0 || entry.AssetReceived < 0 || entry.AssetPaid < 0 {
		return nil, domain.NewInvalidStateError("transaction amounts must not be negative")
	}

	actionType, err := l.store.GetActionTypeByCode(ctx, entry.Action)
	if err != nil {
		return nil, err
	}
	if actionType == nil {
		return nil, domain.NewNotFoundError("action type", entry.Action)
	}

	var details datatypes.JSON
	if len(entry.Details) > 0 {
		raw, err := json.Marshal(entry.Details)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal transaction details: %w", err)
		}
		details = datatypes.JSON(raw)
	}

	now := l.clock.Now()
	tx := &schema.Transaction{
		Ref:            ulid.MustNewDefault(now).String(),
		Turn:           entry.Turn,
		PlayerID:       entry.PlayerID,
		CounterpartyID: entry.CounterpartyID,
		ActionTypeID:   actionType.ID,
		PropertyID:     entry.PropertyID,
		CashReceived:   entry.CashReceived,
		CashPaid:       entry.CashPaid,
		AssetReceived:  entry.AssetReceived,
		AssetPaid:      entry.AssetPaid,
		Details:        details,
		CreatedAt:      now,
	}
	if err := l.store.CreateTransaction(ctx, tx); err != nil {
		return nil, err
	}
	tx.ActionType = *actionType

	return tx, nil
}

// List returns transactions in log order and the total matching the filter
func (l *Log) List(ctx context.Context, filter store.TransactionFilter) ([]schema.Transaction, uint64, error) {
	return l.store.ListTransactions(ctx, filter)
}
