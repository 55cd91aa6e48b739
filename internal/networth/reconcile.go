package networth

import (
	"context"

	"github.com/cedrichille/monopoly-companion-app/internal/domain"
	"github.com/cedrichille/monopoly-companion-app/internal/store"
	"github.com/cedrichille/monopoly-companion-app/internal/store/schema"
)

// Audited fields
const (
	FieldCash          = "cash_balance"
	FieldNetProperty   = "net_property_value"
	FieldImprovement   = "improvement_value"
	FieldGrossProperty = "gross_property_value"
)

// Mismatch is a stored figure that disagrees with the value rebuilt from the ledger or the transaction log
type Mismatch struct {
	PlayerID int64  `json:"player_id"`
	Field    string `json:"field"`
	Stored   int64  `json:"stored"`
	Expected int64  `json:"expected"`
}

// Report is the outcome of Reconcile
type Report struct {
	PlayersChecked      int        `json:"players_checked"`
	TransactionsApplied int        `json:"transactions_applied"`
	CashInPlay          int64      `json:"cash_in_play"`
	CashSunk            int64      `json:"cash_sunk"`
	Mismatches          []Mismatch `json:"mismatches"`
}

// OK reports whether every stored figure matched
func (r Report) OK() bool {
	return len(r.Mismatches) == 0
}

// ReconcileInput holds what the snapshots are rebuilt from
type ReconcileInput struct {
	// OpeningCash is each player's cash at registration, Bank and Free Parking included
	OpeningCash map[int64]int64
	// Transactions is the full transaction log with action types loaded
	Transactions []schema.Transaction
}

// sinkActions take cash out of circulation: the counterparty is not credited
var sinkActions = map[domain.ActionType]bool{
	domain.ActionTypeBuild: true,
}

// Reconcile rebuilds property values from the ownership ledger and cash from the transaction
// log, and reports every snapshot field that disagrees. Nothing is corrected.
func (e *Engine) Reconcile(ctx context.Context, input ReconcileInput) (*Report, error) {
	snapshots, err := e.SnapshotAll(ctx)
	if err != nil {
		return nil, err
	}

	values, err := e.store.GetPropertyValuesByOwner(ctx)
	if err != nil {
		return nil, err
	}
	byOwner := make(map[int64]store.PropertyValues, len(values))
	for _, v := range values {
		byOwner[v.PlayerID] = v
	}

	cash, sunk := ReplayCash(input.OpeningCash, input.Transactions)

	report := &Report{
		PlayersChecked:      len(snapshots),
		TransactionsApplied: len(input.Transactions),
		CashSunk:            sunk,
		Mismatches:          []Mismatch{},
	}

	for _, s := range snapshots {
		report.CashInPlay += s.CashBalance

		v := byOwner[s.PlayerID]
		checks := []struct {
			field    string
			stored   int64
			expected int64
		}{
			{FieldCash, s.CashBalance, cash[s.PlayerID]},
			{FieldNetProperty, s.NetPropertyValue, v.NetPropertyValue()},
			{FieldImprovement, s.ImprovementValue, v.ImprovementValue},
			{FieldGrossProperty, s.GrossPropertyValue, v.GrossPropertyValue},
		}
		for _, c := range checks {
			if c.stored != c.expected {
				report.Mismatches = append(report.Mismatches, Mismatch{
					PlayerID: s.PlayerID,
					Field:    c.field,
					Stored:   c.stored,
					Expected: c.expected,
				})
			}
		}
	}

	return report, nil
}

// ReplayCash applies the transaction log to the opening balances. Amounts are recorded from
// the acting player's side, so the counterparty receives the mirror image unless the action
// is a sink. It returns the balances and the total cash sunk.
func ReplayCash(opening map[int64]int64, transactions []schema.Transaction) (map[int64]int64, int64) {
	cash := make(map[int64]int64, len(opening))
	for id, amount := range opening {
		cash[id] = amount
	}

	var sunk int64
	for _, tx := range transactions {
		net := tx.CashReceived - tx.CashPaid
		cash[tx.PlayerID] += net
		if sinkActions[tx.ActionType.Code] {
			sunk -= net
			continue
		}
		cash[tx.CounterpartyID] -= net
	}

	return cash, sunk
}
