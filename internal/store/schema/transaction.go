package schema

import (
	"time"

	"gorm.io/datatypes"
)

// Transaction represents the transactions table - the append-only record of every cash or asset movement.
// Amounts are seen from the acting player's side: CashPaid is cash that left PlayerID,
// CashReceived is cash that reached PlayerID.
type Transaction struct {
	// ID is an auto-incrementing sequence number
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Ref is a ULID that sorts in creation order and is safe to expose to clients
	Ref string `gorm:"column:ref;not null;uniqueIndex;type:text"`
	// Turn is the turn in which the action happened
	Turn int `gorm:"column:turn;not null;index"`
	// PlayerID is the acting player
	PlayerID int64 `gorm:"column:player_id;not null;index"`
	// CounterpartyID is the other party (Bank, Free Parking or another player)
	CounterpartyID int64 `gorm:"column:counterparty_id;not null"`
	// ActionTypeID references the action_type catalog
	ActionTypeID int64 `gorm:"column:action_type_id;not null"`
	// PropertyID references the property involved, if any
	PropertyID *int64 `gorm:"column:property_id"`
	// CashReceived is cash credited to the acting player
	CashReceived int64 `gorm:"column:cash_received;not null;default:0"`
	// CashPaid is cash debited from the acting player
	CashPaid int64 `gorm:"column:cash_paid;not null;default:0"`
	// AssetReceived is property or improvement value gained by the acting player
	AssetReceived int64 `gorm:"column:asset_received;not null;default:0"`
	// AssetPaid is property value given up by the acting player
	AssetPaid int64 `gorm:"column:asset_paid;not null;default:0"`
	// Details holds action specific context as JSON (rent tier, dice roll, tax kind)
	Details datatypes.JSON `gorm:"column:details;type:jsonb"`
	// CreatedAt is when the transaction was recorded
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`

	// Associations
	ActionType ActionType `gorm:"foreignKey:ActionTypeID"`
}

// TableName specifies the table name for the Transaction model
func (Transaction) TableName() string {
	return "transactions"
}
