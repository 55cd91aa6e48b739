package schema

import "time"

// NetWorth represents the net_worth table - the current financial position of every player.
// Net worth is not stored here; it is derived as cash + improvement + net property value.
type NetWorth struct {
	// PlayerID is the primary key and references the player
	PlayerID int64 `gorm:"column:player_id;primaryKey"`
	// Turn is the turn the row was last updated in
	Turn int `gorm:"column:turn;not null;default:1"`
	// CashBalance is the cash the player holds; may be negative after mandatory payments
	CashBalance int64 `gorm:"column:cash_balance;not null;default:0"`
	// NetPropertyValue is the mortgage value of mortgaged properties plus the price of unmortgaged ones
	NetPropertyValue int64 `gorm:"column:net_property_value;not null;default:0"`
	// ImprovementValue is the build cost of all houses and hotels
	ImprovementValue int64 `gorm:"column:improvement_value;not null;default:0"`
	// GrossPropertyValue is the face price of every owned property
	GrossPropertyValue int64 `gorm:"column:gross_property_value;not null;default:0"`
	// UpdatedAt is when the row last changed
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz;autoUpdateTime"`

	// Associations
	Player Player `gorm:"foreignKey:PlayerID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the NetWorth model
func (NetWorth) TableName() string {
	return "net_worth"
}

// NetWorthLog represents the net_worth_log table - immutable end-of-turn copies of net_worth
type NetWorthLog struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Turn is the completed turn this row records
	Turn int `gorm:"column:turn;not null;uniqueIndex:idx_net_worth_log_turn_player,priority:1"`
	// PlayerID references the player
	PlayerID int64 `gorm:"column:player_id;not null;uniqueIndex:idx_net_worth_log_turn_player,priority:2"`
	// CashBalance at the end of the turn
	CashBalance int64 `gorm:"column:cash_balance;not null"`
	// NetPropertyValue at the end of the turn
	NetPropertyValue int64 `gorm:"column:net_property_value;not null"`
	// ImprovementValue at the end of the turn
	ImprovementValue int64 `gorm:"column:improvement_value;not null"`
	// GrossPropertyValue at the end of the turn
	GrossPropertyValue int64 `gorm:"column:gross_property_value;not null"`
	// NetWorth is frozen at write time; log rows are never updated
	NetWorth int64 `gorm:"column:net_worth;not null"`
	// CreatedAt is when the turn was logged
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the NetWorthLog model
func (NetWorthLog) TableName() string {
	return "net_worth_log"
}
