package schema

import "time"

// Player represents the players table.
// Bank (id 1) and Free Parking (id 2) are loaded from fixtures and have no turn order;
// registered players start at id 3.
type Player struct {
	// ID is the primary key
	ID int64 `gorm:"column:id;primaryKey"`
	// Name is the display name entered at registration
	Name string `gorm:"column:name;not null;type:text"`
	// TurnOrder is the 1-based position in the turn cycle (nil for reserved players)
	TurnOrder *int `gorm:"column:turn_order;uniqueIndex"`
	// CreatedAt is when the player was registered
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Player model
func (Player) TableName() string {
	return "players"
}
