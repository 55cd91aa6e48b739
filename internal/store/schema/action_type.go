package schema

import "github.com/cedrichille/monopoly-companion-app/internal/domain"

// ActionType represents the action_type table - the catalog of actions a transaction can be tagged with
type ActionType struct {
	// ID is the primary key, taken from the fixture file
	ID int64 `gorm:"column:id;primaryKey"`
	// Code is the stable identifier used by the action handlers
	Code domain.ActionType `gorm:"column:code;not null;uniqueIndex;type:text"`
	// Name is the display name (e.g., "pass/land on Go")
	Name string `gorm:"column:name;not null;type:text"`
}

// TableName specifies the table name for the ActionType model
func (ActionType) TableName() string {
	return "action_type"
}
