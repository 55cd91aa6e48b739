package schema

// GameVersion represents the game_version table - one row per supported edition of the board game
type GameVersion struct {
	// ID is the primary key, taken from the fixture file
	ID int64 `gorm:"column:id;primaryKey"`
	// Name is the edition name players pick at setup (e.g., "Classic (US)")
	Name string `gorm:"column:name;not null;uniqueIndex;type:text"`
	// TotalCash is all cash in the box; whatever is not handed to players stays with the Bank
	TotalCash int64 `gorm:"column:total_cash;not null"`
	// StartingCash is handed to every registered player
	StartingCash int64 `gorm:"column:starting_cash;not null"`
	// GoValue is paid by the Bank for passing or landing on Go
	GoValue int64 `gorm:"column:go_value;not null"`
	// IncomeTax is the amount due on the income tax square
	IncomeTax int64 `gorm:"column:income_tax;not null;default:0"`
	// LuxuryTax is the amount due on the luxury tax square
	LuxuryTax int64 `gorm:"column:luxury_tax;not null;default:0"`
}

// TableName specifies the table name for the GameVersion model
func (GameVersion) TableName() string {
	return "game_version"
}
