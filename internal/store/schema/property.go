package schema

import "github.com/cedrichille/monopoly-companion-app/internal/domain"

// Property represents the property table - immutable property definitions for a game version
type Property struct {
	// ID is the primary key, taken from the fixture file
	ID int64 `gorm:"column:id;primaryKey"`
	// GameVersionID references the edition this property belongs to
	GameVersionID int64 `gorm:"column:game_version_id;not null;index"`
	// Name is the printed property name
	Name string `gorm:"column:name;not null;type:text"`
	// Group is the colour band for streets, or the shared station/utility group
	Group string `gorm:"column:property_group;not null;type:text"`
	// Type decides which rent rules apply (street, station, utility)
	Type domain.PropertyType `gorm:"column:property_type;not null;type:text"`
	// Price is the face value paid to the Bank on purchase
	Price int64 `gorm:"column:price;not null"`
	// MortgageValue is paid out by the Bank when the property is mortgaged
	MortgageValue int64 `gorm:"column:mortgage_value;not null"`
	// HouseCost is the price of one house; a hotel costs one more house on top of four
	HouseCost int64 `gorm:"column:house_cost;not null;default:0"`
	// Rent is the full rent schedule, stored in rent_* columns
	Rent domain.RentSchedule `gorm:"embedded;embeddedPrefix:rent_"`

	// Associations
	GameVersion GameVersion `gorm:"foreignKey:GameVersionID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Property model
func (Property) TableName() string {
	return "property"
}
