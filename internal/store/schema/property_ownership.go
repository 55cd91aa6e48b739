package schema

// PropertyOwnership represents the property_ownership table - the live ownership ledger, one row per property
type PropertyOwnership struct {
	// PropertyID is the primary key and references the property definition
	PropertyID int64 `gorm:"column:property_id;primaryKey"`
	// OwnerID is the owning player (Bank until purchased)
	OwnerID int64 `gorm:"column:owner_id;not null;index"`
	// Mortgaged indicates the property has been mortgaged to the Bank
	Mortgaged bool `gorm:"column:mortgaged;not null;default:false"`
	// Houses is the number of houses built (0-4); reset to 0 when a hotel is built
	Houses int `gorm:"column:houses;not null;default:0"`
	// Hotel indicates a hotel has been built
	Hotel bool `gorm:"column:hotel;not null;default:false"`
	// OwnedInGroup is how many properties of this group the current owner holds
	OwnedInGroup int `gorm:"column:owned_in_group;not null;default:0"`
	// MaxInGroup is the total number of properties in this group
	MaxInGroup int `gorm:"column:max_in_group;not null;default:0"`

	// Associations
	Property Property `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE"`
	Owner    Player   `gorm:"foreignKey:OwnerID"`
}

// TableName specifies the table name for the PropertyOwnership model
func (PropertyOwnership) TableName() string {
	return "property_ownership"
}
