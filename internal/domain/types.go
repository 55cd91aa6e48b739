package domain

// PropertyType classifies a property for rent purposes
type PropertyType string

const (
	PropertyTypeStreet  PropertyType = "street"
	PropertyTypeStation PropertyType = "station"
	PropertyTypeUtility PropertyType = "utility"
)

// IsValidPropertyType checks if a property type is valid
func IsValidPropertyType(t PropertyType) bool {
	return t == PropertyTypeStreet ||
		t == PropertyTypeStation ||
		t == PropertyTypeUtility
}

// ActionType is the code of a ledger action as stored in the action_type table
type ActionType string

const (
	ActionTypePurchaseProperty ActionType = "purchase_property"
	ActionTypeTradeProperty    ActionType = "trade_property"
	ActionTypeRent             ActionType = "rent"
	ActionTypeGo               ActionType = "go"
	ActionTypeBuild            ActionType = "build"
	ActionTypeMortgage         ActionType = "mortgage"
	ActionTypeUnmortgage       ActionType = "unmortgage"
	ActionTypeSpecialField     ActionType = "special_field"
	ActionTypeTax              ActionType = "tax"
	ActionTypeJail             ActionType = "jail"
)

// AllActionTypes lists every action code the handlers record
var AllActionTypes = []ActionType{
	ActionTypePurchaseProperty,
	ActionTypeTradeProperty,
	ActionTypeRent,
	ActionTypeGo,
	ActionTypeBuild,
	ActionTypeMortgage,
	ActionTypeUnmortgage,
	ActionTypeSpecialField,
	ActionTypeTax,
	ActionTypeJail,
}

// TaxKind selects which tax square the player landed on
type TaxKind string

const (
	TaxKindIncome TaxKind = "income"
	TaxKindLuxury TaxKind = "luxury"
)

// IsValidTaxKind checks if a tax kind is valid
func IsValidTaxKind(k TaxKind) bool {
	return k == TaxKindIncome || k == TaxKindLuxury
}

// SpecialFieldKind selects which special square the player landed on
type SpecialFieldKind string

const (
	SpecialFieldChance         SpecialFieldKind = "chance"
	SpecialFieldCommunityChest SpecialFieldKind = "community_chest"
	SpecialFieldFreeParking    SpecialFieldKind = "free_parking"
)

// IsValidSpecialFieldKind checks if a special field kind is valid
func IsValidSpecialFieldKind(k SpecialFieldKind) bool {
	return k == SpecialFieldChance ||
		k == SpecialFieldCommunityChest ||
		k == SpecialFieldFreeParking
}

// RentSchedule holds every rent figure of a property definition.
// Streets use Basic, Monopoly, House1-4 and Hotel. Stations use Basic for a
// single owned station and the Two/Three/FourOwned tiers. Utilities use the
// dice multipliers.
type RentSchedule struct {
	Basic         int64 `json:"basic"`
	Monopoly      int64 `json:"monopoly"`
	House1        int64 `json:"house1"`
	House2        int64 `json:"house2"`
	House3        int64 `json:"house3"`
	House4        int64 `json:"house4"`
	Hotel         int64 `json:"hotel"`
	TwoOwned      int64 `json:"two_owned"`
	ThreeOwned    int64 `json:"three_owned"`
	FourOwned     int64 `json:"four_owned"`
	MultiplierOne int64 `json:"multiplier_one"`
	MultiplierTwo int64 `json:"multiplier_two"`
}

// HouseRent returns the rent for a street with 1-4 houses, or 0 otherwise
func (r RentSchedule) HouseRent(houses int) int64 {
	switch houses {
	case 1:
		return r.House1
	case 2:
		return r.House2
	case 3:
		return r.House3
	case 4:
		return r.House4
	default:
		return 0
	}
}

// StationRent returns the station tier for the number of stations held by the owner
func (r RentSchedule) StationRent(owned int) int64 {
	switch {
	case owned >= 4:
		return r.FourOwned
	case owned == 3:
		return r.ThreeOwned
	case owned == 2:
		return r.TwoOwned
	default:
		return r.Basic
	}
}

// UtilityMultiplier returns the dice multiplier for the number of utilities held by the owner
func (r RentSchedule) UtilityMultiplier(owned int) int64 {
	if owned >= 2 {
		return r.MultiplierTwo
	}
	return r.MultiplierOne
}

// Snapshot is a player's current financial position.
// Net worth is never stored on it; it is derived by NetWorth.
type Snapshot struct {
	PlayerID           int64 `json:"player_id"`
	Turn               int   `json:"turn"`
	CashBalance        int64 `json:"cash_balance"`
	NetPropertyValue   int64 `json:"net_property_value"`
	ImprovementValue   int64 `json:"improvement_value"`
	GrossPropertyValue int64 `json:"gross_property_value"`
}

// NetWorth returns cash + improvement value + net property value
func (s Snapshot) NetWorth() int64 {
	return s.CashBalance + s.ImprovementValue + s.NetPropertyValue
}

// Apply returns the snapshot with the delta added
func (s Snapshot) Apply(d Delta) Snapshot {
	s.CashBalance += d.Cash
	s.NetPropertyValue += d.NetProperty
	s.ImprovementValue += d.Improvement
	s.GrossPropertyValue += d.GrossProperty
	return s
}

// Delta is a change to one player's snapshot produced by an action
type Delta struct {
	Cash          int64 `json:"cash"`
	NetProperty   int64 `json:"net_property"`
	Improvement   int64 `json:"improvement"`
	GrossProperty int64 `json:"gross_property"`
}

// Inverse returns the delta with every component negated
func (d Delta) Inverse() Delta {
	return Delta{
		Cash:          -d.Cash,
		NetProperty:   -d.NetProperty,
		Improvement:   -d.Improvement,
		GrossProperty: -d.GrossProperty,
	}
}

// IsZero reports whether applying the delta is a no-op
func (d Delta) IsZero() bool {
	return d == Delta{}
}

// ImprovementValue returns the build cost sunk into a street: one house cost
// per house, or HOTEL_HOUSE_EQUIVALENT house costs for a hotel
func ImprovementValue(houses int, hotel bool, houseCost int64) int64 {
	if hotel {
		return HOTEL_HOUSE_EQUIVALENT * houseCost
	}
	return int64(houses) * houseCost
}

// UnmortgageCost returns the mortgage value plus interest, rounded up
func UnmortgageCost(mortgageValue int64) int64 {
	interest := (mortgageValue*UNMORTGAGE_INTEREST_PERCENT + 99) / 100
	return mortgageValue + interest
}

// StartingCash returns the Bank's opening cash for a game with the given number of players
func StartingCash(totalCash, perPlayer int64, players int) int64 {
	return totalCash - perPlayer*int64(players)
}
