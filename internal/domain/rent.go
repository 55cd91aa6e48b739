package domain

import "fmt"

// RentTier identifies which rule produced a rent amount
type RentTier string

const (
	RentTierBankOwned RentTier = "bank_owned"
	RentTierMortgaged RentTier = "mortgaged"
	RentTierHotel     RentTier = "hotel"
	RentTierHouses    RentTier = "houses"
	RentTierMonopoly  RentTier = "monopoly"
	RentTierStation   RentTier = "station"
	RentTierUtility   RentTier = "utility"
	RentTierBasic     RentTier = "basic"
)

// RentInput is the ledger state rent depends on
type RentInput struct {
	Type         PropertyType
	Schedule     RentSchedule
	OwnerID      int64
	Mortgaged    bool
	Houses       int
	Hotel        bool
	OwnedInGroup int
	MaxInGroup   int
	// DiceRoll is only read for utilities
	DiceRoll int
}

// RentResult is the amount due and the tier that produced it
type RentResult struct {
	Amount int64    `json:"amount"`
	Tier   RentTier `json:"tier"`
}

// IsMonopoly reports whether an owner holds every property of a group
func IsMonopoly(ownedInGroup, maxInGroup int) bool {
	return maxInGroup > 0 && ownedInGroup == maxInGroup
}

// ComputeRent evaluates the rent rules in priority order; the first match wins
func ComputeRent(in RentInput) (RentResult, error) {
	if in.Houses < 0 || in.Houses > MAX_HOUSES {
		return RentResult{}, NewInvalidStateError("house count %d out of range", in.Houses)
	}
	if in.Hotel && in.Houses > 0 {
		return RentResult{}, NewInvalidStateError("property has both a hotel and %d houses", in.Houses)
	}

	switch {
	case in.OwnerID == PLAYER_ID_BANK:
		return RentResult{Amount: 0, Tier: RentTierBankOwned}, nil
	case in.Mortgaged:
		return RentResult{Amount: 0, Tier: RentTierMortgaged}, nil
	case in.Hotel:
		return RentResult{Amount: in.Schedule.Hotel, Tier: RentTierHotel}, nil
	case in.Houses > 0:
		return RentResult{Amount: in.Schedule.HouseRent(in.Houses), Tier: RentTierHouses}, nil
	case in.Type == PropertyTypeStreet && IsMonopoly(in.OwnedInGroup, in.MaxInGroup):
		return RentResult{Amount: in.Schedule.Monopoly, Tier: RentTierMonopoly}, nil
	case in.Type == PropertyTypeStation && in.OwnedInGroup >= 2:
		return RentResult{Amount: in.Schedule.StationRent(in.OwnedInGroup), Tier: RentTierStation}, nil
	case in.Type == PropertyTypeUtility:
		if in.DiceRoll < MIN_DICE_ROLL || in.DiceRoll > MAX_DICE_ROLL {
			return RentResult{}, NewValidationError("dice_roll",
				fmt.Sprintf("Dice roll must be between %d and %d", MIN_DICE_ROLL, MAX_DICE_ROLL))
		}
		multiplier := in.Schedule.UtilityMultiplier(in.OwnedInGroup)
		return RentResult{Amount: int64(in.DiceRoll) * multiplier, Tier: RentTierUtility}, nil
	default:
		return RentResult{Amount: in.Schedule.Basic, Tier: RentTierBasic}, nil
	}
}
