package domain

const (
	// Reserved pseudo-players, always present in the players table
	PLAYER_ID_BANK         int64 = 1
	PLAYER_ID_FREE_PARKING int64 = 2

	// FIRST_PLAYER_ID is the id given to the player with turn order 1
	FIRST_PLAYER_ID int64 = 3

	// Build ladder
	MAX_HOUSES             = 4
	HOTEL_HOUSE_EQUIVALENT = 5

	// UNMORTGAGE_INTEREST_PERCENT is charged on top of the mortgage value when lifting a mortgage
	UNMORTGAGE_INTEREST_PERCENT = 10

	// Two six-sided dice
	MIN_DICE_ROLL = 2
	MAX_DICE_ROLL = 12
)

// IsReservedPlayer reports whether the id belongs to Bank or Free Parking
func IsReservedPlayer(playerID int64) bool {
	return playerID == PLAYER_ID_BANK || playerID == PLAYER_ID_FREE_PARKING
}

// PlayerIDForOrder returns the player id assigned at registration to a turn order
func PlayerIDForOrder(order int) int64 {
	return FIRST_PLAYER_ID + int64(order) - 1
}
