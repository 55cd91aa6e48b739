package constants

const (
	MAX_PAGE_SIZE               = 100
	MAX_PLAYER_NAMES            = 8
	MAX_PLAYER_NAME_LENGTH      = 32
	DEFAULT_TRANSACTIONS_LIMIT  = 50
	DEFAULT_PROPERTY_SEARCH_MAX = 10
)
