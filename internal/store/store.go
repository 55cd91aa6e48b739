package store

import (
	"context"

	"github.com/cedrichille/monopoly-companion-app/internal/domain"
	"github.com/cedrichille/monopoly-companion-app/internal/store/schema"
)

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// WithTx runs fn inside a single database transaction. The Store passed to fn is bound
	// to the transaction; fn returning an error rolls back every write made through it.
	WithTx(ctx context.Context, fn func(tx Store) error) error

	// =========================================================================
	// Reference data
	// =========================================================================

	// ReplaceReferenceData clears all per-game state and replaces the reference tables
	ReplaceReferenceData(ctx context.Context, input ReplaceReferenceDataInput) error
	// ListGameVersions retrieves every game version ordered by id
	ListGameVersions(ctx context.Context) ([]schema.GameVersion, error)
	// GetGameVersionByID retrieves a game version by id
	GetGameVersionByID(ctx context.Context, id int64) (*schema.GameVersion, error)
	// GetGameVersionByName retrieves a game version by its exact name
	GetGameVersionByName(ctx context.Context, name string) (*schema.GameVersion, error)
	// GetActionTypeByCode retrieves an action type by code
	GetActionTypeByCode(ctx context.Context, code domain.ActionType) (*schema.ActionType, error)
	// ListPropertiesByGameVersion retrieves every property of a game version ordered by id
	ListPropertiesByGameVersion(ctx context.Context, gameVersionID int64) ([]schema.Property, error)
	// GetPropertyByID retrieves a property definition by id
	GetPropertyByID(ctx context.Context, id int64) (*schema.Property, error)

	// =========================================================================
	// Players
	// =========================================================================

	// CreatePlayers inserts registered players
	CreatePlayers(ctx context.Context, players []schema.Player) error
	// ListPlayers retrieves every player, reserved ones included, ordered by id
	ListPlayers(ctx context.Context) ([]schema.Player, error)

	// =========================================================================
	// Ownership ledger
	// =========================================================================

	// ResetOwnership replaces the ledger with one Bank-owned row per property of the version
	// and returns the number of rows created
	ResetOwnership(ctx context.Context, gameVersionID int64) (int, error)
	// ComputeMaxGroupCounts stores the size of each property group on every ledger row
	ComputeMaxGroupCounts(ctx context.Context) error
	// RecomputeGroupCounts sets owned_in_group to the live count of same-group properties
	// held by each row's owner
	RecomputeGroupCounts(ctx context.Context) error
	// GetOwnership retrieves a ledger row with its property definition
	GetOwnership(ctx context.Context, propertyID int64) (*schema.PropertyOwnership, error)
	// ListOwnership retrieves ledger rows with property definitions, optionally filtered by owner
	ListOwnership(ctx context.Context, filter OwnershipFilter) ([]schema.PropertyOwnership, error)
	// TransferOwnership moves a property from one owner to another. It returns false when no
	// row matched the property and expected owner.
	TransferOwnership(ctx context.Context, propertyID, fromOwnerID, toOwnerID int64) (bool, error)
	// UpdateOwnershipState sets the mortgage flag and improvements of a ledger row
	UpdateOwnershipState(ctx context.Context, input UpdateOwnershipStateInput) error
	// GetPropertyValuesByOwner aggregates property and improvement value per owner from the ledger
	GetPropertyValuesByOwner(ctx context.Context) ([]PropertyValues, error)

	// =========================================================================
	// Net worth
	// =========================================================================

	// CreateNetWorths inserts the opening snapshot rows
	CreateNetWorths(ctx context.Context, rows []schema.NetWorth) error
	// GetNetWorth retrieves the current snapshot of a player
	GetNetWorth(ctx context.Context, playerID int64) (*schema.NetWorth, error)
	// ApplyNetWorthDelta adds a delta to a player's snapshot in a single statement.
	// It returns false when the player has no snapshot row.
	ApplyNetWorthDelta(ctx context.Context, playerID int64, turn int, delta domain.Delta) (bool, error)
	// ListNetWorths retrieves every current snapshot ordered by player id
	ListNetWorths(ctx context.Context) ([]schema.NetWorth, error)
	// AppendNetWorthLog copies every current snapshot into the log for a turn and returns the
	// number of rows written. Rows already logged for that turn are left untouched.
	AppendNetWorthLog(ctx context.Context, turn int) (int, error)
	// ListNetWorthLog retrieves logged snapshots ordered by turn then player id
	ListNetWorthLog(ctx context.Context, filter NetWorthLogFilter) ([]schema.NetWorthLog, error)

	// =========================================================================
	// Transactions
	// =========================================================================

	// CreateTransaction appends a transaction row
	CreateTransaction(ctx context.Context, tx *schema.Transaction) error
	// ListTransactions retrieves transactions in id order along with the total count matching the filter
	ListTransactions(ctx context.Context, filter TransactionFilter) ([]schema.Transaction, uint64, error)

	// =========================================================================
	// Game lifecycle & key-value
	// =========================================================================

	// ResetGame removes ledger, net worth, transactions, registered players and the
	// persisted session; reference data stays
	ResetGame(ctx context.Context) error
	// SetKeyValue stores a key-value pair
	SetKeyValue(ctx context.Context, key string, value string) error
	// GetKeyValue retrieves a value by key, returning an empty string when absent
	GetKeyValue(ctx context.Context, key string) (string, error)
	// DeleteKeyValue removes a key
	DeleteKeyValue(ctx context.Context, key string) error
}

// SessionKey is the key_value_store key holding the active game session.
// Clearing per-game state always clears it too.
const SessionKey = "game_session"

// ReplaceReferenceDataInput holds the complete reference data set
type ReplaceReferenceDataInput struct {
	ActionTypes  []schema.ActionType
	GameVersions []schema.GameVersion
	Players      []schema.Player
	Properties   []schema.Property
}

// OwnershipFilter narrows ListOwnership
type OwnershipFilter struct {
	OwnerID *int64
	Group   *string
}

// UpdateOwnershipStateInput holds the mutable non-owner fields of a ledger row
type UpdateOwnershipStateInput struct {
	PropertyID int64
	Mortgaged  bool
	Houses     int
	Hotel      bool
}

// PropertyValues is the ledger-derived property position of one owner
type PropertyValues struct {
	PlayerID                 int64 `gorm:"column:player_id"`
	GrossPropertyValue       int64 `gorm:"column:gross_property_value"`
	MortgagedPropertyValue   int64 `gorm:"column:mortgaged_property_value"`
	UnmortgagedPropertyValue int64 `gorm:"column:unmortgaged_property_value"`
	ImprovementValue         int64 `gorm:"column:improvement_value"`
}

// NetPropertyValue returns mortgaged plus unmortgaged value
func (v PropertyValues) NetPropertyValue() int64 {
	return v.MortgagedPropertyValue + v.UnmortgagedPropertyValue
}

// NetWorthLogFilter narrows ListNetWorthLog
type NetWorthLogFilter struct {
	PlayerID *int64
	Turn     *int
}

// TransactionFilter narrows ListTransactions
type TransactionFilter struct {
	PlayerID *int64
	Turn     *int
	// Limit of 0 returns every matching row
	Limit  int
	Offset uint64
}
