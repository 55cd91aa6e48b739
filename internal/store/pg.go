package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/cedrichille/monopoly-companion-app/internal/domain"
	"github.com/cedrichille/monopoly-companion-app/internal/store/schema"
)

// propertyFieldCount is the number of columns written per property row
const propertyFieldCount = 20

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// It accesses the underlying *sql.DB and sets the pool configuration.
// If any of the pool settings are 0 or empty, reasonable defaults are used:
//   - MaxOpenConns: 10 (if 0)
//   - MaxIdleConns: 2 (if 0)
//   - ConnMaxLifetime: 30 minutes (if 0)
//   - ConnMaxIdleTime: 5 minutes (if 0)
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
// A companion app serves one game at a time, so the defaults are small.
//
// Notes:
//   - database/sql treats MaxOpenConns=0 as "unlimited"
//   - database/sql treats MaxIdleConns=0 as "no idle connections"
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns <= 0 {
		maxOpenConns = 10
	}
	if maxIdleConns <= 0 {
		maxIdleConns = 2
	}
	if connMaxLifetime <= 0 {
		connMaxLifetime = 30 * time.Minute
	}
	if connMaxIdleTime <= 0 {
		connMaxIdleTime = 5 * time.Minute
	}

	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// calculateSafeBatchSize computes the batch size for bulk inserts that stays under
// PostgreSQL's 65535 bind parameter limit, keeping some headroom for GORM-added columns.
func calculateSafeBatchSize(totalRecords int, fieldsPerRecord int) int {
	const maxParams = 65535
	const totalHeadroom = 1000

	availableParams := maxParams - totalHeadroom
	safeBatchSize := max(availableParams/fieldsPerRecord, 1)

	if safeBatchSize > totalRecords {
		return max(totalRecords, 1)
	}

	return safeBatchSize
}

// WithTx runs fn inside a database transaction
func (s *pgStore) WithTx(ctx context.Context, fn func(tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&pgStore{db: tx})
	})
}

// =============================================================================
// Reference data
// =============================================================================

// ReplaceReferenceData clears all per-game state and replaces the reference tables
func (s *pgStore) ReplaceReferenceData(ctx context.Context, input ReplaceReferenceDataInput) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. Per-game tables reference players and properties, so they go first
		if err := resetGame(tx); err != nil {
			return err
		}

		// 2. Clear reference tables, children before parents
		for _, table := range []string{"property", "players", "action_type", "game_version"} {
			if err := tx.Exec("DELETE FROM " + table).Error; err != nil {
				return fmt.Errorf("failed to clear %s: %w", table, err)
			}
		}

		// 3. Insert the new reference set
		if len(input.GameVersions) > 0 {
			if err := tx.Create(&input.GameVersions).Error; err != nil {
				return fmt.Errorf("failed to create game versions: %w", err)
			}
		}
		if len(input.ActionTypes) > 0 {
			if err := tx.Create(&input.ActionTypes).Error; err != nil {
				return fmt.Errorf("failed to create action types: %w", err)
			}
		}
		if len(input.Players) > 0 {
			if err := tx.Create(&input.Players).Error; err != nil {
				return fmt.Errorf("failed to create reserved players: %w", err)
			}
		}
		if len(input.Properties) > 0 {
			batchSize := calculateSafeBatchSize(len(input.Properties), propertyFieldCount)
			if err := tx.Omit(clause.Associations).CreateInBatches(&input.Properties, batchSize).Error; err != nil {
				return fmt.Errorf("failed to create properties: %w", err)
			}
		}

		return nil
	})
}

// ListGameVersions retrieves every game version ordered by id
func (s *pgStore) ListGameVersions(ctx context.Context) ([]schema.GameVersion, error) {
	var versions []schema.GameVersion
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&versions).Error; err != nil {
		return nil, fmt.Errorf("failed to list game versions: %w", err)
	}
	return versions, nil
}

// GetGameVersionByID retrieves a game version by id
func (s *pgStore) GetGameVersionByID(ctx context.Context, id int64) (*schema.GameVersion, error) {
	var version schema.GameVersion
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&version).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get game version: %w", err)
	}
	return &version, nil
}

// GetGameVersionByName retrieves a game version by its exact name
func (s *pgStore) GetGameVersionByName(ctx context.Context, name string) (*schema.GameVersion, error) {
	var version schema.GameVersion
	err := s.db.WithContext(ctx).Where("name = ?", name).First(&version).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get game version by name: %w", err)
	}
	return &version, nil
}

// GetActionTypeByCode retrieves an action type by code
func (s *pgStore) GetActionTypeByCode(ctx context.Context, code domain.ActionType) (*schema.ActionType, error) {
	var actionType schema.ActionType
	err := s.db.WithContext(ctx).Where("code = ?", code).First(&actionType).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get action type: %w", err)
	}
	return &actionType, nil
}

// ListPropertiesByGameVersion retrieves every property of a game version ordered by id
func (s *pgStore) ListPropertiesByGameVersion(ctx context.Context, gameVersionID int64) ([]schema.Property, error) {
	var properties []schema.Property
	err := s.db.WithContext(ctx).
		Where("game_version_id = ?", gameVersionID).
		Order("id ASC").
		Find(&properties).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}
	return properties, nil
}

// GetPropertyByID retrieves a property definition by id
func (s *pgStore) GetPropertyByID(ctx context.Context, id int64) (*schema.Property, error) {
	var property schema.Property
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&property).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get property: %w", err)
	}
	return &property, nil
}

// =============================================================================
// Players
// =============================================================================

// CreatePlayers inserts registered players
func (s *pgStore) CreatePlayers(ctx context.Context, players []schema.Player) error {
	if len(players) == 0 {
		return nil
	}
	if err := s.db.WithContext(ctx).Create(&players).Error; err != nil {
		return fmt.Errorf("failed to create players: %w", err)
	}
	return nil
}

// ListPlayers retrieves every player ordered by id
func (s *pgStore) ListPlayers(ctx context.Context) ([]schema.Player, error) {
	var players []schema.Player
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&players).Error; err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	return players, nil
}

// =============================================================================
// Ownership ledger
// =============================================================================

// ResetOwnership replaces the ledger with one Bank-owned row per property of the version
func (s *pgStore) ResetOwnership(ctx context.Context, gameVersionID int64) (int, error) {
	var created int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM property_ownership").Error; err != nil {
			return fmt.Errorf("failed to clear property ownership: %w", err)
		}

		result := tx.Exec(`
			INSERT INTO property_ownership (property_id, owner_id, mortgaged, houses, hotel, owned_in_group, max_in_group)
			SELECT id, ?, FALSE, 0, FALSE, 0, 0
			FROM property
			WHERE game_version_id = ?
			ORDER BY id
		`, domain.PLAYER_ID_BANK, gameVersionID)
		if result.Error != nil {
			return fmt.Errorf("failed to create property ownership: %w", result.Error)
		}
		created = result.RowsAffected

		return nil
	})
	if err != nil {
		return 0, err
	}

	return int(created), nil
}

// ComputeMaxGroupCounts stores the size of each property group on every ledger row
func (s *pgStore) ComputeMaxGroupCounts(ctx context.Context) error {
	err := s.db.WithContext(ctx).Exec(`
		UPDATE property_ownership AS po
		SET max_in_group = g.total
		FROM property AS p
		JOIN (
			SELECT game_version_id, property_group, COUNT(*) AS total
			FROM property
			GROUP BY game_version_id, property_group
		) AS g ON g.game_version_id = p.game_version_id AND g.property_group = p.property_group
		WHERE p.id = po.property_id
	`).Error
	if err != nil {
		return fmt.Errorf("failed to compute max group counts: %w", err)
	}
	return nil
}

// RecomputeGroupCounts sets owned_in_group to the live count of same-group properties held by each row's owner
func (s *pgStore) RecomputeGroupCounts(ctx context.Context) error {
	err := s.db.WithContext(ctx).Exec(`
		UPDATE property_ownership AS po
		SET owned_in_group = c.owned
		FROM property AS p
		JOIN (
			SELECT po2.owner_id, p2.game_version_id, p2.property_group, COUNT(*) AS owned
			FROM property_ownership AS po2
			JOIN property AS p2 ON p2.id = po2.property_id
			GROUP BY po2.owner_id, p2.game_version_id, p2.property_group
		) AS c ON c.game_version_id = p.game_version_id AND c.property_group = p.property_group
		WHERE p.id = po.property_id
		AND c.owner_id = po.owner_id
		AND po.owned_in_group IS DISTINCT FROM c.owned
	`).Error
	if err != nil {
		return fmt.Errorf("failed to recompute group counts: %w", err)
	}
	return nil
}

// GetOwnership retrieves a ledger row with its property definition
func (s *pgStore) GetOwnership(ctx context.Context, propertyID int64) (*schema.PropertyOwnership, error) {
	var ownership schema.PropertyOwnership
	err := s.db.WithContext(ctx).
		Joins("Property").
		Where("property_ownership.property_id = ?", propertyID).
		First(&ownership).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get property ownership: %w", err)
	}
	return &ownership, nil
}

// ListOwnership retrieves ledger rows with property definitions, optionally filtered
func (s *pgStore) ListOwnership(ctx context.Context, filter OwnershipFilter) ([]schema.PropertyOwnership, error) {
	query := s.db.WithContext(ctx).Joins("Property")

	if filter.OwnerID != nil {
		query = query.Where("property_ownership.owner_id = ?", *filter.OwnerID)
	}
	if filter.Group != nil {
		query = query.Where(`"Property".property_group = ?`, *filter.Group)
	}

	var rows []schema.PropertyOwnership
	if err := query.Order("property_ownership.property_id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list property ownership: %w", err)
	}
	return rows, nil
}

// TransferOwnership moves a property from one owner to another
func (s *pgStore) TransferOwnership(ctx context.Context, propertyID, fromOwnerID, toOwnerID int64) (bool, error) {
	result := s.db.WithContext(ctx).
		Model(&schema.PropertyOwnership{}).
		Where("property_id = ? AND owner_id = ?", propertyID, fromOwnerID).
		Update("owner_id", toOwnerID)
	if result.Error != nil {
		return false, fmt.Errorf("failed to transfer property ownership: %w", result.Error)
	}
	return result.RowsAffected == 1, nil
}

// UpdateOwnershipState sets the mortgage flag and improvements of a ledger row
func (s *pgStore) UpdateOwnershipState(ctx context.Context, input UpdateOwnershipStateInput) error {
	// A map is used so that false and 0 are written as well
	result := s.db.WithContext(ctx).
		Model(&schema.PropertyOwnership{}).
		Where("property_id = ?", input.PropertyID).
		Updates(map[string]interface{}{
			"mortgaged": input.Mortgaged,
			"houses":    input.Houses,
			"hotel":     input.Hotel,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update property ownership: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("property ownership", input.PropertyID)
	}
	return nil
}

// GetPropertyValuesByOwner aggregates property and improvement value per owner from the ledger
func (s *pgStore) GetPropertyValuesByOwner(ctx context.Context) ([]PropertyValues, error) {
	var rows []PropertyValues
	err := s.db.WithContext(ctx).Raw(`
		SELECT
			po.owner_id AS player_id,
			COALESCE(SUM(p.price), 0) AS gross_property_value,
			COALESCE(SUM(CASE WHEN po.mortgaged THEN p.mortgage_value ELSE 0 END), 0) AS mortgaged_property_value,
			COALESCE(SUM(CASE WHEN po.mortgaged THEN 0 ELSE p.price END), 0) AS unmortgaged_property_value,
			COALESCE(SUM(CASE WHEN po.hotel THEN ? * p.house_cost ELSE po.houses * p.house_cost END), 0) AS improvement_value
		FROM property_ownership AS po
		JOIN property AS p ON p.id = po.property_id
		GROUP BY po.owner_id
		ORDER BY po.owner_id ASC
	`, domain.HOTEL_HOUSE_EQUIVALENT).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get property values by owner: %w", err)
	}
	return rows, nil
}

// =============================================================================
// Net worth
// =============================================================================

// CreateNetWorths inserts the opening snapshot rows
func (s *pgStore) CreateNetWorths(ctx context.Context, rows []schema.NetWorth) error {
	if len(rows) == 0 {
		return nil
	}
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(&rows).Error; err != nil {
		return fmt.Errorf("failed to create net worth rows: %w", err)
	}
	return nil
}

// GetNetWorth retrieves the current snapshot of a player
func (s *pgStore) GetNetWorth(ctx context.Context, playerID int64) (*schema.NetWorth, error) {
	var row schema.NetWorth
	err := s.db.WithContext(ctx).Where("player_id = ?", playerID).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get net worth: %w", err)
	}
	return &row, nil
}

// ApplyNetWorthDelta adds a delta to a player's snapshot in a single statement
func (s *pgStore) ApplyNetWorthDelta(ctx context.Context, playerID int64, turn int, delta domain.Delta) (bool, error) {
	result := s.db.WithContext(ctx).
		Model(&schema.NetWorth{}).
		Where("player_id = ?", playerID).
		Updates(map[string]interface{}{
			"turn":                 turn,
			"cash_balance":         gorm.Expr("cash_balance + ?", delta.Cash),
			"net_property_value":   gorm.Expr("net_property_value + ?", delta.NetProperty),
			"improvement_value":    gorm.Expr("improvement_value + ?", delta.Improvement),
			"gross_property_value": gorm.Expr("gross_property_value + ?", delta.GrossProperty),
		})
	if result.Error != nil {
		return false, fmt.Errorf("failed to apply net worth delta: %w", result.Error)
	}
	return result.RowsAffected == 1, nil
}

// ListNetWorths retrieves every current snapshot ordered by player id
func (s *pgStore) ListNetWorths(ctx context.Context) ([]schema.NetWorth, error) {
	var rows []schema.NetWorth
	if err := s.db.WithContext(ctx).Order("player_id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list net worth: %w", err)
	}
	return rows, nil
}

// AppendNetWorthLog copies every current snapshot into the log for a turn
func (s *pgStore) AppendNetWorthLog(ctx context.Context, turn int) (int, error) {
	result := s.db.WithContext(ctx).Exec(`
		INSERT INTO net_worth_log (turn, player_id, cash_balance, net_property_value, improvement_value, gross_property_value, net_worth, created_at)
		SELECT ?, player_id, cash_balance, net_property_value, improvement_value, gross_property_value,
			cash_balance + improvement_value + net_property_value, now()
		FROM net_worth
		ORDER BY player_id
		ON CONFLICT (turn, player_id) DO NOTHING
	`, turn)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to append net worth log: %w", result.Error)
	}
	return int(result.RowsAffected), nil
}

// ListNetWorthLog retrieves logged snapshots ordered by turn then player id
func (s *pgStore) ListNetWorthLog(ctx context.Context, filter NetWorthLogFilter) ([]schema.NetWorthLog, error) {
	query := s.db.WithContext(ctx).Model(&schema.NetWorthLog{})

	if filter.PlayerID != nil {
		query = query.Where("player_id = ?", *filter.PlayerID)
	}
	if filter.Turn != nil {
		query = query.Where("turn = ?", *filter.Turn)
	}

	var rows []schema.NetWorthLog
	if err := query.Order("turn ASC, player_id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list net worth log: %w", err)
	}
	return rows, nil
}

// =============================================================================
// Transactions
// =============================================================================

// CreateTransaction appends a transaction row
func (s *pgStore) CreateTransaction(ctx context.Context, tx *schema.Transaction) error {
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(tx).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// ListTransactions retrieves transactions in id order with the total count matching the filter.
// A player filter matches the player on either side of the transaction.
func (s *pgStore) ListTransactions(ctx context.Context, filter TransactionFilter) ([]schema.Transaction, uint64, error) {
	query := s.db.WithContext(ctx).Model(&schema.Transaction{})

	if filter.PlayerID != nil {
		query = query.Where("player_id = ? OR counterparty_id = ?", *filter.PlayerID, *filter.PlayerID)
	}
	if filter.Turn != nil {
		query = query.Where("turn = ?", *filter.Turn)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	query = query.Preload("ActionType").Order("id ASC")
	if filter.Offset > 0 {
		query = query.Offset(int(filter.Offset)) //nolint:gosec,G115
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var transactions []schema.Transaction
	if err := query.Find(&transactions).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to query transactions: %w", err)
	}

	return transactions, uint64(total), nil //nolint:gosec,G115
}

// =============================================================================
// Game lifecycle & key-value
// =============================================================================

// ResetGame removes ledger, net worth, transactions, registered players and the persisted session
func (s *pgStore) ResetGame(ctx context.Context) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return resetGame(tx)
	})
}

func resetGame(tx *gorm.DB) error {
	statements := []struct {
		table string
		sql   string
	}{
		{"transactions", "DELETE FROM transactions"},
		{"net_worth_log", "DELETE FROM net_worth_log"},
		{"net_worth", "DELETE FROM net_worth"},
		{"property_ownership", "DELETE FROM property_ownership"},
		{"players", "DELETE FROM players WHERE turn_order IS NOT NULL"},
	}

	for _, stmt := range statements {
		if err := tx.Exec(stmt.sql).Error; err != nil {
			return fmt.Errorf("failed to clear %s: %w", stmt.table, err)
		}
	}

	// A session left behind would describe players and ledger rows that no longer exist
	if err := tx.Where("key = ?", SessionKey).Delete(&schema.KeyValueStore{}).Error; err != nil {
		return fmt.Errorf("failed to clear game session: %w", err)
	}

	return nil
}

// SetKeyValue stores a key-value pair
func (s *pgStore) SetKeyValue(ctx context.Context, key string, value string) error {
	kv := schema.KeyValueStore{
		Key:   key,
		Value: value,
	}

	if err := s.db.WithContext(ctx).Save(&kv).Error; err != nil {
		return fmt.Errorf("failed to set key-value: %w", err)
	}

	return nil
}

// GetKeyValue retrieves a value by key from the key-value store
func (s *pgStore) GetKeyValue(ctx context.Context, key string) (string, error) {
	var kv schema.KeyValueStore
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&kv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get key-value: %w", err)
	}

	return kv.Value, nil
}

// DeleteKeyValue removes a key from the key-value store
func (s *pgStore) DeleteKeyValue(ctx context.Context, key string) error {
	if err := s.db.WithContext(ctx).Where("key = ?", key).Delete(&schema.KeyValueStore{}).Error; err != nil {
		return fmt.Errorf("failed to delete key-value: %w", err)
	}
	return nil
}
