package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/cedrichille/monopoly-companion-app/internal/domain"
	"github.com/cedrichille/monopoly-companion-app/internal/store/schema"
)

// =============================================================================
// Test Data Builders
// =============================================================================

const testGameVersionID int64 = 1

func intPtr(i int) *int {
	return &i
}

func int64Ptr(i int64) *int64 {
	return &i
}

func stringPtr(s string) *string {
	return &s
}

// buildTestReferenceData returns a small edition: two dark blue streets, two stations and one utility
func buildTestReferenceData() ReplaceReferenceDataInput {
	actionTypes := make([]schema.ActionType, 0, len(domain.AllActionTypes))
	for i, code := range domain.AllActionTypes {
		actionTypes = append(actionTypes, schema.ActionType{ID: int64(i + 1), Code: code, Name: string(code)})
	}

	return ReplaceReferenceDataInput{
		ActionTypes: actionTypes,
		GameVersions: []schema.GameVersion{
			{ID: testGameVersionID, Name: "Test Edition", TotalCash: 15140, StartingCash: 1500, GoValue: 200, IncomeTax: 200, LuxuryTax: 100},
		},
		Players: []schema.Player{
			{ID: domain.PLAYER_ID_BANK, Name: "Bank"},
			{ID: domain.PLAYER_ID_FREE_PARKING, Name: "Free Parking"},
		},
		Properties: []schema.Property{
			{
				ID: 1, GameVersionID: testGameVersionID, Name: "Park Place", Group: "dark_blue", Type: domain.PropertyTypeStreet,
				Price: 350, MortgageValue: 175, HouseCost: 200,
				Rent: domain.RentSchedule{Basic: 35, Monopoly: 70, House1: 175, House2: 500, House3: 1100, House4: 1300, Hotel: 1500},
			},
			{
				ID: 2, GameVersionID: testGameVersionID, Name: "Boardwalk", Group: "dark_blue", Type: domain.PropertyTypeStreet,
				Price: 400, MortgageValue: 200, HouseCost: 200,
				Rent: domain.RentSchedule{Basic: 50, Monopoly: 100, House1: 200, House2: 600, House3: 1400, House4: 1700, Hotel: 2000},
			},
			{
				ID: 3, GameVersionID: testGameVersionID, Name: "Reading Railroad", Group: "station", Type: domain.PropertyTypeStation,
				Price: 200, MortgageValue: 100,
				Rent: domain.RentSchedule{Basic: 25, TwoOwned: 50, ThreeOwned: 100, FourOwned: 200},
			},
			{
				ID: 4, GameVersionID: testGameVersionID, Name: "B. & O. Railroad", Group: "station", Type: domain.PropertyTypeStation,
				Price: 200, MortgageValue: 100,
				Rent: domain.RentSchedule{Basic: 25, TwoOwned: 50, ThreeOwned: 100, FourOwned: 200},
			},
			{
				ID: 5, GameVersionID: testGameVersionID, Name: "Electric Company", Group: "utility", Type: domain.PropertyTypeUtility,
				Price: 150, MortgageValue: 75,
				Rent: domain.RentSchedule{MultiplierOne: 4, MultiplierTwo: 10},
			},
		},
	}
}

// buildTestPlayers returns registered players with ids 3.. and turn order 1..
func buildTestPlayers(names ...string) []schema.Player {
	players := make([]schema.Player, 0, len(names))
	for i, name := range names {
		players = append(players, schema.Player{
			ID:        domain.PlayerIDForOrder(i + 1),
			Name:      name,
			TurnOrder: intPtr(i + 1),
		})
	}
	return players
}

// seedGame loads the reference data, registers two players and resets the ledger
func seedGame(t *testing.T, store Store) {
	ctx := context.Background()

	require.NoError(t, store.ReplaceReferenceData(ctx, buildTestReferenceData()))
	require.NoError(t, store.CreatePlayers(ctx, buildTestPlayers("Alice", "Bob")))

	created, err := store.ResetOwnership(ctx, testGameVersionID)
	require.NoError(t, err)
	require.Equal(t, 5, created)
	require.NoError(t, store.ComputeMaxGroupCounts(ctx))
	require.NoError(t, store.RecomputeGroupCounts(ctx))
}

// seedNetWorths creates opening snapshots for Bank, Free Parking and two players
func seedNetWorths(t *testing.T, store Store) {
	require.NoError(t, store.CreateNetWorths(context.Background(), []schema.NetWorth{
		{PlayerID: domain.PLAYER_ID_BANK, Turn: 1, CashBalance: 12140, NetPropertyValue: 1300, GrossPropertyValue: 1300},
		{PlayerID: domain.PLAYER_ID_FREE_PARKING, Turn: 1},
		{PlayerID: 3, Turn: 1, CashBalance: 1500},
		{PlayerID: 4, Turn: 1, CashBalance: 1500},
	}))
}

// =============================================================================
// Test: Reference data
// =============================================================================

func testReferenceData(t *testing.T, store Store) {
	ctx := context.Background()
	require.NoError(t, store.ReplaceReferenceData(ctx, buildTestReferenceData()))

	t.Run("game versions are listed and found by id or name", func(t *testing.T) {
		versions, err := store.ListGameVersions(ctx)
		require.NoError(t, err)
		require.Len(t, versions, 1)
		assert.Equal(t, "Test Edition", versions[0].Name)

		byID, err := store.GetGameVersionByID(ctx, testGameVersionID)
		require.NoError(t, err)
		require.NotNil(t, byID)
		assert.Equal(t, int64(200), byID.GoValue)

		byName, err := store.GetGameVersionByName(ctx, "Test Edition")
		require.NoError(t, err)
		require.NotNil(t, byName)
		assert.Equal(t, int64(15140), byName.TotalCash)
	})

	t.Run("missing game version returns nil", func(t *testing.T) {
		version, err := store.GetGameVersionByName(ctx, "Mega Edition")
		require.NoError(t, err)
		assert.Nil(t, version)

		version, err = store.GetGameVersionByID(ctx, 99)
		require.NoError(t, err)
		assert.Nil(t, version)
	})

	t.Run("action types are found by code", func(t *testing.T) {
		actionType, err := store.GetActionTypeByCode(ctx, domain.ActionTypeRent)
		require.NoError(t, err)
		require.NotNil(t, actionType)
		assert.Equal(t, domain.ActionTypeRent, actionType.Code)

		missing, err := store.GetActionTypeByCode(ctx, domain.ActionType("auction"))
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("properties keep their rent schedule", func(t *testing.T) {
		properties, err := store.ListPropertiesByGameVersion(ctx, testGameVersionID)
		require.NoError(t, err)
		require.Len(t, properties, 5)
		assert.Equal(t, "Park Place", properties[0].Name)

		boardwalk, err := store.GetPropertyByID(ctx, 2)
		require.NoError(t, err)
		require.NotNil(t, boardwalk)
		assert.Equal(t, "dark_blue", boardwalk.Group)
		assert.Equal(t, int64(2000), boardwalk.Rent.Hotel)
		assert.Equal(t, int64(1700), boardwalk.Rent.House4)

		utility, err := store.GetPropertyByID(ctx, 5)
		require.NoError(t, err)
		assert.Equal(t, int64(10), utility.Rent.MultiplierTwo)

		missing, err := store.GetPropertyByID(ctx, 42)
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("replacing reference data clears game state", func(t *testing.T) {
		require.NoError(t, store.CreatePlayers(ctx, buildTestPlayers("Alice")))
		_, err := store.ResetOwnership(ctx, testGameVersionID)
		require.NoError(t, err)
		require.NoError(t, store.SetKeyValue(ctx, "unrelated", "kept"))

		require.NoError(t, store.ReplaceReferenceData(ctx, buildTestReferenceData()))

		players, err := store.ListPlayers(ctx)
		require.NoError(t, err)
		assert.Len(t, players, 2)

		rows, err := store.ListOwnership(ctx, OwnershipFilter{})
		require.NoError(t, err)
		assert.Empty(t, rows)

		kept, err := store.GetKeyValue(ctx, "unrelated")
		require.NoError(t, err)
		assert.Equal(t, "kept", kept)
	})

	t.Run("replacing reference data clears the persisted session", func(t *testing.T) {
		require.NoError(t, store.SetKeyValue(ctx, SessionKey, `{"id":"s1","started":true}`))

		require.NoError(t, store.ReplaceReferenceData(ctx, buildTestReferenceData()))

		session, err := store.GetKeyValue(ctx, SessionKey)
		require.NoError(t, err)
		assert.Empty(t, session)
	})
}

// =============================================================================
// Test: Players
// =============================================================================

func testPlayers(t *testing.T, store Store) {
	ctx := context.Background()
	require.NoError(t, store.ReplaceReferenceData(ctx, buildTestReferenceData()))

	t.Run("registered players follow the reserved ones", func(t *testing.T) {
		require.NoError(t, store.CreatePlayers(ctx, buildTestPlayers("Alice", "Bob", "Carol")))

		players, err := store.ListPlayers(ctx)
		require.NoError(t, err)
		require.Len(t, players, 5)
		assert.Equal(t, "Bank", players[0].Name)
		assert.Nil(t, players[0].TurnOrder)
		assert.Equal(t, int64(5), players[4].ID)
		require.NotNil(t, players[4].TurnOrder)
		assert.Equal(t, 3, *players[4].TurnOrder)
	})

	t.Run("empty slice is a no-op", func(t *testing.T) {
		require.NoError(t, store.CreatePlayers(ctx, nil))
	})
}

// =============================================================================
// Test: Ownership ledger
// =============================================================================

func testOwnership(t *testing.T, store Store) {
	ctx := context.Background()
	seedGame(t, store)

	t.Run("reset gives every property to the Bank with group sizes", func(t *testing.T) {
		rows, err := store.ListOwnership(ctx, OwnershipFilter{})
		require.NoError(t, err)
		require.Len(t, rows, 5)

		for _, row := range rows {
			assert.Equal(t, domain.PLAYER_ID_BANK, row.OwnerID)
			assert.False(t, row.Mortgaged)
			assert.Equal(t, 0, row.Houses)
			assert.Equal(t, row.MaxInGroup, row.OwnedInGroup)
		}
		assert.Equal(t, "Park Place", rows[0].Property.Name)
		assert.Equal(t, 2, rows[0].MaxInGroup)
		assert.Equal(t, 1, rows[4].MaxInGroup)
	})

	t.Run("transfer requires the expected owner", func(t *testing.T) {
		moved, err := store.TransferOwnership(ctx, 2, domain.PLAYER_ID_BANK, 3)
		require.NoError(t, err)
		assert.True(t, moved)

		moved, err = store.TransferOwnership(ctx, 2, domain.PLAYER_ID_BANK, 4)
		require.NoError(t, err)
		assert.False(t, moved)

		moved, err = store.TransferOwnership(ctx, 99, domain.PLAYER_ID_BANK, 4)
		require.NoError(t, err)
		assert.False(t, moved)
	})

	t.Run("group counts follow ownership", func(t *testing.T) {
		require.NoError(t, store.RecomputeGroupCounts(ctx))

		boardwalk, err := store.GetOwnership(ctx, 2)
		require.NoError(t, err)
		require.NotNil(t, boardwalk)
		assert.Equal(t, int64(3), boardwalk.OwnerID)
		assert.Equal(t, 1, boardwalk.OwnedInGroup)
		assert.Equal(t, 2, boardwalk.MaxInGroup)

		parkPlace, err := store.GetOwnership(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 1, parkPlace.OwnedInGroup)

		_, err = store.TransferOwnership(ctx, 1, domain.PLAYER_ID_BANK, 3)
		require.NoError(t, err)
		require.NoError(t, store.RecomputeGroupCounts(ctx))

		boardwalk, err = store.GetOwnership(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, 2, boardwalk.OwnedInGroup)
	})

	t.Run("recomputing group counts twice changes nothing", func(t *testing.T) {
		require.NoError(t, store.RecomputeGroupCounts(ctx))
		before, err := store.ListOwnership(ctx, OwnershipFilter{})
		require.NoError(t, err)
		require.Len(t, before, 5)

		require.NoError(t, store.RecomputeGroupCounts(ctx))
		after, err := store.ListOwnership(ctx, OwnershipFilter{})
		require.NoError(t, err)
		require.Len(t, after, len(before))

		for i := range before {
			assert.Equal(t, before[i].PropertyID, after[i].PropertyID)
			assert.Equal(t, before[i].OwnerID, after[i].OwnerID)
			assert.Equal(t, before[i].OwnedInGroup, after[i].OwnedInGroup, "property %d", before[i].PropertyID)
			assert.Equal(t, before[i].MaxInGroup, after[i].MaxInGroup, "property %d", before[i].PropertyID)
		}
	})

	t.Run("list filters by owner and group", func(t *testing.T) {
		owned, err := store.ListOwnership(ctx, OwnershipFilter{OwnerID: int64Ptr(3)})
		require.NoError(t, err)
		require.Len(t, owned, 2)
		assert.Equal(t, int64(1), owned[0].PropertyID)

		stations, err := store.ListOwnership(ctx, OwnershipFilter{Group: stringPtr("station")})
		require.NoError(t, err)
		require.Len(t, stations, 2)
		assert.Equal(t, domain.PropertyTypeStation, stations[0].Property.Type)

		none, err := store.ListOwnership(ctx, OwnershipFilter{OwnerID: int64Ptr(3), Group: stringPtr("station")})
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("state update writes false and zero values", func(t *testing.T) {
		require.NoError(t, store.UpdateOwnershipState(ctx, UpdateOwnershipStateInput{PropertyID: 2, Houses: 3}))
		require.NoError(t, store.UpdateOwnershipState(ctx, UpdateOwnershipStateInput{PropertyID: 1, Mortgaged: true}))

		row, err := store.GetOwnership(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, 3, row.Houses)

		require.NoError(t, store.UpdateOwnershipState(ctx, UpdateOwnershipStateInput{PropertyID: 2, Hotel: true}))
		row, err = store.GetOwnership(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, 0, row.Houses)
		assert.True(t, row.Hotel)
	})

	t.Run("state update of unknown property is not found", func(t *testing.T) {
		err := store.UpdateOwnershipState(ctx, UpdateOwnershipStateInput{PropertyID: 99})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})

	t.Run("property values are aggregated per owner", func(t *testing.T) {
		values, err := store.GetPropertyValuesByOwner(ctx)
		require.NoError(t, err)

		byOwner := make(map[int64]PropertyValues)
		for _, v := range values {
			byOwner[v.PlayerID] = v
		}

		// Player 3: Park Place mortgaged (175) and Boardwalk with a hotel (400 + 5 x 200)
		alice := byOwner[3]
		assert.Equal(t, int64(750), alice.GrossPropertyValue)
		assert.Equal(t, int64(175), alice.MortgagedPropertyValue)
		assert.Equal(t, int64(400), alice.UnmortgagedPropertyValue)
		assert.Equal(t, int64(575), alice.NetPropertyValue())
		assert.Equal(t, int64(1000), alice.ImprovementValue)

		bank := byOwner[domain.PLAYER_ID_BANK]
		assert.Equal(t, int64(550), bank.GrossPropertyValue)
		assert.Equal(t, int64(550), bank.NetPropertyValue())
		assert.Equal(t, int64(0), bank.ImprovementValue)
	})
}

// =============================================================================
// Test: Net worth
// =============================================================================

func testNetWorth(t *testing.T, store Store) {
	ctx := context.Background()
	seedGame(t, store)
	seedNetWorths(t, store)

	t.Run("delta is applied atomically", func(t *testing.T) {
		ok, err := store.ApplyNetWorthDelta(ctx, 3, 2, domain.Delta{Cash: -400, NetProperty: 400, GrossProperty: 400})
		require.NoError(t, err)
		assert.True(t, ok)

		row, err := store.GetNetWorth(ctx, 3)
		require.NoError(t, err)
		require.NotNil(t, row)
		assert.Equal(t, 2, row.Turn)
		assert.Equal(t, int64(1100), row.CashBalance)
		assert.Equal(t, int64(400), row.NetPropertyValue)
		assert.Equal(t, int64(400), row.GrossPropertyValue)
	})

	t.Run("delta for a player without snapshot reports false", func(t *testing.T) {
		ok, err := store.ApplyNetWorthDelta(ctx, 42, 2, domain.Delta{Cash: 10})
		require.NoError(t, err)
		assert.False(t, ok)

		row, err := store.GetNetWorth(ctx, 42)
		require.NoError(t, err)
		assert.Nil(t, row)
	})

	t.Run("list is ordered by player", func(t *testing.T) {
		rows, err := store.ListNetWorths(ctx)
		require.NoError(t, err)
		require.Len(t, rows, 4)
		assert.Equal(t, domain.PLAYER_ID_BANK, rows[0].PlayerID)
		assert.Equal(t, int64(4), rows[3].PlayerID)
	})

	t.Run("log freezes net worth and keeps the first write per turn", func(t *testing.T) {
		written, err := store.AppendNetWorthLog(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 4, written)

		_, err = store.ApplyNetWorthDelta(ctx, 3, 1, domain.Delta{Cash: 200})
		require.NoError(t, err)

		written, err = store.AppendNetWorthLog(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 0, written)

		logged, err := store.ListNetWorthLog(ctx, NetWorthLogFilter{PlayerID: int64Ptr(3)})
		require.NoError(t, err)
		require.Len(t, logged, 1)
		assert.Equal(t, int64(1100), logged[0].CashBalance)
		assert.Equal(t, int64(1500), logged[0].NetWorth)
	})

	t.Run("log filters by turn", func(t *testing.T) {
		_, err := store.AppendNetWorthLog(ctx, 2)
		require.NoError(t, err)

		all, err := store.ListNetWorthLog(ctx, NetWorthLogFilter{})
		require.NoError(t, err)
		assert.Len(t, all, 8)
		assert.Equal(t, 1, all[0].Turn)
		assert.Equal(t, 2, all[7].Turn)

		turnTwo, err := store.ListNetWorthLog(ctx, NetWorthLogFilter{Turn: intPtr(2)})
		require.NoError(t, err)
		require.Len(t, turnTwo, 4)
		assert.Equal(t, int64(1300), turnTwo[2].CashBalance)
	})
}

// =============================================================================
// Test: Transactions
// =============================================================================

func testTransactions(t *testing.T, store Store) {
	ctx := context.Background()
	seedGame(t, store)

	purchase, err := store.GetActionTypeByCode(ctx, domain.ActionTypePurchaseProperty)
	require.NoError(t, err)
	rent, err := store.GetActionTypeByCode(ctx, domain.ActionTypeRent)
	require.NoError(t, err)

	rows := []schema.Transaction{
		{Ref: "01J0000000000000000000000A", Turn: 1, PlayerID: 3, CounterpartyID: domain.PLAYER_ID_BANK, ActionTypeID: purchase.ID, PropertyID: int64Ptr(2), CashPaid: 400, AssetReceived: 400},
		{Ref: "01J0000000000000000000000B", Turn: 2, PlayerID: 4, CounterpartyID: 3, ActionTypeID: rent.ID, PropertyID: int64Ptr(2), CashPaid: 50, Details: datatypes.JSON(`{"tier":"basic"}`)},
		{Ref: "01J0000000000000000000000C", Turn: 3, PlayerID: 4, CounterpartyID: domain.PLAYER_ID_BANK, ActionTypeID: purchase.ID, PropertyID: int64Ptr(3), CashPaid: 200, AssetReceived: 200},
	}
	for i := range rows {
		require.NoError(t, store.CreateTransaction(ctx, &rows[i]))
		assert.NotZero(t, rows[i].ID)
	}

	t.Run("list everything in order with action types", func(t *testing.T) {
		txs, total, err := store.ListTransactions(ctx, TransactionFilter{})
		require.NoError(t, err)
		assert.Equal(t, uint64(3), total)
		require.Len(t, txs, 3)
		assert.Equal(t, rows[0].Ref, txs[0].Ref)
		assert.Equal(t, domain.ActionTypePurchaseProperty, txs[0].ActionType.Code)
		assert.JSONEq(t, `{"tier":"basic"}`, string(txs[1].Details))
	})

	t.Run("player filter matches both sides", func(t *testing.T) {
		txs, total, err := store.ListTransactions(ctx, TransactionFilter{PlayerID: int64Ptr(3)})
		require.NoError(t, err)
		assert.Equal(t, uint64(2), total)
		require.Len(t, txs, 2)
		assert.Equal(t, domain.ActionTypeRent, txs[1].ActionType.Code)
	})

	t.Run("turn filter", func(t *testing.T) {
		txs, total, err := store.ListTransactions(ctx, TransactionFilter{Turn: intPtr(3)})
		require.NoError(t, err)
		assert.Equal(t, uint64(1), total)
		assert.Equal(t, int64(4), txs[0].PlayerID)
	})

	t.Run("pagination keeps the total", func(t *testing.T) {
		txs, total, err := store.ListTransactions(ctx, TransactionFilter{Limit: 1, Offset: 1})
		require.NoError(t, err)
		assert.Equal(t, uint64(3), total)
		require.Len(t, txs, 1)
		assert.Equal(t, rows[1].Ref, txs[0].Ref)
	})
}

// =============================================================================
// Test: Game lifecycle
// =============================================================================

func testResetGame(t *testing.T, store Store) {
	ctx := context.Background()
	seedGame(t, store)
	seedNetWorths(t, store)
	_, err := store.AppendNetWorthLog(ctx, 1)
	require.NoError(t, err)

	require.NoError(t, store.SetKeyValue(ctx, SessionKey, `{"id":"s1","started":true}`))

	require.NoError(t, store.ResetGame(ctx))

	session, err := store.GetKeyValue(ctx, SessionKey)
	require.NoError(t, err)
	assert.Empty(t, session)

	players, err := store.ListPlayers(ctx)
	require.NoError(t, err)
	assert.Len(t, players, 2)

	rows, err := store.ListNetWorths(ctx)
	require.NoError(t, err)
	assert.Empty(t, rows)

	logged, err := store.ListNetWorthLog(ctx, NetWorthLogFilter{})
	require.NoError(t, err)
	assert.Empty(t, logged)

	ownership, err := store.ListOwnership(ctx, OwnershipFilter{})
	require.NoError(t, err)
	assert.Empty(t, ownership)

	versions, err := store.ListGameVersions(ctx)
	require.NoError(t, err)
	assert.Len(t, versions, 1)
}

func testWithTx(t *testing.T, store Store) {
	ctx := context.Background()
	seedGame(t, store)
	seedNetWorths(t, store)

	t.Run("error rolls back every write", func(t *testing.T) {
		boom := errors.New("boom")
		err := store.WithTx(ctx, func(tx Store) error {
			if _, err := tx.TransferOwnership(ctx, 2, domain.PLAYER_ID_BANK, 3); err != nil {
				return err
			}
			if _, err := tx.ApplyNetWorthDelta(ctx, 3, 1, domain.Delta{Cash: -400}); err != nil {
				return err
			}
			return boom
		})
		require.ErrorIs(t, err, boom)

		row, err := store.GetOwnership(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, domain.PLAYER_ID_BANK, row.OwnerID)

		nw, err := store.GetNetWorth(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, int64(1500), nw.CashBalance)
	})

	t.Run("success commits", func(t *testing.T) {
		err := store.WithTx(ctx, func(tx Store) error {
			_, err := tx.TransferOwnership(ctx, 2, domain.PLAYER_ID_BANK, 3)
			return err
		})
		require.NoError(t, err)

		row, err := store.GetOwnership(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, int64(3), row.OwnerID)
	})
}

// =============================================================================
// Test: Key-value store
// =============================================================================

func testKeyValueStore(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("set and get key-value", func(t *testing.T) {
		require.NoError(t, store.SetKeyValue(ctx, "test:key1", "value1"))

		value, err := store.GetKeyValue(ctx, "test:key1")
		require.NoError(t, err)
		assert.Equal(t, "value1", value)
	})

	t.Run("get non-existent key returns empty string", func(t *testing.T) {
		value, err := store.GetKeyValue(ctx, "nonexistent:key")
		require.NoError(t, err)
		assert.Equal(t, "", value)
	})

	t.Run("update existing key", func(t *testing.T) {
		require.NoError(t, store.SetKeyValue(ctx, "test:key2", "value1"))
		require.NoError(t, store.SetKeyValue(ctx, "test:key2", "value2"))

		value, err := store.GetKeyValue(ctx, "test:key2")
		require.NoError(t, err)
		assert.Equal(t, "value2", value)
	})

	t.Run("delete key", func(t *testing.T) {
		require.NoError(t, store.SetKeyValue(ctx, "test:key3", "value"))
		require.NoError(t, store.DeleteKeyValue(ctx, "test:key3"))
		require.NoError(t, store.DeleteKeyValue(ctx, "test:key3"))

		value, err := store.GetKeyValue(ctx, "test:key3")
		require.NoError(t, err)
		assert.Equal(t, "", value)
	})
}

// RunStoreTests runs every store test with a fresh database per test
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"ReferenceData", testReferenceData},
		{"Players", testPlayers},
		{"Ownership", testOwnership},
		{"NetWorth", testNetWorth},
		{"Transactions", testTransactions},
		{"ResetGame", testResetGame},
		{"WithTx", testWithTx},
		{"KeyValueStore", testKeyValueStore},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}
