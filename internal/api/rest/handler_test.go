package rest_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cedrichille/monopoly-companion-app/internal/api/middleware"
	"github.com/cedrichille/monopoly-companion-app/internal/api/rest"
	"github.com/cedrichille/monopoly-companion-app/internal/api/shared/dto"
	"github.com/cedrichille/monopoly-companion-app/internal/domain"
	"github.com/cedrichille/monopoly-companion-app/internal/game"
	"github.com/cedrichille/monopoly-companion-app/internal/ledger"
	"github.com/cedrichille/monopoly-companion-app/internal/mocks"
	"github.com/cedrichille/monopoly-companion-app/internal/refdata"
	"github.com/cedrichille/monopoly-companion-app/internal/store"
	"github.com/cedrichille/monopoly-companion-app/internal/store/schema"
	"github.com/cedrichille/monopoly-companion-app/internal/turn"
)

const (
	testAPIKey      = "test-api-key"
	testFixturesDir = "data"
)

type testAPI struct {
	router  *gin.Engine
	game    *mocks.MockGameService
	catalog *mocks.MockPropertyCatalog
	loader  *mocks.MockFixtureLoader
}

func newTestAPI(t *testing.T) *testAPI {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	api := &testAPI{
		router:  gin.New(),
		game:    mocks.NewMockGameService(ctrl),
		catalog: mocks.NewMockPropertyCatalog(ctrl),
		loader:  mocks.NewMockFixtureLoader(ctrl),
	}

	auth, err := middleware.NewAuthenticator(middleware.AuthConfig{APIKeys: []string{testAPIKey}})
	require.NoError(t, err)

	handler := rest.NewHandler(api.game, api.catalog, api.loader, testFixturesDir)
	rest.SetupRoutes(api.router, handler, auth)
	return api
}

func (a *testAPI) do(method, path, body string, headers ...string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

func startedSession() *game.Session {
	return &game.Session{
		ID:              "2f4c9a1e-3b57-4d0f-9a36-8c1d2e7b5f10",
		GameVersionID:   1,
		GameVersionName: "Classic (US)",
		PlayerCount:     2,
		Started:         true,
		Position:        turn.Position{Order: 2, Turn: 3},
		Seats: []turn.Seat{
			{Order: 1, PlayerID: 3, Name: "Alice"},
			{Order: 2, PlayerID: 4, Name: "Bob"},
		},
		CreatedAt: time.Date(2026, 10, 15, 18, 0, 0, 0, time.UTC),
	}
}

func TestHandler_SetupGame(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(g *mocks.MockGameService)
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "creates the session",
			body: `{"game_version":" Classic (US) ","player_count":2,"double_go":true}`,
			setupMock: func(g *mocks.MockGameService) {
				g.EXPECT().Setup(gomock.Any(), game.SetupInput{
					GameVersion: "Classic (US)",
					PlayerCount: 2,
					Rules:       game.Rules{DoubleGo: true},
				}).Return(&game.Session{ID: "s1", GameVersionID: 1, PlayerCount: 2, Rules: game.Rules{DoubleGo: true}}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "malformed body",
			body:           `{"game_version":`,
			setupMock:      func(*mocks.MockGameService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "bad_request",
		},
		{
			name:           "missing version",
			body:           `{"player_count":2}`,
			setupMock:      func(*mocks.MockGameService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "validation_failed",
		},
		{
			name:           "too many players",
			body:           `{"game_version":"Classic (US)","player_count":9}`,
			setupMock:      func(*mocks.MockGameService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "validation_failed",
		},
		{
			name: "unknown version",
			body: `{"game_version":"Mega","player_count":2}`,
			setupMock: func(g *mocks.MockGameService) {
				g.EXPECT().Setup(gomock.Any(), gomock.Any()).Return(nil, domain.NewNotFoundError("game version", "Mega"))
			},
			expectedStatus: http.StatusNotFound,
			expectedCode:   "not_found",
		},
		{
			name: "game in progress",
			body: `{"game_version":"Classic (US)","player_count":2}`,
			setupMock: func(g *mocks.MockGameService) {
				g.EXPECT().Setup(gomock.Any(), gomock.Any()).
					Return(nil, domain.NewInvalidStateError("game in progress, reset it before setting up a new one"))
			},
			expectedStatus: http.StatusConflict,
			expectedCode:   "invalid_state",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(t)
			tt.setupMock(api.game)

			w := api.do(http.MethodPost, "/api/v1/game", tt.body)
			assert.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedCode != "" {
				var body map[string]interface{}
				decode(t, w, &body)
				assert.Equal(t, tt.expectedCode, body["code"])
				return
			}

			var session dto.SessionResponse
			decode(t, w, &session)
			assert.Equal(t, "s1", session.ID)
			assert.True(t, session.Rules.DoubleGo)
			assert.Nil(t, session.CurrentPlayer)
		})
	}
}

func TestHandler_RegisterPlayers(t *testing.T) {
	t.Run("starts the game", func(t *testing.T) {
		api := newTestAPI(t)
		api.game.EXPECT().Register(gomock.Any(), game.RegisterInput{Names: []string{"Alice", "Bob"}}).
			Return(startedSession(), nil)

		w := api.do(http.MethodPost, "/api/v1/game/players", `{"names":["Alice","Bob"]}`)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var session dto.SessionResponse
		decode(t, w, &session)
		require.NotNil(t, session.CurrentPlayer)
		assert.Equal(t, "Bob", session.CurrentPlayer.Name)
		assert.Len(t, session.Players, 2)
	})

	t.Run("blank name is reported by position", func(t *testing.T) {
		api := newTestAPI(t)
		api.game.EXPECT().Register(gomock.Any(), gomock.Any()).
			Return(nil, domain.NewValidationError("names[1]", "Player 2 name required"))

		w := api.do(http.MethodPost, "/api/v1/game/players", `{"names":["Alice"," "]}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"code":"validation_failed","message":"Validation failed","details":"Player 2 name required"}`, w.Body.String())
	})

	t.Run("no names", func(t *testing.T) {
		api := newTestAPI(t)
		w := api.do(http.MethodPost, "/api/v1/game/players", `{"names":[]}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_GetGame(t *testing.T) {
	t.Run("no game", func(t *testing.T) {
		api := newTestAPI(t)
		api.game.EXPECT().Session(gomock.Any()).Return(nil, domain.NewNotFoundError("game session", game.SessionKey))

		w := api.do(http.MethodGet, "/api/v1/game", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("active game", func(t *testing.T) {
		api := newTestAPI(t)
		api.game.EXPECT().Session(gomock.Any()).Return(startedSession(), nil)

		w := api.do(http.MethodGet, "/api/v1/game", "")
		require.Equal(t, http.StatusOK, w.Code)

		var session dto.SessionResponse
		decode(t, w, &session)
		assert.Equal(t, turn.Position{Order: 2, Turn: 3}, session.Position)
		assert.Equal(t, int64(4), session.CurrentPlayer.PlayerID)
	})
}

func TestHandler_ResetGameRequiresAuth(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodDelete, "/api/v1/game", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	api.game.EXPECT().Reset(gomock.Any()).Return(nil)
	w = api.do(http.MethodDelete, "/api/v1/game", "", "Authorization", "ApiKey "+testAPIKey)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestHandler_Actions(t *testing.T) {
	propertyID := int64(39)
	result := &game.ActionResult{
		Action:         domain.ActionTypeRent,
		Ref:            "01JAB3Z7K8Q2M4N6P8R0T2V4X6",
		Turn:           3,
		PlayerID:       4,
		CounterpartyID: 3,
		PropertyID:     &propertyID,
		Amount:         50,
		Rent:           &domain.RentResult{Amount: 50, Tier: domain.RentTierBasic},
	}

	tests := []struct {
		name           string
		path           string
		body           string
		setupMock      func(g *mocks.MockGameService)
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "rent",
			path: "/api/v1/game/actions/rent",
			body: `{"property_id":39}`,
			setupMock: func(g *mocks.MockGameService) {
				g.EXPECT().Rent(gomock.Any(), game.RentInput{PropertyID: 39}).Return(result, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "utility rent passes the dice roll",
			path: "/api/v1/game/actions/rent",
			body: `{"property_id":12,"dice_roll":7}`,
			setupMock: func(g *mocks.MockGameService) {
				g.EXPECT().Rent(gomock.Any(), game.RentInput{PropertyID: 12, DiceRoll: 7}).Return(result, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "rent without property",
			path:           "/api/v1/game/actions/rent",
			body:           `{}`,
			setupMock:      func(*mocks.MockGameService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "validation_failed",
		},
		{
			name: "purchase without cash",
			path: "/api/v1/game/actions/purchase",
			body: `{"property_id":39}`,
			setupMock: func(g *mocks.MockGameService) {
				g.EXPECT().Purchase(gomock.Any(), game.PropertyInput{PropertyID: 39}).
					Return(nil, fmt.Errorf("%w: need %d, have %d", domain.ErrInsufficientCash, 400, 120))
			},
			expectedStatus: http.StatusConflict,
			expectedCode:   "invalid_state",
		},
		{
			name: "go with an empty body means passing",
			path: "/api/v1/game/actions/go",
			setupMock: func(g *mocks.MockGameService) {
				g.EXPECT().PassGo(gomock.Any(), game.PassGoInput{}).Return(result, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "landing on go",
			path: "/api/v1/game/actions/go",
			body: `{"landed":true}`,
			setupMock: func(g *mocks.MockGameService) {
				g.EXPECT().PassGo(gomock.Any(), game.PassGoInput{Landed: true}).Return(result, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unknown tax kind",
			path:           "/api/v1/game/actions/tax",
			body:           `{"kind":"wealth"}`,
			setupMock:      func(*mocks.MockGameService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "validation_failed",
		},
		{
			name: "chance is not implemented",
			path: "/api/v1/game/actions/special-field",
			body: `{"kind":"chance"}`,
			setupMock: func(g *mocks.MockGameService) {
				g.EXPECT().SpecialField(gomock.Any(), game.SpecialFieldInput{Kind: domain.SpecialFieldChance}).
					Return(nil, fmt.Errorf("%w: %s", domain.ErrNotImplemented, domain.SpecialFieldChance))
			},
			expectedStatus: http.StatusNotImplemented,
			expectedCode:   "not_implemented",
		},
		{
			name: "jail before start",
			path: "/api/v1/game/actions/jail",
			setupMock: func(g *mocks.MockGameService) {
				g.EXPECT().Jail(gomock.Any()).Return(nil, domain.ErrGameNotStarted)
			},
			expectedStatus: http.StatusConflict,
			expectedCode:   "invalid_state",
		},
		{
			name: "trade",
			path: "/api/v1/game/actions/trade",
			body: `{"property_id":39,"counterparty_id":4,"price":500}`,
			setupMock: func(g *mocks.MockGameService) {
				g.EXPECT().Trade(gomock.Any(), game.TradeInput{PropertyID: 39, CounterpartyID: 4, Price: 500}).
					Return(nil, fmt.Errorf("%w: trade", domain.ErrNotImplemented))
			},
			expectedStatus: http.StatusNotImplemented,
			expectedCode:   "not_implemented",
		},
		{
			name: "database failure is hidden",
			path: "/api/v1/game/actions/build",
			body: `{"property_id":39}`,
			setupMock: func(g *mocks.MockGameService) {
				g.EXPECT().Build(gomock.Any(), gomock.Any()).Return(nil, errors.New("failed to update ownership: connection reset"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   "internal_error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(t)
			tt.setupMock(api.game)

			w := api.do(http.MethodPost, tt.path, tt.body)
			assert.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			var body map[string]interface{}
			decode(t, w, &body)
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, body["code"])
				assert.NotContains(t, w.Body.String(), "connection reset")
				return
			}
			assert.Equal(t, "01JAB3Z7K8Q2M4N6P8R0T2V4X6", body["ref"])
		})
	}
}

func TestHandler_Turns(t *testing.T) {
	api := newTestAPI(t)
	api.game.EXPECT().EndTurn(gomock.Any()).Return(&game.TurnResult{
		Previous:      turn.Position{Order: 2, Turn: 1},
		Position:      turn.Position{Order: 1, Turn: 2},
		CurrentPlayer: turn.Seat{Order: 1, PlayerID: 3, Name: "Alice"},
		TurnCompleted: true,
		Logged:        4,
	}, nil)
	api.game.EXPECT().UndoTurn(gomock.Any()).Return(nil, domain.ErrGameNotStarted)

	w := api.do(http.MethodPost, "/api/v1/game/turns/next", "")
	require.Equal(t, http.StatusOK, w.Code)
	var result game.TurnResult
	decode(t, w, &result)
	assert.True(t, result.TurnCompleted)
	assert.Equal(t, 4, result.Logged)

	w = api.do(http.MethodPost, "/api/v1/game/turns/previous", "")
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_ListTransactions(t *testing.T) {
	api := newTestAPI(t)
	propertyID := int64(1)
	api.game.EXPECT().Transactions(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter store.TransactionFilter) ([]schema.Transaction, uint64, error) {
			require.NotNil(t, filter.PlayerID)
			assert.Equal(t, int64(3), *filter.PlayerID)
			assert.Equal(t, 2, filter.Limit)
			assert.Equal(t, uint64(0), filter.Offset)
			return []schema.Transaction{
				{ID: 1, Ref: "a", Turn: 1, PlayerID: 3, CounterpartyID: 1, PropertyID: &propertyID, CashPaid: 60, AssetReceived: 60,
					ActionType: schema.ActionType{Code: domain.ActionTypePurchaseProperty}},
				{ID: 2, Ref: "b", Turn: 1, PlayerID: 3, CounterpartyID: 1, CashReceived: 200,
					Details:    []byte(`{"landed":false,"doubled":false}`),
					ActionType: schema.ActionType{Code: domain.ActionTypeGo}},
			}, 5, nil
		})

	w := api.do(http.MethodGet, "/api/v1/game/transactions?player_id=3&limit=2", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var response dto.TransactionListResponse
	decode(t, w, &response)
	require.Len(t, response.Items, 2)
	assert.Equal(t, domain.ActionTypePurchaseProperty, response.Items[0].Action)
	assert.JSONEq(t, `{"landed":false,"doubled":false}`, string(response.Items[1].Details))
	assert.Equal(t, uint64(5), response.Total)
	require.NotNil(t, response.Offset)
	assert.Equal(t, uint64(2), *response.Offset)
}

func TestHandler_QueryValidation(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodGet, "/api/v1/game/transactions?turn=0", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = api.do(http.MethodGet, "/api/v1/game/net-worth/log?player_id=abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_NetWorths(t *testing.T) {
	api := newTestAPI(t)
	api.game.EXPECT().NetWorths(gomock.Any()).Return([]domain.Snapshot{
		{PlayerID: 3, Turn: 2, CashBalance: 1340, NetPropertyValue: 60, ImprovementValue: 100, GrossPropertyValue: 60},
	}, nil)

	w := api.do(http.MethodGet, "/api/v1/game/net-worth", "")
	require.Equal(t, http.StatusOK, w.Code)

	var response dto.NetWorthListResponse
	decode(t, w, &response)
	require.Len(t, response.Items, 1)
	assert.Equal(t, int64(1500), response.Items[0].NetWorth)
}

func TestHandler_Ownership(t *testing.T) {
	api := newTestAPI(t)
	owner := int64(3)
	api.game.EXPECT().Ownership(gomock.Any(), ledger.Filter{OwnerID: &owner}).Return([]ledger.Record{
		{
			PropertyID:   1,
			Property:     schema.Property{ID: 1, Name: "Mediterranean Avenue", Group: "brown", Type: domain.PropertyTypeStreet, HouseCost: 50},
			OwnerID:      3,
			Houses:       2,
			OwnedInGroup: 2,
			MaxInGroup:   2,
		},
	}, nil)

	w := api.do(http.MethodGet, "/api/v1/game/ownership?owner_id=3", "")
	require.Equal(t, http.StatusOK, w.Code)

	var response dto.OwnershipListResponse
	decode(t, w, &response)
	require.Len(t, response.Items, 1)
	assert.True(t, response.Items[0].Monopoly)
	assert.Equal(t, int64(100), response.Items[0].ImprovementValue)
	assert.Equal(t, "Mediterranean Avenue", response.Items[0].PropertyName)
}

func TestHandler_ListProperties(t *testing.T) {
	properties := []schema.Property{{ID: 39, GameVersionID: 1, Name: "Boardwalk", Group: "dark_blue", Type: domain.PropertyTypeStreet, Price: 400}}

	t.Run("search defaults to the active game's version", func(t *testing.T) {
		api := newTestAPI(t)
		api.game.EXPECT().Session(gomock.Any()).Return(startedSession(), nil)
		api.catalog.EXPECT().Search(gomock.Any(), int64(1), "board", 10).Return(properties, nil)

		w := api.do(http.MethodGet, "/api/v1/properties?search=board", "")
		require.Equal(t, http.StatusOK, w.Code)

		var response dto.PropertyListResponse
		decode(t, w, &response)
		require.Len(t, response.Items, 1)
		assert.Equal(t, int64(400), response.Items[0].Price)
	})

	t.Run("explicit version without a game", func(t *testing.T) {
		api := newTestAPI(t)
		api.catalog.EXPECT().Search(gomock.Any(), int64(1), "", 0).Return(properties, nil)

		w := api.do(http.MethodGet, "/api/v1/properties?game_version_id=1", "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("no version and no game", func(t *testing.T) {
		api := newTestAPI(t)
		api.game.EXPECT().Session(gomock.Any()).Return(nil, domain.NewNotFoundError("game session", game.SessionKey))

		w := api.do(http.MethodGet, "/api/v1/properties", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_ListGameVersions(t *testing.T) {
	api := newTestAPI(t)
	api.catalog.EXPECT().Versions(gomock.Any()).Return([]schema.GameVersion{
		{ID: 1, Name: "Classic (US)", TotalCash: 15140, StartingCash: 1500, GoValue: 200, IncomeTax: 200, LuxuryTax: 100},
	}, nil)

	w := api.do(http.MethodGet, "/api/v1/game-versions", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total_cash":15140`)
}

func TestHandler_ReloadReferenceData(t *testing.T) {
	t.Run("resets the game and reloads", func(t *testing.T) {
		api := newTestAPI(t)
		gomock.InOrder(
			api.game.EXPECT().Reset(gomock.Any()).Return(nil),
			api.loader.EXPECT().Load(gomock.Any(), testFixturesDir).Return(&refdata.Summary{
				ActionTypes: 10, GameVersions: 1, Players: 2, Properties: 28,
			}, nil),
			api.catalog.EXPECT().Invalidate(),
		)

		w := api.do(http.MethodPost, "/api/v1/admin/reference-data/reload", "", "Authorization", "ApiKey "+testAPIKey)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.JSONEq(t, `{"action_types":10,"game_versions":1,"players":2,"properties":28,"game_reset":true}`, w.Body.String())
	})

	t.Run("invalid fixtures keep the cache", func(t *testing.T) {
		api := newTestAPI(t)
		api.game.EXPECT().Reset(gomock.Any()).Return(nil)
		api.loader.EXPECT().Load(gomock.Any(), testFixturesDir).
			Return(nil, domain.NewValidationError("property.json", "Property 4 has unknown type \"railroad\""))

		w := api.do(http.MethodPost, "/api/v1/admin/reference-data/reload", "", "Authorization", "ApiKey "+testAPIKey)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("requires auth", func(t *testing.T) {
		api := newTestAPI(t)
		w := api.do(http.MethodPost, "/api/v1/admin/reference-data/reload", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestHandler_HealthCheck(t *testing.T) {
	api := newTestAPI(t)
	api.game.EXPECT().Session(gomock.Any()).Return(startedSession(), nil)

	w := api.do(http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","service":"monopoly-companion-api","game":true}`, w.Body.String())
}
