package rest

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/cedrichille/monopoly-companion-app/internal/api/shared/dto"
	"github.com/cedrichille/monopoly-companion-app/internal/domain"
	"github.com/cedrichille/monopoly-companion-app/internal/game"
	"github.com/cedrichille/monopoly-companion-app/internal/ledger"
	"github.com/cedrichille/monopoly-companion-app/internal/logger"
	"github.com/cedrichille/monopoly-companion-app/internal/refdata"
	"github.com/cedrichille/monopoly-companion-app/internal/store"
)

// Handler defines the interface for REST API handlers
type Handler interface {
	// ListGameVersions returns every game edition
	// GET /api/v1/game-versions
	ListGameVersions(c *gin.Context)

	// ListProperties returns property definitions, optionally fuzzy matched by name
	// GET /api/v1/properties?game_version_id=<id>&search=<query>&limit=<limit>
	// game_version_id defaults to the active game's version
	ListProperties(c *gin.Context)

	// SetupGame resets any previous game and prepares a new one
	// POST /api/v1/game
	SetupGame(c *gin.Context)

	// RegisterPlayers seats the players in turn order and starts the game
	// POST /api/v1/game/players
	RegisterPlayers(c *gin.Context)

	// GetGame returns the active session with the current player
	// GET /api/v1/game
	GetGame(c *gin.Context)

	// ResetGame tears down the active game (requires authentication)
	// DELETE /api/v1/game
	ResetGame(c *gin.Context)

	// GetOwnership returns the ownership ledger
	// GET /api/v1/game/ownership?owner_id=<id>&group=<group>
	GetOwnership(c *gin.Context)

	// GetNetWorths returns each player's current snapshot
	// GET /api/v1/game/net-worth
	GetNetWorths(c *gin.Context)

	// GetNetWorthLog returns logged end-of-turn snapshots
	// GET /api/v1/game/net-worth/log?player_id=<id>&turn=<turn>
	GetNetWorthLog(c *gin.Context)

	// ListTransactions returns the transaction log in insertion order
	// GET /api/v1/game/transactions?player_id=<id>&turn=<turn>&limit=<limit>&offset=<offset>
	ListTransactions(c *gin.Context)

	// Audit rebuilds the snapshots from the ledger and reports drift
	// GET /api/v1/game/audit
	Audit(c *gin.Context)

	// POST /api/v1/game/actions/<action>
	Purchase(c *gin.Context)
	Rent(c *gin.Context)
	PassGo(c *gin.Context)
	Build(c *gin.Context)
	Mortgage(c *gin.Context)
	Unmortgage(c *gin.Context)
	Tax(c *gin.Context)
	SpecialField(c *gin.Context)
	Jail(c *gin.Context)
	Trade(c *gin.Context)

	// NextTurn hands over to the next player
	// POST /api/v1/game/turns/next
	NextTurn(c *gin.Context)

	// PreviousTurn hands back to the previous player
	// POST /api/v1/game/turns/previous
	PreviousTurn(c *gin.Context)

	// ReloadReferenceData reloads the fixture files, resetting any game (requires authentication)
	// POST /api/v1/admin/reference-data/reload
	ReloadReferenceData(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	game        game.Service
	catalog     refdata.Catalog
	loader      refdata.Loader
	fixturesDir string
}

// NewHandler creates a new REST API handler
func NewHandler(svc game.Service, catalog refdata.Catalog, loader refdata.Loader, fixturesDir string) Handler {
	return &handler{
		game:        svc,
		catalog:     catalog,
		loader:      loader,
		fixturesDir: fixturesDir,
	}
}

// =============================================================================
// Reference data
// =============================================================================

func (h *handler) ListGameVersions(c *gin.Context) {
	versions, err := h.catalog.Versions(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list game versions")
		return
	}

	items := make([]dto.GameVersionResponse, 0, len(versions))
	for _, v := range versions {
		items = append(items, dto.MapGameVersionToDTO(v))
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *handler) ListProperties(c *gin.Context) {
	queryParams, err := ParseListPropertiesQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	gameVersionID := queryParams.GameVersionID
	if gameVersionID == 0 {
		session, err := h.game.Session(c.Request.Context())
		if errors.Is(err, domain.ErrNotFound) {
			respondValidationError(c, "game_version_id is required when no game is set up")
			return
		}
		if err != nil {
			respondError(c, err, "Failed to list properties")
			return
		}
		gameVersionID = session.GameVersionID
	}

	properties, err := h.catalog.Search(c.Request.Context(), gameVersionID, queryParams.Search, queryParams.Limit)
	if err != nil {
		respondError(c, err, "Failed to list properties")
		return
	}

	response := dto.PropertyListResponse{Items: make([]dto.PropertyResponse, 0, len(properties))}
	for _, p := range properties {
		response.Items = append(response.Items, dto.MapPropertyToDTO(p))
	}
	c.JSON(http.StatusOK, response)
}

// =============================================================================
// Session lifecycle
// =============================================================================

func (h *handler) SetupGame(c *gin.Context) {
	var req dto.SetupGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondError(c, err, "Failed to set up game")
		return
	}

	session, err := h.game.Setup(c.Request.Context(), req.Input())
	if err != nil {
		respondError(c, err, "Failed to set up game")
		return
	}

	c.JSON(http.StatusCreated, dto.MapSessionToDTO(session))
}

func (h *handler) RegisterPlayers(c *gin.Context) {
	var req dto.RegisterPlayersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondError(c, err, "Failed to register players")
		return
	}

	session, err := h.game.Register(c.Request.Context(), game.RegisterInput{Names: req.Names})
	if err != nil {
		respondError(c, err, "Failed to register players")
		return
	}

	c.JSON(http.StatusOK, dto.MapSessionToDTO(session))
}

func (h *handler) GetGame(c *gin.Context) {
	session, err := h.game.Session(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to get game")
		return
	}

	c.JSON(http.StatusOK, dto.MapSessionToDTO(session))
}

func (h *handler) ResetGame(c *gin.Context) {
	if err := h.game.Reset(c.Request.Context()); err != nil {
		respondError(c, err, "Failed to reset game")
		return
	}

	c.Status(http.StatusNoContent)
}

// =============================================================================
// Reads
// =============================================================================

func (h *handler) GetOwnership(c *gin.Context) {
	queryParams, err := ParseOwnershipQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	records, err := h.game.Ownership(c.Request.Context(), ledger.Filter{
		OwnerID: queryParams.OwnerID,
		Group:   queryParams.Group,
	})
	if err != nil {
		respondError(c, err, "Failed to get ownership")
		return
	}

	response := dto.OwnershipListResponse{Items: make([]dto.OwnershipResponse, 0, len(records))}
	for _, r := range records {
		response.Items = append(response.Items, dto.MapOwnershipToDTO(r))
	}
	c.JSON(http.StatusOK, response)
}

func (h *handler) GetNetWorths(c *gin.Context) {
	snapshots, err := h.game.NetWorths(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to get net worth")
		return
	}

	c.JSON(http.StatusOK, dto.MapSnapshotsToDTO(snapshots))
}

func (h *handler) GetNetWorthLog(c *gin.Context) {
	queryParams, err := ParseNetWorthLogQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	entries, err := h.game.NetWorthLog(c.Request.Context(), store.NetWorthLogFilter{
		PlayerID: queryParams.PlayerID,
		Turn:     queryParams.Turn,
	})
	if err != nil {
		respondError(c, err, "Failed to get net worth log")
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": entries})
}

func (h *handler) ListTransactions(c *gin.Context) {
	queryParams, err := ParseListTransactionsQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	txs, total, err := h.game.Transactions(c.Request.Context(), store.TransactionFilter{
		PlayerID: queryParams.PlayerID,
		Turn:     queryParams.Turn,
		Limit:    queryParams.Limit,
		Offset:   queryParams.Offset,
	})
	if err != nil {
		respondError(c, err, "Failed to list transactions")
		return
	}

	response := dto.TransactionListResponse{
		Items: make([]dto.TransactionResponse, 0, len(txs)),
		Total: total,
	}
	for _, tx := range txs {
		response.Items = append(response.Items, dto.MapTransactionToDTO(tx))
	}
	if next := queryParams.Offset + uint64(len(txs)); next < total {
		response.Offset = &next
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) Audit(c *gin.Context) {
	report, err := h.game.Audit(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to audit game")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":     report.OK(),
		"report": report,
	})
}

// =============================================================================
// Actions
// =============================================================================

// validatable is implemented by request bodies that check themselves
type validatable interface {
	Validate() error
}

// bindAction decodes and validates an action body, responding on failure
func bindAction(c *gin.Context, req validatable) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return false
	}
	if err := req.Validate(); err != nil {
		respondError(c, err, "Invalid request body")
		return false
	}
	return true
}

// respondAction writes an action outcome
func respondAction(c *gin.Context, result *game.ActionResult, err error, action domain.ActionType) {
	if err != nil {
		respondError(c, err, fmt.Sprintf("Failed to apply %s", action))
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *handler) Purchase(c *gin.Context) {
	var req dto.PropertyActionRequest
	if !bindAction(c, &req) {
		return
	}
	result, err := h.game.Purchase(c.Request.Context(), game.PropertyInput{PropertyID: req.PropertyID})
	respondAction(c, result, err, domain.ActionTypePurchaseProperty)
}

func (h *handler) Rent(c *gin.Context) {
	var req dto.RentRequest
	if !bindAction(c, &req) {
		return
	}
	result, err := h.game.Rent(c.Request.Context(), game.RentInput{PropertyID: req.PropertyID, DiceRoll: req.DiceRoll})
	respondAction(c, result, err, domain.ActionTypeRent)
}

func (h *handler) PassGo(c *gin.Context) {
	var req dto.PassGoRequest
	// The body is optional: an empty body means the player passed Go
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, "Invalid request body", err.Error())
			return
		}
	}
	result, err := h.game.PassGo(c.Request.Context(), game.PassGoInput{Landed: req.Landed})
	respondAction(c, result, err, domain.ActionTypeGo)
}

func (h *handler) Build(c *gin.Context) {
	var req dto.PropertyActionRequest
	if !bindAction(c, &req) {
		return
	}
	result, err := h.game.Build(c.Request.Context(), game.PropertyInput{PropertyID: req.PropertyID})
	respondAction(c, result, err, domain.ActionTypeBuild)
}

func (h *handler) Mortgage(c *gin.Context) {
	var req dto.PropertyActionRequest
	if !bindAction(c, &req) {
		return
	}
	result, err := h.game.Mortgage(c.Request.Context(), game.PropertyInput{PropertyID: req.PropertyID})
	respondAction(c, result, err, domain.ActionTypeMortgage)
}

func (h *handler) Unmortgage(c *gin.Context) {
	var req dto.PropertyActionRequest
	if !bindAction(c, &req) {
		return
	}
	result, err := h.game.Unmortgage(c.Request.Context(), game.PropertyInput{PropertyID: req.PropertyID})
	respondAction(c, result, err, domain.ActionTypeUnmortgage)
}

func (h *handler) Tax(c *gin.Context) {
	var req dto.TaxRequest
	if !bindAction(c, &req) {
		return
	}
	result, err := h.game.Tax(c.Request.Context(), game.TaxInput{Kind: req.Kind})
	respondAction(c, result, err, domain.ActionTypeTax)
}

func (h *handler) SpecialField(c *gin.Context) {
	var req dto.SpecialFieldRequest
	if !bindAction(c, &req) {
		return
	}
	result, err := h.game.SpecialField(c.Request.Context(), game.SpecialFieldInput{Kind: req.Kind})
	respondAction(c, result, err, domain.ActionTypeSpecialField)
}

func (h *handler) Jail(c *gin.Context) {
	result, err := h.game.Jail(c.Request.Context())
	respondAction(c, result, err, domain.ActionTypeJail)
}

func (h *handler) Trade(c *gin.Context) {
	var req dto.TradeRequest
	if !bindAction(c, &req) {
		return
	}
	result, err := h.game.Trade(c.Request.Context(), game.TradeInput{
		PropertyID:     req.PropertyID,
		CounterpartyID: req.CounterpartyID,
		Price:          req.Price,
	})
	respondAction(c, result, err, domain.ActionTypeTradeProperty)
}

// =============================================================================
// Turns
// =============================================================================

func (h *handler) NextTurn(c *gin.Context) {
	result, err := h.game.EndTurn(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to end turn")
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *handler) PreviousTurn(c *gin.Context) {
	result, err := h.game.UndoTurn(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to undo turn")
		return
	}
	c.JSON(http.StatusOK, result)
}

// =============================================================================
// Admin
// =============================================================================

func (h *handler) ReloadReferenceData(c *gin.Context) {
	ctx := c.Request.Context()

	// Per-game rows reference the reference tables, so the game goes first
	if err := h.game.Reset(ctx); err != nil {
		respondError(c, err, "Failed to reset game")
		return
	}

	summary, err := h.loader.Load(ctx, h.fixturesDir)
	if err != nil {
		respondError(c, err, "Failed to reload reference data")
		return
	}
	h.catalog.Invalidate()

	logger.InfoCtx(ctx, "Reference data reloaded",
		zap.String("dir", h.fixturesDir),
		zap.Int("properties", summary.Properties),
	)

	c.JSON(http.StatusOK, dto.ReloadReferenceDataResponse{Summary: *summary, GameReset: true})
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	_, err := h.game.Session(c.Request.Context())
	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:  "ok",
		Service: "monopoly-companion-api",
		Game:    err == nil,
	})
}
