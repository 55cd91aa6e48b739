// Package game runs the active game: setup, registration, the action handlers and turn changes.
package game

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cedrichille/monopoly-companion-app/internal/adapter"
	"github.com/cedrichille/monopoly-companion-app/internal/domain"
	"github.com/cedrichille/monopoly-companion-app/internal/ledger"
	"github.com/cedrichille/monopoly-companion-app/internal/logger"
	"github.com/cedrichille/monopoly-companion-app/internal/networth"
	"github.com/cedrichille/monopoly-companion-app/internal/sessioncache"
	"github.com/cedrichille/monopoly-companion-app/internal/store"
	"github.com/cedrichille/monopoly-companion-app/internal/store/schema"
	"github.com/cedrichille/monopoly-companion-app/internal/turn"
	"github.com/cedrichille/monopoly-companion-app/internal/txlog"
)

// errNoGame is returned when a call needs a set-up game and there is none
var errNoGame = domain.NewInvalidStateError("no game set up")

// Service defines the game operations
//
//go:generate mockgen -source=service.go -destination=../mocks/game_service.go -package=mocks -mock_names=Service=MockGameService
type Service interface {
	// Setup prepares the ledger for a game version, replacing an unstarted setup.
	// A started game must be reset first.
	Setup(ctx context.Context, input SetupInput) (*Session, error)
	// Register seats the players, seeds net worth and starts the game
	Register(ctx context.Context, input RegisterInput) (*Session, error)
	// Reset clears the game state and tears down the session; reference data stays
	Reset(ctx context.Context) error
	// Session returns the active session
	Session(ctx context.Context) (*Session, error)
	// Restore drops the in-process session and reloads it from the cache or the database
	Restore(ctx context.Context) (*Session, error)

	// Purchase buys a Bank-owned property for the current player
	Purchase(ctx context.Context, input PropertyInput) (*ActionResult, error)
	// Rent charges the current player rent on a property owned by someone else
	Rent(ctx context.Context, input RentInput) (*ActionResult, error)
	// PassGo pays the Go value to the current player
	PassGo(ctx context.Context, input PassGoInput) (*ActionResult, error)
	// Build adds a house, or a hotel after four houses, to a street
	Build(ctx context.Context, input PropertyInput) (*ActionResult, error)
	// Mortgage mortgages an unimproved property to the Bank
	Mortgage(ctx context.Context, input PropertyInput) (*ActionResult, error)
	// Unmortgage lifts a mortgage, paying the mortgage value plus interest
	Unmortgage(ctx context.Context, input PropertyInput) (*ActionResult, error)
	// Tax charges income or luxury tax
	Tax(ctx context.Context, input TaxInput) (*ActionResult, error)
	// SpecialField resolves landing on Chance, Community Chest or Free Parking
	SpecialField(ctx context.Context, input SpecialFieldInput) (*ActionResult, error)
	// Jail is an extension point; jail rules are not modelled
	Jail(ctx context.Context) (*ActionResult, error)
	// Trade is an extension point; trading is not modelled
	Trade(ctx context.Context, input TradeInput) (*ActionResult, error)

	// EndTurn hands over to the next player, logging net worth when the turn completes
	EndTurn(ctx context.Context) (*TurnResult, error)
	// UndoTurn hands back to the previous player; logged net worth is kept
	UndoTurn(ctx context.Context) (*TurnResult, error)

	// Ownership returns ledger records
	Ownership(ctx context.Context, filter ledger.Filter) ([]ledger.Record, error)
	// NetWorths returns the current snapshot of every player
	NetWorths(ctx context.Context) ([]domain.Snapshot, error)
	// NetWorthLog returns logged end-of-turn snapshots
	NetWorthLog(ctx context.Context, filter store.NetWorthLogFilter) ([]networth.LogEntry, error)
	// Transactions returns the transaction log and the total matching the filter
	Transactions(ctx context.Context, filter store.TransactionFilter) ([]schema.Transaction, uint64, error)
	// Audit rebuilds snapshots from the ledger and the transaction log and reports drift
	Audit(ctx context.Context) (*networth.Report, error)
}

// SetupInput selects the game version and house rules
type SetupInput struct {
	GameVersion string
	PlayerCount int
	Rules       Rules
}

// RegisterInput holds player names in turn order
type RegisterInput struct {
	Names []string
}

// PropertyInput identifies the property an action applies to
type PropertyInput struct {
	PropertyID int64
}

// RentInput identifies the property landed on; DiceRoll is required for utilities
type RentInput struct {
	PropertyID int64
	DiceRoll   int
}

// PassGoInput tells passing Go apart from landing on it
type PassGoInput struct {
	Landed bool
}

// TaxInput selects the tax square
type TaxInput struct {
	Kind domain.TaxKind
}

// SpecialFieldInput selects the special square
type SpecialFieldInput struct {
	Kind domain.SpecialFieldKind
}

// TradeInput describes a property sale between players
type TradeInput struct {
	PropertyID     int64
	CounterpartyID int64
	Price          int64
}

// ActionResult is the outcome of an action handler
type ActionResult struct {
	Action         domain.ActionType  `json:"action"`
	Ref            string             `json:"ref"`
	Turn           int                `json:"turn"`
	PlayerID       int64              `json:"player_id"`
	CounterpartyID int64              `json:"counterparty_id"`
	PropertyID     *int64             `json:"property_id,omitempty"`
	Amount         int64              `json:"amount"`
	Rent           *domain.RentResult `json:"rent,omitempty"`
	Snapshots      []domain.Snapshot  `json:"snapshots"`
}

// TurnResult is the outcome of EndTurn and UndoTurn
type TurnResult struct {
	Previous      turn.Position `json:"previous"`
	Position      turn.Position `json:"position"`
	CurrentPlayer turn.Seat     `json:"current_player"`
	// TurnCompleted is true when the last player handed over to the first
	TurnCompleted bool `json:"turn_completed"`
	// Logged is the number of net worth log rows written
	Logged int `json:"logged"`
}

type service struct {
	mu      sync.Mutex
	store   store.Store
	cache   sessioncache.Cache
	clock   adapter.Clock
	session *Session
}

// NewService creates the game service. Calls are serialized: one game, one move at a time.
func NewService(st store.Store, cache sessioncache.Cache, clock adapter.Clock) Service {
	if cache == nil {
		cache = sessioncache.Noop{}
	}
	return &service{
		store: st,
		cache: cache,
		clock: clock,
	}
}

// =============================================================================
// Session lifecycle
// =============================================================================

// Setup prepares the ledger for a game version, replacing an unstarted setup
func (s *service) Setup(ctx context.Context, input SetupInput) (*Session, error) {
	name := strings.TrimSpace(input.GameVersion)
	if name == "" {
		return nil, domain.NewValidationError("game_version", "Game version required")
	}
	if input.PlayerCount < 1 {
		return nil, domain.NewValidationError("player_count", "At least one player is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.loadSession(ctx)
	if err != nil {
		return nil, err
	}
	if current != nil && current.Started {
		return nil, domain.NewInvalidStateError("game in progress, reset it before setting up a new one")
	}

	var session *Session
	err = s.store.WithTx(ctx, func(tx store.Store) error {
		version, err := tx.GetGameVersionByName(ctx, name)
		if err != nil {
			return err
		}
		if version == nil {
			return domain.NewNotFoundError("game version", name)
		}
		if domain.StartingCash(version.TotalCash, version.StartingCash, input.PlayerCount) < 0 {
			return domain.NewValidationError("player_count",
				fmt.Sprintf("%s does not have enough cash for %d players", version.Name, input.PlayerCount))
		}

		if err := tx.ResetGame(ctx); err != nil {
			return err
		}

		l := ledger.New(tx)
		if _, err := l.Initialize(ctx, version.ID); err != nil {
			return err
		}
		if err := l.ComputeMaxGroupCounts(ctx); err != nil {
			return err
		}
		if err := l.RecomputeGroupCounts(ctx); err != nil {
			return err
		}

		session = &Session{
			ID:              uuid.NewString(),
			GameVersionID:   version.ID,
			GameVersionName: version.Name,
			PlayerCount:     input.PlayerCount,
			Rules:           input.Rules,
			Seats:           []turn.Seat{},
			CreatedAt:       s.clock.Now().UTC(),
		}
		return persistSession(ctx, tx, session)
	})
	if err != nil {
		s.logFailure(ctx, "setup", err)
		return nil, err
	}

	s.commitSession(ctx, session)
	logger.InfoCtx(ctx, "Game set up",
		zap.String("session_id", session.ID),
		zap.String("game_version", session.GameVersionName),
		zap.Int("player_count", session.PlayerCount),
		zap.Bool("double_go", session.Rules.DoubleGo),
		zap.Bool("free_parking_jackpot", session.Rules.FreeParkingJackpot),
	)

	return session.clone(), nil
}

// Register seats the players, seeds net worth and starts the game
func (s *service) Register(ctx context.Context, input RegisterInput) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.loadSession(ctx)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, errNoGame
	}
	if current.Started {
		return nil, domain.NewInvalidStateError("game already started")
	}

	names, err := validateNames(input.Names, current.PlayerCount)
	if err != nil {
		return nil, err
	}

	var session *Session
	err = s.store.WithTx(ctx, func(tx store.Store) error {
		version, err := tx.GetGameVersionByID(ctx, current.GameVersionID)
		if err != nil {
			return err
		}
		if version == nil {
			return domain.NewNotFoundError("game version", current.GameVersionID)
		}

		bankCash := domain.StartingCash(version.TotalCash, version.StartingCash, len(names))
		if bankCash < 0 {
			return domain.NewValidationError("names",
				fmt.Sprintf("%s does not have enough cash for %d players", version.Name, len(names)))
		}

		players := make([]schema.Player, 0, len(names))
		seats := make([]turn.Seat, 0, len(names))
		for i, name := range names {
			order := i + 1
			id := domain.PlayerIDForOrder(order)
			players = append(players, schema.Player{ID: id, Name: name, TurnOrder: &order})
			seats = append(seats, turn.Seat{Order: order, PlayerID: id, Name: name})
		}
		if err := tx.CreatePlayers(ctx, players); err != nil {
			return err
		}

		// The Bank starts with every property, valued from the ledger
		values, err := tx.GetPropertyValuesByOwner(ctx)
		if err != nil {
			return err
		}
		var bankValues store.PropertyValues
		for _, v := range values {
			if v.PlayerID == domain.PLAYER_ID_BANK {
				bankValues = v
			}
		}

		snapshots := []domain.Snapshot{
			{
				PlayerID:           domain.PLAYER_ID_BANK,
				Turn:               turn.Start.Turn,
				CashBalance:        bankCash,
				NetPropertyValue:   bankValues.NetPropertyValue(),
				ImprovementValue:   bankValues.ImprovementValue,
				GrossPropertyValue: bankValues.GrossPropertyValue,
			},
			{PlayerID: domain.PLAYER_ID_FREE_PARKING, Turn: turn.Start.Turn},
		}
		for _, seat := range seats {
			snapshots = append(snapshots, domain.Snapshot{
				PlayerID:    seat.PlayerID,
				Turn:        turn.Start.Turn,
				CashBalance: version.StartingCash,
			})
		}
		if err := networth.New(tx).Seed(ctx, snapshots); err != nil {
			return err
		}

		session = current.clone()
		session.Seats = seats
		session.Started = true
		session.Position = turn.Start
		if _, err := session.Roster(); err != nil {
			return err
		}
		return persistSession(ctx, tx, session)
	})
	if err != nil {
		s.logFailure(ctx, "register", err)
		return nil, err
	}

	s.commitSession(ctx, session)
	logger.InfoCtx(ctx, "Players registered",
		zap.String("session_id", session.ID),
		zap.Strings("players", names),
	)

	return session.clone(), nil
}

func validateNames(names []string, expected int) ([]string, error) {
	if len(names) != expected {
		return nil, domain.NewValidationError("names",
			fmt.Sprintf("Expected %d player names, got %d", expected, len(names)))
	}

	trimmed := make([]string, 0, len(names))
	for i, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, domain.NewValidationError(fmt.Sprintf("names[%d]", i),
				fmt.Sprintf("Player %d name required", i+1))
		}
		trimmed = append(trimmed, name)
	}
	return trimmed, nil
}

// Reset clears the game state and tears down the session
func (s *service) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.ResetGame(ctx); err != nil {
		s.logFailure(ctx, "reset", err)
		return err
	}

	s.session = nil
	if err := s.cache.Delete(ctx); err != nil {
		logger.WarnCtx(ctx, "Failed to drop cached session", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Game reset")

	return nil
}

// Session returns the active session
func (s *service) Session(ctx context.Context) (*Session, error) {
	session, err := s.current(ctx)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, domain.NewNotFoundError("game session", SessionKey)
	}
	return session, nil
}

// Restore drops the in-process session and reloads it
func (s *service) Restore(ctx context.Context) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = nil
	session, err := s.loadSession(ctx)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, nil
	}

	live, err := s.sessionLive(ctx, session)
	if err != nil {
		return nil, err
	}
	if !live {
		logger.WarnCtx(ctx, "Dropping game session whose ledger is gone",
			zap.String("session_id", session.ID),
			zap.Bool("started", session.Started),
		)
		s.session = nil
		if err := s.store.DeleteKeyValue(ctx, SessionKey); err != nil {
			return nil, err
		}
		if err := s.cache.Delete(ctx); err != nil {
			logger.WarnCtx(ctx, "Failed to drop cached session", zap.Error(err))
		}
		return nil, nil
	}

	logger.InfoCtx(ctx, "Game session restored",
		zap.String("session_id", session.ID),
		zap.Bool("started", session.Started),
		zap.Int("turn", session.Position.Turn),
	)
	return session.clone(), nil
}

// sessionLive reports whether the database still holds the rows the session refers to.
// Reloading reference data or re-applying the schema wipes them, while a cached copy may survive.
func (s *service) sessionLive(ctx context.Context, session *Session) (bool, error) {
	version, err := s.store.GetGameVersionByID(ctx, session.GameVersionID)
	if err != nil {
		return false, err
	}
	if version == nil {
		return false, nil
	}

	if !session.Started {
		records, err := s.store.ListOwnership(ctx, store.OwnershipFilter{})
		if err != nil {
			return false, err
		}
		return len(records) > 0, nil
	}

	players, err := s.store.ListPlayers(ctx)
	if err != nil {
		return false, err
	}
	seated := make(map[int64]bool, len(players))
	for _, p := range players {
		if p.TurnOrder != nil {
			seated[p.ID] = true
		}
	}

	netWorths, err := s.store.ListNetWorths(ctx)
	if err != nil {
		return false, err
	}
	seeded := make(map[int64]bool, len(netWorths))
	for _, nw := range netWorths {
		seeded[nw.PlayerID] = true
	}

	for _, seat := range session.Seats {
		if !seated[seat.PlayerID] || !seeded[seat.PlayerID] {
			return false, nil
		}
	}
	return len(session.Seats) > 0, nil
}

// loadSession returns the in-process session, then the cached one, then the persisted one.
// The caller must hold s.mu.
func (s *service) loadSession(ctx context.Context) (*Session, error) {
	if s.session != nil {
		return s.session, nil
	}

	if value, ok, err := s.cache.Get(ctx); err != nil {
		logger.WarnCtx(ctx, "Failed to read cached session", zap.Error(err))
	} else if ok {
		session, err := unmarshalSession(value)
		if err == nil {
			s.session = session
			return session, nil
		}
		logger.WarnCtx(ctx, "Ignoring unreadable cached session", zap.Error(err))
	}

	value, err := s.store.GetKeyValue(ctx, SessionKey)
	if err != nil {
		return nil, err
	}
	if value == "" {
		return nil, nil
	}

	session, err := unmarshalSession(value)
	if err != nil {
		return nil, err
	}
	s.session = session
	if err := s.cache.Set(ctx, value); err != nil {
		logger.WarnCtx(ctx, "Failed to cache session", zap.Error(err))
	}

	return session, nil
}

// current returns a copy of the active session, or nil
func (s *service) current(ctx context.Context) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.loadSession(ctx)
	if err != nil || session == nil {
		return nil, err
	}
	return session.clone(), nil
}

// started returns a copy of the active session once players are registered
func (s *service) started(ctx context.Context) (*Session, error) {
	session, err := s.current(ctx)
	if err != nil {
		return nil, err
	}
	if session == nil || !session.Started {
		return nil, domain.ErrGameNotStarted
	}
	return session, nil
}

func persistSession(ctx context.Context, tx store.Store, session *Session) error {
	value, err := session.marshal()
	if err != nil {
		return err
	}
	return tx.SetKeyValue(ctx, SessionKey, value)
}

// commitSession replaces the in-process session after its transaction committed.
// The caller must hold s.mu.
func (s *service) commitSession(ctx context.Context, session *Session) {
	s.session = session

	value, err := session.marshal()
	if err == nil {
		err = s.cache.Set(ctx, value)
	}
	if err != nil {
		logger.WarnCtx(ctx, "Failed to cache session", zap.Error(err))
	}
}

// logFailure logs rejected calls at info level and everything else as an error
func (s *service) logFailure(ctx context.Context, operation string, err error) {
	if isRejection(err) {
		logger.InfoCtx(ctx, "Game operation rejected",
			zap.String("operation", operation),
			zap.String("reason", err.Error()),
		)
		return
	}
	logger.ErrorCtx(ctx, fmt.Errorf("game %s failed: %w", operation, err))
}

func isRejection(err error) bool {
	return errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, domain.ErrInvalidState) ||
		errors.Is(err, domain.ErrValidation) ||
		errors.Is(err, domain.ErrNotImplemented)
}

// =============================================================================
// Reads
// =============================================================================

// Ownership returns ledger records; available once the game is set up
func (s *service) Ownership(ctx context.Context, filter ledger.Filter) ([]ledger.Record, error) {
	session, err := s.current(ctx)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, errNoGame
	}
	return ledger.New(s.store).List(ctx, filter)
}

// NetWorths returns the current snapshot of every player
func (s *service) NetWorths(ctx context.Context) ([]domain.Snapshot, error) {
	if _, err := s.started(ctx); err != nil {
		return nil, err
	}
	return networth.New(s.store).SnapshotAll(ctx)
}

// NetWorthLog returns logged end-of-turn snapshots
func (s *service) NetWorthLog(ctx context.Context, filter store.NetWorthLogFilter) ([]networth.LogEntry, error) {
	if _, err := s.started(ctx); err != nil {
		return nil, err
	}
	return networth.New(s.store).History(ctx, filter)
}

// Transactions returns the transaction log
func (s *service) Transactions(ctx context.Context, filter store.TransactionFilter) ([]schema.Transaction, uint64, error) {
	if _, err := s.started(ctx); err != nil {
		return nil, 0, err
	}
	return txlog.New(s.store, s.clock).List(ctx, filter)
}

// Audit rebuilds snapshots from the ledger and the transaction log and reports drift
func (s *service) Audit(ctx context.Context) (*networth.Report, error) {
	session, err := s.started(ctx)
	if err != nil {
		return nil, err
	}

	version, err := s.store.GetGameVersionByID(ctx, session.GameVersionID)
	if err != nil {
		return nil, err
	}
	if version == nil {
		return nil, domain.NewNotFoundError("game version", session.GameVersionID)
	}

	opening := map[int64]int64{
		domain.PLAYER_ID_BANK:         domain.StartingCash(version.TotalCash, version.StartingCash, len(session.Seats)),
		domain.PLAYER_ID_FREE_PARKING: 0,
	}
	for _, seat := range session.Seats {
		opening[seat.PlayerID] = version.StartingCash
	}

	transactions, _, err := s.store.ListTransactions(ctx, store.TransactionFilter{})
	if err != nil {
		return nil, err
	}

	report, err := networth.New(s.store).Reconcile(ctx, networth.ReconcileInput{
		OpeningCash:  opening,
		Transactions: transactions,
	})
	if err != nil {
		return nil, err
	}

	if !report.OK() {
		logger.WarnCtx(ctx, "Net worth snapshots drifted from the ledger",
			zap.String("session_id", session.ID),
			zap.Int("mismatches", len(report.Mismatches)),
			zap.Any("details", report.Mismatches),
		)
	}

	return report, nil
}
