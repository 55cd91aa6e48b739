package game

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/cedrichille/monopoly-companion-app/internal/domain"
	"github.com/cedrichille/monopoly-companion-app/internal/store"
	"github.com/cedrichille/monopoly-companion-app/internal/turn"
)

// SessionKey is the key_value_store key holding the active session
const SessionKey = store.SessionKey

// Rules are the house rules chosen at setup
type Rules struct {
	// DoubleGo pays twice the Go value when a player lands exactly on Go
	DoubleGo bool `json:"double_go"`
	// FreeParkingJackpot sends taxes to Free Parking; landing there collects the pot
	FreeParkingJackpot bool `json:"free_parking_jackpot"`
}

// Session is the active game: built at setup, started at registration, torn down at reset.
// It is passed explicitly into every action and persisted with each turn change.
type Session struct {
	ID              string        `json:"id"`
	GameVersionID   int64         `json:"game_version_id"`
	GameVersionName string        `json:"game_version_name"`
	PlayerCount     int           `json:"player_count"`
	Rules           Rules         `json:"rules"`
	Started         bool          `json:"started"`
	Position        turn.Position `json:"position"`
	Seats           []turn.Seat   `json:"seats"`
	CreatedAt       time.Time     `json:"created_at"`
}

// Roster builds the order/player map of the seated players
func (s *Session) Roster() (*turn.Roster, error) {
	return turn.NewRoster(s.Seats)
}

// Sequencer returns the turn sequencer for the session's player count
func (s *Session) Sequencer() (*turn.Sequencer, error) {
	return turn.NewSequencer(s.PlayerCount)
}

// CurrentSeat returns the player whose move it is
func (s *Session) CurrentSeat() (turn.Seat, error) {
	if !s.Started {
		return turn.Seat{}, domain.ErrGameNotStarted
	}
	roster, err := s.Roster()
	if err != nil {
		return turn.Seat{}, err
	}
	return roster.At(s.Position.Order)
}

func (s *Session) clone() *Session {
	c := *s
	c.Seats = make([]turn.Seat, len(s.Seats))
	copy(c.Seats, s.Seats)
	return &c
}

func (s *Session) marshal() (string, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("failed to marshal game session: %w", err)
	}
	return string(raw), nil
}

func unmarshalSession(value string) (*Session, error) {
	var s Session
	if err := json.Unmarshal([]byte(value), &s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game session: %w", err)
	}
	return &s, nil
}
