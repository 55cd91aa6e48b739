// Package turn sequences players through turns.
package turn

import (
	"sort"

	"github.com/cedrichille/monopoly-companion-app/internal/domain"
)

// Position is whose move it is within which turn
type Position struct {
	// Order is the 1-based turn order of the current player
	Order int `json:"order"`
	// Turn counts full cycles through every player, starting at 1
	Turn int `json:"turn"`
}

// Start is the position of a freshly registered game
var Start = Position{Order: 1, Turn: 1}

// Sequencer moves a Position forward and backward for a fixed number of players
type Sequencer struct {
	players int
}

// NewSequencer creates a sequencer for the given number of players
func NewSequencer(players int) (*Sequencer, error) {
	if players < 1 {
		return nil, domain.NewValidationError("player_count", "At least one player is required")
	}
	return &Sequencer{players: players}, nil
}

// Advance moves to the next player. When the last player hands over, the order wraps to 1
// and the turn counter increments; wrapped is true in that case.
func (s *Sequencer) Advance(p Position) (next Position, wrapped bool) {
	if p.Order >= s.players {
		return Position{Order: 1, Turn: p.Turn + 1}, true
	}
	return Position{Order: p.Order + 1, Turn: p.Turn}, false
}

// Retreat is the inverse of Advance for order and turn. It does not touch anything Advance logged.
func (s *Sequencer) Retreat(p Position) (Position, error) {
	if p.Order <= 1 {
		if p.Turn <= 1 {
			return p, domain.NewInvalidStateError("cannot go back before the first turn")
		}
		return Position{Order: s.players, Turn: p.Turn - 1}, nil
	}
	return Position{Order: p.Order - 1, Turn: p.Turn}, nil
}

// Seat is a registered player and their place in the turn order
type Seat struct {
	Order    int    `json:"order"`
	PlayerID int64  `json:"player_id"`
	Name     string `json:"name"`
}

// Roster maps turn orders to players and back. Both directions are injective.
type Roster struct {
	seats    []Seat
	byOrder  map[int]Seat
	byPlayer map[int64]Seat
}

// NewRoster validates that orders are exactly 1..N and player ids unique
func NewRoster(seats []Seat) (*Roster, error) {
	r := &Roster{
		seats:    make([]Seat, len(seats)),
		byOrder:  make(map[int]Seat, len(seats)),
		byPlayer: make(map[int64]Seat, len(seats)),
	}
	copy(r.seats, seats)
	sort.Slice(r.seats, func(i, j int) bool { return r.seats[i].Order < r.seats[j].Order })

	for i, seat := range r.seats {
		if seat.Order != i+1 {
			return nil, domain.NewInvalidStateError("turn order must run from 1 to %d without gaps", len(seats))
		}
		if domain.IsReservedPlayer(seat.PlayerID) {
			return nil, domain.NewInvalidStateError("player %d cannot take a turn", seat.PlayerID)
		}
		if _, ok := r.byPlayer[seat.PlayerID]; ok {
			return nil, domain.NewInvalidStateError("player %d holds more than one turn order", seat.PlayerID)
		}
		r.byOrder[seat.Order] = seat
		r.byPlayer[seat.PlayerID] = seat
	}

	return r, nil
}

// Len returns the number of seated players
func (r *Roster) Len() int {
	return len(r.seats)
}

// Seats returns the seats in turn order
func (r *Roster) Seats() []Seat {
	out := make([]Seat, len(r.seats))
	copy(out, r.seats)
	return out
}

// At returns the seat holding a turn order
func (r *Roster) At(order int) (Seat, error) {
	seat, ok := r.byOrder[order]
	if !ok {
		return Seat{}, domain.NewNotFoundError("turn order", order)
	}
	return seat, nil
}

// OrderOf returns the turn order of a player
func (r *Roster) OrderOf(playerID int64) (int, error) {
	seat, ok := r.byPlayer[playerID]
	if !ok {
		return 0, domain.NewNotFoundError("player", playerID)
	}
	return seat.Order, nil
}

// Has reports whether the player is seated
func (r *Roster) Has(playerID int64) bool {
	_, ok := r.byPlayer[playerID]
	return ok
}
