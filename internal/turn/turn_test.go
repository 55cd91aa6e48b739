package turn

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cedrichille/monopoly-companion-app/internal/domain"
)

func TestNewSequencer(t *testing.T) {
	_, err := NewSequencer(0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidation))
}

func TestSequencer_Advance(t *testing.T) {
	tests := []struct {
		name     string
		players  int
		from     Position
		expected Position
		wrapped  bool
	}{
		{"next player", 4, Position{Order: 1, Turn: 1}, Position{Order: 2, Turn: 1}, false},
		{"last player wraps", 4, Position{Order: 4, Turn: 1}, Position{Order: 1, Turn: 2}, true},
		{"single player always wraps", 1, Position{Order: 1, Turn: 3}, Position{Order: 1, Turn: 4}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSequencer(tt.players)
			require.NoError(t, err)

			next, wrapped := s.Advance(tt.from)
			assert.Equal(t, tt.expected, next)
			assert.Equal(t, tt.wrapped, wrapped)
		})
	}
}

func TestSequencer_FullCycle(t *testing.T) {
	for players := 1; players <= 8; players++ {
		s, err := NewSequencer(players)
		require.NoError(t, err)

		p := Start
		wraps := 0
		for i := 0; i < players; i++ {
			var wrapped bool
			p, wrapped = s.Advance(p)
			if wrapped {
				wraps++
			}
		}

		assert.Equal(t, Position{Order: 1, Turn: 2}, p, "players=%d", players)
		assert.Equal(t, 1, wraps, "players=%d", players)
	}
}

func TestSequencer_RetreatInvertsAdvance(t *testing.T) {
	s, err := NewSequencer(3)
	require.NoError(t, err)

	p := Start
	for i := 0; i < 10; i++ {
		next, _ := s.Advance(p)
		back, err := s.Retreat(next)
		require.NoError(t, err)
		assert.Equal(t, p, back)
		p = next
	}
}

func TestSequencer_RetreatBeforeFirstTurn(t *testing.T) {
	s, err := NewSequencer(3)
	require.NoError(t, err)

	p, err := s.Retreat(Start)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidState))
	assert.Equal(t, Start, p)
}

func TestNewRoster(t *testing.T) {
	t.Run("orders and players map both ways", func(t *testing.T) {
		r, err := NewRoster([]Seat{
			{Order: 2, PlayerID: 4, Name: "Bob"},
			{Order: 1, PlayerID: 3, Name: "Alice"},
		})
		require.NoError(t, err)
		assert.Equal(t, 2, r.Len())

		seat, err := r.At(2)
		require.NoError(t, err)
		assert.Equal(t, "Bob", seat.Name)

		order, err := r.OrderOf(3)
		require.NoError(t, err)
		assert.Equal(t, 1, order)

		assert.Equal(t, "Alice", r.Seats()[0].Name)
		assert.True(t, r.Has(4))
		assert.False(t, r.Has(5))

		_, err = r.At(3)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
		_, err = r.OrderOf(9)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})

	tests := []struct {
		name  string
		seats []Seat
	}{
		{"gap in orders", []Seat{{Order: 1, PlayerID: 3}, {Order: 3, PlayerID: 4}}},
		{"duplicate order", []Seat{{Order: 1, PlayerID: 3}, {Order: 1, PlayerID: 4}}},
		{"duplicate player", []Seat{{Order: 1, PlayerID: 3}, {Order: 2, PlayerID: 3}}},
		{"reserved player", []Seat{{Order: 1, PlayerID: domain.PLAYER_ID_BANK}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRoster(tt.seats)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrInvalidState))
		})
	}
}
