package game

import (
	"context"

	"go.uber.org/zap"

	"github.com/cedrichille/monopoly-companion-app/internal/domain"
	"github.com/cedrichille/monopoly-companion-app/internal/logger"
	"github.com/cedrichille/monopoly-companion-app/internal/networth"
	"github.com/cedrichille/monopoly-companion-app/internal/store"
	"github.com/cedrichille/monopoly-companion-app/internal/turn"
)

// EndTurn hands over to the next player. When the last player hands back to the first,
// every snapshot is logged under the turn that just completed.
func (s *service) EndTurn(ctx context.Context) (*TurnResult, error) {
	return s.moveTurn(ctx, "end_turn", func(seq *turn.Sequencer, p turn.Position) (turn.Position, bool, error) {
		next, wrapped := seq.Advance(p)
		return next, wrapped, nil
	})
}

// UndoTurn hands back to the previous player. Logged net worth rows are kept.
func (s *service) UndoTurn(ctx context.Context) (*TurnResult, error) {
	return s.moveTurn(ctx, "undo_turn", func(seq *turn.Sequencer, p turn.Position) (turn.Position, bool, error) {
		prev, err := seq.Retreat(p)
		return prev, false, err
	})
}

type step func(seq *turn.Sequencer, p turn.Position) (next turn.Position, completed bool, err error)

func (s *service) moveTurn(ctx context.Context, operation string, fn step) (*TurnResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.loadSession(ctx)
	if err != nil {
		return nil, err
	}
	if current == nil || !current.Started {
		return nil, domain.ErrGameNotStarted
	}

	seq, err := current.Sequencer()
	if err != nil {
		return nil, err
	}
	next, completed, err := fn(seq, current.Position)
	if err != nil {
		s.logFailure(ctx, operation, err)
		return nil, err
	}

	session := current.clone()
	session.Position = next
	seat, err := session.CurrentSeat()
	if err != nil {
		return nil, err
	}

	result := &TurnResult{
		Previous:      current.Position,
		Position:      next,
		CurrentPlayer: seat,
		TurnCompleted: completed,
	}

	err = s.store.WithTx(ctx, func(tx store.Store) error {
		if completed {
			logged, err := networth.New(tx).LogTurn(ctx, current.Position.Turn)
			if err != nil {
				return err
			}
			result.Logged = logged
		}
		return persistSession(ctx, tx, session)
	})
	if err != nil {
		s.logFailure(ctx, operation, err)
		return nil, err
	}

	s.commitSession(ctx, session)

	fields := []zap.Field{
		zap.String("operation", operation),
		zap.Int("turn", next.Turn),
		zap.Int("order", next.Order),
		zap.Int64("player_id", seat.PlayerID),
	}
	if completed {
		fields = append(fields, zap.Int("logged_turn", current.Position.Turn), zap.Int("logged", result.Logged))
	}
	if next.Turn < current.Position.Turn {
		logger.WarnCtx(ctx, "Turn undone across a logged turn boundary; the net worth log keeps its rows", fields...)
	} else {
		logger.InfoCtx(ctx, "Turn changed", fields...)
	}

	return result, nil
}
