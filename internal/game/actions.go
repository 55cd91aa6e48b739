package game

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/cedrichille/monopoly-companion-app/internal/domain"
	"github.com/cedrichille/monopoly-companion-app/internal/ledger"
	"github.com/cedrichille/monopoly-companion-app/internal/logger"
	"github.com/cedrichille/monopoly-companion-app/internal/networth"
	"github.com/cedrichille/monopoly-companion-app/internal/store"
	"github.com/cedrichille/monopoly-companion-app/internal/store/schema"
	"github.com/cedrichille/monopoly-companion-app/internal/turn"
	"github.com/cedrichille/monopoly-companion-app/internal/txlog"
)

// action is the transaction-scoped view a handler works on
type action struct {
	session *Session
	seat    turn.Seat
	version *schema.GameVersion
	ledger  *ledger.Ledger
	worth   *networth.Engine
	log     *txlog.Log
}

type handler func(ctx context.Context, a *action) (*ActionResult, error)

// act runs a handler for the current player inside one transaction.
// Ledger, net worth and transaction log writes commit together or not at all.
func (s *service) act(ctx context.Context, code domain.ActionType, fn handler) (*ActionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.loadSession(ctx)
	if err != nil {
		return nil, err
	}
	if session == nil || !session.Started {
		return nil, domain.ErrGameNotStarted
	}
	seat, err := session.CurrentSeat()
	if err != nil {
		return nil, err
	}

	var result *ActionResult
	err = s.store.WithTx(ctx, func(tx store.Store) error {
		version, err := tx.GetGameVersionByID(ctx, session.GameVersionID)
		if err != nil {
			return err
		}
		if version == nil {
			return domain.NewNotFoundError("game version", session.GameVersionID)
		}

		a := &action{
			session: session,
			seat:    seat,
			version: version,
			ledger:  ledger.New(tx),
			worth:   networth.New(tx),
			log:     txlog.New(tx, s.clock),
		}
		result, err = fn(ctx, a)
		if err != nil {
			return err
		}

		result.Snapshots, err = a.worth.SnapshotAll(ctx)
		return err
	})
	if err != nil {
		s.logFailure(ctx, string(code), err)
		return nil, err
	}

	fields := []zap.Field{
		zap.String("action", string(result.Action)),
		zap.String("ref", result.Ref),
		zap.Int("turn", result.Turn),
		zap.Int64("player_id", result.PlayerID),
		zap.Int64("counterparty_id", result.CounterpartyID),
		zap.Int64("amount", result.Amount),
	}
	if result.PropertyID != nil {
		fields = append(fields, zap.Int64("property_id", *result.PropertyID))
	}
	logger.InfoCtx(ctx, "Action applied", fields...)

	return result, nil
}

// move applies a delta to the acting player and its inverse to the counterparty.
// A nil counterparty leaves the amount out of circulation.
func (a *action) move(ctx context.Context, delta domain.Delta, counterparty *domain.Delta, counterpartyID int64) error {
	if err := a.worth.ApplyDelta(ctx, a.seat.PlayerID, a.session.Position.Turn, delta); err != nil {
		return err
	}
	if counterparty == nil {
		return nil
	}
	return a.worth.ApplyDelta(ctx, counterpartyID, a.session.Position.Turn, *counterparty)
}

// requireCash rejects a voluntary payment the acting player cannot afford
func (a *action) requireCash(ctx context.Context, amount int64) error {
	snapshot, err := a.worth.Get(ctx, a.seat.PlayerID)
	if err != nil {
		return err
	}
	if snapshot.CashBalance < amount {
		return fmt.Errorf("%w: need %d, have %d", domain.ErrInsufficientCash, amount, snapshot.CashBalance)
	}
	return nil
}

// owned returns the ledger record of a property held by the acting player
func (a *action) owned(ctx context.Context, propertyID int64) (*ledger.Record, error) {
	record, err := a.ledger.Get(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if record.OwnerID != a.seat.PlayerID {
		return nil, domain.NewInvalidStateError("%s is not owned by %s", record.Property.Name, a.seat.Name)
	}
	return record, nil
}

// record appends the transaction row and builds the handler result from it
func (a *action) record(ctx context.Context, entry txlog.Entry, amount int64) (*ActionResult, error) {
	entry.Turn = a.session.Position.Turn
	entry.PlayerID = a.seat.PlayerID

	tx, err := a.log.Record(ctx, entry)
	if err != nil {
		return nil, err
	}

	return &ActionResult{
		Action:         entry.Action,
		Ref:            tx.Ref,
		Turn:           tx.Turn,
		PlayerID:       tx.PlayerID,
		CounterpartyID: tx.CounterpartyID,
		PropertyID:     tx.PropertyID,
		Amount:         amount,
	}, nil
}

// =============================================================================
// Handlers
// =============================================================================

// Purchase buys a Bank-owned property for the current player
func (s *service) Purchase(ctx context.Context, input PropertyInput) (*ActionResult, error) {
	return s.act(ctx, domain.ActionTypePurchaseProperty, func(ctx context.Context, a *action) (*ActionResult, error) {
		record, err := a.ledger.Get(ctx, input.PropertyID)
		if err != nil {
			return nil, err
		}
		if record.OwnerID != domain.PLAYER_ID_BANK {
			return nil, domain.NewInvalidStateError("%s is already owned by player %d",
				record.Property.Name, record.OwnerID)
		}

		price := record.Property.Price
		if err := a.requireCash(ctx, price); err != nil {
			return nil, err
		}

		if err := a.ledger.Transfer(ctx, record.PropertyID, domain.PLAYER_ID_BANK, a.seat.PlayerID); err != nil {
			return nil, err
		}
		if err := a.ledger.RecomputeGroupCounts(ctx); err != nil {
			return nil, err
		}

		delta := domain.Delta{Cash: -price, NetProperty: price, GrossProperty: price}
		bank := delta.Inverse()
		if err := a.move(ctx, delta, &bank, domain.PLAYER_ID_BANK); err != nil {
			return nil, err
		}

		return a.record(ctx, txlog.Entry{
			CounterpartyID: domain.PLAYER_ID_BANK,
			Action:         domain.ActionTypePurchaseProperty,
			PropertyID:     &record.PropertyID,
			CashPaid:       price,
			AssetReceived:  price,
		}, price)
	})
}

// Rent charges the current player rent on a property owned by someone else
func (s *service) Rent(ctx context.Context, input RentInput) (*ActionResult, error) {
	if input.DiceRoll != 0 && (input.DiceRoll < domain.MIN_DICE_ROLL || input.DiceRoll > domain.MAX_DICE_ROLL) {
		return nil, domain.NewValidationError("dice_roll",
			fmt.Sprintf("Dice roll must be between %d and %d", domain.MIN_DICE_ROLL, domain.MAX_DICE_ROLL))
	}

	return s.act(ctx, domain.ActionTypeRent, func(ctx context.Context, a *action) (*ActionResult, error) {
		record, err := a.ledger.Get(ctx, input.PropertyID)
		if err != nil {
			return nil, err
		}
		if record.OwnerID == a.seat.PlayerID {
			return nil, domain.NewInvalidStateError("%s cannot pay rent on their own property %s",
				a.seat.Name, record.Property.Name)
		}

		rent, err := domain.ComputeRent(record.RentInput(input.DiceRoll))
		if err != nil {
			return nil, err
		}

		if rent.Amount > 0 {
			owner := domain.Delta{Cash: rent.Amount}
			if err := a.move(ctx, domain.Delta{Cash: -rent.Amount}, &owner, record.OwnerID); err != nil {
				return nil, err
			}
		}

		details := map[string]interface{}{"tier": rent.Tier}
		if record.Property.Type == domain.PropertyTypeUtility && input.DiceRoll > 0 {
			details["dice_roll"] = input.DiceRoll
		}

		result, err := a.record(ctx, txlog.Entry{
			CounterpartyID: record.OwnerID,
			Action:         domain.ActionTypeRent,
			PropertyID:     &record.PropertyID,
			CashPaid:       rent.Amount,
			Details:        details,
		}, rent.Amount)
		if err != nil {
			return nil, err
		}
		result.Rent = &rent
		return result, nil
	})
}

// PassGo pays the Go value to the current player, doubled for landing on Go under the double-Go rule
func (s *service) PassGo(ctx context.Context, input PassGoInput) (*ActionResult, error) {
	return s.act(ctx, domain.ActionTypeGo, func(ctx context.Context, a *action) (*ActionResult, error) {
		amount := a.version.GoValue
		doubled := input.Landed && a.session.Rules.DoubleGo
		if doubled {
			amount *= 2
		}

		bank := domain.Delta{Cash: -amount}
		if err := a.move(ctx, domain.Delta{Cash: amount}, &bank, domain.PLAYER_ID_BANK); err != nil {
			return nil, err
		}

		return a.record(ctx, txlog.Entry{
			CounterpartyID: domain.PLAYER_ID_BANK,
			Action:         domain.ActionTypeGo,
			CashReceived:   amount,
			Details: map[string]interface{}{
				"landed":  input.Landed,
				"doubled": doubled,
			},
		}, amount)
	})
}

// Build adds a house to a street, or a hotel once four houses stand on it
func (s *service) Build(ctx context.Context, input PropertyInput) (*ActionResult, error) {
	return s.act(ctx, domain.ActionTypeBuild, func(ctx context.Context, a *action) (*ActionResult, error) {
		record, err := a.owned(ctx, input.PropertyID)
		if err != nil {
			return nil, err
		}

		name := record.Property.Name
		switch {
		case record.Property.Type != domain.PropertyTypeStreet:
			return nil, domain.NewInvalidStateError("only streets can be built on, %s is a %s", name, record.Property.Type)
		case !record.IsMonopoly():
			return nil, domain.NewInvalidStateError("%s needs the whole %s group before building", a.seat.Name, record.Property.Group)
		case record.Hotel:
			return nil, domain.NewInvalidStateError("%s already has a hotel", name)
		case record.Property.HouseCost <= 0:
			return nil, domain.NewInvalidStateError("%s has no house cost", name)
		}

		group, err := a.ledger.List(ctx, ledger.Filter{OwnerID: &a.seat.PlayerID, Group: &record.Property.Group})
		if err != nil {
			return nil, err
		}
		for _, r := range group {
			if r.Mortgaged {
				return nil, domain.NewInvalidStateError("%s is mortgaged; lift it before building in the %s group",
					r.Property.Name, record.Property.Group)
			}
		}

		cost := record.Property.HouseCost
		if err := a.requireCash(ctx, cost); err != nil {
			return nil, err
		}

		houses, hotel := record.Houses+1, false
		if record.Houses == domain.MAX_HOUSES {
			houses, hotel = 0, true
		}
		if err := a.ledger.SetImprovements(ctx, *record, houses, hotel); err != nil {
			return nil, err
		}

		// Building cost leaves circulation; the Bank is not credited
		if err := a.move(ctx, domain.Delta{Cash: -cost, Improvement: cost}, nil, 0); err != nil {
			return nil, err
		}

		return a.record(ctx, txlog.Entry{
			CounterpartyID: domain.PLAYER_ID_BANK,
			Action:         domain.ActionTypeBuild,
			PropertyID:     &record.PropertyID,
			CashPaid:       cost,
			AssetReceived:  cost,
			Details: map[string]interface{}{
				"houses": houses,
				"hotel":  hotel,
			},
		}, cost)
	})
}

// Mortgage mortgages an unimproved property to the Bank
func (s *service) Mortgage(ctx context.Context, input PropertyInput) (*ActionResult, error) {
	return s.act(ctx, domain.ActionTypeMortgage, func(ctx context.Context, a *action) (*ActionResult, error) {
		record, err := a.owned(ctx, input.PropertyID)
		if err != nil {
			return nil, err
		}
		if record.Mortgaged {
			return nil, domain.NewInvalidStateError("%s is already mortgaged", record.Property.Name)
		}
		if record.HasImprovements() {
			return nil, domain.NewInvalidStateError("%s has buildings and cannot be mortgaged", record.Property.Name)
		}

		if err := a.ledger.SetMortgaged(ctx, *record, true); err != nil {
			return nil, err
		}

		mortgage := record.Property.MortgageValue
		given := record.Property.Price - mortgage
		bank := domain.Delta{Cash: -mortgage}
		if err := a.move(ctx, domain.Delta{Cash: mortgage, NetProperty: -given}, &bank, domain.PLAYER_ID_BANK); err != nil {
			return nil, err
		}

		return a.record(ctx, txlog.Entry{
			CounterpartyID: domain.PLAYER_ID_BANK,
			Action:         domain.ActionTypeMortgage,
			PropertyID:     &record.PropertyID,
			CashReceived:   mortgage,
			AssetPaid:      given,
		}, mortgage)
	})
}

// Unmortgage lifts a mortgage; the player pays the mortgage value plus interest
func (s *service) Unmortgage(ctx context.Context, input PropertyInput) (*ActionResult, error) {
	return s.act(ctx, domain.ActionTypeUnmortgage, func(ctx context.Context, a *action) (*ActionResult, error) {
		record, err := a.owned(ctx, input.PropertyID)
		if err != nil {
			return nil, err
		}
		if !record.Mortgaged {
			return nil, domain.NewInvalidStateError("%s is not mortgaged", record.Property.Name)
		}

		mortgage := record.Property.MortgageValue
		cost := domain.UnmortgageCost(mortgage)
		if err := a.requireCash(ctx, cost); err != nil {
			return nil, err
		}

		if err := a.ledger.SetMortgaged(ctx, *record, false); err != nil {
			return nil, err
		}

		regained := record.Property.Price - mortgage
		bank := domain.Delta{Cash: cost}
		if err := a.move(ctx, domain.Delta{Cash: -cost, NetProperty: regained}, &bank, domain.PLAYER_ID_BANK); err != nil {
			return nil, err
		}

		return a.record(ctx, txlog.Entry{
			CounterpartyID: domain.PLAYER_ID_BANK,
			Action:         domain.ActionTypeUnmortgage,
			PropertyID:     &record.PropertyID,
			CashPaid:       cost,
			AssetReceived:  regained,
			Details:        map[string]interface{}{"interest": cost - mortgage},
		}, cost)
	})
}

// Tax charges income or luxury tax, paid into Free Parking under the jackpot rule
func (s *service) Tax(ctx context.Context, input TaxInput) (*ActionResult, error) {
	if !domain.IsValidTaxKind(input.Kind) {
		return nil, domain.NewValidationError("kind", fmt.Sprintf("Unknown tax %q", input.Kind))
	}

	return s.act(ctx, domain.ActionTypeTax, func(ctx context.Context, a *action) (*ActionResult, error) {
		amount := a.version.IncomeTax
		if input.Kind == domain.TaxKindLuxury {
			amount = a.version.LuxuryTax
		}

		recipient := domain.PLAYER_ID_BANK
		if a.session.Rules.FreeParkingJackpot {
			recipient = domain.PLAYER_ID_FREE_PARKING
		}

		collected := domain.Delta{Cash: amount}
		if err := a.move(ctx, domain.Delta{Cash: -amount}, &collected, recipient); err != nil {
			return nil, err
		}

		return a.record(ctx, txlog.Entry{
			CounterpartyID: recipient,
			Action:         domain.ActionTypeTax,
			CashPaid:       amount,
			Details:        map[string]interface{}{"kind": input.Kind},
		}, amount)
	})
}

// SpecialField resolves a special square. Free Parking pays out its pot under the jackpot rule;
// card squares are not modelled.
func (s *service) SpecialField(ctx context.Context, input SpecialFieldInput) (*ActionResult, error) {
	if !domain.IsValidSpecialFieldKind(input.Kind) {
		return nil, domain.NewValidationError("kind", fmt.Sprintf("Unknown special field %q", input.Kind))
	}

	return s.act(ctx, domain.ActionTypeSpecialField, func(ctx context.Context, a *action) (*ActionResult, error) {
		if input.Kind != domain.SpecialFieldFreeParking {
			return nil, fmt.Errorf("%w: %s", domain.ErrNotImplemented, input.Kind)
		}

		var pot int64
		if a.session.Rules.FreeParkingJackpot {
			snapshot, err := a.worth.Get(ctx, domain.PLAYER_ID_FREE_PARKING)
			if err != nil {
				return nil, err
			}
			pot = max(snapshot.CashBalance, 0)
		}

		if pot > 0 {
			paid := domain.Delta{Cash: -pot}
			if err := a.move(ctx, domain.Delta{Cash: pot}, &paid, domain.PLAYER_ID_FREE_PARKING); err != nil {
				return nil, err
			}
		}

		return a.record(ctx, txlog.Entry{
			CounterpartyID: domain.PLAYER_ID_FREE_PARKING,
			Action:         domain.ActionTypeSpecialField,
			CashReceived:   pot,
			Details:        map[string]interface{}{"kind": input.Kind},
		}, pot)
	})
}

// Jail is not modelled
func (s *service) Jail(ctx context.Context) (*ActionResult, error) {
	if _, err := s.started(ctx); err != nil {
		return nil, err
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrNotImplemented, domain.ActionTypeJail)
}

// Trade is not modelled
func (s *service) Trade(ctx context.Context, input TradeInput) (*ActionResult, error) {
	if _, err := s.started(ctx); err != nil {
		return nil, err
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrNotImplemented, domain.ActionTypeTradeProperty)
}
