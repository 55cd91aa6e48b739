package dto

import (
	"fmt"
	"strings"

	"github.com/cedrichille/monopoly-companion-app/internal/api/shared/constants"
	apierrors "github.com/cedrichille/monopoly-companion-app/internal/api/shared/errors"
	"github.com/cedrichille/monopoly-companion-app/internal/domain"
	"github.com/cedrichille/monopoly-companion-app/internal/game"
)

// SetupGameRequest represents the request body for setting up a game
type SetupGameRequest struct {
	GameVersion        string `json:"game_version"`
	PlayerCount        int    `json:"player_count"`
	DoubleGo           bool   `json:"double_go"`
	FreeParkingJackpot bool   `json:"free_parking_jackpot"`
}

// Validate validates the request body
func (r *SetupGameRequest) Validate() error {
	if strings.TrimSpace(r.GameVersion) == "" {
		return apierrors.NewValidationError("game_version is required")
	}

	if r.PlayerCount < 1 || r.PlayerCount > constants.MAX_PLAYER_NAMES {
		return apierrors.NewValidationError(fmt.Sprintf("player_count must be between 1 and %d", constants.MAX_PLAYER_NAMES))
	}

	return nil
}

// Input converts the request into game setup input
func (r *SetupGameRequest) Input() game.SetupInput {
	return game.SetupInput{
		GameVersion: strings.TrimSpace(r.GameVersion),
		PlayerCount: r.PlayerCount,
		Rules: game.Rules{
			DoubleGo:           r.DoubleGo,
			FreeParkingJackpot: r.FreeParkingJackpot,
		},
	}
}

// RegisterPlayersRequest represents the request body for registering players in turn order
type RegisterPlayersRequest struct {
	Names []string `json:"names"`
}

// Validate validates the request body. Count and blank names are checked by the game.
func (r *RegisterPlayersRequest) Validate() error {
	if len(r.Names) == 0 {
		return apierrors.NewValidationError("names is required")
	}

	if len(r.Names) > constants.MAX_PLAYER_NAMES {
		return apierrors.NewValidationError(fmt.Sprintf("maximum %d players allowed", constants.MAX_PLAYER_NAMES))
	}

	for i, name := range r.Names {
		if len(strings.TrimSpace(name)) > constants.MAX_PLAYER_NAME_LENGTH {
			return apierrors.NewValidationError(fmt.Sprintf("Player %d name is longer than %d characters", i+1, constants.MAX_PLAYER_NAME_LENGTH))
		}
	}

	return nil
}

// PropertyActionRequest represents the request body for purchase, build, mortgage and unmortgage
type PropertyActionRequest struct {
	PropertyID int64 `json:"property_id"`
}

// Validate validates the request body
func (r *PropertyActionRequest) Validate() error {
	if r.PropertyID <= 0 {
		return apierrors.NewValidationError("property_id is required")
	}
	return nil
}

// RentRequest represents the request body for charging rent
type RentRequest struct {
	PropertyID int64 `json:"property_id"`
	DiceRoll   int   `json:"dice_roll,omitempty"`
}

// Validate validates the request body. The dice roll range is checked by the game.
func (r *RentRequest) Validate() error {
	if r.PropertyID <= 0 {
		return apierrors.NewValidationError("property_id is required")
	}
	return nil
}

// PassGoRequest represents the request body for passing or landing on Go
type PassGoRequest struct {
	Landed bool `json:"landed"`
}

// TaxRequest represents the request body for a tax square
type TaxRequest struct {
	Kind domain.TaxKind `json:"kind"`
}

// Validate validates the request body
func (r *TaxRequest) Validate() error {
	if !domain.IsValidTaxKind(r.Kind) {
		return apierrors.NewValidationError(fmt.Sprintf("invalid tax kind: %q. Must be income or luxury", r.Kind))
	}
	return nil
}

// SpecialFieldRequest represents the request body for a special square
type SpecialFieldRequest struct {
	Kind domain.SpecialFieldKind `json:"kind"`
}

// Validate validates the request body
func (r *SpecialFieldRequest) Validate() error {
	if !domain.IsValidSpecialFieldKind(r.Kind) {
		return apierrors.NewValidationError(fmt.Sprintf("invalid special field kind: %q", r.Kind))
	}
	return nil
}

// TradeRequest represents the request body for a property sale between players
type TradeRequest struct {
	PropertyID     int64 `json:"property_id"`
	CounterpartyID int64 `json:"counterparty_id"`
	Price          int64 `json:"price"`
}

// Validate validates the request body
func (r *TradeRequest) Validate() error {
	if r.PropertyID <= 0 {
		return apierrors.NewValidationError("property_id is required")
	}
	if r.CounterpartyID <= 0 || domain.IsReservedPlayer(r.CounterpartyID) {
		return apierrors.NewValidationError("counterparty_id must be a registered player")
	}
	if r.Price < 0 {
		return apierrors.NewValidationError("price must not be negative")
	}
	return nil
}
