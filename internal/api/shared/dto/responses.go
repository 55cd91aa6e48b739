package dto

import (
	"encoding/json"
	"time"

	"github.com/cedrichille/monopoly-companion-app/internal/domain"
	"github.com/cedrichille/monopoly-companion-app/internal/game"
	"github.com/cedrichille/monopoly-companion-app/internal/ledger"
	"github.com/cedrichille/monopoly-companion-app/internal/refdata"
	"github.com/cedrichille/monopoly-companion-app/internal/store/schema"
	"github.com/cedrichille/monopoly-companion-app/internal/turn"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Game    bool   `json:"game"`
}

// GameVersionResponse represents a game edition
type GameVersionResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	TotalCash    int64  `json:"total_cash"`
	StartingCash int64  `json:"starting_cash"`
	GoValue      int64  `json:"go_value"`
	IncomeTax    int64  `json:"income_tax"`
	LuxuryTax    int64  `json:"luxury_tax"`
}

// MapGameVersionToDTO maps a schema.GameVersion to GameVersionResponse
func MapGameVersionToDTO(v schema.GameVersion) GameVersionResponse {
	return GameVersionResponse{
		ID:           v.ID,
		Name:         v.Name,
		TotalCash:    v.TotalCash,
		StartingCash: v.StartingCash,
		GoValue:      v.GoValue,
		IncomeTax:    v.IncomeTax,
		LuxuryTax:    v.LuxuryTax,
	}
}

// PropertyResponse represents a property definition
type PropertyResponse struct {
	ID            int64               `json:"id"`
	GameVersionID int64               `json:"game_version_id"`
	Name          string              `json:"name"`
	Group         string              `json:"group"`
	Type          domain.PropertyType `json:"type"`
	Price         int64               `json:"price"`
	MortgageValue int64               `json:"mortgage_value"`
	HouseCost     int64               `json:"house_cost"`
	Rent          domain.RentSchedule `json:"rent"`
}

// MapPropertyToDTO maps a schema.Property to PropertyResponse
func MapPropertyToDTO(p schema.Property) PropertyResponse {
	return PropertyResponse{
		ID:            p.ID,
		GameVersionID: p.GameVersionID,
		Name:          p.Name,
		Group:         p.Group,
		Type:          p.Type,
		Price:         p.Price,
		MortgageValue: p.MortgageValue,
		HouseCost:     p.HouseCost,
		Rent:          p.Rent,
	}
}

// PropertyListResponse represents the properties of a game version
type PropertyListResponse struct {
	Items []PropertyResponse `json:"items"`
}

// SessionResponse represents the active game
type SessionResponse struct {
	ID              string        `json:"id"`
	GameVersionID   int64         `json:"game_version_id"`
	GameVersionName string        `json:"game_version_name"`
	PlayerCount     int           `json:"player_count"`
	Rules           game.Rules    `json:"rules"`
	Started         bool          `json:"started"`
	Position        turn.Position `json:"position"`
	Players         []turn.Seat   `json:"players"`
	CurrentPlayer   *turn.Seat    `json:"current_player,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
}

// MapSessionToDTO maps a game.Session to SessionResponse
func MapSessionToDTO(s *game.Session) *SessionResponse {
	dto := &SessionResponse{
		ID:              s.ID,
		GameVersionID:   s.GameVersionID,
		GameVersionName: s.GameVersionName,
		PlayerCount:     s.PlayerCount,
		Rules:           s.Rules,
		Started:         s.Started,
		Position:        s.Position,
		Players:         s.Seats,
		CreatedAt:       s.CreatedAt,
	}

	if s.Started {
		if seat, err := s.CurrentSeat(); err == nil {
			dto.CurrentPlayer = &seat
		}
	}

	return dto
}

// OwnershipResponse represents one ownership ledger row
type OwnershipResponse struct {
	PropertyID       int64               `json:"property_id"`
	PropertyName     string              `json:"property_name"`
	Group            string              `json:"group"`
	Type             domain.PropertyType `json:"type"`
	OwnerID          int64               `json:"owner_id"`
	Mortgaged        bool                `json:"mortgaged"`
	Houses           int                 `json:"houses"`
	Hotel            bool                `json:"hotel"`
	OwnedInGroup     int                 `json:"owned_in_group"`
	MaxInGroup       int                 `json:"max_in_group"`
	Monopoly         bool                `json:"monopoly"`
	ImprovementValue int64               `json:"improvement_value"`
}

// MapOwnershipToDTO maps a ledger.Record to OwnershipResponse
func MapOwnershipToDTO(r ledger.Record) OwnershipResponse {
	return OwnershipResponse{
		PropertyID:       r.PropertyID,
		PropertyName:     r.Property.Name,
		Group:            r.Property.Group,
		Type:             r.Property.Type,
		OwnerID:          r.OwnerID,
		Mortgaged:        r.Mortgaged,
		Houses:           r.Houses,
		Hotel:            r.Hotel,
		OwnedInGroup:     r.OwnedInGroup,
		MaxInGroup:       r.MaxInGroup,
		Monopoly:         r.IsMonopoly(),
		ImprovementValue: r.ImprovementValue(),
	}
}

// OwnershipListResponse represents the ownership ledger
type OwnershipListResponse struct {
	Items []OwnershipResponse `json:"items"`
}

// NetWorthResponse represents a player's current snapshot with the derived net worth
type NetWorthResponse struct {
	domain.Snapshot
	NetWorth int64 `json:"net_worth"`
}

// NetWorthListResponse represents the snapshots of every player
type NetWorthListResponse struct {
	Items []NetWorthResponse `json:"items"`
}

// MapSnapshotsToDTO maps snapshots to NetWorthListResponse
func MapSnapshotsToDTO(snapshots []domain.Snapshot) NetWorthListResponse {
	items := make([]NetWorthResponse, 0, len(snapshots))
	for _, s := range snapshots {
		items = append(items, NetWorthResponse{Snapshot: s, NetWorth: s.NetWorth()})
	}
	return NetWorthListResponse{Items: items}
}

// TransactionResponse represents one ledger entry
type TransactionResponse struct {
	ID             int64             `json:"id"`
	Ref            string            `json:"ref"`
	Turn           int               `json:"turn"`
	PlayerID       int64             `json:"player_id"`
	CounterpartyID int64             `json:"counterparty_id"`
	Action         domain.ActionType `json:"action"`
	PropertyID     *int64            `json:"property_id,omitempty"`
	CashReceived   int64             `json:"cash_received"`
	CashPaid       int64             `json:"cash_paid"`
	AssetReceived  int64             `json:"asset_received"`
	AssetPaid      int64             `json:"asset_paid"`
	Details        json.RawMessage   `json:"details,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
}

// MapTransactionToDTO maps a schema.Transaction to TransactionResponse
func MapTransactionToDTO(tx schema.Transaction) TransactionResponse {
	dto := TransactionResponse{
		ID:             tx.ID,
		Ref:            tx.Ref,
		Turn:           tx.Turn,
		PlayerID:       tx.PlayerID,
		CounterpartyID: tx.CounterpartyID,
		Action:         tx.ActionType.Code,
		PropertyID:     tx.PropertyID,
		CashReceived:   tx.CashReceived,
		CashPaid:       tx.CashPaid,
		AssetReceived:  tx.AssetReceived,
		AssetPaid:      tx.AssetPaid,
		CreatedAt:      tx.CreatedAt,
	}

	if len(tx.Details) > 0 {
		dto.Details = json.RawMessage(tx.Details)
	}

	return dto
}

// TransactionListResponse represents a paginated list of transactions
type TransactionListResponse struct {
	Items  []TransactionResponse `json:"items"`
	Offset *uint64               `json:"offset,omitempty"` // Offset for the next page
	Total  uint64                `json:"total"`
}

// ReloadReferenceDataResponse represents the outcome of a fixture reload
type ReloadReferenceDataResponse struct {
	refdata.Summary
	GameReset bool `json:"game_reset"`
}
