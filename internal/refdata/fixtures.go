// Package refdata loads the static reference tables and serves cached lookups over them.
package refdata

import (
	"fmt"
	"strings"

	"github.com/cedrichille/monopoly-companion-app/internal/domain"
	"github.com/cedrichille/monopoly-companion-app/internal/store"
	"github.com/cedrichille/monopoly-companion-app/internal/store/schema"
)

// Fixture file names inside the fixtures directory
const (
	ActionTypeFile  = "action_type.json"
	GameVersionFile = "game_version.json"
	PlayersFile     = "players.json"
	PropertyFile    = "property.json"
)

// ActionTypeFixture is one entry of action_type.json
type ActionTypeFixture struct {
	ID   int64             `json:"id"`
	Code domain.ActionType `json:"code"`
	Name string            `json:"name"`
}

// GameVersionFixture is one entry of game_version.json
type GameVersionFixture struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	TotalCash    int64  `json:"total_cash"`
	StartingCash int64  `json:"starting_cash"`
	GoValue      int64  `json:"go_value"`
	IncomeTax    int64  `json:"income_tax"`
	LuxuryTax    int64  `json:"luxury_tax"`
}

// PlayerFixture is one entry of players.json; only the reserved players are shipped
type PlayerFixture struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// PropertyFixture is one entry of property.json
type PropertyFixture struct {
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

// Fixtures is the complete reference data set
type Fixtures struct {
	ActionTypes  []ActionTypeFixture
	GameVersions []GameVersionFixture
	Players      []PlayerFixture
	Properties   []PropertyFixture
}

// Summary counts the rows of a loaded fixture set
type Summary struct {
	ActionTypes  int `json:"action_types"`
	GameVersions int `json:"game_versions"`
	Players      int `json:"players"`
	Properties   int `json:"properties"`
}

// Summary counts the rows of each table
func (f *Fixtures) Summary() Summary {
	return Summary{
		ActionTypes:  len(f.ActionTypes),
		GameVersions: len(f.GameVersions),
		Players:      len(f.Players),
		Properties:   len(f.Properties),
	}
}

// Validate checks the cross-table rules the database cannot express on its own
func (f *Fixtures) Validate() error {
	if len(f.GameVersions) == 0 {
		return domain.NewValidationError(GameVersionFile, "At least one game version is required")
	}

	versions := make(map[int64]bool, len(f.GameVersions))
	names := make(map[string]bool, len(f.GameVersions))
	for _, v := range f.GameVersions {
		if versions[v.ID] {
			return domain.NewValidationError(GameVersionFile, fmt.Sprintf("Duplicate game version id %d", v.ID))
		}
		name := strings.TrimSpace(v.Name)
		if name == "" {
			return domain.NewValidationError(GameVersionFile, fmt.Sprintf("Game version %d has no name", v.ID))
		}
		if names[name] {
			return domain.NewValidationError(GameVersionFile, fmt.Sprintf("Duplicate game version name %q", name))
		}
		if v.TotalCash < 0 || v.StartingCash < 0 || v.GoValue < 0 || v.IncomeTax < 0 || v.LuxuryTax < 0 {
			return domain.NewValidationError(GameVersionFile, fmt.Sprintf("Game version %q has a negative amount", name))
		}
		versions[v.ID] = true
		names[name] = true
	}

	codes := make(map[domain.ActionType]bool, len(f.ActionTypes))
	ids := make(map[int64]bool, len(f.ActionTypes))
	for _, a := range f.ActionTypes {
		if ids[a.ID] || codes[a.Code] {
			return domain.NewValidationError(ActionTypeFile, fmt.Sprintf("Duplicate action type %d %q", a.ID, a.Code))
		}
		ids[a.ID] = true
		codes[a.Code] = true
	}
	for _, code := range domain.AllActionTypes {
		if !codes[code] {
			return domain.NewValidationError(ActionTypeFile, fmt.Sprintf("Missing action type %q", code))
		}
	}

	players := make(map[int64]bool, len(f.Players))
	for _, p := range f.Players {
		if players[p.ID] {
			return domain.NewValidationError(PlayersFile, fmt.Sprintf("Duplicate player id %d", p.ID))
		}
		if !domain.IsReservedPlayer(p.ID) {
			return domain.NewValidationError(PlayersFile,
				fmt.Sprintf("Player %d is not reserved; players are created at registration", p.ID))
		}
		players[p.ID] = true
	}
	if !players[domain.PLAYER_ID_BANK] || !players[domain.PLAYER_ID_FREE_PARKING] {
		return domain.NewValidationError(PlayersFile, "Bank and Free Parking are required")
	}

	properties := make(map[int64]bool, len(f.Properties))
	for _, p := range f.Properties {
		if properties[p.ID] {
			return domain.NewValidationError(PropertyFile, fmt.Sprintf("Duplicate property id %d", p.ID))
		}
		if !versions[p.GameVersionID] {
			return domain.NewValidationError(PropertyFile,
				fmt.Sprintf("Property %q references unknown game version %d", p.Name, p.GameVersionID))
		}
		if !domain.IsValidPropertyType(p.Type) {
			return domain.NewValidationError(PropertyFile,
				fmt.Sprintf("Property %q has unknown type %q", p.Name, p.Type))
		}
		if strings.TrimSpace(p.Group) == "" {
			return domain.NewValidationError(PropertyFile, fmt.Sprintf("Property %q has no group", p.Name))
		}
		if p.MortgageValue > p.Price {
			return domain.NewValidationError(PropertyFile,
				fmt.Sprintf("Property %q mortgages for more than its price", p.Name))
		}
		properties[p.ID] = true
	}

	return nil
}

// ReplaceInput converts the fixtures into store rows
func (f *Fixtures) ReplaceInput() store.ReplaceReferenceDataInput {
	input := store.ReplaceReferenceDataInput{
		ActionTypes:  make([]schema.ActionType, 0, len(f.ActionTypes)),
		GameVersions: make([]schema.GameVersion, 0, len(f.GameVersions)),
		Players:      make([]schema.Player, 0, len(f.Players)),
		Properties:   make([]schema.Property, 0, len(f.Properties)),
	}

	for _, a := range f.ActionTypes {
		input.ActionTypes = append(input.ActionTypes, schema.ActionType{ID: a.ID, Code: a.Code, Name: a.Name})
	}
	for _, v := range f.GameVersions {
		input.GameVersions = append(input.GameVersions, schema.GameVersion{
			ID:           v.ID,
			Name:         strings.TrimSpace(v.Name),
			TotalCash:    v.TotalCash,
			StartingCash: v.StartingCash,
			GoValue:      v.GoValue,
			IncomeTax:    v.IncomeTax,
			LuxuryTax:    v.LuxuryTax,
		})
	}
	for _, p := range f.Players {
		input.Players = append(input.Players, schema.Player{ID: p.ID, Name: p.Name})
	}
	for _, p := range f.Properties {
		input.Properties = append(input.Properties, schema.Property{
			ID:            p.ID,
			GameVersionID: p.GameVersionID,
			Name:          p.Name,
			Group:         p.Group,
			Type:          p.Type,
			Price:         p.Price,
			MortgageValue: p.MortgageValue,
			HouseCost:     p.HouseCost,
			Rent:          p.Rent,
		})
	}

	return input
}
