// Package ledger maintains the per-property ownership state of the active game.
package ledger

import (
	"context"
	"fmt"

	"github.com/cedrichille/monopoly-companion-app/internal/domain"
	"github.com/cedrichille/monopoly-companion-app/internal/store"
	"github.com/cedrichille/monopoly-companion-app/internal/store/schema"
)

// Record is one row of the ownership ledger joined with its property definition
type Record struct {
	PropertyID   int64           `json:"property_id"`
	Property     schema.Property `json:"-"`
	OwnerID      int64           `json:"owner_id"`
	Mortgaged    bool            `json:"mortgaged"`
	Houses       int             `json:"houses"`
	Hotel        bool            `json:"hotel"`
	OwnedInGroup int             `json:"owned_in_group"`
	MaxInGroup   int             `json:"max_in_group"`
}

// IsMonopoly reports whether the owner holds the whole group.
// The flag is derived from the counts and never stored.
func (r Record) IsMonopoly() bool {
	return domain.IsMonopoly(r.OwnedInGroup, r.MaxInGroup)
}

// ImprovementValue returns the build cost sunk into the property
func (r Record) ImprovementValue() int64 {
	return domain.ImprovementValue(r.Houses, r.Hotel, r.Property.HouseCost)
}

// HasImprovements reports whether any house or hotel stands on the property
func (r Record) HasImprovements() bool {
	return r.Houses > 0 || r.Hotel
}

// RentInput returns the rent rule input for the record
func (r Record) RentInput(diceRoll int) domain.RentInput {
	return domain.RentInput{
		Type:         r.Property.Type,
		Schedule:     r.Property.Rent,
		OwnerID:      r.OwnerID,
		Mortgaged:    r.Mortgaged,
		Houses:       r.Houses,
		Hotel:        r.Hotel,
		OwnedInGroup: r.OwnedInGroup,
		MaxInGroup:   r.MaxInGroup,
		DiceRoll:     diceRoll,
	}
}

func recordFromRow(row schema.PropertyOwnership) Record {
	return Record{
		PropertyID:   row.PropertyID,
		Property:     row.Property,
		OwnerID:      row.OwnerID,
		Mortgaged:    row.Mortgaged,
		Houses:       row.Houses,
		Hotel:        row.Hotel,
		OwnedInGroup: row.OwnedInGroup,
		MaxInGroup:   row.MaxInGroup,
	}
}

// Filter narrows List
type Filter struct {
	OwnerID *int64
	Group   *string
}

// Ledger reads and mutates the ownership ledger through a store.
// Bind it to a transaction-scoped store to make a handler's writes atomic.
type Ledger struct {
	store store.Store
}

// New creates a ledger over the given store
func New(st store.Store) *Ledger {
	return &Ledger{store: st}
}

// Initialize creates one Bank-owned, unmortgaged, unimproved record per property of the version
func (l *Ledger) Initialize(ctx context.Context, gameVersionID int64) (int, error) {
	properties, err := l.store.ListPropertiesByGameVersion(ctx, gameVersionID)
	if err != nil {
		return 0, err
	}
	if len(properties) == 0 {
		return 0, domain.NewNotFoundError("properties for game version", gameVersionID)
	}

	created, err := l.store.ResetOwnership(ctx, gameVersionID)
	if err != nil {
		return 0, err
	}

	return created, nil
}

// ComputeMaxGroupCounts stores the size of every group; run once per game before any transfer
func (l *Ledger) ComputeMaxGroupCounts(ctx context.Context) error {
	return l.store.ComputeMaxGroupCounts(ctx)
}

// RecomputeGroupCounts refreshes the owned-in-group count of every record.
// Call it after every transfer; it is idempotent.
func (l *Ledger) RecomputeGroupCounts(ctx context.Context) error {
	return l.store.RecomputeGroupCounts(ctx)
}

// Transfer changes the owner of a property. The caller must follow with RecomputeGroupCounts.
func (l *Ledger) Transfer(ctx context.Context, propertyID, fromOwnerID, toOwnerID int64) error {
	current, err := l.store.GetOwnership(ctx, propertyID)
	if err != nil {
		return err
	}
	if current == nil {
		return domain.NewInvalidStateError("property %d is not in the ownership ledger", propertyID)
	}
	if current.OwnerID != fromOwnerID {
		return domain.NewInvalidStateError("property %d is owned by player %d, not %d",
			propertyID, current.OwnerID, fromOwnerID)
	}

	moved, err := l.store.TransferOwnership(ctx, propertyID, fromOwnerID, toOwnerID)
	if err != nil {
		return err
	}
	if !moved {
		return domain.NewInvalidStateError("property %d changed owner during transfer", propertyID)
	}

	return nil
}

// Get returns the record of a property
func (l *Ledger) Get(ctx context.Context, propertyID int64) (*Record, error) {
	row, err := l.store.GetOwnership(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, domain.NewNotFoundError("property", propertyID)
	}

	record := recordFromRow(*row)
	return &record, nil
}

// List returns ledger records ordered by property id
func (l *Ledger) List(ctx context.Context, filter Filter) ([]Record, error) {
	rows, err := l.store.ListOwnership(ctx, store.OwnershipFilter{
		OwnerID: filter.OwnerID,
		Group:   filter.Group,
	})
	if err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, recordFromRow(row))
	}
	return records, nil
}

// IsMonopoly reports whether the owner of the property holds its whole group
func (l *Ledger) IsMonopoly(ctx context.Context, propertyID int64) (bool, error) {
	record, err := l.Get(ctx, propertyID)
	if err != nil {
		return false, err
	}
	return record.IsMonopoly(), nil
}

// SetMortgaged sets the mortgage flag of a property, keeping its improvements
func (l *Ledger) SetMortgaged(ctx context.Context, record Record, mortgaged bool) error {
	return l.store.UpdateOwnershipState(ctx, store.UpdateOwnershipStateInput{
		PropertyID: record.PropertyID,
		Mortgaged:  mortgaged,
		Houses:     record.Houses,
		Hotel:      record.Hotel,
	})
}

// SetImprovements sets the houses and hotel of a property following the build ladder
func (l *Ledger) SetImprovements(ctx context.Context, record Record, houses int, hotel bool) error {
	if houses < 0 || houses > domain.MAX_HOUSES {
		return domain.NewInvalidStateError("house count %d out of range", houses)
	}
	if hotel && houses > 0 {
		return domain.NewInvalidStateError("a hotel replaces the houses on property %d", record.PropertyID)
	}

	if err := l.store.UpdateOwnershipState(ctx, store.UpdateOwnershipStateInput{
		PropertyID: record.PropertyID,
		Mortgaged:  record.Mortgaged,
		Houses:     houses,
		Hotel:      hotel,
	}); err != nil {
		return fmt.Errorf("failed to set improvements: %w", err)
	}
	return nil
}
