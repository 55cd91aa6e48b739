package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is matched by every NotFoundError
	ErrNotFound = errors.New("not found")

	// ErrInvalidState is matched by every InvalidStateError
	ErrInvalidState = errors.New("invalid state")

	// ErrValidation is matched by every ValidationError
	ErrValidation = errors.New("validation failed")

	// ErrNotImplemented is returned by action handlers whose rules are not modelled
	ErrNotImplemented = errors.New("action not implemented")

	// ErrGameNotStarted is returned by gameplay calls made before player registration
	ErrGameNotStarted = &InvalidStateError{Reason: "game not started"}

	// ErrInsufficientCash is returned when a voluntary payment exceeds the player's cash
	ErrInsufficientCash = &InvalidStateError{Reason: "insufficient cash"}
)

// NotFoundError reports an unresolvable property, player, action type or game version reference
type NotFoundError struct {
	Entity string
	Key    any
}

// NewNotFoundError creates a NotFoundError for the given entity and lookup key
func NewNotFoundError(entity string, key any) *NotFoundError {
	return &NotFoundError{Entity: entity, Key: key}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %v", e.Entity, e.Key)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// InvalidStateError reports an action attempted in a state that does not allow it
type InvalidStateError struct {
	Reason string
}

// NewInvalidStateError creates an InvalidStateError with a formatted reason
func NewInvalidStateError(format string, args ...any) *InvalidStateError {
	return &InvalidStateError{Reason: fmt.Sprintf(format, args...)}
}

func (e *InvalidStateError) Error() string {
	return e.Reason
}

func (e *InvalidStateError) Is(target error) bool {
	return target == ErrInvalidState
}

// ValidationError reports missing or malformed caller input.
// Reason is a human-readable message suitable for showing to the player.
type ValidationError struct {
	Field  string
	Reason string
}

// NewValidationError creates a ValidationError for a field
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
