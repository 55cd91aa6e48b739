package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/cedrichille/monopoly-companion-app/internal/domain"
)

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	// Client errors (4xx)
	ErrCodeBadRequest       ErrorCode = "bad_request"
	ErrCodeNotFound         ErrorCode = "not_found"
	ErrCodeValidationFailed ErrorCode = "validation_failed"
	ErrCodeUnauthorized     ErrorCode = "unauthorized"
	ErrCodeForbidden        ErrorCode = "forbidden"
	ErrCodeInvalidState     ErrorCode = "invalid_state"
	ErrCodeRateLimited      ErrorCode = "rate_limited"

	// Server errors (5xx)
	ErrCodeInternalError  ErrorCode = "internal_error"
	ErrCodeNotImplemented ErrorCode = "not_implemented"
)

// APIError represents a structured API error that carries error code and details
type APIError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	jsonErr, _ := json.Marshal(e)
	return string(jsonErr)
}

// Error constructors for common error types
func NewBadRequestError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeBadRequest,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewNotFoundError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeNotFound,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewValidationError(details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeValidationFailed,
		Message: "Validation failed",
		Details: strings.Join(details, ", "),
	}
}

func NewUnauthorizedError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeUnauthorized,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewForbiddenError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeForbidden,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewInvalidStateError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeInvalidState,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewRateLimitedError() *APIError {
	return &APIError{
		Code:    ErrCodeRateLimited,
		Message: "Too many requests",
	}
}

func NewInternalError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeInternalError,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewNotImplementedError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeNotImplemented,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

// FromDomain maps an error returned by the game layer to an API error and its HTTP status.
// The last return value is false when the error is not a known domain failure; the
// caller should log it and treat it as internal.
func FromDomain(err error) (*APIError, int, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, statusOf(apiErr.Code), true
	}

	var validationErr *domain.ValidationError
	var notFoundErr *domain.NotFoundError
	switch {
	case errors.As(err, &validationErr):
		return NewValidationError(validationErr.Reason), http.StatusBadRequest, true
	case errors.Is(err, domain.ErrValidation):
		return NewValidationError(err.Error()), http.StatusBadRequest, true
	case errors.As(err, &notFoundErr):
		return NewNotFoundError("Resource not found", notFoundErr.Error()), http.StatusNotFound, true
	case errors.Is(err, domain.ErrNotFound):
		return NewNotFoundError("Resource not found", err.Error()), http.StatusNotFound, true
	case errors.Is(err, domain.ErrInvalidState):
		return NewInvalidStateError("Action not allowed", err.Error()), http.StatusConflict, true
	case errors.Is(err, domain.ErrNotImplemented):
		return NewNotImplementedError("Action not implemented", err.Error()), http.StatusNotImplemented, true
	}

	return NewInternalError("Internal server error"), http.StatusInternalServerError, false
}

func statusOf(code ErrorCode) int {
	switch code {
	case ErrCodeBadRequest, ErrCodeValidationFailed:
		return http.StatusBadRequest
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case ErrCodeForbidden:
		return http.StatusForbidden
	case ErrCodeInvalidState:
		return http.StatusConflict
	case ErrCodeRateLimited:
		return http.StatusTooManyRequests
	case ErrCodeNotImplemented:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}
