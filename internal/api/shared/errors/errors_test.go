package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cedrichille/monopoly-companion-app/internal/domain"
)

func TestFromDomain(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedCode   ErrorCode
		expectedStatus int
		known          bool
		details        string
	}{
		{
			name:           "validation error keeps the player facing reason",
			err:            domain.NewValidationError("names[1]", "Player 2 name required"),
			expectedCode:   ErrCodeValidationFailed,
			expectedStatus: http.StatusBadRequest,
			known:          true,
			details:        "Player 2 name required",
		},
		{
			name:           "wrapped not found",
			err:            fmt.Errorf("failed to rent: %w", domain.NewNotFoundError("property", int64(99))),
			expectedCode:   ErrCodeNotFound,
			expectedStatus: http.StatusNotFound,
			known:          true,
			details:        "property not found: 99",
		},
		{
			name:           "insufficient cash is an invalid state",
			err:            fmt.Errorf("%w: need %d, have %d", domain.ErrInsufficientCash, 400, 120),
			expectedCode:   ErrCodeInvalidState,
			expectedStatus: http.StatusConflict,
			known:          true,
			details:        "insufficient cash: need 400, have 120",
		},
		{
			name:           "game not started",
			err:            domain.ErrGameNotStarted,
			expectedCode:   ErrCodeInvalidState,
			expectedStatus: http.StatusConflict,
			known:          true,
			details:        "game not started",
		},
		{
			name:           "not implemented",
			err:            fmt.Errorf("%w: %s", domain.ErrNotImplemented, domain.SpecialFieldChance),
			expectedCode:   ErrCodeNotImplemented,
			expectedStatus: http.StatusNotImplemented,
			known:          true,
			details:        "action not implemented: chance",
		},
		{
			name:           "api error passes through",
			err:            NewBadRequestError("Invalid request body"),
			expectedCode:   ErrCodeBadRequest,
			expectedStatus: http.StatusBadRequest,
			known:          true,
		},
		{
			name:           "unknown error is internal",
			err:            errors.New("connection reset by peer"),
			expectedCode:   ErrCodeInternalError,
			expectedStatus: http.StatusInternalServerError,
			known:          false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr, status, known := FromDomain(tt.err)
			assert.Equal(t, tt.expectedCode, apiErr.Code)
			assert.Equal(t, tt.expectedStatus, status)
			assert.Equal(t, tt.known, known)
			if tt.details != "" {
				assert.Equal(t, tt.details, apiErr.Details)
			}
		})
	}
}

func TestAPIErrorJSON(t *testing.T) {
	err := NewValidationError("limit must be positive")
	assert.JSONEq(t, `{"code":"validation_failed","message":"Validation failed","details":"limit must be positive"}`, err.Error())
}
