package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/cedrichille/monopoly-companion-app/internal/api/shared/errors"
	"github.com/cedrichille/monopoly-companion-app/internal/logger"
)

// respondBadRequest responds with a bad request error
func respondBadRequest(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusBadRequest, apierrors.NewBadRequestError(message, details...))
}

// respondValidationError responds with a validation error
func respondValidationError(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, apierrors.NewValidationError(message))
}

// respondError maps a game error to its status. Unknown failures are logged and hidden.
func respondError(c *gin.Context, err error, message string) {
	apiErr, status, known := apierrors.FromDomain(err)
	if !known {
		logger.ErrorCtx(c.Request.Context(), err,
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
		)
		apiErr = apierrors.NewInternalError(message)
	}
	c.JSON(status, apiErr)
}
