package api

import (
	"context"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/opsdesk/opsdesk-backend/models"
	"github.com/opsdesk/opsdesk-backend/utils"
)

// presentError maps the error taxonomy to http statuses. Validation and
// permission errors carry their message to the caller; anything else is a
// rollback with no partial state to explain, so the payload stays generic.
func presentError(ctx context.Context, c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	switch {
	case errors.Is(err, models.BadParameterError):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case errors.Is(err, models.UnAuthorizedError):
		c.JSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
	case errors.Is(err, models.ForbiddenError):
		c.JSON(http.StatusForbidden, gin.H{"message": err.Error()})
	case errors.Is(err, models.NotFoundError):
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
	case errors.Is(err, models.ConflictError):
		c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
	default:
		logger := utils.LoggerFromContext(ctx)
		if errors.Is(err, models.ErrAuditWrite) {
			logger.ErrorContext(ctx, "audit write failed, unit of work rolled back", "error", err.Error())
		} else {
			logger.ErrorContext(ctx, "unexpected error", "error", err.Error())
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "operation failed, no changes were made",
		})
	}
	return true
}
