package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/opsdesk/opsdesk-backend/models"
	"github.com/opsdesk/opsdesk-backend/usecases"
	"github.com/opsdesk/opsdesk-backend/utils"
)

func storeLoggerInContextMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := utils.StoreLoggerInContext(c.Request.Context(), logger)
		c.Request = c.Request.WithContext(ctx)
	}
}

// storeRequestMetadataMiddleware captures the caller address and agent so the
// audit recorder can read them from ambient context.
func storeRequestMetadataMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := utils.StoreRequestMetadataInContext(c.Request.Context(), utils.RequestMetadata{
			CallerAddress: c.ClientIP(),
			CallerAgent:   c.Request.UserAgent(),
		})
		c.Request = c.Request.WithContext(ctx)
	}
}

type credentialsResolver interface {
	CredentialsForUser(ctx context.Context, userId uuid.UUID) (models.Credentials, error)
}

// credentialsMiddleware resolves the acting user from the X-Actor-Id header
// set by the authenticating reverse proxy. Requests without an actor proceed
// without credentials and are audited as system actions.
func credentialsMiddleware(uc credentialsResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		actorHeader := c.GetHeader("X-Actor-Id")
		if actorHeader == "" {
			return
		}

		actorId, err := uuid.Parse(actorHeader)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid actor id"})
			return
		}

		creds, err := uc.CredentialsForUser(c.Request.Context(), actorId)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unknown actor"})
			return
		}

		ctx := utils.StoreCredentialsInContext(c.Request.Context(), creds)
		c.Request = c.Request.WithContext(ctx)
	}
}

var _ credentialsResolver = usecases.CredentialsUsecase{}
