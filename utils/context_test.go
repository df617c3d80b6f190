package utils

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/opsdesk/opsdesk-backend/models"
)

func TestCredentialsFromCtx(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		userId := uuid.New()
		ctx := StoreCredentialsInContext(context.Background(), models.Credentials{
			ActorIdentity: models.Identity{UserId: &userId, Email: "jane@opsdesk.test"},
			Role:          models.ROLE_ADMIN,
		})

		creds, found := CredentialsFromCtx(ctx)
		assert.True(t, found)
		assert.Equal(t, models.ROLE_ADMIN, creds.Role)
		assert.Equal(t, "jane@opsdesk.test", creds.ActorIdentity.Email)
	})

	t.Run("absent credentials", func(t *testing.T) {
		creds, found := CredentialsFromCtx(context.Background())
		assert.False(t, found)
		assert.Empty(t, creds.ActorName())
	})
}

func TestRequestMetadataFromCtx(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		ctx := StoreRequestMetadataInContext(context.Background(), RequestMetadata{
			CallerAddress: "203.0.113.7",
			CallerAgent:   "ops-cli/1.0",
		})

		meta := RequestMetadataFromCtx(ctx)
		assert.Equal(t, "203.0.113.7", meta.CallerAddress)
		assert.Equal(t, "ops-cli/1.0", meta.CallerAgent)
	})

	t.Run("outside of a request context", func(t *testing.T) {
		meta := RequestMetadataFromCtx(context.Background())
		assert.Equal(t, MetadataNotAvailable, meta.CallerAddress)
		assert.Equal(t, MetadataNotAvailable, meta.CallerAgent)
	})

	t.Run("empty fields fall back to the sentinel", func(t *testing.T) {
		ctx := StoreRequestMetadataInContext(context.Background(), RequestMetadata{
			CallerAddress: "203.0.113.7",
		})

		meta := RequestMetadataFromCtx(ctx)
		assert.Equal(t, "203.0.113.7", meta.CallerAddress)
		assert.Equal(t, MetadataNotAvailable, meta.CallerAgent)
	})
}
