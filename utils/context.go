package utils

import (
	"context"
	"log/slog"

	"github.com/opsdesk/opsdesk-backend/models"
)

type ContextKey int

const (
	ContextKeyCredentials ContextKey = iota
	ContextKeyLogger
	ContextKeyRequestMetadata
)

func CredentialsFromCtx(ctx context.Context) (models.Credentials, bool) {
	creds, ok := ctx.Value(ContextKeyCredentials).(models.Credentials)
	return creds, ok
}

func StoreCredentialsInContext(ctx context.Context, creds models.Credentials) context.Context {
	return context.WithValue(ctx, ContextKeyCredentials, creds)
}

func LoggerFromContext(ctx context.Context) *slog.Logger {
	logger, found := ctx.Value(ContextKeyLogger).(*slog.Logger)
	if !found {
		return slog.Default()
	}
	return logger
}

func StoreLoggerInContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ContextKeyLogger, logger)
}

// MetadataNotAvailable is recorded for the caller address and agent of actions
// executed outside of a request context, e.g. scheduled jobs.
const MetadataNotAvailable = "not available"

// RequestMetadata carries the provenance of the incoming request, for the
// audit trail.
type RequestMetadata struct {
	CallerAddress string
	CallerAgent   string
}

func RequestMetadataFromCtx(ctx context.Context) RequestMetadata {
	meta, found := ctx.Value(ContextKeyRequestMetadata).(RequestMetadata)
	if !found {
		return RequestMetadata{
			CallerAddress: MetadataNotAvailable,
			CallerAgent:   MetadataNotAvailable,
		}
	}
	if meta.CallerAddress == "" {
		meta.CallerAddress = MetadataNotAvailable
	}
	if meta.CallerAgent == "" {
		meta.CallerAgent = MetadataNotAvailable
	}
	return meta
}

func StoreRequestMetadataInContext(ctx context.Context, meta RequestMetadata) context.Context {
	return context.WithValue(ctx, ContextKeyRequestMetadata, meta)
}
