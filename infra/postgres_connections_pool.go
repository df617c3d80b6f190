package infra

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/exaring/otelpgx"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/opsdesk/opsdesk-backend/utils"
)

const defaultMaxPoolSize = 50

// NewPostgresConnectionPool sizes the pool from PG_MAX_POOL_SIZE and traces
// every statement through the otel tracer.
func NewPostgresConnectionPool(connectionString string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(connectionString)
	if err != nil {
		return nil, errors.Wrap(err, "invalid postgres connection string")
	}
	cfg.ConnConfig.Tracer = otelpgx.NewTracer()
	cfg.MaxConns = int32(utils.GetIntEnv("PG_MAX_POOL_SIZE", defaultMaxPoolSize))

	pool, err := pgxpool.NewWithConfig(context.Background(), cfg)
	if err != nil {
		return nil, errors.Wrap(err, "unable to create postgres connection pool")
	}
	return pool, nil
}
