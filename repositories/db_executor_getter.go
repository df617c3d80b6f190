package repositories

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ExecutorGetter struct {
	connectionPool *pgxpool.Pool
}

func NewExecutorGetter(pool *pgxpool.Pool) ExecutorGetter {
	return ExecutorGetter{
		connectionPool: pool,
	}
}

const transactionMaxAttempts = 3

// Transaction opens one unit of work: fn's writes are committed together on a
// nil return and rolled back together on error or panic. Deadlocks and
// serialization failures are transient, the whole unit of work is retried.
func (g ExecutorGetter) Transaction(
	ctx context.Context,
	fn func(tx Transaction) error,
) error {
	var err error
	for attempt := 1; attempt <= transactionMaxAttempts; attempt++ {
		err = pgx.BeginFunc(ctx, g.connectionPool, func(tx pgx.Tx) error {
			return fn(NewPgTx(tx))
		})
		if !IsDeadlockError(err) && !IsSerializationFailureError(err) {
			break
		}
	}

	return errors.Wrap(err, "Error executing transaction")
}

func (g ExecutorGetter) GetExecutor() Executor {
	return PgExecutor{
		exec: g.connectionPool,
	}
}
