package executor_factory

import (
	"context"

	"github.com/pashagolub/pgxmock/v4"

	"github.com/opsdesk/opsdesk-backend/repositories"
)

// ExecutorFactoryStub drives the transaction provider from a pgxmock pool, so
// usecase tests can assert on begin/commit/rollback and on every statement
// executed inside the unit of work.
type ExecutorFactoryStub struct {
	Mock pgxmock.PgxPoolIface
}

func NewExecutorFactoryStub() ExecutorFactoryStub {
	pool, _ := pgxmock.NewPool()

	return ExecutorFactoryStub{
		Mock: pool,
	}
}

type PgExecutorStub struct {
	pgxmock.PgxPoolIface
}

func (stub ExecutorFactoryStub) NewExecutor() repositories.Executor {
	return PgExecutorStub{
		stub.Mock,
	}
}

func (stub ExecutorFactoryStub) Transaction(ctx context.Context, fn func(tx repositories.Transaction) error) error {
	tx, err := stub.Mock.Begin(ctx)
	if err != nil {
		return err
	}

	if err := fn(repositories.NewPgTx(tx)); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	return tx.Commit(ctx)
}
