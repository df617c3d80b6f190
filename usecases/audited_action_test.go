package usecases

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/opsdesk/opsdesk-backend/models"
	"github.com/opsdesk/opsdesk-backend/pure_utils"
	"github.com/opsdesk/opsdesk-backend/repositories"
	"github.com/opsdesk/opsdesk-backend/usecases/executor_factory"
	"github.com/opsdesk/opsdesk-backend/utils"
)

func contextWithActor(identity models.Identity, role models.Role) context.Context {
	ctx := utils.StoreCredentialsInContext(context.Background(), models.Credentials{
		ActorIdentity: identity,
		Role:          role,
	})
	return utils.StoreRequestMetadataInContext(ctx, utils.RequestMetadata{
		CallerAddress: "203.0.113.7",
		CallerAgent:   "ops-cli/1.0",
	})
}

func rowStateRows(state string) *pgxmock.Rows {
	return pgxmock.NewRows([]string{"to_jsonb"}).AddRow(json.RawMessage(state))
}

// anyArgs builds a WithArgs list matching a statement's full arity without
// pinning the values.
func anyArgs(n int) []any {
	args := make([]any, n)
	for i := range args {
		args[i] = pgxmock.AnyArg()
	}
	return args
}

func TestRunAudited(t *testing.T) {
	userId := uuid.New()
	ctx := contextWithActor(models.Identity{
		UserId:    &userId,
		FirstName: "Jane",
		LastName:  "Doe",
	}, models.ROLE_ADMIN)

	targetId := uuid.New()
	action := models.AuditedAction{
		Name:     "reviewBillPayment",
		Kind:     models.AuditActionUpdate,
		Table:    models.TableBillPayments,
		TargetId: &targetId,
	}

	newRunner := func() (executor_factory.ExecutorFactoryStub, AuditRunner) {
		stub := executor_factory.NewExecutorFactoryStub()
		return stub, NewAuditRunner(stub, repositories.NewOpsDbRepository())
	}

	t.Run("snapshots, mutates, records the audit and commits", func(t *testing.T) {
		stub, runner := newRunner()
		oldState := `{"id": "1", "status": "recorded"}`
		newState := `{"id": "1", "status": "reviewed"}`

		stub.Mock.ExpectBegin()
		stub.Mock.ExpectQuery(`SELECT to_jsonb\(t\.\*\) FROM bill_payments t WHERE t\.id = \$1 FOR UPDATE`).
			WithArgs(targetId).
			WillReturnRows(rowStateRows(oldState))
		stub.Mock.ExpectExec("UPDATE bill_payments").
			WithArgs(targetId).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		stub.Mock.ExpectQuery(`SELECT to_jsonb\(t\.\*\) FROM bill_payments t WHERE t\.id = \$1`).
			WithArgs(targetId).
			WillReturnRows(rowStateRows(newState))
		stub.Mock.ExpectExec("INSERT INTO audit_records").
			WithArgs(
				pgxmock.AnyArg(),
				&userId,
				pure_utils.Ptr("Jane Doe"),
				"UPDATE",
				"bill_payments",
				&targetId,
				json.RawMessage(oldState),
				json.RawMessage(newState),
				pure_utils.Ptr("reviewBillPayment"),
				"203.0.113.7",
				"ops-cli/1.0",
			).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		stub.Mock.ExpectCommit()

		result, err := RunAudited(ctx, runner, action,
			func(ctx context.Context, tx repositories.Transaction) (string, error) {
				_, err := tx.Exec(ctx, "UPDATE bill_payments SET status = 'reviewed' WHERE id = $1", targetId)
				return "reviewed", err
			})

		assert.NoError(t, err)
		assert.Equal(t, "reviewed", result)
		assert.NoError(t, stub.Mock.ExpectationsWereMet())
	})

	t.Run("a business failure rolls back without writing an audit record", func(t *testing.T) {
		stub, runner := newRunner()
		stub.Mock.ExpectBegin()
		stub.Mock.ExpectQuery(`SELECT to_jsonb\(t\.\*\) FROM bill_payments t`).
			WithArgs(targetId).
			WillReturnRows(rowStateRows(`{"id": "1"}`))
		stub.Mock.ExpectRollback()

		_, err := RunAudited(ctx, runner, action,
			func(ctx context.Context, tx repositories.Transaction) (string, error) {
				return "", errors.Wrap(models.ForbiddenError, "not allowed")
			})

		assert.ErrorIs(t, err, models.ForbiddenError)
		assert.NoError(t, stub.Mock.ExpectationsWereMet())
	})

	t.Run("an audit write failure rolls back the whole unit of work", func(t *testing.T) {
		stub, runner := newRunner()
		stub.Mock.ExpectBegin()
		stub.Mock.ExpectQuery(`SELECT to_jsonb\(t\.\*\) FROM bill_payments t`).
			WithArgs(targetId).
			WillReturnRows(rowStateRows(`{"id": "1", "status": "recorded"}`))
		stub.Mock.ExpectExec("UPDATE bill_payments").
			WithArgs(targetId).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		stub.Mock.ExpectQuery(`SELECT to_jsonb\(t\.\*\) FROM bill_payments t`).
			WithArgs(targetId).
			WillReturnRows(rowStateRows(`{"id": "1", "status": "reviewed"}`))
		stub.Mock.ExpectExec("INSERT INTO audit_records").
			WithArgs(anyArgs(11)...).
			WillReturnError(errors.New("relation audit_records does not exist"))
		stub.Mock.ExpectRollback()

		_, err := RunAudited(ctx, runner, action,
			func(ctx context.Context, tx repositories.Transaction) (string, error) {
				_, err := tx.Exec(ctx, "UPDATE bill_payments SET status = 'reviewed' WHERE id = $1", targetId)
				return "reviewed", err
			})

		assert.ErrorIs(t, err, models.ErrAuditWrite)
		assert.NoError(t, stub.Mock.ExpectationsWereMet())
	})

	t.Run("a missing snapshot target aborts the action", func(t *testing.T) {
		stub, runner := newRunner()
		stub.Mock.ExpectBegin()
		stub.Mock.ExpectQuery(`SELECT to_jsonb\(t\.\*\) FROM bill_payments t`).
			WithArgs(targetId).
			WillReturnRows(pgxmock.NewRows([]string{"to_jsonb"}))
		stub.Mock.ExpectRollback()

		fnCalled := false
		_, err := RunAudited(ctx, runner, action,
			func(ctx context.Context, tx repositories.Transaction) (string, error) {
				fnCalled = true
				return "", nil
			})

		assert.ErrorIs(t, err, models.NotFoundError)
		assert.False(t, fnCalled)
		assert.NoError(t, stub.Mock.ExpectationsWereMet())
	})

	t.Run("an update without a target id fails before opening a transaction", func(t *testing.T) {
		stub, runner := newRunner()

		_, err := RunAudited(ctx, runner, models.AuditedAction{
			Name:  "reviewBillPayment",
			Kind:  models.AuditActionUpdate,
			Table: models.TableBillPayments,
		}, func(ctx context.Context, tx repositories.Transaction) (string, error) {
			return "", nil
		})

		assert.ErrorIs(t, err, models.ErrAuditRecordIdMissing)
		assert.NoError(t, stub.Mock.ExpectationsWereMet())
	})

	t.Run("create actions are rejected", func(t *testing.T) {
		stub, runner := newRunner()

		_, err := RunAudited(ctx, runner, models.AuditedAction{
			Name:  "recordBillPayment",
			Kind:  models.AuditActionCreate,
			Table: models.TableBillPayments,
		}, func(ctx context.Context, tx repositories.Transaction) (string, error) {
			return "", nil
		})

		assert.ErrorIs(t, err, models.BadParameterError)
		assert.NoError(t, stub.Mock.ExpectationsWereMet())
	})

	t.Run("a delete action records no post-mutation state", func(t *testing.T) {
		stub, runner := newRunner()
		deleteAction := models.AuditedAction{
			Name:     "deleteBillPayment",
			Kind:     models.AuditActionDelete,
			Table:    models.TableBillPayments,
			TargetId: &targetId,
		}

		stub.Mock.ExpectBegin()
		stub.Mock.ExpectQuery(`SELECT to_jsonb\(t\.\*\) FROM bill_payments t`).
			WithArgs(targetId).
			WillReturnRows(rowStateRows(`{"id": "1"}`))
		stub.Mock.ExpectExec("DELETE FROM bill_payments").
			WithArgs(targetId).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))
		stub.Mock.ExpectExec("INSERT INTO audit_records").
			WithArgs(
				pgxmock.AnyArg(),
				&userId,
				pure_utils.Ptr("Jane Doe"),
				"DELETE",
				"bill_payments",
				&targetId,
				json.RawMessage(`{"id": "1"}`),
				json.RawMessage(nil),
				pure_utils.Ptr("deleteBillPayment"),
				"203.0.113.7",
				"ops-cli/1.0",
			).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		stub.Mock.ExpectCommit()

		_, err := RunAudited(ctx, runner, deleteAction,
			func(ctx context.Context, tx repositories.Transaction) (struct{}, error) {
				_, err := tx.Exec(ctx, "DELETE FROM bill_payments WHERE id = $1", targetId)
				return struct{}{}, err
			})

		assert.NoError(t, err)
		assert.NoError(t, stub.Mock.ExpectationsWereMet())
	})

	t.Run("the actor name is resolved from the user record when missing", func(t *testing.T) {
		stub, runner := newRunner()
		ctx := contextWithActor(models.Identity{UserId: &userId}, models.ROLE_OPERATOR)

		stub.Mock.ExpectBegin()
		stub.Mock.ExpectQuery(`SELECT to_jsonb\(t\.\*\) FROM bill_payments t`).
			WithArgs(targetId).
			WillReturnRows(rowStateRows(`{"id": "1"}`))
		stub.Mock.ExpectQuery(`SELECT to_jsonb\(t\.\*\) FROM bill_payments t`).
			WithArgs(targetId).
			WillReturnRows(rowStateRows(`{"id": "1"}`))
		stub.Mock.ExpectQuery("SELECT .* FROM users").
			WithArgs(userId).
			WillReturnRows(pgxmock.NewRows([]string{
				"id", "email", "first_name", "last_name", "role", "created_at",
			}).AddRow(userId, "ana@opsdesk.test", "Ana", "Ops", "OPERATOR", time.Now()))
		stub.Mock.ExpectExec("INSERT INTO audit_records").
			WithArgs(
				pgxmock.AnyArg(),
				&userId,
				pure_utils.Ptr("Ana Ops"),
				"UPDATE",
				"bill_payments",
				&targetId,
				json.RawMessage(`{"id": "1"}`),
				json.RawMessage(`{"id": "1"}`),
				pure_utils.Ptr("reviewBillPayment"),
				"203.0.113.7",
				"ops-cli/1.0",
			).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		stub.Mock.ExpectCommit()

		_, err := RunAudited(ctx, runner, action,
			func(ctx context.Context, tx repositories.Transaction) (struct{}, error) {
				return struct{}{}, nil
			})

		assert.NoError(t, err)
		assert.NoError(t, stub.Mock.ExpectationsWereMet())
	})
}

func TestRunAuditedCreate(t *testing.T) {
	userId := uuid.New()
	ctx := contextWithActor(models.Identity{
		UserId:    &userId,
		FirstName: "Jane",
		LastName:  "Doe",
	}, models.ROLE_ADMIN)

	action := models.AuditedAction{
		Name:  "recordBillPayment",
		Kind:  models.AuditActionCreate,
		Table: models.TableBillPayments,
	}

	newRunner := func() (executor_factory.ExecutorFactoryStub, AuditRunner) {
		stub := executor_factory.NewExecutorFactoryStub()
		return stub, NewAuditRunner(stub, repositories.NewOpsDbRepository())
	}

	t.Run("records the audit from the created record id", func(t *testing.T) {
		stub, runner := newRunner()
		paymentId := uuid.New()

		stub.Mock.ExpectBegin()
		stub.Mock.ExpectExec("INSERT INTO bill_payments").
			WithArgs(paymentId).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		stub.Mock.ExpectQuery(`SELECT to_jsonb\(t\.\*\) FROM bill_payments t`).
			WithArgs(paymentId).
			WillReturnRows(rowStateRows(`{"id": "1", "amount": "50"}`))
		stub.Mock.ExpectExec("INSERT INTO audit_records").
			WithArgs(anyArgs(11)...).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		stub.Mock.ExpectCommit()

		payment, err := RunAuditedCreate(ctx, runner, action,
			func(ctx context.Context, tx repositories.Transaction) (models.BillPayment, error) {
				_, err := tx.Exec(ctx, "INSERT INTO bill_payments (id) VALUES ($1)", paymentId)
				return models.BillPayment{Id: paymentId}, err
			})

		assert.NoError(t, err)
		assert.Equal(t, paymentId, payment.Id)
		assert.NoError(t, stub.Mock.ExpectationsWereMet())
	})

	t.Run("an unresolved record id aborts the transaction", func(t *testing.T) {
		stub, runner := newRunner()
		stub.Mock.ExpectBegin()
		stub.Mock.ExpectRollback()

		_, err := RunAuditedCreate(ctx, runner, action,
			func(ctx context.Context, tx repositories.Transaction) (models.BillPayment, error) {
				return models.BillPayment{}, nil
			})

		assert.ErrorIs(t, err, models.ErrAuditRecordIdMissing)
		assert.NoError(t, stub.Mock.ExpectationsWereMet())
	})

	t.Run("a created record that cannot be read back aborts the transaction", func(t *testing.T) {
		stub, runner := newRunner()
		paymentId := uuid.New()

		stub.Mock.ExpectBegin()
		stub.Mock.ExpectQuery(`SELECT to_jsonb\(t\.\*\) FROM bill_payments t`).
			WithArgs(paymentId).
			WillReturnRows(pgxmock.NewRows([]string{"to_jsonb"}))
		stub.Mock.ExpectRollback()

		_, err := RunAuditedCreate(ctx, runner, action,
			func(ctx context.Context, tx repositories.Transaction) (models.BillPayment, error) {
				return models.BillPayment{Id: paymentId}, nil
			})

		assert.ErrorIs(t, err, models.NotFoundError)
		assert.NoError(t, stub.Mock.ExpectationsWereMet())
	})

	t.Run("only create actions are accepted", func(t *testing.T) {
		stub, runner := newRunner()
		targetId := uuid.New()

		_, err := RunAuditedCreate(ctx, runner, models.AuditedAction{
			Name:     "reviewBillPayment",
			Kind:     models.AuditActionUpdate,
			Table:    models.TableBillPayments,
			TargetId: &targetId,
		}, func(ctx context.Context, tx repositories.Transaction) (models.BillPayment, error) {
			return models.BillPayment{}, nil
		})

		assert.ErrorIs(t, err, models.BadParameterError)
		assert.NoError(t, stub.Mock.ExpectationsWereMet())
	})
}
