package usecases

import (
	"context"
	"encoding/json"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/opsdesk/opsdesk-backend/models"
	"github.com/opsdesk/opsdesk-backend/repositories"
	"github.com/opsdesk/opsdesk-backend/usecases/executor_factory"
	"github.com/opsdesk/opsdesk-backend/utils"
)

type auditRunnerRepository interface {
	CreateAuditRecord(ctx context.Context, exec repositories.Executor,
		input models.CreateAuditRecordInput) (uuid.UUID, error)
	SnapshotRowForUpdate(ctx context.Context, tx repositories.Transaction,
		table models.AuditableTable, recordId uuid.UUID) (json.RawMessage, error)
	ReadRowState(ctx context.Context, exec repositories.Executor,
		table models.AuditableTable, recordId uuid.UUID) (json.RawMessage, error)
	UserById(ctx context.Context, exec repositories.Executor, userId uuid.UUID) (models.User, error)
}

// AuditRunner executes business logic inside one unit of work and guarantees
// that every committed mutation carries exactly one audit record. On any
// failure, snapshot, mutation and audit write roll back together: the caller
// observes full success or no effect at all.
type AuditRunner struct {
	executorFactory executor_factory.ExecutorFactory
	repository      auditRunnerRepository
}

func NewAuditRunner(
	executorFactory executor_factory.ExecutorFactory,
	repository auditRunnerRepository,
) AuditRunner {
	return AuditRunner{
		executorFactory: executorFactory,
		repository:      repository,
	}
}

// RunAudited wraps a business mutation of an existing record (UPDATE, DELETE
// or ADJUSTMENT). The pre-mutation state is snapshotted with a row lock before
// fn runs, the post-mutation state is captured after, and the audit record is
// written before commit.
func RunAudited[T any](
	ctx context.Context,
	runner AuditRunner,
	action models.AuditedAction,
	fn func(ctx context.Context, tx repositories.Transaction) (T, error),
) (T, error) {
	var zero T
	if err := action.Validate(); err != nil {
		return zero, err
	}
	if action.Kind == models.AuditActionCreate {
		return zero, errors.Wrap(models.BadParameterError,
			"create actions must go through RunAuditedCreate")
	}

	return executor_factory.TransactionReturnValue(ctx, runner.executorFactory,
		func(tx repositories.Transaction) (T, error) {
			var oldState json.RawMessage
			if action.Kind.RequiresSnapshot() {
				var err error
				oldState, err = runner.repository.SnapshotRowForUpdate(ctx, tx, action.Table, *action.TargetId)
				if err != nil {
					return zero, err
				}
			}

			result, err := fn(ctx, tx)
			if err != nil {
				return zero, err
			}

			var newState json.RawMessage
			if action.Kind != models.AuditActionDelete {
				newState, err = runner.repository.ReadRowState(ctx, tx, action.Table, *action.TargetId)
				if err != nil {
					return zero, err
				}
			}

			if err := runner.recordAudit(ctx, tx, action, *action.TargetId, oldState, newState); err != nil {
				return zero, err
			}
			return result, nil
		})
}

// RunAuditedCreate wraps a business mutation that creates a new record. The
// Identifiable constraint makes the audit record id resolvable from the
// result by construction.
func RunAuditedCreate[T models.Identifiable](
	ctx context.Context,
	runner AuditRunner,
	action models.AuditedAction,
	fn func(ctx context.Context, tx repositories.Transaction) (T, error),
) (T, error) {
	var zero T
	if err := action.Validate(); err != nil {
		return zero, err
	}
	if action.Kind != models.AuditActionCreate {
		return zero, errors.Wrap(models.BadParameterError,
			"RunAuditedCreate only accepts create actions")
	}

	return executor_factory.TransactionReturnValue(ctx, runner.executorFactory,
		func(tx repositories.Transaction) (T, error) {
			result, err := fn(ctx, tx)
			if err != nil {
				return zero, err
			}

			recordId := result.RecordId()
			if recordId == uuid.Nil {
				return zero, errors.WithStack(models.ErrAuditRecordIdMissing)
			}

			newState, err := runner.repository.ReadRowState(ctx, tx, action.Table, recordId)
			if err != nil {
				return zero, err
			}
			if newState == nil {
				return zero, errors.Wrap(models.NotFoundError,
					"created record not found when capturing its audit snapshot")
			}

			if err := runner.recordAudit(ctx, tx, action, recordId, nil, newState); err != nil {
				return zero, err
			}
			return result, nil
		})
}

func (runner AuditRunner) recordAudit(
	ctx context.Context,
	tx repositories.Transaction,
	action models.AuditedAction,
	recordId uuid.UUID,
	oldState, newState json.RawMessage,
) error {
	creds, _ := utils.CredentialsFromCtx(ctx)
	meta := utils.RequestMetadataFromCtx(ctx)

	actorUserId := creds.ActorIdentity.UserId
	actorName := creds.ActorName()
	if actorName == "" && actorUserId != nil {
		// best effort: a missing name never fails the action
		user, err := runner.repository.UserById(ctx, tx, *actorUserId)
		if err != nil {
			utils.LoggerFromContext(ctx).WarnContext(ctx,
				"could not resolve actor name for audit record",
				"actor_user_id", actorUserId.String(), "error", err.Error())
		} else {
			actorName = user.FullName()
		}
	}
	if actorName == "" {
		actorName = "system"
	}

	note := action.Note
	if note == "" {
		note = action.Name
	}

	_, err := runner.repository.CreateAuditRecord(ctx, tx, models.CreateAuditRecordInput{
		ActorUserId:   actorUserId,
		ActorName:     actorName,
		Action:        action.Kind,
		Table:         action.Table,
		RecordId:      &recordId,
		OldState:      oldState,
		NewState:      newState,
		Note:          note,
		CallerAddress: meta.CallerAddress,
		CallerAgent:   meta.CallerAgent,
	})
	if err != nil {
		// the sentinel leads the chain so any errors.Is implementation can
		// classify the failure; the db error rides along for reporting
		return errors.WithSecondaryError(
			errors.Wrap(models.ErrAuditWrite, "writing audit record"), err)
	}
	return nil
}
