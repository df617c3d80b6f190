package repositories

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/opsdesk/opsdesk-backend/models"
	"github.com/opsdesk/opsdesk-backend/repositories/dbmodels"
)

// CreateAuditRecord appends one immutable audit row. There is deliberately no
// update or delete counterpart: the audit trail is append-only.
func (repo *OpsDbRepository) CreateAuditRecord(
	ctx context.Context,
	exec Executor,
	input models.CreateAuditRecordInput,
) (uuid.UUID, error) {
	id := uuid.New()

	err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Insert(dbmodels.TABLE_AUDIT_RECORDS).
			Columns(
				"id",
				"actor_user_id",
				"actor_name",
				"action",
				"table_name",
				"record_id",
				"old_state",
				"new_state",
				"note",
				"caller_address",
				"caller_agent",
			).
			Values(
				id,
				input.ActorUserId,
				nilIfEmpty(input.ActorName),
				string(input.Action),
				string(input.Table),
				input.RecordId,
				input.OldState,
				input.NewState,
				nilIfEmpty(input.Note),
				input.CallerAddress,
				input.CallerAgent,
			),
	)
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (repo *OpsDbRepository) GetAuditRecord(ctx context.Context, exec Executor, id uuid.UUID) (models.AuditRecord, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectAuditRecordColumns...).
		From(dbmodels.TABLE_AUDIT_RECORDS).
		Where("id = ?", id)

	return SqlToModel(ctx, exec, query, dbmodels.AdaptAuditRecord)
}

func (repo *OpsDbRepository) ListAuditRecords(
	ctx context.Context,
	exec Executor,
	pagination models.PaginationAndSorting,
	filters models.AuditRecordFilters,
) ([]models.AuditRecord, error) {
	pagination = models.WithPaginationDefaults(pagination)

	query := NewQueryBuilder().
		Select(append(
			columnsNames("ar", dbmodels.SelectAuditRecordColumns),
			"u.first_name || ' ' || u.last_name as user_name",
		)...).
		From(dbmodels.TABLE_AUDIT_RECORDS + " ar").
		LeftJoin(dbmodels.TABLE_USERS + " u on u.id = ar.actor_user_id").
		OrderBy("ar.created_at desc, ar.id desc").
		Limit(uint64(pagination.Limit))

	if pagination.OffsetId != "" {
		cursorId, err := uuid.Parse(pagination.OffsetId)
		if err != nil {
			return nil, errors.Wrap(models.BadParameterError, "invalid pagination cursor")
		}
		cursor, err := repo.GetAuditRecord(ctx, exec, cursorId)
		if err != nil {
			return nil, errors.Wrap(err, "could not retrieve cursor record")
		}

		query = query.Where("(ar.created_at, ar.id) < (?, ?)", cursor.CreatedAt, cursor.Id)
	}
	if filters.Table != "" {
		query = query.Where("ar.table_name = ?", string(filters.Table))
	}
	if filters.RecordId != nil {
		query = query.Where("ar.record_id = ?", *filters.RecordId)
	}
	if filters.ActorUserId != nil {
		query = query.Where("ar.actor_user_id = ?", *filters.ActorUserId)
	}
	if !filters.From.IsZero() {
		query = query.Where("ar.created_at >= ?", filters.From)
	}
	if !filters.To.IsZero() {
		query = query.Where("ar.created_at < ?", filters.To)
	}

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptAuditRecordWithActor)
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
