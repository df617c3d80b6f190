package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/opsdesk/opsdesk-backend/models"
)

// SnapshotRowForUpdate captures the current state of a record as jsonb, inside
// the caller's transaction, before the business logic mutates it. The row lock
// serializes concurrent audited actions targeting the same record, so the
// snapshot is guaranteed to be the state the mutation applies to.
func (repo *OpsDbRepository) SnapshotRowForUpdate(
	ctx context.Context,
	tx Transaction,
	table models.AuditableTable,
	recordId uuid.UUID,
) (json.RawMessage, error) {
	state, err := readRowState(ctx, tx, table, recordId, true)
	if err != nil {
		return nil, err
	}
	if state == nil {
		return nil, errors.Wrap(models.NotFoundError,
			fmt.Sprintf("no row '%s' in table %s", recordId, table))
	}
	return state, nil
}

// ReadRowState reads the post-mutation state of a record without locking.
// Returns nil without error when the row no longer exists (hard deletes).
func (repo *OpsDbRepository) ReadRowState(
	ctx context.Context,
	exec Executor,
	table models.AuditableTable,
	recordId uuid.UUID,
) (json.RawMessage, error) {
	return readRowState(ctx, exec, table, recordId, false)
}

func readRowState(
	ctx context.Context,
	exec Executor,
	table models.AuditableTable,
	recordId uuid.UUID,
	forUpdate bool,
) (json.RawMessage, error) {
	if err := table.Validate(); err != nil {
		return nil, err
	}

	// The table and pk names come from the static registry, not user input.
	query := fmt.Sprintf(`SELECT to_jsonb(t.*) FROM %s t WHERE t.%s = $1`,
		table.DbTable(), table.PrimaryKeyColumn())
	if forUpdate {
		query += " FOR UPDATE"
	}

	var state json.RawMessage
	err := exec.QueryRow(ctx, query, recordId).Scan(&state)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, fmt.Sprintf("error snapshotting row of table %s", table))
	}
	return state, nil
}
