package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/opsdesk/opsdesk-backend/models"
	"github.com/opsdesk/opsdesk-backend/repositories/dbmodels"
)

func (repo *OpsDbRepository) UserById(ctx context.Context, exec Executor, userId uuid.UUID) (models.User, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectUserColumns...).
		From(dbmodels.TABLE_USERS).
		Where("id = ?", userId)

	return SqlToModel(ctx, exec, query, dbmodels.AdaptUser)
}
