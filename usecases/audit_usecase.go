package usecases

import (
	"context"

	"github.com/google/uuid"

	"github.com/opsdesk/opsdesk-backend/models"
	"github.com/opsdesk/opsdesk-backend/repositories"
	"github.com/opsdesk/opsdesk-backend/usecases/executor_factory"
)

type auditReadRepository interface {
	GetAuditRecord(ctx context.Context, exec repositories.Executor, id uuid.UUID) (models.AuditRecord, error)
	ListAuditRecords(ctx context.Context, exec repositories.Executor,
		pagination models.PaginationAndSorting, filters models.AuditRecordFilters) ([]models.AuditRecord, error)
}

// AuditUsecase is the read side of the audit trail, consumed by reporting and
// reconciliation surfaces. The write side only exists inside the audit runner.
type AuditUsecase struct {
	executorFactory executor_factory.ExecutorFactory
	repository      auditReadRepository
}

func NewAuditUsecase(
	executorFactory executor_factory.ExecutorFactory,
	repository auditReadRepository,
) AuditUsecase {
	return AuditUsecase{
		executorFactory: executorFactory,
		repository:      repository,
	}
}

func (uc AuditUsecase) GetAuditRecord(ctx context.Context, id uuid.UUID) (models.AuditRecord, error) {
	return uc.repository.GetAuditRecord(ctx, uc.executorFactory.NewExecutor(), id)
}

func (uc AuditUsecase) ListAuditRecords(
	ctx context.Context,
	pagination models.PaginationAndSorting,
	filters models.AuditRecordFilters,
) ([]models.AuditRecord, error) {
	return uc.repository.ListAuditRecords(ctx, uc.executorFactory.NewExecutor(), pagination, filters)
}
