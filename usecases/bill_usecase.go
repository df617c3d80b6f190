package usecases

import (
	"context"

	"github.com/google/uuid"

	"github.com/opsdesk/opsdesk-backend/models"
	"github.com/opsdesk/opsdesk-backend/repositories"
	"github.com/opsdesk/opsdesk-backend/usecases/executor_factory"
)

type billReadRepository interface {
	GetBill(ctx context.Context, exec repositories.Executor, id uuid.UUID) (models.Bill, error)
}

// BillUsecase is the read side of bills. Mutations only happen through the
// payment usecase, inside an audited unit of work.
type BillUsecase struct {
	executorFactory executor_factory.ExecutorFactory
	repository      billReadRepository
}

func NewBillUsecase(
	executorFactory executor_factory.ExecutorFactory,
	repository billReadRepository,
) BillUsecase {
	return BillUsecase{
		executorFactory: executorFactory,
		repository:      repository,
	}
}

func (uc BillUsecase) GetBill(ctx context.Context, id uuid.UUID) (models.Bill, error) {
	return uc.repository.GetBill(ctx, uc.executorFactory.NewExecutor(), id)
}
