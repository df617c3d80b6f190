package usecases

import (
	"github.com/opsdesk/opsdesk-backend/repositories"
	"github.com/opsdesk/opsdesk-backend/usecases/executor_factory"
)

type Usecases struct {
	executorFactory executor_factory.ExecutorFactory
	repository      *repositories.OpsDbRepository
}

func NewUsecases(
	executorFactory executor_factory.ExecutorFactory,
	repository *repositories.OpsDbRepository,
) Usecases {
	return Usecases{
		executorFactory: executorFactory,
		repository:      repository,
	}
}

func (u Usecases) NewAuditRunner() AuditRunner {
	return NewAuditRunner(u.executorFactory, u.repository)
}

func (u Usecases) NewAuditUsecase() AuditUsecase {
	return NewAuditUsecase(u.executorFactory, u.repository)
}

func (u Usecases) NewLedgerUsecase() LedgerUsecase {
	return NewLedgerUsecase(u.executorFactory, u.repository)
}

func (u Usecases) NewBillUsecase() BillUsecase {
	return NewBillUsecase(u.executorFactory, u.repository)
}

func (u Usecases) NewPaymentUsecase() PaymentUsecase {
	return NewPaymentUsecase(u.NewAuditRunner(), u.NewLedgerUsecase(), u.repository)
}

func (u Usecases) NewCredentialsUsecase() CredentialsUsecase {
	return NewCredentialsUsecase(u.executorFactory, u.repository)
}
