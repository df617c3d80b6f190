package usecases

import (
	"context"

	"github.com/google/uuid"

	"github.com/opsdesk/opsdesk-backend/models"
	"github.com/opsdesk/opsdesk-backend/repositories"
	"github.com/opsdesk/opsdesk-backend/usecases/executor_factory"
)

type userReader interface {
	UserById(ctx context.Context, exec repositories.Executor, userId uuid.UUID) (models.User, error)
}

// CredentialsUsecase resolves the acting user for the request middleware.
// Authentication itself is an external collaborator: this only maps an
// already-established user id to its identity.
type CredentialsUsecase struct {
	executorFactory executor_factory.ExecutorFactory
	repository      userReader
}

func NewCredentialsUsecase(
	executorFactory executor_factory.ExecutorFactory,
	repository userReader,
) CredentialsUsecase {
	return CredentialsUsecase{
		executorFactory: executorFactory,
		repository:      repository,
	}
}

func (uc CredentialsUsecase) CredentialsForUser(ctx context.Context, userId uuid.UUID) (models.Credentials, error) {
	user, err := uc.repository.UserById(ctx, uc.executorFactory.NewExecutor(), userId)
	if err != nil {
		return models.Credentials{}, err
	}
	return user.IntoCredentials(), nil
}
