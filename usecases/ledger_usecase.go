package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/opsdesk/opsdesk-backend/models"
	"github.com/opsdesk/opsdesk-backend/pure_utils"
	"github.com/opsdesk/opsdesk-backend/repositories"
	"github.com/opsdesk/opsdesk-backend/usecases/executor_factory"
)

type ledgerRepository interface {
	CreateJournalEntry(ctx context.Context, exec repositories.Executor, entry models.JournalEntry) error
	CreateJournalEntryLines(ctx context.Context, exec repositories.Executor, lines []models.JournalEntryLine) error
	GetJournalEntry(ctx context.Context, exec repositories.Executor, id uuid.UUID) (models.JournalEntry, error)
	ChartOfAccountsByIds(ctx context.Context, exec repositories.Executor, accountIds []uuid.UUID) ([]models.ChartOfAccount, error)
	ChartOfAccountByCode(ctx context.Context, exec repositories.Executor, code string) (models.ChartOfAccount, error)
	ListChartOfAccounts(ctx context.Context, exec repositories.Executor) ([]models.ChartOfAccount, error)
}

type LedgerUsecase struct {
	executorFactory executor_factory.ExecutorFactory
	repository      ledgerRepository
}

func NewLedgerUsecase(
	executorFactory executor_factory.ExecutorFactory,
	repository ledgerRepository,
) LedgerUsecase {
	return LedgerUsecase{
		executorFactory: executorFactory,
		repository:      repository,
	}
}

// PostJournalEntry validates and persists one balanced journal entry inside
// the caller's transaction. It never commits: commit authority stays with the
// transaction provider, so a failed posting rolls back the caller's whole
// unit of work.
func (uc LedgerUsecase) PostJournalEntry(
	ctx context.Context,
	tx repositories.Transaction,
	input models.CreateJournalEntryInput,
) (models.JournalEntry, error) {
	if err := input.ValidateLines(); err != nil {
		return models.JournalEntry{}, err
	}

	totalDebit, totalCredit := input.Totals()
	if totalDebit.Sub(totalCredit).Abs().GreaterThan(models.BalanceTolerance) {
		return models.JournalEntry{}, errors.WithStack(models.LedgerImbalanceError{
			TotalDebit:  totalDebit,
			TotalCredit: totalCredit,
		})
	}

	if err := uc.checkAccountsExist(ctx, tx, input.Lines); err != nil {
		return models.JournalEntry{}, err
	}

	entry := models.JournalEntry{
		Id:            uuid.New(),
		EntryDate:     input.EntryDate,
		ReferenceType: input.ReferenceType,
		ReferenceId:   input.ReferenceId,
		Description:   input.Description,
		TotalDebit:    totalDebit,
		TotalCredit:   totalCredit,
		ActorUserId:   input.ActorUserId,
	}
	if err := uc.repository.CreateJournalEntry(ctx, tx, entry); err != nil {
		return models.JournalEntry{}, err
	}

	entry.Lines = pure_utils.Map(input.Lines,
		func(line models.CreateJournalEntryLineInput) models.JournalEntryLine {
			return models.JournalEntryLine{
				Id:               uuid.New(),
				JournalEntryId:   entry.Id,
				ChartOfAccountId: line.ChartOfAccountId,
				Debit:            line.Debit,
				Credit:           line.Credit,
				Description:      line.Description,
			}
		})
	if err := uc.repository.CreateJournalEntryLines(ctx, tx, entry.Lines); err != nil {
		return models.JournalEntry{}, err
	}

	return entry, nil
}

// ReverseJournalEntry posts a new entry offsetting the original one, with
// debits and credits swapped. Journal entries are never edited in place.
func (uc LedgerUsecase) ReverseJournalEntry(
	ctx context.Context,
	tx repositories.Transaction,
	entryId uuid.UUID,
	entryDate time.Time,
	actorUserId *uuid.UUID,
	description string,
) (models.JournalEntry, error) {
	original, err := uc.repository.GetJournalEntry(ctx, tx, entryId)
	if err != nil {
		return models.JournalEntry{}, err
	}

	if description == "" {
		description = fmt.Sprintf("Reversal of journal entry %s", original.Id)
	}

	return uc.PostJournalEntry(ctx, tx, models.CreateJournalEntryInput{
		EntryDate:     entryDate,
		ReferenceType: models.JournalRefReversal,
		ReferenceId:   &original.Id,
		ActorUserId:   actorUserId,
		Description:   description,
		Lines: pure_utils.Map(original.Lines,
			func(line models.JournalEntryLine) models.CreateJournalEntryLineInput {
				return models.CreateJournalEntryLineInput{
					ChartOfAccountId: line.ChartOfAccountId,
					Debit:            line.Credit,
					Credit:           line.Debit,
					Description:      line.Description,
				}
			}),
	})
}

func (uc LedgerUsecase) checkAccountsExist(
	ctx context.Context,
	tx repositories.Transaction,
	lines []models.CreateJournalEntryLineInput,
) error {
	seen := make(map[uuid.UUID]struct{}, len(lines))
	accountIds := make([]uuid.UUID, 0, len(lines))
	for _, line := range lines {
		if _, ok := seen[line.ChartOfAccountId]; ok {
			continue
		}
		seen[line.ChartOfAccountId] = struct{}{}
		accountIds = append(accountIds, line.ChartOfAccountId)
	}

	accounts, err := uc.repository.ChartOfAccountsByIds(ctx, tx, accountIds)
	if err != nil {
		return err
	}
	if len(accounts) != len(accountIds) {
		found := make(map[uuid.UUID]struct{}, len(accounts))
		for _, account := range accounts {
			found[account.Id] = struct{}{}
		}
		for _, accountId := range accountIds {
			if _, ok := found[accountId]; !ok {
				return errors.WithDetail(models.ErrUnknownLedgerAccount,
					fmt.Sprintf("account id %s", accountId))
			}
		}
	}
	return nil
}

func (uc LedgerUsecase) GetJournalEntry(ctx context.Context, id uuid.UUID) (models.JournalEntry, error) {
	return uc.repository.GetJournalEntry(ctx, uc.executorFactory.NewExecutor(), id)
}

func (uc LedgerUsecase) ListChartOfAccounts(ctx context.Context) ([]models.ChartOfAccount, error) {
	return uc.repository.ListChartOfAccounts(ctx, uc.executorFactory.NewExecutor())
}
