package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/opsdesk/opsdesk-backend/models"
	"github.com/opsdesk/opsdesk-backend/repositories/dbmodels"
)

// CreateJournalEntry inserts the entry header. Totals are the computed sums
// passed down by the ledger usecase, never caller-supplied values.
func (repo *OpsDbRepository) CreateJournalEntry(
	ctx context.Context,
	exec Executor,
	entry models.JournalEntry,
) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Insert(dbmodels.TABLE_JOURNAL_ENTRIES).
			Columns(
				"id",
				"entry_date",
				"reference_type",
				"reference_id",
				"description",
				"total_debit",
				"total_credit",
				"actor_user_id",
			).
			Values(
				entry.Id,
				entry.EntryDate,
				string(entry.ReferenceType),
				entry.ReferenceId,
				nilIfEmpty(entry.Description),
				entry.TotalDebit,
				entry.TotalCredit,
				entry.ActorUserId,
			),
	)
}

func (repo *OpsDbRepository) CreateJournalEntryLines(
	ctx context.Context,
	exec Executor,
	lines []models.JournalEntryLine,
) error {
	query := NewQueryBuilder().Insert(dbmodels.TABLE_JOURNAL_ENTRY_LINES).
		Columns(
			"id",
			"journal_entry_id",
			"chart_of_account_id",
			"debit",
			"credit",
			"description",
		)
	for _, line := range lines {
		query = query.Values(
			line.Id,
			line.JournalEntryId,
			line.ChartOfAccountId,
			line.Debit,
			line.Credit,
			nilIfEmpty(line.Description),
		)
	}

	return ExecBuilder(ctx, exec, query)
}

func (repo *OpsDbRepository) GetJournalEntry(ctx context.Context, exec Executor, id uuid.UUID) (models.JournalEntry, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectJournalEntryColumns...).
		From(dbmodels.TABLE_JOURNAL_ENTRIES).
		Where("id = ?", id)

	entry, err := SqlToModel(ctx, exec, query, dbmodels.AdaptJournalEntry)
	if err != nil {
		return models.JournalEntry{}, err
	}

	entry.Lines, err = repo.ListJournalEntryLines(ctx, exec, id)
	if err != nil {
		return models.JournalEntry{}, err
	}
	return entry, nil
}

func (repo *OpsDbRepository) ListJournalEntryLines(
	ctx context.Context,
	exec Executor,
	journalEntryId uuid.UUID,
) ([]models.JournalEntryLine, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectJournalEntryLineColumns...).
		From(dbmodels.TABLE_JOURNAL_ENTRY_LINES).
		Where("journal_entry_id = ?", journalEntryId).
		OrderBy("id")

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptJournalEntryLine)
}

func (repo *OpsDbRepository) ChartOfAccountsByIds(
	ctx context.Context,
	exec Executor,
	accountIds []uuid.UUID,
) ([]models.ChartOfAccount, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectChartOfAccountColumns...).
		From(dbmodels.TABLE_CHART_OF_ACCOUNTS).
		Where("id = any(?)", accountIds)

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptChartOfAccount)
}

func (repo *OpsDbRepository) ChartOfAccountByCode(
	ctx context.Context,
	exec Executor,
	code string,
) (models.ChartOfAccount, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectChartOfAccountColumns...).
		From(dbmodels.TABLE_CHART_OF_ACCOUNTS).
		Where("code = ?", code)

	return SqlToModel(ctx, exec, query, dbmodels.AdaptChartOfAccount)
}

func (repo *OpsDbRepository) ListChartOfAccounts(ctx context.Context, exec Executor) ([]models.ChartOfAccount, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectChartOfAccountColumns...).
		From(dbmodels.TABLE_CHART_OF_ACCOUNTS).
		OrderBy("code")

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptChartOfAccount)
}
