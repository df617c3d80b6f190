package dbmodels

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/opsdesk/opsdesk-backend/models"
	"github.com/opsdesk/opsdesk-backend/pure_utils"
	"github.com/opsdesk/opsdesk-backend/utils"
)

type DbJournalEntry struct {
	Id            uuid.UUID       `db:"id"`
	EntryDate     time.Time       `db:"entry_date"`
	ReferenceType string          `db:"reference_type"`
	ReferenceId   *uuid.UUID      `db:"reference_id"`
	Description   *string         `db:"description"`
	TotalDebit    decimal.Decimal `db:"total_debit"`
	TotalCredit   decimal.Decimal `db:"total_credit"`
	ActorUserId   *uuid.UUID      `db:"actor_user_id"`
	CreatedAt     time.Time       `db:"created_at"`
}

type DbJournalEntryLine struct {
	Id               uuid.UUID       `db:"id"`
	JournalEntryId   uuid.UUID       `db:"journal_entry_id"`
	ChartOfAccountId uuid.UUID       `db:"chart_of_account_id"`
	Debit            decimal.Decimal `db:"debit"`
	Credit           decimal.Decimal `db:"credit"`
	Description      *string         `db:"description"`
}

const (
	TABLE_JOURNAL_ENTRIES     = "journal_entries"
	TABLE_JOURNAL_ENTRY_LINES = "journal_entry_lines"
)

var (
	SelectJournalEntryColumns     = utils.ColumnList[DbJournalEntry]()
	SelectJournalEntryLineColumns = utils.ColumnList[DbJournalEntryLine]()
)

func AdaptJournalEntry(db DbJournalEntry) (models.JournalEntry, error) {
	return models.JournalEntry{
		Id:            db.Id,
		EntryDate:     db.EntryDate,
		ReferenceType: models.JournalReferenceType(db.ReferenceType),
		ReferenceId:   db.ReferenceId,
		Description:   pure_utils.PtrValueOrDefault(db.Description, ""),
		TotalDebit:    db.TotalDebit,
		TotalCredit:   db.TotalCredit,
		ActorUserId:   db.ActorUserId,
		CreatedAt:     db.CreatedAt,
	}, nil
}

func AdaptJournalEntryLine(db DbJournalEntryLine) (models.JournalEntryLine, error) {
	return models.JournalEntryLine{
		Id:               db.Id,
		JournalEntryId:   db.JournalEntryId,
		ChartOfAccountId: db.ChartOfAccountId,
		Debit:            db.Debit,
		Credit:           db.Credit,
		Description:      pure_utils.PtrValueOrDefault(db.Description, ""),
	}, nil
}
