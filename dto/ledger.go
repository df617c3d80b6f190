package dto

import (
	"time"

	"github.com/opsdesk/opsdesk-backend/models"
	"github.com/opsdesk/opsdesk-backend/pure_utils"
)

type JournalEntry struct {
	Id            string             `json:"id"`
	EntryDate     time.Time          `json:"entry_date"`
	ReferenceType string             `json:"reference_type"`
	ReferenceId   *string            `json:"reference_id"`
	Description   string             `json:"description,omitempty"`
	TotalDebit    string             `json:"total_debit"`
	TotalCredit   string             `json:"total_credit"`
	Lines         []JournalEntryLine `json:"lines"`
	CreatedAt     time.Time          `json:"created_at"`
}

type JournalEntryLine struct {
	Id               string `json:"id"`
	ChartOfAccountId string `json:"chart_of_account_id"`
	Debit            string `json:"debit"`
	Credit           string `json:"credit"`
	Description      string `json:"description,omitempty"`
}

func AdaptJournalEntry(entry models.JournalEntry) JournalEntry {
	out := JournalEntry{
		Id:            entry.Id.String(),
		EntryDate:     entry.EntryDate,
		ReferenceType: string(entry.ReferenceType),
		Description:   entry.Description,
		TotalDebit:    entry.TotalDebit.StringFixed(2),
		TotalCredit:   entry.TotalCredit.StringFixed(2),
		Lines:         pure_utils.Map(entry.Lines, AdaptJournalEntryLine),
		CreatedAt:     entry.CreatedAt,
	}
	if entry.ReferenceId != nil {
		id := entry.ReferenceId.String()
		out.ReferenceId = &id
	}
	return out
}

func AdaptJournalEntryLine(line models.JournalEntryLine) JournalEntryLine {
	return JournalEntryLine{
		Id:               line.Id.String(),
		ChartOfAccountId: line.ChartOfAccountId.String(),
		Debit:            line.Debit.StringFixed(2),
		Credit:           line.Credit.StringFixed(2),
		Description:      line.Description,
	}
}

type ChartOfAccount struct {
	Id   string `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
	Type string `json:"type"`
}

func AdaptChartOfAccount(account models.ChartOfAccount) ChartOfAccount {
	return ChartOfAccount{
		Id:   account.Id.String(),
		Code: account.Code,
		Name: account.Name,
		Type: string(account.Type),
	}
}
