package models

import (
	"fmt"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BalanceTolerance absorbs decimal rounding when comparing total debits and
// credits, in the minor currency unit.
var BalanceTolerance = decimal.NewFromFloat(0.001)

// JournalReferenceType identifies the business action a journal entry
// originates from.
type JournalReferenceType string

const (
	JournalRefBillPayment         JournalReferenceType = "bill_payment"
	JournalRefIncome              JournalReferenceType = "income"
	JournalRefInventoryAdjustment JournalReferenceType = "inventory_adjustment"
	JournalRefReversal            JournalReferenceType = "reversal"
	JournalRefManual              JournalReferenceType = "manual"
)

// JournalEntry is immutable after creation: corrections are made by posting a
// new offsetting entry, never by editing.
type JournalEntry struct {
	Id            uuid.UUID
	EntryDate     time.Time
	ReferenceType JournalReferenceType
	ReferenceId   *uuid.UUID
	Description   string
	TotalDebit    decimal.Decimal
	TotalCredit   decimal.Decimal
	ActorUserId   *uuid.UUID
	CreatedAt     time.Time

	Lines []JournalEntryLine
}

type JournalEntryLine struct {
	Id               uuid.UUID
	JournalEntryId   uuid.UUID
	ChartOfAccountId uuid.UUID
	Debit            decimal.Decimal
	Credit           decimal.Decimal
	Description      string
}

type CreateJournalEntryLineInput struct {
	ChartOfAccountId uuid.UUID
	Debit            decimal.Decimal
	Credit           decimal.Decimal
	Description      string
}

type CreateJournalEntryInput struct {
	EntryDate     time.Time
	ReferenceType JournalReferenceType
	ReferenceId   *uuid.UUID
	ActorUserId   *uuid.UUID
	Description   string
	Lines         []CreateJournalEntryLineInput
}

// ValidateLines checks the shape of every line: non-negative amounts, with
// exactly one of debit and credit non-zero.
func (input CreateJournalEntryInput) ValidateLines() error {
	if len(input.Lines) == 0 {
		return errors.WithStack(ErrEmptyJournalEntry)
	}
	for i, line := range input.Lines {
		if line.ChartOfAccountId == uuid.Nil {
			return errors.Wrap(BadParameterError,
				fmt.Sprintf("journal line %d has no ledger account", i))
		}
		if line.Debit.IsNegative() || line.Credit.IsNegative() {
			return errors.Wrap(BadParameterError,
				fmt.Sprintf("journal line %d has a negative amount", i))
		}
		if line.Debit.IsPositive() == line.Credit.IsPositive() {
			return errors.Wrap(BadParameterError,
				fmt.Sprintf("journal line %d must have exactly one of debit and credit set", i))
		}
	}
	return nil
}

// Totals sums debits and credits across all lines.
func (input CreateJournalEntryInput) Totals() (totalDebit, totalCredit decimal.Decimal) {
	for _, line := range input.Lines {
		totalDebit = totalDebit.Add(line.Debit)
		totalCredit = totalCredit.Add(line.Credit)
	}
	return totalDebit, totalCredit
}

type AccountType string

const (
	AccountTypeAsset     AccountType = "asset"
	AccountTypeLiability AccountType = "liability"
	AccountTypeEquity    AccountType = "equity"
	AccountTypeRevenue   AccountType = "revenue"
	AccountTypeExpense   AccountType = "expense"
)

// Well-known account codes seeded by the migrations, used by the built-in
// business actions.
const (
	AccountCodeCash            = "1000"
	AccountCodeAccountsPayable = "2000"
)

type ChartOfAccount struct {
	Id        uuid.UUID
	Code      string
	Name      string
	Type      AccountType
	CreatedAt time.Time
}
