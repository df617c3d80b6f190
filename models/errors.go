package models

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"
)

// Base errors, related to default API status codes
var (
	// BadParameterError is rendered with the http status code 400
	BadParameterError = errors.New("bad parameter")

	// UnAuthorizedError is rendered with the http status code 401
	UnAuthorizedError = errors.New("unauthorized")

	// ForbiddenError is rendered with the http status code 403
	ForbiddenError = errors.New("forbidden")

	// NotFoundError is rendered with the http status code 404
	NotFoundError = errors.New("not found")

	// ConflictError is rendered with the http status code 409
	ConflictError = errors.New("duplicate value")
)

// Audit engine errors
var (
	// ErrAuditWrite marks a failure to persist the audit record itself. It is
	// fatal to the whole unit of work: a mutation without its audit trail must
	// never be committed.
	ErrAuditWrite = errors.New("audit record write failed")

	ErrAuditRecordIdMissing = errors.Wrap(BadParameterError,
		"audited action has no resolvable record id")
)

// Ledger errors
var (
	ErrEmptyJournalEntry = errors.Wrap(BadParameterError,
		"a journal entry must have at least one line")
	ErrUnknownLedgerAccount = errors.Wrap(NotFoundError,
		"journal line references an unknown ledger account")
)

// LedgerImbalanceError carries both computed totals so the caller can render a
// precise message. It matches BadParameterError through errors.Is.
type LedgerImbalanceError struct {
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
}

func (e LedgerImbalanceError) Error() string {
	return fmt.Sprintf("journal entry is not balanced: total debit %s, total credit %s",
		e.TotalDebit.String(), e.TotalCredit.String())
}

func (e LedgerImbalanceError) Unwrap() error {
	return BadParameterError
}
