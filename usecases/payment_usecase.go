package usecases

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/opsdesk/opsdesk-backend/models"
	"github.com/opsdesk/opsdesk-backend/repositories"
	"github.com/opsdesk/opsdesk-backend/utils"
)

type paymentRepository interface {
	GetBillForUpdate(ctx context.Context, tx repositories.Transaction, id uuid.UUID) (models.Bill, error)
	UpdateBillPaidAmount(ctx context.Context, exec repositories.Executor, billId uuid.UUID,
		paidAmount decimal.Decimal, status models.BillStatus) error
	GetBillPayment(ctx context.Context, exec repositories.Executor, id uuid.UUID) (models.BillPayment, error)
	CreateBillPayment(ctx context.Context, exec repositories.Executor, payment models.BillPayment) error
	MarkBillPaymentVoided(ctx context.Context, exec repositories.Executor,
		paymentId uuid.UUID, voidedAt time.Time) error
	ChartOfAccountByCode(ctx context.Context, exec repositories.Executor, code string) (models.ChartOfAccount, error)
}

// PaymentUsecase records and voids bill payments. It is the reference call
// site of the audit runner and the ledger poster: every mutation goes through
// one audited unit of work and posts a balanced journal entry.
type PaymentUsecase struct {
	runner     AuditRunner
	ledger     LedgerUsecase
	repository paymentRepository
}

func NewPaymentUsecase(
	runner AuditRunner,
	ledger LedgerUsecase,
	repository paymentRepository,
) PaymentUsecase {
	return PaymentUsecase{
		runner:     runner,
		ledger:     ledger,
		repository: repository,
	}
}

type RecordBillPaymentInput struct {
	BillId uuid.UUID
	Amount decimal.Decimal
	Method string
	PaidAt time.Time
	Note   string
}

func (uc PaymentUsecase) RecordBillPayment(
	ctx context.Context,
	input RecordBillPaymentInput,
) (models.BillPayment, error) {
	if !input.Amount.IsPositive() {
		return models.BillPayment{}, errors.Wrap(models.BadParameterError,
			"payment amount must be strictly positive")
	}
	if input.PaidAt.IsZero() {
		input.PaidAt = time.Now()
	}

	creds, _ := utils.CredentialsFromCtx(ctx)

	action := models.AuditedAction{
		Name:  "recordBillPayment",
		Kind:  models.AuditActionCreate,
		Table: models.TableBillPayments,
		Note:  input.Note,
	}

	return RunAuditedCreate(ctx, uc.runner, action,
		func(ctx context.Context, tx repositories.Transaction) (models.BillPayment, error) {
			bill, err := uc.repository.GetBillForUpdate(ctx, tx, input.BillId)
			if err != nil {
				return models.BillPayment{}, err
			}
			if bill.Status == models.BillStatusVoid {
				return models.BillPayment{}, errors.Wrap(models.ForbiddenError,
					"cannot record a payment on a voided bill")
			}
			if input.Amount.GreaterThan(bill.RemainingAmount()) {
				return models.BillPayment{}, errors.Wrap(models.BadParameterError,
					"payment amount exceeds the remaining amount of the bill")
			}

			paymentId := uuid.New()
			entry, err := uc.postPaymentJournalEntry(ctx, tx, paymentId, input, creds)
			if err != nil {
				return models.BillPayment{}, err
			}

			payment := models.BillPayment{
				Id:             paymentId,
				BillId:         bill.Id,
				Amount:         input.Amount,
				Method:         input.Method,
				PaidAt:         input.PaidAt,
				JournalEntryId: &entry.Id,
			}
			if err := uc.repository.CreateBillPayment(ctx, tx, payment); err != nil {
				return models.BillPayment{}, err
			}

			newPaidAmount := bill.PaidAmount.Add(input.Amount)
			err = uc.repository.UpdateBillPaidAmount(ctx, tx, bill.Id,
				newPaidAmount, bill.StatusForPaidAmount(newPaidAmount))
			if err != nil {
				return models.BillPayment{}, err
			}

			return payment, nil
		})
}

// VoidBillPayment reverts a payment: flags it as voided, restores the bill's
// paid amount and posts the offsetting journal entry. The payment row itself
// is kept, matching the ledger's corrections-by-reversal rule.
func (uc PaymentUsecase) VoidBillPayment(ctx context.Context, paymentId uuid.UUID) (models.BillPayment, error) {
	creds, _ := utils.CredentialsFromCtx(ctx)
	if creds.Role != models.ROLE_ADMIN {
		return models.BillPayment{}, errors.Wrap(models.ForbiddenError,
			"voiding a bill payment requires the admin role")
	}

	action := models.AuditedAction{
		Name:     "voidBillPayment",
		Kind:     models.AuditActionUpdate,
		Table:    models.TableBillPayments,
		TargetId: &paymentId,
	}

	return RunAudited(ctx, uc.runner, action,
		func(ctx context.Context, tx repositories.Transaction) (models.BillPayment, error) {
			payment, err := uc.repository.GetBillPayment(ctx, tx, paymentId)
			if err != nil {
				return models.BillPayment{}, err
			}
			if payment.VoidedAt != nil {
				return models.BillPayment{}, errors.Wrap(models.ConflictError,
					"bill payment is already voided")
			}

			bill, err := uc.repository.GetBillForUpdate(ctx, tx, payment.BillId)
			if err != nil {
				return models.BillPayment{}, err
			}

			voidedAt := time.Now()
			if err := uc.repository.MarkBillPaymentVoided(ctx, tx, payment.Id, voidedAt); err != nil {
				return models.BillPayment{}, err
			}

			newPaidAmount := bill.PaidAmount.Sub(payment.Amount)
			err = uc.repository.UpdateBillPaidAmount(ctx, tx, bill.Id,
				newPaidAmount, bill.StatusForPaidAmount(newPaidAmount))
			if err != nil {
				return models.BillPayment{}, err
			}

			if payment.JournalEntryId != nil {
				_, err = uc.ledger.ReverseJournalEntry(ctx, tx, *payment.JournalEntryId,
					voidedAt, creds.ActorIdentity.UserId, "")
				if err != nil {
					return models.BillPayment{}, err
				}
			}

			payment.VoidedAt = &voidedAt
			return payment, nil
		})
}

func (uc PaymentUsecase) postPaymentJournalEntry(
	ctx context.Context,
	tx repositories.Transaction,
	paymentId uuid.UUID,
	input RecordBillPaymentInput,
	creds models.Credentials,
) (models.JournalEntry, error) {
	accountsPayable, err := uc.repository.ChartOfAccountByCode(ctx, tx, models.AccountCodeAccountsPayable)
	if err != nil {
		return models.JournalEntry{}, err
	}
	cash, err := uc.repository.ChartOfAccountByCode(ctx, tx, models.AccountCodeCash)
	if err != nil {
		return models.JournalEntry{}, err
	}

	return uc.ledger.PostJournalEntry(ctx, tx, models.CreateJournalEntryInput{
		EntryDate:     input.PaidAt,
		ReferenceType: models.JournalRefBillPayment,
		ReferenceId:   &paymentId,
		ActorUserId:   creds.ActorIdentity.UserId,
		Description:   "Bill payment",
		Lines: []models.CreateJournalEntryLineInput{
			{ChartOfAccountId: accountsPayable.Id, Debit: input.Amount},
			{ChartOfAccountId: cash.Id, Credit: input.Amount},
		},
	})
}
