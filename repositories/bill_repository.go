package repositories

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/opsdesk/opsdesk-backend/models"
	"github.com/opsdesk/opsdesk-backend/repositories/dbmodels"
)

func (repo *OpsDbRepository) GetBill(ctx context.Context, exec Executor, id uuid.UUID) (models.Bill, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectBillColumns...).
		From(dbmodels.TABLE_BILLS).
		Where("id = ?", id)

	return SqlToModel(ctx, exec, query, dbmodels.AdaptBill)
}

// GetBillForUpdate locks the bill row for the rest of the transaction, so that
// concurrent payments against the same bill serialize on its paid amount.
func (repo *OpsDbRepository) GetBillForUpdate(ctx context.Context, tx Transaction, id uuid.UUID) (models.Bill, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectBillColumns...).
		From(dbmodels.TABLE_BILLS).
		Where("id = ?", id).
		Suffix("FOR UPDATE")

	return SqlToModel(ctx, tx, query, dbmodels.AdaptBill)
}

func (repo *OpsDbRepository) UpdateBillPaidAmount(
	ctx context.Context,
	exec Executor,
	billId uuid.UUID,
	paidAmount decimal.Decimal,
	status models.BillStatus,
) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Update(dbmodels.TABLE_BILLS).
			Set("paid_amount", paidAmount).
			Set("status", string(status)).
			Set("updated_at", squirrel.Expr("NOW()")).
			Where("id = ?", billId),
	)
}

func (repo *OpsDbRepository) GetBillPayment(ctx context.Context, exec Executor, id uuid.UUID) (models.BillPayment, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectBillPaymentColumns...).
		From(dbmodels.TABLE_BILL_PAYMENTS).
		Where("id = ?", id)

	return SqlToModel(ctx, exec, query, dbmodels.AdaptBillPayment)
}

func (repo *OpsDbRepository) CreateBillPayment(ctx context.Context, exec Executor, payment models.BillPayment) error {
	err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Insert(dbmodels.TABLE_BILL_PAYMENTS).
			Columns(
				"id",
				"bill_id",
				"amount",
				"method",
				"paid_at",
				"journal_entry_id",
			).
			Values(
				payment.Id,
				payment.BillId,
				payment.Amount,
				payment.Method,
				payment.PaidAt,
				payment.JournalEntryId,
			),
	)
	if IsUniqueViolationError(err) {
		return errors.Wrap(models.ConflictError, "bill payment already exists")
	}
	return err
}

func (repo *OpsDbRepository) MarkBillPaymentVoided(
	ctx context.Context,
	exec Executor,
	paymentId uuid.UUID,
	voidedAt time.Time,
) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Update(dbmodels.TABLE_BILL_PAYMENTS).
			Set("voided_at", voidedAt).
			Where("id = ?", paymentId).
			Where("voided_at IS NULL"),
	)
}
