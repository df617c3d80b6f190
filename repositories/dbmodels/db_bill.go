package dbmodels

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/opsdesk/opsdesk-backend/models"
	"github.com/opsdesk/opsdesk-backend/utils"
)

type DbBill struct {
	Id           uuid.UUID       `db:"id"`
	SupplierName string          `db:"supplier_name"`
	Reference    string          `db:"reference"`
	TotalAmount  decimal.Decimal `db:"total_amount"`
	PaidAmount   decimal.Decimal `db:"paid_amount"`
	Status       string          `db:"status"`
	IssuedAt     time.Time       `db:"issued_at"`
	CreatedAt    time.Time       `db:"created_at"`
	UpdatedAt    time.Time       `db:"updated_at"`
}

type DbBillPayment struct {
	Id             uuid.UUID       `db:"id"`
	BillId         uuid.UUID       `db:"bill_id"`
	Amount         decimal.Decimal `db:"amount"`
	Method         string          `db:"method"`
	PaidAt         time.Time       `db:"paid_at"`
	JournalEntryId *uuid.UUID      `db:"journal_entry_id"`
	VoidedAt       *time.Time      `db:"voided_at"`
	CreatedAt      time.Time       `db:"created_at"`
}

const (
	TABLE_BILLS         = "bills"
	TABLE_BILL_PAYMENTS = "bill_payments"
)

var (
	SelectBillColumns        = utils.ColumnList[DbBill]()
	SelectBillPaymentColumns = utils.ColumnList[DbBillPayment]()
)

func AdaptBill(db DbBill) (models.Bill, error) {
	return models.Bill{
		Id:           db.Id,
		SupplierName: db.SupplierName,
		Reference:    db.Reference,
		TotalAmount:  db.TotalAmount,
		PaidAmount:   db.PaidAmount,
		Status:       models.BillStatus(db.Status),
		IssuedAt:     db.IssuedAt,
		CreatedAt:    db.CreatedAt,
		UpdatedAt:    db.UpdatedAt,
	}, nil
}

func AdaptBillPayment(db DbBillPayment) (models.BillPayment, error) {
	return models.BillPayment{
		Id:             db.Id,
		BillId:         db.BillId,
		Amount:         db.Amount,
		Method:         db.Method,
		PaidAt:         db.PaidAt,
		JournalEntryId: db.JournalEntryId,
		VoidedAt:       db.VoidedAt,
		CreatedAt:      db.CreatedAt,
	}, nil
}
