package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/opsdesk/opsdesk-backend/models"
)

type RecordBillPaymentBody struct {
	BillId string          `json:"bill_id" binding:"required,uuid"`
	Amount decimal.Decimal `json:"amount" binding:"required"`
	Method string          `json:"method"`
	PaidAt *time.Time      `json:"paid_at"`
	Note   string          `json:"note"`
}

type BillPayment struct {
	Id             string     `json:"id"`
	BillId         string     `json:"bill_id"`
	Amount         string     `json:"amount"`
	Method         string     `json:"method,omitempty"`
	PaidAt         time.Time  `json:"paid_at"`
	JournalEntryId *string    `json:"journal_entry_id"`
	VoidedAt       *time.Time `json:"voided_at"`
}

func AdaptBillPayment(payment models.BillPayment) BillPayment {
	out := BillPayment{
		Id:       payment.Id.String(),
		BillId:   payment.BillId.String(),
		Amount:   payment.Amount.StringFixed(2),
		Method:   payment.Method,
		PaidAt:   payment.PaidAt,
		VoidedAt: payment.VoidedAt,
	}
	if payment.JournalEntryId != nil {
		id := payment.JournalEntryId.String()
		out.JournalEntryId = &id
	}
	return out
}
