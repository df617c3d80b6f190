package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BillStatus string

const (
	BillStatusOpen          BillStatus = "open"
	BillStatusPartiallyPaid BillStatus = "partially_paid"
	BillStatusPaid          BillStatus = "paid"
	BillStatusVoid          BillStatus = "void"
)

type Bill struct {
	Id           uuid.UUID
	SupplierName string
	Reference    string
	TotalAmount  decimal.Decimal
	PaidAmount   decimal.Decimal
	Status       BillStatus
	IssuedAt     time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (b Bill) RemainingAmount() decimal.Decimal {
	return b.TotalAmount.Sub(b.PaidAmount)
}

// StatusForPaidAmount derives the bill status from a new paid amount.
func (b Bill) StatusForPaidAmount(paidAmount decimal.Decimal) BillStatus {
	switch {
	case paidAmount.GreaterThanOrEqual(b.TotalAmount):
		return BillStatusPaid
	case paidAmount.IsPositive():
		return BillStatusPartiallyPaid
	default:
		return BillStatusOpen
	}
}

type BillPayment struct {
	Id             uuid.UUID
	BillId         uuid.UUID
	Amount         decimal.Decimal
	Method         string
	PaidAt         time.Time
	JournalEntryId *uuid.UUID
	VoidedAt       *time.Time
	CreatedAt      time.Time
}

func (p BillPayment) RecordId() uuid.UUID {
	return p.Id
}
