package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestBill_StatusForPaidAmount(t *testing.T) {
	bill := Bill{TotalAmount: decimal.NewFromInt(100)}

	assert.Equal(t, BillStatusOpen, bill.StatusForPaidAmount(decimal.Zero))
	assert.Equal(t, BillStatusPartiallyPaid, bill.StatusForPaidAmount(decimal.NewFromInt(40)))
	assert.Equal(t, BillStatusPaid, bill.StatusForPaidAmount(decimal.NewFromInt(100)))
	assert.Equal(t, BillStatusPaid, bill.StatusForPaidAmount(decimal.NewFromInt(120)))
}

func TestBill_RemainingAmount(t *testing.T) {
	bill := Bill{
		TotalAmount: decimal.NewFromInt(100),
		PaidAmount:  decimal.NewFromInt(35),
	}
	assert.True(t, bill.RemainingAmount().Equal(decimal.NewFromInt(65)))
}
