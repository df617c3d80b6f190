package dto

import (
	"time"

	"github.com/opsdesk/opsdesk-backend/models"
)

type Bill struct {
	Id              string    `json:"id"`
	SupplierName    string    `json:"supplier_name"`
	Reference       string    `json:"reference"`
	TotalAmount     string    `json:"total_amount"`
	PaidAmount      string    `json:"paid_amount"`
	RemainingAmount string    `json:"remaining_amount"`
	Status          string    `json:"status"`
	IssuedAt        time.Time `json:"issued_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func AdaptBill(bill models.Bill) Bill {
	return Bill{
		Id:              bill.Id.String(),
		SupplierName:    bill.SupplierName,
		Reference:       bill.Reference,
		TotalAmount:     bill.TotalAmount.StringFixed(2),
		PaidAmount:      bill.PaidAmount.StringFixed(2),
		RemainingAmount: bill.RemainingAmount().StringFixed(2),
		Status:          string(bill.Status),
		IssuedAt:        bill.IssuedAt,
		UpdatedAt:       bill.UpdatedAt,
	}
}
