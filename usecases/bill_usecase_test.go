package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/opsdesk/opsdesk-backend/models"
	"github.com/opsdesk/opsdesk-backend/repositories"
	"github.com/opsdesk/opsdesk-backend/usecases/executor_factory"
)

func TestBillUsecase_GetBill(t *testing.T) {
	bill := models.Bill{
		Id:           uuid.New(),
		SupplierName: "Acme Supplies",
		Reference:    "INV-2024-001",
		TotalAmount:  decimal.NewFromInt(100),
		PaidAmount:   decimal.NewFromInt(20),
		Status:       models.BillStatusPartiallyPaid,
		IssuedAt:     time.Now(),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	t.Run("nominal", func(t *testing.T) {
		stub := executor_factory.NewExecutorFactoryStub()
		uc := NewBillUsecase(stub, repositories.NewOpsDbRepository())

		stub.Mock.ExpectQuery("SELECT .* FROM bills").
			WithArgs(bill.Id).
			WillReturnRows(billRows(bill))

		got, err := uc.GetBill(context.Background(), bill.Id)

		assert.NoError(t, err)
		assert.Equal(t, bill.Id, got.Id)
		assert.Equal(t, bill.SupplierName, got.SupplierName)
		assert.True(t, got.RemainingAmount().Equal(decimal.NewFromInt(80)))
		assert.NoError(t, stub.Mock.ExpectationsWereMet())
	})

	t.Run("missing bill", func(t *testing.T) {
		stub := executor_factory.NewExecutorFactoryStub()
		uc := NewBillUsecase(stub, repositories.NewOpsDbRepository())

		stub.Mock.ExpectQuery("SELECT .* FROM bills").
			WithArgs(bill.Id).
			WillReturnRows(pgxmock.NewRows([]string{
				"id", "supplier_name", "reference", "total_amount", "paid_amount",
				"status", "issued_at", "created_at", "updated_at",
			}))

		_, err := uc.GetBill(context.Background(), bill.Id)

		assert.ErrorIs(t, err, models.NotFoundError)
		assert.NoError(t, stub.Mock.ExpectationsWereMet())
	})
}
