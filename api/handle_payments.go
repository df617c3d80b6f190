package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/opsdesk/opsdesk-backend/dto"
	"github.com/opsdesk/opsdesk-backend/usecases"
)

func handleRecordBillPayment(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var body dto.RecordBillPaymentBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		input := usecases.RecordBillPaymentInput{
			BillId: uuid.MustParse(body.BillId),
			Amount: body.Amount,
			Method: body.Method,
			Note:   body.Note,
		}
		if body.PaidAt != nil {
			input.PaidAt = *body.PaidAt
		}

		payment, err := uc.NewPaymentUsecase().RecordBillPayment(ctx, input)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusCreated, dto.AdaptBillPayment(payment))
	}
}

func handleVoidBillPayment(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		paymentId, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid bill payment id"})
			return
		}

		payment, err := uc.NewPaymentUsecase().VoidBillPayment(ctx, paymentId)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, dto.AdaptBillPayment(payment))
	}
}
