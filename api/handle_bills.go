package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/opsdesk/opsdesk-backend/dto"
	"github.com/opsdesk/opsdesk-backend/usecases"
)

func handleGetBill(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid bill id"})
			return
		}

		bill, err := uc.NewBillUsecase().GetBill(ctx, id)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, dto.AdaptBill(bill))
	}
}
