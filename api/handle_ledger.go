package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/opsdesk/opsdesk-backend/dto"
	"github.com/opsdesk/opsdesk-backend/pure_utils"
	"github.com/opsdesk/opsdesk-backend/usecases"
)

func handleGetJournalEntry(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid journal entry id"})
			return
		}

		entry, err := uc.NewLedgerUsecase().GetJournalEntry(ctx, id)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, dto.AdaptJournalEntry(entry))
	}
}

func handleListChartOfAccounts(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		accounts, err := uc.NewLedgerUsecase().ListChartOfAccounts(ctx)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, pure_utils.Map(accounts, dto.AdaptChartOfAccount))
	}
}
