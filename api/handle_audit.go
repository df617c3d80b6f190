package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/opsdesk/opsdesk-backend/dto"
	"github.com/opsdesk/opsdesk-backend/models"
	"github.com/opsdesk/opsdesk-backend/pure_utils"
	"github.com/opsdesk/opsdesk-backend/usecases"
)

func handleListAuditRecords(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var query dto.AuditRecordFilters
		if err := c.ShouldBindQuery(&query); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		filters, err := adaptAuditRecordFilters(query)
		if presentError(ctx, c, err) {
			return
		}

		records, err := uc.NewAuditUsecase().ListAuditRecords(ctx, models.PaginationAndSorting{
			Limit:    query.Limit,
			OffsetId: query.OffsetId,
		}, filters)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, pure_utils.Map(records, dto.AdaptAuditRecord))
	}
}

func handleGetAuditRecord(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid audit record id"})
			return
		}

		record, err := uc.NewAuditUsecase().GetAuditRecord(ctx, id)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, dto.AdaptAuditRecord(record))
	}
}

func adaptAuditRecordFilters(query dto.AuditRecordFilters) (models.AuditRecordFilters, error) {
	filters := models.AuditRecordFilters{
		Table: models.AuditableTable(query.Table),
	}
	if query.Table != "" {
		if err := filters.Table.Validate(); err != nil {
			return models.AuditRecordFilters{}, err
		}
	}
	if query.RecordId != "" {
		recordId, err := uuid.Parse(query.RecordId)
		if err != nil {
			return models.AuditRecordFilters{}, models.BadParameterError
		}
		filters.RecordId = &recordId
	}
	if query.ActorUserId != "" {
		actorId, err := uuid.Parse(query.ActorUserId)
		if err != nil {
			return models.AuditRecordFilters{}, models.BadParameterError
		}
		filters.ActorUserId = &actorId
	}
	if query.From != "" {
		from, err := time.Parse(time.RFC3339, query.From)
		if err != nil {
			return models.AuditRecordFilters{}, models.BadParameterError
		}
		filters.From = from
	}
	if query.To != "" {
		to, err := time.Parse(time.RFC3339, query.To)
		if err != nil {
			return models.AuditRecordFilters{}, models.BadParameterError
		}
		filters.To = to
	}
	return filters, nil
}
