package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/opsdesk/opsdesk-backend/usecases"
)

type Configuration struct {
	Env     string
	Port    string
	Timeout time.Duration
}

func New(conf Configuration, uc usecases.Usecases, logger *slog.Logger) *http.Server {
	if conf.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(storeLoggerInContextMiddleware(logger))
	r.Use(storeRequestMetadataMiddleware())
	r.Use(credentialsMiddleware(uc.NewCredentialsUsecase()))

	r.GET("/liveness", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	r.GET("/audit-records", handleListAuditRecords(uc))
	r.GET("/audit-records/:id", handleGetAuditRecord(uc))
	r.GET("/journal-entries/:id", handleGetJournalEntry(uc))
	r.GET("/chart-of-accounts", handleListChartOfAccounts(uc))
	r.GET("/bills/:id", handleGetBill(uc))
	r.POST("/bill-payments", handleRecordBillPayment(uc))
	r.POST("/bill-payments/:id/void", handleVoidBillPayment(uc))

	return &http.Server{
		Addr:         ":" + conf.Port,
		Handler:      r,
		ReadTimeout:  conf.Timeout,
		WriteTimeout: conf.Timeout,
	}
}
