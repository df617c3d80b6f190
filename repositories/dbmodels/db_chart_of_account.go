package dbmodels

import (
	"time"

	"github.com/google/uuid"

	"github.com/opsdesk/opsdesk-backend/models"
	"github.com/opsdesk/opsdesk-backend/utils"
)

type DbChartOfAccount struct {
	Id        uuid.UUID `db:"id"`
	Code      string    `db:"code"`
	Name      string    `db:"name"`
	Type      string    `db:"type"`
	CreatedAt time.Time `db:"created_at"`
}

const TABLE_CHART_OF_ACCOUNTS = "chart_of_accounts"

var SelectChartOfAccountColumns = utils.ColumnList[DbChartOfAccount]()

func AdaptChartOfAccount(db DbChartOfAccount) (models.ChartOfAccount, error) {
	return models.ChartOfAccount{
		Id:        db.Id,
		Code:      db.Code,
		Name:      db.Name,
		Type:      models.AccountType(db.Type),
		CreatedAt: db.CreatedAt,
	}, nil
}
