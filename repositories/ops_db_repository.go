package repositories

import (
	"fmt"

	"github.com/opsdesk/opsdesk-backend/pure_utils"
)

// OpsDbRepository groups all queries against the opsdesk database.
type OpsDbRepository struct{}

func NewOpsDbRepository() *OpsDbRepository {
	return &OpsDbRepository{}
}

func columnsNames(tablename string, fields []string) []string {
	return pure_utils.Map(fields, func(f string) string {
		return fmt.Sprintf("%s.%s", tablename, f)
	})
}
