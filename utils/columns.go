package utils

import (
	"fmt"
	"reflect"
)

// ColumnList builds the select column list of a db model struct from its `db`
// tags, quoting each name so reserved words stay valid identifiers.
func ColumnList[T any]() []string {
	var dbModel T
	modelType := reflect.TypeOf(dbModel)
	columns := make([]string, 0, modelType.NumField())
	for i := range modelType.NumField() {
		tag := modelType.Field(i).Tag.Get("db")
		if tag == "" || tag == "-" {
			continue
		}
		columns = append(columns, fmt.Sprintf(`"%s"`, tag))
	}
	return columns
}
