package models

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// AuditableTable identifies a table whose rows can be snapshotted and audited.
// The registry below is the only mapping from the identifier to its physical
// table and primary key: an unknown table is a compile error at the call site,
// not a runtime lookup miss.
type AuditableTable string

const (
	TableUsers           AuditableTable = "users"
	TableChartOfAccounts AuditableTable = "chart_of_accounts"
	TableBills           AuditableTable = "bills"
	TableBillPayments    AuditableTable = "bill_payments"
	TableJournalEntries  AuditableTable = "journal_entries"
)

type auditableTableDef struct {
	dbTable    string
	primaryKey string
}

var auditableTables = map[AuditableTable]auditableTableDef{
	TableUsers:           {dbTable: "users", primaryKey: "id"},
	TableChartOfAccounts: {dbTable: "chart_of_accounts", primaryKey: "id"},
	TableBills:           {dbTable: "bills", primaryKey: "id"},
	TableBillPayments:    {dbTable: "bill_payments", primaryKey: "id"},
	TableJournalEntries:  {dbTable: "journal_entries", primaryKey: "id"},
}

func (t AuditableTable) Validate() error {
	if _, ok := auditableTables[t]; !ok {
		return errors.Wrap(BadParameterError,
			fmt.Sprintf("'%s' is not a registered auditable table", string(t)))
	}
	return nil
}

func (t AuditableTable) DbTable() string {
	return auditableTables[t].dbTable
}

func (t AuditableTable) PrimaryKeyColumn() string {
	return auditableTables[t].primaryKey
}
