package dbmodels

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/opsdesk/opsdesk-backend/models"
	"github.com/opsdesk/opsdesk-backend/pure_utils"
	"github.com/opsdesk/opsdesk-backend/utils"
)

type DbAuditRecord struct {
	Id            uuid.UUID       `db:"id"`
	ActorUserId   *uuid.UUID      `db:"actor_user_id"`
	ActorName     *string         `db:"actor_name"`
	Action        string          `db:"action"`
	TableName     string          `db:"table_name"`
	RecordId      *uuid.UUID      `db:"record_id"`
	OldState      json.RawMessage `db:"old_state"`
	NewState      json.RawMessage `db:"new_state"`
	Note          *string         `db:"note"`
	CallerAddress string          `db:"caller_address"`
	CallerAgent   string          `db:"caller_agent"`
	CreatedAt     time.Time       `db:"created_at"`
}

// DbAuditRecordWithActor adds the live user name resolved by a join, used as a
// fallback when the denormalized actor name was not captured at write time.
type DbAuditRecordWithActor struct {
	DbAuditRecord

	UserName *string `db:"user_name"`
}

const TABLE_AUDIT_RECORDS = "audit_records"

var SelectAuditRecordColumns = utils.ColumnList[DbAuditRecord]()

func AdaptAuditRecord(db DbAuditRecord) (models.AuditRecord, error) {
	return models.AuditRecord{
		Id:            db.Id,
		ActorUserId:   db.ActorUserId,
		ActorName:     pure_utils.PtrValueOrDefault(db.ActorName, ""),
		Action:        models.AuditActionKind(db.Action),
		Table:         models.AuditableTable(db.TableName),
		RecordId:      db.RecordId,
		OldState:      db.OldState,
		NewState:      db.NewState,
		Note:          pure_utils.PtrValueOrDefault(db.Note, ""),
		CallerAddress: db.CallerAddress,
		CallerAgent:   db.CallerAgent,
		CreatedAt:     db.CreatedAt,
	}, nil
}

func AdaptAuditRecordWithActor(db DbAuditRecordWithActor) (models.AuditRecord, error) {
	record, _ := AdaptAuditRecord(db.DbAuditRecord)

	if record.ActorName == "" && db.UserName != nil {
		record.ActorName = *db.UserName
	}
	return record, nil
}
