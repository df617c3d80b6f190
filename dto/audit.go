package dto

import (
	"encoding/json"
	"time"

	"github.com/opsdesk/opsdesk-backend/models"
)

type AuditRecord struct {
	Id            string          `json:"id"`
	ActorUserId   *string         `json:"actor_user_id"`
	ActorName     string          `json:"actor_name"`
	Action        string          `json:"action"`
	TableName     string          `json:"table_name"`
	RecordId      *string         `json:"record_id"`
	OldState      json.RawMessage `json:"old_state,omitempty"`
	NewState      json.RawMessage `json:"new_state,omitempty"`
	Note          string          `json:"note,omitempty"`
	CallerAddress string          `json:"caller_address"`
	CallerAgent   string          `json:"caller_agent"`
	CreatedAt     time.Time       `json:"created_at"`
}

func AdaptAuditRecord(record models.AuditRecord) AuditRecord {
	out := AuditRecord{
		Id:            record.Id.String(),
		ActorName:     record.ActorName,
		Action:        string(record.Action),
		TableName:     string(record.Table),
		OldState:      record.OldState,
		NewState:      record.NewState,
		Note:          record.Note,
		CallerAddress: record.CallerAddress,
		CallerAgent:   record.CallerAgent,
		CreatedAt:     record.CreatedAt,
	}
	if record.ActorUserId != nil {
		id := record.ActorUserId.String()
		out.ActorUserId = &id
	}
	if record.RecordId != nil {
		id := record.RecordId.String()
		out.RecordId = &id
	}
	return out
}

type AuditRecordFilters struct {
	Table       string `form:"table"`
	RecordId    string `form:"record_id"`
	ActorUserId string `form:"actor_user_id"`
	From        string `form:"from" time_format:"2006-01-02T15:04:05Z07:00"`
	To          string `form:"to" time_format:"2006-01-02T15:04:05Z07:00"`
	Limit       int    `form:"limit"`
	OffsetId    string `form:"offset_id"`
}
