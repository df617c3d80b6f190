package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
)

// AuditActionKind is supplied explicitly on the action descriptor. The kind is
// never inferred from the action name.
type AuditActionKind string

const (
	AuditActionCreate     AuditActionKind = "CREATE"
	AuditActionUpdate     AuditActionKind = "UPDATE"
	AuditActionDelete     AuditActionKind = "DELETE"
	AuditActionAdjustment AuditActionKind = "ADJUSTMENT"
	AuditActionLogin      AuditActionKind = "LOGIN"
	AuditActionView       AuditActionKind = "VIEW"
)

var validAuditActionKinds = map[AuditActionKind]struct{}{
	AuditActionCreate:     {},
	AuditActionUpdate:     {},
	AuditActionDelete:     {},
	AuditActionAdjustment: {},
	AuditActionLogin:      {},
	AuditActionView:       {},
}

func (k AuditActionKind) Validate() error {
	if _, ok := validAuditActionKinds[k]; !ok {
		return errors.Wrap(BadParameterError,
			fmt.Sprintf("'%s' is not a valid audit action kind", string(k)))
	}
	return nil
}

// RequiresSnapshot reports whether the pre-mutation state of the target row
// must be captured before the business logic runs.
func (k AuditActionKind) RequiresSnapshot() bool {
	switch k {
	case AuditActionUpdate, AuditActionDelete, AuditActionAdjustment:
		return true
	default:
		return false
	}
}

// AuditRecord is an append-only fact: written exactly once per successful
// audited action, inside the same transaction as the business mutation, and
// never updated or deleted afterwards.
type AuditRecord struct {
	Id            uuid.UUID
	ActorUserId   *uuid.UUID
	ActorName     string
	Action        AuditActionKind
	Table         AuditableTable
	RecordId      *uuid.UUID
	OldState      json.RawMessage
	NewState      json.RawMessage
	Note          string
	CallerAddress string
	CallerAgent   string
	CreatedAt     time.Time
}

type CreateAuditRecordInput struct {
	ActorUserId   *uuid.UUID
	ActorName     string
	Action        AuditActionKind
	Table         AuditableTable
	RecordId      *uuid.UUID
	OldState      json.RawMessage
	NewState      json.RawMessage
	Note          string
	CallerAddress string
	CallerAgent   string
}

type AuditRecordFilters struct {
	Table       AuditableTable
	RecordId    *uuid.UUID
	ActorUserId *uuid.UUID
	From        time.Time
	To          time.Time
}

// AuditedAction describes one invocation of the audited action wrapper. It is
// a runtime configuration value, not a persisted entity.
type AuditedAction struct {
	// Name is a stable identifier of the business action, stored in the audit
	// record note for operator context.
	Name  string
	Kind  AuditActionKind
	Table AuditableTable
	// TargetId is the id of the mutated record. Required for every kind except
	// CREATE, where the id is taken from the business result instead.
	TargetId *uuid.UUID
	Note     string
}

func (a AuditedAction) Validate() error {
	if a.Name == "" {
		return errors.Wrap(BadParameterError, "audited action has no name")
	}
	if err := a.Kind.Validate(); err != nil {
		return err
	}
	if err := a.Table.Validate(); err != nil {
		return err
	}
	if a.Kind != AuditActionCreate && a.TargetId == nil {
		return errors.WithDetail(ErrAuditRecordIdMissing,
			fmt.Sprintf("action %s on table %s", a.Name, a.Table))
	}
	return nil
}

// Identifiable is implemented by business results of CREATE actions, so that
// the record id for the audit trail is always resolvable at compile time.
type Identifiable interface {
	RecordId() uuid.UUID
}
