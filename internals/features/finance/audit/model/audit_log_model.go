package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AuditLogModel is append-only: rows are written by audit.Record and never
// mutated or deleted by the application.
type AuditLogModel struct {
	AuditLogID uuid.UUID `json:"audit_log_id" gorm:"column:audit_log_id;type:uuid;default:gen_random_uuid();primaryKey"`

	AuditLogAction     string `json:"audit_log_action" gorm:"column:audit_log_action;type:varchar(60);not null;index:idx_audit_logs_action"`
	AuditLogEntityType string `json:"audit_log_entity_type" gorm:"column:audit_log_entity_type;type:varchar(40);not null;index:idx_audit_logs_entity,priority:1"`
	AuditLogEntityID   string `json:"audit_log_entity_id" gorm:"column:audit_log_entity_id;type:varchar(60);not null;index:idx_audit_logs_entity,priority:2"`

	AuditLogBefore datatypes.JSON `json:"audit_log_before,omitempty" gorm:"column:audit_log_before;type:jsonb"`
	AuditLogAfter  datatypes.JSON `json:"audit_log_after,omitempty" gorm:"column:audit_log_after;type:jsonb"`

	AuditLogActorID   *uuid.UUID `json:"audit_log_actor_id,omitempty" gorm:"column:audit_log_actor_id;type:uuid"`
	AuditLogActorRole string     `json:"audit_log_actor_role" gorm:"column:audit_log_actor_role;type:varchar(20)"`

	AuditLogCreatedAt time.Time `json:"audit_log_created_at" gorm:"column:audit_log_created_at;type:timestamptz;not null;autoCreateTime"`
}

func (AuditLogModel) TableName() string { return "audit_logs" }
