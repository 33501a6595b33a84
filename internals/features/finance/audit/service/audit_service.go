package service

import (
	"encoding/json"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"campushub_backend/internals/features/finance/audit/model"
	"campushub_backend/internals/helpers/events"
)

type Entry struct {
	Action     string
	EntityType string
	EntityID   string
	Before     any
	After      any
	ActorID    uuid.UUID
	ActorRole  string
}

// Record writes an audit row and fans the event out to Kafka. Both writes are
// best-effort: a failed audit write must never block the financial mutation
// that triggered it.
func Record(db *gorm.DB, e Entry) {
	row := model.AuditLogModel{
		AuditLogAction:     e.Action,
		AuditLogEntityType: e.EntityType,
		AuditLogEntityID:   e.EntityID,
		AuditLogActorRole:  e.ActorRole,
	}
	if e.ActorID != uuid.Nil {
		id := e.ActorID
		row.AuditLogActorID = &id
	}
	if e.Before != nil {
		if b, err := json.Marshal(e.Before); err == nil {
			row.AuditLogBefore = b
		}
	}
	if e.After != nil {
		if b, err := json.Marshal(e.After); err == nil {
			row.AuditLogAfter = b
		}
	}

	if err := db.Create(&row).Error; err != nil {
		log.Printf("[ERROR] audit record %s %s/%s: %v", e.Action, e.EntityType, e.EntityID, err)
		return
	}

	if payload, err := json.Marshal(row); err == nil {
		if err := events.Publish([]byte(e.Action), payload); err != nil {
			log.Printf("[WARN] audit event publish: %v", err)
		}
	}
}
