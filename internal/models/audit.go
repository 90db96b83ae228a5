package models

import (
	"time"

	"github.com/google/uuid"
)

// AuditLog represents the audit_logs table
// Used for security tracking of auth and appointment lifecycle events
type AuditLog struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	ActorType string     `gorm:"size:20" json:"actor_type"`
	ActorID   *uuid.UUID `gorm:"type:uuid;index" json:"actor_id"`
	Action    string     `gorm:"size:100;not null" json:"action"`
	Details   string     `gorm:"type:text" json:"details"`
	CreatedAt time.Time  `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName specifies the table name for AuditLog model
func (AuditLog) TableName() string {
	return "audit_logs"
}
