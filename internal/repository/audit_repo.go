package repository

import (
	"hospital-appointment-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuditRepository struct {
	db *gorm.DB
}

func NewAuditRepo(db *gorm.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

// CreateAuditLog creates a new audit log entry
func (r *AuditRepository) CreateAuditLog(actorType string, actorID *uuid.UUID, action string, details string) error {
	log := &models.AuditLog{
		ActorType: actorType,
		ActorID:   actorID,
		Action:    action,
		Details:   details,
	}
	return r.db.Create(log).Error
}
