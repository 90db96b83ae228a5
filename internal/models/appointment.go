package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Appointment statuses. Pending is the initial state; completed and
// cancelled are terminal and no transition leaves them.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Severity levels a patient may attach to the problem description
const (
	SeverityMild     = "mild"
	SeverityModerate = "moderate"
	SeveritySevere   = "severe"
)

// Appointment represents the appointments table
// AppointmentCode is a unique human-shareable code allowing status
// lookup without authentication; it never changes once assigned
type Appointment struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	AppointmentCode    string     `gorm:"type:text;uniqueIndex;not null" json:"appointment_code"`
	PatientID          uuid.UUID  `gorm:"type:uuid;not null;index" json:"patient_id"`
	DoctorID           *uuid.UUID `gorm:"type:uuid;index" json:"doctor_id"`
	Problem            string     `gorm:"type:text;not null" json:"problem"`
	Severity           *string    `gorm:"type:text" json:"severity,omitempty"`
	Duration           *string    `gorm:"type:text" json:"duration,omitempty"`
	MedicalHistory     *string    `gorm:"type:text" json:"medical_history,omitempty"`
	Result             *string    `gorm:"type:text" json:"result,omitempty"`
	Status             string     `gorm:"type:text;not null;default:'pending'" json:"status"`
	CancellationReason *string    `gorm:"type:text" json:"cancellation_reason,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`

	// Relationships
	Patient *Patient `gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE" json:"patient,omitempty"`
	Doctor  *Doctor  `gorm:"foreignKey:DoctorID;constraint:OnDelete:SET NULL" json:"doctor,omitempty"`
}

// TableName specifies the table name for Appointment model
func (Appointment) TableName() string {
	return "appointments"
}

// BeforeCreate assigns a fresh UUID primary key
func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// IsValidStatus reports whether s is one of the three known status tags
func IsValidStatus(s string) bool {
	return s == StatusPending || s == StatusCompleted || s == StatusCancelled
}

// IsTerminalStatus reports whether s permits no further transitions
func IsTerminalStatus(s string) bool {
	return s == StatusCompleted || s == StatusCancelled
}

// IsValidSeverity reports whether s is one of the known severity tags
func IsValidSeverity(s string) bool {
	return s == SeverityMild || s == SeverityModerate || s == SeveritySevere
}
