package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Doctor represents the doctors table
// Email is the unique natural key used as the login identifier;
// id and email are immutable after creation, profile fields are not
type Doctor struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name           string    `gorm:"type:text;not null" json:"name"`
	Email          string    `gorm:"type:text;uniqueIndex;not null" json:"email"`
	PasswordHash   string    `gorm:"type:text;not null" json:"-"`
	Phone          *string   `gorm:"type:text" json:"phone,omitempty"`
	Qualification  *string   `gorm:"type:text" json:"qualification,omitempty"`
	Specialization *string   `gorm:"type:text" json:"specialization,omitempty"`
	Department     *string   `gorm:"type:text" json:"department,omitempty"`
	Experience     *string   `gorm:"type:text" json:"experience,omitempty"`
	Bio            *string   `gorm:"type:text" json:"bio,omitempty"`
	CreatedAt      time.Time `json:"created_at"`

	// Relationships
	Appointments []Appointment `gorm:"foreignKey:DoctorID" json:"appointments,omitempty"`
}

// TableName specifies the table name for Doctor model
func (Doctor) TableName() string {
	return "doctors"
}

// BeforeCreate assigns a fresh UUID primary key
func (d *Doctor) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
