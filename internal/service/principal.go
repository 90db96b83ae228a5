package service

import (
	"hospital-appointment-backend/internal/models"
	"hospital-appointment-backend/pkg/utils"

	"github.com/google/uuid"
)

// Principal is the authenticated identity attached to a request after
// token verification. Exactly one of Patient or Doctor is set,
// according to Role.
type Principal struct {
	Role    string
	Patient *models.Patient
	Doctor  *models.Doctor
}

// ID returns the opaque internal id of the underlying identity record
func (p *Principal) ID() uuid.UUID {
	if p.Role == utils.RoleDoctor && p.Doctor != nil {
		return p.Doctor.ID
	}
	if p.Patient != nil {
		return p.Patient.ID
	}
	return uuid.Nil
}

// IsPatient reports whether the principal is a patient
func (p *Principal) IsPatient() bool {
	return p.Role == utils.RolePatient
}

// IsDoctor reports whether the principal is a doctor
func (p *Principal) IsDoctor() bool {
	return p.Role == utils.RoleDoctor
}
