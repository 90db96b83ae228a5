package repository

import (
	"hospital-appointment-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PatientRepository struct {
	db *gorm.DB
}

func NewPatientRepo(db *gorm.DB) *PatientRepository {
	return &PatientRepository{db: db}
}

// FindByContact finds a patient by contact number
func (r *PatientRepository) FindByContact(contact string) (*models.Patient, error) {
	var patient models.Patient
	err := r.db.Where("contact = ?", contact).First(&patient).Error
	if err != nil {
		return nil, translate(err)
	}
	return &patient, nil
}

// FindByID finds a patient by ID
func (r *PatientRepository) FindByID(id uuid.UUID) (*models.Patient, error) {
	var patient models.Patient
	err := r.db.Where("id = ?", id).First(&patient).Error
	if err != nil {
		return nil, translate(err)
	}
	return &patient, nil
}

// Create creates a new patient. A contact collision surfaces as ErrDuplicate.
func (r *PatientRepository) Create(patient *models.Patient) error {
	return translate(r.db.Create(patient).Error)
}
