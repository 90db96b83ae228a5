package repository

import (
	"hospital-appointment-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepo(db *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

// Create inserts a new appointment. The unique index on
// appointment_code is the final arbiter under concurrency; a losing
// insert surfaces as ErrDuplicate so the caller can retry with a
// fresh code.
func (r *AppointmentRepository) Create(appointment *models.Appointment) error {
	return translate(r.db.Create(appointment).Error)
}

// FindByCode finds an appointment by its public code, with the joined
// patient and doctor records for display
func (r *AppointmentRepository) FindByCode(code string) (*models.Appointment, error) {
	var appointment models.Appointment
	err := r.db.Where("appointment_code = ?", code).
		Preload("Patient").
		Preload("Doctor").
		First(&appointment).Error
	if err != nil {
		return nil, translate(err)
	}
	return &appointment, nil
}

// FindByID finds an appointment by ID
func (r *AppointmentRepository) FindByID(id uuid.UUID) (*models.Appointment, error) {
	var appointment models.Appointment
	err := r.db.Where("id = ?", id).First(&appointment).Error
	if err != nil {
		return nil, translate(err)
	}
	return &appointment, nil
}

// CodeExists reports whether an appointment already uses the given code
func (r *AppointmentRepository) CodeExists(code string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Appointment{}).
		Where("appointment_code = ?", code).
		Count(&count).Error
	return count > 0, err
}

// ListByPatient retrieves appointments owned by a patient
func (r *AppointmentRepository) ListByPatient(patientID uuid.UUID, offset, limit int) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.Where("patient_id = ?", patientID).
		Offset(offset).Limit(limit).
		Find(&appointments).Error
	return appointments, err
}

// ListByDoctor retrieves appointments assigned to a doctor
func (r *AppointmentRepository) ListByDoctor(doctorID uuid.UUID, offset, limit int) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.Where("doctor_id = ?", doctorID).
		Offset(offset).Limit(limit).
		Find(&appointments).Error
	return appointments, err
}

// ListAll retrieves all appointments in insertion order
func (r *AppointmentRepository) ListAll(offset, limit int) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.Offset(offset).Limit(limit).Find(&appointments).Error
	return appointments, err
}

// Save persists all fields of an existing appointment and bumps updated_at
func (r *AppointmentRepository) Save(appointment *models.Appointment) error {
	return translate(r.db.Save(appointment).Error)
}
