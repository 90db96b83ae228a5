package repository

import (
	"hospital-appointment-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DoctorRepository struct {
	db *gorm.DB
}

func NewDoctorRepo(db *gorm.DB) *DoctorRepository {
	return &DoctorRepository{db: db}
}

// FindByEmail finds a doctor by email
func (r *DoctorRepository) FindByEmail(email string) (*models.Doctor, error) {
	var doctor models.Doctor
	err := r.db.Where("email = ?", email).First(&doctor).Error
	if err != nil {
		return nil, translate(err)
	}
	return &doctor, nil
}

// FindByID finds a doctor by ID
func (r *DoctorRepository) FindByID(id uuid.UUID) (*models.Doctor, error) {
	var doctor models.Doctor
	err := r.db.Where("id = ?", id).First(&doctor).Error
	if err != nil {
		return nil, translate(err)
	}
	return &doctor, nil
}

// Create creates a new doctor. An email collision surfaces as ErrDuplicate.
func (r *DoctorRepository) Create(doctor *models.Doctor) error {
	return translate(r.db.Create(doctor).Error)
}

// List retrieves doctors in insertion order with offset/limit pagination
func (r *DoctorRepository) List(offset, limit int) ([]models.Doctor, error) {
	var doctors []models.Doctor
	err := r.db.Offset(offset).Limit(limit).Find(&doctors).Error
	return doctors, err
}

// UpdateProfile applies partial profile updates to a doctor and returns
// the updated record. Identity columns are never part of updates.
func (r *DoctorRepository) UpdateProfile(id uuid.UUID, updates map[string]interface{}) (*models.Doctor, error) {
	if len(updates) > 0 {
		err := r.db.Model(&models.Doctor{}).
			Where("id = ?", id).
			Updates(updates).Error
		if err != nil {
			return nil, translate(err)
		}
	}
	return r.FindByID(id)
}
