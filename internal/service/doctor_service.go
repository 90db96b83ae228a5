package service

import (
	"errors"

	"hospital-appointment-backend/internal/models"
	"hospital-appointment-backend/internal/repository"

	"github.com/google/uuid"
)

type DoctorService struct {
	doctorRepo DoctorDirectory
}

func NewDoctorService(doctorRepo DoctorDirectory) *DoctorService {
	return &DoctorService{doctorRepo: doctorRepo}
}

// List returns doctors for patients browsing before booking
func (s *DoctorService) List(skip, limit int) ([]models.Doctor, error) {
	skip, limit = normalizePage(skip, limit)
	return s.doctorRepo.List(skip, limit)
}

// ProfileUpdate carries a doctor's partial profile change. Identity
// fields (id, email) are not updatable.
type ProfileUpdate struct {
	Name           *string `json:"name"`
	Phone          *string `json:"phone"`
	Qualification  *string `json:"qualification"`
	Specialization *string `json:"specialization"`
	Department     *string `json:"department"`
	Experience     *string `json:"experience"`
	Bio            *string `json:"bio"`
}

// UpdateProfile applies the supplied profile fields to the doctor's own record
func (s *DoctorService) UpdateProfile(id uuid.UUID, update ProfileUpdate) (*models.Doctor, error) {
	updates := map[string]interface{}{}
	if update.Name != nil {
		updates["name"] = *update.Name
	}
	if update.Phone != nil {
		updates["phone"] = *update.Phone
	}
	if update.Qualification != nil {
		updates["qualification"] = *update.Qualification
	}
	if update.Specialization != nil {
		updates["specialization"] = *update.Specialization
	}
	if update.Department != nil {
		updates["department"] = *update.Department
	}
	if update.Experience != nil {
		updates["experience"] = *update.Experience
	}
	if update.Bio != nil {
		updates["bio"] = *update.Bio
	}

	doctor, err := s.doctorRepo.UpdateProfile(id, updates)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrDoctorNotFound
		}
		return nil, err
	}
	return doctor, nil
}
