package service

import (
	"errors"
	"fmt"

	"hospital-appointment-backend/internal/models"
	"hospital-appointment-backend/internal/repository"
	"hospital-appointment-backend/pkg/utils"

	"github.com/google/uuid"
)

// AppointmentStore is the persistence contract for the appointment ledger
type AppointmentStore interface {
	Create(appointment *models.Appointment) error
	FindByCode(code string) (*models.Appointment, error)
	FindByID(id uuid.UUID) (*models.Appointment, error)
	CodeExists(code string) (bool, error)
	ListByPatient(patientID uuid.UUID, offset, limit int) ([]models.Appointment, error)
	ListByDoctor(doctorID uuid.UUID, offset, limit int) ([]models.Appointment, error)
	ListAll(offset, limit int) ([]models.Appointment, error)
	Save(appointment *models.Appointment) error
}

// DoctorFinder resolves doctor ids at appointment creation time
type DoctorFinder interface {
	FindByID(id uuid.UUID) (*models.Doctor, error)
}

const (
	defaultPageSize = 100

	// Attempts before giving up on finding an unused code. With an
	// 8-character base-36 alphabet collisions are astronomically
	// unlikely, so the cap only guards against a broken store.
	codeMaxAttempts = 10
)

type AppointmentService struct {
	store      AppointmentStore
	doctorRepo DoctorFinder
	auditRepo  AuditSink
}

func NewAppointmentService(store AppointmentStore, doctorRepo DoctorFinder, auditRepo AuditSink) *AppointmentService {
	return &AppointmentService{
		store:      store,
		doctorRepo: doctorRepo,
		auditRepo:  auditRepo,
	}
}

// CreateAppointmentInput carries the booking request of a patient
type CreateAppointmentInput struct {
	DoctorID       uuid.UUID
	Problem        string
	Severity       *string
	Duration       *string
	MedicalHistory *string
}

// Create books a new appointment for a patient. The doctor must exist,
// and the appointment receives a fresh unique 8-character code. The
// application-level code pre-check is best effort; a concurrent insert
// losing on the unique index is retried with a new code.
func (s *AppointmentService) Create(patientID uuid.UUID, input CreateAppointmentInput) (*models.Appointment, error) {
	if input.Severity != nil && !models.IsValidSeverity(*input.Severity) {
		return nil, ErrInvalidSeverity
	}

	if _, err := s.doctorRepo.FindByID(input.DoctorID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrDoctorNotFound
		}
		return nil, fmt.Errorf("failed to resolve doctor: %w", err)
	}

	doctorID := input.DoctorID
	for attempt := 0; attempt < codeMaxAttempts; attempt++ {
		code, err := utils.GenerateAppointmentCode()
		if err != nil {
			return nil, fmt.Errorf("failed to generate appointment code: %w", err)
		}

		exists, err := s.store.CodeExists(code)
		if err != nil {
			return nil, fmt.Errorf("failed to check appointment code: %w", err)
		}
		if exists {
			continue
		}

		appointment := &models.Appointment{
			AppointmentCode: code,
			PatientID:       patientID,
			DoctorID:        &doctorID,
			Problem:         input.Problem,
			Severity:        input.Severity,
			Duration:        input.Duration,
			MedicalHistory:  input.MedicalHistory,
			Status:          models.StatusPending,
		}

		err = s.store.Create(appointment)
		if errors.Is(err, repository.ErrDuplicate) {
			// Lost a code race against a concurrent create
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to create appointment: %w", err)
		}

		_ = s.auditRepo.CreateAuditLog(utils.RolePatient, &patientID, "appointment_created", fmt.Sprintf("Appointment %s created", code))
		return appointment, nil
	}

	return nil, ErrCodeExhausted
}

// GetByCode returns an appointment by its public code, including the
// joined patient and doctor records. No authentication required.
func (s *AppointmentService) GetByCode(code string) (*models.Appointment, error) {
	appointment, err := s.store.FindByCode(code)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}
	return appointment, nil
}

// GetByID returns an appointment by its internal id
func (s *AppointmentService) GetByID(id uuid.UUID) (*models.Appointment, error) {
	appointment, err := s.store.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}
	return appointment, nil
}

// ListForPatient returns the appointments owned by a patient
func (s *AppointmentService) ListForPatient(patientID uuid.UUID, skip, limit int) ([]models.Appointment, error) {
	skip, limit = normalizePage(skip, limit)
	return s.store.ListByPatient(patientID, skip, limit)
}

// ListForDoctor returns the appointments assigned to a doctor
func (s *AppointmentService) ListForDoctor(doctorID uuid.UUID, skip, limit int) ([]models.Appointment, error) {
	skip, limit = normalizePage(skip, limit)
	return s.store.ListByDoctor(doctorID, skip, limit)
}

// ListAll returns all appointments
func (s *AppointmentService) ListAll(skip, limit int) ([]models.Appointment, error) {
	skip, limit = normalizePage(skip, limit)
	return s.store.ListAll(skip, limit)
}

// UpdateAppointmentInput carries a doctor's partial update. Only
// supplied fields change.
type UpdateAppointmentInput struct {
	Result             *string
	Status             *string
	CancellationReason *string
}

// Update applies a partial update to an appointment. Status changes
// follow the state machine: unknown tags are rejected, a repeated
// status is a no-op, and nothing leaves a terminal state.
func (s *AppointmentService) Update(id uuid.UUID, actor *Principal, input UpdateAppointmentInput) (*models.Appointment, error) {
	appointment, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if input.Status != nil && *input.Status != appointment.Status {
		if !models.IsValidStatus(*input.Status) {
			return nil, ErrInvalidStatus
		}
		if models.IsTerminalStatus(appointment.Status) {
			return nil, ErrTerminalStatus
		}
		appointment.Status = *input.Status
	}

	if input.Result != nil {
		appointment.Result = input.Result
	}
	if input.CancellationReason != nil {
		appointment.CancellationReason = input.CancellationReason
	}

	if err := s.store.Save(appointment); err != nil {
		return nil, fmt.Errorf("failed to update appointment: %w", err)
	}

	actorID := actor.ID()
	_ = s.auditRepo.CreateAuditLog(actor.Role, &actorID, "appointment_updated", fmt.Sprintf("Appointment %s updated", appointment.AppointmentCode))

	return appointment, nil
}

// Cancel marks an appointment cancelled. Patients may only cancel their
// own appointments; doctors may cancel any. Cancelling an already
// cancelled appointment is a no-op in effect.
func (s *AppointmentService) Cancel(id uuid.UUID, actor *Principal) (*models.Appointment, error) {
	appointment, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if actor.IsPatient() && appointment.PatientID != actor.Patient.ID {
		return nil, ErrNotAppointmentOwner
	}

	appointment.Status = models.StatusCancelled
	if err := s.store.Save(appointment); err != nil {
		return nil, fmt.Errorf("failed to cancel appointment: %w", err)
	}

	actorID := actor.ID()
	_ = s.auditRepo.CreateAuditLog(actor.Role, &actorID, "appointment_cancelled", fmt.Sprintf("Appointment %s cancelled", appointment.AppointmentCode))

	return appointment, nil
}

func normalizePage(skip, limit int) (int, int) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 || limit > defaultPageSize {
		limit = defaultPageSize
	}
	return skip, limit
}
