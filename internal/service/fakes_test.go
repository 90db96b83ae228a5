package service

import (
	"time"

	"hospital-appointment-backend/internal/models"
	"hospital-appointment-backend/internal/repository"

	"github.com/google/uuid"
)

// In-memory fakes standing in for the gorm repositories.

type fakePatientRepo struct {
	patients []*models.Patient
}

func (f *fakePatientRepo) FindByContact(contact string) (*models.Patient, error) {
	for _, p := range f.patients {
		if p.Contact == contact {
			return p, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakePatientRepo) FindByID(id uuid.UUID) (*models.Patient, error) {
	for _, p := range f.patients {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakePatientRepo) Create(patient *models.Patient) error {
	if _, err := f.FindByContact(patient.Contact); err == nil {
		return repository.ErrDuplicate
	}
	if patient.ID == uuid.Nil {
		patient.ID = uuid.New()
	}
	patient.CreatedAt = time.Now()
	f.patients = append(f.patients, patient)
	return nil
}

type fakeDoctorRepo struct {
	doctors []*models.Doctor
}

func (f *fakeDoctorRepo) FindByEmail(email string) (*models.Doctor, error) {
	for _, d := range f.doctors {
		if d.Email == email {
			return d, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeDoctorRepo) FindByID(id uuid.UUID) (*models.Doctor, error) {
	for _, d := range f.doctors {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeDoctorRepo) Create(doctor *models.Doctor) error {
	if _, err := f.FindByEmail(doctor.Email); err == nil {
		return repository.ErrDuplicate
	}
	if doctor.ID == uuid.Nil {
		doctor.ID = uuid.New()
	}
	doctor.CreatedAt = time.Now()
	f.doctors = append(f.doctors, doctor)
	return nil
}

func (f *fakeDoctorRepo) List(offset, limit int) ([]models.Doctor, error) {
	var out []models.Doctor
	for i := offset; i < len(f.doctors) && len(out) < limit; i++ {
		out = append(out, *f.doctors[i])
	}
	return out, nil
}

func (f *fakeDoctorRepo) UpdateProfile(id uuid.UUID, updates map[string]interface{}) (*models.Doctor, error) {
	doctor, err := f.FindByID(id)
	if err != nil {
		return nil, err
	}
	for field, value := range updates {
		s := value.(string)
		switch field {
		case "name":
			doctor.Name = s
		case "phone":
			doctor.Phone = &s
		case "qualification":
			doctor.Qualification = &s
		case "specialization":
			doctor.Specialization = &s
		case "department":
			doctor.Department = &s
		case "experience":
			doctor.Experience = &s
		case "bio":
			doctor.Bio = &s
		}
	}
	return doctor, nil
}

type fakeAppointmentStore struct {
	appointments []*models.Appointment

	// forced failure injection for the code collision paths
	existingCodes  map[string]bool
	duplicateOnTry int
	createCalls    int
}

func (f *fakeAppointmentStore) Create(appointment *models.Appointment) error {
	f.createCalls++
	if f.duplicateOnTry > 0 && f.createCalls <= f.duplicateOnTry {
		return repository.ErrDuplicate
	}
	for _, a := range f.appointments {
		if a.AppointmentCode == appointment.AppointmentCode {
			return repository.ErrDuplicate
		}
	}
	if appointment.ID == uuid.Nil {
		appointment.ID = uuid.New()
	}
	appointment.CreatedAt = time.Now()
	appointment.UpdatedAt = appointment.CreatedAt
	f.appointments = append(f.appointments, appointment)
	return nil
}

func (f *fakeAppointmentStore) FindByCode(code string) (*models.Appointment, error) {
	for _, a := range f.appointments {
		if a.AppointmentCode == code {
			return a, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeAppointmentStore) FindByID(id uuid.UUID) (*models.Appointment, error) {
	for _, a := range f.appointments {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeAppointmentStore) CodeExists(code string) (bool, error) {
	if f.existingCodes[code] {
		return true, nil
	}
	_, err := f.FindByCode(code)
	return err == nil, nil
}

func (f *fakeAppointmentStore) ListByPatient(patientID uuid.UUID, offset, limit int) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range f.appointments {
		if a.PatientID == patientID {
			out = append(out, *a)
		}
	}
	return page(out, offset, limit), nil
}

func (f *fakeAppointmentStore) ListByDoctor(doctorID uuid.UUID, offset, limit int) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range f.appointments {
		if a.DoctorID != nil && *a.DoctorID == doctorID {
			out = append(out, *a)
		}
	}
	return page(out, offset, limit), nil
}

func (f *fakeAppointmentStore) ListAll(offset, limit int) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range f.appointments {
		out = append(out, *a)
	}
	return page(out, offset, limit), nil
}

func (f *fakeAppointmentStore) Save(appointment *models.Appointment) error {
	for i, a := range f.appointments {
		if a.ID == appointment.ID {
			appointment.UpdatedAt = time.Now()
			f.appointments[i] = appointment
			return nil
		}
	}
	return repository.ErrNotFound
}

func page(in []models.Appointment, offset, limit int) []models.Appointment {
	if offset >= len(in) {
		return nil
	}
	in = in[offset:]
	if len(in) > limit {
		in = in[:limit]
	}
	return in
}

type fakeAuditRepo struct {
	actions []string
}

func (f *fakeAuditRepo) CreateAuditLog(actorType string, actorID *uuid.UUID, action string, details string) error {
	f.actions = append(f.actions, action)
	return nil
}
