package service

import (
	"errors"
	"fmt"

	"hospital-appointment-backend/internal/models"
	"hospital-appointment-backend/internal/repository"
	"hospital-appointment-backend/pkg/utils"

	"github.com/google/uuid"
)

// PatientDirectory is the patient side of the identity store
type PatientDirectory interface {
	FindByContact(contact string) (*models.Patient, error)
	FindByID(id uuid.UUID) (*models.Patient, error)
	Create(patient *models.Patient) error
}

// DoctorDirectory is the doctor side of the identity store
type DoctorDirectory interface {
	FindByEmail(email string) (*models.Doctor, error)
	FindByID(id uuid.UUID) (*models.Doctor, error)
	Create(doctor *models.Doctor) error
	List(offset, limit int) ([]models.Doctor, error)
	UpdateProfile(id uuid.UUID, updates map[string]interface{}) (*models.Doctor, error)
}

// AuditSink records security-relevant events
type AuditSink interface {
	CreateAuditLog(actorType string, actorID *uuid.UUID, action string, details string) error
}

type AuthService struct {
	patientRepo     PatientDirectory
	doctorRepo      DoctorDirectory
	auditRepo       AuditSink
	doctorSecretKey string
}

func NewAuthService(patientRepo PatientDirectory, doctorRepo DoctorDirectory, auditRepo AuditSink, doctorSecretKey string) *AuthService {
	return &AuthService{
		patientRepo:     patientRepo,
		doctorRepo:      doctorRepo,
		auditRepo:       auditRepo,
		doctorSecretKey: doctorSecretKey,
	}
}

// TokenResponse represents the response structure for login and registration
type TokenResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	User        interface{} `json:"user"`
}

// PatientInfo is the patient summary embedded in token responses
type PatientInfo struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Type    string `json:"type"`
}

// DoctorInfo is the doctor summary embedded in token responses
type DoctorInfo struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Qualification *string `json:"qualification"`
	Type          string  `json:"type"`
}

// RegisterPatient creates a new patient account and returns a token
func (s *AuthService) RegisterPatient(name, contact, password string) (*TokenResponse, error) {
	// Pre-check; the unique index on contact is the final arbiter
	if existing, err := s.patientRepo.FindByContact(contact); err == nil && existing != nil {
		return nil, ErrContactTaken
	}

	passwordHash, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	patient := &models.Patient{
		Name:         name,
		Contact:      contact,
		PasswordHash: passwordHash,
	}

	if err := s.patientRepo.Create(patient); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrContactTaken
		}
		return nil, fmt.Errorf("failed to create patient: %w", err)
	}

	accessToken, err := utils.GenerateAccessToken(patient.Contact, utils.RolePatient)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	_ = s.auditRepo.CreateAuditLog(utils.RolePatient, &patient.ID, "patient_registered", fmt.Sprintf("Patient %s registered", patient.Name))

	return &TokenResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
		User:        patientInfo(patient),
	}, nil
}

// RegisterDoctor creates a new doctor account. The shared secret key is
// checked here, server-side, before anything is written.
func (s *AuthService) RegisterDoctor(secretKey, name, email, password string, qualification *string) (*TokenResponse, error) {
	if secretKey != s.doctorSecretKey {
		return nil, ErrInvalidSecretKey
	}

	if existing, err := s.doctorRepo.FindByEmail(email); err == nil && existing != nil {
		return nil, ErrEmailTaken
	}

	passwordHash, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	doctor := &models.Doctor{
		Name:          name,
		Email:         email,
		PasswordHash:  passwordHash,
		Qualification: qualification,
	}

	if err := s.doctorRepo.Create(doctor); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create doctor: %w", err)
	}

	accessToken, err := utils.GenerateAccessToken(doctor.Email, utils.RoleDoctor)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	_ = s.auditRepo.CreateAuditLog(utils.RoleDoctor, &doctor.ID, "doctor_registered", fmt.Sprintf("Doctor %s registered", doctor.Name))

	return &TokenResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
		User:        doctorInfo(doctor),
	}, nil
}

// LoginPatient authenticates a patient by contact and password.
// The failure is uniform whether the contact is unknown or the password
// is wrong; failed attempts are audited without the attempted identifier.
func (s *AuthService) LoginPatient(contact, password string) (*TokenResponse, error) {
	patient, err := s.patientRepo.FindByContact(contact)
	if err != nil {
		_ = s.auditRepo.CreateAuditLog(utils.RolePatient, nil, "patient_login_failed", "Failed patient login attempt")
		return nil, ErrInvalidCredentials
	}

	if !utils.ComparePassword(patient.PasswordHash, password) {
		_ = s.auditRepo.CreateAuditLog(utils.RolePatient, nil, "patient_login_failed", "Failed patient login attempt")
		return nil, ErrInvalidCredentials
	}

	accessToken, err := utils.GenerateAccessToken(patient.Contact, utils.RolePatient)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	_ = s.auditRepo.CreateAuditLog(utils.RolePatient, &patient.ID, "patient_login", fmt.Sprintf("Patient %s logged in", patient.Name))

	return &TokenResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
		User:        patientInfo(patient),
	}, nil
}

// LoginDoctor authenticates a doctor by email and password
func (s *AuthService) LoginDoctor(email, password string) (*TokenResponse, error) {
	doctor, err := s.doctorRepo.FindByEmail(email)
	if err != nil {
		_ = s.auditRepo.CreateAuditLog(utils.RoleDoctor, nil, "doctor_login_failed", "Failed doctor login attempt")
		return nil, ErrInvalidCredentials
	}

	if !utils.ComparePassword(doctor.PasswordHash, password) {
		_ = s.auditRepo.CreateAuditLog(utils.RoleDoctor, nil, "doctor_login_failed", "Failed doctor login attempt")
		return nil, ErrInvalidCredentials
	}

	accessToken, err := utils.GenerateAccessToken(doctor.Email, utils.RoleDoctor)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	_ = s.auditRepo.CreateAuditLog(utils.RoleDoctor, &doctor.ID, "doctor_login", fmt.Sprintf("Doctor %s logged in", doctor.Name))

	return &TokenResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
		User:        doctorInfo(doctor),
	}, nil
}

// ResolvePrincipal materializes the full identity record behind a
// verified token's role tag and subject (natural key)
func (s *AuthService) ResolvePrincipal(role, subject string) (*Principal, error) {
	switch role {
	case utils.RolePatient:
		patient, err := s.patientRepo.FindByContact(subject)
		if err != nil {
			return nil, ErrPatientNotFound
		}
		return &Principal{Role: utils.RolePatient, Patient: patient}, nil
	case utils.RoleDoctor:
		doctor, err := s.doctorRepo.FindByEmail(subject)
		if err != nil {
			return nil, ErrDoctorNotFound
		}
		return &Principal{Role: utils.RoleDoctor, Doctor: doctor}, nil
	default:
		return nil, ErrUnknownRole
	}
}

func patientInfo(p *models.Patient) PatientInfo {
	return PatientInfo{
		ID:      p.ID.String(),
		Name:    p.Name,
		Contact: p.Contact,
		Type:    utils.RolePatient,
	}
}

func doctorInfo(d *models.Doctor) DoctorInfo {
	return DoctorInfo{
		ID:            d.ID.String(),
		Name:          d.Name,
		Email:         d.Email,
		Qualification: d.Qualification,
		Type:          utils.RoleDoctor,
	}
}
