package service

import (
	"regexp"
	"testing"

	"hospital-appointment-backend/internal/models"
	"hospital-appointment-backend/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var codePattern = regexp.MustCompile(`^[A-Z0-9]{8}$`)

func newLedger() (*AppointmentService, *fakeAppointmentStore, *fakeDoctorRepo, *models.Doctor) {
	store := &fakeAppointmentStore{existingCodes: map[string]bool{}}
	doctors := &fakeDoctorRepo{}
	doctor := &models.Doctor{Name: "Dr. Bob", Email: "bob@hospital.test", PasswordHash: "x"}
	_ = doctors.Create(doctor)
	svc := NewAppointmentService(store, doctors, &fakeAuditRepo{})
	return svc, store, doctors, doctor
}

func patientPrincipal(id uuid.UUID) *Principal {
	return &Principal{Role: utils.RolePatient, Patient: &models.Patient{ID: id}}
}

func doctorPrincipal(id uuid.UUID) *Principal {
	return &Principal{Role: utils.RoleDoctor, Doctor: &models.Doctor{ID: id}}
}

func TestCreateAppointment(t *testing.T) {
	svc, _, _, doctor := newLedger()
	patientID := uuid.New()

	appointment, err := svc.Create(patientID, CreateAppointmentInput{
		DoctorID: doctor.ID,
		Problem:  "headache",
	})
	require.NoError(t, err)

	assert.Equal(t, models.StatusPending, appointment.Status)
	assert.Equal(t, patientID, appointment.PatientID)
	require.NotNil(t, appointment.DoctorID)
	assert.Equal(t, doctor.ID, *appointment.DoctorID)
	assert.Regexp(t, codePattern, appointment.AppointmentCode)
}

func TestCreateAppointmentCodesDistinct(t *testing.T) {
	svc, _, _, doctor := newLedger()

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		appointment, err := svc.Create(uuid.New(), CreateAppointmentInput{
			DoctorID: doctor.ID,
			Problem:  "checkup",
		})
		require.NoError(t, err)
		assert.False(t, seen[appointment.AppointmentCode])
		seen[appointment.AppointmentCode] = true
	}
}

func TestCreateAppointmentUnknownDoctor(t *testing.T) {
	svc, _, _, _ := newLedger()

	_, err := svc.Create(uuid.New(), CreateAppointmentInput{
		DoctorID: uuid.New(),
		Problem:  "headache",
	})
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}

func TestCreateAppointmentInvalidSeverity(t *testing.T) {
	svc, _, _, doctor := newLedger()
	bad := "catastrophic"

	_, err := svc.Create(uuid.New(), CreateAppointmentInput{
		DoctorID: doctor.ID,
		Problem:  "headache",
		Severity: &bad,
	})
	assert.ErrorIs(t, err, ErrInvalidSeverity)
}

func TestCreateAppointmentRetriesOnInsertRace(t *testing.T) {
	svc, store, _, doctor := newLedger()

	// The store rejects the first insert as a duplicate, simulating a
	// concurrent create that committed the same code first
	store.duplicateOnTry = 1

	appointment, err := svc.Create(uuid.New(), CreateAppointmentInput{
		DoctorID: doctor.ID,
		Problem:  "headache",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, store.createCalls)
	assert.Len(t, store.appointments, 1)
	assert.Regexp(t, codePattern, appointment.AppointmentCode)
}

func TestCreateAppointmentGivesUpAfterMaxAttempts(t *testing.T) {
	svc, store, _, doctor := newLedger()
	store.duplicateOnTry = codeMaxAttempts + 1

	_, err := svc.Create(uuid.New(), CreateAppointmentInput{
		DoctorID: doctor.ID,
		Problem:  "headache",
	})
	assert.ErrorIs(t, err, ErrCodeExhausted)
	assert.Empty(t, store.appointments)
}

func TestGetByCode(t *testing.T) {
	svc, _, _, doctor := newLedger()

	created, err := svc.Create(uuid.New(), CreateAppointmentInput{
		DoctorID: doctor.ID,
		Problem:  "headache",
	})
	require.NoError(t, err)

	found, err := svc.GetByCode(created.AppointmentCode)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = svc.GetByCode("NOPE1234")
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestUpdateAppointment(t *testing.T) {
	svc, _, _, doctor := newLedger()

	created, err := svc.Create(uuid.New(), CreateAppointmentInput{
		DoctorID: doctor.ID,
		Problem:  "headache",
	})
	require.NoError(t, err)
	createdAt := created.UpdatedAt

	result := "migraine"
	completed := models.StatusCompleted
	updated, err := svc.Update(created.ID, doctorPrincipal(doctor.ID), UpdateAppointmentInput{
		Result: &result,
		Status: &completed,
	})
	require.NoError(t, err)

	assert.Equal(t, models.StatusCompleted, updated.Status)
	require.NotNil(t, updated.Result)
	assert.Equal(t, "migraine", *updated.Result)
	assert.True(t, updated.UpdatedAt.After(createdAt) || updated.UpdatedAt.Equal(createdAt))

	// Public lookup reflects the final state
	found, err := svc.GetByCode(created.AppointmentCode)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, found.Status)
}

func TestUpdateAppointmentPartial(t *testing.T) {
	svc, _, _, doctor := newLedger()

	created, err := svc.Create(uuid.New(), CreateAppointmentInput{
		DoctorID: doctor.ID,
		Problem:  "headache",
	})
	require.NoError(t, err)

	result := "needs follow-up"
	updated, err := svc.Update(created.ID, doctorPrincipal(doctor.ID), UpdateAppointmentInput{Result: &result})
	require.NoError(t, err)

	// Status untouched when not supplied
	assert.Equal(t, models.StatusPending, updated.Status)
	require.NotNil(t, updated.Result)
	assert.Equal(t, "needs follow-up", *updated.Result)
}

func TestUpdateAppointmentInvalidStatus(t *testing.T) {
	svc, _, _, doctor := newLedger()

	created, err := svc.Create(uuid.New(), CreateAppointmentInput{
		DoctorID: doctor.ID,
		Problem:  "headache",
	})
	require.NoError(t, err)

	bad := "rescheduled"
	_, err = svc.Update(created.ID, doctorPrincipal(doctor.ID), UpdateAppointmentInput{Status: &bad})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateAppointmentTerminalStatesAreFinal(t *testing.T) {
	svc, _, _, doctor := newLedger()
	actor := doctorPrincipal(doctor.ID)

	created, err := svc.Create(uuid.New(), CreateAppointmentInput{
		DoctorID: doctor.ID,
		Problem:  "headache",
	})
	require.NoError(t, err)

	completed := models.StatusCompleted
	_, err = svc.Update(created.ID, actor, UpdateAppointmentInput{Status: &completed})
	require.NoError(t, err)

	// No way back to pending, or anywhere else, once terminal
	pending := models.StatusPending
	_, err = svc.Update(created.ID, actor, UpdateAppointmentInput{Status: &pending})
	assert.ErrorIs(t, err, ErrTerminalStatus)

	cancelled := models.StatusCancelled
	_, err = svc.Update(created.ID, actor, UpdateAppointmentInput{Status: &cancelled})
	assert.ErrorIs(t, err, ErrTerminalStatus)

	// Repeating the current status is a no-op, not an error
	_, err = svc.Update(created.ID, actor, UpdateAppointmentInput{Status: &completed})
	assert.NoError(t, err)
}

func TestUpdateAppointmentPendingToPendingNoOp(t *testing.T) {
	svc, _, _, doctor := newLedger()

	created, err := svc.Create(uuid.New(), CreateAppointmentInput{
		DoctorID: doctor.ID,
		Problem:  "headache",
	})
	require.NoError(t, err)

	pending := models.StatusPending
	updated, err := svc.Update(created.ID, doctorPrincipal(doctor.ID), UpdateAppointmentInput{Status: &pending})
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, updated.Status)
}

func TestCancelOwnership(t *testing.T) {
	svc, _, _, doctor := newLedger()
	owner := uuid.New()
	other := uuid.New()

	created, err := svc.Create(owner, CreateAppointmentInput{
		DoctorID: doctor.ID,
		Problem:  "headache",
	})
	require.NoError(t, err)

	// Another patient may not cancel it
	_, err = svc.Cancel(created.ID, patientPrincipal(other))
	assert.ErrorIs(t, err, ErrNotAppointmentOwner)

	// The owner may
	cancelled, err := svc.Cancel(created.ID, patientPrincipal(owner))
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, cancelled.Status)
}

func TestCancelByDoctor(t *testing.T) {
	svc, _, _, doctor := newLedger()

	created, err := svc.Create(uuid.New(), CreateAppointmentInput{
		DoctorID: doctor.ID,
		Problem:  "headache",
	})
	require.NoError(t, err)

	cancelled, err := svc.Cancel(created.ID, doctorPrincipal(doctor.ID))
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, cancelled.Status)
}

func TestCancelIsIdempotent(t *testing.T) {
	svc, _, _, doctor := newLedger()
	owner := uuid.New()

	created, err := svc.Create(owner, CreateAppointmentInput{
		DoctorID: doctor.ID,
		Problem:  "headache",
	})
	require.NoError(t, err)

	_, err = svc.Cancel(created.ID, patientPrincipal(owner))
	require.NoError(t, err)

	again, err := svc.Cancel(created.ID, patientPrincipal(owner))
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, again.Status)
}

func TestCancelNotFound(t *testing.T) {
	svc, _, _, _ := newLedger()

	_, err := svc.Cancel(uuid.New(), patientPrincipal(uuid.New()))
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestListForPatientAndDoctor(t *testing.T) {
	svc, _, _, doctor := newLedger()
	alice := uuid.New()
	carol := uuid.New()

	for i := 0; i < 3; i++ {
		_, err := svc.Create(alice, CreateAppointmentInput{DoctorID: doctor.ID, Problem: "checkup"})
		require.NoError(t, err)
	}
	_, err := svc.Create(carol, CreateAppointmentInput{DoctorID: doctor.ID, Problem: "checkup"})
	require.NoError(t, err)

	mine, err := svc.ListForPatient(alice, 0, 100)
	require.NoError(t, err)
	assert.Len(t, mine, 3)

	assigned, err := svc.ListForDoctor(doctor.ID, 0, 100)
	require.NoError(t, err)
	assert.Len(t, assigned, 4)

	all, err := svc.ListAll(0, 100)
	require.NoError(t, err)
	assert.Len(t, all, 4)

	// Pagination clamps oversized limits to the default page size
	paged, err := svc.ListAll(1, 2)
	require.NoError(t, err)
	assert.Len(t, paged, 2)
}
