package handler

import (
	"errors"
	"net/http"
	"strconv"

	"hospital-appointment-backend/internal/middleware"
	"hospital-appointment-backend/internal/models"
	"hospital-appointment-backend/internal/service"
	"hospital-appointment-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AppointmentHandler struct {
	appointmentService *service.AppointmentService
}

func NewAppointmentHandler(appointmentService *service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentService: appointmentService,
	}
}

type CreateAppointmentRequest struct {
	DoctorID       string  `json:"doctor_id" binding:"required"`
	Problem        string  `json:"problem" binding:"required"`
	Severity       *string `json:"severity"`
	Duration       *string `json:"duration"`
	MedicalHistory *string `json:"medical_history"`
}

type UpdateAppointmentRequest struct {
	Result             *string `json:"result"`
	Status             *string `json:"status"`
	CancellationReason *string `json:"cancellation_reason"`
}

// Create books a new appointment for the authenticated patient
func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	doctorID, err := uuid.Parse(req.DoctorID)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid doctor ID format")
		return
	}

	principal := middleware.CurrentPrincipal(c)

	appointment, err := h.appointmentService.Create(principal.Patient.ID, service.CreateAppointmentInput{
		DoctorID:       doctorID,
		Problem:        req.Problem,
		Severity:       req.Severity,
		Duration:       req.Duration,
		MedicalHistory: req.MedicalHistory,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDoctorNotFound):
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrInvalidSeverity):
			utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrCodeExhausted):
			utils.ErrorResponse(c, http.StatusConflict, err.Error())
		default:
			utils.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, appointment)
}

// GetByCode looks up an appointment by its public code. No auth.
func (h *AppointmentHandler) GetByCode(c *gin.Context) {
	appointment, err := h.appointmentService.GetByCode(c.Param("code"))
	if err != nil {
		if errors.Is(err, service.ErrAppointmentNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, appointment)
}

// My lists the appointments of the authenticated principal, branching
// on its role
func (h *AppointmentHandler) My(c *gin.Context) {
	principal := middleware.CurrentPrincipal(c)
	skip, limit := parsePagination(c)

	var (
		appointments []models.Appointment
		err          error
	)
	if principal.IsDoctor() {
		appointments, err = h.appointmentService.ListForDoctor(principal.Doctor.ID, skip, limit)
	} else {
		appointments, err = h.appointmentService.ListForPatient(principal.Patient.ID, skip, limit)
	}
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch appointments")
		return
	}

	c.JSON(http.StatusOK, appointments)
}

// All lists every appointment (doctor only)
func (h *AppointmentHandler) All(c *gin.Context) {
	skip, limit := parsePagination(c)

	appointments, err := h.appointmentService.ListAll(skip, limit)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch appointments")
		return
	}

	c.JSON(http.StatusOK, appointments)
}

// Update applies a doctor's result/status change to an appointment
func (h *AppointmentHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	principal := middleware.CurrentPrincipal(c)

	appointment, err := h.appointmentService.Update(id, principal, service.UpdateAppointmentInput{
		Result:             req.Result,
		Status:             req.Status,
		CancellationReason: req.CancellationReason,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAppointmentNotFound):
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrInvalidStatus):
			utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrTerminalStatus):
			utils.ErrorResponse(c, http.StatusConflict, err.Error())
		default:
			utils.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, appointment)
}

// Cancel marks an appointment cancelled. Patients may only cancel
// their own appointments.
func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	principal := middleware.CurrentPrincipal(c)

	appointment, err := h.appointmentService.Cancel(id, principal)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAppointmentNotFound):
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrNotAppointmentOwner):
			utils.ErrorResponse(c, http.StatusForbidden, err.Error())
		default:
			utils.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, appointment)
}

// parsePagination reads skip/limit query parameters with the default
// page size conventions
func parsePagination(c *gin.Context) (int, int) {
	skip, err := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil {
		skip = 0
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if err != nil {
		limit = 100
	}
	return skip, limit
}
