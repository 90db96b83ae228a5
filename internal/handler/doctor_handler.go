package handler

import (
	"errors"
	"net/http"

	"hospital-appointment-backend/internal/middleware"
	"hospital-appointment-backend/internal/service"
	"hospital-appointment-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type DoctorHandler struct {
	doctorService *service.DoctorService
}

func NewDoctorHandler(doctorService *service.DoctorService) *DoctorHandler {
	return &DoctorHandler{
		doctorService: doctorService,
	}
}

// List returns the doctor directory for patients booking appointments
func (h *DoctorHandler) List(c *gin.Context) {
	skip, limit := parsePagination(c)

	doctors, err := h.doctorService.List(skip, limit)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch doctors")
		return
	}

	c.JSON(http.StatusOK, doctors)
}

// Me returns the authenticated doctor's own profile
func (h *DoctorHandler) Me(c *gin.Context) {
	principal := middleware.CurrentPrincipal(c)
	c.JSON(http.StatusOK, principal.Doctor)
}

// UpdateMe applies a partial profile update to the authenticated
// doctor's own record. Identity fields are not accepted.
func (h *DoctorHandler) UpdateMe(c *gin.Context) {
	var req service.ProfileUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	principal := middleware.CurrentPrincipal(c)

	doctor, err := h.doctorService.UpdateProfile(principal.Doctor.ID, req)
	if err != nil {
		if errors.Is(err, service.ErrDoctorNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, doctor)
}
