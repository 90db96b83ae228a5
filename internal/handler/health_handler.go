package handler

import (
	"net/http"

	"hospital-appointment-backend/internal/models"
	"hospital-appointment-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Root returns the service banner
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Hospital Appointment System API",
		"version": "1.0.0",
	})
}

// Health reports process liveness
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "hospital-appointment-backend",
	})
}

// DatabaseHealth verifies the store connection and reports row counts
// for the main tables
func (h *HealthHandler) DatabaseHealth(c *gin.Context) {
	var patients, doctors, appointments int64

	if err := h.db.Model(&models.Patient{}).Count(&patients).Error; err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Database connection failed: "+err.Error())
		return
	}
	_ = h.db.Model(&models.Doctor{}).Count(&doctors).Error
	_ = h.db.Model(&models.Appointment{}).Count(&appointments).Error

	c.JSON(http.StatusOK, gin.H{
		"database_connected": true,
		"patients_count":     patients,
		"doctors_count":      doctors,
		"appointments_count": appointments,
	})
}
