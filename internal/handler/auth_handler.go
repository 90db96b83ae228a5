package handler

import (
	"errors"
	"net/http"

	"hospital-appointment-backend/internal/middleware"
	"hospital-appointment-backend/internal/service"
	"hospital-appointment-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

type PatientRegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Contact  string `json:"contact" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type DoctorRegisterRequest struct {
	SecretKey     string  `json:"secret_key" binding:"required"`
	Name          string  `json:"name" binding:"required"`
	Email         string  `json:"email" binding:"required,email"`
	Password      string  `json:"password" binding:"required"`
	Qualification *string `json:"qualification"`
}

type PatientLoginRequest struct {
	Contact  string `json:"contact" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type DoctorLoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterPatient handles patient registration
func (h *AuthHandler) RegisterPatient(c *gin.Context) {
	var req PatientRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	response, err := h.authService.RegisterPatient(req.Name, req.Contact, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrContactTaken) {
			utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, response)
}

// RegisterDoctor handles doctor registration, gated by the shared secret key
func (h *AuthHandler) RegisterDoctor(c *gin.Context) {
	var req DoctorRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	response, err := h.authService.RegisterDoctor(req.SecretKey, req.Name, req.Email, req.Password, req.Qualification)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidSecretKey):
			utils.ErrorResponse(c, http.StatusForbidden, err.Error())
		case errors.Is(err, service.ErrEmailTaken):
			utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		default:
			utils.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, response)
}

// LoginPatient handles patient authentication by contact
func (h *AuthHandler) LoginPatient(c *gin.Context) {
	var req PatientLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	response, err := h.authService.LoginPatient(req.Contact, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Incorrect contact or password")
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, response)
}

// LoginDoctor handles doctor authentication by email
func (h *AuthHandler) LoginDoctor(c *gin.Context) {
	var req DoctorLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	response, err := h.authService.LoginDoctor(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Incorrect email or password")
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, response)
}

// Logout acknowledges logout; token invalidation is client-side discard
func (h *AuthHandler) Logout(c *gin.Context) {
	utils.MessageResponse(c, "Logged out successfully")
}

// MePatient returns the authenticated patient's own profile
func (h *AuthHandler) MePatient(c *gin.Context) {
	principal := middleware.CurrentPrincipal(c)
	c.JSON(http.StatusOK, principal.Patient)
}

// MeDoctor returns the authenticated doctor's own profile
func (h *AuthHandler) MeDoctor(c *gin.Context) {
	principal := middleware.CurrentPrincipal(c)
	c.JSON(http.StatusOK, principal.Doctor)
}
