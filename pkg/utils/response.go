package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse sends the standard error JSON body used across the API
func ErrorResponse(c *gin.Context, statusCode int, detail string) {
	c.JSON(statusCode, gin.H{"detail": detail})
}

// MessageResponse sends a simple message response
func MessageResponse(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"message": message})
}
