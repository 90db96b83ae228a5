package middleware

import (
	"net/http"
	"strings"

	"hospital-appointment-backend/internal/service"
	"hospital-appointment-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// PrincipalResolver materializes the identity record behind verified
// token claims
type PrincipalResolver interface {
	ResolvePrincipal(role, subject string) (*service.Principal, error)
}

// PrincipalKey is the gin context key the resolved principal is stored under
const PrincipalKey = "principal"

// AuthMiddleware validates the bearer token from the Authorization
// header and attaches the resolved principal to the request context.
// Missing/invalid/expired tokens, unrecognized role tags and vanished
// subjects all end the request with 401.
func AuthMiddleware(resolver PrincipalResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Authorization header required")
			c.Abort()
			return
		}

		// Check Bearer prefix
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid authorization format. Use: Bearer <token>")
			c.Abort()
			return
		}

		claims, err := utils.ValidateAccessToken(parts[1])
		if err != nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		principal, err := resolver.ResolvePrincipal(claims.Type, claims.Subject)
		if err != nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Could not validate credentials")
			c.Abort()
			return
		}

		c.Set(PrincipalKey, principal)

		c.Next()
	}
}

// RequirePatient checks that the authenticated principal is a patient
func RequirePatient() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal := CurrentPrincipal(c)
		if principal == nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
			c.Abort()
			return
		}

		if !principal.IsPatient() {
			utils.ErrorResponse(c, http.StatusForbidden, "Patient access required")
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireDoctor checks that the authenticated principal is a doctor
func RequireDoctor() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal := CurrentPrincipal(c)
		if principal == nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
			c.Abort()
			return
		}

		if !principal.IsDoctor() {
			utils.ErrorResponse(c, http.StatusForbidden, "Doctor access required")
			c.Abort()
			return
		}

		c.Next()
	}
}

// CurrentPrincipal returns the principal attached by AuthMiddleware,
// or nil if the request is unauthenticated
func CurrentPrincipal(c *gin.Context) *service.Principal {
	value, exists := c.Get(PrincipalKey)
	if !exists {
		return nil
	}
	principal, ok := value.(*service.Principal)
	if !ok {
		return nil
	}
	return principal
}
