package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Role tags carried in the token's type claim
const (
	RolePatient = "patient"
	RoleDoctor  = "doctor"
)

var (
	jwtSecret    string
	accessExpiry time.Duration
)

// InitJWT initializes the JWT secret and access token expiry
func InitJWT(secret string, accessExp time.Duration) {
	jwtSecret = secret
	accessExpiry = accessExp
}

// Claims represents JWT custom claims. Subject holds the natural key
// (contact for patients, email for doctors), Type the role tag.
type Claims struct {
	Type string `json:"type"`
	jwt.RegisteredClaims
}

// GenerateAccessToken generates a signed, time-limited JWT access token
func GenerateAccessToken(subject, role string) (string, error) {
	claims := Claims{
		Type: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(accessExpiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecret))
}

// ValidateAccessToken validates and parses a JWT access token.
// Bad signature, expiry, a malformed payload or missing subject/type
// claims all yield an error; nothing past this boundary panics.
func ValidateAccessToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(jwtSecret), nil
	})

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	if claims.Subject == "" || claims.Type == "" {
		return nil, errors.New("token missing required claims")
	}

	return claims, nil
}
