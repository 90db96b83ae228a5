package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateAccessToken(t *testing.T) {
	InitJWT("test-secret", 30*time.Minute)

	token, err := GenerateAccessToken("555-0100", RolePatient)
	require.NoError(t, err)

	claims, err := ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "555-0100", claims.Subject)
	assert.Equal(t, RolePatient, claims.Type)
}

func TestValidateAccessTokenExpired(t *testing.T) {
	InitJWT("test-secret", -time.Minute)
	token, err := GenerateAccessToken("doc@example.com", RoleDoctor)
	require.NoError(t, err)

	InitJWT("test-secret", 30*time.Minute)
	_, err = ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestValidateAccessTokenTamperedSignature(t *testing.T) {
	InitJWT("test-secret", 30*time.Minute)
	token, err := GenerateAccessToken("555-0100", RolePatient)
	require.NoError(t, err)

	InitJWT("another-secret", 30*time.Minute)
	_, err = ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestValidateAccessTokenMalformed(t *testing.T) {
	InitJWT("test-secret", 30*time.Minute)

	_, err := ValidateAccessToken("not-a-token")
	assert.Error(t, err)
}

func TestValidateAccessTokenMissingClaims(t *testing.T) {
	InitJWT("test-secret", 30*time.Minute)

	// Signed with the right secret but without subject or role claims
	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	})
	token, err := raw.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestValidateAccessTokenRejectsUnsignedMethod(t *testing.T) {
	InitJWT("test-secret", 30*time.Minute)

	raw := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		Type: RolePatient,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "555-0100",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	})
	token, err := raw.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ValidateAccessToken(token)
	assert.Error(t, err)
}
