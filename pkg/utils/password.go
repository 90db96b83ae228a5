package utils

import "golang.org/x/crypto/bcrypt"

const bcryptCost = 12

// bcrypt only considers the first 72 bytes of input; longer passwords
// are truncated so hashing and verification agree on the same prefix.
const maxPasswordBytes = 72

func passwordBytes(password string) []byte {
	b := []byte(password)
	if len(b) > maxPasswordBytes {
		b = b[:maxPasswordBytes]
	}
	return b
}

// HashPassword generates a bcrypt hash from a plain text password
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword(passwordBytes(password), bcryptCost)
	return string(bytes), err
}

// ComparePassword compares a bcrypt hashed password with plain text password.
// A missing or malformed stored hash verifies as false, never as an error.
func ComparePassword(hashedPassword, password string) bool {
	if hashedPassword == "" {
		return false
	}
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), passwordBytes(password))
	return err == nil
}
