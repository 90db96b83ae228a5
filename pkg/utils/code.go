package utils

import (
	"crypto/rand"
	"math/big"
)

const (
	codeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	codeLength  = 8
)

// GenerateAppointmentCode returns a random 8-character code drawn from
// uppercase letters and digits. Uniqueness is enforced by the caller
// against the store, not here.
func GenerateAppointmentCode() (string, error) {
	max := big.NewInt(int64(len(codeCharset)))
	buf := make([]byte, codeLength)
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		buf[i] = codeCharset[n.Int64()]
	}
	return string(buf), nil
}
