package entities

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
)

// NewOTP returns a 4-digit verification code binding the physical pickup to
// the digital trip start.
func NewOTP() (string, error) {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", fmt.Errorf("otp entropy: %w", err)
	}
	n := binary.BigEndian.Uint64(b[:]) % 10000
	return fmt.Sprintf("%04d", n), nil
}
