package entities

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// NewID returns a 16-char lowercase hex identifier.
func NewID() (string, error) {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", fmt.Errorf("id entropy: %w", err)
	}
	return hex.EncodeToString(b[:]), nil
}
