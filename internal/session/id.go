package session

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// idBytes is the raw entropy behind a session id (256 bits).
const idBytes = 32

var idLen = base64.RawURLEncoding.EncodedLen(idBytes)

// GenerateID returns a random, URL-safe session id.
func GenerateID() (string, error) {
	b := make([]byte, idBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("session: failed to generate id: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// ValidID reports whether id has the shape GenerateID produces, so forged
// cookies can be rejected without a store round trip.
func ValidID(id string) bool {
	if len(id) != idLen {
		return false
	}
	_, err := base64.RawURLEncoding.DecodeString(id)
	return err == nil
}
