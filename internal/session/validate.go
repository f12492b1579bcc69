package session

import (
	"errors"
	"fmt"
	"time"
)

// ErrIDInUse is returned by Create when the id is already stored.
var ErrIDInUse = errors.New("session: id already in use")

func validateNew(s Session, now time.Time) error {
	if s.SessionID == "" {
		return fmt.Errorf("session: missing session_id")
	}
	if s.Authenticated && s.Email == "" {
		return fmt.Errorf("session: authenticated session without email")
	}
	if !s.ExpiresAt.After(now) {
		return fmt.Errorf("session: expires_at must be in the future")
	}
	return nil
}
