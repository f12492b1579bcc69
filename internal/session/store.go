package session

import (
	"context"
	"time"
)

// Session is one browser's authentication state. A browser without a
// stored session is anonymous: Authenticated false, Email empty.
type Session struct {
	SessionID     string    `json:"session_id"`
	Authenticated bool      `json:"authenticated"`
	Email         string    `json:"email"` // references an account email
	CreatedAt     time.Time `json:"created_at"`
	ExpiresAt     time.Time `json:"expires_at"` // absolute expiry time
}

// Anonymous is the state of a browser that is not logged in.
func Anonymous() Session {
	return Session{}
}

func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// Store defines how sessions are stored and retrieved.
// Get returns (nil, nil) when the session does not exist.
type Store interface {
	Create(ctx context.Context, s Session) error
	Get(ctx context.Context, sessionID string) (*Session, error)
	Update(ctx context.Context, s Session) error
	Delete(ctx context.Context, sessionID string) error
}
