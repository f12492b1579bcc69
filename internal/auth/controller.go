package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gemini-nlp/internal/auth/credentials"
	"gemini-nlp/internal/logger"
	"gemini-nlp/internal/session"
)

// Resolver maps an authenticated email to its Identity.
type Resolver interface {
	Resolve(ctx context.Context, email string) (*Identity, error)
}

// Recorder observes auth outcomes.
type Recorder interface {
	ObserveRegistration(outcome string)
	ObserveLogin(outcome string)
}

type Controller struct {
	credentials *credentials.Service
	sessions    session.Store
	resolver    Resolver
	recorder    Recorder
	ttl         time.Duration
	now         func() time.Time
}

func NewController(
	creds *credentials.Service,
	sessions session.Store,
	resolver Resolver,
	recorder Recorder,
	ttl time.Duration,
) *Controller {
	return &Controller{
		credentials: creds,
		sessions:    sessions,
		resolver:    resolver,
		recorder:    recorder,
		ttl:         ttl,
		now:         time.Now,
	}
}

// Register creates an account. It returns credentials.ErrAlreadyExists when
// the email is taken.
func (c *Controller) Register(ctx context.Context, name, email, password string) error {
	err := c.credentials.Register(ctx, name, email, password)
	switch {
	case err == nil:
		c.observeRegistration("ok")
		logger.Info("account registered", map[string]any{"email": email})
		return nil
	case errors.Is(err, credentials.ErrAlreadyExists):
		c.observeRegistration("conflict")
		return err
	case errors.Is(err, credentials.ErrPasswordTooLong):
		c.observeRegistration("rejected")
		return err
	default:
		c.observeRegistration("error")
		return fmt.Errorf("auth: register: %w", err)
	}
}

// Login checks credentials and creates an authenticated session. The
// browser's previous session, if any, is deleted once the new one exists so
// one browser never holds two live records. On failure nothing is created
// or modified.
func (c *Controller) Login(ctx context.Context, email, password, previousID string) (session.Session, error) {
	if _, err := c.credentials.Authenticate(ctx, email, password); err != nil {
		if errors.Is(err, credentials.ErrInvalidCredentials) {
			c.observeLogin("invalid")
			logger.Warn("login rejected", map[string]any{"email": email})
			return session.Session{}, err
		}
		c.observeLogin("error")
		return session.Session{}, fmt.Errorf("auth: login: %w", err)
	}

	sessionID, err := session.GenerateID()
	if err != nil {
		c.observeLogin("error")
		return session.Session{}, err
	}

	now := c.now()
	sess := session.Session{
		SessionID:     sessionID,
		Authenticated: true,
		Email:         email,
		CreatedAt:     now,
		ExpiresAt:     now.Add(c.ttl),
	}

	if err := c.sessions.Create(ctx, sess); err != nil {
		c.observeLogin("error")
		return session.Session{}, fmt.Errorf("auth: persist session: %w", err)
	}

	if previousID != "" && previousID != sess.SessionID {
		if err := c.sessions.Delete(ctx, previousID); err != nil {
			logger.Warn("previous session not deleted", map[string]any{"error": err})
		}
	}

	c.observeLogin("ok")
	logger.Info("login succeeded", map[string]any{"email": email})
	return sess, nil
}

// Refresh slides the expiry of an authenticated session forward by a full
// TTL once less than half of it remains. It reports whether sess was
// rewritten; callers re-issue the cookie in that case.
func (c *Controller) Refresh(ctx context.Context, sess session.Session) (session.Session, bool, error) {
	if !sess.Authenticated || sess.SessionID == "" {
		return sess, false, nil
	}

	now := c.now()
	if sess.ExpiresAt.Sub(now) > c.ttl/2 {
		return sess, false, nil
	}

	next := sess
	next.ExpiresAt = now.Add(c.ttl)
	if err := c.sessions.Update(ctx, next); err != nil {
		return sess, false, fmt.Errorf("auth: refresh session: %w", err)
	}
	return next, true, nil
}

// Logout drops the session. Unknown ids are not an error.
func (c *Controller) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := c.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("auth: logout: %w", err)
	}
	return nil
}

// Current loads the session behind sessionID together with its identity.
// Missing, malformed, expired or orphaned sessions come back anonymous
// with a nil identity.
func (c *Controller) Current(ctx context.Context, sessionID string) (session.Session, *Identity, error) {
	if !session.ValidID(sessionID) {
		return session.Anonymous(), nil, nil
	}

	sess, err := c.sessions.Get(ctx, sessionID)
	if err != nil {
		return session.Anonymous(), nil, fmt.Errorf("auth: load session: %w", err)
	}
	if sess == nil || !sess.Authenticated {
		return session.Anonymous(), nil, nil
	}

	if sess.Expired(c.now()) {
		_ = c.sessions.Delete(ctx, sessionID)
		return session.Anonymous(), nil, nil
	}

	identity, err := c.resolver.Resolve(ctx, sess.Email)
	if errors.Is(err, credentials.ErrNotFound) {
		// account vanished (e.g. memory accounts after a restart with redis sessions)
		_ = c.sessions.Delete(ctx, sessionID)
		return session.Anonymous(), nil, nil
	}
	if err != nil {
		return session.Anonymous(), nil, fmt.Errorf("auth: resolve identity: %w", err)
	}

	return *sess, identity, nil
}

func (c *Controller) observeRegistration(outcome string) {
	if c.recorder != nil {
		c.recorder.ObserveRegistration(outcome)
	}
}

func (c *Controller) observeLogin(outcome string) {
	if c.recorder != nil {
		c.recorder.ObserveLogin(outcome)
	}
}
