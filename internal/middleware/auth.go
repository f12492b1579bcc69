package middleware

import (
	"context"
	"net/http"

	"gemini-nlp/internal/auth"
	"gemini-nlp/internal/logger"
	"gemini-nlp/internal/session"
)

// unexported, collision-proof context key
type stateContextKeyType struct{}

var stateKey = stateContextKeyType{}

// State is the per-request view of who is calling.
type State struct {
	Session  session.Session
	Identity *auth.Identity
}

func (s State) Authenticated() bool {
	return s.Session.Authenticated && s.Identity != nil
}

// StateFromContext returns the attached state, or the anonymous state.
func StateFromContext(ctx context.Context) State {
	st, ok := ctx.Value(stateKey).(State)
	if !ok {
		return State{Session: session.Anonymous()}
	}
	return st
}

// WithState attaches st to ctx.
func WithState(ctx context.Context, st State) context.Context {
	return context.WithValue(ctx, stateKey, st)
}

// SessionLoader resolves a cookie value to a session and identity.
type SessionLoader interface {
	Current(ctx context.Context, sessionID string) (session.Session, *auth.Identity, error)
}

// Refresher slides an authenticated session's expiry forward.
type Refresher interface {
	Refresh(ctx context.Context, sess session.Session) (session.Session, bool, error)
}

type AuthMiddleware struct {
	Loader SessionLoader

	refresher Refresher
	cookies   session.Cookies
}

func NewAuthMiddleware(loader SessionLoader) *AuthMiddleware {
	return &AuthMiddleware{Loader: loader}
}

// WithRefresh enables sliding expiry: authenticated sessions are passed to
// r and the cookie is re-issued whenever r rewrites one.
func (a *AuthMiddleware) WithRefresh(r Refresher, cookies session.Cookies) *AuthMiddleware {
	a.refresher = r
	a.cookies = cookies
	return a
}

// LoadSession attaches the caller's State to the request context. Lookup
// failures degrade to anonymous.
func (a *AuthMiddleware) LoadSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		st := State{Session: session.Anonymous()}

		if sessionID, ok := session.FromRequest(r); ok {
			sess, identity, err := a.Loader.Current(r.Context(), sessionID)
			if err != nil {
				logger.Error("session lookup failed", map[string]any{"error": err})
			} else {
				st = State{Session: sess, Identity: identity}
			}
		}

		if a.refresher != nil && st.Authenticated() {
			refreshed, ok, err := a.refresher.Refresh(r.Context(), st.Session)
			switch {
			case err != nil:
				logger.Warn("session refresh failed", map[string]any{"error": err})
			case ok:
				a.cookies.Issue(w, refreshed)
				st.Session = refreshed
			}
		}

		next.ServeHTTP(w, r.WithContext(WithState(r.Context(), st)))
	})
}

// RequireAuth rejects requests without an authenticated State. It must run
// after LoadSession.
func (a *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !StateFromContext(r.Context()).Authenticated() {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
