package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gemini-nlp/internal/auth"
	"gemini-nlp/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type stubLoader struct {
	sessions map[string]session.Session
	err      error
	calls    int
}

func (s *stubLoader) Current(_ context.Context, id string) (session.Session, *auth.Identity, error) {
	s.calls++
	if s.err != nil {
		return session.Anonymous(), nil, s.err
	}
	sess, ok := s.sessions[id]
	if !ok {
		return session.Anonymous(), nil, nil
	}
	return sess, &auth.Identity{Email: sess.Email, Name: "Ann"}, nil
}

func newEngine(loader SessionLoader) *gin.Engine {
	gin.SetMode(gin.TestMode)
	mw := NewAuthMiddleware(loader)

	r := gin.New()
	r.Use(RequestLogger(), GinLoadSession(mw))
	r.GET("/whoami", func(c *gin.Context) {
		st := StateFromContext(c.Request.Context())
		c.String(http.StatusOK, st.Session.Email)
	})
	r.GET("/api/me", GinRequireAuth(mw), func(c *gin.Context) {
		c.String(http.StatusOK, StateFromContext(c.Request.Context()).Identity.Name)
	})
	r.GET("/dashboard", GinRequireAuthRedirect("/"), func(c *gin.Context) {
		c.String(http.StatusOK, "dash")
	})
	return r
}

func do(r http.Handler, path, cookie string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: cookie})
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestLoadSessionAttachesState(t *testing.T) {
	loader := &stubLoader{sessions: map[string]session.Session{
		"sid": {SessionID: "sid", Authenticated: true, Email: "a@x.com"},
	}}
	r := newEngine(loader)

	rec := do(r, "/whoami", "sid")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "a@x.com", rec.Body.String())

	rec = do(r, "/whoami", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "", rec.Body.String())
	assert.Equal(t, 1, loader.calls, "no cookie means no store lookup")
}

func TestLoadSessionDegradesOnError(t *testing.T) {
	r := newEngine(&stubLoader{err: errors.New("redis down")})

	rec := do(r, "/whoami", "sid")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "", rec.Body.String())
}

func TestRequireAuth(t *testing.T) {
	loader := &stubLoader{sessions: map[string]session.Session{
		"sid": {SessionID: "sid", Authenticated: true, Email: "a@x.com"},
	}}
	r := newEngine(loader)

	assert.Equal(t, http.StatusUnauthorized, do(r, "/api/me", "").Code)
	assert.Equal(t, http.StatusUnauthorized, do(r, "/api/me", "other").Code)

	rec := do(r, "/api/me", "sid")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Ann", rec.Body.String())
}

func TestRequireAuthRedirect(t *testing.T) {
	r := newEngine(&stubLoader{})

	rec := do(r, "/dashboard", "")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}

func TestRequestIDHeader(t *testing.T) {
	r := newEngine(&stubLoader{})

	rec := do(r, "/whoami", "")
	_, err := uuid.Parse(rec.Header().Get(RequestIDHeader))
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	given := uuid.NewString()
	req.Header.Set(RequestIDHeader, given)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, given, rec.Header().Get(RequestIDHeader))
}

func TestStateFromEmptyContext(t *testing.T) {
	st := StateFromContext(context.Background())
	assert.False(t, st.Authenticated())
	assert.Equal(t, session.Anonymous(), st.Session)
}

type stubRefresher struct {
	extendTo time.Time
	err      error
	seen     []string
}

func (s *stubRefresher) Refresh(_ context.Context, sess session.Session) (session.Session, bool, error) {
	s.seen = append(s.seen, sess.SessionID)
	if s.err != nil {
		return sess, false, s.err
	}
	if s.extendTo.IsZero() {
		return sess, false, nil
	}
	sess.ExpiresAt = s.extendTo
	return sess, true, nil
}

func refreshEngine(loader SessionLoader, refresher Refresher) *gin.Engine {
	gin.SetMode(gin.TestMode)
	mw := NewAuthMiddleware(loader).WithRefresh(refresher, session.Cookies{})

	r := gin.New()
	r.Use(GinLoadSession(mw))
	r.GET("/expiry", func(c *gin.Context) {
		st := StateFromContext(c.Request.Context())
		c.String(http.StatusOK, st.Session.ExpiresAt.UTC().Format(time.RFC3339))
	})
	return r
}

func TestRefreshReissuesCookie(t *testing.T) {
	later := time.Now().Add(2 * time.Hour).UTC().Truncate(time.Second)
	loader := &stubLoader{sessions: map[string]session.Session{
		"sid": {SessionID: "sid", Authenticated: true, Email: "a@x.com", ExpiresAt: time.Now().Add(time.Minute)},
	}}
	refresher := &stubRefresher{extendTo: later}
	r := refreshEngine(loader, refresher)

	rec := do(r, "/expiry", "sid")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, later.Format(time.RFC3339), rec.Body.String())

	cookies := rec.Result().Cookies()
	if assert.Len(t, cookies, 1) {
		assert.Equal(t, session.CookieName, cookies[0].Name)
		assert.Equal(t, "sid", cookies[0].Value)
		assert.Greater(t, cookies[0].MaxAge, 3600)
	}
}

func TestRefreshSkippedForAnonymous(t *testing.T) {
	refresher := &stubRefresher{extendTo: time.Now().Add(time.Hour)}
	r := refreshEngine(&stubLoader{}, refresher)

	rec := do(r, "/expiry", "unknown")
	assert.Empty(t, rec.Result().Cookies())
	assert.Empty(t, refresher.seen)
}

func TestRefreshFailureKeepsSession(t *testing.T) {
	expires := time.Now().Add(time.Minute).UTC().Truncate(time.Second)
	loader := &stubLoader{sessions: map[string]session.Session{
		"sid": {SessionID: "sid", Authenticated: true, Email: "a@x.com", ExpiresAt: expires},
	}}
	r := refreshEngine(loader, &stubRefresher{err: errors.New("redis down")})

	rec := do(r, "/expiry", "sid")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, expires.Format(time.RFC3339), rec.Body.String())
	assert.Empty(t, rec.Result().Cookies())
}
