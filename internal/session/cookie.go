package session

import (
	"net/http"
	"time"
)

// CookieName carries the opaque session id. No __Host- prefix: that would
// require Secure, and local HTTP is the default deployment.
const CookieName = "nlp_session"

// Cookies issues and clears the session cookie. The zero value is usable:
// path "/", HttpOnly, SameSite=Lax, not Secure.
type Cookies struct {
	Secure bool
	Domain string
}

// Issue writes the cookie for s. MaxAge tracks s.ExpiresAt so the browser
// drops the cookie at the same moment the store expires the record.
func (c Cookies) Issue(w http.ResponseWriter, s Session) {
	maxAge := int(time.Until(s.ExpiresAt).Seconds())
	if maxAge <= 0 {
		c.Clear(w)
		return
	}
	http.SetCookie(w, c.cookie(s.SessionID, maxAge, s.ExpiresAt))
}

// Clear expires the cookie on the client.
func (c Cookies) Clear(w http.ResponseWriter) {
	http.SetCookie(w, c.cookie("", -1, time.Unix(0, 0)))
}

func (c Cookies) cookie(value string, maxAge int, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		Domain:   c.Domain,
		Expires:  expires.UTC(),
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// FromRequest returns the session id carried by the request cookie.
func FromRequest(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}
