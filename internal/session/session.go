// Package session manages the client-held session cookie. There is no
// server-side session table: validity is entirely carried by the signed
// token, so any number of requests can verify concurrently without locks.
package session

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/duynhne/secure-dash/internal/token"
)

// CookieName is the session cookie issued to authenticated clients.
const CookieName = "secure_dash_session"

// Session is the identity recovered from a verified session token.
type Session struct {
	UserID string
}

// Manager issues, reads and clears session cookies.
type Manager struct {
	codec  *token.Codec
	ttl    time.Duration
	secure bool
}

// NewManager creates a Manager. secure controls the cookie's Secure flag and
// should be true outside local development.
func NewManager(codec *token.Codec, ttl time.Duration, secure bool) *Manager {
	return &Manager{codec: codec, ttl: ttl, secure: secure}
}

// Issue sets a fresh session cookie for userID on the current response,
// replacing any previous one. Cookie expiry matches the token expiry.
func (m *Manager) Issue(c *gin.Context, userID string) error {
	expiresAt := time.Now().Add(m.ttl)

	tok, err := m.codec.Encode(userID, expiresAt)
	if err != nil {
		return err
	}

	http.SetCookie(c.Writer, &http.Cookie{
		Name:     CookieName,
		Value:    tok,
		Path:     "/",
		Expires:  expiresAt,
		MaxAge:   int(m.ttl / time.Second),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Verify reads the session cookie from the current request and returns the
// verified identity, or nil when the cookie is absent, fails signature
// verification, or has expired. All failure causes look the same to the
// caller: no session. Verify never redirects and never mutates state.
func (m *Manager) Verify(c *gin.Context) *Session {
	cookie, err := c.Cookie(CookieName)
	if err != nil || cookie == "" {
		return nil
	}

	claims := m.codec.Decode(cookie)
	if claims == nil {
		return nil
	}
	if !time.Now().Before(claims.ExpiresAt.Time) {
		return nil
	}
	if claims.UserID == "" {
		return nil
	}

	return &Session{UserID: claims.UserID}
}

// Clear expires the session cookie. Safe to call when no session exists.
func (m *Manager) Clear(c *gin.Context) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
