package auth

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// CookieName is the admin session cookie.
const CookieName = "admin_session"

const sessionMaxAge = 7 * 24 * 60 * 60 // 7 days

// Guard gates mutating requests behind the shared admin password.
// The session cookie carries a fixed shared-secret value, so every
// successful login is indistinguishable from any other: there is no
// per-user identity or server-side revocation, only the cookie's own
// max-age.
type Guard struct {
	password string
	secret   string
	secure   bool
}

func NewGuard(password, secret string, secure bool) *Guard {
	return &Guard{password: password, secret: secret, secure: secure}
}

// ValidatePassword reports whether candidate matches the configured
// admin password.
func (g *Guard) ValidatePassword(candidate string) bool {
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(g.password)) == 1
}

// SessionCookie returns the cookie issued on a successful login.
func (g *Guard) SessionCookie() *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    g.secret,
		Path:     "/",
		MaxAge:   sessionMaxAge,
		HttpOnly: true,
		Secure:   g.secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// ClearSessionCookie returns a cookie that instructs the client to
// delete the session (same name, empty value, Max-Age: 0).
func (g *Guard) ClearSessionCookie() *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   g.secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// Verify reports whether the request carries a session cookie whose
// value exactly equals the configured shared secret.
func (g *Guard) Verify(r *http.Request) bool {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(cookie.Value), []byte(g.secret)) == 1
}

// RequireAdmin rejects unauthenticated requests before any handler or
// store access runs.
func (g *Guard) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !g.Verify(c.Request) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Next()
	}
}
