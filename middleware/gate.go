package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/duynhne/secure-dash/internal/session"
)

// LoginRoute is where unauthenticated callers are sent.
const LoginRoute = "/login"

// HomeRoute is the default landing route for authenticated callers.
const HomeRoute = "/"

// publicRoutes are reachable without a session. An authenticated caller
// requesting one is bounced to the landing route.
var publicRoutes = map[string]bool{
	"/login":  true,
	"/signup": true,
}

// exemptPrefixes are never gated: operational endpoints and the auth API
// actions, which manage the session themselves (login and signup must work
// without one, logout must work regardless, and the identity probe answers
// 401 on its own).
var exemptPrefixes = []string{
	"/healthz",
	"/readyz",
	"/metrics",
	"/api/v1/auth/",
}

// Decision is the gate's verdict for one request.
type Decision struct {
	Allow      bool
	RedirectTo string
}

// Decide classifies the route and applies the gate policy:
//
//	authenticated   + public    -> redirect to HomeRoute
//	authenticated   + protected -> allow
//	unauthenticated + public    -> allow
//	unauthenticated + protected -> redirect to login, carrying the
//	                               original path as ?from=
//
// Decide is a pure function so the policy can be tested without HTTP.
func Decide(path string, authenticated bool) Decision {
	public := publicRoutes[path]

	if authenticated {
		if public {
			return Decision{RedirectTo: HomeRoute}
		}
		return Decision{Allow: true}
	}

	if public {
		return Decision{Allow: true}
	}
	return Decision{RedirectTo: LoginRoute + "?from=" + url.QueryEscape(path)}
}

// Gate returns the middleware enforcing Decide on every request before any
// protected handler runs. Static assets (dot-containing paths) and exempt
// prefixes are skipped before any signature verification. API routes get a
// 401 JSON denial instead of a browser redirect. The gate never mutates
// session state.
func Gate(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if skipGate(path) {
			c.Next()
			return
		}

		authenticated := sessions.Verify(c) != nil

		d := Decide(path, authenticated)
		if d.Allow {
			c.Next()
			return
		}

		if strings.HasPrefix(path, "/api/") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"user":  nil,
				"error": "authentication required",
			})
			return
		}

		c.Redirect(http.StatusFound, d.RedirectTo)
		c.Abort()
	}
}

func skipGate(path string) bool {
	// Dot in the path means a static asset (favicon.ico, app.css, ...).
	if strings.Contains(path, ".") {
		return true
	}
	for _, prefix := range exemptPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}
