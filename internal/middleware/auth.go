package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/moviemagic/movie-magic/internal/auth"
	"github.com/moviemagic/movie-magic/internal/session"
)

// sessionKey is the context key under which the authenticated session
// is stored for downstream handlers.
const sessionKey = "session"

// RequireUser returns an Echo middleware that validates the session
// cookie and injects the authenticated identity into the request
// context. Because this application is server-rendered, a missing or
// invalid session does not produce a 401 JSON body; the visitor is
// redirected to the login page instead, matching the flow of every
// authenticated page.
func RequireUser(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := session.IdentityToken(c)
			if raw == "" {
				return c.Redirect(http.StatusSeeOther, "/login")
			}
			s, err := auth.ParseSessionToken(secret, raw)
			if err != nil {
				// Expired or tampered cookie: drop it and start over.
				session.ClearIdentity(c)
				return c.Redirect(http.StatusSeeOther, "/login")
			}
			c.Set(sessionKey, s)
			return next(c)
		}
	}
}

// CurrentSession extracts the authenticated session placed in the
// context by RequireUser. The boolean is false on anonymous requests
// (routes outside the authenticated group).
func CurrentSession(c echo.Context) (auth.Session, bool) {
	s, ok := c.Get(sessionKey).(auth.Session)
	return s, ok
}
