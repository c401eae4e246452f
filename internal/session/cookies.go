package session

import (
	"net/http"
	"net/url"
	"time"

	"github.com/labstack/echo/v4"
)

const (
	identityCookie = "mm_session"
	noticeCookie   = "mm_notice"
)

// SetIdentity stores the signed session token in an HttpOnly cookie.
func SetIdentity(c echo.Context, token string, expires time.Time) {
	c.SetCookie(&http.Cookie{
		Name:     identityCookie,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearIdentity expires the session cookie.
func ClearIdentity(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     identityCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// IdentityToken returns the raw session token from the request cookie,
// or an empty string when the visitor is anonymous.
func IdentityToken(c echo.Context) string {
	ck, err := c.Cookie(identityCookie)
	if err != nil {
		return ""
	}
	return ck.Value
}

// SetNotice queues a one-shot notice to be shown on the next rendered
// page. The value is URL-escaped because cookie values cannot carry
// spaces.
func SetNotice(c echo.Context, msg string) {
	c.SetCookie(&http.Cookie{
		Name:     noticeCookie,
		Value:    url.QueryEscape(msg),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// TakeNotice reads and clears the pending notice, if any.
func TakeNotice(c echo.Context) string {
	ck, err := c.Cookie(noticeCookie)
	if err != nil || ck.Value == "" {
		return ""
	}
	c.SetCookie(&http.Cookie{
		Name:     noticeCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	msg, err := url.QueryUnescape(ck.Value)
	if err != nil {
		return ""
	}
	return msg
}
