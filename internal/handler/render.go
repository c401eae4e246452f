package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/moviemagic/movie-magic/internal/middleware"
	"github.com/moviemagic/movie-magic/internal/session"
)

// render executes a page template with the common fields every page
// expects: Title, the logged-in user's name (empty for guests) and the
// pending one-shot Notice. Handlers that report a problem on the same
// response (rather than after a redirect) set "Notice" in data
// themselves, which takes precedence over the flash cookie.
func render(c echo.Context, status int, name, title string, data echo.Map) error {
	if data == nil {
		data = echo.Map{}
	}
	data["Title"] = title
	if _, ok := data["Notice"]; !ok {
		data["Notice"] = session.TakeNotice(c)
	}
	if _, ok := data["User"]; !ok {
		if s, ok := middleware.CurrentSession(c); ok {
			data["User"] = s.Name
		} else {
			data["User"] = ""
		}
	}
	return c.Render(status, name, data)
}
