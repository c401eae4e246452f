package handler // declare the package name; contains HTTP handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/moviemagic/movie-magic/internal/catalog"
)

// Health is a simple health-check endpoint used by load balancers and
// monitoring systems to verify that the service is running. It returns
// a plain text "ok" message with an HTTP 200 status code.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

// Index renders the landing page.
func Index(c echo.Context) error {
	return render(c, http.StatusOK, "index.html", "Welcome", nil)
}

// About renders the static about page.
func About(c echo.Context) error {
	return render(c, http.StatusOK, "about.html", "About", nil)
}

// Services renders the static services page.
func Services(c echo.Context) error {
	return render(c, http.StatusOK, "services.html", "Services", nil)
}

// Home lists the movie catalog. It sits behind the session middleware.
func Home(c echo.Context) error {
	return render(c, http.StatusOK, "home.html", "Now Showing", echo.Map{
		"Movies": catalog.All(),
	})
}
