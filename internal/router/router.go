package router // package router defines how HTTP routes are registered

import (
	"github.com/labstack/echo/v4"

	"github.com/moviemagic/movie-magic/internal/handler"
	"github.com/moviemagic/movie-magic/internal/middleware"
)

// RegisterRoutes wires every route of the application onto the provided
// Echo instance. Anonymous pages (landing, auth forms, health check,
// ticket download) are registered at the top level; everything that
// needs a logged-in user lives in a group behind the session
// middleware, which redirects anonymous visitors to /login.
func RegisterRoutes(e *echo.Echo, a *handler.AuthHandler, b *handler.BookingHandler, t *handler.TicketHandler, sessionSecret string) {
	e.GET("/healthz", handler.Health)
	e.Static("/static", "static")

	// Public pages.
	e.GET("/", handler.Index)
	e.GET("/about", handler.About)
	e.GET("/services", handler.Services)

	// Registration and login are anonymous by nature; logout stays
	// public so an expired session can still be cleared.
	e.GET("/register", a.RegisterPage)
	e.POST("/register", a.Register)
	e.GET("/login", a.LoginPage)
	e.POST("/login", a.Login)
	e.GET("/logout", a.Logout)

	// Ticket download is deliberately outside the authenticated group:
	// any caller who knows a booking id may fetch its PDF. Known gap,
	// preserved from the observed behavior.
	e.GET("/download_ticket/:booking_id", t.Download)

	// Everything below requires a valid session cookie.
	auth := e.Group("")
	auth.Use(middleware.RequireUser(sessionSecret))
	auth.GET("/home", handler.Home)
	auth.GET("/booking/:title", b.BookingPage)
	auth.POST("/booking/:title", b.ChooseShow)
	auth.GET("/seating/:title", b.SeatingPage)
	auth.POST("/seating/:title", b.ChooseSeats)
	auth.GET("/payment/:booking_id", b.PaymentPage)
	auth.POST("/payment/:booking_id", b.Pay)
	auth.GET("/tickets", b.Confirmation)
	auth.GET("/dashboard", b.Dashboard)
	auth.POST("/clear_history", b.ClearHistory)
}
