package handler

import (
	"context"
	"database/sql"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/moviemagic/movie-magic/internal/auth"
	"github.com/moviemagic/movie-magic/internal/config"
	"github.com/moviemagic/movie-magic/internal/repository"
	"github.com/moviemagic/movie-magic/internal/session"
)

// AuthHandler bundles dependencies for the register/login/logout pages.
type AuthHandler struct {
	Cfg        config.Config
	Users      *repository.UserRepo
	Selections session.SelectionStore
}

func NewAuthHandler(cfg config.Config, u *repository.UserRepo, sel session.SelectionStore) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: u, Selections: sel}
}

// RegisterPage renders the registration form.
func (h *AuthHandler) RegisterPage(c echo.Context) error {
	return render(c, http.StatusOK, "register.html", "Register", nil)
}

// Register creates a new user. A duplicate email is reported inline on
// the form; success redirects to the login page with a notice.
func (h *AuthHandler) Register(c echo.Context) error {
	name := strings.TrimSpace(c.FormValue("name"))
	email := strings.ToLower(strings.TrimSpace(c.FormValue("email")))
	password := c.FormValue("password")
	if name == "" || email == "" || password == "" {
		return render(c, http.StatusBadRequest, "register.html", "Register", echo.Map{
			"Notice": "Name, email and password are required.",
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if _, err := h.Users.Create(ctx, name, email, password, h.Cfg.BcryptCost); err != nil {
		if err == repository.ErrEmailExists {
			return render(c, http.StatusConflict, "register.html", "Register", echo.Map{
				"Notice": "Email already registered.",
			})
		}
		return render(c, http.StatusInternalServerError, "register.html", "Register", echo.Map{
			"Notice": "Registration failed. Please try again.",
		})
	}

	session.SetNotice(c, "Registration successful! Please log in.")
	return c.Redirect(http.StatusSeeOther, "/login")
}

// LoginPage renders the login form.
func (h *AuthHandler) LoginPage(c echo.Context) error {
	return render(c, http.StatusOK, "login.html", "Login", nil)
}

// Login verifies the credentials and establishes the session cookie.
// Lookup failure and hash mismatch produce the same notice so the form
// does not reveal which emails are registered. There is no attempt
// limit.
func (h *AuthHandler) Login(c echo.Context) error {
	email := strings.ToLower(strings.TrimSpace(c.FormValue("email")))
	password := c.FormValue("password")

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, email)
	if err != nil {
		if err == sql.ErrNoRows {
			return render(c, http.StatusUnauthorized, "login.html", "Login", echo.Map{
				"Notice": "Invalid credentials.",
			})
		}
		return render(c, http.StatusInternalServerError, "login.html", "Login", echo.Map{
			"Notice": "Login failed. Please try again.",
		})
	}
	if !auth.VerifyPassword(u.PasswordHash, password) {
		return render(c, http.StatusUnauthorized, "login.html", "Login", echo.Map{
			"Notice": "Invalid credentials.",
		})
	}

	sid, err := auth.NewSessionID()
	if err != nil {
		return render(c, http.StatusInternalServerError, "login.html", "Login", echo.Map{
			"Notice": "Login failed. Please try again.",
		})
	}
	token, exp, err := auth.NewSessionToken(h.Cfg.SessionSecret,
		auth.Session{Email: u.Email, Name: u.Name, SID: sid}, h.Cfg.SessionTTLMin)
	if err != nil {
		return render(c, http.StatusInternalServerError, "login.html", "Login", echo.Map{
			"Notice": "Login failed. Please try again.",
		})
	}
	session.SetIdentity(c, token, exp)
	return c.Redirect(http.StatusSeeOther, "/home")
}

// Logout clears the session cookie and any pending selection. It is
// registered outside the authenticated group so that a visitor with an
// expired cookie can still log out cleanly.
func (h *AuthHandler) Logout(c echo.Context) error {
	if raw := session.IdentityToken(c); raw != "" {
		if s, err := auth.ParseSessionToken(h.Cfg.SessionSecret, raw); err == nil {
			ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
			defer cancel()
			_ = h.Selections.Clear(ctx, s.SID)
		}
	}
	session.ClearIdentity(c)
	session.SetNotice(c, "Logged out successfully.")
	return c.Redirect(http.StatusSeeOther, "/")
}
