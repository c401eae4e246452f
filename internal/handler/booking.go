package handler

import (
	"context"
	"database/sql"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/moviemagic/movie-magic/internal/catalog"
	"github.com/moviemagic/movie-magic/internal/middleware"
	"github.com/moviemagic/movie-magic/internal/model"
	"github.com/moviemagic/movie-magic/internal/queue"
	"github.com/moviemagic/movie-magic/internal/repository"
	"github.com/moviemagic/movie-magic/internal/session"
)

// BookingHandler drives the booking flow: choose a showtime, choose
// seats, pay, confirm. Each step validates its preconditions and on
// failure sets a notice and redirects to a safe prior step; nothing in
// this flow is retried automatically.
//
// Known gaps, preserved deliberately from the observed behavior: seat
// identifiers are not checked against existing bookings, so the same
// seat can be sold twice for the same show, and the seat list is not
// deduplicated.
type BookingHandler struct {
	Users      *repository.UserRepo
	Bookings   *repository.BookingRepo
	Selections session.SelectionStore
}

func NewBookingHandler(u *repository.UserRepo, b *repository.BookingRepo, sel session.SelectionStore) *BookingHandler {
	return &BookingHandler{Users: u, Bookings: b, Selections: sel}
}

// redirectNotice is the one-liner for the flow's error policy: set a
// one-shot notice and send the browser somewhere safe.
func redirectNotice(c echo.Context, msg, location string) error {
	session.SetNotice(c, msg)
	return c.Redirect(http.StatusSeeOther, location)
}

// BookingPage shows the showtime options for a movie.
func (h *BookingHandler) BookingPage(c echo.Context) error {
	movie, err := catalog.FindByTitle(c.Param("title"))
	if err != nil {
		return redirectNotice(c, "Movie not found", "/home")
	}
	return render(c, http.StatusOK, "booking.html", movie.Title, echo.Map{
		"Movie":     movie,
		"Showtimes": catalog.Showtimes(),
	})
}

// ChooseShow stores the theater/time selection in the session and
// advances to seat selection. The form submits a composite
// "theater|time" token which is split into the two selection fields.
func (h *BookingHandler) ChooseShow(c echo.Context) error {
	movie, err := catalog.FindByTitle(c.Param("title"))
	if err != nil {
		return redirectNotice(c, "Movie not found", "/home")
	}

	parts := strings.Split(c.FormValue("show_time"), "|")
	if len(parts) != 2 {
		return redirectNotice(c, "Please pick a valid showtime.", "/booking/"+movie.Title)
	}
	sel := session.Selection{
		Theater:  strings.TrimSpace(parts[0]),
		ShowTime: strings.TrimSpace(parts[1]),
	}

	s, _ := middleware.CurrentSession(c)
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Selections.Set(ctx, s.SID, sel); err != nil {
		return redirectNotice(c, "Could not save your selection. Please try again.", "/booking/"+movie.Title)
	}
	return c.Redirect(http.StatusSeeOther, "/seating/"+movie.Title)
}

// SeatingPage shows the fixed 200-seat grid. The grid is identical for
// every movie and showtime and is not filtered by existing bookings.
func (h *BookingHandler) SeatingPage(c echo.Context) error {
	movie, err := catalog.FindByTitle(c.Param("title"))
	if err != nil {
		return redirectNotice(c, "Movie not found", "/home")
	}
	return render(c, http.StatusOK, "seating.html", "Select seats", echo.Map{
		"Movie":   movie,
		"SeatIDs": catalog.SeatIDs(),
	})
}

// ChooseSeats creates the booking snapshot: seats from the form,
// theater/time from the session selection (or "N/A" when absent), and
// the total computed from the catalog price at this moment. On success
// the selection is cleared and the browser is sent to payment.
func (h *BookingHandler) ChooseSeats(c echo.Context) error {
	movie, err := catalog.FindByTitle(c.Param("title"))
	if err != nil {
		return redirectNotice(c, "Movie not found", "/home")
	}

	raw := strings.TrimSpace(c.FormValue("seats"))
	var seats []string
	if raw != "" {
		seats = strings.Split(raw, ",")
	}
	if len(seats) == 0 {
		return redirectNotice(c, "Please select at least one seat.", "/seating/"+movie.Title)
	}

	s, _ := middleware.CurrentSession(c)
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, s.Email)
	if err != nil {
		if err == sql.ErrNoRows {
			return redirectNotice(c, "User not found. Please log in again.", "/login")
		}
		return redirectNotice(c, "Could not save your booking. Please try again.", "/seating/"+movie.Title)
	}

	sel := session.Selection{Theater: "N/A", ShowTime: "N/A"}
	if got, ok, err := h.Selections.Get(ctx, s.SID); err == nil && ok {
		sel = got
	}

	booking := model.Booking{
		BookingID: uuid.NewString(),
		UserID:    u.ID,
		Movie:     movie.Title,
		Theater:   sel.Theater,
		ShowTime:  sel.ShowTime,
		Seats:     strings.Join(seats, ","),
		Price:     movie.Price * len(seats),
	}
	if err := h.Bookings.Create(ctx, &booking); err != nil {
		return redirectNotice(c, "Could not save your booking. Please try again.", "/seating/"+movie.Title)
	}

	// The selection has served its purpose once the snapshot exists.
	_ = h.Selections.Clear(ctx, s.SID)

	return c.Redirect(http.StatusSeeOther, "/payment/"+booking.BookingID)
}

// PaymentPage shows the booking summary with a pay button.
func (h *BookingHandler) PaymentPage(c echo.Context) error {
	booking, err := h.lookupBooking(c)
	if err != nil {
		return redirectNotice(c, "Invalid booking.", "/home")
	}
	return render(c, http.StatusOK, "payment.html", "Payment", echo.Map{
		"Booking": booking,
	})
}

// Pay simulates a successful payment. There is no authorization step:
// the confirming POST always succeeds. A booking.confirmed event is
// published off the request path so a broker outage never blocks the
// confirmation.
func (h *BookingHandler) Pay(c echo.Context) error {
	booking, err := h.lookupBooking(c)
	if err != nil {
		return redirectNotice(c, "Invalid booking.", "/home")
	}

	s, _ := middleware.CurrentSession(c)
	ev := queue.BookingConfirmedEvent{
		BookingID:   booking.BookingID,
		UserEmail:   s.Email,
		UserName:    s.Name,
		Movie:       booking.Movie,
		Theater:     booking.Theater,
		ShowTime:    booking.ShowTime,
		Seats:       booking.SeatList(),
		TotalPrice:  booking.Price,
		ConfirmedAt: time.Now().UTC().Format(time.RFC3339),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = queue.PublishBookingConfirmed(ctx, ev)
	}()

	return c.Redirect(http.StatusSeeOther, "/tickets?booking_id="+booking.BookingID)
}

// Confirmation renders the post-payment view joining the booking with
// its catalog offering.
func (h *BookingHandler) Confirmation(c echo.Context) error {
	bookingID := c.QueryParam("booking_id")
	if bookingID == "" {
		return redirectNotice(c, "No booking ID provided.", "/home")
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	booking, err := h.Bookings.GetByBookingID(ctx, bookingID)
	if err != nil {
		return redirectNotice(c, "Invalid booking.", "/home")
	}
	movie, _ := catalog.FindByTitle(booking.Movie)
	return render(c, http.StatusOK, "tickets.html", "Confirmation", echo.Map{
		"Booking": booking,
		"Movie":   movie,
	})
}

// Dashboard lists the caller's bookings, most recent first. A ledger
// failure degrades to an empty list with a notice rather than failing
// the whole page.
func (h *BookingHandler) Dashboard(c echo.Context) error {
	s, _ := middleware.CurrentSession(c)
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, s.Email)
	if err != nil {
		return redirectNotice(c, "User not found. Please log in again.", "/login")
	}

	data := echo.Map{"Bookings": []model.Booking{}, "Total": 0}
	bookings, err := h.Bookings.ListByUser(ctx, u.ID)
	if err != nil {
		data["Notice"] = "Could not load your bookings."
	} else {
		data["Bookings"] = bookings
		data["Total"] = len(bookings)
	}
	return render(c, http.StatusOK, "dashboard.html", "Dashboard", data)
}

// ClearHistory bulk-deletes the caller's bookings. Irreversible.
func (h *BookingHandler) ClearHistory(c echo.Context) error {
	s, _ := middleware.CurrentSession(c)
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, s.Email)
	if err != nil {
		return redirectNotice(c, "User not found. Please log in again.", "/login")
	}
	if err := h.Bookings.DeleteAllByUser(ctx, u.ID); err != nil {
		return redirectNotice(c, "Could not clear your history. Please try again.", "/dashboard")
	}
	return redirectNotice(c, "Booking history cleared.", "/dashboard")
}

func (h *BookingHandler) lookupBooking(c echo.Context) (model.Booking, error) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	return h.Bookings.GetByBookingID(ctx, c.Param("booking_id"))
}
