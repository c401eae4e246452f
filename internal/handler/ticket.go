package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/moviemagic/movie-magic/internal/repository"
	"github.com/moviemagic/movie-magic/internal/ticket"
)

// TicketHandler serves rendered ticket PDFs.
type TicketHandler struct {
	Bookings *repository.BookingRepo
}

func NewTicketHandler(b *repository.BookingRepo) *TicketHandler {
	return &TicketHandler{Bookings: b}
}

// Download renders the booking's ticket and returns it as a PDF
// attachment. Anyone who knows a booking id can download its ticket;
// the route requires no session. That matches the observed behavior of
// the flow this reimplements and is a known access-control gap.
func (h *TicketHandler) Download(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	b, err := h.Bookings.GetByBookingID(ctx, c.Param("booking_id"))
	if err != nil {
		if err == repository.ErrBookingNotFound {
			return c.String(http.StatusNotFound, "Booking not found")
		}
		return c.String(http.StatusInternalServerError, "Could not load booking")
	}

	out, err := ticket.Render(b)
	if err != nil {
		return c.String(http.StatusInternalServerError, "Could not render ticket")
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%s", ticket.Filename))
	return c.Blob(http.StatusOK, ticket.ContentType, out)
}
