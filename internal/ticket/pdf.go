// Package ticket renders a completed booking as a single-page PDF.
// Rendering is a pure function of the booking record; nothing is
// persisted.
package ticket

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/moviemagic/movie-magic/internal/model"
)

// Filename is the suggested download name for rendered tickets.
const Filename = "ticket.pdf"

// ContentType is the media type of the rendered document.
const ContentType = "application/pdf"

// Render produces the ticket PDF for a booking. The layout is a fixed
// single column: a bold header followed by one line per field. Prices
// are printed with an "Rs." prefix because the built-in PDF fonts have
// no rupee glyph.
func Render(b model.Booking) ([]byte, error) {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetCompression(false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Text(100, 60, "Booking Confirmation - Movie Ticket")

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Booking ID: %s", b.BookingID),
		fmt.Sprintf("Movie: %s", b.Movie),
		fmt.Sprintf("Theater: %s", b.Theater),
		fmt.Sprintf("Show Time: %s", b.ShowTime),
		fmt.Sprintf("Seats: %s", b.Seats),
		fmt.Sprintf("Total Price: Rs.%d", b.Price),
	}
	y := 90.0
	for _, line := range lines {
		pdf.Text(100, y, line)
		y += 20
	}
	pdf.Text(100, y+10, "Thank you for booking with MovieMagic!")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render ticket: %w", err)
	}
	return buf.Bytes(), nil
}
