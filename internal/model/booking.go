package model

import (
	"strings"
	"time"
)

// Booking records one completed seat purchase. The row is a frozen
// snapshot taken at creation time: the price is the catalog price at
// that moment multiplied by the seat count and is never recomputed.
// Bookings are never updated; they are only deleted in bulk by the
// owning user's clear-history action.
//
// Fields:
//  ID        – primary key identifier.
//  BookingID – globally unique external reference (uuid), used in
//              payment, confirmation and download URLs.
//  UserID    – owning user.
//  Movie     – catalog title at booking time.
//  Theater   – theater name taken from the session selection ("N/A"
//              when the selection was missing).
//  ShowTime  – showtime label, same fallback as Theater.
//  Seats     – comma-joined seat identifiers, in selection order.
//  Price     – total price snapshot (unit price × seat count).
//  CreatedAt – timestamp of creation, UTC.
type Booking struct {
	ID        uint64    // bookings.id
	BookingID string    // bookings.booking_id
	UserID    uint64    // bookings.user_id
	Movie     string    // bookings.movie
	Theater   string    // bookings.theater
	ShowTime  string    // bookings.show_time
	Seats     string    // bookings.seats
	Price     int       // bookings.price
	CreatedAt time.Time // bookings.created_at
}

// SeatList splits the stored seat string back into individual seat
// identifiers. An empty Seats field yields an empty slice.
func (b Booking) SeatList() []string {
	if b.Seats == "" {
		return nil
	}
	return strings.Split(b.Seats, ",")
}
