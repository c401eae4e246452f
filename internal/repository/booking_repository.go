package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/moviemagic/movie-magic/internal/model"
)

// BookingRepo persists booking snapshots. Rows are inserted once at
// seat selection, read back by booking id or owning user, and only
// ever removed in bulk by the owner's clear-history action.
type BookingRepo struct{ DB *sql.DB }

func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{DB: db} }

const bookingCols = "id,booking_id,user_id,movie,theater,show_time,seats,price,created_at"

// Create inserts a booking. The caller supplies the external booking id
// (a uuid); CreatedAt is stamped here in UTC if the caller left it zero.
func (r *BookingRepo) Create(ctx context.Context, b *model.Booking) error {
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now().UTC()
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO bookings (booking_id,user_id,movie,theater,show_time,seats,price,created_at) VALUES (?,?,?,?,?,?,?,?)",
		b.BookingID, b.UserID, b.Movie, b.Theater, b.ShowTime, b.Seats, b.Price, b.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}
	b.ID = uint64(id)
	return nil
}

// GetByBookingID returns the booking with the given external id, or
// ErrBookingNotFound.
func (r *BookingRepo) GetByBookingID(ctx context.Context, bookingID string) (model.Booking, error) {
	var b model.Booking
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+bookingCols+" FROM bookings WHERE booking_id=? LIMIT 1",
		bookingID).Scan(&b.ID, &b.BookingID, &b.UserID, &b.Movie, &b.Theater, &b.ShowTime, &b.Seats, &b.Price, &b.CreatedAt)
	if err == sql.ErrNoRows {
		return model.Booking{}, ErrBookingNotFound
	}
	if err != nil {
		return model.Booking{}, fmt.Errorf("query booking: %w", err)
	}
	return b, nil
}

// ListByUser returns all bookings owned by the user, most recent first.
// The id tiebreak keeps the order stable when several bookings share a
// creation timestamp.
func (r *BookingRepo) ListByUser(ctx context.Context, userID uint64) ([]model.Booking, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+bookingCols+" FROM bookings WHERE user_id=? ORDER BY created_at DESC, id DESC",
		userID)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var out []model.Booking
	for rows.Next() {
		var b model.Booking
		if err := rows.Scan(&b.ID, &b.BookingID, &b.UserID, &b.Movie, &b.Theater, &b.ShowTime, &b.Seats, &b.Price, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return out, nil
}

// DeleteAllByUser removes every booking owned by the user. There is no
// soft delete; the rows are gone.
func (r *BookingRepo) DeleteAllByUser(ctx context.Context, userID uint64) error {
	if _, err := r.DB.ExecContext(ctx, "DELETE FROM bookings WHERE user_id=?", userID); err != nil {
		return fmt.Errorf("delete bookings: %w", err)
	}
	return nil
}
