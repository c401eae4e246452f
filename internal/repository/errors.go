// Package repository defines the persistence layer for users and
// bookings. Sentinel errors declared here let handlers distinguish
// failure scenarios without inspecting driver-specific error strings:
// a duplicate registration is reported differently to the user than a
// backend outage.
package repository

import "errors"

// ErrEmailExists is returned when registering an email address that is
// already taken. Handlers translate this into an inline notice on the
// registration page.
var ErrEmailExists = errors.New("email already exists")

// ErrBookingNotFound is returned when a booking id does not resolve to
// a stored booking. Handlers translate this into a notice plus a
// redirect to a safe prior step, or a 404 for ticket downloads.
var ErrBookingNotFound = errors.New("booking not found")
