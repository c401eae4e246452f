// Package queue defines message payloads exchanged over the message
// broker and the background consumer that turns them into notification
// log entries.
package queue

// BookingConfirmedEvent is published when a payment is confirmed. It
// carries enough information for downstream consumers to notify the
// user or feed analytics without querying the primary database.
type BookingConfirmedEvent struct {
	BookingID   string   `json:"booking_id"`
	UserEmail   string   `json:"user_email"`
	UserName    string   `json:"user_name"`
	Movie       string   `json:"movie"`
	Theater     string   `json:"theater"`
	ShowTime    string   `json:"show_time"`
	Seats       []string `json:"seats"`
	TotalPrice  int      `json:"total_price"`
	ConfirmedAt string   `json:"confirmed_at"`
}
