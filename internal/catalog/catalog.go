// Package catalog holds the fixed list of movies on offer. The list is
// compiled into the binary: there are no mutation operations and no
// persistence. Prices are whole rupees per seat.
package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// Movie is one bookable offering.
type Movie struct {
	Title string
	Price int
	Image string
}

// ErrMovieNotFound is returned by FindByTitle when no offering matches.
var ErrMovieNotFound = errors.New("movie not found")

// movies is the complete catalog. Titles are the lookup keys and are
// matched case-insensitively.
var movies = []Movie{
	{Title: "RRR", Price: 190, Image: "rrr.jpg"},
	{Title: "OG", Price: 220, Image: "og.jpg"},
	{Title: "KUBERA", Price: 300, Image: "kubera.jpg"},
	{Title: "HIT 3", Price: 250, Image: "hit3.jpg"},
	{Title: "AMARAN", Price: 210, Image: "amaran.jpg"},
	{Title: "SITARAMAM", Price: 180, Image: "sitaramam.jpg"},
	{Title: "COURT", Price: 160, Image: "court.jpg"},
	{Title: "ELEVEN", Price: 250, Image: "eleven.jpg"},
	{Title: "3", Price: 200, Image: "3.jpg"},
}

// All returns the full catalog in display order.
func All() []Movie { return movies }

// FindByTitle performs a case-insensitive exact match against the
// catalog and returns the offering, or ErrMovieNotFound.
func FindByTitle(title string) (Movie, error) {
	for _, m := range movies {
		if strings.EqualFold(m.Title, title) {
			return m, nil
		}
	}
	return Movie{}, ErrMovieNotFound
}

// seatRows and seatsPerRow define the fixed seat universe. Every
// movie and showtime shares the same 200-seat grid; there is no
// per-show seat map.
const (
	seatRows    = "ABCDEFGHIJ"
	seatsPerRow = 20
)

// SeatIDs returns the deterministic seat identifier grid, row by row:
// A1..A20, B1..B20, ... J1..J20.
func SeatIDs() []string {
	ids := make([]string, 0, len(seatRows)*seatsPerRow)
	for _, r := range seatRows {
		for n := 1; n <= seatsPerRow; n++ {
			ids = append(ids, fmt.Sprintf("%c%d", r, n))
		}
	}
	return ids
}

// Showtimes lists the theater/time options offered on the booking
// page. Each entry is a composite "theater|time" token; the booking
// handler splits it into the two session selection fields.
func Showtimes() []string {
	return []string{
		"Theater1|10:00 AM",
		"Theater1|2:30 PM",
		"Theater1|7:00 PM",
		"Theater2|11:30 AM",
		"Theater2|6:00 PM",
		"Theater2|9:30 PM",
	}
}
