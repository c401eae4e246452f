package ticket

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moviemagic/movie-magic/internal/model"
)

func TestRender(t *testing.T) {
	b := model.Booking{
		BookingID: "b0e6f9a2-1111-2222-3333-444455556666",
		UserID:    1,
		Movie:     "RRR",
		Theater:   "Theater1",
		ShowTime:  "7:00 PM",
		Seats:     "A1,A2,A3",
		Price:     570,
		CreatedAt: time.Now().UTC(),
	}

	out, err := Render(b)
	require.NoError(t, err)
	require.NotEmpty(t, out)

	// A valid PDF starts with the %PDF header and carries an EOF marker.
	assert.True(t, len(out) > 8)
	assert.Equal(t, "%PDF", string(out[:4]))
	assert.Contains(t, string(out[len(out)-32:]), "%%EOF")

	// Content streams are uncompressed, so every visible field of the
	// booking must appear verbatim in the document.
	doc := string(out)
	assert.Contains(t, doc, "Booking ID: "+b.BookingID)
	assert.Contains(t, doc, "Movie: RRR")
	assert.Contains(t, doc, "Theater: Theater1")
	assert.Contains(t, doc, "Show Time: 7:00 PM")
	assert.Contains(t, doc, "Seats: A1,A2,A3")
	assert.Contains(t, doc, "Total Price: Rs.570")
}

func TestRenderDeterministicFields(t *testing.T) {
	// Two renders of the same booking must be byte-identical apart from
	// the embedded creation date, i.e. rendering has no hidden state.
	b := model.Booking{BookingID: "x", Movie: "OG", Theater: "N/A", ShowTime: "N/A", Seats: "J20", Price: 220}
	a1, err := Render(b)
	require.NoError(t, err)
	a2, err := Render(b)
	require.NoError(t, err)
	assert.Equal(t, len(a1), len(a2))
}
