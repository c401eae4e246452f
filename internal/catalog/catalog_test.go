package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindByTitle(t *testing.T) {
	tests := []struct {
		name      string
		title     string
		wantTitle string
		wantPrice int
		wantErr   error
	}{
		{name: "exact match", title: "RRR", wantTitle: "RRR", wantPrice: 190},
		{name: "lowercase match", title: "rrr", wantTitle: "RRR", wantPrice: 190},
		{name: "mixed case match", title: "SitaRamam", wantTitle: "SITARAMAM", wantPrice: 180},
		{name: "numeric title", title: "3", wantTitle: "3", wantPrice: 200},
		{name: "unknown title", title: "UNKNOWN", wantErr: ErrMovieNotFound},
		{name: "substring is not a match", title: "RR", wantErr: ErrMovieNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := FindByTitle(tt.title)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantTitle, m.Title)
			assert.Equal(t, tt.wantPrice, m.Price)
		})
	}
}

func TestSeatIDs(t *testing.T) {
	ids := SeatIDs()
	require.Len(t, ids, 200)
	assert.Equal(t, "A1", ids[0])
	assert.Equal(t, "A20", ids[19])
	assert.Equal(t, "B1", ids[20])
	assert.Equal(t, "J20", ids[199])

	// The grid is deterministic: two calls agree element for element.
	assert.Equal(t, ids, SeatIDs())
}

func TestShowtimesAreCompositeTokens(t *testing.T) {
	for _, st := range Showtimes() {
		assert.Contains(t, st, "|", "showtime %q must be a theater|time token", st)
	}
}
