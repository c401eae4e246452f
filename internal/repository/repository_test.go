package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/moviemagic/movie-magic/internal/auth"
	"github.com/moviemagic/movie-magic/internal/config"
	"github.com/moviemagic/movie-magic/internal/database"
	"github.com/moviemagic/movie-magic/internal/model"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Open(config.Config{DBDriver: "sqlite3", DBPath: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, database.Migrate(context.Background(), db, "sqlite3"))
	return db
}

func TestUserRepoCreateAndDuplicate(t *testing.T) {
	ctx := context.Background()
	users := NewUserRepo(newTestDB(t))

	id, err := users.Create(ctx, "Alice", "a@x.com", "pw1", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotZero(t, id)

	// Second registration with the same email fails, including with a
	// different case, because emails are normalized to lowercase.
	_, err = users.Create(ctx, "Alice Again", "A@X.com", "pw2", bcrypt.MinCost)
	assert.ErrorIs(t, err, ErrEmailExists)

	// Exactly one identity record remains.
	var n int
	require.NoError(t, users.DB.QueryRow("SELECT COUNT(*) FROM users").Scan(&n))
	assert.Equal(t, 1, n)

	u, err := users.GetByEmail(ctx, "  A@x.COM ")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", u.Email)
	assert.Equal(t, "Alice", u.Name)
	assert.True(t, auth.VerifyPassword(u.PasswordHash, "pw1"))
	assert.False(t, auth.VerifyPassword(u.PasswordHash, "pw2"))
}

func TestUserRepoGetByEmailMissing(t *testing.T) {
	users := NewUserRepo(newTestDB(t))
	_, err := users.GetByEmail(context.Background(), "nobody@x.com")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestBookingRepoCreateAndGet(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	users := NewUserRepo(db)
	bookings := NewBookingRepo(db)

	uid, err := users.Create(ctx, "Alice", "a@x.com", "pw1", bcrypt.MinCost)
	require.NoError(t, err)

	b := model.Booking{
		BookingID: "bid-1",
		UserID:    uid,
		Movie:     "RRR",
		Theater:   "Theater1",
		ShowTime:  "7:00 PM",
		Seats:     "A1,A2",
		Price:     380,
	}
	require.NoError(t, bookings.Create(ctx, &b))
	assert.NotZero(t, b.ID)
	assert.False(t, b.CreatedAt.IsZero(), "Create stamps CreatedAt")

	got, err := bookings.GetByBookingID(ctx, "bid-1")
	require.NoError(t, err)
	assert.Equal(t, b.Movie, got.Movie)
	assert.Equal(t, b.Theater, got.Theater)
	assert.Equal(t, b.ShowTime, got.ShowTime)
	assert.Equal(t, 380, got.Price)
	assert.Equal(t, []string{"A1", "A2"}, got.SeatList())

	_, err = bookings.GetByBookingID(ctx, "no-such-id")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestBookingRepoListOrderAndClear(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	users := NewUserRepo(db)
	bookings := NewBookingRepo(db)

	alice, err := users.Create(ctx, "Alice", "a@x.com", "pw1", bcrypt.MinCost)
	require.NoError(t, err)
	bob, err := users.Create(ctx, "Bob", "b@x.com", "pw2", bcrypt.MinCost)
	require.NoError(t, err)

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i, bid := range []string{"a-old", "a-mid", "a-new"} {
		b := model.Booking{
			BookingID: bid, UserID: alice, Movie: "OG",
			Theater: "Theater1", ShowTime: "2:30 PM",
			Seats: "C3", Price: 220,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}
		require.NoError(t, bookings.Create(ctx, &b))
	}
	bb := model.Booking{BookingID: "b-1", UserID: bob, Movie: "3",
		Theater: "N/A", ShowTime: "N/A", Seats: "J20", Price: 200}
	require.NoError(t, bookings.Create(ctx, &bb))

	// Most recent first.
	list, err := bookings.ListByUser(ctx, alice)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "a-new", list[0].BookingID)
	assert.Equal(t, "a-mid", list[1].BookingID)
	assert.Equal(t, "a-old", list[2].BookingID)

	// Clearing Alice's history leaves Bob's bookings untouched.
	require.NoError(t, bookings.DeleteAllByUser(ctx, alice))

	list, err = bookings.ListByUser(ctx, alice)
	require.NoError(t, err)
	assert.Empty(t, list)

	bobList, err := bookings.ListByUser(ctx, bob)
	require.NoError(t, err)
	require.Len(t, bobList, 1)
	assert.Equal(t, "b-1", bobList[0].BookingID)
}
