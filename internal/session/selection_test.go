package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(time.Minute)

	// Empty store: nothing pending.
	_, ok, err := s.Get(ctx, "sid-1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "sid-1", Selection{Theater: "Theater1", ShowTime: "7:00 PM"}))

	got, ok, err := s.Get(ctx, "sid-1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Theater1", got.Theater)
	assert.Equal(t, "7:00 PM", got.ShowTime)

	// Selections are scoped per session id.
	_, ok, err = s.Get(ctx, "sid-2")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Clear(ctx, "sid-1"))
	_, ok, err = s.Get(ctx, "sid-1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(10 * time.Millisecond)
	require.NoError(t, s.Set(ctx, "sid", Selection{Theater: "Theater2", ShowTime: "9:30 PM"}))

	time.Sleep(25 * time.Millisecond)

	_, ok, err := s.Get(ctx, "sid")
	require.NoError(t, err)
	assert.False(t, ok, "expired selection must not be returned")
}

func TestMemoryStoreOverwrite(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(time.Minute)
	require.NoError(t, s.Set(ctx, "sid", Selection{Theater: "Theater1", ShowTime: "10:00 AM"}))
	require.NoError(t, s.Set(ctx, "sid", Selection{Theater: "Theater2", ShowTime: "6:00 PM"}))

	got, ok, err := s.Get(ctx, "sid")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, Selection{Theater: "Theater2", ShowTime: "6:00 PM"}, got)
}
