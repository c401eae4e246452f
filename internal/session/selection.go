// Package session holds the per-browser-session state that is not part
// of the signed identity cookie: the pending theater/showtime selection
// written by the booking step and read by the seating step, plus the
// one-shot flash notices shown after redirects.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Selection is the transient choice made on the booking page. Both
// fields may be empty when the seating step is reached directly, in
// which case the booking records the literal "N/A" placeholders.
type Selection struct {
	Theater  string
	ShowTime string
}

// SelectionStore keeps the pending selection per session id. Entries
// are short-lived; a selection that is never consumed simply expires.
type SelectionStore interface {
	Set(ctx context.Context, sid string, sel Selection) error
	Get(ctx context.Context, sid string) (Selection, bool, error)
	Clear(ctx context.Context, sid string) error
}

// ---- Redis-backed store ----

// RedisStore keeps selections in Redis under one hash per session id.
// This is the store used when a Redis server is reachable at startup,
// so selections survive process restarts and multiple instances.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func key(sid string) string { return "sel:" + sid }

func (s *RedisStore) Set(ctx context.Context, sid string, sel Selection) error {
	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, key(sid), "theater", sel.Theater, "show_time", sel.ShowTime)
	pipe.Expire(ctx, key(sid), s.ttl)
	_, err := pipe.Exec(ctx)
	return err
}

func (s *RedisStore) Get(ctx context.Context, sid string) (Selection, bool, error) {
	vals, err := s.client.HGetAll(ctx, key(sid)).Result()
	if err != nil {
		return Selection{}, false, err
	}
	if len(vals) == 0 {
		return Selection{}, false, nil
	}
	return Selection{Theater: vals["theater"], ShowTime: vals["show_time"]}, true, nil
}

func (s *RedisStore) Clear(ctx context.Context, sid string) error {
	return s.client.Del(ctx, key(sid)).Err()
}

// ---- In-memory fallback ----

// MemoryStore is the fallback used when Redis is unreachable at
// startup. Entries expire lazily on read.
type MemoryStore struct {
	mu   sync.Mutex
	ttl  time.Duration
	data map[string]memoryEntry
}

type memoryEntry struct {
	sel Selection
	exp time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{ttl: ttl, data: make(map[string]memoryEntry)}
}

func (s *MemoryStore) Set(_ context.Context, sid string, sel Selection) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[sid] = memoryEntry{sel: sel, exp: time.Now().Add(s.ttl)}
	return nil
}

func (s *MemoryStore) Get(_ context.Context, sid string) (Selection, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.data[sid]
	if !ok {
		return Selection{}, false, nil
	}
	if time.Now().After(e.exp) {
		delete(s.data, sid)
		return Selection{}, false, nil
	}
	return e.sel, true, nil
}

func (s *MemoryStore) Clear(_ context.Context, sid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, sid)
	return nil
}
