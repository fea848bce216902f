package memory

import (
	"context"
	"crypto/rand"
	"fmt"
	"sync"
	"time"

	"blaze-custody/internal/core/ports"
)

var (
	_ ports.NonceStore     = (*NonceStore)(nil)
	_ ports.AttemptStore   = (*AttemptStore)(nil)
	_ ports.RateLimitStore = (*RateLimitStore)(nil)
	_ ports.DeviceKeyring  = (*Keyring)(nil)
)

// Clock returns the current time; tests substitute a fake.
type Clock func() time.Time

// --- Nonce Store ---

// NonceStore remembers used nonces until their TTL passes.
type NonceStore struct {
	mu   sync.Mutex
	seen map[string]time.Time // key -> expiry
	now  Clock
}

func NewNonceStore(now Clock) *NonceStore {
	if now == nil {
		now = time.Now
	}
	return &NonceStore{seen: make(map[string]time.Time), now: now}
}

func (s *NonceStore) CheckAndSet(ctx context.Context, scope string, nonce string, ttl time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for k, exp := range s.seen {
		if now.After(exp) {
			delete(s.seen, k)
		}
	}

	key := scope + ":" + nonce
	if _, used := s.seen[key]; used {
		return false, nil
	}
	s.seen[key] = now.Add(ttl)
	return true, nil
}

// --- Attempt Store ---

type attemptWindow struct {
	count   int64
	expires time.Time
}

// AttemptStore counts failures per key. The window starts at the first
// failure, matching INCR + EXPIRE on redis.
type AttemptStore struct {
	mu      sync.Mutex
	windows map[string]*attemptWindow
	now     Clock
}

func NewAttemptStore(now Clock) *AttemptStore {
	if now == nil {
		now = time.Now
	}
	return &AttemptStore{windows: make(map[string]*attemptWindow), now: now}
}

func (s *AttemptStore) Increment(ctx context.Context, key string, window time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w := s.liveLocked(key)
	if w == nil {
		w = &attemptWindow{expires: s.now().Add(window)}
		s.windows[key] = w
	}
	w.count++
	return w.count, nil
}

func (s *AttemptStore) Count(ctx context.Context, key string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if w := s.liveLocked(key); w != nil {
		return w.count, nil
	}
	return 0, nil
}

func (s *AttemptStore) Reset(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.windows, key)
	return nil
}

func (s *AttemptStore) liveLocked(key string) *attemptWindow {
	w, ok := s.windows[key]
	if !ok {
		return nil
	}
	if !s.now().Before(w.expires) {
		delete(s.windows, key)
		return nil
	}
	return w
}

// --- Rate Limit Store ---

// RateLimitStore is a sliding-window limiter keeping request timestamps.
type RateLimitStore struct {
	mu   sync.Mutex
	hits map[string][]time.Time
	now  Clock
}

func NewRateLimitStore(now Clock) *RateLimitStore {
	if now == nil {
		now = time.Now
	}
	return &RateLimitStore{hits: make(map[string][]time.Time), now: now}
}

func (s *RateLimitStore) Allow(ctx context.Context, key string, limit int64, window time.Duration) (bool, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	cutoff := now.Add(-window)
	kept := s.hits[key][:0]
	for _, t := range s.hits[key] {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}

	if int64(len(kept)) >= limit {
		s.hits[key] = kept
		return false, 0, nil
	}
	s.hits[key] = append(kept, now)
	return true, limit - int64(len(kept)) - 1, nil
}

// --- Keyring ---

// Keyring holds a random device key for the life of the process. Sealed
// biometric secrets do not survive a restart with this keyring.
type Keyring struct {
	once sync.Once
	key  []byte
	err  error
}

func NewKeyring() *Keyring {
	return &Keyring{}
}

func (k *Keyring) DeviceKey(ctx context.Context) ([]byte, error) {
	k.once.Do(func() {
		k.key = make([]byte, 32)
		if _, err := rand.Read(k.key); err != nil {
			k.err = fmt.Errorf("generating device key: %w", err)
		}
	})
	return k.key, k.err
}
