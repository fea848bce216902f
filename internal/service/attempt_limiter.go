package service

import (
	"context"
	"time"

	"blaze-custody/internal/core/ports"
)

const unlockAttemptKey = "unlock"

// AttemptLimiter caps failed password attempts inside a window.
type AttemptLimiter struct {
	store  ports.AttemptStore
	max    int64
	window time.Duration
}

// NewAttemptLimiter creates a limiter allowing max failures per window.
func NewAttemptLimiter(store ports.AttemptStore, max int64, window time.Duration) *AttemptLimiter {
	if max < 1 {
		max = 3
	}
	if window <= 0 {
		window = 15 * time.Minute
	}
	return &AttemptLimiter{store: store, max: max, window: window}
}

// Blocked reports whether the limit has been reached for key.
func (l *AttemptLimiter) Blocked(ctx context.Context, key string) (bool, error) {
	n, err := l.store.Count(ctx, key)
	if err != nil {
		return false, err
	}
	return n >= l.max, nil
}

// Fail records one failure and returns the attempts left.
func (l *AttemptLimiter) Fail(ctx context.Context, key string) (int64, error) {
	n, err := l.store.Increment(ctx, key, l.window)
	if err != nil {
		return 0, err
	}
	if remaining := l.max - n; remaining > 0 {
		return remaining, nil
	}
	return 0, nil
}

func (l *AttemptLimiter) Reset(ctx context.Context, key string) error {
	return l.store.Reset(ctx, key)
}
