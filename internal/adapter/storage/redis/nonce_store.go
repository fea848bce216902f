package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"blaze-custody/internal/core/ports"

	goredis "github.com/redis/go-redis/v9"
)

// NonceStore implements ports.NonceStore using Redis SET NX. It consumes
// QR login challenges so a scanned payload approves at most once, even
// across processes sharing the same Redis.
type NonceStore struct {
	client *goredis.Client
	prefix string
}

var _ ports.NonceStore = (*NonceStore)(nil)

func NewNonceStore(client *goredis.Client) *NonceStore {
	return &NonceStore{
		client: client,
		prefix: keyPrefix + "nonce:",
	}
}

// CheckAndSet returns true if nonce was unused in scope and marks it used.
func (s *NonceStore) CheckAndSet(ctx context.Context, scope string, nonce string, ttl time.Duration) (bool, error) {
	key := s.prefix + scope + ":" + nonce
	result, err := s.client.SetArgs(ctx, key, 1, goredis.SetArgs{
		Mode: "NX",
		TTL:  ttl,
	}).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("redis nonce check: %w", err)
	}
	return result == "OK", nil
}
