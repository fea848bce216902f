package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"blaze-custody/internal/core/ports"

	goredis "github.com/redis/go-redis/v9"
)

// AttemptStore counts failed unlock attempts with INCR. The window starts at
// the first failure and the counter disappears when it expires.
type AttemptStore struct {
	client *goredis.Client
	prefix string
}

var _ ports.AttemptStore = (*AttemptStore)(nil)

func NewAttemptStore(client *goredis.Client) *AttemptStore {
	return &AttemptStore{
		client: client,
		prefix: keyPrefix + "attempts:",
	}
}

func (s *AttemptStore) Increment(ctx context.Context, key string, window time.Duration) (int64, error) {
	redisKey := s.prefix + key
	count, err := s.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return 0, fmt.Errorf("redis attempt incr: %w", err)
	}
	if count == 1 {
		if err := s.client.Expire(ctx, redisKey, window).Err(); err != nil {
			return count, fmt.Errorf("redis attempt expire: %w", err)
		}
	}
	return count, nil
}

func (s *AttemptStore) Count(ctx context.Context, key string) (int64, error) {
	count, err := s.client.Get(ctx, s.prefix+key).Int64()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("redis attempt get: %w", err)
	}
	return count, nil
}

func (s *AttemptStore) Reset(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
		return fmt.Errorf("redis attempt reset: %w", err)
	}
	return nil
}
