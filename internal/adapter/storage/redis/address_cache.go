package redis

import (
	"context"
	"errors"
	"fmt"

	"blaze-custody/internal/core/domain"
	"blaze-custody/internal/core/ports"

	goredis "github.com/redis/go-redis/v9"
)

// AddressCache keeps the derived public addresses in a Redis hash so a
// locked wallet can still show where funds live. Addresses are public;
// nothing secret is written here.
type AddressCache struct {
	client *goredis.Client
	key    string
}

var _ ports.AddressCache = (*AddressCache)(nil)

func NewAddressCache(client *goredis.Client) *AddressCache {
	return &AddressCache{
		client: client,
		key:    keyPrefix + "addresses",
	}
}

// Get returns nil, nil when nothing is cached.
func (c *AddressCache) Get(ctx context.Context) (map[domain.Chain]string, error) {
	raw, err := c.client.HGetAll(ctx, c.key).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis address get: %w", err)
	}
	if len(raw) == 0 {
		return nil, nil
	}

	out := make(map[domain.Chain]string, len(raw))
	for chain, addr := range raw {
		out[domain.Chain(chain)] = addr
	}
	return out, nil
}

// Set replaces the cached addresses.
func (c *AddressCache) Set(ctx context.Context, addresses map[domain.Chain]string) error {
	fields := make(map[string]interface{}, len(addresses))
	for chain, addr := range addresses {
		fields[string(chain)] = addr
	}

	_, err := c.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.Del(ctx, c.key)
		if len(fields) > 0 {
			pipe.HSet(ctx, c.key, fields)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis address set: %w", err)
	}
	return nil
}

func (c *AddressCache) Clear(ctx context.Context) error {
	if err := c.client.Del(ctx, c.key).Err(); err != nil {
		return fmt.Errorf("redis address clear: %w", err)
	}
	return nil
}
