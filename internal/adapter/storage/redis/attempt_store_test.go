package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttemptStore_IncrementAndCount(t *testing.T) {
	s := miniredis.RunT(t)
	store := NewAttemptStore(goredis.NewClient(&goredis.Options{Addr: s.Addr()}))
	ctx := context.Background()

	count, err := store.Count(ctx, "unlock")
	require.NoError(t, err)
	assert.Zero(t, count)

	for want := int64(1); want <= 3; want++ {
		n, err := store.Increment(ctx, "unlock", 15*time.Minute)
		require.NoError(t, err)
		assert.Equal(t, want, n)
	}

	count, err = store.Count(ctx, "unlock")
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
	assert.Equal(t, 15*time.Minute, s.TTL("blaze:attempts:unlock"))
}

func TestAttemptStore_WindowStartsAtFirstFailure(t *testing.T) {
	s := miniredis.RunT(t)
	store := NewAttemptStore(goredis.NewClient(&goredis.Options{Addr: s.Addr()}))
	ctx := context.Background()

	_, err := store.Increment(ctx, "unlock", 15*time.Minute)
	require.NoError(t, err)
	s.FastForward(10 * time.Minute)
	_, err = store.Increment(ctx, "unlock", 15*time.Minute)
	require.NoError(t, err)

	assert.Equal(t, 5*time.Minute, s.TTL("blaze:attempts:unlock"), "later failures do not extend the window")

	s.FastForward(6 * time.Minute)
	count, err := store.Count(ctx, "unlock")
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestAttemptStore_Reset(t *testing.T) {
	s := miniredis.RunT(t)
	store := NewAttemptStore(goredis.NewClient(&goredis.Options{Addr: s.Addr()}))
	ctx := context.Background()

	_, err := store.Increment(ctx, "unlock", time.Minute)
	require.NoError(t, err)
	require.NoError(t, store.Reset(ctx, "unlock"))
	require.NoError(t, store.Reset(ctx, "unlock"))

	count, err := store.Count(ctx, "unlock")
	require.NoError(t, err)
	assert.Zero(t, count)
}
