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

const testChallenge = "9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08"

func TestNonceStore_CheckAndSet_FirstUse(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewNonceStore(client)

	ok, err := store.CheckAndSet(context.Background(), "qr-login", testChallenge, 5*time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, s.Exists("blaze:nonce:qr-login:"+testChallenge))
}

func TestNonceStore_CheckAndSet_Replay(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewNonceStore(client)
	ctx := context.Background()

	ok, err := store.CheckAndSet(ctx, "qr-login", testChallenge, 5*time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.CheckAndSet(ctx, "qr-login", testChallenge, 5*time.Minute)
	require.NoError(t, err)
	assert.False(t, ok, "replayed challenge must be refused")
}

func TestNonceStore_CheckAndSet_ScopesAreIndependent(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewNonceStore(client)
	ctx := context.Background()

	ok, err := store.CheckAndSet(ctx, "qr-login", testChallenge, 5*time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.CheckAndSet(ctx, "other", testChallenge, 5*time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestNonceStore_CheckAndSet_Expired(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewNonceStore(client)
	ctx := context.Background()

	ok, err := store.CheckAndSet(ctx, "qr-login", testChallenge, time.Second)
	require.NoError(t, err)
	assert.True(t, ok)

	s.FastForward(2 * time.Second)

	ok, err = store.CheckAndSet(ctx, "qr-login", testChallenge, time.Second)
	require.NoError(t, err)
	assert.True(t, ok, "an expired marker no longer blocks")
}

func TestNonceStore_CheckAndSet_RedisDown(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewNonceStore(client)
	s.Close()

	_, err := store.CheckAndSet(context.Background(), "qr-login", testChallenge, time.Second)
	assert.Error(t, err)
}
