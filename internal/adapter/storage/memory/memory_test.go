package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"blaze-custody/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func TestSecretRepo_SaveGetDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewSecretRepo()

	secret, err := repo.GetEncryptedSecret(ctx)
	require.NoError(t, err)
	assert.Nil(t, secret)
	rec, err := repo.GetPasswordRecord(ctx)
	require.NoError(t, err)
	assert.Empty(t, rec)

	in := &domain.EncryptedSecret{EncryptedData: "ZGF0YQ==", Salt: "aa", IV: "bb"}
	require.NoError(t, repo.Save(ctx, in, "aa:bb"))

	in.EncryptedData = "mutated"
	got, err := repo.GetEncryptedSecret(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ZGF0YQ==", got.EncryptedData, "repo must keep its own copy")

	rec, err = repo.GetPasswordRecord(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.PasswordRecord("aa:bb"), rec)

	require.NoError(t, repo.Delete(ctx))
	got, err = repo.GetEncryptedSecret(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSecretRepo_RejectsPartialWrite(t *testing.T) {
	repo := NewSecretRepo()
	assert.Error(t, repo.Save(context.Background(), nil, "aa:bb"))
	assert.Error(t, repo.Save(context.Background(), &domain.EncryptedSecret{}, ""))
}

func TestCredentialRepo_OrderAndUsage(t *testing.T) {
	ctx := context.Background()
	repo := NewCredentialRepo()

	require.NoError(t, repo.Add(ctx, &domain.BiometricCredential{ID: "first"}))
	require.NoError(t, repo.Add(ctx, &domain.BiometricCredential{ID: "second"}))
	assert.Error(t, repo.Add(ctx, &domain.BiometricCredential{ID: "first"}))

	used := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, repo.MarkUsed(ctx, "first", 7, used))
	assert.Error(t, repo.MarkUsed(ctx, "missing", 1, used))

	creds, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, creds, 2)
	assert.Equal(t, "first", creds[0].ID)
	assert.Equal(t, uint32(7), creds[0].Counter)
	require.NotNil(t, creds[0].LastUsed)
	assert.Equal(t, used, *creds[0].LastUsed)

	require.NoError(t, repo.DeleteAll(ctx))
	creds, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, creds)
}

func TestSealedSecretRepo(t *testing.T) {
	ctx := context.Background()
	repo := NewSealedSecretRepo()

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, repo.Save(ctx, &domain.SealedSecret{CredentialID: "c1", Nonce: "n", Ciphertext: "x"}))
	got, err = repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "c1", got.CredentialID)

	require.NoError(t, repo.Delete(ctx))
	got, err = repo.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestAddressCache(t *testing.T) {
	ctx := context.Background()
	cache := NewAddressCache()

	got, err := cache.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)

	in := map[domain.Chain]string{domain.ChainEthereum: "0xabc", domain.ChainSolana: "Sol111"}
	require.NoError(t, cache.Set(ctx, in))
	in[domain.ChainEthereum] = "changed"

	got, err = cache.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "0xabc", got[domain.ChainEthereum])

	require.NoError(t, cache.Clear(ctx))
	got, err = cache.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestNonceStore_CheckAndSet(t *testing.T) {
	ctx := context.Background()
	clock := newFakeClock()
	store := NewNonceStore(clock.Now)

	fresh, err := store.CheckAndSet(ctx, "qr-login", "abc", time.Minute)
	require.NoError(t, err)
	assert.True(t, fresh)

	fresh, err = store.CheckAndSet(ctx, "qr-login", "abc", time.Minute)
	require.NoError(t, err)
	assert.False(t, fresh, "second use must be rejected")

	fresh, err = store.CheckAndSet(ctx, "other", "abc", time.Minute)
	require.NoError(t, err)
	assert.True(t, fresh, "scopes are independent")

	clock.Advance(2 * time.Minute)
	fresh, err = store.CheckAndSet(ctx, "qr-login", "abc", time.Minute)
	require.NoError(t, err)
	assert.True(t, fresh, "nonce is forgotten after its ttl")
}

func TestAttemptStore_Window(t *testing.T) {
	ctx := context.Background()
	clock := newFakeClock()
	store := NewAttemptStore(clock.Now)

	for i := int64(1); i <= 3; i++ {
		n, err := store.Increment(ctx, "unlock", 15*time.Minute)
		require.NoError(t, err)
		assert.Equal(t, i, n)
	}

	clock.Advance(10 * time.Minute)
	n, err := store.Count(ctx, "unlock")
	require.NoError(t, err)
	assert.Equal(t, int64(3), n, "window is fixed from the first failure")

	clock.Advance(5 * time.Minute)
	n, err = store.Count(ctx, "unlock")
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	_, err = store.Increment(ctx, "unlock", 15*time.Minute)
	require.NoError(t, err)
	require.NoError(t, store.Reset(ctx, "unlock"))
	n, err = store.Count(ctx, "unlock")
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestRateLimitStore_SlidingWindow(t *testing.T) {
	ctx := context.Background()
	clock := newFakeClock()
	store := NewRateLimitStore(clock.Now)

	for i := 0; i < 3; i++ {
		allowed, remaining, err := store.Allow(ctx, "ip", 3, time.Minute)
		require.NoError(t, err)
		assert.True(t, allowed)
		assert.Equal(t, int64(2-i), remaining)
	}

	allowed, _, err := store.Allow(ctx, "ip", 3, time.Minute)
	require.NoError(t, err)
	assert.False(t, allowed)

	clock.Advance(61 * time.Second)
	allowed, _, err = store.Allow(ctx, "ip", 3, time.Minute)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestKeyring_StableKey(t *testing.T) {
	ctx := context.Background()
	k := NewKeyring()

	a, err := k.DeviceKey(ctx)
	require.NoError(t, err)
	assert.Len(t, a, 32)

	b, err := k.DeviceKey(ctx)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	other, err := NewKeyring().DeviceKey(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, a, other)
}
