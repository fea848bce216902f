package service

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"testing"
	"time"

	"blaze-custody/internal/adapter/platform"
	"blaze-custody/internal/adapter/storage/memory"
	"blaze-custody/internal/core/domain"
	"blaze-custody/internal/core/ports"
	"blaze-custody/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type storeFixture struct {
	store   *BiometricSecretStore
	gate    *BiometricGate
	creds   *memory.CredentialRepo
	sealed  *memory.SealedSecretRepo
	keyring *memory.Keyring
	refuse  *error
}

func newStoreFixture(t *testing.T) *storeFixture {
	t.Helper()
	var refuse error
	auth := platform.NewSoftware(func(context.Context) error {
		return refuse
	})
	gate := NewBiometricGate(auth, BiometricGateConfig{RPID: "localhost", RPName: "BLAZE", Timeout: time.Second}, newTestLogger())

	f := &storeFixture{
		gate:    gate,
		creds:   memory.NewCredentialRepo(),
		sealed:  memory.NewSealedSecretRepo(),
		keyring: memory.NewKeyring(),
		refuse:  &refuse,
	}
	f.store = NewBiometricSecretStore(gate, f.creds, f.sealed, f.keyring, newTestLogger())
	return f
}

func (f *storeFixture) register(t *testing.T) *domain.BiometricCredential {
	t.Helper()
	cred, err := f.gate.Register(context.Background(), "user-1", "Alice")
	require.NoError(t, err)
	return cred
}

func TestBiometricSecretStore_NoCredential(t *testing.T) {
	f := newStoreFixture(t)
	ctx := context.Background()

	err := f.store.StoreSecret(ctx, "Aa1!aaaa")
	assert.True(t, apperror.HasCode(err, apperror.CodeNoBiometricCredential))

	_, err = f.store.RetrieveSecret(ctx)
	assert.True(t, apperror.HasCode(err, apperror.CodeNoBiometricCredential))
}

func TestBiometricSecretStore_EnrollAndRetrieve(t *testing.T) {
	f := newStoreFixture(t)
	ctx := context.Background()
	cred := f.register(t)

	require.NoError(t, f.store.Enroll(ctx, cred, "Aa1!aaaa"))

	has, err := f.store.HasSecret(ctx)
	require.NoError(t, err)
	assert.True(t, has)

	secret, err := f.store.RetrieveSecret(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Aa1!aaaa", secret)

	creds, err := f.creds.List(ctx)
	require.NoError(t, err)
	require.Len(t, creds, 1)
	assert.NotNil(t, creds[0].LastUsed)
	assert.Equal(t, uint32(1), creds[0].Counter)
}

func TestBiometricSecretStore_SealedFormIsNotReversible(t *testing.T) {
	f := newStoreFixture(t)
	ctx := context.Background()
	cred := f.register(t)
	require.NoError(t, f.store.Enroll(ctx, cred, "Aa1!aaaa"))

	stored, err := f.sealed.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, cred.ID, stored.CredentialID)

	raw, err := base64.StdEncoding.DecodeString(stored.Ciphertext)
	require.NoError(t, err)
	assert.False(t, strings.Contains(string(raw), "Aa1!aaaa"))
	assert.NotEqual(t, base64.StdEncoding.EncodeToString([]byte("Aa1!aaaa")), stored.Ciphertext)
}

func TestBiometricSecretStore_NoStoredSecret(t *testing.T) {
	f := newStoreFixture(t)
	ctx := context.Background()
	cred := f.register(t)
	require.NoError(t, f.creds.Add(ctx, cred))

	_, err := f.store.RetrieveSecret(ctx)
	assert.True(t, apperror.HasCode(err, apperror.CodeNoStoredSecret))
}

func TestBiometricSecretStore_FailedAssertionKeepsReason(t *testing.T) {
	tests := []struct {
		name   string
		refuse error
		code   string
	}{
		{"denied", ports.ErrPlatformNotAllowed, apperror.CodeBiometricDenied},
		{"cancelled", ports.ErrPlatformAborted, apperror.CodeBiometricCancelled},
		{"origin mismatch", ports.ErrPlatformSecurity, apperror.CodeBiometricSecurity},
		{"unclassified", errors.New("sensor fault"), apperror.CodeAuthenticationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newStoreFixture(t)
			ctx := context.Background()
			cred := f.register(t)
			require.NoError(t, f.store.Enroll(ctx, cred, "Aa1!aaaa"))

			*f.refuse = tt.refuse
			_, err := f.store.RetrieveSecret(ctx)
			assert.Equal(t, tt.code, apperror.Code(err))
		})
	}
}

func TestBiometricSecretStore_OtherDeviceKeyCannotOpen(t *testing.T) {
	f := newStoreFixture(t)
	ctx := context.Background()
	cred := f.register(t)
	require.NoError(t, f.store.Enroll(ctx, cred, "Aa1!aaaa"))

	moved := NewBiometricSecretStore(f.gate, f.creds, f.sealed, memory.NewKeyring(), newTestLogger())
	_, err := moved.RetrieveSecret(ctx)
	assert.True(t, apperror.HasCode(err, apperror.CodeNoStoredSecret))
}

func TestBiometricSecretStore_SealBoundToCredential(t *testing.T) {
	f := newStoreFixture(t)
	ctx := context.Background()
	first := f.register(t)
	require.NoError(t, f.store.Enroll(ctx, first, "Aa1!aaaa"))

	stored, err := f.sealed.Get(ctx)
	require.NoError(t, err)

	// Re-enroll with a new credential but put back the old sealed value.
	second := f.register(t)
	require.NoError(t, f.store.Enroll(ctx, second, "Bb2@bbbb"))
	stored.CredentialID = second.ID
	require.NoError(t, f.sealed.Save(ctx, stored))

	_, err = f.store.RetrieveSecret(ctx)
	assert.True(t, apperror.HasCode(err, apperror.CodeNoStoredSecret))
}

func TestBiometricSecretStore_Clear(t *testing.T) {
	f := newStoreFixture(t)
	ctx := context.Background()
	cred := f.register(t)
	require.NoError(t, f.store.Enroll(ctx, cred, "Aa1!aaaa"))

	require.NoError(t, f.store.Clear(ctx))

	has, err := f.store.HasSecret(ctx)
	require.NoError(t, err)
	assert.False(t, has)
	creds, err := f.creds.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, creds)
}
