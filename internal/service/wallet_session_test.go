package service

import (
	"context"
	"strings"
	"sync"
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

const (
	testPassword    = "Aa1!aaaa"
	testNewPassword = "Bb2@bbbbbb"
)

type sessionFixture struct {
	session   *WalletSession
	monitor   *ActivityMonitor
	secrets   *memory.SecretRepo
	addresses *memory.AddressCache
	clock     *fakeClock
}

func newSessionFixture(t *testing.T, auth ports.PlatformAuthenticator) *sessionFixture {
	t.Helper()
	clock := newFakeClock()
	monitor := newTestMonitor(clock, DefaultIdleTimeout)

	f := &sessionFixture{
		monitor:   monitor,
		secrets:   memory.NewSecretRepo(),
		addresses: memory.NewAddressCache(),
		clock:     clock,
	}

	deps := WalletSessionDeps{
		Vault:     NewMnemonicVault(nil),
		Crypto:    NewPasswordCrypto(DefaultKDFIterations, 16),
		Secrets:   f.secrets,
		Addresses: f.addresses,
		Limiter:   NewAttemptLimiter(memory.NewAttemptStore(clock.Now), 3, 15*time.Minute),
		Monitor:   monitor,
	}
	if auth != nil {
		gate := NewBiometricGate(auth, BiometricGateConfig{RPID: "localhost", RPName: "BLAZE", Timeout: time.Second}, newTestLogger())
		deps.Gate = gate
		deps.Biometrics = NewBiometricSecretStore(gate, memory.NewCredentialRepo(), memory.NewSealedSecretRepo(), memory.NewKeyring(), newTestLogger())
	}
	f.session = NewWalletSession(deps, newTestLogger())
	return f
}

// withStoredWallet imports the test phrase, seals it and locks.
func (f *sessionFixture) withStoredWallet(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	_, err := f.session.Import(ctx, testMnemonic, false)
	require.NoError(t, err)
	require.NoError(t, f.session.SetPassword(ctx, testPassword))
	f.session.Lock(ctx)
}

func TestWalletSession_InitialState(t *testing.T) {
	f := newSessionFixture(t, nil)

	state, err := f.session.State(context.Background())
	require.NoError(t, err)
	assert.True(t, state.IsLocked)
	assert.False(t, state.HasWallet)
	assert.Empty(t, state.Address)

	_, err = f.session.CurrentWallet()
	assert.True(t, apperror.HasCode(err, apperror.CodeWalletLocked))

	_, err = f.session.UnlockWithPassword(context.Background(), testPassword)
	assert.True(t, apperror.HasCode(err, apperror.CodeNoWallet))
}

func TestWalletSession_GenerateSetPasswordUnlock(t *testing.T) {
	f := newSessionFixture(t, nil)
	ctx := context.Background()

	generated, err := f.session.Generate(ctx, false)
	require.NoError(t, err)
	assert.Len(t, strings.Fields(generated.Mnemonic), 12)
	address := generated.Wallet.Address()

	state, err := f.session.State(ctx)
	require.NoError(t, err)
	assert.False(t, state.IsLocked)
	assert.Equal(t, address, state.Address)

	require.NoError(t, f.session.SetPassword(ctx, testPassword))

	secret, err := f.secrets.GetEncryptedSecret(ctx)
	require.NoError(t, err)
	require.NotNil(t, secret)
	assert.Len(t, secret.Salt, 32)
	assert.Len(t, secret.IV, 32)

	f.session.Lock(ctx)
	assert.True(t, f.session.IsLocked())

	unlocked, err := f.session.UnlockWithPassword(ctx, testPassword)
	require.NoError(t, err)
	assert.Equal(t, address, unlocked.Address())
	assert.False(t, f.session.IsLocked())
}

func TestWalletSession_SetPasswordRequiresResidentWallet(t *testing.T) {
	f := newSessionFixture(t, nil)

	err := f.session.SetPassword(context.Background(), testPassword)
	assert.True(t, apperror.HasCode(err, apperror.CodeWalletLocked))
}

func TestWalletSession_SetPasswordRejectsWeak(t *testing.T) {
	f := newSessionFixture(t, nil)
	_, err := f.session.Import(context.Background(), testMnemonic, false)
	require.NoError(t, err)

	err = f.session.SetPassword(context.Background(), "password")
	assert.True(t, apperror.HasCode(err, apperror.CodeWeakPassword))

	record, err := f.secrets.GetPasswordRecord(context.Background())
	require.NoError(t, err)
	assert.Empty(t, record)
}

func TestWalletSession_ImportInvalid(t *testing.T) {
	f := newSessionFixture(t, nil)

	_, err := f.session.Import(context.Background(), "test test test", false)
	assert.True(t, apperror.HasCode(err, apperror.CodeInvalidMnemonic))
	assert.True(t, f.session.IsLocked())
}

func TestWalletSession_LockedStateUsesAddressCache(t *testing.T) {
	f := newSessionFixture(t, nil)
	f.withStoredWallet(t)

	state, err := f.session.State(context.Background())
	require.NoError(t, err)
	assert.True(t, state.IsLocked)
	assert.True(t, state.HasWallet)
	assert.Equal(t, testAddress, state.Address)
	assert.NotEmpty(t, state.Addresses[domain.ChainSolana])
}

func TestWalletSession_LockWipesWallet(t *testing.T) {
	f := newSessionFixture(t, nil)
	f.withStoredWallet(t)
	ctx := context.Background()

	w, err := f.session.UnlockWithPassword(ctx, testPassword)
	require.NoError(t, err)
	_, err = w.SignMessage([]byte("hello"))
	require.NoError(t, err)

	f.session.Lock(ctx)

	_, err = w.SignMessage([]byte("hello"))
	assert.True(t, apperror.HasCode(err, apperror.CodeWalletLocked))
	assert.True(t, w.(*HDWallet).Wiped())
	assert.Equal(t, testAddress, w.Address(), "addresses survive the wipe")

	f.session.Lock(ctx)
}

func TestWalletSession_WrongPasswordCountsDown(t *testing.T) {
	f := newSessionFixture(t, nil)
	f.withStoredWallet(t)
	ctx := context.Background()

	_, err := f.session.UnlockWithPassword(ctx, "Wrong1!pw")
	assert.True(t, apperror.HasCode(err, apperror.CodeDecryptionFailed))
	assert.Contains(t, err.Error(), "2 attempt(s) remaining")

	_, err = f.session.UnlockWithPassword(ctx, "Wrong1!pw")
	assert.True(t, apperror.HasCode(err, apperror.CodeDecryptionFailed))
	assert.Contains(t, err.Error(), "1 attempt(s) remaining")

	_, err = f.session.UnlockWithPassword(ctx, "Wrong1!pw")
	assert.True(t, apperror.HasCode(err, apperror.CodeTooManyAttempts))

	_, err = f.session.UnlockWithPassword(ctx, testPassword)
	assert.True(t, apperror.HasCode(err, apperror.CodeTooManyAttempts), "the right password is refused while blocked")
	assert.True(t, f.session.IsLocked())
}

func TestWalletSession_SuccessResetsAttempts(t *testing.T) {
	f := newSessionFixture(t, nil)
	f.withStoredWallet(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := f.session.UnlockWithPassword(ctx, "Wrong1!pw")
		require.Error(t, err)
	}
	_, err := f.session.UnlockWithPassword(ctx, testPassword)
	require.NoError(t, err)
	f.session.Lock(ctx)

	_, err = f.session.UnlockWithPassword(ctx, "Wrong1!pw")
	assert.Contains(t, err.Error(), "2 attempt(s) remaining")
}

func TestWalletSession_ImportRecoversFromLockout(t *testing.T) {
	f := newSessionFixture(t, nil)
	f.withStoredWallet(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, _ = f.session.UnlockWithPassword(ctx, "Wrong1!pw")
	}
	_, err := f.session.UnlockWithPassword(ctx, testPassword)
	require.True(t, apperror.HasCode(err, apperror.CodeTooManyAttempts))

	_, err = f.session.Import(ctx, testMnemonic, false)
	require.True(t, apperror.HasCode(err, apperror.CodeWalletExists), "recovery needs an explicit reset")

	_, err = f.session.Import(ctx, testMnemonic, true)
	require.NoError(t, err)
	require.NoError(t, f.session.SetPassword(ctx, testNewPassword))
	f.session.Lock(ctx)

	_, err = f.session.UnlockWithPassword(ctx, testNewPassword)
	assert.NoError(t, err)
}

func TestWalletSession_StoredWalletIsNotReplaced(t *testing.T) {
	f := newSessionFixture(t, nil)
	f.withStoredWallet(t)
	ctx := context.Background()

	before, err := f.secrets.GetEncryptedSecret(ctx)
	require.NoError(t, err)

	_, err = f.session.Generate(ctx, false)
	assert.True(t, apperror.HasCode(err, apperror.CodeWalletExists))
	_, err = f.session.Import(ctx, otherMnemonic, false)
	assert.True(t, apperror.HasCode(err, apperror.CodeWalletExists))
	assert.True(t, f.session.IsLocked(), "a refused replacement leaves nothing resident")

	err = f.session.SetPassword(ctx, "Zz9#attacker")
	assert.True(t, apperror.HasCode(err, apperror.CodeWalletExists))

	after, err := f.secrets.GetEncryptedSecret(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)

	w, err := f.session.UnlockWithPassword(ctx, testPassword)
	require.NoError(t, err)
	assert.Equal(t, testAddress, w.Address())
}

func TestWalletSession_SetPasswordCannotRekeyUnlockedWallet(t *testing.T) {
	f := newSessionFixture(t, nil)
	f.withStoredWallet(t)
	ctx := context.Background()

	_, err := f.session.UnlockWithPassword(ctx, testPassword)
	require.NoError(t, err)

	err = f.session.SetPassword(ctx, testNewPassword)
	assert.True(t, apperror.HasCode(err, apperror.CodeWalletExists))

	_, err = f.session.Generate(ctx, false)
	assert.True(t, apperror.HasCode(err, apperror.CodeWalletExists))
	w, err := f.session.CurrentWallet()
	require.NoError(t, err, "a refused generate keeps the unlocked wallet")
	assert.Equal(t, testAddress, w.Address())

	f.session.Lock(ctx)
	_, err = f.session.UnlockWithPassword(ctx, testPassword)
	assert.NoError(t, err)
}

func TestWalletSession_ResetDeletesStoredWallet(t *testing.T) {
	f := newSessionFixture(t, platform.NewSoftware(nil))
	f.withStoredWallet(t)
	ctx := context.Background()

	_, err := f.session.EnableBiometric(ctx, "user-1", "Alice", testPassword)
	require.NoError(t, err)

	generated, err := f.session.Generate(ctx, true)
	require.NoError(t, err)
	assert.NotEqual(t, testAddress, generated.Wallet.Address())

	record, err := f.secrets.GetPasswordRecord(ctx)
	require.NoError(t, err)
	assert.Empty(t, record)
	secret, err := f.secrets.GetEncryptedSecret(ctx)
	require.NoError(t, err)
	assert.Nil(t, secret)

	caps, err := f.session.BiometricCapabilities(ctx)
	require.NoError(t, err)
	assert.False(t, caps.Enabled, "the enrollment belonged to the old wallet")

	cached, err := f.addresses.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, generated.Wallet.Address(), cached[domain.ChainEthereum])

	require.NoError(t, f.session.SetPassword(ctx, testNewPassword))
	f.session.Lock(ctx)
	_, err = f.session.UnlockWithPassword(ctx, testPassword)
	assert.True(t, apperror.HasCode(err, apperror.CodeDecryptionFailed))
	w, err := f.session.UnlockWithPassword(ctx, testNewPassword)
	require.NoError(t, err)
	assert.Equal(t, generated.Wallet.Address(), w.Address())
}

func TestWalletSession_LockoutWindowExpires(t *testing.T) {
	f := newSessionFixture(t, nil)
	f.withStoredWallet(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, _ = f.session.UnlockWithPassword(ctx, "Wrong1!pw")
	}
	f.clock.Advance(16 * time.Minute)

	_, err := f.session.UnlockWithPassword(ctx, testPassword)
	assert.NoError(t, err)
}

func TestWalletSession_ChangePassword(t *testing.T) {
	f := newSessionFixture(t, nil)
	f.withStoredWallet(t)
	ctx := context.Background()

	err := f.session.ChangePassword(ctx, testPassword, "weak")
	assert.True(t, apperror.HasCode(err, apperror.CodeWeakPassword))

	err = f.session.ChangePassword(ctx, "Wrong1!pw", testNewPassword)
	assert.True(t, apperror.HasCode(err, apperror.CodeDecryptionFailed))

	require.NoError(t, f.session.ChangePassword(ctx, testPassword, testNewPassword))
	assert.True(t, f.session.IsLocked(), "changing the password does not unlock")

	_, err = f.session.UnlockWithPassword(ctx, testPassword)
	assert.True(t, apperror.HasCode(err, apperror.CodeDecryptionFailed))

	w, err := f.session.UnlockWithPassword(ctx, testNewPassword)
	require.NoError(t, err)
	assert.Equal(t, testAddress, w.Address())
}

func TestWalletSession_AutoLock(t *testing.T) {
	f := newSessionFixture(t, nil)
	f.withStoredWallet(t)
	ctx := context.Background()

	_, err := f.session.UnlockWithPassword(ctx, testPassword)
	require.NoError(t, err)

	f.clock.Advance(29 * time.Minute)
	f.session.RecordActivity()
	f.clock.Advance(29 * time.Minute)
	assert.False(t, f.monitor.CheckAutoLock(ctx))

	f.clock.Advance(2 * time.Minute)
	assert.True(t, f.monitor.CheckAutoLock(ctx))
	assert.True(t, f.session.IsLocked())

	state, err := f.session.State(ctx)
	require.NoError(t, err)
	assert.True(t, state.IsLocked)
	assert.Equal(t, testAddress, state.Address)
}

func TestWalletSession_LockIdleRechecksActivity(t *testing.T) {
	f := newSessionFixture(t, nil)
	f.withStoredWallet(t)
	ctx := context.Background()

	f.clock.Advance(time.Hour)
	require.True(t, f.monitor.Idle())

	// An unlock landing after the tick saw the idle wallet.
	_, err := f.session.UnlockWithPassword(ctx, testPassword)
	require.NoError(t, err)

	assert.False(t, f.session.LockIdle(ctx))
	assert.False(t, f.session.IsLocked())

	f.clock.Advance(31 * time.Minute)
	assert.True(t, f.session.LockIdle(ctx))
	assert.True(t, f.session.IsLocked())
	assert.False(t, f.session.LockIdle(ctx), "nothing left to lock")
}

func TestWalletSession_ConcurrentUnlocks(t *testing.T) {
	f := newSessionFixture(t, nil)
	f.withStoredWallet(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.session.UnlockWithPassword(ctx, testPassword)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}

	w, err := f.session.CurrentWallet()
	require.NoError(t, err)
	_, err = w.SignMessage([]byte("still resident"))
	assert.NoError(t, err, "the resident wallet must not be one of the wiped ones")
}

func TestWalletSession_BiometricUnavailable(t *testing.T) {
	f := newSessionFixture(t, platform.Unavailable{})
	f.withStoredWallet(t)
	ctx := context.Background()

	_, err := f.session.UnlockWithBiometric(ctx)
	assert.True(t, apperror.HasCode(err, apperror.CodeBiometricUnavailable))

	caps, err := f.session.BiometricCapabilities(ctx)
	require.NoError(t, err)
	assert.False(t, caps.Supported)
	assert.False(t, caps.PlatformAvailable)
	assert.False(t, caps.Enabled)

	noGate := newSessionFixture(t, nil)
	_, err = noGate.session.UnlockWithBiometric(ctx)
	assert.True(t, apperror.HasCode(err, apperror.CodeBiometricUnavailable))
	_, err = noGate.session.EnableBiometric(ctx, "user-1", "Alice", testPassword)
	assert.True(t, apperror.HasCode(err, apperror.CodeBiometricUnavailable))
}

func TestWalletSession_BiometricLifecycle(t *testing.T) {
	f := newSessionFixture(t, platform.NewSoftware(nil))
	f.withStoredWallet(t)
	ctx := context.Background()

	_, err := f.session.EnableBiometric(ctx, "user-1", "Alice", "Wrong1!pw")
	assert.True(t, apperror.HasCode(err, apperror.CodeDecryptionFailed))

	cred, err := f.session.EnableBiometric(ctx, "user-1", "Alice", testPassword)
	require.NoError(t, err)
	assert.NotEmpty(t, cred.ID)

	caps, err := f.session.BiometricCapabilities(ctx)
	require.NoError(t, err)
	assert.True(t, caps.Supported)
	assert.True(t, caps.PlatformAvailable)
	assert.True(t, caps.Enabled)

	w, err := f.session.UnlockWithBiometric(ctx)
	require.NoError(t, err)
	assert.Equal(t, testAddress, w.Address())
	f.session.Lock(ctx)

	require.NoError(t, f.session.ChangePassword(ctx, testPassword, testNewPassword))
	_, err = f.session.UnlockWithBiometric(ctx)
	require.NoError(t, err, "the sealed password follows a password change")
	f.session.Lock(ctx)

	require.NoError(t, f.session.DisableBiometric(ctx))
	caps, err = f.session.BiometricCapabilities(ctx)
	require.NoError(t, err)
	assert.False(t, caps.Enabled)

	_, err = f.session.UnlockWithBiometric(ctx)
	assert.True(t, apperror.HasCode(err, apperror.CodeNoBiometricCredential))
}

func TestWalletSession_BiometricDeniedFallsBack(t *testing.T) {
	deny := false
	auth := platform.NewSoftware(func(context.Context) error {
		if deny {
			return ports.ErrPlatformNotAllowed
		}
		return nil
	})
	f := newSessionFixture(t, auth)
	f.withStoredWallet(t)
	ctx := context.Background()

	_, err := f.session.EnableBiometric(ctx, "user-1", "Alice", testPassword)
	require.NoError(t, err)

	deny = true
	_, err = f.session.UnlockWithBiometric(ctx)
	assert.True(t, apperror.HasCode(err, apperror.CodeBiometricDenied))
	assert.True(t, f.session.IsLocked())

	_, err = f.session.UnlockWithPassword(ctx, testPassword)
	assert.NoError(t, err)
}
