package service

import (
	"context"
	"fmt"
	"sync"

	"blaze-custody/internal/core/domain"
	"blaze-custody/internal/core/ports"
	"blaze-custody/pkg/apperror"
	"blaze-custody/pkg/logger"

	"github.com/rs/zerolog"
)

// WalletSessionDeps groups the collaborators of a WalletSession.
// Gate, Biometrics and Audit are optional.
type WalletSessionDeps struct {
	Vault      *MnemonicVault
	Crypto     *PasswordCrypto
	Secrets    ports.SecretRepository
	Addresses  ports.AddressCache
	Limiter    *AttemptLimiter
	Monitor    *ActivityMonitor
	Gate       *BiometricGate
	Biometrics *BiometricSecretStore
	Audit      ports.AuditService
}

// WalletSession owns the process-wide wallet runtime state. The resident
// wallet is only replaced or wiped under mu, so concurrent unlocks cannot
// race on the in-memory mnemonic.
type WalletSession struct {
	mu     sync.Mutex
	wallet *HDWallet // nil while locked

	deps WalletSessionDeps
	log  zerolog.Logger
}

var (
	_ ports.WalletService = (*WalletSession)(nil)
	_ Lockable            = (*WalletSession)(nil)
)

// NewWalletSession creates a locked session and attaches it to the
// activity monitor.
func NewWalletSession(deps WalletSessionDeps, log zerolog.Logger) *WalletSession {
	s := &WalletSession{
		deps: deps,
		log:  logger.Component(log, "wallet-session"),
	}
	deps.Monitor.Attach(s)
	return s
}

// Generate creates a fresh wallet and makes it resident. The phrase is
// returned once for backup and is persisted only by SetPassword. A stored
// wallet blocks generation with WAL_007 unless reset is set.
func (s *WalletSession) Generate(ctx context.Context, reset bool) (*ports.GeneratedWallet, error) {
	phrase, w, err := s.deps.Vault.Generate()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	err = s.claimLocked(ctx, reset)
	if err == nil {
		s.replaceLocked(ctx, w)
	}
	s.mu.Unlock()
	if err != nil {
		w.Wipe()
		return nil, err
	}

	s.log.Info().Str("address", w.Address()).Msg("wallet generated")
	s.audit(ctx, domain.AuditActionWalletCreated, w.Address())
	return &ports.GeneratedWallet{Mnemonic: phrase, Wallet: w}, nil
}

// Import restores a wallet from its phrase. With reset it is the recovery
// path for a forgotten password: the stored wallet is deleted and the
// failed-attempt counter cleared.
func (s *WalletSession) Import(ctx context.Context, phrase string, reset bool) (ports.Wallet, error) {
	w, err := s.deps.Vault.ImportFrom(phrase)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	err = s.claimLocked(ctx, reset)
	if err == nil {
		s.replaceLocked(ctx, w)
	}
	s.mu.Unlock()
	if err != nil {
		w.Wipe()
		return nil, err
	}

	if err := s.deps.Limiter.Reset(ctx, unlockAttemptKey); err != nil {
		s.log.Warn().Err(err).Msg("failed to reset unlock attempts")
	}

	s.log.Info().Str("address", w.Address()).Msg("wallet imported")
	s.audit(ctx, domain.AuditActionWalletImported, w.Address())
	return w, nil
}

// SetPassword seals the resident mnemonic under password and stores the
// password verifier next to it. It only completes a new wallet; a stored
// one is re-keyed through ChangePassword.
func (s *WalletSession) SetPassword(ctx context.Context, password string) error {
	if err := ValidatePasswordStrength(password); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stored, err := s.storedLocked(ctx)
	if err != nil {
		return err
	}
	if stored {
		return apperror.ErrWalletExists()
	}
	if s.wallet == nil {
		return apperror.ErrWalletLocked()
	}
	phrase, err := s.wallet.mnemonicPhrase()
	if err != nil {
		return err
	}
	if err := s.sealLocked(ctx, phrase, password); err != nil {
		return err
	}

	s.audit(ctx, domain.AuditActionPasswordSet, s.wallet.Address())
	return nil
}

// ChangePassword re-seals the stored mnemonic under newPassword. It works
// whether or not the wallet is unlocked.
func (s *WalletSession) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	if err := ValidatePasswordStrength(newPassword); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	w, err := s.openLocked(ctx, oldPassword)
	if err != nil {
		return err
	}
	phrase, err := w.mnemonicPhrase()
	w.Wipe()
	if err != nil {
		return err
	}
	if err := s.sealLocked(ctx, phrase, newPassword); err != nil {
		return err
	}

	s.log.Info().Msg("wallet password changed")
	s.audit(ctx, domain.AuditActionPasswordChanged, w.Address())
	return nil
}

// UnlockWithPassword verifies password, decrypts the mnemonic and makes the
// derived wallet resident.
func (s *WalletSession) UnlockWithPassword(ctx context.Context, password string) (ports.Wallet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, err := s.openLocked(ctx, password)
	if err != nil {
		return nil, err
	}
	s.replaceLocked(ctx, w)

	s.log.Info().Str("address", w.Address()).Msg("wallet unlocked")
	s.audit(ctx, domain.AuditActionUnlock, w.Address())
	return w, nil
}

// UnlockWithBiometric retrieves the sealed password behind a biometric
// assertion and unlocks with it. Biometric errors are returned typed so the
// caller can fall back to the password prompt.
func (s *WalletSession) UnlockWithBiometric(ctx context.Context) (ports.Wallet, error) {
	if s.deps.Biometrics == nil || s.deps.Gate == nil || !s.deps.Gate.Available(ctx) {
		return nil, apperror.ErrBiometricUnavailable()
	}

	password, err := s.deps.Biometrics.RetrieveSecret(ctx)
	if err != nil {
		s.log.Info().Str("error_code", apperror.Code(err)).Msg("biometric unlock failed, password fallback")
		return nil, err
	}
	return s.UnlockWithPassword(ctx, password)
}

// Lock wipes the resident wallet.
func (s *WalletSession) Lock(ctx context.Context) {
	s.lock(ctx, domain.AuditActionLock)
}

// LockIdle is the auto-lock entry point used by the activity monitor. The
// idle check is repeated under mu: an unlock that lands between the
// monitor's tick and this call has recorded activity and is left alone.
func (s *WalletSession) LockIdle(ctx context.Context) bool {
	s.mu.Lock()
	if s.wallet == nil || !s.deps.Monitor.Idle() {
		s.mu.Unlock()
		return false
	}
	w := s.wallet
	s.wallet = nil
	s.mu.Unlock()

	s.wiped(ctx, w, domain.AuditActionAutoLock)
	return true
}

// IsLocked reports whether no wallet is resident.
func (s *WalletSession) IsLocked() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wallet == nil
}

// CurrentWallet returns the resident wallet.
func (s *WalletSession) CurrentWallet() (ports.Wallet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.wallet == nil {
		return nil, apperror.ErrWalletLocked()
	}
	return s.wallet, nil
}

// State returns a snapshot of the runtime state. While locked the address
// comes from the address cache.
func (s *WalletSession) State(ctx context.Context) (*domain.WalletState, error) {
	record, err := s.deps.Secrets.GetPasswordRecord(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("loading password record: %w", err))
	}

	s.mu.Lock()
	w := s.wallet
	s.mu.Unlock()

	state := &domain.WalletState{
		IsLocked:     w == nil,
		HasWallet:    record != "" || w != nil,
		LastActivity: s.deps.Monitor.LastActivity(),
	}

	if w != nil {
		state.Addresses = w.Addresses()
	} else if state.HasWallet {
		cached, err := s.deps.Addresses.Get(ctx)
		if err != nil {
			s.log.Warn().Err(err).Msg("address cache read failed")
		}
		state.Addresses = cached
	}
	state.Address = state.Addresses[domain.ChainEthereum]
	return state, nil
}

// RecordActivity stamps the activity monitor.
func (s *WalletSession) RecordActivity() {
	s.deps.Monitor.RecordActivity()
}

// BiometricCapabilities reports device support and enrollment.
func (s *WalletSession) BiometricCapabilities(ctx context.Context) (*ports.BiometricCapabilities, error) {
	caps := &ports.BiometricCapabilities{}
	if s.deps.Gate == nil {
		return caps, nil
	}
	caps.Supported = s.deps.Gate.IsSupported(ctx)
	caps.PlatformAvailable = caps.Supported && s.deps.Gate.IsPlatformAuthenticatorAvailable(ctx)

	if s.deps.Biometrics != nil {
		enabled, err := s.deps.Biometrics.HasSecret(ctx)
		if err != nil {
			return nil, err
		}
		caps.Enabled = enabled
	}
	return caps, nil
}

// EnableBiometric verifies password, registers a platform credential and
// seals the password behind it.
func (s *WalletSession) EnableBiometric(ctx context.Context, userID, displayName, password string) (*domain.BiometricCredential, error) {
	if s.deps.Biometrics == nil || s.deps.Gate == nil {
		return nil, apperror.ErrBiometricUnavailable()
	}
	if err := s.verifyPassword(ctx, password); err != nil {
		return nil, err
	}

	cred, err := s.deps.Gate.Register(ctx, userID, displayName)
	if err != nil {
		return nil, err
	}
	if err := s.deps.Biometrics.Enroll(ctx, cred, password); err != nil {
		return nil, err
	}

	s.log.Info().Str("credential_id", logger.ShortID(cred.ID)).Msg("biometric unlock enabled")
	s.audit(ctx, domain.AuditActionBiometricEnabled, cred.ID)
	return cred, nil
}

// DisableBiometric removes every credential and the sealed password.
func (s *WalletSession) DisableBiometric(ctx context.Context) error {
	if s.deps.Biometrics == nil {
		return nil
	}
	if err := s.deps.Biometrics.Clear(ctx); err != nil {
		return err
	}
	s.log.Info().Msg("biometric unlock disabled")
	s.audit(ctx, domain.AuditActionBiometricDisabled, "")
	return nil
}

func (s *WalletSession) lock(ctx context.Context, action domain.AuditAction) {
	s.mu.Lock()
	w := s.wallet
	s.wallet = nil
	s.mu.Unlock()

	if w != nil {
		s.wiped(ctx, w, action)
	}
}

func (s *WalletSession) wiped(ctx context.Context, w *HDWallet, action domain.AuditAction) {
	w.Wipe()
	s.log.Info().Str("reason", string(action)).Msg("wallet locked")
	s.audit(ctx, action, w.Address())
}

// storedLocked reports whether a sealed wallet is persisted. Caller holds mu.
func (s *WalletSession) storedLocked(ctx context.Context) (bool, error) {
	record, err := s.deps.Secrets.GetPasswordRecord(ctx)
	if err != nil {
		return false, apperror.InternalError(fmt.Errorf("loading password record: %w", err))
	}
	return record != "", nil
}

// claimLocked makes room for a new resident wallet. A stored wallet is only
// given up when reset is set. Caller holds mu.
func (s *WalletSession) claimLocked(ctx context.Context, reset bool) error {
	stored, err := s.storedLocked(ctx)
	if err != nil || !stored {
		return err
	}
	if !reset {
		return apperror.ErrWalletExists()
	}
	return s.resetLocked(ctx)
}

// resetLocked removes every persisted trace of the stored wallet: the sealed
// mnemonic and its verifier, the biometric enrollment and the cached
// addresses. Caller holds mu.
func (s *WalletSession) resetLocked(ctx context.Context) error {
	if s.wallet != nil {
		s.wallet.Wipe()
		s.wallet = nil
	}
	if err := s.deps.Secrets.Delete(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("deleting stored wallet: %w", err))
	}
	if s.deps.Biometrics != nil {
		if err := s.deps.Biometrics.Clear(ctx); err != nil {
			return err
		}
	}
	if err := s.deps.Addresses.Clear(ctx); err != nil {
		s.log.Warn().Err(err).Msg("address cache clear failed")
	}

	s.log.Warn().Msg("stored wallet reset")
	s.audit(ctx, domain.AuditActionWalletReset, "")
	return nil
}

func (s *WalletSession) verifyPassword(ctx context.Context, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, err := s.openLocked(ctx, password)
	if err != nil {
		return err
	}
	w.Wipe()
	return nil
}

// openLocked checks the attempt limit, verifies password against the stored
// verifier and only then decrypts and derives the wallet. Caller holds mu.
func (s *WalletSession) openLocked(ctx context.Context, password string) (*HDWallet, error) {
	blocked, err := s.deps.Limiter.Blocked(ctx, unlockAttemptKey)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("checking unlock attempts: %w", err))
	}
	if blocked {
		return nil, apperror.ErrTooManyAttempts()
	}

	record, err := s.deps.Secrets.GetPasswordRecord(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("loading password record: %w", err))
	}
	if record == "" {
		return nil, apperror.ErrNoWallet()
	}

	ok, err := s.deps.Crypto.VerifyPassword(password, record)
	if err != nil {
		s.log.Error().Err(err).Msg("stored password record is malformed")
		return nil, apperror.ErrDecryptionFailed()
	}
	if !ok {
		return nil, s.failAttempt(ctx)
	}

	secret, err := s.deps.Secrets.GetEncryptedSecret(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("loading encrypted secret: %w", err))
	}
	if secret == nil {
		return nil, apperror.ErrNoWallet()
	}

	phrase, err := s.deps.Crypto.Decrypt(secret, password)
	if err != nil {
		s.log.Error().Str("error_code", apperror.Code(err)).Msg("verified password did not open the stored secret")
		return nil, err
	}
	w, err := s.deps.Vault.ImportFrom(phrase)
	if err != nil {
		s.log.Error().Msg("stored secret is not a valid mnemonic")
		return nil, apperror.ErrDecryptionFailed()
	}

	if err := s.deps.Limiter.Reset(ctx, unlockAttemptKey); err != nil {
		s.log.Warn().Err(err).Msg("failed to reset unlock attempts")
	}
	return w, nil
}

func (s *WalletSession) failAttempt(ctx context.Context) error {
	s.audit(ctx, domain.AuditActionUnlockFailed, "")

	remaining, err := s.deps.Limiter.Fail(ctx, unlockAttemptKey)
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to record unlock attempt")
		return apperror.ErrDecryptionFailed()
	}
	s.log.Warn().Int64("remaining", remaining).Msg("wrong wallet password")
	if remaining == 0 {
		return apperror.ErrTooManyAttempts()
	}
	return apperror.ErrDecryptionFailedWithRemaining(remaining)
}

// sealLocked encrypts phrase, persists it with a fresh verifier and
// re-seals the biometric copy of the password if one exists.
func (s *WalletSession) sealLocked(ctx context.Context, phrase, password string) error {
	secret, err := s.deps.Crypto.Encrypt(phrase, password)
	if err != nil {
		return err
	}
	record, err := s.deps.Crypto.HashPassword(password)
	if err != nil {
		return err
	}
	if err := s.deps.Secrets.Save(ctx, secret, record); err != nil {
		return apperror.InternalError(fmt.Errorf("saving encrypted secret: %w", err))
	}

	if s.deps.Biometrics != nil {
		enabled, err := s.deps.Biometrics.HasSecret(ctx)
		if err != nil {
			return err
		}
		if enabled {
			if err := s.deps.Biometrics.StoreSecret(ctx, password); err != nil {
				return err
			}
		}
	}
	return nil
}

// replaceLocked wipes any resident wallet, installs w, caches its addresses
// and counts as activity. Caller holds mu.
func (s *WalletSession) replaceLocked(ctx context.Context, w *HDWallet) {
	if s.wallet != nil && s.wallet != w {
		s.wallet.Wipe()
	}
	s.wallet = w

	if err := s.deps.Addresses.Set(ctx, w.Addresses()); err != nil {
		s.log.Warn().Err(err).Msg("address cache write failed")
	}
	s.deps.Monitor.RecordActivity()
}

func (s *WalletSession) audit(ctx context.Context, action domain.AuditAction, resourceID string) {
	if s.deps.Audit == nil {
		return
	}
	s.deps.Audit.Log(ctx, domain.NewAuditLog(action, "wallet", resourceID))
}
