package service

import (
	"context"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"time"

	"blaze-custody/internal/core/domain"
	"blaze-custody/internal/core/ports"
	"blaze-custody/pkg/apperror"
	"blaze-custody/pkg/logger"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/hkdf"
)

const sealInfo = "blaze-custody/biometric-seal/v1"

// BiometricSecretStore keeps the device password sealed under a key bound
// to the device keyring and the first registered credential. The sealed
// value is only opened after a successful assertion for that credential.
type BiometricSecretStore struct {
	gate    *BiometricGate
	creds   ports.CredentialRepository
	sealed  ports.SealedSecretRepository
	keyring ports.DeviceKeyring
	rand    io.Reader
	now     func() time.Time
	log     zerolog.Logger
}

// NewBiometricSecretStore creates a store.
func NewBiometricSecretStore(
	gate *BiometricGate,
	creds ports.CredentialRepository,
	sealed ports.SealedSecretRepository,
	keyring ports.DeviceKeyring,
	log zerolog.Logger,
) *BiometricSecretStore {
	return &BiometricSecretStore{
		gate:    gate,
		creds:   creds,
		sealed:  sealed,
		keyring: keyring,
		rand:    rand.Reader,
		now:     time.Now,
		log:     logger.Component(log, "biometric-store"),
	}
}

// StoreSecret seals secret for the first registered credential.
func (s *BiometricSecretStore) StoreSecret(ctx context.Context, secret string) error {
	cred, err := s.primaryCredential(ctx)
	if err != nil {
		return err
	}

	aead, err := s.aead(ctx, cred.ID)
	if err != nil {
		return err
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := io.ReadFull(s.rand, nonce); err != nil {
		return apperror.ErrEncryptionFailure(fmt.Errorf("generating nonce: %w", err))
	}
	ciphertext := aead.Seal(nil, nonce, []byte(secret), []byte(cred.ID))

	if err := s.sealed.Save(ctx, &domain.SealedSecret{
		CredentialID: cred.ID,
		Nonce:        base64.StdEncoding.EncodeToString(nonce),
		Ciphertext:   base64.StdEncoding.EncodeToString(ciphertext),
		CreatedAt:    s.now().UTC(),
	}); err != nil {
		return apperror.InternalError(fmt.Errorf("saving sealed secret: %w", err))
	}

	s.log.Info().Str("credential_id", logger.ShortID(cred.ID)).Msg("secret sealed")
	return nil
}

// RetrieveSecret authenticates against the first credential and opens the
// sealed secret.
func (s *BiometricSecretStore) RetrieveSecret(ctx context.Context) (string, error) {
	cred, err := s.primaryCredential(ctx)
	if err != nil {
		return "", err
	}

	// The gate already classifies its failures; keeping that code lets the
	// caller retry a cancelled prompt but fall back after a denial.
	assertion, err := s.gate.Authenticate(ctx, cred.ID)
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			return "", err
		}
		return "", apperror.ErrAuthenticationFailed(err)
	}

	stored, err := s.sealed.Get(ctx)
	if err != nil {
		return "", apperror.InternalError(fmt.Errorf("loading sealed secret: %w", err))
	}
	if stored == nil || stored.CredentialID != cred.ID {
		return "", apperror.ErrNoStoredSecret()
	}

	nonce, err := base64.StdEncoding.DecodeString(stored.Nonce)
	if err != nil {
		return "", apperror.ErrNoStoredSecret()
	}
	ciphertext, err := base64.StdEncoding.DecodeString(stored.Ciphertext)
	if err != nil {
		return "", apperror.ErrNoStoredSecret()
	}

	aead, err := s.aead(ctx, cred.ID)
	if err != nil {
		return "", err
	}
	if len(nonce) != aead.NonceSize() {
		return "", apperror.ErrNoStoredSecret()
	}
	plain, err := aead.Open(nil, nonce, ciphertext, []byte(cred.ID))
	if err != nil {
		s.log.Warn().Str("credential_id", logger.ShortID(cred.ID)).Msg("sealed secret did not open")
		return "", apperror.ErrNoStoredSecret()
	}
	defer wipe(plain)

	if err := s.creds.MarkUsed(ctx, cred.ID, assertion.Counter, s.now().UTC()); err != nil {
		s.log.Warn().Err(err).Msg("failed to record credential use")
	}
	return string(plain), nil
}

// Enroll replaces any previous enrollment with cred and seals secret for it.
func (s *BiometricSecretStore) Enroll(ctx context.Context, cred *domain.BiometricCredential, secret string) error {
	if err := s.Clear(ctx); err != nil {
		return err
	}
	if err := s.creds.Add(ctx, cred); err != nil {
		return apperror.InternalError(fmt.Errorf("saving credential: %w", err))
	}
	return s.StoreSecret(ctx, secret)
}

// HasSecret reports whether a sealed secret exists.
func (s *BiometricSecretStore) HasSecret(ctx context.Context) (bool, error) {
	stored, err := s.sealed.Get(ctx)
	if err != nil {
		return false, apperror.InternalError(err)
	}
	return stored != nil, nil
}

// Clear removes the sealed secret and every registered credential.
func (s *BiometricSecretStore) Clear(ctx context.Context) error {
	if err := s.sealed.Delete(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("deleting sealed secret: %w", err))
	}
	if err := s.creds.DeleteAll(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("deleting credentials: %w", err))
	}
	return nil
}

// primaryCredential returns the first stored credential; others are kept
// but unused.
func (s *BiometricSecretStore) primaryCredential(ctx context.Context) (*domain.BiometricCredential, error) {
	creds, err := s.creds.List(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("listing credentials: %w", err))
	}
	if len(creds) == 0 {
		return nil, apperror.ErrNoBiometricCredential()
	}
	return &creds[0], nil
}

// aead derives the XChaCha20-Poly1305 key from the device key with the
// credential id as HKDF salt.
func (s *BiometricSecretStore) aead(ctx context.Context, credentialID string) (cipher.AEAD, error) {
	deviceKey, err := s.keyring.DeviceKey(ctx)
	if err != nil {
		return nil, apperror.ErrEncryptionFailure(fmt.Errorf("loading device key: %w", err))
	}

	key := make([]byte, chacha20poly1305.KeySize)
	defer wipe(key)
	kdf := hkdf.New(sha256.New, deviceKey, []byte(credentialID), []byte(sealInfo))
	if _, err := io.ReadFull(kdf, key); err != nil {
		return nil, apperror.ErrEncryptionFailure(fmt.Errorf("deriving seal key: %w", err))
	}

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, apperror.ErrEncryptionFailure(err)
	}
	return aead, nil
}
