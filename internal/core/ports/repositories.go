package ports

import (
	"context"
	"time"

	"blaze-custody/internal/core/domain"
)

// SecretRepository persists the password-sealed mnemonic and its password
// verifier. Both live in the same record so they are always written together.
type SecretRepository interface {
	// Save stores the secret and verifier, replacing any previous wallet.
	Save(ctx context.Context, secret *domain.EncryptedSecret, record domain.PasswordRecord) error
	// GetEncryptedSecret returns nil, nil when no wallet is set up.
	GetEncryptedSecret(ctx context.Context) (*domain.EncryptedSecret, error)
	// GetPasswordRecord returns "", nil when no wallet is set up.
	GetPasswordRecord(ctx context.Context) (domain.PasswordRecord, error)
	Delete(ctx context.Context) error
}

// CredentialRepository persists registered platform authenticators.
// List returns credentials in registration order.
type CredentialRepository interface {
	List(ctx context.Context) ([]domain.BiometricCredential, error)
	Add(ctx context.Context, cred *domain.BiometricCredential) error
	MarkUsed(ctx context.Context, id string, counter uint32, usedAt time.Time) error
	DeleteAll(ctx context.Context) error
}

// SealedSecretRepository persists the biometric-bound password.
type SealedSecretRepository interface {
	// Get returns nil, nil when nothing is stored.
	Get(ctx context.Context) (*domain.SealedSecret, error)
	Save(ctx context.Context, secret *domain.SealedSecret) error
	Delete(ctx context.Context) error
}

// AddressCache keeps derived addresses available while the wallet is locked.
type AddressCache interface {
	// Get returns nil, nil on a cache miss.
	Get(ctx context.Context) (map[domain.Chain]string, error)
	Set(ctx context.Context, addresses map[domain.Chain]string) error
	Clear(ctx context.Context) error
}

// AuditRepository persists audit log entries.
type AuditRepository interface {
	Create(ctx context.Context, log *domain.AuditLog) error
}
