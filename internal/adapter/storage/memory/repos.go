// Package memory holds in-process implementations of the storage ports.
// They back the single-device mode and the service tests.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"blaze-custody/internal/core/domain"
	"blaze-custody/internal/core/ports"
)

var (
	_ ports.SecretRepository       = (*SecretRepo)(nil)
	_ ports.CredentialRepository   = (*CredentialRepo)(nil)
	_ ports.SealedSecretRepository = (*SealedSecretRepo)(nil)
	_ ports.AddressCache           = (*AddressCache)(nil)
	_ ports.AuditRepository        = (*AuditRepo)(nil)
)

// --- Secret Repo ---

type SecretRepo struct {
	mu     sync.RWMutex
	secret *domain.EncryptedSecret
	record domain.PasswordRecord
}

func NewSecretRepo() *SecretRepo {
	return &SecretRepo{}
}

func (r *SecretRepo) Save(ctx context.Context, secret *domain.EncryptedSecret, record domain.PasswordRecord) error {
	if secret == nil || record == "" {
		return fmt.Errorf("secret and password record are required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *secret
	r.secret = &cp
	r.record = record
	return nil
}

func (r *SecretRepo) GetEncryptedSecret(ctx context.Context) (*domain.EncryptedSecret, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.secret == nil {
		return nil, nil
	}
	cp := *r.secret
	return &cp, nil
}

func (r *SecretRepo) GetPasswordRecord(ctx context.Context) (domain.PasswordRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.record, nil
}

func (r *SecretRepo) Delete(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.secret = nil
	r.record = ""
	return nil
}

// --- Credential Repo ---

type CredentialRepo struct {
	mu    sync.RWMutex
	creds []domain.BiometricCredential
}

func NewCredentialRepo() *CredentialRepo {
	return &CredentialRepo{}
}

func (r *CredentialRepo) List(ctx context.Context) ([]domain.BiometricCredential, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.BiometricCredential, len(r.creds))
	copy(out, r.creds)
	return out, nil
}

func (r *CredentialRepo) Add(ctx context.Context, cred *domain.BiometricCredential) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.creds {
		if existing.ID == cred.ID {
			return fmt.Errorf("credential already registered")
		}
	}
	r.creds = append(r.creds, *cred)
	return nil
}

func (r *CredentialRepo) MarkUsed(ctx context.Context, id string, counter uint32, usedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.creds {
		if r.creds[i].ID == id {
			used := usedAt
			r.creds[i].Counter = counter
			r.creds[i].LastUsed = &used
			return nil
		}
	}
	return fmt.Errorf("credential not found")
}

func (r *CredentialRepo) DeleteAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.creds = nil
	return nil
}

// --- Sealed Secret Repo ---

type SealedSecretRepo struct {
	mu     sync.RWMutex
	sealed *domain.SealedSecret
}

func NewSealedSecretRepo() *SealedSecretRepo {
	return &SealedSecretRepo{}
}

func (r *SealedSecretRepo) Get(ctx context.Context) (*domain.SealedSecret, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.sealed == nil {
		return nil, nil
	}
	cp := *r.sealed
	return &cp, nil
}

func (r *SealedSecretRepo) Save(ctx context.Context, secret *domain.SealedSecret) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *secret
	r.sealed = &cp
	return nil
}

func (r *SealedSecretRepo) Delete(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sealed = nil
	return nil
}

// --- Address Cache ---

type AddressCache struct {
	mu        sync.RWMutex
	addresses map[domain.Chain]string
}

func NewAddressCache() *AddressCache {
	return &AddressCache{}
}

func (c *AddressCache) Get(ctx context.Context) (map[domain.Chain]string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.addresses == nil {
		return nil, nil
	}
	out := make(map[domain.Chain]string, len(c.addresses))
	for k, v := range c.addresses {
		out[k] = v
	}
	return out, nil
}

func (c *AddressCache) Set(ctx context.Context, addresses map[domain.Chain]string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.addresses = make(map[domain.Chain]string, len(addresses))
	for k, v := range addresses {
		c.addresses[k] = v
	}
	return nil
}

func (c *AddressCache) Clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.addresses = nil
	return nil
}

// --- Audit Repo ---

type AuditRepo struct {
	mu   sync.Mutex
	logs []domain.AuditLog
}

func NewAuditRepo() *AuditRepo {
	return &AuditRepo{}
}

func (r *AuditRepo) Create(ctx context.Context, log *domain.AuditLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logs = append(r.logs, *log)
	return nil
}

// Entries returns a copy of every stored entry.
func (r *AuditRepo) Entries() []domain.AuditLog {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.AuditLog, len(r.logs))
	copy(out, r.logs)
	return out
}
