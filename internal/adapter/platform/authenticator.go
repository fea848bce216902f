// Package platform provides PlatformAuthenticator implementations for hosts
// without a browser WebAuthn bridge.
package platform

import (
	"bytes"
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"encoding/base64"
	"fmt"
	"slices"
	"sync"

	"blaze-custody/internal/core/domain"
	"blaze-custody/internal/core/ports"
)

var (
	_ ports.PlatformAuthenticator = Unavailable{}
	_ ports.PlatformAuthenticator = (*Software)(nil)
)

// Unavailable reports no WebAuthn support. Headless hosts use it so every
// biometric flow routes to the password fallback.
type Unavailable struct{}

func (Unavailable) IsSupported(context.Context) bool { return false }

func (Unavailable) IsPlatformAuthenticatorAvailable(context.Context) (bool, error) {
	return false, nil
}

func (Unavailable) CreateCredential(context.Context, domain.CredentialCreationOptions) (*domain.AttestedCredential, error) {
	return nil, ports.ErrPlatformNotSupported
}

func (Unavailable) GetAssertion(context.Context, domain.CredentialRequestOptions) (*domain.Assertion, error) {
	return nil, ports.ErrPlatformNotSupported
}

// Decision simulates the user's answer to a ceremony prompt. Returning
// ports.ErrPlatformNotAllowed models a dismissed prompt.
type Decision func(ctx context.Context) error

// Software is an in-process platform authenticator holding P-256 keys. It
// always performs user verification and is meant for development hosts.
type Software struct {
	mu     sync.Mutex
	keys   map[string]*softwareCredential
	decide Decision
}

type softwareCredential struct {
	key     *ecdsa.PrivateKey
	rpID    string
	counter uint32
}

// NewSoftware creates a software authenticator. decide may be nil to
// approve every prompt.
func NewSoftware(decide Decision) *Software {
	return &Software{keys: make(map[string]*softwareCredential), decide: decide}
}

func (s *Software) IsSupported(context.Context) bool { return true }

func (s *Software) IsPlatformAuthenticatorAvailable(context.Context) (bool, error) {
	return true, nil
}

func (s *Software) CreateCredential(ctx context.Context, opts domain.CredentialCreationOptions) (*domain.AttestedCredential, error) {
	if opts.Attachment == domain.AttachmentCrossPlatform {
		return nil, ports.ErrPlatformNotSupported
	}
	if !slices.Contains(opts.Algorithms, domain.COSEAlgES256) {
		return nil, ports.ErrPlatformNotSupported
	}
	if len(opts.Challenge) == 0 || opts.RPID == "" {
		return nil, ports.ErrPlatformSecurity
	}
	if err := s.prompt(ctx); err != nil {
		return nil, err
	}

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generating credential key: %w", err)
	}
	pub, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("encoding public key: %w", err)
	}

	rawID := make([]byte, 16)
	if _, err := rand.Read(rawID); err != nil {
		return nil, fmt.Errorf("generating credential id: %w", err)
	}
	id := base64.RawURLEncoding.EncodeToString(rawID)

	s.mu.Lock()
	s.keys[id] = &softwareCredential{key: key, rpID: opts.RPID}
	s.mu.Unlock()

	return &domain.AttestedCredential{ID: id, PublicKey: pub}, nil
}

func (s *Software) GetAssertion(ctx context.Context, opts domain.CredentialRequestOptions) (*domain.Assertion, error) {
	if len(opts.Challenge) == 0 {
		return nil, ports.ErrPlatformSecurity
	}

	s.mu.Lock()
	var id string
	var cred *softwareCredential
	for _, allowed := range opts.AllowCredentials {
		if c, ok := s.keys[allowed]; ok {
			id, cred = allowed, c
			break
		}
	}
	s.mu.Unlock()

	if cred == nil {
		return nil, ports.ErrPlatformNotAllowed
	}
	if cred.rpID != opts.RPID {
		return nil, ports.ErrPlatformSecurity
	}
	if err := s.prompt(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	cred.counter++
	counter := cred.counter
	s.mu.Unlock()

	return &domain.Assertion{
		CredentialID: id,
		Challenge:    bytes.Clone(opts.Challenge),
		Counter:      counter,
		UserVerified: true,
	}, nil
}

func (s *Software) prompt(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return ports.ErrPlatformAborted
	}
	if s.decide == nil {
		return nil
	}
	return s.decide(ctx)
}
