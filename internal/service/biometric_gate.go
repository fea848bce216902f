package service

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
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
)

const challengeLen = 32

// BiometricGateConfig names the relying party and bounds each ceremony.
type BiometricGateConfig struct {
	RPID    string
	RPName  string
	Timeout time.Duration
}

// BiometricGate wraps the platform authenticator: capability probing,
// credential registration and assertion. It proves user presence only and
// never protects a secret on its own.
type BiometricGate struct {
	platform ports.PlatformAuthenticator
	cfg      BiometricGateConfig
	rand     io.Reader
	now      func() time.Time
	log      zerolog.Logger
}

// NewBiometricGate creates a gate over platform.
func NewBiometricGate(platform ports.PlatformAuthenticator, cfg BiometricGateConfig, log zerolog.Logger) *BiometricGate {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	return &BiometricGate{
		platform: platform,
		cfg:      cfg,
		rand:     rand.Reader,
		now:      time.Now,
		log:      logger.Component(log, "biometric-gate"),
	}
}

// IsSupported reports whether the host exposes WebAuthn at all.
func (g *BiometricGate) IsSupported(ctx context.Context) bool {
	return g.platform != nil && g.platform.IsSupported(ctx)
}

// IsPlatformAuthenticatorAvailable reports whether a built-in authenticator
// with user verification is present. Probe errors count as unavailable.
func (g *BiometricGate) IsPlatformAuthenticatorAvailable(ctx context.Context) bool {
	if !g.IsSupported(ctx) {
		return false
	}
	ok, err := g.platform.IsPlatformAuthenticatorAvailable(ctx)
	if err != nil {
		g.log.Warn().Err(err).Msg("platform authenticator probe failed")
		return false
	}
	return ok
}

// Available is true only when both probes succeed.
func (g *BiometricGate) Available(ctx context.Context) bool {
	return g.IsPlatformAuthenticatorAvailable(ctx)
}

// Register creates a platform-attached credential with required user
// verification. Roaming authenticators are excluded.
func (g *BiometricGate) Register(ctx context.Context, userID, displayName string) (*domain.BiometricCredential, error) {
	if !g.Available(ctx) {
		return nil, apperror.ErrBiometricUnavailable()
	}

	challenge, err := g.challenge()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, g.cfg.Timeout)
	defer cancel()

	attested, err := g.platform.CreateCredential(ctx, domain.CredentialCreationOptions{
		Challenge:        challenge,
		RPID:             g.cfg.RPID,
		RPName:           g.cfg.RPName,
		UserID:           []byte(userID),
		UserName:         userID,
		DisplayName:      displayName,
		Algorithms:       []int{domain.COSEAlgES256, domain.COSEAlgRS256},
		Attachment:       domain.AttachmentPlatform,
		UserVerification: domain.UserVerificationRequired,
		Timeout:          g.cfg.Timeout,
	})
	if err != nil {
		return nil, g.classify(ctx, err, "register")
	}
	if attested == nil || attested.ID == "" {
		return nil, apperror.ErrAuthenticationFailed(errors.New("authenticator returned no credential"))
	}

	g.log.Info().Str("credential_id", logger.ShortID(attested.ID)).Msg("biometric credential registered")

	return &domain.BiometricCredential{
		ID:        attested.ID,
		PublicKey: base64.StdEncoding.EncodeToString(attested.PublicKey),
		Counter:   attested.Counter,
		CreatedAt: g.now().UTC(),
	}, nil
}

// Authenticate runs an assertion scoped to credentialID with a fresh
// challenge. The returned assertion echoes the challenge and credential.
func (g *BiometricGate) Authenticate(ctx context.Context, credentialID string) (*domain.Assertion, error) {
	if !g.Available(ctx) {
		return nil, apperror.ErrBiometricUnavailable()
	}

	challenge, err := g.challenge()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, g.cfg.Timeout)
	defer cancel()

	assertion, err := g.platform.GetAssertion(ctx, domain.CredentialRequestOptions{
		Challenge:        challenge,
		RPID:             g.cfg.RPID,
		AllowCredentials: []string{credentialID},
		UserVerification: domain.UserVerificationRequired,
		Timeout:          g.cfg.Timeout,
	})
	if err != nil {
		return nil, g.classify(ctx, err, "authenticate")
	}

	switch {
	case assertion == nil:
		return nil, apperror.ErrAuthenticationFailed(errors.New("authenticator returned no assertion"))
	case assertion.CredentialID != credentialID:
		return nil, apperror.ErrBiometricSecurity(errors.New("assertion for unexpected credential"))
	case subtle.ConstantTimeCompare(assertion.Challenge, challenge) != 1:
		return nil, apperror.ErrBiometricSecurity(errors.New("assertion challenge mismatch"))
	case !assertion.UserVerified:
		return nil, apperror.ErrAuthenticationFailed(errors.New("user verification not performed"))
	}

	g.log.Debug().Str("credential_id", logger.ShortID(credentialID)).Msg("biometric assertion verified")
	return assertion, nil
}

func (g *BiometricGate) challenge() ([]byte, error) {
	b := make([]byte, challengeLen)
	if _, err := io.ReadFull(g.rand, b); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("generating challenge: %w", err))
	}
	return b, nil
}

// classify maps platform failures onto the biometric error taxonomy.
// A ceremony that hit its deadline is a cancellation.
func (g *BiometricGate) classify(ctx context.Context, err error, op string) error {
	var mapped *apperror.AppError
	switch {
	case errors.Is(err, ports.ErrPlatformNotAllowed):
		mapped = apperror.ErrBiometricDenied(err)
	case errors.Is(err, ports.ErrPlatformAborted),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded),
		ctx.Err() != nil:
		mapped = apperror.ErrBiometricCancelled(err)
	case errors.Is(err, ports.ErrPlatformNotSupported):
		mapped = apperror.ErrBiometricNotSupported(err)
	case errors.Is(err, ports.ErrPlatformSecurity):
		mapped = apperror.ErrBiometricSecurity(err)
	default:
		mapped = apperror.ErrAuthenticationFailed(err)
	}
	g.log.Warn().Str("op", op).Str("error_code", mapped.Code).Msg("biometric ceremony failed")
	return mapped
}
