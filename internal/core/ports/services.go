package ports

import (
	"context"
	"errors"
	"time"

	"blaze-custody/internal/core/domain"
)

// Errors a PlatformAuthenticator returns for the WebAuthn DOMException
// classes the gate distinguishes. Anything else is an unclassified failure.
var (
	ErrPlatformNotAllowed   = errors.New("platform authenticator: not allowed")
	ErrPlatformNotSupported = errors.New("platform authenticator: not supported")
	ErrPlatformSecurity     = errors.New("platform authenticator: security error")
	ErrPlatformAborted      = errors.New("platform authenticator: aborted")
)

// PlatformAuthenticator is the host's WebAuthn/FIDO2 surface.
type PlatformAuthenticator interface {
	IsSupported(ctx context.Context) bool
	IsPlatformAuthenticatorAvailable(ctx context.Context) (bool, error)
	CreateCredential(ctx context.Context, opts domain.CredentialCreationOptions) (*domain.AttestedCredential, error)
	GetAssertion(ctx context.Context, opts domain.CredentialRequestOptions) (*domain.Assertion, error)
}

// DeviceKeyring hands out the device-held key used to seal biometric secrets.
// The key is created on first use and stable afterwards.
type DeviceKeyring interface {
	DeviceKey(ctx context.Context) ([]byte, error)
}

// NonceStore manages one-time values for replay prevention.
type NonceStore interface {
	// CheckAndSet atomically checks if nonce exists in scope, sets it if not.
	// Returns true if nonce is new (valid), false if already used.
	CheckAndSet(ctx context.Context, scope string, nonce string, ttl time.Duration) (bool, error)
}

// AttemptStore counts failed attempts per key inside a rolling window.
type AttemptStore interface {
	// Increment records a failure and returns the count in the current window.
	Increment(ctx context.Context, key string, window time.Duration) (int64, error)
	Count(ctx context.Context, key string) (int64, error)
	Reset(ctx context.Context, key string) error
}

// RateLimitStore manages sliding window rate limiting for HTTP routes.
type RateLimitStore interface {
	// Allow checks if a request is allowed under the rate limit.
	// Returns (allowed, remaining, error).
	Allow(ctx context.Context, key string, limit int64, window time.Duration) (bool, int64, error)
}

// QRRenderer turns a UTF-8 payload into a scannable PNG image.
type QRRenderer interface {
	RenderPNG(payload string, size int) ([]byte, error)
}

// TokenService issues login tokens for approved QR sessions.
type TokenService interface {
	Generate(identity string, sessionID string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	Identity  string
	SessionID string
}

// AuditService writes audit trail entries without blocking the caller.
type AuditService interface {
	Log(ctx context.Context, entry *domain.AuditLog)
}

// --- Service Ports (Business Logic) ---

// Wallet is an unlocked, signing-capable wallet handle.
type Wallet interface {
	Address() string
	Addresses() map[domain.Chain]string
	PublicKeyHex() string
	// SignMessage produces an EIP-191 personal_sign signature.
	SignMessage(msg []byte) ([]byte, error)
}

// GeneratedWallet is returned once by Generate so the phrase can be backed up.
type GeneratedWallet struct {
	Mnemonic string
	Wallet   Wallet
}

// BiometricCapabilities reports what the device offers.
type BiometricCapabilities struct {
	Supported         bool `json:"supported"`
	PlatformAvailable bool `json:"platformAvailable"`
	Enabled           bool `json:"enabled"`
}

// WalletService is the wallet session controller surface.
type WalletService interface {
	// Generate and Import refuse to replace a stored wallet (WAL_007)
	// unless reset is set, in which case the stored wallet is deleted.
	Generate(ctx context.Context, reset bool) (*GeneratedWallet, error)
	Import(ctx context.Context, phrase string, reset bool) (Wallet, error)
	SetPassword(ctx context.Context, password string) error
	ChangePassword(ctx context.Context, oldPassword, newPassword string) error
	UnlockWithPassword(ctx context.Context, password string) (Wallet, error)
	UnlockWithBiometric(ctx context.Context) (Wallet, error)
	Lock(ctx context.Context)
	// CurrentWallet returns the resident wallet or WAL_003 while locked.
	CurrentWallet() (Wallet, error)
	State(ctx context.Context) (*domain.WalletState, error)
	RecordActivity()

	BiometricCapabilities(ctx context.Context) (*BiometricCapabilities, error)
	EnableBiometric(ctx context.Context, userID, displayName, password string) (*domain.BiometricCredential, error)
	DisableBiometric(ctx context.Context) error
}

// CreatedSession is what the initiating device renders as a QR code.
type CreatedSession struct {
	Session   domain.LoginSession
	Payload   domain.LoginPayload
	QRPayload string
}

// LoginBroker is the cross-device QR login surface.
type LoginBroker interface {
	CreateSession(ctx context.Context, device domain.DeviceInfo) (*CreatedSession, error)
	CheckStatus(sessionID string) (*domain.LoginSession, bool)
	Approve(sessionID, identity string) bool
	Reject(sessionID string) bool
	ApproveFromPayload(ctx context.Context, payload *domain.LoginPayload, identity string) (*domain.LoginSession, error)
	WaitForApproval(ctx context.Context, sessionID string, timeout time.Duration) (*domain.LoginSession, error)
	Redeem(sessionID, challenge string) (*domain.LoginSession, error)
	Release(sessionID string)
	QRPayload(sessionID string) (string, error)
}
