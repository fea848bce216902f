package domain

import "time"

// BiometricCredential is one registered platform authenticator.
// Only the first stored credential is used for assertions.
type BiometricCredential struct {
	ID        string     `json:"id"`        // base64url credential id
	PublicKey string     `json:"publicKey"` // base64 COSE public key
	Counter   uint32     `json:"counter"`
	CreatedAt time.Time  `json:"createdAt"`
	LastUsed  *time.Time `json:"lastUsed,omitempty"`
}

// AuthenticatorAttachment mirrors the WebAuthn attachment hint.
type AuthenticatorAttachment string

const (
	AttachmentPlatform      AuthenticatorAttachment = "platform"
	AttachmentCrossPlatform AuthenticatorAttachment = "cross-platform"
)

// UserVerification mirrors the WebAuthn user verification requirement.
type UserVerification string

const (
	UserVerificationRequired    UserVerification = "required"
	UserVerificationPreferred   UserVerification = "preferred"
	UserVerificationDiscouraged UserVerification = "discouraged"
)

// COSE algorithm identifiers accepted for new credentials.
const (
	COSEAlgES256 = -7
	COSEAlgRS256 = -257
)

// CredentialCreationOptions is what the gate hands to the platform
// authenticator when registering.
type CredentialCreationOptions struct {
	Challenge        []byte
	RPID             string
	RPName           string
	UserID           []byte
	UserName         string
	DisplayName      string
	Algorithms       []int
	Attachment       AuthenticatorAttachment
	UserVerification UserVerification
	ResidentKey      bool
	Timeout          time.Duration
}

// CredentialRequestOptions is what the gate hands to the platform
// authenticator when asserting.
type CredentialRequestOptions struct {
	Challenge        []byte
	RPID             string
	AllowCredentials []string
	UserVerification UserVerification
	Timeout          time.Duration
}

// AttestedCredential is returned by the platform after registration.
type AttestedCredential struct {
	ID        string
	PublicKey []byte
	Counter   uint32
}

// Assertion is returned by the platform after a successful authentication.
type Assertion struct {
	CredentialID string
	Challenge    []byte
	Counter      uint32
	UserVerified bool
}

// SealedSecret is a device password sealed behind a biometric credential.
// Ciphertext and Nonce are base64.
type SealedSecret struct {
	CredentialID string    `json:"credentialId"`
	Nonce        string    `json:"nonce"`
	Ciphertext   string    `json:"ciphertext"`
	CreatedAt    time.Time `json:"createdAt"`
}
