package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction represents the type of audited custody action.
type AuditAction string

const (
	AuditActionWalletCreated     AuditAction = "WALLET_CREATED"
	AuditActionWalletImported    AuditAction = "WALLET_IMPORTED"
	AuditActionWalletReset       AuditAction = "WALLET_RESET"
	AuditActionPasswordSet       AuditAction = "PASSWORD_SET"
	AuditActionPasswordChanged   AuditAction = "PASSWORD_CHANGED"
	AuditActionUnlock            AuditAction = "UNLOCK"
	AuditActionUnlockFailed      AuditAction = "UNLOCK_FAILED"
	AuditActionLock              AuditAction = "LOCK"
	AuditActionAutoLock          AuditAction = "AUTO_LOCK"
	AuditActionBiometricEnabled  AuditAction = "BIOMETRIC_ENABLED"
	AuditActionBiometricDisabled AuditAction = "BIOMETRIC_DISABLED"
	AuditActionQRApproved        AuditAction = "QR_APPROVED"
	AuditActionQRRejected        AuditAction = "QR_REJECTED"
	AuditActionQRSessionCreated  AuditAction = "QR_SESSION_CREATED"
	AuditActionQRSessionReleased AuditAction = "QR_SESSION_RELEASED"
	AuditActionQRTokenIssued     AuditAction = "QR_TOKEN_ISSUED"
)

// AuditLog records a single audited action. Details never carry secrets.
type AuditLog struct {
	ID           uuid.UUID   `json:"id"`
	Action       AuditAction `json:"action"`
	ResourceType string      `json:"resource_type"`
	ResourceID   string      `json:"resource_id,omitempty"`
	Details      string      `json:"details,omitempty"` // JSON string
	IPAddress    string      `json:"ip_address,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
}

// NewAuditLog stamps a new entry with an id and the current time.
func NewAuditLog(action AuditAction, resourceType, resourceID string) *AuditLog {
	return &AuditLog{
		ID:           uuid.New(),
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		CreatedAt:    time.Now().UTC(),
	}
}
