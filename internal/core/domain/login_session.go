package domain

import "time"

// LoginPayloadType is the fixed discriminator carried in every QR payload.
const LoginPayloadType = "blaze-login"

// LoginStatus is the state of a cross-device login session.
type LoginStatus string

const (
	LoginStatusPending  LoginStatus = "pending"
	LoginStatusApproved LoginStatus = "approved"
	LoginStatusRejected LoginStatus = "rejected"
	LoginStatusExpired  LoginStatus = "expired"
)

// IsTerminal returns true once the status can no longer change.
func (s LoginStatus) IsTerminal() bool {
	return s == LoginStatusApproved || s == LoginStatusRejected || s == LoginStatusExpired
}

// CanTransition reports whether from -> to is allowed. Only pending
// sessions move, and nothing moves back to pending.
func CanTransition(from, to LoginStatus) bool {
	if from != LoginStatusPending {
		return false
	}
	return to == LoginStatusApproved || to == LoginStatusRejected || to == LoginStatusExpired
}

// DeviceInfo describes the device that started a login session.
type DeviceInfo struct {
	Name      string `json:"name,omitempty"`
	UserAgent string `json:"userAgent,omitempty"`
	Platform  string `json:"platform,omitempty"`
	IPAddress string `json:"ipAddress,omitempty"`
}

// LoginSession is one QR login attempt. Challenge is secret to the
// initiating device and the QR code; it is never serialized to clients.
type LoginSession struct {
	ID         string      `json:"id"`
	Challenge  string      `json:"-"`
	Status     LoginStatus `json:"status"`
	DeviceInfo DeviceInfo  `json:"deviceInfo"`
	Identity   string      `json:"identity,omitempty"`
	CreatedAt  time.Time   `json:"createdAt"`
	ExpiresAt  time.Time   `json:"expiresAt"`
	ResolvedAt *time.Time  `json:"resolvedAt,omitempty"`
}

// IsExpiredAt returns true when now is past the session's expiry.
func (s *LoginSession) IsExpiredAt(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// LoginPayload is the JSON document encoded in the QR image.
type LoginPayload struct {
	Type      string `json:"type"`
	SessionID string `json:"sessionId"`
	Challenge string `json:"challenge"`
	Timestamp int64  `json:"timestamp"` // unix millis
	URL       string `json:"url"`
}
