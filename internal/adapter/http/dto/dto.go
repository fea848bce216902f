package dto

import (
	"encoding/hex"
	"time"

	"blaze-custody/internal/core/domain"
	"blaze-custody/internal/core/ports"
)

// ============================================
// Wallet
// ============================================

// GenerateWalletRequest is optional. Reset deletes a stored wallet first.
type GenerateWalletRequest struct {
	Reset bool `json:"reset"`
}

type ImportWalletRequest struct {
	Mnemonic string `json:"mnemonic" binding:"required,max=512"`
	Reset    bool   `json:"reset"`
}

// PasswordRequest carries a password for SetPassword and UnlockWithPassword.
// Strength rules are enforced by the wallet session, not by binding tags.
type PasswordRequest struct {
	Password string `json:"password" binding:"required,max=256"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required,max=256"`
	NewPassword string `json:"newPassword" binding:"required,max=256,nefield=OldPassword"`
}

type SignMessageRequest struct {
	Message string `json:"message" binding:"required,max=4096"`
}

type WalletResponse struct {
	Address   string                  `json:"address"`
	Addresses map[domain.Chain]string `json:"addresses"`
	PublicKey string                  `json:"publicKey"`
}

// GenerateWalletResponse is the only response that ever carries the phrase.
type GenerateWalletResponse struct {
	Mnemonic string         `json:"mnemonic"`
	Wallet   WalletResponse `json:"wallet"`
}

type SignMessageResponse struct {
	Address   string `json:"address"`
	Signature string `json:"signature"` // 0x-prefixed, 65 bytes
}

// NewWalletResponse projects a wallet handle without exposing key material.
func NewWalletResponse(w ports.Wallet) WalletResponse {
	return WalletResponse{
		Address:   w.Address(),
		Addresses: w.Addresses(),
		PublicKey: w.PublicKeyHex(),
	}
}

// NewSignMessageResponse hex-encodes a personal_sign signature.
func NewSignMessageResponse(address string, sig []byte) SignMessageResponse {
	return SignMessageResponse{Address: address, Signature: "0x" + hex.EncodeToString(sig)}
}

// ============================================
// Biometric
// ============================================

type EnableBiometricRequest struct {
	UserID      string `json:"userId" binding:"required,max=64,safe_id"`
	DisplayName string `json:"displayName" binding:"required,max=64"`
	Password    string `json:"password" binding:"required,max=256"`
}

type BiometricCredentialResponse struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}

// ============================================
// QR login
// ============================================

type CreateQRSessionRequest struct {
	DeviceName string `json:"deviceName" binding:"omitempty,max=64"`
	Platform   string `json:"platform" binding:"omitempty,max=64"`
}

type CreateQRSessionResponse struct {
	Session   domain.LoginSession `json:"session"`
	QRPayload string              `json:"qrPayload"`
	QRImage   string              `json:"qrImage,omitempty"` // data:image/png;base64,...
}

// ApproveQRRequest carries the raw text scanned from the QR code.
type ApproveQRRequest struct {
	Payload string `json:"payload" binding:"required,max=1024"`
}

// RedeemRequest proves the caller is the device that rendered the QR code.
type RedeemRequest struct {
	Challenge string `json:"challenge" binding:"required,hex64"`
}

type TokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	Identity  string    `json:"identity"`
}

type WhoAmIResponse struct {
	Identity  string `json:"identity"`
	SessionID string `json:"sessionId"`
}
