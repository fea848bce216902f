package domain

import (
	"fmt"
	"strings"
	"time"
)

// Chain identifies an address family derived from the wallet seed.
type Chain string

const (
	ChainEthereum Chain = "ethereum"
	ChainSolana   Chain = "solana"
)

// EncryptedSecret is the persisted, password-sealed mnemonic.
// EncryptedData is base64; Salt and IV are hex.
type EncryptedSecret struct {
	EncryptedData string    `json:"encryptedData"`
	Salt          string    `json:"salt"`
	IV            string    `json:"iv"`
	CreatedAt     time.Time `json:"createdAt"`
}

// PasswordRecord is the persisted "<saltHex>:<hashHex>" password verifier.
type PasswordRecord string

// Split returns the hex salt and hex hash parts of the record.
func (r PasswordRecord) Split() (saltHex, hashHex string, err error) {
	parts := strings.Split(string(r), ":")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid password record format")
	}
	return parts[0], parts[1], nil
}

// NewPasswordRecord joins hex salt and hash into the persisted form.
func NewPasswordRecord(saltHex, hashHex string) PasswordRecord {
	return PasswordRecord(saltHex + ":" + hashHex)
}

// WalletState is a read-only snapshot of the process-wide runtime state.
type WalletState struct {
	Address      string           `json:"address"`
	Addresses    map[Chain]string `json:"addresses,omitempty"`
	IsLocked     bool             `json:"isLocked"`
	HasWallet    bool             `json:"hasWallet"`
	LastActivity time.Time        `json:"lastActivity"`
}
