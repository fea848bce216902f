package service

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"
	"io"
	"strings"
	"sync"

	"blaze-custody/internal/core/domain"
	"blaze-custody/internal/core/ports"
	"blaze-custody/pkg/apperror"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/gagliardetto/solana-go"
	"github.com/tyler-smith/go-bip39"
)

const (
	mnemonicWords = 12
	entropyBytes  = 16 // 128 bits -> 12 words
)

// MnemonicVault generates, validates and imports BIP-39 phrases and derives
// the wallet keys from them.
type MnemonicVault struct {
	entropy io.Reader
}

// NewMnemonicVault creates a vault drawing entropy from r, or crypto/rand
// when r is nil.
func NewMnemonicVault(r io.Reader) *MnemonicVault {
	if r == nil {
		r = rand.Reader
	}
	return &MnemonicVault{entropy: r}
}

// Generate draws 128 bits of entropy, encodes a 12-word phrase and derives
// the default keypair.
func (v *MnemonicVault) Generate() (string, *HDWallet, error) {
	entropy := make([]byte, entropyBytes)
	if _, err := io.ReadFull(v.entropy, entropy); err != nil {
		return "", nil, apperror.InternalError(fmt.Errorf("reading entropy: %w", err))
	}
	defer wipe(entropy)

	phrase, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", nil, apperror.InternalError(fmt.Errorf("encoding mnemonic: %w", err))
	}

	w, err := newHDWallet(phrase)
	if err != nil {
		return "", nil, err
	}
	return phrase, w, nil
}

// Validate checks word count, wordlist membership and checksum.
func (v *MnemonicVault) Validate(candidate string) bool {
	phrase := NormalizeMnemonic(candidate)
	if len(strings.Fields(phrase)) != mnemonicWords {
		return false
	}
	return bip39.IsMnemonicValid(phrase)
}

// ImportFrom normalizes and validates candidate, then derives its wallet.
func (v *MnemonicVault) ImportFrom(candidate string) (*HDWallet, error) {
	if !v.Validate(candidate) {
		return nil, apperror.ErrInvalidMnemonic()
	}
	return newHDWallet(NormalizeMnemonic(candidate))
}

// NormalizeMnemonic trims, lowercases and collapses whitespace.
func NormalizeMnemonic(candidate string) string {
	return strings.Join(strings.Fields(strings.ToLower(candidate)), " ")
}

// HDWallet is the unlocked wallet: the resident mnemonic plus the keys
// derived from it. Wipe clears all of it.
type HDWallet struct {
	mu        sync.RWMutex
	mnemonic  []byte
	evmKey    [32]byte
	addresses map[domain.Chain]string
	pubKeyHex string
	wiped     bool
}

var _ ports.Wallet = (*HDWallet)(nil)

func newHDWallet(phrase string) (*HDWallet, error) {
	seed := bip39.NewSeed(phrase, "")
	defer wipe(seed)

	evmKey, err := derivePrivateKey(seed, EthereumDerivationPath, curveSecp256k1)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("deriving ethereum key: %w", err))
	}
	solKey, err := derivePrivateKey(seed, SolanaDerivationPath, curveEd25519)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("deriving solana key: %w", err))
	}
	defer wipe(solKey[:])

	priv, err := crypto.ToECDSA(evmKey[:])
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("loading ethereum key: %w", err))
	}

	edPriv := ed25519.NewKeyFromSeed(solKey[:])
	defer wipe(edPriv)

	return &HDWallet{
		mnemonic: []byte(phrase),
		evmKey:   evmKey,
		addresses: map[domain.Chain]string{
			domain.ChainEthereum: crypto.PubkeyToAddress(priv.PublicKey).Hex(),
			domain.ChainSolana:   solana.PrivateKey(edPriv).PublicKey().String(),
		},
		pubKeyHex: hexutil.Encode(crypto.FromECDSAPub(&priv.PublicKey)),
	}, nil
}

// Address returns the default (EVM) address.
func (w *HDWallet) Address() string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.addresses[domain.ChainEthereum]
}

// Addresses returns a copy of every derived address.
func (w *HDWallet) Addresses() map[domain.Chain]string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make(map[domain.Chain]string, len(w.addresses))
	for k, v := range w.addresses {
		out[k] = v
	}
	return out
}

func (w *HDWallet) PublicKeyHex() string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.pubKeyHex
}

// SignMessage signs msg with the EIP-191 personal_sign prefix. The recovery
// id is returned as 27/28.
func (w *HDWallet) SignMessage(msg []byte) ([]byte, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.wiped {
		return nil, apperror.ErrWalletLocked()
	}

	priv, err := crypto.ToECDSA(w.evmKey[:])
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	sig, err := crypto.Sign(accounts.TextHash(msg), priv)
	priv.D.SetInt64(0)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("signing message: %w", err))
	}
	sig[crypto.RecoveryIDOffset] += 27
	return sig, nil
}

// mnemonicPhrase returns the resident phrase for re-sealing on password change.
func (w *HDWallet) mnemonicPhrase() (string, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.wiped {
		return "", apperror.ErrWalletLocked()
	}
	return string(w.mnemonic), nil
}

// Wipe zeroes the mnemonic and private key. Addresses stay readable.
func (w *HDWallet) Wipe() {
	w.mu.Lock()
	defer w.mu.Unlock()
	wipe(w.mnemonic)
	w.mnemonic = nil
	wipe(w.evmKey[:])
	w.wiped = true
}

// Wiped reports whether Wipe has run.
func (w *HDWallet) Wiped() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.wiped
}
