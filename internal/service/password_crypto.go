package service

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"time"
	"unicode/utf8"

	"blaze-custody/internal/core/domain"
	"blaze-custody/pkg/apperror"

	"golang.org/x/crypto/pbkdf2"
)

// PBKDF2 parameters for sealing the mnemonic and the password verifier.
const (
	DefaultKDFIterations = 10000
	kdfKeyLen            = 32 // AES-256
	defaultSaltLen       = 16
	ivLen                = aes.BlockSize
)

// PasswordCrypto seals the mnemonic with a password (PBKDF2-HMAC-SHA256,
// AES-256-CBC, PKCS7) and keeps a separate password verifier so a wrong
// password is rejected without touching the ciphertext.
type PasswordCrypto struct {
	iterations int
	saltLen    int
	rand       io.Reader
	now        func() time.Time
}

// PasswordCryptoOption customizes a PasswordCrypto.
type PasswordCryptoOption func(*PasswordCrypto)

// WithRandom overrides the randomness source for salts and IVs.
func WithRandom(r io.Reader) PasswordCryptoOption {
	return func(p *PasswordCrypto) { p.rand = r }
}

// NewPasswordCrypto creates a PasswordCrypto. Iterations below the default
// and salts shorter than 16 bytes are raised to the minimum.
func NewPasswordCrypto(iterations, saltLen int, opts ...PasswordCryptoOption) *PasswordCrypto {
	if iterations < DefaultKDFIterations {
		iterations = DefaultKDFIterations
	}
	if saltLen < defaultSaltLen {
		saltLen = defaultSaltLen
	}
	p := &PasswordCrypto{
		iterations: iterations,
		saltLen:    saltLen,
		rand:       rand.Reader,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// DeriveKey derives a 256-bit key via PBKDF2-HMAC-SHA256.
func DeriveKey(password string, salt []byte, iterations int) []byte {
	return pbkdf2.Key([]byte(password), salt, iterations, kdfKeyLen, sha256.New)
}

// Encrypt seals plaintext under password with a fresh salt and IV.
func (p *PasswordCrypto) Encrypt(plaintext, password string) (*domain.EncryptedSecret, error) {
	salt, err := p.randomBytes(p.saltLen)
	if err != nil {
		return nil, apperror.ErrEncryptionFailure(fmt.Errorf("generating salt: %w", err))
	}
	iv, err := p.randomBytes(ivLen)
	if err != nil {
		return nil, apperror.ErrEncryptionFailure(fmt.Errorf("generating iv: %w", err))
	}

	key := DeriveKey(password, salt, p.iterations)
	defer wipe(key)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, apperror.ErrEncryptionFailure(fmt.Errorf("creating cipher: %w", err))
	}

	padded := pkcs7Pad([]byte(plaintext), aes.BlockSize)
	defer wipe(padded)
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)

	return &domain.EncryptedSecret{
		EncryptedData: base64.StdEncoding.EncodeToString(ciphertext),
		Salt:          hex.EncodeToString(salt),
		IV:            hex.EncodeToString(iv),
		CreatedAt:     p.now().UTC(),
	}, nil
}

// Decrypt opens secret with password. Any malformed field, bad padding,
// empty result or non-UTF-8 output is reported as DecryptionFailed.
func (p *PasswordCrypto) Decrypt(secret *domain.EncryptedSecret, password string) (string, error) {
	if secret == nil {
		return "", apperror.ErrDecryptionFailed()
	}
	ciphertext, err := base64.StdEncoding.DecodeString(secret.EncryptedData)
	if err != nil || len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return "", apperror.ErrDecryptionFailed()
	}
	salt, err := hex.DecodeString(secret.Salt)
	if err != nil || len(salt) == 0 {
		return "", apperror.ErrDecryptionFailed()
	}
	iv, err := hex.DecodeString(secret.IV)
	if err != nil || len(iv) != ivLen {
		return "", apperror.ErrDecryptionFailed()
	}

	key := DeriveKey(password, salt, p.iterations)
	defer wipe(key)

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", apperror.ErrEncryptionFailure(fmt.Errorf("creating cipher: %w", err))
	}

	plain := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plain, ciphertext)
	defer wipe(plain)

	unpadded, ok := pkcs7Unpad(plain, aes.BlockSize)
	if !ok || len(unpadded) == 0 || !utf8.Valid(unpadded) {
		return "", apperror.ErrDecryptionFailed()
	}
	return string(unpadded), nil
}

// HashPassword returns "<saltHex>:<hashHex>" using the same KDF and a fresh salt.
func (p *PasswordCrypto) HashPassword(password string) (domain.PasswordRecord, error) {
	salt, err := p.randomBytes(p.saltLen)
	if err != nil {
		return "", apperror.ErrEncryptionFailure(fmt.Errorf("generating salt: %w", err))
	}
	hash := DeriveKey(password, salt, p.iterations)
	return domain.NewPasswordRecord(hex.EncodeToString(salt), hex.EncodeToString(hash)), nil
}

// VerifyPassword recomputes the hash for password and compares it in
// constant time. A malformed record returns an error.
func (p *PasswordCrypto) VerifyPassword(password string, record domain.PasswordRecord) (bool, error) {
	saltHex, hashHex, err := record.Split()
	if err != nil {
		return false, err
	}
	salt, err := hex.DecodeString(saltHex)
	if err != nil {
		return false, fmt.Errorf("decoding salt: %w", err)
	}
	want, err := hex.DecodeString(hashHex)
	if err != nil {
		return false, fmt.Errorf("decoding hash: %w", err)
	}

	got := DeriveKey(password, salt, p.iterations)
	defer wipe(got)
	return subtle.ConstantTimeCompare(got, want) == 1, nil
}

func (p *PasswordCrypto) randomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(p.rand, b); err != nil {
		return nil, err
	}
	return b, nil
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	return append(bytes.Clone(data), bytes.Repeat([]byte{byte(n)}, n)...)
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, bool) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, false
	}
	n := int(data[len(data)-1])
	if n == 0 || n > blockSize || n > len(data) {
		return nil, false
	}
	var bad byte
	for _, b := range data[len(data)-n:] {
		bad |= b ^ byte(n)
	}
	if bad != 0 {
		return nil, false
	}
	return data[:len(data)-n], true
}

func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
