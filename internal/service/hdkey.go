package service

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/ethereum/go-ethereum/accounts"
)

// Default derivation paths for the two address families.
const (
	EthereumDerivationPath = "m/44'/60'/0'/0/0"
	SolanaDerivationPath   = "m/44'/501'/0'/0'"
)

const hardenedOffset = 0x80000000

var (
	bip32SeedKey  = []byte("Bitcoin seed")
	slip10SeedKey = []byte("ed25519 seed")

	errInvalidChild = errors.New("derived key is invalid for this index")
)

type curve int

const (
	curveSecp256k1 curve = iota
	curveEd25519
)

// extendedKey is a private key plus chain code at one level of the tree.
type extendedKey struct {
	key       [32]byte
	chainCode [32]byte
}

func (k *extendedKey) zero() {
	wipe(k.key[:])
	wipe(k.chainCode[:])
}

// derivePrivateKey walks path from the master key for seed. secp256k1
// follows BIP-32, ed25519 follows SLIP-10 (hardened indexes only).
func derivePrivateKey(seed []byte, path string, c curve) ([32]byte, error) {
	indexes, err := accounts.ParseDerivationPath(path)
	if err != nil {
		return [32]byte{}, fmt.Errorf("parsing derivation path %q: %w", path, err)
	}

	seedKey := bip32SeedKey
	if c == curveEd25519 {
		seedKey = slip10SeedKey
	}

	k, err := masterKey(seed, seedKey, c)
	if err != nil {
		return [32]byte{}, err
	}
	for _, idx := range indexes {
		var child extendedKey
		switch c {
		case curveEd25519:
			child, err = k.childEd25519(idx)
		default:
			child, err = k.childSecp256k1(idx)
		}
		k.zero()
		if err != nil {
			return [32]byte{}, err
		}
		k = child
	}
	defer k.zero()
	return k.key, nil
}

func masterKey(seed, seedKey []byte, c curve) (extendedKey, error) {
	sum := hmacSHA512(seedKey, seed)
	defer wipe(sum)

	var k extendedKey
	copy(k.key[:], sum[:32])
	copy(k.chainCode[:], sum[32:])

	if c == curveSecp256k1 {
		var s secp256k1.ModNScalar
		if overflow := s.SetByteSlice(k.key[:]); overflow || s.IsZero() {
			return extendedKey{}, errInvalidChild
		}
		s.Zero()
	}
	return k, nil
}

func (k *extendedKey) childSecp256k1(index uint32) (extendedKey, error) {
	var data []byte
	if index >= hardenedOffset {
		data = make([]byte, 0, 37)
		data = append(data, 0x00)
		data = append(data, k.key[:]...)
	} else {
		priv := secp256k1.PrivKeyFromBytes(k.key[:])
		data = priv.PubKey().SerializeCompressed()
		priv.Zero()
	}
	data = binary.BigEndian.AppendUint32(data, index)
	defer wipe(data)

	sum := hmacSHA512(k.chainCode[:], data)
	defer wipe(sum)

	var il, parent secp256k1.ModNScalar
	defer il.Zero()
	defer parent.Zero()
	if overflow := il.SetByteSlice(sum[:32]); overflow {
		return extendedKey{}, errInvalidChild
	}
	parent.SetByteSlice(k.key[:])
	il.Add(&parent)
	if il.IsZero() {
		return extendedKey{}, errInvalidChild
	}

	var child extendedKey
	child.key = il.Bytes()
	copy(child.chainCode[:], sum[32:])
	return child, nil
}

func (k *extendedKey) childEd25519(index uint32) (extendedKey, error) {
	if index < hardenedOffset {
		return extendedKey{}, fmt.Errorf("ed25519 supports hardened derivation only, got index %d", index)
	}
	data := make([]byte, 0, 37)
	data = append(data, 0x00)
	data = append(data, k.key[:]...)
	data = binary.BigEndian.AppendUint32(data, index)
	defer wipe(data)

	sum := hmacSHA512(k.chainCode[:], data)
	defer wipe(sum)

	var child extendedKey
	copy(child.key[:], sum[:32])
	copy(child.chainCode[:], sum[32:])
	return child, nil
}

func hmacSHA512(key, data []byte) []byte {
	mac := hmac.New(sha512.New, key)
	mac.Write(data)
	return mac.Sum(nil)
}
