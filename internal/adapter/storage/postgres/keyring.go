package postgres

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"sync"

	"blaze-custody/internal/core/ports"

	"github.com/jackc/pgx/v5"
)

const deviceKeyLen = 32

// Keyring implements ports.DeviceKeyring with a random key generated once
// and persisted in device_keys. Concurrent first calls converge on the row
// that won the insert.
//
// The key lives in the same database as sealed_secrets, so anyone who can
// read the database can open the sealed password. Production deployments
// supply a platform keystore behind ports.DeviceKeyring instead.
type Keyring struct {
	pool Pool
	rand io.Reader

	mu  sync.Mutex
	key []byte
}

var _ ports.DeviceKeyring = (*Keyring)(nil)

func NewKeyring(pool Pool) *Keyring {
	return &Keyring{pool: pool, rand: rand.Reader}
}

func (k *Keyring) DeviceKey(ctx context.Context) ([]byte, error) {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.key != nil {
		return append([]byte(nil), k.key...), nil
	}

	candidate := make([]byte, deviceKeyLen)
	if _, err := io.ReadFull(k.rand, candidate); err != nil {
		return nil, fmt.Errorf("generating device key: %w", err)
	}

	var key []byte
	err := inTx(ctx, k.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx,
			`INSERT INTO device_keys (id, key) VALUES (1, $1) ON CONFLICT (id) DO NOTHING`,
			candidate,
		); err != nil {
			return fmt.Errorf("insert device key: %w", err)
		}
		if err := tx.QueryRow(ctx, `SELECT key FROM device_keys WHERE id = 1`).Scan(&key); err != nil {
			return fmt.Errorf("load device key: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(key) != deviceKeyLen {
		return nil, fmt.Errorf("stored device key has %d bytes", len(key))
	}

	k.key = key
	return append([]byte(nil), key...), nil
}
