package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"blaze-custody/internal/core/domain"
	"blaze-custody/internal/core/ports"

	"github.com/jackc/pgx/v5"
)

// SecretRepo implements ports.SecretRepository on the single-row
// wallet_secrets table.
type SecretRepo struct {
	pool Pool
	now  func() time.Time
}

var _ ports.SecretRepository = (*SecretRepo)(nil)

func NewSecretRepo(pool Pool) *SecretRepo {
	return &SecretRepo{pool: pool, now: time.Now}
}

// Save upserts the sealed mnemonic together with its password verifier.
func (r *SecretRepo) Save(ctx context.Context, secret *domain.EncryptedSecret, record domain.PasswordRecord) error {
	if secret == nil || record == "" {
		return fmt.Errorf("secret and password record are required")
	}

	query := `INSERT INTO wallet_secrets (id, encrypted_data, salt, iv, password_record, created_at, updated_at)
		VALUES (1, $1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			encrypted_data = EXCLUDED.encrypted_data,
			salt = EXCLUDED.salt,
			iv = EXCLUDED.iv,
			password_record = EXCLUDED.password_record,
			created_at = EXCLUDED.created_at,
			updated_at = EXCLUDED.updated_at`

	_, err := r.pool.Exec(ctx, query,
		secret.EncryptedData, secret.Salt, secret.IV, string(record),
		secret.CreatedAt, r.now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("upsert wallet secret: %w", err)
	}
	return nil
}

func (r *SecretRepo) GetEncryptedSecret(ctx context.Context) (*domain.EncryptedSecret, error) {
	query := `SELECT encrypted_data, salt, iv, created_at FROM wallet_secrets WHERE id = 1`

	s := &domain.EncryptedSecret{}
	err := r.pool.QueryRow(ctx, query).Scan(&s.EncryptedData, &s.Salt, &s.IV, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get wallet secret: %w", err)
	}
	return s, nil
}

func (r *SecretRepo) GetPasswordRecord(ctx context.Context) (domain.PasswordRecord, error) {
	query := `SELECT password_record FROM wallet_secrets WHERE id = 1`

	var record string
	err := r.pool.QueryRow(ctx, query).Scan(&record)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("get password record: %w", err)
	}
	return domain.PasswordRecord(record), nil
}

func (r *SecretRepo) Delete(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM wallet_secrets WHERE id = 1`); err != nil {
		return fmt.Errorf("delete wallet secret: %w", err)
	}
	return nil
}
