package postgres

import (
	"context"
	"fmt"
	"time"

	"blaze-custody/internal/core/domain"
	"blaze-custody/internal/core/ports"
)

// CredentialRepo implements ports.CredentialRepository. Registration order
// is kept by the seq column.
type CredentialRepo struct {
	pool Pool
}

var _ ports.CredentialRepository = (*CredentialRepo)(nil)

func NewCredentialRepo(pool Pool) *CredentialRepo {
	return &CredentialRepo{pool: pool}
}

func (r *CredentialRepo) List(ctx context.Context) ([]domain.BiometricCredential, error) {
	query := `SELECT id, public_key, counter, created_at, last_used
		FROM biometric_credentials ORDER BY seq`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list credentials: %w", err)
	}
	defer rows.Close()

	var creds []domain.BiometricCredential
	for rows.Next() {
		var c domain.BiometricCredential
		var counter int64
		if err := rows.Scan(&c.ID, &c.PublicKey, &counter, &c.CreatedAt, &c.LastUsed); err != nil {
			return nil, fmt.Errorf("scan credential: %w", err)
		}
		c.Counter = uint32(counter)
		creds = append(creds, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate credentials: %w", err)
	}
	return creds, nil
}

func (r *CredentialRepo) Add(ctx context.Context, cred *domain.BiometricCredential) error {
	query := `INSERT INTO biometric_credentials (id, public_key, counter, created_at, last_used)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.pool.Exec(ctx, query,
		cred.ID, cred.PublicKey, int64(cred.Counter), cred.CreatedAt, cred.LastUsed,
	)
	if err != nil {
		return fmt.Errorf("insert credential: %w", err)
	}
	return nil
}

// MarkUsed records the authenticator counter and the time of a successful
// assertion.
func (r *CredentialRepo) MarkUsed(ctx context.Context, id string, counter uint32, usedAt time.Time) error {
	query := `UPDATE biometric_credentials SET counter = $1, last_used = $2 WHERE id = $3`

	tag, err := r.pool.Exec(ctx, query, int64(counter), usedAt, id)
	if err != nil {
		return fmt.Errorf("mark credential used: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("credential %s not found", id)
	}
	return nil
}

func (r *CredentialRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM biometric_credentials`); err != nil {
		return fmt.Errorf("delete credentials: %w", err)
	}
	return nil
}
