package postgres

import (
	"context"
	"errors"
	"fmt"

	"blaze-custody/internal/core/domain"
	"blaze-custody/internal/core/ports"

	"github.com/jackc/pgx/v5"
)

// SealedSecretRepo implements ports.SealedSecretRepository.
type SealedSecretRepo struct {
	pool Pool
}

var _ ports.SealedSecretRepository = (*SealedSecretRepo)(nil)

func NewSealedSecretRepo(pool Pool) *SealedSecretRepo {
	return &SealedSecretRepo{pool: pool}
}

func (r *SealedSecretRepo) Get(ctx context.Context) (*domain.SealedSecret, error) {
	query := `SELECT credential_id, nonce, ciphertext, created_at FROM sealed_secrets WHERE id = 1`

	s := &domain.SealedSecret{}
	err := r.pool.QueryRow(ctx, query).Scan(&s.CredentialID, &s.Nonce, &s.Ciphertext, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sealed secret: %w", err)
	}
	return s, nil
}

func (r *SealedSecretRepo) Save(ctx context.Context, secret *domain.SealedSecret) error {
	query := `INSERT INTO sealed_secrets (id, credential_id, nonce, ciphertext, created_at)
		VALUES (1, $1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET
			credential_id = EXCLUDED.credential_id,
			nonce = EXCLUDED.nonce,
			ciphertext = EXCLUDED.ciphertext,
			created_at = EXCLUDED.created_at`

	_, err := r.pool.Exec(ctx, query, secret.CredentialID, secret.Nonce, secret.Ciphertext, secret.CreatedAt)
	if err != nil {
		return fmt.Errorf("upsert sealed secret: %w", err)
	}
	return nil
}

func (r *SealedSecretRepo) Delete(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM sealed_secrets WHERE id = 1`); err != nil {
		return fmt.Errorf("delete sealed secret: %w", err)
	}
	return nil
}
