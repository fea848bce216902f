package postgres

import (
	"context"
	"testing"
	"time"

	"blaze-custody/internal/core/domain"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func credentialColumns() []string {
	return []string{"id", "public_key", "counter", "created_at", "last_used"}
}

func TestCredentialRepo_List(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	used := testTime().Add(time.Hour)
	mock.ExpectQuery("SELECT .+ FROM biometric_credentials ORDER BY seq").
		WillReturnRows(pgxmock.NewRows(credentialColumns()).
			AddRow("cred-1", "pk-1", int64(4), testTime(), &used).
			AddRow("cred-2", "pk-2", int64(0), testTime(), (*time.Time)(nil)))

	creds, err := NewCredentialRepo(mock).List(context.Background())
	require.NoError(t, err)
	require.Len(t, creds, 2)

	assert.Equal(t, "cred-1", creds[0].ID)
	assert.Equal(t, uint32(4), creds[0].Counter)
	require.NotNil(t, creds[0].LastUsed)
	assert.Equal(t, used, *creds[0].LastUsed)
	assert.Equal(t, "cred-2", creds[1].ID)
	assert.Nil(t, creds[1].LastUsed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCredentialRepo_ListEmpty(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT .+ FROM biometric_credentials").
		WillReturnRows(pgxmock.NewRows(credentialColumns()))

	creds, err := NewCredentialRepo(mock).List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, creds)
}

func TestCredentialRepo_Add(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	cred := &domain.BiometricCredential{ID: "cred-1", PublicKey: "pk-1", CreatedAt: testTime()}

	mock.ExpectExec("INSERT INTO biometric_credentials").
		WithArgs(cred.ID, cred.PublicKey, int64(0), cred.CreatedAt, cred.LastUsed).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, NewCredentialRepo(mock).Add(context.Background(), cred))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCredentialRepo_MarkUsed(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCredentialRepo(mock)
	mock.ExpectExec("UPDATE biometric_credentials SET counter").
		WithArgs(int64(7), testTime(), "cred-1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec("UPDATE biometric_credentials SET counter").
		WithArgs(int64(1), testTime(), "missing").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	require.NoError(t, repo.MarkUsed(context.Background(), "cred-1", 7, testTime()))
	assert.Error(t, repo.MarkUsed(context.Background(), "missing", 1, testTime()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCredentialRepo_DeleteAll(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec("DELETE FROM biometric_credentials").WillReturnResult(pgxmock.NewResult("DELETE", 2))

	require.NoError(t, NewCredentialRepo(mock).DeleteAll(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
