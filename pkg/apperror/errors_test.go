package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without wrapped error",
			appErr:   New("WAL_001", "Invalid mnemonic phrase", http.StatusBadRequest),
			expected: "[WAL_001] Invalid mnemonic phrase",
		},
		{
			name:     "with wrapped error",
			appErr:   Wrap("SYS_001", "store error", http.StatusInternalServerError, fmt.Errorf("connection refused")),
			expected: "[SYS_001] store error: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appErr.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("inner error")
	appErr := Wrap("SYS_001", "wrapped", http.StatusInternalServerError, inner)

	assert.True(t, errors.Is(appErr, inner))
	assert.Nil(t, New("WAL_001", "test", http.StatusBadRequest).Unwrap())
}

func TestAppError_IsMatchesByCode(t *testing.T) {
	err := fmt.Errorf("approve: %w", ErrSessionExpired())

	assert.True(t, errors.Is(err, ErrSessionExpired()))
	assert.False(t, errors.Is(err, ErrSessionNotFound()))
	assert.True(t, HasCode(err, CodeSessionExpired))
	assert.Equal(t, "", Code(errors.New("plain")))
}

func TestWalletErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"InvalidMnemonic", ErrInvalidMnemonic(), "WAL_001", 400},
		{"DecryptionFailed", ErrDecryptionFailed(), "WAL_002", 401},
		{"DecryptionFailedRemaining", ErrDecryptionFailedWithRemaining(2), "WAL_002", 401},
		{"WalletLocked", ErrWalletLocked(), "WAL_003", 423},
		{"NoWallet", ErrNoWallet(), "WAL_004", 404},
		{"TooManyAttempts", ErrTooManyAttempts(), "WAL_005", 429},
		{"WeakPassword", ErrWeakPassword("too short"), "WAL_006", 400},
		{"WalletExists", ErrWalletExists(), "WAL_007", 409},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestBiometricErrors(t *testing.T) {
	cause := errors.New("platform said no")
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"Unavailable", ErrBiometricUnavailable(), "BIO_001", 501},
		{"Denied", ErrBiometricDenied(cause), "BIO_002", 401},
		{"Cancelled", ErrBiometricCancelled(cause), "BIO_003", 401},
		{"NotSupported", ErrBiometricNotSupported(cause), "BIO_004", 501},
		{"Security", ErrBiometricSecurity(cause), "BIO_005", 403},
		{"NoCredential", ErrNoBiometricCredential(), "BIO_006", 404},
		{"NoStoredSecret", ErrNoStoredSecret(), "BIO_007", 404},
		{"AuthenticationFailed", ErrAuthenticationFailed(cause), "BIO_008", 401},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestSessionErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"NotFound", ErrSessionNotFound(), "QR_001", 404},
		{"Expired", ErrSessionExpired(), "QR_002", 410},
		{"Rejected", ErrSessionRejected(), "QR_003", 409},
		{"InvalidPayload", ErrInvalidPayload("missing sessionId"), "QR_004", 400},
		{"NotPending", ErrSessionNotPending(), "QR_005", 409},
		{"ChallengeMismatch", ErrChallengeMismatch(), "QR_006", 403},
		{"Pending", ErrSessionPending(), "QR_007", 409},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestSystemErrors(t *testing.T) {
	inner := fmt.Errorf("pg: connection closed")

	internal := InternalError(inner)
	assert.Equal(t, "SYS_001", internal.Code)
	assert.Equal(t, 500, internal.HTTPStatus)
	assert.True(t, errors.Is(internal, inner))

	encErr := ErrEncryptionFailure(inner)
	assert.Equal(t, "SYS_003", encErr.Code)

	assert.Equal(t, 429, ErrRateLimitExceeded().HTTPStatus)
	assert.Equal(t, "REQ_001", Validation("bad").Code)
	assert.Equal(t, 415, ErrUnsupportedMediaType().HTTPStatus)
	assert.Equal(t, "AUTH_004", ErrForbiddenOrigin().Code)
	assert.Equal(t, 403, ErrForbiddenOrigin().HTTPStatus)
}
