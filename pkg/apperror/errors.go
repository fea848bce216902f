package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches another AppError by code, so errors.Is(err, ErrSessionExpired())
// works across freshly constructed values.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// Code returns the code of the first AppError in err's chain, or "".
func Code(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// HasCode reports whether err carries an AppError with the given code.
func HasCode(err error, code string) bool {
	return Code(err) == code
}

const (
	CodeInvalidMnemonic  = "WAL_001"
	CodeDecryptionFailed = "WAL_002"
	CodeWalletLocked     = "WAL_003"
	CodeNoWallet         = "WAL_004"
	CodeTooManyAttempts  = "WAL_005"
	CodeWeakPassword     = "WAL_006"
	CodeWalletExists     = "WAL_007"

	CodeBiometricUnavailable  = "BIO_001"
	CodeBiometricDenied       = "BIO_002"
	CodeBiometricCancelled    = "BIO_003"
	CodeBiometricNotSupported = "BIO_004"
	CodeBiometricSecurity     = "BIO_005"
	CodeNoBiometricCredential = "BIO_006"
	CodeNoStoredSecret        = "BIO_007"
	CodeAuthenticationFailed  = "BIO_008"

	CodeSessionNotFound   = "QR_001"
	CodeSessionExpired    = "QR_002"
	CodeSessionRejected   = "QR_003"
	CodeInvalidPayload    = "QR_004"
	CodeSessionNotPending = "QR_005"
	CodeChallengeMismatch = "QR_006"
	CodeSessionPending    = "QR_007"

	CodeInternal          = "SYS_001"
	CodeEncryptionFailure = "SYS_003"
	CodeRateLimited       = "RATE_001"
	CodeValidation        = "REQ_001"
	CodeUnsupportedMedia  = "REQ_002"
	CodeInvalidToken      = "AUTH_003"
	CodeForbiddenOrigin   = "AUTH_004"
)

// ---- Wallet custody (WAL) ----

func ErrInvalidMnemonic() *AppError {
	return New(CodeInvalidMnemonic, "Invalid mnemonic phrase", http.StatusBadRequest)
}

func ErrDecryptionFailed() *AppError {
	return New(CodeDecryptionFailed, "Wrong password or corrupted wallet data", http.StatusUnauthorized)
}

// ErrDecryptionFailedWithRemaining reports how many password attempts are left.
func ErrDecryptionFailedWithRemaining(remaining int64) *AppError {
	return New(CodeDecryptionFailed,
		fmt.Sprintf("Wrong password, %d attempt(s) remaining", remaining),
		http.StatusUnauthorized)
}

func ErrWalletLocked() *AppError {
	return New(CodeWalletLocked, "Wallet is locked", http.StatusLocked)
}

func ErrNoWallet() *AppError {
	return New(CodeNoWallet, "No wallet has been set up on this device", http.StatusNotFound)
}

func ErrTooManyAttempts() *AppError {
	return New(CodeTooManyAttempts, "Too many failed attempts, recover with your mnemonic", http.StatusTooManyRequests)
}

func ErrWeakPassword(reason string) *AppError {
	return New(CodeWeakPassword, "Password too weak: "+reason, http.StatusBadRequest)
}

// ErrWalletExists guards the stored wallet against silent replacement.
func ErrWalletExists() *AppError {
	return New(CodeWalletExists, "A wallet is already stored on this device, change its password or reset it explicitly", http.StatusConflict)
}

// ---- Biometric (BIO) ----

func ErrBiometricUnavailable() *AppError {
	return New(CodeBiometricUnavailable, "Biometric authentication is not available on this device", http.StatusNotImplemented)
}

func ErrBiometricDenied(err error) *AppError {
	return Wrap(CodeBiometricDenied, "Biometric verification was denied", http.StatusUnauthorized, err)
}

func ErrBiometricCancelled(err error) *AppError {
	return Wrap(CodeBiometricCancelled, "Biometric verification was cancelled", http.StatusUnauthorized, err)
}

func ErrBiometricNotSupported(err error) *AppError {
	return Wrap(CodeBiometricNotSupported, "Authenticator does not support the requested operation", http.StatusNotImplemented, err)
}

func ErrBiometricSecurity(err error) *AppError {
	return Wrap(CodeBiometricSecurity, "Authenticator rejected the request origin", http.StatusForbidden, err)
}

func ErrNoBiometricCredential() *AppError {
	return New(CodeNoBiometricCredential, "No biometric credential registered", http.StatusNotFound)
}

func ErrNoStoredSecret() *AppError {
	return New(CodeNoStoredSecret, "No biometric-protected secret stored", http.StatusNotFound)
}

func ErrAuthenticationFailed(err error) *AppError {
	return Wrap(CodeAuthenticationFailed, "Biometric authentication failed", http.StatusUnauthorized, err)
}

// ---- Cross-device QR login (QR) ----

func ErrSessionNotFound() *AppError {
	return New(CodeSessionNotFound, "Login session not found", http.StatusNotFound)
}

func ErrSessionExpired() *AppError {
	return New(CodeSessionExpired, "Login session expired, generate a new QR code", http.StatusGone)
}

func ErrSessionRejected() *AppError {
	return New(CodeSessionRejected, "Login session was rejected", http.StatusConflict)
}

func ErrInvalidPayload(reason string) *AppError {
	return New(CodeInvalidPayload, "Invalid login payload: "+reason, http.StatusBadRequest)
}

func ErrSessionNotPending() *AppError {
	return New(CodeSessionNotPending, "Login session is no longer pending", http.StatusConflict)
}

func ErrChallengeMismatch() *AppError {
	return New(CodeChallengeMismatch, "Login challenge does not match", http.StatusForbidden)
}

func ErrSessionPending() *AppError {
	return New(CodeSessionPending, "Login session has not been approved yet", http.StatusConflict)
}

// ---- Tokens (AUTH) ----

func ErrInvalidToken() *AppError {
	return New(CodeInvalidToken, "Invalid or expired token", http.StatusUnauthorized)
}

func ErrForbiddenOrigin() *AppError {
	return New(CodeForbiddenOrigin, "Request origin is not allowed", http.StatusForbidden)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New(CodeRateLimited, "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrEncryptionFailure(err error) *AppError {
	return Wrap(CodeEncryptionFailure, "Encryption service failure", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap(CodeInternal, "Internal server error", http.StatusInternalServerError, err)
}

func ErrUnsupportedMediaType() *AppError {
	return New(CodeUnsupportedMedia, "Request body must be application/json", http.StatusUnsupportedMediaType)
}

// Validation returns a REQ_001 validation error.
func Validation(message string) *AppError {
	return New(CodeValidation, message, http.StatusBadRequest)
}
