package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"blaze-custody/internal/core/domain"
	"blaze-custody/internal/core/ports"
	"blaze-custody/internal/core/ports/mocks"
	"blaze-custody/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestGate(t *testing.T, available bool) (*BiometricGate, *mocks.MockPlatformAuthenticator) {
	ctrl := gomock.NewController(t)
	platform := mocks.NewMockPlatformAuthenticator(ctrl)
	platform.EXPECT().IsSupported(gomock.Any()).Return(available).AnyTimes()
	platform.EXPECT().IsPlatformAuthenticatorAvailable(gomock.Any()).Return(available, nil).AnyTimes()

	gate := NewBiometricGate(platform, BiometricGateConfig{
		RPID:    "localhost",
		RPName:  "BLAZE Wallet",
		Timeout: time.Second,
	}, newTestLogger())
	return gate, platform
}

func TestBiometricGate_Probes(t *testing.T) {
	ctx := context.Background()

	gate, _ := newTestGate(t, true)
	assert.True(t, gate.IsSupported(ctx))
	assert.True(t, gate.Available(ctx))

	gate, _ = newTestGate(t, false)
	assert.False(t, gate.IsSupported(ctx))
	assert.False(t, gate.Available(ctx))
}

func TestBiometricGate_ProbeErrorMeansUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	platform := mocks.NewMockPlatformAuthenticator(ctrl)
	platform.EXPECT().IsSupported(gomock.Any()).Return(true).AnyTimes()
	platform.EXPECT().IsPlatformAuthenticatorAvailable(gomock.Any()).Return(false, errors.New("probe exploded"))

	gate := NewBiometricGate(platform, BiometricGateConfig{}, newTestLogger())
	assert.False(t, gate.IsPlatformAuthenticatorAvailable(context.Background()))
}

func TestBiometricGate_NilPlatform(t *testing.T) {
	gate := NewBiometricGate(nil, BiometricGateConfig{}, newTestLogger())
	assert.False(t, gate.Available(context.Background()))

	_, err := gate.Register(context.Background(), "u", "User")
	assert.True(t, apperror.HasCode(err, apperror.CodeBiometricUnavailable))
}

func TestBiometricGate_Register_Success(t *testing.T) {
	gate, platform := newTestGate(t, true)

	platform.EXPECT().CreateCredential(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, opts domain.CredentialCreationOptions) (*domain.AttestedCredential, error) {
			assert.Len(t, opts.Challenge, 32)
			assert.Equal(t, domain.AttachmentPlatform, opts.Attachment)
			assert.Equal(t, domain.UserVerificationRequired, opts.UserVerification)
			assert.Contains(t, opts.Algorithms, domain.COSEAlgES256)
			assert.Equal(t, "localhost", opts.RPID)
			assert.Equal(t, []byte("user-1"), opts.UserID)
			assert.Equal(t, "Alice", opts.DisplayName)
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline, "ceremony must be time bounded")
			return &domain.AttestedCredential{ID: "cred-1", PublicKey: []byte{1, 2, 3}, Counter: 0}, nil
		},
	)

	cred, err := gate.Register(context.Background(), "user-1", "Alice")
	require.NoError(t, err)
	assert.Equal(t, "cred-1", cred.ID)
	assert.Equal(t, "AQID", cred.PublicKey)
	assert.False(t, cred.CreatedAt.IsZero())
	assert.Nil(t, cred.LastUsed)
}

func TestBiometricGate_Register_Unavailable(t *testing.T) {
	gate, _ := newTestGate(t, false)

	_, err := gate.Register(context.Background(), "user-1", "Alice")
	assert.True(t, apperror.HasCode(err, apperror.CodeBiometricUnavailable))
}

func TestBiometricGate_ErrorTaxonomy(t *testing.T) {
	tests := []struct {
		name     string
		platform error
		code     string
	}{
		{"not allowed", ports.ErrPlatformNotAllowed, apperror.CodeBiometricDenied},
		{"aborted", ports.ErrPlatformAborted, apperror.CodeBiometricCancelled},
		{"timed out", context.DeadlineExceeded, apperror.CodeBiometricCancelled},
		{"not supported", ports.ErrPlatformNotSupported, apperror.CodeBiometricNotSupported},
		{"security", ports.ErrPlatformSecurity, apperror.CodeBiometricSecurity},
		{"wrapped not allowed", errors.Join(errors.New("NotAllowedError"), ports.ErrPlatformNotAllowed), apperror.CodeBiometricDenied},
		{"unknown", errors.New("bridge crashed"), apperror.CodeAuthenticationFailed},
	}

	for _, tt := range tests {
		t.Run("register "+tt.name, func(t *testing.T) {
			gate, platform := newTestGate(t, true)
			platform.EXPECT().CreateCredential(gomock.Any(), gomock.Any()).Return(nil, tt.platform)

			_, err := gate.Register(context.Background(), "u", "User")
			assert.Equal(t, tt.code, apperror.Code(err))
			assert.ErrorIs(t, err, tt.platform)
		})
		t.Run("authenticate "+tt.name, func(t *testing.T) {
			gate, platform := newTestGate(t, true)
			platform.EXPECT().GetAssertion(gomock.Any(), gomock.Any()).Return(nil, tt.platform)

			_, err := gate.Authenticate(context.Background(), "cred-1")
			assert.Equal(t, tt.code, apperror.Code(err))
		})
	}
}

func echoAssertion(id string, verified bool) func(context.Context, domain.CredentialRequestOptions) (*domain.Assertion, error) {
	return func(ctx context.Context, opts domain.CredentialRequestOptions) (*domain.Assertion, error) {
		return &domain.Assertion{CredentialID: id, Challenge: opts.Challenge, Counter: 5, UserVerified: verified}, nil
	}
}

func TestBiometricGate_Authenticate_Success(t *testing.T) {
	gate, platform := newTestGate(t, true)

	var challenges [][]byte
	platform.EXPECT().GetAssertion(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, opts domain.CredentialRequestOptions) (*domain.Assertion, error) {
			assert.Equal(t, []string{"cred-1"}, opts.AllowCredentials)
			assert.Equal(t, domain.UserVerificationRequired, opts.UserVerification)
			challenges = append(challenges, opts.Challenge)
			return echoAssertion("cred-1", true)(ctx, opts)
		},
	).Times(2)

	a, err := gate.Authenticate(context.Background(), "cred-1")
	require.NoError(t, err)
	assert.Equal(t, uint32(5), a.Counter)

	_, err = gate.Authenticate(context.Background(), "cred-1")
	require.NoError(t, err)

	require.Len(t, challenges, 2)
	assert.NotEqual(t, challenges[0], challenges[1], "every ceremony uses a fresh challenge")
}

func TestBiometricGate_Authenticate_RejectsBadAssertions(t *testing.T) {
	tests := []struct {
		name   string
		answer func(context.Context, domain.CredentialRequestOptions) (*domain.Assertion, error)
		code   string
	}{
		{"other credential", echoAssertion("cred-2", true), apperror.CodeBiometricSecurity},
		{"no user verification", echoAssertion("cred-1", false), apperror.CodeAuthenticationFailed},
		{"stale challenge", func(context.Context, domain.CredentialRequestOptions) (*domain.Assertion, error) {
			return &domain.Assertion{CredentialID: "cred-1", Challenge: make([]byte, 32), UserVerified: true}, nil
		}, apperror.CodeBiometricSecurity},
		{"nil assertion", func(context.Context, domain.CredentialRequestOptions) (*domain.Assertion, error) {
			return nil, nil
		}, apperror.CodeAuthenticationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gate, platform := newTestGate(t, true)
			platform.EXPECT().GetAssertion(gomock.Any(), gomock.Any()).DoAndReturn(tt.answer)

			_, err := gate.Authenticate(context.Background(), "cred-1")
			assert.Equal(t, tt.code, apperror.Code(err))
		})
	}
}

func TestBiometricGate_Authenticate_Unavailable(t *testing.T) {
	gate, _ := newTestGate(t, false)

	_, err := gate.Authenticate(context.Background(), "cred-1")
	assert.True(t, apperror.HasCode(err, apperror.CodeBiometricUnavailable))
}
