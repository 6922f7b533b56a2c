// Copyright (c) 2026 EventInc. All rights reserved.

package sec_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventinc/api/internal/platform/sec"
)

func newTokenService(t *testing.T, secret string) *sec.TokenService {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service, err := sec.NewTokenService(secret, "eventinc.com", logger)
	require.NoError(t, err)
	return service
}

func TestNewTokenServiceRejectsEmptySecret(t *testing.T) {
	_, err := sec.NewTokenService("", "eventinc.com", nil)
	assert.Error(t, err)
}

/*
TestTokenRoundTrip verifies that a freshly issued token verifies back to the
same identity until its expiry.
*/
func TestTokenRoundTrip(t *testing.T) {
	service := newTokenService(t, "round-trip-secret")

	token, err := service.GenerateAccessToken("user-123", "admin", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "user-123", claims.Subject)
	assert.Equal(t, "eventinc.com", claims.Issuer)
}

func TestVerifyTokenExpired(t *testing.T) {
	service := newTokenService(t, "expiry-secret")

	token, err := service.GenerateAccessToken("user-123", "staff", -time.Minute)
	require.NoError(t, err)

	_, err = service.VerifyToken(token)
	assert.ErrorIs(t, err, sec.ErrTokenExpired)
}

func TestVerifyTokenInvalid(t *testing.T) {
	service := newTokenService(t, "signing-secret")
	other := newTokenService(t, "different-secret")

	token, err := other.GenerateAccessToken("user-123", "admin", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"wrong_secret", token},
		{"malformed", "not.a.jwt"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.VerifyToken(tt.token)
			assert.ErrorIs(t, err, sec.ErrTokenInvalid)
		})
	}
}

func TestTruncateToken(t *testing.T) {
	assert.Equal(t, "short", sec.TruncateToken("short"))
	assert.Equal(t, "0123456789ab...", sec.TruncateToken("0123456789abcdef"))
}
