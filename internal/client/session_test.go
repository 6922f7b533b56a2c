// Copyright (c) 2026 EventInc. All rights reserved.

package client

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventinc/api/internal/auth"
	"github.com/eventinc/api/internal/platform/sec"
)

// # Test Server

const (
	testToken    = "test-session-token"
	testEmail    = "ana@eventinc.com"
	testPassword = "correct-horse-battery"
)

// newAPIStub serves just enough of the API for session tests: a login that
// accepts one credential pair and a verify that accepts one token.
func newAPIStub(t *testing.T) *httptest.Server {
	t.Helper()

	user := auth.User{
		ID:        "user-1",
		Email:     testEmail,
		FirstName: "Ana",
		LastName:  "Duarte",
		Role:      sec.RoleAdmin,
		IsActive:  true,
	}

	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/auth/login", func(writer http.ResponseWriter, request *http.Request) {
		var body struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		require.NoError(t, json.NewDecoder(request.Body).Decode(&body))

		if body.Email != testEmail || body.Password != testPassword {
			writer.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(writer).Encode(map[string]string{
				"error": "Invalid credentials", "code": "UNAUTHORIZED",
			})
			return
		}

		json.NewEncoder(writer).Encode(map[string]any{"token": testToken, "user": user})
	})

	mux.HandleFunc("GET /api/auth/verify", func(writer http.ResponseWriter, request *http.Request) {
		header := request.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") || strings.TrimPrefix(header, "Bearer ") != testToken {
			writer.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(writer).Encode(map[string]string{
				"error": "Invalid token", "code": "INVALID_TOKEN",
			})
			return
		}
		json.NewEncoder(writer).Encode(map[string]any{"user": user})
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func newTestSession(t *testing.T) (*Session, *MemoryTokenStore) {
	t.Helper()
	server := newAPIStub(t)
	store := &MemoryTokenStore{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewSession(New(server.URL), store, logger), store
}

// # Login / Logout

func TestSessionLogin(t *testing.T) {
	session, store := newTestSession(t)

	require.NoError(t, session.Login(context.Background(), testEmail, testPassword))

	assert.True(t, session.IsAuthenticated())
	require.NotNil(t, session.User())
	assert.Equal(t, testEmail, session.User().Email)
	assert.Equal(t, testToken, store.token)
}

func TestSessionLoginFailureLeavesStateClean(t *testing.T) {
	session, store := newTestSession(t)

	err := session.Login(context.Background(), testEmail, "wrong")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.False(t, session.IsAuthenticated())
	assert.Empty(t, store.token)
}

func TestLogoutIsIdempotent(t *testing.T) {
	session, store := newTestSession(t)
	require.NoError(t, session.Login(context.Background(), testEmail, testPassword))

	require.NoError(t, session.Logout())
	require.NoError(t, session.Logout())

	assert.False(t, session.IsAuthenticated())
	assert.Nil(t, session.User())
	assert.Empty(t, store.token)
}

// # VerifyAuth

func TestVerifyAuthWithoutToken(t *testing.T) {
	session, _ := newTestSession(t)

	err := session.VerifyAuth(context.Background())

	assert.ErrorIs(t, err, ErrNoToken)
	assert.False(t, session.IsAuthenticated())
}

func TestLogoutThenVerifyAuthFailsWithNoToken(t *testing.T) {
	session, _ := newTestSession(t)
	require.NoError(t, session.Login(context.Background(), testEmail, testPassword))
	require.NoError(t, session.Logout())

	err := session.VerifyAuth(context.Background())

	assert.ErrorIs(t, err, ErrNoToken)
}

func TestVerifyAuthRestoresSessionFromStoredToken(t *testing.T) {
	session, store := newTestSession(t)
	store.token = testToken

	require.NoError(t, session.VerifyAuth(context.Background()))

	assert.True(t, session.IsAuthenticated())
	require.NotNil(t, session.User())
	assert.Equal(t, testEmail, session.User().Email)
}

func TestVerifyAuthFailureClearsMemoryAndStore(t *testing.T) {
	session, store := newTestSession(t)
	store.token = "stale-token"

	err := session.VerifyAuth(context.Background())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "INVALID_TOKEN", apiErr.Code)

	// Both the in-memory state and the stored token are gone.
	assert.False(t, session.IsAuthenticated())
	assert.Nil(t, session.User())
	assert.Empty(t, store.token)
}

func TestUserReturnsSnapshot(t *testing.T) {
	session, _ := newTestSession(t)
	require.NoError(t, session.Login(context.Background(), testEmail, testPassword))

	snapshot := session.User()
	snapshot.Email = "mutated@eventinc.com"

	assert.Equal(t, testEmail, session.User().Email)
}
