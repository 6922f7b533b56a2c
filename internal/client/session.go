// Copyright (c) 2026 EventInc. All rights reserved.

package client

import (
	"context"
	"log/slog"
	"sync"

	"github.com/eventinc/api/internal/auth"
)

// Session holds the client-side authentication state.
//
// # Concurrency
//
// All methods are safe for concurrent use. The authenticated flag is always
// derived from the current state, never cached, so it can not drift out of
// sync with the user and token it summarizes.
type Session struct {
	mu     sync.RWMutex
	client *Client
	store  TokenStore
	logger *slog.Logger

	user  *auth.User
	token string
}

// NewSession creates a Session over the given API client and token store.
func NewSession(client *Client, store TokenStore, logger *slog.Logger) *Session {
	return &Session{
		client: client,
		store:  store,
		logger: logger,
	}
}

// Login authenticates with the API and persists the returned token.
func (session *Session) Login(ctx context.Context, email, password string) error {
	result, err := session.client.Login(ctx, email, password)
	if err != nil {
		session.logger.Warn("login_failed", slog.Any("error", err))
		return err
	}

	if err := session.store.Save(result.Token); err != nil {
		return err
	}

	session.mu.Lock()
	session.user = result.User
	session.token = result.Token
	session.mu.Unlock()

	session.logger.Info("login_succeeded", slog.String("email", email))
	return nil
}

// Logout clears the session state and the stored token.
//
// It is idempotent: logging out of an already logged-out session succeeds.
func (session *Session) Logout() error {
	session.mu.Lock()
	session.user = nil
	session.token = ""
	session.mu.Unlock()

	if err := session.store.Clear(); err != nil {
		return err
	}

	session.logger.Info("logged_out")
	return nil
}

// VerifyAuth checks the stored token against the API and refreshes the user.
//
// It returns [ErrNoToken] when no token is stored. On a verification failure
// both the in-memory state and the stored token are cleared, so a stale or
// revoked token is never retried.
func (session *Session) VerifyAuth(ctx context.Context) error {
	token, err := session.store.Load()
	if err != nil {
		return err
	}
	if token == "" {
		return ErrNoToken
	}

	user, err := session.client.Verify(ctx, token)
	if err != nil {
		session.clearAll()
		session.logger.Warn("verification_failed", slog.Any("error", err))
		return err
	}

	session.mu.Lock()
	session.user = user
	session.token = token
	session.mu.Unlock()

	return nil
}

// User returns a snapshot of the authenticated user, or nil.
func (session *Session) User() *auth.User {
	session.mu.RLock()
	defer session.mu.RUnlock()

	if session.user == nil {
		return nil
	}
	snapshot := *session.user
	return &snapshot
}

// Token returns the current in-memory session token, or "".
func (session *Session) Token() string {
	session.mu.RLock()
	defer session.mu.RUnlock()
	return session.token
}

// IsAuthenticated reports whether the session currently holds a verified user.
func (session *Session) IsAuthenticated() bool {
	session.mu.RLock()
	defer session.mu.RUnlock()
	return session.user != nil && session.token != ""
}

// clearAll wipes the in-memory state and the stored token.
func (session *Session) clearAll() {
	session.mu.Lock()
	session.user = nil
	session.token = ""
	session.mu.Unlock()

	if err := session.store.Clear(); err != nil {
		session.logger.Warn("token_clear_failed", slog.Any("error", err))
	}
}
