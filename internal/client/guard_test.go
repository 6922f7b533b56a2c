// Copyright (c) 2026 EventInc. All rights reserved.

package client

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGuard(t *testing.T) (*Guard, *MemoryTokenStore) {
	t.Helper()
	session, store := newTestSession(t)
	return NewGuard(session, slog.New(slog.NewTextHandler(io.Discard, nil))), store
}

func TestGuardIgnoresPathsOutsidePrefix(t *testing.T) {
	guard, _ := newTestGuard(t)

	// No token stored, yet public paths pass without any round trip.
	for _, path := range []string{"/", "/events", "/about", "/administration"} {
		decision := guard.Evaluate(context.Background(), path)
		assert.True(t, decision.Allowed, path)
		assert.Empty(t, decision.RedirectTo, path)
	}
}

func TestGuardAllowsLoginPage(t *testing.T) {
	guard, _ := newTestGuard(t)

	decision := guard.Evaluate(context.Background(), "/admin/login")

	assert.True(t, decision.Allowed)
}

func TestGuardRedirectsWithoutToken(t *testing.T) {
	guard, _ := newTestGuard(t)

	decision := guard.Evaluate(context.Background(), "/admin/events")

	assert.False(t, decision.Allowed)
	assert.Equal(t, "/admin/login", decision.RedirectTo)
}

func TestGuardRedirectsOnStaleToken(t *testing.T) {
	guard, store := newTestGuard(t)
	store.token = "stale-token"

	decision := guard.Evaluate(context.Background(), "/admin/events")

	assert.False(t, decision.Allowed)
	assert.Equal(t, "/admin/login", decision.RedirectTo)

	// The failed verification also wiped the stored token.
	assert.Empty(t, store.token)
}

func TestGuardPermitsValidSession(t *testing.T) {
	guard, store := newTestGuard(t)
	store.token = testToken

	decision := guard.Evaluate(context.Background(), "/admin/events")

	require.True(t, decision.Allowed)
	assert.True(t, guard.session.IsAuthenticated())
}
