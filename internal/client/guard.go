// Copyright (c) 2026 EventInc. All rights reserved.

package client

import (
	"context"
	"errors"
	"log/slog"
	"strings"
)

// Guard decides whether a navigation to an admin path may proceed, mirroring
// the admin frontend's route protection.
type Guard struct {
	session *Session
	logger  *slog.Logger

	// protectedPrefix is the path prefix the guard intercepts.
	protectedPrefix string

	// allowList holds paths under the prefix that never require a session.
	allowList []string

	// loginPath is where rejected navigations are redirected.
	loginPath string
}

// Decision is the outcome of a guard evaluation.
type Decision struct {
	// Allowed reports whether the navigation may proceed.
	Allowed bool

	// RedirectTo is the path to send the caller to instead, when not allowed.
	RedirectTo string
}

// permit is the decision that lets a navigation through unchanged.
var permit = Decision{Allowed: true}

// NewGuard creates a Guard protecting /admin with /admin/login allow-listed.
func NewGuard(session *Session, logger *slog.Logger) *Guard {
	return &Guard{
		session:         session,
		logger:          logger,
		protectedPrefix: "/admin",
		allowList:       []string{"/admin/login"},
		loginPath:       "/admin/login",
	}
}

// Evaluate runs the guard for a navigation to path.
//
// Paths outside the protected prefix are never intercepted. Allow-listed
// paths pass without a session. Everything else requires a full verification
// round trip against the API before the decision is returned.
func (guard *Guard) Evaluate(ctx context.Context, path string) Decision {
	if !guard.isProtected(path) {
		return permit
	}

	for _, allowed := range guard.allowList {
		if path == allowed {
			return permit
		}
	}

	err := guard.session.VerifyAuth(ctx)
	if errors.Is(err, ErrNoToken) {
		guard.logger.Warn("guard_no_token", slog.String("path", path))
		return Decision{RedirectTo: guard.loginPath}
	}
	if err != nil {
		guard.logger.Warn("guard_verification_failed",
			slog.String("path", path),
			slog.Any("error", err),
		)
		return Decision{RedirectTo: guard.loginPath}
	}

	guard.logger.Info("guard_permitted", slog.String("path", path))
	return permit
}

// isProtected reports whether path falls under the protected prefix.
func (guard *Guard) isProtected(path string) bool {
	if path == guard.protectedPrefix {
		return true
	}
	return strings.HasPrefix(path, guard.protectedPrefix+"/")
}
