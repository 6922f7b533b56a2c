// Copyright (c) 2026 EventInc. All rights reserved.

package auth

import "time"

// # Authentication Constraints

const (
	// SessionTokenTTL is the duration a session token remains valid.
	// 24 hours matches the admin frontend's expectation of a working-day
	// session without a refresh mechanism.
	SessionTokenTTL = 24 * time.Hour
)
