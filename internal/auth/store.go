// Copyright (c) 2026 EventInc. All rights reserved.

package auth

import (
	"context"
)

// # User Data Access

// UserRepository defines the data access contract for user accounts.
type UserRepository interface {

	/*
		FindByID returns the account with the given ID.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - *User: Hydrated entity
		  - error: Database retrieval failures
	*/
	FindByID(context context.Context, id string) (*User, error)

	/*
		FindByEmail returns the account with the given email.

		Parameters:
		  - context: context.Context
		  - email: string

		Returns:
		  - *User: Hydrated entity
		  - error: Database retrieval failures
	*/
	FindByEmail(context context.Context, email string) (*User, error)

	/*
		Create persists a brand-new user account to the storage.

		Parameters:
		  - context: context.Context
		  - user: *User

		Returns:
		  - error: Persistence failures
	*/
	Create(context context.Context, user *User) error

	/*
		UpdateLastLogin stamps the account's most recent successful login.

		Parameters:
		  - context: context.Context
		  - userID: string

		Returns:
		  - error: Persistence failures
	*/
	UpdateLastLogin(context context.Context, userID string) error
}

// # Volatile Data Access

// LoginThrottle defines the contract for tracking failed login attempts.
//
// Counters are volatile and expire on their own; losing them only resets
// the throttle, never locks anyone out.
type LoginThrottle interface {

	/*
		Attempts returns the current failed-attempt count for an email.

		Parameters:
		  - context: context.Context
		  - email: string

		Returns:
		  - int: Failed attempts inside the current window
		  - error: Retrieval failures
	*/
	Attempts(context context.Context, email string) (int, error)

	/*
		RecordFailure increments the failed-attempt counter for an email,
		starting the expiry window on the first failure.

		Parameters:
		  - context: context.Context
		  - email: string

		Returns:
		  - error: Persistence failures
	*/
	RecordFailure(context context.Context, email string) error

	/*
		Reset clears the failed-attempt counter after a successful login.

		Parameters:
		  - context: context.Context
		  - email: string

		Returns:
		  - error: Persistence failures
	*/
	Reset(context context.Context, email string) error
}
