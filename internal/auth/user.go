// Copyright (c) 2026 EventInc. All rights reserved.

/*
Package auth implements the user identity and session layer.

It defines the core domain entity (User) and the logic for credential
verification and stateless session tokens.

# Architecture

Sessions are deliberately stateless: a login issues a signed, expiring token
and stores nothing server-side. Verification re-reads the account row so a
deactivated user is locked out as soon as their token is next presented.
*/
package auth

import (
	"time"

	"github.com/eventinc/api/internal/platform/sec"
)

// # Domain Entities

// User represents a registered member of the EventInc back office.
type User struct {
	ID           string       `json:"id"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"` // Explicitly omitted from JSON for security.
	FirstName    string       `json:"firstName"`
	LastName     string       `json:"lastName"`
	Role         sec.UserRole `json:"role"`
	IsActive     bool         `json:"isActive"`
	LastLoginAt  *time.Time   `json:"lastLoginAt,omitempty"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

// FullName returns the display name composed from first and last name.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// # Field Identifiers

// Global field names for validation and identity mapping in the authentication domain.
const (
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldToken    = "token"
	FieldUser     = "user"
)
