// Copyright (c) 2026 EventInc. All rights reserved.

package auth

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventinc/api/internal/platform/apperr"
	"github.com/eventinc/api/internal/platform/constants"
	"github.com/eventinc/api/internal/platform/sec"
)

// # Test Doubles

type memoryUserRepo struct {
	byEmail map[string]*User
	byID    map[string]*User

	lastLoginStamped []string
}

func newMemoryUserRepo(users ...*User) *memoryUserRepo {
	repo := &memoryUserRepo{
		byEmail: map[string]*User{},
		byID:    map[string]*User{},
	}
	for _, user := range users {
		repo.byEmail[user.Email] = user
		repo.byID[user.ID] = user
	}
	return repo
}

func (r *memoryUserRepo) FindByID(_ context.Context, id string) (*User, error) {
	if user, ok := r.byID[id]; ok {
		return user, nil
	}
	return nil, apperr.NotFound("User")
}

func (r *memoryUserRepo) FindByEmail(_ context.Context, email string) (*User, error) {
	if user, ok := r.byEmail[email]; ok {
		return user, nil
	}
	return nil, apperr.NotFound("User")
}

func (r *memoryUserRepo) Create(_ context.Context, user *User) error {
	r.byEmail[user.Email] = user
	r.byID[user.ID] = user
	return nil
}

func (r *memoryUserRepo) UpdateLastLogin(_ context.Context, userID string) error {
	r.lastLoginStamped = append(r.lastLoginStamped, userID)
	return nil
}

type memoryThrottle struct {
	counts map[string]int
}

func newMemoryThrottle() *memoryThrottle {
	return &memoryThrottle{counts: map[string]int{}}
}

func (t *memoryThrottle) Attempts(_ context.Context, email string) (int, error) {
	return t.counts[email], nil
}

func (t *memoryThrottle) RecordFailure(_ context.Context, email string) error {
	t.counts[email]++
	return nil
}

func (t *memoryThrottle) Reset(_ context.Context, email string) error {
	delete(t.counts, email)
	return nil
}

// # Fixtures

const testPassword = "correct-horse-battery"

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testTokenService(t *testing.T) *sec.TokenService {
	t.Helper()
	tokens, err := sec.NewTokenService("unit-test-secret", "eventinc.com", testLogger())
	require.NoError(t, err)
	return tokens
}

func activeUser(t *testing.T) *User {
	t.Helper()
	hash, err := sec.HashPassword(testPassword)
	require.NoError(t, err)
	return &User{
		ID:           "0198f3a2-1111-7aaa-bbbb-cccccccccccc",
		Email:        "ana@eventinc.com",
		PasswordHash: hash,
		FirstName:    "Ana",
		LastName:     "Duarte",
		Role:         sec.RoleAdmin,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}
}

// # Login

func TestLoginSuccess(t *testing.T) {
	user := activeUser(t)
	repo := newMemoryUserRepo(user)
	throttle := newMemoryThrottle()
	service := NewService(repo, throttle, testTokenService(t), testLogger())

	token, loggedIn, err := service.Login(context.Background(), user.Email, testPassword)

	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, user.ID, loggedIn.ID)
	assert.Equal(t, []string{user.ID}, repo.lastLoginStamped)

	claims, err := testTokenService(t).VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, string(sec.RoleAdmin), claims.Role)
}

func TestLoginFailures(t *testing.T) {
	user := activeUser(t)
	inactive := activeUser(t)
	inactive.ID = "0198f3a2-2222-7aaa-bbbb-cccccccccccc"
	inactive.Email = "gone@eventinc.com"
	inactive.IsActive = false

	testCases := []struct {
		name     string
		email    string
		password string
	}{
		{"unknown email", "nobody@eventinc.com", testPassword},
		{"wrong password", user.Email, "nope"},
		{"inactive account", inactive.Email, testPassword},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			throttle := newMemoryThrottle()
			service := NewService(newMemoryUserRepo(user, inactive), throttle, testTokenService(t), testLogger())

			token, loggedIn, err := service.Login(context.Background(), testCase.email, testCase.password)

			require.Error(t, err)
			assert.Empty(t, token)
			assert.Nil(t, loggedIn)

			// Every failure mode returns the exact same response.
			appError := apperr.As(err)
			require.NotNil(t, appError)
			assert.Equal(t, 401, appError.HTTPStatus)
			assert.Equal(t, "Invalid credentials", appError.Message)

			assert.Equal(t, 1, throttle.counts[testCase.email])
		})
	}
}

func TestLoginThrottled(t *testing.T) {
	user := activeUser(t)
	throttle := newMemoryThrottle()
	throttle.counts[user.Email] = constants.LoginThrottleMaxAttempts
	service := NewService(newMemoryUserRepo(user), throttle, testTokenService(t), testLogger())

	_, _, err := service.Login(context.Background(), user.Email, testPassword)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, 429, appError.HTTPStatus)
}

func TestLoginResetsThrottleOnSuccess(t *testing.T) {
	user := activeUser(t)
	throttle := newMemoryThrottle()
	throttle.counts[user.Email] = constants.LoginThrottleMaxAttempts - 1
	service := NewService(newMemoryUserRepo(user), throttle, testTokenService(t), testLogger())

	_, _, err := service.Login(context.Background(), user.Email, testPassword)

	require.NoError(t, err)
	assert.Zero(t, throttle.counts[user.Email])
}

// # Verify

func TestVerifyReloadsAccount(t *testing.T) {
	user := activeUser(t)
	service := NewService(newMemoryUserRepo(user), newMemoryThrottle(), testTokenService(t), testLogger())

	claims := &sec.AuthClaims{UserID: user.ID, Role: string(user.Role)}
	verified, err := service.Verify(context.Background(), claims)

	require.NoError(t, err)
	assert.Equal(t, user.Email, verified.Email)
}

func TestVerifyRejectsMissingOrInactiveAccount(t *testing.T) {
	user := activeUser(t)
	user.IsActive = false
	service := NewService(newMemoryUserRepo(user), newMemoryThrottle(), testTokenService(t), testLogger())

	for _, userID := range []string{user.ID, "0198f3a2-9999-7aaa-bbbb-cccccccccccc"} {
		_, err := service.Verify(context.Background(), &sec.AuthClaims{UserID: userID})

		appError := apperr.As(err)
		require.NotNil(t, appError)
		assert.Equal(t, 401, appError.HTTPStatus)
		assert.Equal(t, apperr.CodeVerificationFailed, appError.Code)
	}
}
