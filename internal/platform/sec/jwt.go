// Copyright (c) 2026 EventInc. All rights reserved.

// Package sec provides cryptographic primitives and token management.
//
// # Architecture
//
// This package isolates security-sensitive code (Hashing, JWT Signing) from
// the domain logic. It acts as an Infrastructure service injected into the
// Application layer via small interfaces.
package sec

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Verification failure kinds.
//
// Callers branch on these with [errors.Is] to map a failed verification onto
// the right client response without parsing error strings.
var (
	// ErrTokenExpired means the token was once valid but its expiry has passed.
	ErrTokenExpired = errors.New("sec: token expired")

	// ErrTokenInvalid means the signature or structure does not match.
	ErrTokenInvalid = errors.New("sec: token invalid")

	// ErrVerificationFailed covers any other decode or claims failure.
	ErrVerificationFailed = errors.New("sec: token verification failed")
)

// DefaultTokenTTL is the lifetime of a session token.
const DefaultTokenTTL = 24 * time.Hour

// AuthClaims represents the payload embedded inside a session token.
//
// # Why custom claims?
//
// By embedding the UserID and Role directly inside the JWT, request handling
// can reconstruct the active user context WITHOUT querying the database on
// every single API request.
type AuthClaims struct {
	jwt.RegisteredClaims

	UserID string `json:"userId"`
	Role   string `json:"role"`
}

// TokenService handles generation and verification of session tokens using
// HS256 with a shared secret.
//
// Sessions are stateless: a new login issues a new token and invalidates
// nothing server-side. Expiry is the only revocation mechanism.
type TokenService struct {
	secret []byte
	issuer string
	logger *slog.Logger
}

// NewTokenService creates a new TokenService.
//
// The secret comes from configuration and must be non-empty; it is never
// logged.
func NewTokenService(secret, issuer string, logger *slog.Logger) (*TokenService, error) {
	if secret == "" {
		return nil, errors.New("sec: signing secret must not be empty")
	}

	return &TokenService{
		secret: []byte(secret),
		issuer: issuer,
		logger: logger,
	}, nil
}

// GenerateAccessToken creates a new signed session token for a user.
func (service *TokenService) GenerateAccessToken(userID, role string, timeToLive time.Duration) (string, error) {
	currentTime := time.Now()
	claims := AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    service.issuer,
			IssuedAt:  jwt.NewNumericDate(currentTime),
			ExpiresAt: jwt.NewNumericDate(currentTime.Add(timeToLive)),
		},
		UserID: userID,
		Role:   role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(service.secret)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign token: %w", err)
	}

	return signedToken, nil
}

// VerifyToken checks the signature and validity of a session token string.
//
// Failures are classified as [ErrTokenExpired], [ErrTokenInvalid], or
// [ErrVerificationFailed] and logged with a truncated token for diagnosis.
// The full token is never logged.
func (service *TokenService) VerifyToken(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("sec: unexpected signing method: %v", token.Header["alg"])
		}
		return service.secret, nil
	})

	if err != nil {
		kind := classifyTokenError(err)
		service.logFailure(tokenString, kind, err)
		return nil, fmt.Errorf("%w: %w", kind, err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		service.logFailure(tokenString, ErrVerificationFailed, nil)
		return nil, ErrVerificationFailed
	}

	return claims, nil
}

// classifyTokenError maps golang-jwt parse errors onto the failure kinds.
func classifyTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid),
		errors.Is(err, jwt.ErrTokenMalformed),
		errors.Is(err, jwt.ErrTokenUnverifiable):
		return ErrTokenInvalid
	default:
		return ErrVerificationFailed
	}
}

// logFailure records a verification failure with a truncated token.
func (service *TokenService) logFailure(tokenString string, kind error, cause error) {
	if service.logger == nil {
		return
	}
	service.logger.Warn("token_verification_failed",
		slog.String("kind", kind.Error()),
		slog.String("token", TruncateToken(tokenString)),
		slog.Any("error", cause),
	)
}

// TruncateToken shortens a token to a loggable prefix.
func TruncateToken(token string) string {
	const keep = 12
	if len(token) <= keep {
		return token
	}
	return token[:keep] + "..."
}
