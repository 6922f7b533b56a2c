// Copyright (c) 2026 EventInc. All rights reserved.

package auth

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/eventinc/api/internal/platform/apperr"
	"github.com/eventinc/api/internal/platform/constants"
	"github.com/eventinc/api/internal/platform/sec"
)

// # Application Service

// Service implements the authentication use cases: credential login and
// session verification.
type Service struct {
	users    UserRepository
	throttle LoginThrottle
	tokens   *sec.TokenService
	logger   *slog.Logger
}

// NewService creates a new authentication Service.
func NewService(users UserRepository, throttle LoginThrottle, tokens *sec.TokenService, logger *slog.Logger) *Service {
	return &Service{
		users:    users,
		throttle: throttle,
		tokens:   tokens,
		logger:   logger,
	}
}

/*
Login verifies an email/password pair and issues a session token.

Description: All credential failures collapse into the same generic 401 so a
caller cannot probe which emails exist. Failed attempts are counted per email
and the login is refused once [constants.LoginThrottleMaxAttempts] is reached
inside the throttle window.

Parameters:
  - context: context.Context
  - email: string
  - password: string

Returns:
  - string: Signed session token
  - *User: The authenticated account
  - error: apperr.Unauthorized, apperr.RateLimited, or internal failures
*/
func (service *Service) Login(context context.Context, email, password string) (string, *User, error) {
	attempts, err := service.throttle.Attempts(context, email)
	if err != nil {
		// Throttle storage trouble must not lock everyone out.
		service.logger.Warn("login_throttle_unavailable", slog.Any("error", err))
	} else if attempts >= constants.LoginThrottleMaxAttempts {
		service.logger.Warn("login_throttled",
			slog.String(FieldEmail, email),
			slog.Int("attempts", attempts),
		)
		return "", nil, apperr.RateLimited(int(constants.LoginThrottleWindow.Seconds()))
	}

	user, err := service.users.FindByEmail(context, email)
	if err != nil {
		// Only an absent account counts as bad credentials; storage trouble
		// stays a 500.
		if appError := apperr.As(err); appError != nil && appError.HTTPStatus == http.StatusNotFound {
			return "", nil, service.failCredentials(context, email)
		}
		return "", nil, err
	}

	if !user.IsActive {
		service.logger.Warn("login_inactive_account", slog.String("user_id", user.ID))
		return "", nil, service.failCredentials(context, email)
	}

	if !sec.CheckPasswordHash(password, user.PasswordHash) {
		return "", nil, service.failCredentials(context, email)
	}

	token, err := service.tokens.GenerateAccessToken(user.ID, string(user.Role), SessionTokenTTL)
	if err != nil {
		return "", nil, apperr.Internal(err)
	}

	if err := service.users.UpdateLastLogin(context, user.ID); err != nil {
		// The session is already issued. Losing the stamp is acceptable.
		service.logger.Warn("login_stamp_failed", slog.String("user_id", user.ID), slog.Any("error", err))
	}

	if err := service.throttle.Reset(context, email); err != nil {
		service.logger.Warn("login_throttle_reset_failed", slog.Any("error", err))
	}

	service.logger.Info("login_succeeded",
		slog.String("user_id", user.ID),
		slog.String("role", string(user.Role)),
	)

	return token, user, nil
}

/*
Verify loads the account behind a set of verified session claims.

Description: The account row is re-read so a deactivated or deleted user is
rejected even while holding a cryptographically valid token.

Parameters:
  - context: context.Context
  - claims: *sec.AuthClaims (Already signature-verified claims)

Returns:
  - *User: The account the token belongs to
  - error: apperr.AuthFailure when the account no longer qualifies
*/
func (service *Service) Verify(context context.Context, claims *sec.AuthClaims) (*User, error) {
	user, err := service.users.FindByID(context, claims.UserID)
	if err != nil {
		if appError := apperr.As(err); appError != nil && appError.HTTPStatus == http.StatusNotFound {
			return nil, apperr.AuthFailure(apperr.CodeVerificationFailed, "Verification failed")
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, apperr.AuthFailure(apperr.CodeVerificationFailed, "Verification failed")
	}

	return user, nil
}

// failCredentials records the failed attempt and returns the generic 401.
func (service *Service) failCredentials(context context.Context, email string) error {
	if err := service.throttle.RecordFailure(context, email); err != nil {
		service.logger.Warn("login_throttle_record_failed", slog.Any("error", err))
	}
	return apperr.Unauthorized("Invalid credentials")
}
