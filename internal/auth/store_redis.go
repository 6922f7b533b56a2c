// Copyright (c) 2026 EventInc. All rights reserved.

package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/eventinc/api/internal/platform/constants"
)

// RedisLoginThrottle implements LoginThrottle using Redis counters with TTL.
type RedisLoginThrottle struct {
	client *redis.Client
}

// NewLoginThrottle creates a new Redis-backed LoginThrottle.
func NewLoginThrottle(client *redis.Client) *RedisLoginThrottle {
	return &RedisLoginThrottle{client: client}
}

/*
Attempts returns the current failed-attempt count for an email.

Description: Returns 0 when no counter exists (no failures inside the window).

Parameters:
  - context: context.Context
  - email: string

Returns:
  - int: Failed attempts inside the current window
  - error: Connectivity errors
*/
func (throttle *RedisLoginThrottle) Attempts(context context.Context, email string) (int, error) {
	count, err := throttle.client.Get(context, throttleKey(email)).Int()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("redis_login_throttle_get_failed: %w", err)
	}

	return count, nil
}

/*
RecordFailure increments the failed-attempt counter for an email.

Description: The expiry window starts on the first failure so a burst of bad
passwords is forgotten after [constants.LoginThrottleWindow].

Parameters:
  - context: context.Context
  - email: string

Returns:
  - error: Connectivity errors
*/
func (throttle *RedisLoginThrottle) RecordFailure(context context.Context, email string) error {
	key := throttleKey(email)

	count, err := throttle.client.Incr(context, key).Result()
	if err != nil {
		return fmt.Errorf("redis_login_throttle_incr_failed: %w", err)
	}

	// First failure starts the window.
	if count == 1 {
		if err := throttle.client.Expire(context, key, constants.LoginThrottleWindow).Err(); err != nil {
			return fmt.Errorf("redis_login_throttle_expire_failed: %w", err)
		}
	}

	return nil
}

/*
Reset clears the failed-attempt counter after a successful login.

Parameters:
  - context: context.Context
  - email: string

Returns:
  - error: Connectivity errors
*/
func (throttle *RedisLoginThrottle) Reset(context context.Context, email string) error {
	if err := throttle.client.Del(context, throttleKey(email)).Err(); err != nil {
		return fmt.Errorf("redis_login_throttle_reset_failed: %w", err)
	}
	return nil
}

// throttleKey builds the Redis key for an email's failure counter.
func throttleKey(email string) string {
	return constants.RedisPrefixLoginAttempts + strings.ToLower(email)
}
