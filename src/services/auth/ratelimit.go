package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	maxLoginAttempts = 5
	lockoutWindow    = 15 * time.Minute
)

// RateLimiter counts failed logins per email in Redis. With no Redis client
// every check passes, so a missing REDIS_URI just disables the feature.
type RateLimiter struct {
	client *redis.Client
}

func NewRateLimiter(client *redis.Client) *RateLimiter {
	return &RateLimiter{client: client}
}

func attemptsKey(email string) string {
	return fmt.Sprintf("login_attempts:%s", email)
}

// IsLimited reports whether the email has exhausted its attempts within the
// current window.
func (r *RateLimiter) IsLimited(ctx context.Context, email string) bool {
	if r.client == nil {
		return false
	}

	count, err := r.client.Get(ctx, attemptsKey(email)).Int()
	if err != nil {
		return false // missing key or Redis trouble both mean "not limited"
	}
	return count >= maxLoginAttempts
}

// RegisterFailure bumps the failure counter and starts the window on the
// first failure.
func (r *RateLimiter) RegisterFailure(ctx context.Context, email string) {
	if r.client == nil {
		return
	}

	key := attemptsKey(email)
	count, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		return
	}
	if count == 1 {
		r.client.Expire(ctx, key, lockoutWindow)
	}
}

// Reset clears the counter after a successful login.
func (r *RateLimiter) Reset(ctx context.Context, email string) {
	if r.client == nil {
		return
	}
	r.client.Del(ctx, attemptsKey(email))
}

// RemainingCooldown returns how long the email stays locked out.
func (r *RateLimiter) RemainingCooldown(ctx context.Context, email string) time.Duration {
	if r.client == nil {
		return 0
	}

	ttl, err := r.client.TTL(ctx, attemptsKey(email)).Result()
	if err != nil || ttl < 0 {
		return 0
	}
	return ttl
}
