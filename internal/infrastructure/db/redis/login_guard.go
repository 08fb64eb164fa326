package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	DefaultMaxAttempts = 5
	DefaultWindow      = 15 * time.Minute
)

// LoginGuard counts failed logins per email in Redis. The counter starts its
// window on the first failure and is dropped after a successful login.
// Key format: login:failures:<lowercased email>
type LoginGuard struct {
	client      redis.Cmdable
	maxAttempts int
	window      time.Duration
}

// NewLoginGuard creates a LoginGuard; non-positive limits fall back to the defaults.
func NewLoginGuard(client redis.Cmdable, maxAttempts int, window time.Duration) *LoginGuard {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	if window <= 0 {
		window = DefaultWindow
	}
	return &LoginGuard{client: client, maxAttempts: maxAttempts, window: window}
}

// Blocked reports whether email has used up its attempts in the current window.
func (g *LoginGuard) Blocked(ctx context.Context, email string) (bool, error) {
	n, err := g.client.Get(ctx, g.key(email)).Int()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("login guard check: %w", err)
	}
	return n >= g.maxAttempts, nil
}

// RecordFailure increments the failure counter, opening a window on the first one.
func (g *LoginGuard) RecordFailure(ctx context.Context, email string) error {
	key := g.key(email)
	n, err := g.client.Incr(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("login guard record: %w", err)
	}
	if n == 1 {
		if err := g.client.Expire(ctx, key, g.window).Err(); err != nil {
			return fmt.Errorf("login guard expire: %w", err)
		}
	}
	return nil
}

func (g *LoginGuard) Reset(ctx context.Context, email string) error {
	return g.client.Del(ctx, g.key(email)).Err()
}

func (g *LoginGuard) key(email string) string {
	return "login:failures:" + strings.ToLower(strings.TrimSpace(email))
}
