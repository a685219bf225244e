package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"
)

// ErrRateLimited is returned by Allow when the caller has used up the current window.
var ErrRateLimited = errors.New("rate limit exceeded")

// RateLimiterOptions represents options for rate limiting
type RateLimiterOptions struct {
	// MaxRequestsPerMinute is the number of requests one key may make per minute window
	MaxRequestsPerMinute int
	// Namespace is the namespace for organizing rate limiter keys
	Namespace string
	// Now returns the current time; defaults to time.Now
	Now func() time.Time
}

// NewRateLimiterOptions creates a new rate limiter options with default values
func NewRateLimiterOptions() *RateLimiterOptions {
	return &RateLimiterOptions{
		MaxRequestsPerMinute: 60,
		Now:                  time.Now,
	}
}

// WithMaxRequestsPerMinute sets the per-key budget for each minute window
func (rlo *RateLimiterOptions) WithMaxRequestsPerMinute(max int) *RateLimiterOptions {
	if max < 0 {
		panic(fmt.Sprintf("invalid max requests per minute: %d, must be non-negative", max))
	}
	rlo.MaxRequestsPerMinute = max
	return rlo
}

// WithNamespace sets the namespace for organizing rate limiter keys
func (rlo *RateLimiterOptions) WithNamespace(namespace string) *RateLimiterOptions {
	rlo.Namespace = namespace
	return rlo
}

// Validate validates the rate limiter options
func (rlo *RateLimiterOptions) Validate() error {
	if rlo.MaxRequestsPerMinute <= 0 {
		return fmt.Errorf("max requests per minute must be positive, got %d", rlo.MaxRequestsPerMinute)
	}
	return nil
}

// RateLimiter is a distributed fixed-window limiter; every instance sharing the Redis
// database and namespace shares the same budget.
type RateLimiter struct {
	client *Client
	opts   *RateLimiterOptions
}

// NewRateLimiter creates a new distributed rate limiter
func NewRateLimiter(client *Client, opts *RateLimiterOptions) (*RateLimiter, error) {
	if opts == nil {
		opts = NewRateLimiterOptions()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	return &RateLimiter{client: client, opts: opts}, nil
}

// buildKey constructs the full key using Namespace::key::window format
func (rl *RateLimiter) buildKey(key string, window int64) string {
	suffix := strconv.FormatInt(window, 10)
	if rl.opts.Namespace != "" {
		return rl.opts.Namespace + "::" + key + "::" + suffix
	}
	return key + "::" + suffix
}

// Allow counts one request for key and returns the remaining budget in the current window.
// It returns ErrRateLimited once the budget is exhausted.
func (rl *RateLimiter) Allow(ctx context.Context, key string) (int, error) {
	window := rl.opts.Now().Unix() / 60

	count, err := rl.client.IncrWithExpire(ctx, rl.buildKey(key, window), 2*time.Minute)
	if err != nil {
		return 0, fmt.Errorf("failed to count request: %w", err)
	}

	remaining := rl.opts.MaxRequestsPerMinute - int(count)
	if remaining < 0 {
		return 0, fmt.Errorf("%w: %d requests per minute", ErrRateLimited, rl.opts.MaxRequestsPerMinute)
	}
	return remaining, nil
}

// Limit returns the configured budget per window
func (rl *RateLimiter) Limit() int {
	return rl.opts.MaxRequestsPerMinute
}
