package redis

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) (*Client, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	port, err := strconv.Atoi(server.Port())
	require.NoError(t, err)

	client, err := NewClient(NewRedisConfig().WithHost(server.Host()).WithPort(port))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return client, server
}

func TestRateLimiterAllowsUpToBudget(t *testing.T) {
	client, _ := newTestClient(t)
	now := time.Date(2026, 10, 17, 12, 0, 5, 0, time.UTC)

	opts := NewRateLimiterOptions().WithMaxRequestsPerMinute(2).WithNamespace("test")
	opts.Now = func() time.Time { return now }
	limiter, err := NewRateLimiter(client, opts)
	require.NoError(t, err)

	ctx := context.Background()

	remaining, err := limiter.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, 1, remaining)

	remaining, err = limiter.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, 0, remaining)

	_, err = limiter.Allow(ctx, "10.0.0.1")
	assert.True(t, errors.Is(err, ErrRateLimited))

	_, err = limiter.Allow(ctx, "10.0.0.2")
	assert.NoError(t, err, "other keys keep their own budget")

	now = now.Add(time.Minute)
	_, err = limiter.Allow(ctx, "10.0.0.1")
	assert.NoError(t, err, "a new window resets the budget")
}

func TestRateLimiterKeysExpire(t *testing.T) {
	client, server := newTestClient(t)

	limiter, err := NewRateLimiter(client, NewRateLimiterOptions().WithNamespace("test"))
	require.NoError(t, err)

	_, err = limiter.Allow(context.Background(), "client")
	require.NoError(t, err)

	keys := server.Keys()
	require.Len(t, keys, 1)
	assert.Equal(t, 2*time.Minute, server.TTL(keys[0]))
}

func TestNewRateLimiterRejectsZeroBudget(t *testing.T) {
	client, _ := newTestClient(t)

	_, err := NewRateLimiter(client, NewRateLimiterOptions().WithMaxRequestsPerMinute(0))

	assert.Error(t, err)
}

func TestHealthCheck(t *testing.T) {
	client, server := newTestClient(t)

	status, details := client.HealthCheck(context.Background())
	assert.Equal(t, StatusUp, status)
	assert.Equal(t, server.Addr(), details["address"])

	server.Close()

	status, details = client.HealthCheck(context.Background())
	assert.Equal(t, StatusDown, status)
	assert.NotEmpty(t, details["error"])
}
