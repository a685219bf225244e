package cache

import (
	"context"
	"fmt"

	"weather-agent/pkg/redis"
	"weather-agent/pkg/resource"
)

// NewRedisClient connects to Redis when app.redis.enabled is set.
// It returns a nil client when Redis is disabled.
func NewRedisClient(ctx context.Context) (*redis.Client, error) {
	if !resource.GetBool("app.redis.enabled") {
		return nil, nil
	}

	config := redis.NewRedisConfig().
		WithHost(resource.GetString("app.redis.host")).
		WithPort(resource.GetInt("app.redis.port")).
		WithPassword(resource.GetString("app.redis.password")).
		WithDatabase(resource.GetInt("app.redis.database"))

	client, err := redis.NewClient(config)
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to reach Redis at %s: %w", config.Addr(), err)
	}
	return client, nil
}

// NewRateLimiter builds the inbound limiter from app.redis.rate-limit.*
func NewRateLimiter(client *redis.Client) (*redis.RateLimiter, error) {
	opts := redis.NewRateLimiterOptions().
		WithMaxRequestsPerMinute(resource.GetInt("app.redis.rate-limit.max-requests-per-minute")).
		WithNamespace(resource.GetString("app.redis.rate-limit.namespace"))
	return redis.NewRateLimiter(client, opts)
}
