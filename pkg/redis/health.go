package redis

import (
	"context"
	"strconv"
	"time"
)

// HealthStatus represents the health status
type HealthStatus string

const (
	StatusUp      HealthStatus = "UP"
	StatusDown    HealthStatus = "DOWN"
	StatusUnknown HealthStatus = "UNKNOWN"
)

// HealthCheck pings Redis and reports its state with connection details
func (c *Client) HealthCheck(ctx context.Context) (HealthStatus, map[string]string) {
	details := map[string]string{
		"address":  c.config.Addr(),
		"database": strconv.Itoa(c.config.Database),
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	start := time.Now()
	if err := c.Ping(ctx); err != nil {
		details["error"] = err.Error()
		return StatusDown, details
	}
	details["latency"] = time.Since(start).String()

	stats := c.rdb.PoolStats()
	details["total_conns"] = strconv.FormatUint(uint64(stats.TotalConns), 10)
	details["idle_conns"] = strconv.FormatUint(uint64(stats.IdleConns), 10)

	return StatusUp, details
}
