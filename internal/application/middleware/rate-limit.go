package middleware

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"weather-agent/internal/domain/model"
	"weather-agent/pkg/log"
	"weather-agent/pkg/msg"
	"weather-agent/pkg/redis"
)

// RateLimit rejects callers that exceed the per-minute budget with 429.
// Each client IP gets its own window. When Redis itself fails the request is let through.
func RateLimit(limiter *redis.RateLimiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()
			remaining, err := limiter.Allow(c.Request().Context(), ip)

			c.Response().Header().Set("X-RateLimit-Limit", strconv.Itoa(limiter.Limit()))
			c.Response().Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))

			if errors.Is(err, redis.ErrRateLimited) {
				c.Response().Header().Set("Retry-After", "60")
				return c.JSON(http.StatusTooManyRequests, model.ErrorResponseDTO{Error: msg.GetMessage("weather.error.rate-limited")})
			}
			if err != nil {
				log.Warn("Rate limiter unavailable, letting request through", zap.String("remote_ip", ip), zap.Error(err))
			}

			return next(c)
		}
	}
}
