package http

import (
	"go.uber.org/zap"

	"weather-agent/pkg/log"
)

// HTTPLogger interface defines methods for logging HTTP requests and responses
type HTTPLogger interface {
	// LogRequest is called before the request is sent with all request data formed
	LogRequest(method, url string, headers map[string]string, body string)

	// LogResponseSuccess is called immediately after receiving a 2xx response
	LogResponseSuccess(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64)

	// LogResponseError is called after a transport failure or a non-2xx response
	LogResponseError(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64, err error)
}

type noopLogger struct{}

func (noopLogger) LogRequest(string, string, map[string]string, string) {}

func (noopLogger) LogResponseSuccess(string, string, map[string]string, string, int, string, int64) {}

func (noopLogger) LogResponseError(string, string, map[string]string, string, int, string, int64, error) {
}

// ZapLogger writes outbound traffic through pkg/log. Bodies are only logged at debug level.
type ZapLogger struct {
	Name string
}

func NewZapLogger(name string) *ZapLogger {
	return &ZapLogger{Name: name}
}

func (z *ZapLogger) LogRequest(method, url string, _ map[string]string, body string) {
	log.Debug("Outbound request",
		zap.String("client", z.Name),
		zap.String("method", method),
		zap.String("url", url),
		zap.String("body", body))
}

func (z *ZapLogger) LogResponseSuccess(method, url string, _ map[string]string, _ string, httpStatus int, responseBody string, latency int64) {
	log.Info("Outbound request succeeded",
		zap.String("client", z.Name),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency))
	log.Debug("Outbound response body", zap.String("client", z.Name), zap.String("body", responseBody))
}

func (z *ZapLogger) LogResponseError(method, url string, _ map[string]string, _ string, httpStatus int, responseBody string, latency int64, err error) {
	log.Warn("Outbound request failed",
		zap.String("client", z.Name),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency),
		zap.String("response", responseBody),
		zap.Error(err))
}
