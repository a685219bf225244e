package health

import (
	"context"

	"weather-agent/internal/domain/model"
	"weather-agent/pkg/redis"
)

// CredentialChecker reports whether the weather upstream can be called at all
type CredentialChecker interface {
	HasCredential() bool
}

type healthUseCase struct {
	upstream    CredentialChecker
	upstreamURL string
	redisClient *redis.Client
}

// NewHealthUseCase builds the health check; redisClient may be nil when Redis is disabled
func NewHealthUseCase(upstream CredentialChecker, upstreamURL string, redisClient *redis.Client) UseCase {
	return &healthUseCase{
		upstream:    upstream,
		upstreamURL: upstreamURL,
		redisClient: redisClient,
	}
}

func (useCase *healthUseCase) CheckHealth(ctx context.Context) model.HealthResponse {
	upstreamHealth := useCase.upstreamHealth()
	redisHealth := useCase.redisHealth(ctx)

	overallStatus := model.StatusUp
	if upstreamHealth.Status != model.StatusUp || redisHealth.Status == model.StatusDown {
		overallStatus = model.StatusDown
	}

	return model.HealthResponse{
		Status:   overallStatus,
		Upstream: upstreamHealth,
		Redis:    redisHealth,
	}
}

func (useCase *healthUseCase) upstreamHealth() model.ComponentHealthStatus {
	details := map[string]string{"url": useCase.upstreamURL}
	if !useCase.upstream.HasCredential() {
		details["error"] = "api key missing"
		return model.ComponentHealthStatus{Status: model.StatusDown, Details: details}
	}
	return model.ComponentHealthStatus{Status: model.StatusUp, Details: details}
}

func (useCase *healthUseCase) redisHealth(ctx context.Context) model.ComponentHealthStatus {
	if useCase.redisClient == nil {
		return model.ComponentHealthStatus{
			Status:  model.StatusUnknown,
			Details: map[string]string{"enabled": "false"},
		}
	}

	status, details := useCase.redisClient.HealthCheck(ctx)
	return model.ComponentHealthStatus{Status: model.HealthStatus(status), Details: details}
}
