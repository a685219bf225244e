package weather

import (
	"context"

	"weather-agent/internal/domain/entity"
)

type UseCase interface {
	// GetWeather resolves location and renders its weather for mode
	GetWeather(ctx context.Context, location string, mode entity.ForecastMode) (string, error)

	// GetForecast resolves location and returns the normalized weather for mode
	GetForecast(ctx context.Context, location string, mode entity.ForecastMode) (*entity.ForecastResult, error)

	// HasCredential reports whether the upstream api key is configured
	HasCredential() bool
}
