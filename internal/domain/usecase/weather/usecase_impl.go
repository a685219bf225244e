package weather

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"weather-agent/internal/domain/entity"
	"weather-agent/internal/domain/gateway/api"
	"weather-agent/pkg/log"
	"weather-agent/pkg/msg"
)

type weatherUseCase struct {
	apiKey   string
	resolver *LocationResolver
	fetcher  *ForecastFetcher
}

func NewWeatherUseCase(apiKey string, defaultRegion string, timeLayout string, apiGateway api.WeatherGateway) UseCase {
	return &weatherUseCase{
		apiKey:   strings.TrimSpace(apiKey),
		resolver: NewLocationResolver(apiGateway, defaultRegion),
		fetcher:  NewForecastFetcher(apiGateway, timeLayout),
	}
}

// HasCredential reports whether the upstream api key is configured
func (uc *weatherUseCase) HasCredential() bool {
	return uc.apiKey != ""
}

// GetWeather resolves location and renders its weather for mode
func (uc *weatherUseCase) GetWeather(ctx context.Context, location string, mode entity.ForecastMode) (string, error) {
	result, err := uc.GetForecast(ctx, location, mode)
	if err != nil {
		return "", err
	}
	return Render(*result), nil
}

// GetForecast checks the credential, then resolves and fetches sequentially
func (uc *weatherUseCase) GetForecast(ctx context.Context, location string, mode entity.ForecastMode) (*entity.ForecastResult, error) {
	if !uc.HasCredential() {
		return nil, ErrMissingCredential
	}
	if strings.TrimSpace(location) == "" {
		return nil, ErrInvalidLocation
	}

	log.Info(msg.GetMessage("weather.resolve-start", location), zap.String("mode", string(mode)))

	resolved, err := uc.resolver.Resolve(ctx, location)
	if err != nil {
		logFailure("resolve", location, err)
		return nil, err
	}

	log.Info(msg.GetMessage("weather.resolved", location, resolved.City, resolved.Country, resolved.Latitude, resolved.Longitude))
	log.Info(msg.GetMessage("weather.fetch-start", mode, resolved.City, resolved.Country))

	result, err := uc.fetcher.Fetch(ctx, resolved, mode)
	if err != nil {
		logFailure("fetch", location, err)
		return nil, err
	}

	return &result, nil
}

// logFailure logs upstream failures as errors and caller mistakes as warnings
func logFailure(step string, location string, err error) {
	fields := []zap.Field{zap.String("step", step), zap.String("location", location), zap.Error(err)}
	if errors.Is(err, ErrUpstreamUnavailable) {
		log.Error("Weather lookup failed", fields...)
		return
	}
	log.Warn("Weather lookup rejected", fields...)
}
