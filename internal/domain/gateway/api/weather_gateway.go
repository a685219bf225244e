package api

import (
	"context"

	"weather-agent/internal/domain/model/external"
)

// WeatherGateway defines the external OpenWeather calls
type WeatherGateway interface {
	// GeocodeByZip resolves a postal code within a country.
	// Returns nil without error when the upstream has no such code.
	GeocodeByZip(ctx context.Context, zip string, countryCode string) (*external.ZipGeocodeResponse, error)

	// GeocodeByName searches places by free text, returning at most limit matches
	GeocodeByName(ctx context.Context, query string, limit int) ([]external.DirectGeocodeResponse, error)

	// GetCurrentWeather gets present conditions at the coordinates
	GetCurrentWeather(ctx context.Context, lat float64, lon float64) (*external.CurrentWeatherResponse, error)

	// GetForecast gets the 5 day / 3 hour forecast at the coordinates
	GetForecast(ctx context.Context, lat float64, lon float64) (*external.ForecastResponse, error)
}
