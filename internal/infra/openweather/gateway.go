package openweather

import (
	"weather-agent/internal/domain/gateway/api"
	"weather-agent/pkg/http"
	"weather-agent/pkg/resource"
)

// Settings holds what the weather pipeline reads from app.weather.*
type Settings struct {
	BaseURL       string
	APIKey        string
	DefaultRegion string
	Units         string
	TimeLayout    string
}

// LoadSettings reads the weather section of the application properties
func LoadSettings() Settings {
	return Settings{
		BaseURL:       resource.GetString("app.weather.base-url"),
		APIKey:        resource.GetString("app.weather.api-key"),
		DefaultRegion: resource.GetString("app.weather.default-region"),
		Units:         resource.GetString("app.weather.units"),
		TimeLayout:    resource.GetString("app.weather.time-layout"),
	}
}

// NewGateway builds the OpenWeather gateway with timeouts and throttling from the properties
func NewGateway(settings Settings) api.WeatherGateway {
	return api.NewWeatherGateway(settings.BaseURL, settings.APIKey, settings.Units, http.ClientOptions{
		ConnectionTimeout: resource.GetDuration("app.weather.connection-timeout"),
		ReadTimeout:       resource.GetDuration("app.weather.read-timeout"),
		RequestsPerSecond: resource.GetFloat64("app.weather.requests-per-second"),
		Burst:             resource.GetInt("app.weather.burst"),
		Logger:            http.NewZapLogger("openweather"),
	})
}
