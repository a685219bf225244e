package weather

import (
	"context"

	"weather-agent/internal/domain/model/external"
)

// fakeGateway serves canned OpenWeather responses and records every call
type fakeGateway struct {
	zip      *external.ZipGeocodeResponse
	direct   []external.DirectGeocodeResponse
	current  *external.CurrentWeatherResponse
	forecast *external.ForecastResponse
	err      error

	calls      []string
	zipQueries []string
	nameQuery  string
	nameLimit  int
}

func (f *fakeGateway) GeocodeByZip(_ context.Context, zip string, countryCode string) (*external.ZipGeocodeResponse, error) {
	f.calls = append(f.calls, "zip")
	f.zipQueries = append(f.zipQueries, zip+","+countryCode)
	return f.zip, f.err
}

func (f *fakeGateway) GeocodeByName(_ context.Context, query string, limit int) ([]external.DirectGeocodeResponse, error) {
	f.calls = append(f.calls, "direct")
	f.nameQuery = query
	f.nameLimit = limit
	return f.direct, f.err
}

func (f *fakeGateway) GetCurrentWeather(_ context.Context, _ float64, _ float64) (*external.CurrentWeatherResponse, error) {
	f.calls = append(f.calls, "weather")
	return f.current, f.err
}

func (f *fakeGateway) GetForecast(_ context.Context, _ float64, _ float64) (*external.ForecastResponse, error) {
	f.calls = append(f.calls, "forecast")
	return f.forecast, f.err
}

func float(v float64) *float64 {
	return &v
}

func puneZip() *external.ZipGeocodeResponse {
	return &external.ZipGeocodeResponse{Zip: "411001", Name: "Pune", Lat: float(18.5196), Lon: float(73.8554), Country: "IN"}
}

func clearSky() *external.CurrentWeatherResponse {
	return &external.CurrentWeatherResponse{
		Weather: []external.WeatherConditionDTO{{ID: 800, Main: "Clear", Description: "clear sky"}},
		Main:    &external.MainMetricsDTO{Temp: 27.4, Humidity: 48},
		Wind:    &external.WindDTO{Speed: 3.1},
	}
}
