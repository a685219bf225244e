package weather

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-agent/internal/domain/entity"
	"weather-agent/internal/domain/model/external"
)

func newTestUseCase(apiKey string, gateway *fakeGateway) UseCase {
	uc := NewWeatherUseCase(apiKey, "IN", "", gateway).(*weatherUseCase)
	uc.fetcher.now = func() time.Time { return time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC) }
	return uc
}

func TestGetWeatherForPostalCode(t *testing.T) {
	gateway := &fakeGateway{zip: puneZip(), current: clearSky()}

	text, err := newTestUseCase("key", gateway).GetWeather(context.Background(), "411001", entity.ModeCurrent)

	require.NoError(t, err)
	assert.Equal(t, "Current weather for Pune, IN at 2026-10-17 09:30:00:\n"+
		"- clear sky\n"+
		"- Temperature: 27.4°C\n"+
		"- Humidity: 48%\n"+
		"- Wind speed: 3.1 m/s", text)
	assert.Equal(t, []string{"zip", "weather"}, gateway.calls)
}

func TestGetWeatherMissingCredentialMakesNoCalls(t *testing.T) {
	gateway := &fakeGateway{zip: puneZip(), current: clearSky()}

	_, err := newTestUseCase("  ", gateway).GetWeather(context.Background(), "411001", entity.ModeCurrent)

	assert.True(t, errors.Is(err, ErrMissingCredential))
	assert.Empty(t, gateway.calls)
}

func TestGetWeatherEmptyLocation(t *testing.T) {
	gateway := &fakeGateway{}

	_, err := newTestUseCase("key", gateway).GetWeather(context.Background(), "", entity.ModeCurrent)

	assert.True(t, errors.Is(err, ErrInvalidLocation))
	assert.Empty(t, gateway.calls)
}

func TestGetWeatherResolutionFailureSkipsFetch(t *testing.T) {
	gateway := &fakeGateway{direct: nil, current: clearSky()}

	_, err := newTestUseCase("key", gateway).GetWeather(context.Background(), "Atlantis", entity.ModeCurrent)

	assert.True(t, errors.Is(err, ErrLocationNotFound))
	assert.Equal(t, []string{"direct"}, gateway.calls)
}

func TestGetForecastUpcoming(t *testing.T) {
	gateway := &fakeGateway{
		direct: []external.DirectGeocodeResponse{{Name: "Tokyo", Lat: 35.68, Lon: 139.69, Country: "JP"}},
		forecast: &external.ForecastResponse{List: []external.ForecastSlotDTO{{
			DtTxt:   "2026-10-17 18:00:00",
			Main:    &external.MainMetricsDTO{Temp: 19.8, Humidity: 70},
			Weather: []external.WeatherConditionDTO{{Description: "overcast clouds"}},
			Wind:    &external.WindDTO{Speed: 2.2},
		}}},
	}

	result, err := newTestUseCase("key", gateway).GetForecast(context.Background(), "Tokyo", entity.ModeUpcoming)

	require.NoError(t, err)
	assert.Equal(t, "Tokyo", result.Location.City)
	assert.Equal(t, "2026-10-17 18:00:00", result.Timestamp)
	assert.Equal(t, []string{"direct", "forecast"}, gateway.calls)
}
