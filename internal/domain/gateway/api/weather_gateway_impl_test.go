package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkghttp "weather-agent/pkg/http"
)

func newTestGateway(t *testing.T, handler http.HandlerFunc) WeatherGateway {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewWeatherGateway(server.URL, "test-key", "metric", pkghttp.ClientOptions{})
}

func TestGeocodeByZip(t *testing.T) {
	gateway := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/geo/1.0/zip", r.URL.Path)
		assert.Equal(t, "411001,IN", r.URL.Query().Get("zip"))
		assert.Equal(t, "test-key", r.URL.Query().Get("appid"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"zip":"411001","name":"Pune","lat":18.5196,"lon":73.8554,"country":"IN"}`))
	})

	resp, err := gateway.GeocodeByZip(context.Background(), "411001", "IN")

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, "Pune", resp.Name)
	assert.Equal(t, 18.5196, *resp.Lat)
	assert.Equal(t, 73.8554, *resp.Lon)
}

func TestGeocodeByZipNotFound(t *testing.T) {
	gateway := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"cod":"404","message":"not found"}`))
	})

	resp, err := gateway.GeocodeByZip(context.Background(), "999999", "IN")

	require.NoError(t, err)
	assert.Nil(t, resp)
}

func TestGeocodeByName(t *testing.T) {
	gateway := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/geo/1.0/direct", r.URL.Path)
		assert.Equal(t, "São Paulo", r.URL.Query().Get("q"))
		assert.Equal(t, "1", r.URL.Query().Get("limit"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"name":"São Paulo","lat":-23.55,"lon":-46.63,"country":"BR","state":"São Paulo"}]`))
	})

	matches, err := gateway.GeocodeByName(context.Background(), "São Paulo", 1)

	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "BR", matches[0].Country)
}

func TestGetCurrentWeatherUpstreamError(t *testing.T) {
	gateway := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"cod":401,"message":"Invalid API key."}`))
	})

	resp, err := gateway.GetCurrentWeather(context.Background(), 1, 2)

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.True(t, errors.Is(err, pkghttp.ErrUnexpectedStatus))
	assert.Contains(t, err.Error(), "Invalid API key.")
}

func TestGetForecast(t *testing.T) {
	gateway := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/data/2.5/forecast", r.URL.Path)
		assert.Equal(t, "48.8566", r.URL.Query().Get("lat"))
		assert.Equal(t, "2.3522", r.URL.Query().Get("lon"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"cod":"200","cnt":1,"list":[{"dt":1760702400,"main":{"temp":14.2,"humidity":81},
			"weather":[{"id":500,"main":"Rain","description":"light rain"}],"wind":{"speed":4.6},
			"dt_txt":"2026-10-17 12:00:00"}],"city":{"name":"Paris","country":"FR"}}`))
	})

	resp, err := gateway.GetForecast(context.Background(), 48.8566, 2.3522)

	require.NoError(t, err)
	require.Len(t, resp.List, 1)
	assert.Equal(t, "2026-10-17 12:00:00", resp.List[0].DtTxt)
	assert.Equal(t, "light rain", resp.List[0].Weather[0].Description)
	assert.Equal(t, 81, resp.List[0].Main.Humidity)
}

func TestGeocodeByNameNotFoundStatusIsAnError(t *testing.T) {
	gateway := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"cod":"404","message":"Internal error"}`))
	})

	matches, err := gateway.GeocodeByName(context.Background(), "Paris", 1)

	require.Error(t, err)
	assert.Nil(t, matches)
	assert.True(t, errors.Is(err, pkghttp.ErrUnexpectedStatus))
	assert.Contains(t, err.Error(), "Internal error")
}
