package api

import (
	"context"
	"fmt"
	"strconv"

	"golang.org/x/time/rate"

	"weather-agent/internal/domain/model/external"
	"weather-agent/pkg/http"
)

// weatherGatewayImpl implements the WeatherGateway interface
type weatherGatewayImpl struct {
	zipClient *http.Client
	client    *http.Client
	units     string
}

// NewWeatherGateway creates a WeatherGateway for the OpenWeather API at baseUrl.
// The api key is sent as the appid query parameter and masked in logs.
func NewWeatherGateway(baseUrl string, apiKey string, units string, clientOptions http.ClientOptions) WeatherGateway {
	clientOptions.DefaultQueryParams = map[string]string{"appid": apiKey}
	clientOptions.SensitiveQueryParams = append(clientOptions.SensitiveQueryParams, "appid")

	// Geocoding and weather calls draw from one request budget.
	if clientOptions.Limiter == nil && clientOptions.RequestsPerSecond > 0 {
		burst := max(clientOptions.Burst, 1)
		clientOptions.Limiter = rate.NewLimiter(rate.Limit(clientOptions.RequestsPerSecond), burst)
	}

	// An unknown zip is answered with 404, which means "no match" rather than a failed call.
	// Every other endpoint, direct geocoding included, treats 404 as a failure.
	zipOptions := clientOptions
	zipOptions.Dismiss404 = true

	options := clientOptions
	options.Dismiss404 = false

	if units == "" {
		units = "metric"
	}

	return &weatherGatewayImpl{
		zipClient: http.NewHttpClient(baseUrl, zipOptions),
		client:    http.NewHttpClient(baseUrl, options),
		units:     units,
	}
}

// GeocodeByZip resolves a postal code within a country
func (w *weatherGatewayImpl) GeocodeByZip(ctx context.Context, zip string, countryCode string) (*external.ZipGeocodeResponse, error) {
	successResp, errResp, _, err := w.zipClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath("/geo/1.0/zip").
		WithQueryParams(map[string]string{"zip": zip + "," + countryCode}).
		WithSuccessResp(&external.ZipGeocodeResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err != nil {
		return nil, upstreamError(errResp, err)
	}
	if successResp == nil {
		return nil, nil
	}

	return successResp.(*external.ZipGeocodeResponse), nil
}

// GeocodeByName searches places by free text
func (w *weatherGatewayImpl) GeocodeByName(ctx context.Context, query string, limit int) ([]external.DirectGeocodeResponse, error) {
	successResp, errResp, _, err := w.client.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath("/geo/1.0/direct").
		WithQueryParams(map[string]string{"q": query, "limit": strconv.Itoa(limit)}).
		WithSuccessResp(&[]external.DirectGeocodeResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err != nil {
		return nil, upstreamError(errResp, err)
	}
	if successResp == nil {
		return nil, nil
	}

	return *successResp.(*[]external.DirectGeocodeResponse), nil
}

// GetCurrentWeather gets present conditions at the coordinates
func (w *weatherGatewayImpl) GetCurrentWeather(ctx context.Context, lat float64, lon float64) (*external.CurrentWeatherResponse, error) {
	successResp, errResp, _, err := w.client.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath("/data/2.5/weather").
		WithQueryParams(w.coordinates(lat, lon)).
		WithSuccessResp(&external.CurrentWeatherResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err != nil {
		return nil, upstreamError(errResp, err)
	}

	return successResp.(*external.CurrentWeatherResponse), nil
}

// GetForecast gets the 5 day / 3 hour forecast at the coordinates
func (w *weatherGatewayImpl) GetForecast(ctx context.Context, lat float64, lon float64) (*external.ForecastResponse, error) {
	successResp, errResp, _, err := w.client.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath("/data/2.5/forecast").
		WithQueryParams(w.coordinates(lat, lon)).
		WithSuccessResp(&external.ForecastResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err != nil {
		return nil, upstreamError(errResp, err)
	}

	return successResp.(*external.ForecastResponse), nil
}

func (w *weatherGatewayImpl) coordinates(lat float64, lon float64) map[string]string {
	return map[string]string{
		"lat":   strconv.FormatFloat(lat, 'f', -1, 64),
		"lon":   strconv.FormatFloat(lon, 'f', -1, 64),
		"units": w.units,
	}
}

// upstreamError keeps the OpenWeather message when the error body could be decoded
func upstreamError(errResp any, err error) error {
	if errResp != nil {
		if apiErr, ok := errResp.(*external.APIErrorResponse); ok && apiErr.Message != "" {
			return fmt.Errorf("%s: %w", apiErr.Message, err)
		}
	}
	return err
}
