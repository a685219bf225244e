package weather

import (
	"context"
	"fmt"
	"time"

	"weather-agent/internal/domain/entity"
	"weather-agent/internal/domain/gateway/api"
	"weather-agent/internal/domain/model/external"
)

// DefaultTimeLayout stamps current conditions; forecast slots keep the upstream dt_txt.
const DefaultTimeLayout = "2006-01-02 15:04:05"

// ForecastFetcher gets and normalizes the weather at a resolved location
type ForecastFetcher struct {
	gateway    api.WeatherGateway
	timeLayout string
	now        func() time.Time
}

func NewForecastFetcher(gateway api.WeatherGateway, timeLayout string) *ForecastFetcher {
	if timeLayout == "" {
		timeLayout = DefaultTimeLayout
	}
	return &ForecastFetcher{
		gateway:    gateway,
		timeLayout: timeLayout,
		now:        time.Now,
	}
}

// Fetch makes exactly one upstream call for mode
func (f *ForecastFetcher) Fetch(ctx context.Context, location entity.ResolvedLocation, mode entity.ForecastMode) (entity.ForecastResult, error) {
	switch mode {
	case entity.ModeCurrent:
		return f.fetchCurrent(ctx, location)
	case entity.ModeUpcoming:
		return f.fetchUpcoming(ctx, location)
	default:
		return entity.ForecastResult{}, fmt.Errorf("unknown forecast mode %q", mode)
	}
}

func (f *ForecastFetcher) fetchCurrent(ctx context.Context, location entity.ResolvedLocation) (entity.ForecastResult, error) {
	resp, err := f.gateway.GetCurrentWeather(ctx, location.Latitude, location.Longitude)
	if err != nil {
		return entity.ForecastResult{}, upstream("current weather", err)
	}
	if resp == nil || len(resp.Weather) == 0 || resp.Main == nil {
		return entity.ForecastResult{}, fmt.Errorf("%w for %s", ErrNoWeatherData, location)
	}

	return entity.ForecastResult{
		Mode:         entity.ModeCurrent,
		Location:     location,
		Timestamp:    f.now().Format(f.timeLayout),
		Description:  resp.Weather[0].Description,
		TemperatureC: resp.Main.Temp,
		HumidityPct:  resp.Main.Humidity,
		WindSpeedMs:  windSpeed(resp.Wind),
	}, nil
}

func (f *ForecastFetcher) fetchUpcoming(ctx context.Context, location entity.ResolvedLocation) (entity.ForecastResult, error) {
	resp, err := f.gateway.GetForecast(ctx, location.Latitude, location.Longitude)
	if err != nil {
		return entity.ForecastResult{}, upstream("forecast", err)
	}
	if resp == nil || len(resp.List) == 0 {
		return entity.ForecastResult{}, fmt.Errorf("%w for %s", ErrNoForecastData, location)
	}

	next := resp.List[0]
	if len(next.Weather) == 0 || next.Main == nil {
		return entity.ForecastResult{}, fmt.Errorf("%w: incomplete slot %q for %s", ErrNoForecastData, next.DtTxt, location)
	}

	return entity.ForecastResult{
		Mode:         entity.ModeUpcoming,
		Location:     location,
		Timestamp:    next.DtTxt,
		Description:  next.Weather[0].Description,
		TemperatureC: next.Main.Temp,
		HumidityPct:  next.Main.Humidity,
		WindSpeedMs:  windSpeed(next.Wind),
	}, nil
}

func windSpeed(wind *external.WindDTO) float64 {
	if wind == nil {
		return 0
	}
	return wind.Speed
}
