package agent

import (
	"context"
	"strings"

	"weather-agent/internal/application/controller"
	"weather-agent/internal/domain/entity"
	"weather-agent/internal/domain/model"
	"weather-agent/internal/domain/usecase/weather"
	"weather-agent/pkg/http"
	"weather-agent/pkg/msg"
)

// WeatherLookup answers a getWeather call with text the model can relay to the user
type WeatherLookup interface {
	Lookup(ctx context.Context, location string) (string, error)
}

type useCaseLookup struct {
	useCase weather.UseCase
}

// NewUseCaseLookup answers in-process with the current weather
func NewUseCaseLookup(useCase weather.UseCase) WeatherLookup {
	return &useCaseLookup{useCase: useCase}
}

// Lookup returns the rendered weather, or the user-visible message of a failed lookup
func (l *useCaseLookup) Lookup(ctx context.Context, location string) (string, error) {
	forecast, err := l.useCase.GetWeather(ctx, location, entity.ModeCurrent)
	if err != nil {
		_, message := controller.ErrorResponse(err)
		return message, nil
	}
	return forecast, nil
}

type remoteLookup struct {
	client *http.Client
	path   string
}

// NewRemoteLookup answers by POSTing to a running weather API, e.g. http://localhost:8080/api
func NewRemoteLookup(baseURL string, options http.ClientOptions) WeatherLookup {
	if options.Logger == nil {
		options.Logger = http.NewZapLogger("weather-api")
	}
	return &remoteLookup{
		client: http.NewHttpClient(baseURL, options),
		path:   "/weather",
	}
}

// Lookup returns the forecast field, else the error field, else a fixed fallback
func (l *remoteLookup) Lookup(ctx context.Context, location string) (string, error) {
	successResp, errResp, status, err := l.client.Request().
		WithContext(ctx).
		WithMethod(http.POST).
		WithPath(l.path).
		WithBody(model.WeatherRequestDTO{Location: location}).
		WithSuccessResp(&model.WeatherResponseDTO{}).
		WithErrorResp(&model.ErrorResponseDTO{}).
		Execute()

	if dto, ok := successResp.(*model.WeatherResponseDTO); ok && strings.TrimSpace(dto.Forecast) != "" {
		return dto.Forecast, nil
	}
	if dto, ok := errResp.(*model.ErrorResponseDTO); ok && strings.TrimSpace(dto.Error) != "" {
		return dto.Error, nil
	}
	if err != nil && status == 0 {
		return "", err
	}
	return msg.GetMessage("agent.no-response"), nil
}
