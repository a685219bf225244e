package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"weather-agent/internal/domain/entity"
	"weather-agent/internal/domain/model"
	"weather-agent/internal/domain/usecase/weather"
	"weather-agent/pkg/msg"
)

type WeatherController struct {
	api     *echo.Group
	useCase weather.UseCase
}

func NewWeatherController(api *echo.Group, useCase weather.UseCase) *WeatherController {
	return &WeatherController{api: api, useCase: useCase}
}

// InitWeatherRoutes initializes weather routes
func (controller *WeatherController) InitWeatherRoutes(middleware ...echo.MiddlewareFunc) {
	controller.api.POST("/weather", controller.GetCurrentWeather, middleware...)
	controller.api.POST("/weather/forecast", controller.GetUpcomingForecast, middleware...)
}

// GetCurrentWeather godoc
// @Summary Get current weather
// @Description Resolve a place name or postal code (optionally "code,CC") and describe the present conditions
// @Tags weather
// @Accept json
// @Produce json
// @Param request body model.WeatherRequestDTO true "Location to look up"
// @Success 200 {object} model.WeatherResponseDTO "Rendered weather"
// @Failure 400 {object} model.ErrorResponseDTO "Missing location or malformed postal code"
// @Failure 404 {object} model.ErrorResponseDTO "Location not found or no weather data"
// @Failure 429 {object} model.ErrorResponseDTO "Too many requests"
// @Failure 500 {object} model.ErrorResponseDTO "Missing api key or upstream failure"
// @Router /weather [post]
func (controller *WeatherController) GetCurrentWeather(c echo.Context) error {
	return controller.respond(c, entity.ModeCurrent)
}

// GetUpcomingForecast godoc
// @Summary Get the next forecast slot
// @Description Resolve a place name or postal code and describe the nearest upcoming 3-hour forecast
// @Tags weather
// @Accept json
// @Produce json
// @Param request body model.WeatherRequestDTO true "Location to look up"
// @Success 200 {object} model.WeatherResponseDTO "Rendered forecast"
// @Failure 400 {object} model.ErrorResponseDTO "Missing location or malformed postal code"
// @Failure 404 {object} model.ErrorResponseDTO "Location not found or no forecast data"
// @Failure 429 {object} model.ErrorResponseDTO "Too many requests"
// @Failure 500 {object} model.ErrorResponseDTO "Missing api key or upstream failure"
// @Router /weather/forecast [post]
func (controller *WeatherController) GetUpcomingForecast(c echo.Context) error {
	return controller.respond(c, entity.ModeUpcoming)
}

func (controller *WeatherController) respond(c echo.Context, mode entity.ForecastMode) error {
	var dto model.WeatherRequestDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponseDTO{Error: msg.GetMessage("weather.error.invalid-request")})
	}

	forecast, err := controller.useCase.GetWeather(c.Request().Context(), strings.TrimSpace(dto.Location), mode)
	if err != nil {
		status, message := ErrorResponse(err)
		return c.JSON(status, model.ErrorResponseDTO{Error: message})
	}

	return c.JSON(http.StatusOK, model.WeatherResponseDTO{Forecast: forecast})
}

// ErrorResponse maps a weather pipeline error to its status and user-visible message
func ErrorResponse(err error) (int, string) {
	var postalErr *weather.PostalCodeError

	switch {
	case errors.Is(err, weather.ErrMissingCredential):
		return http.StatusInternalServerError, msg.GetMessage("weather.error.missing-credential")
	case errors.Is(err, weather.ErrInvalidLocation):
		return http.StatusBadRequest, msg.GetMessage("weather.error.invalid-request")
	case errors.As(err, &postalErr):
		return http.StatusBadRequest, msg.GetMessage("weather.error.invalid-postal-code", postalErr.Region)
	case errors.Is(err, weather.ErrLocationNotFound):
		return http.StatusNotFound, msg.GetMessage("weather.error.not-found")
	case errors.Is(err, weather.ErrNoWeatherData):
		return http.StatusNotFound, msg.GetMessage("weather.error.no-weather-data")
	case errors.Is(err, weather.ErrNoForecastData):
		return http.StatusNotFound, msg.GetMessage("weather.error.no-forecast-data")
	default:
		return http.StatusInternalServerError, msg.GetMessage("weather.error.upstream")
	}
}
