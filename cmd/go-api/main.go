// @title Weather Agent API
// @version 1.0
// @description Resolves a place name or postal code and reports its current weather or next forecast slot.
// @BasePath /api
package main

import (
	"context"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"weather-agent/configs"
	_ "weather-agent/docs"
	"weather-agent/internal/application/controller"
	"weather-agent/internal/application/middleware"
	"weather-agent/internal/domain/usecase/health"
	"weather-agent/internal/domain/usecase/weather"
	"weather-agent/internal/infra/cache"
	"weather-agent/internal/infra/openweather"
	"weather-agent/pkg/log"
	"weather-agent/pkg/msg"
	"weather-agent/pkg/resource"
)

func main() {
	defer log.Sync()
	log.Info(msg.GetMessage("app.start", configs.Env.ApplicationName))

	// Init infra
	e := echo.New()
	e.HideBanner = true
	middleware.SetupRequestID(e)
	middleware.SetupRequestLogger(e)
	api := e.Group(resource.GetString("app.server.context-path"))

	settings := openweather.LoadSettings()
	weatherGateway := openweather.NewGateway(settings)

	redisClient, err := cache.NewRedisClient(context.Background())
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	if redisClient != nil {
		defer func() { _ = redisClient.Close() }()
	}

	// Init UseCase
	weatherUseCase := weather.NewWeatherUseCase(settings.APIKey, settings.DefaultRegion, settings.TimeLayout, weatherGateway)
	healthUseCase := health.NewHealthUseCase(weatherUseCase, settings.BaseURL, redisClient)

	if !weatherUseCase.HasCredential() {
		log.Warn(msg.GetMessage("weather.error.missing-credential"))
	}

	// Init Controller
	healthController := controller.NewHealthController(api, healthUseCase)
	weatherController := controller.NewWeatherController(api, weatherUseCase)

	// Init Routes
	var weatherMiddleware []echo.MiddlewareFunc
	if redisClient != nil {
		limiter, err := cache.NewRateLimiter(redisClient)
		if err != nil {
			log.Fatal("Failed to create rate limiter", zap.Error(err))
		}
		weatherMiddleware = append(weatherMiddleware, middleware.RateLimit(limiter))
	}

	healthController.InitHealthRoutes()
	weatherController.InitWeatherRoutes(weatherMiddleware...)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Start Routes
	port := resource.GetString("app.server.port")
	log.Info(msg.GetMessage("app.started", configs.Env.ApplicationName, port))
	e.Logger.Fatal(e.Start(":" + port))
}
