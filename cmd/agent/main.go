package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"weather-agent/configs"
	"weather-agent/internal/application/agent"
	"weather-agent/internal/domain/usecase/weather"
	"weather-agent/internal/infra/openweather"
	"weather-agent/pkg/http"
	"weather-agent/pkg/log"
	"weather-agent/pkg/resource"
)

func main() {
	defer log.Sync()

	prompt := flag.String("prompt", "What is the weather in Tokyo?", "question to ask the voice agent")
	remote := flag.String("remote", "", "base URL of a running weather API, e.g. http://localhost:8080/api; empty calls OpenWeather in-process")
	flag.Parse()

	if strings.TrimSpace(configs.Env.OpenAIAPIKey) == "" {
		log.Fatal("OPENAI_API_KEY is not set")
	}

	var lookup agent.WeatherLookup
	if *remote != "" {
		lookup = agent.NewRemoteLookup(*remote, http.ClientOptions{ReadTimeout: resource.GetDuration("app.weather.read-timeout")})
	} else {
		settings := openweather.LoadSettings()
		useCase := weather.NewWeatherUseCase(settings.APIKey, settings.DefaultRegion, settings.TimeLayout, openweather.NewGateway(settings))
		lookup = agent.NewUseCaseLookup(useCase)
	}

	ctx, cancel := context.WithTimeout(context.Background(), resource.GetDuration("app.agent.timeout"))
	defer cancel()

	runner := agent.NewRunner(
		agent.NewOpenAIClient(configs.Env.OpenAIAPIKey, configs.Env.OpenAIBaseURL),
		configs.Env.OpenAIModel,
		resource.GetInt("app.agent.max-turns"),
	)

	result, err := runner.Run(ctx, agent.NewVoiceAgent(agent.NewWeatherAgent(lookup)), *prompt)
	if err != nil {
		log.Error("Agent run failed", zap.Error(err))
		log.Sync()
		os.Exit(1)
	}

	log.Info("Agent run finished",
		zap.String("run_id", result.RunID),
		zap.String("agent", result.LastAgent),
		zap.Int("turns", result.Turns),
		zap.Strings("handoffs", result.Handoffs),
		zap.Duration("elapsed", result.Elapsed))
	fmt.Println(result.Output)
}
