package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode"

	openai "github.com/sashabaranov/go-openai"
)

const GetWeatherToolName = "getWeather"

// HandoffToolName derives the transfer tool name, e.g. transfer_to_weather_agent
func HandoffToolName(target *Agent) string {
	var b strings.Builder
	for _, r := range strings.ToLower(target.Name) {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r):
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return "transfer_to_" + b.String()
}

type getWeatherArgs struct {
	Location string `json:"location"`
}

// NewGetWeatherTool exposes lookup to the model as getWeather{location}
func NewGetWeatherTool(lookup WeatherLookup) Tool {
	return Tool{
		Definition: openai.FunctionDefinition{
			Name:        GetWeatherToolName,
			Description: "Get the weather for a given location.",
			Parameters: json.RawMessage(`{"type":"object","properties":{"location":{"type":"string",` +
				`"description":"City name or postal code, optionally followed by a country code such as 10001,US"}},` +
				`"required":["location"],"additionalProperties":false}`),
		},
		Run: func(ctx context.Context, arguments string) (string, error) {
			var args getWeatherArgs
			if err := json.Unmarshal([]byte(arguments), &args); err != nil {
				return "", fmt.Errorf("invalid %s arguments: %w", GetWeatherToolName, err)
			}
			if strings.TrimSpace(args.Location) == "" {
				return "", errors.New("location is required")
			}
			return lookup.Lookup(ctx, args.Location)
		},
	}
}
