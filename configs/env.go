package configs

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type EnvConfig struct {
	ApplicationName string
	OpenAIAPIKey    string
	OpenAIModel     string
	OpenAIBaseURL   string
}

var Env *EnvConfig

func init() {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	viper.AutomaticEnv()

	Env = &EnvConfig{
		ApplicationName: getStringOrDefault("APPLICATION_NAME", "weather-agent"),
		OpenAIAPIKey:    viper.GetString("OPENAI_API_KEY"),
		OpenAIModel:     getStringOrDefault("OPENAI_MODEL", "gpt-4o-mini"),
		OpenAIBaseURL:   viper.GetString("OPENAI_BASE_URL"),
	}
}

func getStringOrDefault(key, defaultValue string) string {
	value := viper.GetString(key)
	if value == "" {
		return defaultValue
	}
	return value
}
