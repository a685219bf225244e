package resource

import (
	"bytes"
	"log"
	"os"
	"regexp"
	"time"

	"github.com/spf13/viper"

	"weather-agent/configs"
)

var properties *viper.Viper
var envPattern = regexp.MustCompile(`\$\{([^:}]+)(?::([^}]*))?}`)

// init loads application properties from PROPERTIES_FILE_PATH, or the bundled application.yml
func init() {
	if value, ok := os.LookupEnv("PROPERTIES_FILE_PATH"); ok {
		Init(value)
		return
	}
	if err := Load(configs.ApplicationYAML); err != nil {
		log.Fatalf("Fail to read bundled properties: %v", err)
	}
}

// Init replaces the loaded properties with the YAML file at filepath
func Init(filepath string) {
	content, err := os.ReadFile(filepath)
	if err != nil {
		log.Fatalf("Fail to read properties: %v", err)
	}
	if err := Load(content); err != nil {
		log.Fatalf("Fail to parse properties %s: %v", filepath, err)
	}
}

// Load replaces the loaded properties with the given YAML document, resolving ${ENV:default} placeholders
func Load(content []byte) error {
	v := viper.New()
	v.SetConfigType("yml")
	if err := v.ReadConfig(bytes.NewReader(content)); err != nil {
		return err
	}

	resolved := make(map[string]any)
	parsePropertiesMap("", v.AllSettings(), resolved)
	if err := v.MergeConfigMap(resolved); err != nil {
		return err
	}

	properties = v
	return nil
}

// parsePropertiesMap flattens the YAML tree into dotted keys
func parsePropertiesMap(prefix string, data map[string]any, result map[string]any) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = resolveEnvVariable(v)
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64, bool:
			result[fullKey] = v
		case map[string]any:
			parsePropertiesMap(fullKey, v, result)
		default:
			log.Printf("Ignoring key '%s' with unsupported type.", fullKey)
		}
	}
}

// resolveEnvVariable replaces every ${NAME:default} in value with the environment value or its default
func resolveEnvVariable(value string) string {
	return envPattern.ReplaceAllStringFunc(value, func(placeholder string) string {
		matches := envPattern.FindStringSubmatch(placeholder)
		if envValue, exists := os.LookupEnv(matches[1]); exists {
			return envValue
		}
		return matches[2]
	})
}

func Get(key string) any {
	return properties.Get(key)
}

func GetString(key string) string {
	return properties.GetString(key)
}

func GetBool(key string) bool {
	return properties.GetBool(key)
}

func GetDuration(key string) time.Duration {
	return properties.GetDuration(key)
}

func GetInt(key string) int {
	return properties.GetInt(key)
}

func GetFloat64(key string) float64 {
	return properties.GetFloat64(key)
}

func GetStringSlice(key string) []string {
	return properties.GetStringSlice(key)
}
