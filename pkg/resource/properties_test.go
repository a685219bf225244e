package resource

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-agent/configs"
)

func TestBundledProperties(t *testing.T) {
	assert.Equal(t, "IN", GetString("app.weather.default-region"))
	assert.Equal(t, "2006-01-02 15:04:05", GetString("app.weather.time-layout"))
	assert.Equal(t, 10*time.Second, GetDuration("app.weather.read-timeout"))
	assert.Equal(t, 10, GetInt("app.agent.max-turns"))
}

func TestLoadResolvesPlaceholders(t *testing.T) {
	t.Setenv("WEATHER_TEST_REGION", "US")
	t.Cleanup(func() { _ = Load(configs.ApplicationYAML) })

	err := Load([]byte(`
app:
  region: ${WEATHER_TEST_REGION:IN}
  fallback: ${WEATHER_TEST_UNSET:IN}
  empty: ${WEATHER_TEST_UNSET:}
  url: http://${WEATHER_TEST_REGION:x}.example.com
  port: 8080
`))
	require.NoError(t, err)

	assert.Equal(t, "US", GetString("app.region"))
	assert.Equal(t, "IN", GetString("app.fallback"))
	assert.Equal(t, "", GetString("app.empty"))
	assert.Equal(t, "http://US.example.com", GetString("app.url"))
	assert.Equal(t, 8080, GetInt("app.port"))
}
