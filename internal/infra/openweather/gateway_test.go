package openweather

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadSettingsDefaults(t *testing.T) {
	settings := LoadSettings()

	assert.Equal(t, "https://api.openweathermap.org", settings.BaseURL)
	assert.Equal(t, "IN", settings.DefaultRegion)
	assert.Equal(t, "metric", settings.Units)
	assert.Equal(t, "2006-01-02 15:04:05", settings.TimeLayout)
}
