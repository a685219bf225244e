package weather

import (
	"strconv"
	"strings"

	"weather-agent/internal/domain/entity"
)

var headerLabels = map[entity.ForecastMode]string{
	entity.ModeCurrent:  "Current weather",
	entity.ModeUpcoming: "Weather forecast",
}

// Render formats a result as one header line followed by description, temperature, humidity and wind.
func Render(result entity.ForecastResult) string {
	label, ok := headerLabels[result.Mode]
	if !ok {
		label = headerLabels[entity.ModeCurrent]
	}

	var b strings.Builder
	b.WriteString(label + " for " + result.Location.City + ", " + result.Location.Country + " at " + result.Timestamp + ":\n")
	b.WriteString("- " + result.Description + "\n")
	b.WriteString("- Temperature: " + formatNumber(result.TemperatureC) + "°C\n")
	b.WriteString("- Humidity: " + strconv.Itoa(result.HumidityPct) + "%\n")
	b.WriteString("- Wind speed: " + formatNumber(result.WindSpeedMs) + " m/s")
	return b.String()
}

func formatNumber(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
