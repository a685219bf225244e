package entity

// ForecastMode selects which upstream conditions a forecast describes
type ForecastMode string

const (
	// ModeCurrent describes present conditions, stamped with the time they were observed
	ModeCurrent ForecastMode = "current"
	// ModeUpcoming describes the nearest future forecast slot, stamped with the slot time
	ModeUpcoming ForecastMode = "upcoming"
)

// ForecastResult is the normalized weather for one resolved location
type ForecastResult struct {
	Mode         ForecastMode     `json:"mode"`
	Location     ResolvedLocation `json:"location"`
	Timestamp    string           `json:"timestamp"`
	Description  string           `json:"description"`
	TemperatureC float64          `json:"temperatureC"`
	HumidityPct  int              `json:"humidityPct"`
	WindSpeedMs  float64          `json:"windSpeedMs"`
}
