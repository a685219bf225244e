package external

import "encoding/json"

// ZipGeocodeResponse represents the response of GET /geo/1.0/zip
type ZipGeocodeResponse struct {
	Zip     string   `json:"zip"`
	Name    string   `json:"name"`
	Lat     *float64 `json:"lat"`
	Lon     *float64 `json:"lon"`
	Country string   `json:"country"`
}

// DirectGeocodeResponse represents one match of GET /geo/1.0/direct
type DirectGeocodeResponse struct {
	Name       string            `json:"name"`
	LocalNames map[string]string `json:"local_names,omitempty"`
	Lat        float64           `json:"lat"`
	Lon        float64           `json:"lon"`
	Country    string            `json:"country"`
	State      string            `json:"state,omitempty"`
}

// WeatherConditionDTO is one entry of the "weather" array
type WeatherConditionDTO struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// MainMetricsDTO is the "main" object of current and forecast responses
type MainMetricsDTO struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	TempMin   float64 `json:"temp_min"`
	TempMax   float64 `json:"temp_max"`
	Pressure  int     `json:"pressure"`
	Humidity  int     `json:"humidity"`
}

// WindDTO is the "wind" object of current and forecast responses
type WindDTO struct {
	Speed float64 `json:"speed"`
	Deg   int     `json:"deg"`
	Gust  float64 `json:"gust,omitempty"`
}

// CurrentWeatherResponse represents the response of GET /data/2.5/weather
type CurrentWeatherResponse struct {
	Weather []WeatherConditionDTO `json:"weather"`
	Main    *MainMetricsDTO       `json:"main"`
	Wind    *WindDTO              `json:"wind"`
	Dt      int64                 `json:"dt"`
	Name    string                `json:"name"`
}

// ForecastSlotDTO is one 3-hour entry of the forecast "list"
type ForecastSlotDTO struct {
	Dt      int64                 `json:"dt"`
	Main    *MainMetricsDTO       `json:"main"`
	Weather []WeatherConditionDTO `json:"weather"`
	Wind    *WindDTO              `json:"wind"`
	DtTxt   string                `json:"dt_txt"`
}

// ForecastResponse represents the response of GET /data/2.5/forecast
type ForecastResponse struct {
	Cod  json.Number       `json:"cod"`
	Cnt  int               `json:"cnt"`
	List []ForecastSlotDTO `json:"list"`
	City struct {
		Name     string `json:"name"`
		Country  string `json:"country"`
		Timezone int    `json:"timezone"`
	} `json:"city"`
}

// APIErrorResponse represents error responses from OpenWeather; cod is a number or a numeric string
type APIErrorResponse struct {
	Cod     json.Number `json:"cod"`
	Message string      `json:"message"`
}
