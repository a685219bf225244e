package model

// WeatherRequestDTO is the body accepted by the weather routes
type WeatherRequestDTO struct {
	Location string `json:"location" validate:"required" example:"411001"`
}

// WeatherResponseDTO carries the rendered forecast text
type WeatherResponseDTO struct {
	Forecast string `json:"forecast" example:"Current weather for Pune, IN at 2026-10-17 09:30:00:\n- clear sky\n- Temperature: 27.4°C\n- Humidity: 48%\n- Wind speed: 3.1 m/s"`
}

// ErrorResponseDTO carries a user-visible error message
type ErrorResponseDTO struct {
	Error string `json:"error" example:"Location not found"`
}
