package weather

import (
	"errors"
	"fmt"
)

// Every failure of the weather pipeline wraps exactly one of these.
var (
	ErrMissingCredential       = errors.New("weather api key missing")
	ErrInvalidLocation         = errors.New("location is required")
	ErrInvalidPostalCodeFormat = errors.New("invalid postal code format")
	ErrLocationNotFound        = errors.New("location not found")
	ErrNoWeatherData           = errors.New("no weather data")
	ErrNoForecastData          = errors.New("no forecast data")
	ErrUpstreamUnavailable     = errors.New("weather upstream unavailable")
)

// PostalCodeError reports a postal code that breaks its region's format rule
type PostalCodeError struct {
	Code   string
	Region string
}

func (e *PostalCodeError) Error() string {
	return fmt.Sprintf("%s postal code %q must have 6 digits", e.Region, e.Code)
}

func (e *PostalCodeError) Unwrap() error {
	return ErrInvalidPostalCodeFormat
}

func upstream(step string, err error) error {
	return fmt.Errorf("%s: %w: %w", step, ErrUpstreamUnavailable, err)
}
