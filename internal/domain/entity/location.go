package entity

import "fmt"

// ResolvedLocation is a geocoded place. It is only built from a geocoding match.
type ResolvedLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	City      string  `json:"city"`
	Country   string  `json:"country"`
}

func (l ResolvedLocation) String() string {
	return fmt.Sprintf("%s, %s (%g, %g)", l.City, l.Country, l.Latitude, l.Longitude)
}
