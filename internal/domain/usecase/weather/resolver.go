package weather

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"weather-agent/internal/domain/entity"
	"weather-agent/internal/domain/gateway/api"
)

// postalCodePattern matches "411001" and "560001,US"
var postalCodePattern = regexp.MustCompile(`^(\d{5,6})(?:\s*,\s*([A-Za-z]{2}))?$`)

// defaultRegionCodeLength is the only postal code length rule enforced, and only for the default region.
const defaultRegionCodeLength = 6

// QueryKind tells how a location string is geocoded
type QueryKind int

const (
	PlaceName QueryKind = iota
	PostalCode
)

func (k QueryKind) String() string {
	if k == PostalCode {
		return "postal-code"
	}
	return "place-name"
}

// LocationQuery is a trimmed, classified location string
type LocationQuery struct {
	Raw         string
	Kind        QueryKind
	Code        string
	CountryCode string
}

// ParseLocationQuery classifies raw as a postal code (with optional ",CC" suffix) or a place name
func ParseLocationQuery(raw string, defaultRegion string) LocationQuery {
	trimmed := strings.TrimSpace(raw)

	matches := postalCodePattern.FindStringSubmatch(trimmed)
	if matches == nil {
		return LocationQuery{Raw: trimmed, Kind: PlaceName}
	}

	countryCode := strings.ToUpper(matches[2])
	if countryCode == "" {
		countryCode = defaultRegion
	}

	return LocationQuery{
		Raw:         trimmed,
		Kind:        PostalCode,
		Code:        matches[1],
		CountryCode: countryCode,
	}
}

// LocationResolver turns a location string into coordinates
type LocationResolver struct {
	gateway       api.WeatherGateway
	defaultRegion string
}

func NewLocationResolver(gateway api.WeatherGateway, defaultRegion string) *LocationResolver {
	return &LocationResolver{
		gateway:       gateway,
		defaultRegion: strings.ToUpper(defaultRegion),
	}
}

// Resolve geocodes raw. The default region's length rule is checked before any call is made.
func (r *LocationResolver) Resolve(ctx context.Context, raw string) (entity.ResolvedLocation, error) {
	query := ParseLocationQuery(raw, r.defaultRegion)
	if query.Raw == "" {
		return entity.ResolvedLocation{}, ErrInvalidLocation
	}

	if query.Kind == PostalCode {
		return r.resolvePostalCode(ctx, query)
	}
	return r.resolvePlaceName(ctx, query)
}

func (r *LocationResolver) resolvePostalCode(ctx context.Context, query LocationQuery) (entity.ResolvedLocation, error) {
	if query.CountryCode == r.defaultRegion && len(query.Code) != defaultRegionCodeLength {
		return entity.ResolvedLocation{}, &PostalCodeError{Code: query.Code, Region: query.CountryCode}
	}

	resp, err := r.gateway.GeocodeByZip(ctx, query.Code, query.CountryCode)
	if err != nil {
		return entity.ResolvedLocation{}, upstream("geocode postal code", err)
	}
	if resp == nil || resp.Lat == nil || resp.Lon == nil {
		return entity.ResolvedLocation{}, fmt.Errorf("%w: postal code %s,%s", ErrLocationNotFound, query.Code, query.CountryCode)
	}

	return entity.ResolvedLocation{
		Latitude:  *resp.Lat,
		Longitude: *resp.Lon,
		City:      resp.Name,
		Country:   resp.Country,
	}, nil
}

func (r *LocationResolver) resolvePlaceName(ctx context.Context, query LocationQuery) (entity.ResolvedLocation, error) {
	matches, err := r.gateway.GeocodeByName(ctx, query.Raw, 1)
	if err != nil {
		return entity.ResolvedLocation{}, upstream("geocode place name", err)
	}
	if len(matches) == 0 {
		return entity.ResolvedLocation{}, fmt.Errorf("%w: %q", ErrLocationNotFound, query.Raw)
	}

	first := matches[0]
	return entity.ResolvedLocation{
		Latitude:  first.Lat,
		Longitude: first.Lon,
		City:      first.Name,
		Country:   first.Country,
	}, nil
}
