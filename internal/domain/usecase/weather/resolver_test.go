package weather

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-agent/internal/domain/entity"
	"weather-agent/internal/domain/model/external"
)

func TestParseLocationQuery(t *testing.T) {
	tests := []struct {
		raw         string
		kind        QueryKind
		code        string
		countryCode string
	}{
		{raw: "411001", kind: PostalCode, code: "411001", countryCode: "IN"},
		{raw: "  41100 ", kind: PostalCode, code: "41100", countryCode: "IN"},
		{raw: "560001,US", kind: PostalCode, code: "560001", countryCode: "US"},
		{raw: "94040, us", kind: PostalCode, code: "94040", countryCode: "US"},
		{raw: "Paris", kind: PlaceName},
		{raw: "1234", kind: PlaceName},
		{raw: "1234567", kind: PlaceName},
		{raw: "4110a1", kind: PlaceName},
		{raw: "Paris, FR", kind: PlaceName},
		{raw: "411001,IND", kind: PlaceName},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			query := ParseLocationQuery(tt.raw, "IN")

			assert.Equal(t, tt.kind, query.Kind)
			assert.Equal(t, tt.code, query.Code)
			assert.Equal(t, tt.countryCode, query.CountryCode)
		})
	}
}

func TestResolvePostalCode(t *testing.T) {
	gateway := &fakeGateway{zip: puneZip()}
	resolver := NewLocationResolver(gateway, "IN")

	location, err := resolver.Resolve(context.Background(), "411001")

	require.NoError(t, err)
	assert.Equal(t, entity.ResolvedLocation{Latitude: 18.5196, Longitude: 73.8554, City: "Pune", Country: "IN"}, location)
	assert.Equal(t, []string{"411001,IN"}, gateway.zipQueries)
}

func TestResolveRejectsShortDefaultRegionCodeWithoutCallingUpstream(t *testing.T) {
	gateway := &fakeGateway{zip: puneZip()}
	resolver := NewLocationResolver(gateway, "IN")

	_, err := resolver.Resolve(context.Background(), "41100")

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidPostalCodeFormat))
	var postalErr *PostalCodeError
	require.True(t, errors.As(err, &postalErr))
	assert.Equal(t, "IN", postalErr.Region)
	assert.Empty(t, gateway.calls)
}

func TestResolveSkipsLengthRuleForOtherRegions(t *testing.T) {
	gateway := &fakeGateway{zip: &external.ZipGeocodeResponse{Name: "Mountain View", Lat: float(37.38), Lon: float(-122.08), Country: "US"}}
	resolver := NewLocationResolver(gateway, "IN")

	location, err := resolver.Resolve(context.Background(), "94040,US")
	require.NoError(t, err)
	assert.Equal(t, "Mountain View", location.City)

	_, err = resolver.Resolve(context.Background(), "560001,US")
	require.NoError(t, err)
	assert.Equal(t, []string{"94040,US", "560001,US"}, gateway.zipQueries)
}

func TestResolvePostalCodeWithoutCoordinatesIsNotFound(t *testing.T) {
	tests := map[string]*external.ZipGeocodeResponse{
		"no response":   nil,
		"no latitude":   {Name: "Pune", Lon: float(73.8), Country: "IN"},
		"no longitude":  {Name: "Pune", Lat: float(18.5), Country: "IN"},
		"no coordinate": {Name: "Pune", Country: "IN"},
	}

	for name, resp := range tests {
		t.Run(name, func(t *testing.T) {
			resolver := NewLocationResolver(&fakeGateway{zip: resp}, "IN")

			location, err := resolver.Resolve(context.Background(), "411001")

			assert.True(t, errors.Is(err, ErrLocationNotFound))
			assert.Equal(t, entity.ResolvedLocation{}, location)
		})
	}
}

func TestResolvePlaceName(t *testing.T) {
	gateway := &fakeGateway{direct: []external.DirectGeocodeResponse{
		{Name: "Paris", Lat: 48.8566, Lon: 2.3522, Country: "FR"},
		{Name: "Paris", Lat: 33.66, Lon: -95.55, Country: "US"},
	}}
	resolver := NewLocationResolver(gateway, "IN")

	location, err := resolver.Resolve(context.Background(), " Paris ")

	require.NoError(t, err)
	assert.Equal(t, "FR", location.Country)
	assert.Equal(t, "Paris", gateway.nameQuery)
	assert.Equal(t, 1, gateway.nameLimit)
}

func TestResolvePlaceNameWithoutMatchIsNotFound(t *testing.T) {
	gateway := &fakeGateway{direct: []external.DirectGeocodeResponse{}}
	resolver := NewLocationResolver(gateway, "IN")

	_, err := resolver.Resolve(context.Background(), "Paris")

	assert.True(t, errors.Is(err, ErrLocationNotFound))
	assert.Equal(t, []string{"direct"}, gateway.calls)
}

func TestResolveUpstreamFailure(t *testing.T) {
	resolver := NewLocationResolver(&fakeGateway{err: errors.New("connection refused")}, "IN")

	_, err := resolver.Resolve(context.Background(), "Tokyo")
	assert.True(t, errors.Is(err, ErrUpstreamUnavailable))

	_, err = resolver.Resolve(context.Background(), "411001")
	assert.True(t, errors.Is(err, ErrUpstreamUnavailable))
}

func TestResolveIsDeterministic(t *testing.T) {
	resolver := NewLocationResolver(&fakeGateway{zip: puneZip()}, "IN")

	first, err := resolver.Resolve(context.Background(), "411001")
	require.NoError(t, err)
	second, err := resolver.Resolve(context.Background(), "411001")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestResolveEmptyInput(t *testing.T) {
	gateway := &fakeGateway{}
	resolver := NewLocationResolver(gateway, "IN")

	_, err := resolver.Resolve(context.Background(), "   ")

	assert.True(t, errors.Is(err, ErrInvalidLocation))
	assert.Empty(t, gateway.calls)
}
