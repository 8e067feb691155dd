package geocoding_test

import (
	"testing"

	"github.com/UnknownOlympus/geocoder/geocoding"
	"github.com/UnknownOlympus/geocoder/locale"
	"github.com/UnknownOlympus/geocoder/models"
	"github.com/UnknownOlympus/geocoder/test/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"googlemaps.github.io/maps"
)

var berlinResult = maps.GeocodingResult{
	FormattedAddress: "Pariser Platz, 10117 Berlin, Germany",
	Geometry:         maps.AddressGeometry{Location: maps.LatLng{Lat: 52.5162746, Lng: 13.3777041}},
	AddressComponents: []maps.AddressComponent{
		{LongName: "10117", ShortName: "10117", Types: []string{"postal_code"}},
		{LongName: "Berlin", ShortName: "Berlin", Types: []string{"locality", "political"}},
		{LongName: "Germany", ShortName: "DE", Types: []string{"country", "political"}},
		{LongName: "Mitte", ShortName: "Mitte", Types: []string{"political", "postal_code"}},
	},
}

func TestMapsProvider_FetchCoordinatesByAddress(t *testing.T) {
	ctx := t.Context()

	t.Run("api returns error", func(t *testing.T) {
		mockClient := mocks.NewMapsAPIClient(t)
		provider := geocoding.NewMapsProvider(mockClient, geocoding.Options{}, discardLogger())
		req := &maps.GeocodingRequest{Address: "some invalid place"}

		mockClient.On("Geocode", ctx, req).Return(nil, assert.AnError).Once()

		_, err := provider.FetchCoordinatesByAddress(ctx, "some invalid place")

		require.ErrorIs(t, err, assert.AnError)
		require.ErrorIs(t, err, geocoding.ErrNoSuchCoordinates)
	})

	t.Run("api return empty response", func(t *testing.T) {
		mockClient := mocks.NewMapsAPIClient(t)
		provider := geocoding.NewMapsProvider(mockClient, geocoding.Options{}, discardLogger())
		req := &maps.GeocodingRequest{Address: "some invalid place"}

		mockClient.On("Geocode", ctx, req).Return(nil, nil).Once()

		coords, err := provider.FetchCoordinatesByAddress(ctx, "some invalid place")

		require.ErrorIs(t, err, geocoding.ErrNoSuchCoordinates)
		assert.Equal(t, models.GeoCoordinates{}, coords)
		assert.Contains(t, err.Error(), "some invalid place")
	})

	t.Run("successful geocoding", func(t *testing.T) {
		mockClient := mocks.NewMapsAPIClient(t)
		loc, err := locale.NewStatic("de")
		require.NoError(t, err)
		provider := geocoding.NewMapsProvider(mockClient, geocoding.Options{Locale: loc}, discardLogger())
		req := &maps.GeocodingRequest{Address: "Pariser Platz, Berlin", Language: "de"}
		other := maps.GeocodingResult{Geometry: maps.AddressGeometry{Location: maps.LatLng{Lat: 1, Lng: 2}}}

		mockClient.On("Geocode", ctx, req).Return([]maps.GeocodingResult{berlinResult, other}, nil).Once()

		coords, err := provider.FetchCoordinatesByAddress(ctx, "Pariser Platz, Berlin")

		require.NoError(t, err)
		assert.Equal(t, 52.5162746, coords.Latitude())
		assert.Equal(t, 13.3777041, coords.Longitude())
		assert.Equal(t, "Pariser Platz, 10117 Berlin, Germany", coords.FormattedAddress())
		assert.Equal(t, "10117", coords.PostalCode(), "a later component with postal_code as second type must not win")
		assert.Equal(t, "Berlin", coords.Locality())
		assert.Equal(t, models.CountryCode("DE"), coords.CountryCode())
	})
}

func TestMapsProvider_FetchCoordinatesByPostalCode(t *testing.T) {
	ctx := t.Context()

	t.Run("components request", func(t *testing.T) {
		mockClient := mocks.NewMapsAPIClient(t)
		provider := geocoding.NewMapsProvider(mockClient, geocoding.Options{ComponentsLocale: "de"}, discardLogger())
		req := &maps.GeocodingRequest{Components: map[maps.Component]string{
			maps.ComponentPostalCode: "10117",
			maps.ComponentCountry:    "DE",
			maps.Component("locale"): "de",
		}}

		mockClient.On("Geocode", ctx, req).Return([]maps.GeocodingResult{berlinResult}, nil).Once()

		coords, err := provider.FetchCoordinatesByPostalCode(ctx, "10117", "DE")

		require.NoError(t, err)
		assert.Equal(t, "10117", coords.PostalCode())
	})

	t.Run("no results", func(t *testing.T) {
		mockClient := mocks.NewMapsAPIClient(t)
		provider := geocoding.NewMapsProvider(mockClient, geocoding.Options{}, discardLogger())
		req := &maps.GeocodingRequest{Components: map[maps.Component]string{
			maps.ComponentPostalCode: "00000",
			maps.ComponentCountry:    "DE",
		}}

		mockClient.On("Geocode", ctx, req).Return([]maps.GeocodingResult{}, nil).Once()

		_, err := provider.FetchCoordinatesByPostalCode(ctx, "00000", "DE")

		var notFound *geocoding.NoSuchCoordinatesError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "postal_code:00000|country:DE", notFound.Query)
	})

	t.Run("invalid country code", func(t *testing.T) {
		mockClient := mocks.NewMapsAPIClient(t)
		provider := geocoding.NewMapsProvider(mockClient, geocoding.Options{}, discardLogger())

		_, err := provider.FetchCoordinatesByPostalCode(ctx, "10117", "Germany")

		require.ErrorIs(t, err, models.ErrInvalidCountryCode)
		mockClient.AssertNotCalled(t, "Geocode")
	})
}

func TestMapsProvider_EnrichGeoCoordinates(t *testing.T) {
	ctx := t.Context()

	t.Run("reverse geocoding", func(t *testing.T) {
		mockClient := mocks.NewMapsAPIClient(t)
		provider := geocoding.NewMapsProvider(mockClient, geocoding.Options{}, discardLogger())
		req := &maps.GeocodingRequest{LatLng: &maps.LatLng{Lat: 52.52, Lng: 13.405}}

		mockClient.On("ReverseGeocode", ctx, req).Return([]maps.GeocodingResult{berlinResult}, nil).Once()

		enriched, err := provider.EnrichGeoCoordinates(ctx, models.NewGeoCoordinates(52.52, 13.405))

		require.NoError(t, err)
		assert.Equal(t, 52.52, enriched.Latitude())
		assert.Equal(t, 13.405, enriched.Longitude())
		assert.Equal(t, "Pariser Platz, 10117 Berlin, Germany", enriched.FormattedAddress())
		assert.Equal(t, models.CountryCode("DE"), enriched.CountryCode())
	})

	t.Run("reverse geocoding error", func(t *testing.T) {
		mockClient := mocks.NewMapsAPIClient(t)
		provider := geocoding.NewMapsProvider(mockClient, geocoding.Options{}, discardLogger())
		req := &maps.GeocodingRequest{LatLng: &maps.LatLng{Lat: 52.52, Lng: 13.405}}

		mockClient.On("ReverseGeocode", ctx, req).Return(nil, assert.AnError).Once()

		_, err := provider.EnrichGeoCoordinates(ctx, models.NewGeoCoordinates(52.52, 13.405))

		var notFound *geocoding.NoSuchCoordinatesError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, geocoding.OperationReverse, notFound.Operation)
		assert.Equal(t, "52.52,13.405", notFound.Query)
		require.ErrorIs(t, err, assert.AnError)
	})

	t.Run("malformed country code", func(t *testing.T) {
		mockClient := mocks.NewMapsAPIClient(t)
		provider := geocoding.NewMapsProvider(mockClient, geocoding.Options{}, discardLogger())
		req := &maps.GeocodingRequest{LatLng: &maps.LatLng{Lat: 1, Lng: 2}}
		result := maps.GeocodingResult{AddressComponents: []maps.AddressComponent{
			{ShortName: "deu", Types: []string{"country"}},
		}}

		mockClient.On("ReverseGeocode", ctx, req).Return([]maps.GeocodingResult{result}, nil).Once()

		_, err := provider.EnrichGeoCoordinates(ctx, models.NewGeoCoordinates(1, 2))

		require.ErrorIs(t, err, geocoding.ErrMalformedResult)
	})
}
