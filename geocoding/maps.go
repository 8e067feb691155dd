package geocoding

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/UnknownOlympus/geocoder/models"
	"googlemaps.github.io/maps"
)

// componentLocale is not declared by the maps package.
const componentLocale maps.Component = "locale"

// MapsAPIClient is the subset of *maps.Client used by MapsProvider.
type MapsAPIClient interface {
	Geocode(ctx context.Context, r *maps.GeocodingRequest) ([]maps.GeocodingResult, error)
	ReverseGeocode(ctx context.Context, r *maps.GeocodingRequest) ([]maps.GeocodingResult, error)
}

// MapsProvider implements GeoCoder with the official Google Maps client library.
// Results are mapped by the same rules as GoogleProvider.
type MapsProvider struct {
	client MapsAPIClient // client is the Google Maps API client
	opts   Options       // opts carries the language and component settings
	log    *slog.Logger  // log is the logger for logging operations
}

// NewMapsProvider creates a MapsProvider around client. Only opts.Locale and
// opts.ComponentsLocale are used, the client owns key, endpoint and timeout.
func NewMapsProvider(client MapsAPIClient, opts Options, log *slog.Logger) *MapsProvider {
	return &MapsProvider{client: client, opts: opts.withDefaults(), log: log}
}

// FetchCoordinatesByAddress implements GeoCoder.
func (mp *MapsProvider) FetchCoordinatesByAddress(
	ctx context.Context,
	address string,
) (models.GeoCoordinates, error) {
	mp.log.DebugContext(ctx, "Geocoding address using Google Maps client", "address", address)

	req := &maps.GeocodingRequest{Address: address, Language: mp.opts.Locale.CurrentLanguage()}
	results, err := mp.client.Geocode(ctx, req)
	res, err := mp.first(OperationAddress, address, results, err)
	if err != nil {
		return models.GeoCoordinates{}, err
	}

	return mapResult(res)
}

// FetchCoordinatesByPostalCode implements GeoCoder.
func (mp *MapsProvider) FetchCoordinatesByPostalCode(
	ctx context.Context,
	postalCode, countryCode string,
) (models.GeoCoordinates, error) {
	country, err := models.NewCountryCode(countryCode)
	if err != nil {
		return models.GeoCoordinates{}, fmt.Errorf("failed to geocode postal code %s: %w", postalCode, err)
	}

	mp.log.DebugContext(ctx, "Geocoding postal code using Google Maps client",
		"postal_code", postalCode, "country", country)

	components := map[maps.Component]string{
		maps.ComponentPostalCode: postalCode,
		maps.ComponentCountry:    country.String(),
	}
	if mp.opts.ComponentsLocale != "" {
		components[componentLocale] = mp.opts.ComponentsLocale
	}

	req := &maps.GeocodingRequest{Components: components, Language: mp.opts.Locale.CurrentLanguage()}
	subject := componentFilter(postalCode, country, mp.opts.ComponentsLocale)
	results, err := mp.client.Geocode(ctx, req)
	res, err := mp.first(OperationPostalCode, subject, results, err)
	if err != nil {
		return models.GeoCoordinates{}, err
	}

	return mapResult(res)
}

// EnrichGeoCoordinates implements GeoCoder. The returned value keeps the
// latitude and longitude of coords.
func (mp *MapsProvider) EnrichGeoCoordinates(
	ctx context.Context,
	coords models.GeoCoordinates,
) (models.GeoCoordinates, error) {
	latlng := formatLatLng(coords.Latitude(), coords.Longitude())
	mp.log.DebugContext(ctx, "Reverse geocoding using Google Maps client", "latlng", latlng)

	req := &maps.GeocodingRequest{
		LatLng:   &maps.LatLng{Lat: coords.Latitude(), Lng: coords.Longitude()},
		Language: mp.opts.Locale.CurrentLanguage(),
	}
	results, err := mp.client.ReverseGeocode(ctx, req)
	res, err := mp.first(OperationReverse, latlng, results, err)
	if err != nil {
		return models.GeoCoordinates{}, err
	}

	addr, err := mapAddress(res)
	if err != nil {
		return models.GeoCoordinates{}, err
	}

	return addr.applyTo(coords), nil
}

// first translates the first client result into the shared response shape.
func (mp *MapsProvider) first(
	op Operation,
	subject string,
	results []maps.GeocodingResult,
	err error,
) (geocodeResult, error) {
	if err != nil {
		return geocodeResult{}, &NoSuchCoordinatesError{
			Operation: op, Query: subject, Reason: "geocoding request failed", Err: err,
		}
	}

	if len(results) == 0 {
		return geocodeResult{}, &NoSuchCoordinatesError{Operation: op, Query: subject, Reason: "no results"}
	}

	return fromMapsResult(results[0]), nil
}

func fromMapsResult(r maps.GeocodingResult) geocodeResult {
	lat, lng := r.Geometry.Location.Lat, r.Geometry.Location.Lng

	components := make([]addressComponent, 0, len(r.AddressComponents))
	for _, c := range r.AddressComponents {
		components = append(components, addressComponent{LongName: c.LongName, ShortName: c.ShortName, Types: c.Types})
	}

	return geocodeResult{
		FormattedAddress:  r.FormattedAddress,
		Geometry:          &geometry{Location: &location{Lat: &lat, Lng: &lng}},
		AddressComponents: components,
	}
}
