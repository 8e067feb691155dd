package geocoding

import (
	"context"

	"github.com/UnknownOlympus/geocoder/models"
)

// GeoCoder translates addresses, postal codes and coordinates into geographic
// coordinates annotated with a normalized postal address.
//
// Every method performs a single blocking round trip to the provider. When the
// provider has no usable result the returned error matches ErrNoSuchCoordinates.
type GeoCoder interface {
	// FetchCoordinatesByAddress geocodes a free-text address.
	FetchCoordinatesByAddress(ctx context.Context, address string) (models.GeoCoordinates, error)
	// FetchCoordinatesByPostalCode geocodes a postal code within the country given
	// by its two-letter ISO 3166-1 code.
	FetchCoordinatesByPostalCode(ctx context.Context, postalCode, countryCode string) (models.GeoCoordinates, error)
	// EnrichGeoCoordinates reverse geocodes coords and returns them with the
	// formatted address, postal code, locality and country code of that point.
	EnrichGeoCoordinates(ctx context.Context, coords models.GeoCoordinates) (models.GeoCoordinates, error)
}

// Operation names a GeoCoder lookup kind. It is used in errors and metric labels.
type Operation string

const (
	OperationAddress    Operation = "address"
	OperationPostalCode Operation = "postal_code"
	OperationReverse    Operation = "latlng"
)
