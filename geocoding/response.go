package geocoding

import (
	"fmt"

	"github.com/UnknownOlympus/geocoder/models"
)

// Address component types that are mapped onto GeoCoordinates.
const (
	componentPostalCode = "postal_code"
	componentCountry    = "country"
	componentLocality   = "locality"
)

// geocodeResponse represents the JSON response of the Google Geocoding API.
// Every field is optional so that error responses decode cleanly.
type geocodeResponse struct {
	Results      []geocodeResult `json:"results"`
	Status       string          `json:"status"`
	ErrorMessage string          `json:"error_message"`
}

type geocodeResult struct {
	FormattedAddress  string             `json:"formatted_address"`
	Geometry          *geometry          `json:"geometry"`
	AddressComponents []addressComponent `json:"address_components"`
}

type geometry struct {
	Location *location `json:"location"`
}

type location struct {
	Lat *float64 `json:"lat"`
	Lng *float64 `json:"lng"`
}

type addressComponent struct {
	LongName  string   `json:"long_name"`
	ShortName string   `json:"short_name"`
	Types     []string `json:"types"`
}

// address holds the postal address parts extracted from a result.
type address struct {
	formatted  string
	postalCode string
	locality   string
	country    models.CountryCode
}

func (a address) applyTo(coords models.GeoCoordinates) models.GeoCoordinates {
	return coords.WithAddress(a.formatted, a.postalCode, a.locality, a.country)
}

// mapResult converts a provider result into GeoCoordinates.
func mapResult(res geocodeResult) (models.GeoCoordinates, error) {
	if res.Geometry == nil || res.Geometry.Location == nil ||
		res.Geometry.Location.Lat == nil || res.Geometry.Location.Lng == nil {
		return models.GeoCoordinates{}, fmt.Errorf("%w: result has no geometry.location", ErrMalformedResult)
	}

	addr, err := mapAddress(res)
	if err != nil {
		return models.GeoCoordinates{}, err
	}

	loc := res.Geometry.Location

	return addr.applyTo(models.NewGeoCoordinates(*loc.Lat, *loc.Lng)), nil
}

// mapAddress extracts the postal address of a result. Only the first type of an
// address component decides how it is mapped.
func mapAddress(res geocodeResult) (address, error) {
	addr := address{formatted: res.FormattedAddress}

	for _, component := range res.AddressComponents {
		if len(component.Types) == 0 {
			continue
		}

		switch component.Types[0] {
		case componentPostalCode:
			addr.postalCode = component.ShortName
		case componentCountry:
			code, err := models.NewCountryCode(component.ShortName)
			if err != nil {
				return address{}, fmt.Errorf("%w: %w", ErrMalformedResult, err)
			}
			addr.country = code
		case componentLocality:
			addr.locality = component.ShortName
		}
	}

	return addr, nil
}
