package models

// GeoCoordinates represents a geographical point defined by its latitude and longitude,
// optionally annotated with the postal address the provider resolved for it.
//
// Values are immutable: the With* methods return a modified copy.
type GeoCoordinates struct {
	latitude         float64     // Latitude of the geographical point.
	longitude        float64     // Longitude of the geographical point.
	elevation        *float64    // Elevation in meters, never set by the geocoding adapters.
	formattedAddress string      // Human readable address as formatted by the provider.
	postalCode       string      // Postal code of the address.
	locality         string      // City or town of the address.
	countryCode      CountryCode // Country of the address.
}

// NewGeoCoordinates creates a point without any address information.
func NewGeoCoordinates(latitude, longitude float64) GeoCoordinates {
	return GeoCoordinates{latitude: latitude, longitude: longitude}
}

// Latitude returns the latitude in degrees.
func (c GeoCoordinates) Latitude() float64 { return c.latitude }

// Longitude returns the longitude in degrees.
func (c GeoCoordinates) Longitude() float64 { return c.longitude }

// Elevation returns the elevation and whether it is known.
func (c GeoCoordinates) Elevation() (float64, bool) {
	if c.elevation == nil {
		return 0, false
	}
	return *c.elevation, true
}

// FormattedAddress returns the provider formatted address, or "" when unknown.
func (c GeoCoordinates) FormattedAddress() string { return c.formattedAddress }

// PostalCode returns the postal code, or "" when unknown.
func (c GeoCoordinates) PostalCode() string { return c.postalCode }

// Locality returns the locality, or "" when unknown.
func (c GeoCoordinates) Locality() string { return c.locality }

// CountryCode returns the country code, or the zero CountryCode when unknown.
func (c GeoCoordinates) CountryCode() CountryCode { return c.countryCode }

// WithElevation returns a copy of c with the given elevation.
func (c GeoCoordinates) WithElevation(elevation float64) GeoCoordinates {
	c.elevation = &elevation
	return c
}

// WithAddress returns a copy of c carrying the given address parts.
func (c GeoCoordinates) WithAddress(
	formattedAddress, postalCode, locality string,
	countryCode CountryCode,
) GeoCoordinates {
	c.formattedAddress = formattedAddress
	c.postalCode = postalCode
	c.locality = locality
	c.countryCode = countryCode
	return c
}
