package geocoding

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/UnknownOlympus/geocoder/config"
	"github.com/UnknownOlympus/geocoder/locale"
	"github.com/UnknownOlympus/geocoder/models"
)

// GoogleBaseURL -- Google Maps Geocoding API JSON endpoint.
const GoogleBaseURL = config.DefaultBaseURL

const defaultTimeout = 10 * time.Second

// HTTPClient defines the interface for making HTTP requests.
// This allows for easy mocking in tests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Options configures the Google providers.
type Options struct {
	BaseURL          string          // BaseURL of the geocoding endpoint, GoogleBaseURL if empty.
	APIKey           string          // APIKey is sent as "key" when not empty.
	Locale           locale.Provider // Locale supplies the "language" parameter, may be nil.
	ComponentsLocale string          // ComponentsLocale is appended as "|locale:<value>" to postal code filters.
	Timeout          time.Duration   // Timeout of a single request, 10s if zero.
}

func (o Options) withDefaults() Options {
	if o.BaseURL == "" {
		o.BaseURL = GoogleBaseURL
	}
	if o.Locale == nil {
		o.Locale = locale.None
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	return o
}

// GoogleProvider implements GeoCoder on top of the Google Maps Geocoding JSON API
// using plain HTTP requests.
type GoogleProvider struct {
	client HTTPClient   // HTTP client for making requests
	opts   Options      // Request augmentation settings
	log    *slog.Logger // Logger for logging operations
}

// NewGoogleProvider creates a Google geocoding provider whose HTTP client is
// bounded by opts.Timeout.
func NewGoogleProvider(opts Options, log *slog.Logger) *GoogleProvider {
	opts = opts.withDefaults()

	return &GoogleProvider{
		client: &http.Client{
			Timeout: opts.Timeout,
		},
		opts: opts,
		log:  log,
	}
}

// NewGoogleProviderWithClient creates a Google provider with a custom HTTP client.
// opts.Timeout is ignored, the client is responsible for its own limits.
func NewGoogleProviderWithClient(client HTTPClient, opts Options, log *slog.Logger) *GoogleProvider {
	return &GoogleProvider{
		client: client,
		opts:   opts.withDefaults(),
		log:    log,
	}
}

// FetchCoordinatesByAddress implements GeoCoder.
func (gp *GoogleProvider) FetchCoordinatesByAddress(
	ctx context.Context,
	address string,
) (models.GeoCoordinates, error) {
	gp.log.DebugContext(ctx, "Geocoding address using Google Maps", "address", address)

	res, err := gp.lookup(ctx, OperationAddress, address, url.Values{"address": {address}})
	if err != nil {
		return models.GeoCoordinates{}, err
	}

	return mapResult(res)
}

// FetchCoordinatesByPostalCode implements GeoCoder.
func (gp *GoogleProvider) FetchCoordinatesByPostalCode(
	ctx context.Context,
	postalCode, countryCode string,
) (models.GeoCoordinates, error) {
	country, err := models.NewCountryCode(countryCode)
	if err != nil {
		return models.GeoCoordinates{}, fmt.Errorf("failed to geocode postal code %s: %w", postalCode, err)
	}

	gp.log.DebugContext(ctx, "Geocoding postal code using Google Maps", "postal_code", postalCode, "country", country)

	components := componentFilter(postalCode, country, gp.opts.ComponentsLocale)
	res, err := gp.lookup(ctx, OperationPostalCode, components, url.Values{"components": {components}})
	if err != nil {
		return models.GeoCoordinates{}, err
	}

	return mapResult(res)
}

// EnrichGeoCoordinates implements GeoCoder. The returned value keeps the
// latitude and longitude of coords.
func (gp *GoogleProvider) EnrichGeoCoordinates(
	ctx context.Context,
	coords models.GeoCoordinates,
) (models.GeoCoordinates, error) {
	latlng := formatLatLng(coords.Latitude(), coords.Longitude())
	gp.log.DebugContext(ctx, "Reverse geocoding using Google Maps", "latlng", latlng)

	res, err := gp.lookup(ctx, OperationReverse, latlng, url.Values{"latlng": {latlng}})
	if err != nil {
		return models.GeoCoordinates{}, err
	}

	addr, err := mapAddress(res)
	if err != nil {
		return models.GeoCoordinates{}, err
	}

	return addr.applyTo(coords), nil
}

// lookup performs a single geocoding request and returns the first result.
func (gp *GoogleProvider) lookup(
	ctx context.Context,
	op Operation,
	subject string,
	params url.Values,
) (geocodeResult, error) {
	notFound := &NoSuchCoordinatesError{Operation: op, Query: subject}

	reqURL, err := url.Parse(gp.opts.BaseURL)
	if err != nil {
		return geocodeResult{}, fmt.Errorf("failed to parse base URL: %w", err)
	}

	query := reqURL.Query()
	for key, values := range params {
		query[key] = values
	}
	if lang := gp.opts.Locale.CurrentLanguage(); lang != "" {
		query.Set("language", lang)
	}
	reqURL.RawQuery = query.Encode()

	// The key is added after logging so it never ends up in the logs.
	gp.log.DebugContext(ctx, "Google Maps request URL", "url", reqURL.String())

	if gp.opts.APIKey != "" {
		query.Set("key", gp.opts.APIKey)
		reqURL.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return geocodeResult{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := gp.client.Do(req)
	if err != nil {
		notFound.Reason, notFound.Err = "geocoding request failed", stripKey(err, gp.opts.APIKey)
		return geocodeResult{}, notFound
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		notFound.Reason, notFound.Err = "failed to read response body", err
		return geocodeResult{}, notFound
	}

	gp.log.DebugContext(ctx, "Google Maps raw response", "status", resp.StatusCode, "body", string(body))

	var decoded geocodeResponse
	decodeErr := json.Unmarshal(body, &decoded)
	notFound.ProviderStatus, notFound.ProviderMessage = decoded.Status, decoded.ErrorMessage

	switch {
	case resp.StatusCode != http.StatusOK:
		gp.log.ErrorContext(ctx, "Google Maps API error", "status", resp.StatusCode, "body", string(body))
		notFound.Reason = "provider returned HTTP status " + strconv.Itoa(resp.StatusCode)
		return geocodeResult{}, notFound
	case len(bytes.TrimSpace(body)) == 0:
		notFound.Reason = "empty response body"
		return geocodeResult{}, notFound
	case decodeErr != nil:
		gp.log.ErrorContext(ctx, "Failed to parse Google Maps response", "error", decodeErr, "body", string(body))
		notFound.Reason, notFound.Err = "unparseable response body", decodeErr
		return geocodeResult{}, notFound
	case len(decoded.Results) == 0:
		notFound.Reason = "no results"
		return geocodeResult{}, notFound
	}

	gp.log.DebugContext(ctx, "Google Maps found results", "count", len(decoded.Results), "status", decoded.Status)

	return decoded.Results[0], nil
}

// componentFilter builds the "components" parameter of a postal code lookup.
func componentFilter(postalCode string, country models.CountryCode, componentsLocale string) string {
	filter := "postal_code:" + postalCode + "|country:" + country.String()
	if componentsLocale != "" {
		filter += "|locale:" + componentsLocale
	}
	return filter
}

// formatLatLng renders a coordinate pair as "<lat>,<lng>" using the shortest
// decimal representation that round-trips, independent of any locale.
func formatLatLng(lat, lng float64) string {
	return strconv.FormatFloat(lat, 'f', -1, 64) + "," + strconv.FormatFloat(lng, 'f', -1, 64)
}

// stripKey removes the API key from transport errors, which quote the request URL.
func stripKey(err error, key string) error {
	if key == "" || !strings.Contains(err.Error(), key) {
		return err
	}
	return &redactedError{msg: strings.ReplaceAll(err.Error(), key, "REDACTED"), err: err}
}

type redactedError struct {
	msg string
	err error
}

func (e *redactedError) Error() string { return e.msg }

func (e *redactedError) Unwrap() error { return e.err }
