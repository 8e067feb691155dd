package geocoding

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/UnknownOlympus/geocoder/config"
	"github.com/UnknownOlympus/geocoder/locale"
	"github.com/UnknownOlympus/geocoder/metrics"
	"googlemaps.github.io/maps"
)

// ProviderType represents the type of geocoding provider.
type ProviderType string

const (
	// ProviderTypeGoogle represents the Google Geocoding API queried over plain HTTP.
	ProviderTypeGoogle ProviderType = "google"
	// ProviderTypeMapsSDK represents the Google Geocoding API queried through googlemaps.github.io/maps.
	ProviderTypeMapsSDK ProviderType = "google-maps-sdk"
)

// ProviderConfig holds configuration for creating a geocoding provider.
type ProviderConfig struct {
	Type    ProviderType // Type of provider to create
	Options Options      // Options shared by all providers
	Logger  *slog.Logger // Logger for the provider
}

// NewProvider creates a geocoding provider based on the provided configuration.
//
// Supported provider types:
// - "google": plain HTTP client, API key optional
// - "google-maps-sdk": official client library, API key required
//
// Returns an error if the provider type is unsupported or if provider creation fails.
func NewProvider(config ProviderConfig) (GeoCoder, error) {
	if config.Logger == nil {
		config.Logger = slog.Default()
	}

	switch config.Type {
	case ProviderTypeGoogle:
		return NewGoogleProvider(config.Options, config.Logger), nil
	case ProviderTypeMapsSDK:
		return newMapsProvider(config)
	default:
		return nil, fmt.Errorf("unsupported provider type: %s", config.Type)
	}
}

// newMapsProvider creates a provider backed by the Google Maps client library.
func newMapsProvider(config ProviderConfig) (GeoCoder, error) {
	if config.Options.APIKey == "" {
		return nil, errors.New("API key is required for Google Maps SDK provider")
	}

	opts := config.Options.withDefaults()
	client, err := maps.NewClient(
		maps.WithAPIKey(opts.APIKey),
		maps.WithHTTPClient(&http.Client{Timeout: opts.Timeout}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Google Maps client: %w", err)
	}

	return NewMapsProvider(client, opts, config.Logger), nil
}

// NewFromConfig builds the GeoCoder described by cfg. When m is not nil the
// provider is wrapped with an InstrumentedGeoCoder.
func NewFromConfig(cfg *config.Config, log *slog.Logger, m *metrics.Metrics) (GeoCoder, error) {
	loc, err := locale.NewStatic(cfg.Language)
	if err != nil {
		return nil, fmt.Errorf("invalid language configuration: %w", err)
	}

	provider, err := NewProvider(ProviderConfig{
		Type: ProviderType(cfg.ProviderType),
		Options: Options{
			BaseURL:          cfg.BaseURL,
			APIKey:           cfg.APIKey,
			Locale:           loc,
			ComponentsLocale: cfg.ComponentsLocale,
			Timeout:          cfg.Timeout,
		},
		Logger: log,
	})
	if err != nil {
		return nil, err
	}

	if m == nil {
		return provider, nil
	}

	if log == nil {
		log = slog.Default()
	}

	return NewInstrumentedGeoCoder(provider, cfg.ProviderType, m, log), nil
}
