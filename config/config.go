package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultBaseURL is the Google Maps Geocoding API JSON endpoint.
const DefaultBaseURL = "https://maps.googleapis.com/maps/api/geocode/json"

const (
	envPrefix     = "GEOCODER"
	configFileEnv = "GEOCODER_CONFIG_FILE"
)

// ErrInvalidTimeout is returned when the configured timeout is not a positive duration.
var ErrInvalidTimeout = errors.New("timeout must be a positive duration")

// Config holds the configuration settings for the geocoding adapter.
//
// Fields:
// - Env: The current environment (e.g., local, development, production).
// - ProviderType: The geocoding provider implementation (google, google-maps-sdk).
// - BaseURL: The geocoding endpoint used by the google provider.
// - APIKey: Optional API key sent with every request.
// - Language: Optional language code results are requested in.
// - ComponentsLocale: Optional locale fragment appended to postal code component filters.
// - Timeout: Upper bound for a single provider round trip.
type Config struct {
	Env              string        `mapstructure:"env"`               // Env is the current environment: local, development, production.
	ProviderType     string        `mapstructure:"provider_type"`     // ProviderType specifies which provider to use.
	BaseURL          string        `mapstructure:"base_url"`          // BaseURL of the geocoding endpoint.
	APIKey           string        `mapstructure:"api_key"`           // The API key for accessing the provider.
	Language         string        `mapstructure:"language"`          // The language of returned addresses.
	ComponentsLocale string        `mapstructure:"components_locale"` // Locale fragment for postal code lookups.
	Timeout          time.Duration `mapstructure:"timeout"`           // The timeout of a provider request.
}

// Load reads the configuration from the environment, an optional .env file in the
// working directory and an optional config file named by GEOCODER_CONFIG_FILE.
// Environment variables take precedence over the config file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	v.SetDefault("env", "production")
	v.SetDefault("provider_type", "google")
	v.SetDefault("base_url", DefaultBaseURL)
	v.SetDefault("api_key", "")
	v.SetDefault("language", "")
	v.SetDefault("components_locale", "")
	v.SetDefault("timeout", "10s")

	if path := os.Getenv(configFileEnv); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	timeout, err := time.ParseDuration(v.GetString("timeout"))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTimeout, err)
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("%w: got %s", ErrInvalidTimeout, timeout)
	}

	return &Config{
		Env:              v.GetString("env"),
		ProviderType:     v.GetString("provider_type"),
		BaseURL:          v.GetString("base_url"),
		APIKey:           v.GetString("api_key"),
		Language:         v.GetString("language"),
		ComponentsLocale: v.GetString("components_locale"),
		Timeout:          timeout,
	}, nil
}

// MustLoad is like Load but panics if the configuration cannot be loaded.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}

	return cfg
}
