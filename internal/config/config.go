// Package config resolves runtime configuration once at startup from an
// optional .env file and the process environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Environment variable names.
const (
	EnvWeatherKey       = "OPENWEATHER_API_KEY"
	EnvWeatherKeyLegacy = "VITE_SOME_KEY"
	EnvCountriesBaseURL = "RESTCOUNTRIES_BASE_URL"
	EnvWeatherBaseURL   = "OPENWEATHER_BASE_URL"
	EnvHTTPTimeout      = "INFODECK_HTTP_TIMEOUT"
	EnvLogFile          = "INFODECK_LOG_FILE"
	EnvLogLevel         = "INFODECK_LOG_LEVEL"
	EnvOTLPEndpoint     = "OTEL_EXPORTER_OTLP_ENDPOINT"
	EnvServiceName      = "OTEL_SERVICE_NAME"
)

// DefaultEnvFile is loaded when present and no other file is named.
const DefaultEnvFile = ".env"

// Config holds every setting the program reads from its environment.
type Config struct {
	WeatherAPIKey    string
	CountriesBaseURL string
	WeatherBaseURL   string
	HTTPTimeout      time.Duration
	LogFile          string
	LogLevel         zerolog.Level
	OTLPEndpoint     string
	ServiceName      string
}

// Load reads envFile (DefaultEnvFile when empty) into the environment without
// overriding variables already set, then builds a Config. A missing default
// file is not an error; a missing explicitly named file is.
func Load(envFile string) (Config, error) {
	explicit := envFile != ""
	if !explicit {
		envFile = DefaultEnvFile
	}
	if err := godotenv.Load(envFile); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a variable lookup function.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		WeatherAPIKey:    getenv(EnvWeatherKey),
		CountriesBaseURL: getenv(EnvCountriesBaseURL),
		WeatherBaseURL:   getenv(EnvWeatherBaseURL),
		HTTPTimeout:      10 * time.Second,
		LogFile:          getenv(EnvLogFile),
		LogLevel:         zerolog.InfoLevel,
		OTLPEndpoint:     getenv(EnvOTLPEndpoint),
		ServiceName:      getenv(EnvServiceName),
	}
	if cfg.WeatherAPIKey == "" {
		cfg.WeatherAPIKey = getenv(EnvWeatherKeyLegacy)
	}

	if v := getenv(EnvHTTPTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvHTTPTimeout, err)
		}
		if d <= 0 {
			return Config{}, fmt.Errorf("%s: must be positive, got %s", EnvHTTPTimeout, v)
		}
		cfg.HTTPTimeout = d
	}

	if v := getenv(EnvLogLevel); v != "" {
		lvl, err := zerolog.ParseLevel(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvLogLevel, err)
		}
		cfg.LogLevel = lvl
	}

	return cfg, nil
}
