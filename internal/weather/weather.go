// Package weather fetches current conditions from the OpenWeatherMap API.
package weather

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"infodeck/internal/httpclient"
	"infodeck/internal/telemetry"

	"github.com/rs/zerolog"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// DefaultBaseURL is the OpenWeatherMap API root.
const DefaultBaseURL = "https://api.openweathermap.org"

const iconURLFormat = "https://openweathermap.org/img/wn/%s.png"

// ErrMissingAPIKey is returned before any request when no key was configured.
var ErrMissingAPIKey = errors.New("openweathermap api key not configured")

// Report is the current-weather response, trimmed to the fields displayed.
type Report struct {
	Main    Main        `json:"main"`
	Weather []Condition `json:"weather"`
	Wind    Wind        `json:"wind"`
}

// Main holds temperature (°C with metric units) and relative humidity (%).
type Main struct {
	Temp     float64 `json:"temp"`
	Humidity int     `json:"humidity"`
}

// Condition is one weather condition entry.
type Condition struct {
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// Wind holds wind speed in m/s.
type Wind struct {
	Speed float64 `json:"speed"`
}

// Condition returns the first condition entry.
func (r Report) Condition() (Condition, bool) {
	if len(r.Weather) == 0 {
		return Condition{}, false
	}
	return r.Weather[0], true
}

// IconURL returns the image URL for an icon code, or "" for an empty code.
func IconURL(icon string) string {
	if icon == "" {
		return ""
	}
	return fmt.Sprintf(iconURLFormat, icon)
}

// Client interacts with the OpenWeatherMap current-weather endpoint.
type Client struct {
	http    *httpclient.Client
	apiKey  string
	BaseURL string
	Tracer  oteltrace.Tracer
}

// NewClient creates a client bound to apiKey. An empty baseURL selects DefaultBaseURL.
func NewClient(baseURL, apiKey string, timeout time.Duration, logger zerolog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		http:    httpclient.New(timeout, logger.With().Str("api", "openweathermap").Logger()),
		apiKey:  apiKey,
		BaseURL: strings.TrimRight(baseURL, "/"),
		Tracer:  telemetry.Tracer("infodeck/weather"),
	}
}

// Current fetches metric current weather for a city name.
func (c *Client) Current(ctx context.Context, capital string) (*Report, error) {
	ctx, span := c.Tracer.Start(ctx, "weather.current",
		oteltrace.WithAttributes(telemetry.AttrWeatherCapital.String(capital)))

	if c.apiKey == "" {
		err := fmt.Errorf("weather for %q: %w", capital, ErrMissingAPIKey)
		telemetry.EndSpan(span, 0, err)
		return nil, err
	}

	q := url.Values{}
	q.Set("q", capital)
	q.Set("appid", c.apiKey)
	q.Set("units", "metric")
	endpoint := c.BaseURL + "/data/2.5/weather?" + q.Encode()

	var report Report
	status, err := c.http.GetJSON(ctx, endpoint, &report)
	if err != nil {
		err = fmt.Errorf("weather for %q: %w", capital, err)
	}
	telemetry.EndSpan(span, status, err)
	if err != nil {
		return nil, err
	}
	return &report, nil
}
