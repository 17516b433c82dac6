package countries

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"infodeck/internal/httpclient"
	"infodeck/internal/telemetry"

	"github.com/rs/zerolog"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// DefaultBaseURL is the REST Countries v3.1 API root.
const DefaultBaseURL = "https://restcountries.com/v3.1"

// Client interacts with the REST Countries API.
type Client struct {
	http    *httpclient.Client
	BaseURL string
	Tracer  oteltrace.Tracer
}

// NewClient creates a client. An empty baseURL selects DefaultBaseURL.
func NewClient(baseURL string, timeout time.Duration, logger zerolog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		http:    httpclient.New(timeout, logger.With().Str("api", "restcountries").Logger()),
		BaseURL: strings.TrimRight(baseURL, "/"),
		Tracer:  telemetry.Tracer("infodeck/countries"),
	}
}

// SearchByName returns every country whose name matches term.
// The API answers 404 when nothing matches; that surfaces as an error
// matching httpclient.ErrNotFound.
func (c *Client) SearchByName(ctx context.Context, term string) ([]Country, error) {
	ctx, span := c.Tracer.Start(ctx, "countries.search",
		oteltrace.WithAttributes(telemetry.AttrSearchTerm.String(term)))

	endpoint := fmt.Sprintf("%s/name/%s", c.BaseURL, url.PathEscape(term))
	var out []Country
	status, err := c.http.GetJSON(ctx, endpoint, &out)
	if err != nil {
		err = fmt.Errorf("search countries %q: %w", term, err)
	} else {
		span.SetAttributes(telemetry.AttrResultCount.Int(len(out)))
	}
	telemetry.EndSpan(span, status, err)
	if err != nil {
		return nil, err
	}
	return out, nil
}
