// Package httpclient is a small JSON-over-HTTP GET client shared by the
// country and weather API clients.
package httpclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"infodeck/internal/jsonutil"

	"github.com/rs/zerolog"
)

// DefaultTimeout bounds a single request when the caller passes zero.
const DefaultTimeout = 10 * time.Second

var (
	// ErrNotFound matches a *StatusError carrying 404.
	ErrNotFound = errors.New("not found")
	// ErrTransport wraps failures to reach the server at all.
	ErrTransport = errors.New("transport failure")
	// ErrDecode wraps responses whose body is not the expected JSON.
	ErrDecode = errors.New("malformed response")
)

// secretParams are query parameters masked before a URL reaches logs or errors.
var secretParams = []string{"appid", "api_key", "key"}

// StatusError is returned for any non-200 response.
type StatusError struct {
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("received non-200 status code: %d", e.StatusCode)
}

// Is lets errors.Is(err, ErrNotFound) match 404 responses.
func (e *StatusError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

// Client wraps http.Client for JSON GET requests.
type Client struct {
	httpClient *http.Client
	logger     zerolog.Logger
}

// New creates a client with the given per-request timeout.
func New(timeout time.Duration, logger zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// GetJSON issues a GET to rawURL and decodes a 200 response body into out.
// It returns the HTTP status code (0 if no response was received).
func (c *Client) GetJSON(ctx context.Context, rawURL string, out interface{}) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug().Str("url", Redact(rawURL)).Err(err).Msg("request failed")
		return 0, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer resp.Body.Close()

	c.logger.Debug().
		Str("url", Redact(rawURL)).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("request complete")

	if resp.StatusCode != http.StatusOK {
		return resp.StatusCode, &StatusError{StatusCode: resp.StatusCode, URL: Redact(rawURL)}
	}

	if err := jsonutil.DecodeWithContext(resp.Body, out, "failed to decode response"); err != nil {
		return resp.StatusCode, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return resp.StatusCode, nil
}

// Redact masks secret query parameters in rawURL.
// Unparseable input is returned unchanged.
func Redact(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	q := u.Query()
	changed := false
	for _, p := range secretParams {
		if q.Has(p) {
			q.Set(p, "REDACTED")
			changed = true
		}
	}
	if !changed {
		return rawURL
	}
	u.RawQuery = q.Encode()
	return u.String()
}
