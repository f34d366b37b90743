// Package openlibrary provides a client for the Open Library web API and
// the document shapes it returns.
package openlibrary

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/oltools/openlibrary-mcp/internal/common"
)

const (
	// DefaultBaseURL is the Open Library API base address.
	DefaultBaseURL = "https://openlibrary.org"
	// DefaultCoversURL is the Open Library covers image host.
	DefaultCoversURL = "https://covers.openlibrary.org"

	// maxResponseSize caps upstream response bodies (4MB).
	maxResponseSize = 4 << 20
)

// StatusError reports a non-2xx response from the Open Library API.
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("openlibrary returned %s", e.Status)
}

// StatusText returns the human-readable status text for the response,
// falling back to the full error message when none is defined.
func (e *StatusError) StatusText() string {
	if t := http.StatusText(e.StatusCode); t != "" {
		return t
	}
	return e.Error()
}

// IsNotFound reports whether err is a StatusError with a 404 status.
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == http.StatusNotFound
}

// Client is the single configured HTTP client bound to the Open Library
// base address. It is read-only after construction and safe for
// concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *common.Logger
}

// NewClient creates a client targeting the given Open Library base URL.
func NewClient(baseURL string, timeout time.Duration, logger *common.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// BaseURL returns the configured upstream base address.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Get performs a GET request against the Open Library API and returns the
// response body. Non-2xx statuses are returned as *StatusError so callers
// can distinguish not-found from other upstream failures.
func (c *Client) Get(ctx context.Context, path string) ([]byte, error) {
	c.logger.Debug().
		Str("method", http.MethodGet).
		Str("path", path).
		Msg("Open Library request")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)

	if err != nil {
		c.logger.Error().Err(err).Str("path", path).Dur("duration", duration).Msg("Open Library request failed")
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	c.logger.Debug().
		Str("status", resp.Status).
		Int("status_code", resp.StatusCode).
		Dur("duration", duration).
		Int("bytes", len(body)).
		Msg("Open Library response")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	return body, nil
}
