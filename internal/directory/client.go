package directory

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/muurk/countryfinder/internal/logging"
	"github.com/muurk/countryfinder/internal/urls"
	"github.com/muurk/countryfinder/internal/version"
)

const (
	// DefaultEndpoint is the country directory queried when none is configured
	DefaultEndpoint = urls.DirectoryEndpoint

	// MaxBodyBytes caps how much of a response body is read
	MaxBodyBytes = 8 << 20
)

// Client fetches the country list from a directory endpoint.
//
// A Client makes exactly one GET per FetchAll call. It does not retry and
// does not cache; refreshing is the caller's decision.
type Client struct {
	// Endpoint is the full URL of the directory list
	Endpoint string

	// HTTPClient is the underlying HTTP client. Its Timeout is zero unless
	// SetTimeout is called, so a hung request only ends with ctx.
	HTTPClient *http.Client

	// UserAgent is sent with every request
	UserAgent string

	// newID generates record IDs; replaced in tests
	newID func() string
}

// NewClient creates a client for the given endpoint. An empty endpoint selects
// DefaultEndpoint.
func NewClient(endpoint string) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	return &Client{
		Endpoint:   endpoint,
		HTTPClient: &http.Client{},
		UserAgent:  "countryfinder/" + version.Version,
		newID:      func() string { return uuid.New().String() },
	}
}

// SetTimeout sets the HTTP request timeout. Zero disables it.
func (c *Client) SetTimeout(timeout time.Duration) {
	c.HTTPClient.Timeout = timeout
}

// FetchAll retrieves the full country list.
//
// Any failure (network, non-2xx status, body that does not match the
// envelope) is returned as a *FetchError.
func (c *Client) FetchAll(ctx context.Context) ([]Country, error) {
	start := time.Now()

	countries, status, err := c.fetch(ctx)
	if err != nil {
		logging.LogFetchFailure(c.Endpoint, err, time.Since(start))
		return nil, err
	}

	logging.LogFetch(c.Endpoint, status, len(countries), time.Since(start))
	return countries, nil
}

func (c *Client) fetch(ctx context.Context) ([]Country, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Endpoint, nil)
	if err != nil {
		return nil, 0, newRequestError(c.Endpoint, "failed to create GET request", err)
	}

	req.Header.Set("Accept", "application/json")
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, 0, newRequestError(c.Endpoint, "GET request failed", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, resp.StatusCode, newStatusError(c.Endpoint, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodyBytes))
	if err != nil {
		return nil, resp.StatusCode, newRequestError(c.Endpoint, "failed to read response body", err)
	}

	countries, err := DecodeCountries(body, c.newID)
	if err != nil {
		return nil, resp.StatusCode, newDecodeError(c.Endpoint, resp.StatusCode,
			fmt.Sprintf("unexpected response shape (%d bytes)", len(body)), err)
	}

	return countries, resp.StatusCode, nil
}
