// Package booking provides reservation-system lookups for eligibility
// evidence. The HTTP client talks to the carrier's reservation API; the mock
// client serves a fixed allow-list for dev mode and tests; the Redis cache
// wraps either to absorb repeat lookups during a wizard session.
package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"aeroclaim/internal/eligibility/ports"
	dErrors "aeroclaim/pkg/domain-errors"
	"aeroclaim/pkg/platform/sentinel"
)

const defaultTimeout = 3 * time.Second

// Client queries the reservation API over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(c *http.Client) ClientOption {
	return func(cl *Client) {
		cl.httpClient = c
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(cl *Client) {
		cl.httpClient.Timeout = d
	}
}

// NewClient constructs a reservation API client.
func NewClient(baseURL string, opts ...ClientOption) (*Client, error) {
	if baseURL == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "reservation API base URL is required")
	}
	cl := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(cl)
	}
	return cl, nil
}

// Find resolves a booking reference. A 404 from the reservation system means
// the reference does not exist and maps to sentinel.ErrNotFound; every other
// failure is an availability problem.
func (c *Client) Find(ctx context.Context, bookingReference string) (*ports.BookingRecord, error) {
	endpoint := fmt.Sprintf("%s/bookings/%s", c.baseURL, url.PathEscape(bookingReference))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "build reservation request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "reservation API unreachable")
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, sentinel.ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return nil, dErrors.New(dErrors.CodeUnavailable,
			fmt.Sprintf("reservation API returned status %d", resp.StatusCode))
	}

	var record ports.BookingRecord
	if err := json.NewDecoder(resp.Body).Decode(&record); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "decode reservation response")
	}
	record.CheckedAt = time.Now()
	return &record, nil
}
