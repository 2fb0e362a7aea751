// Package maps implements the ETAProvider port against an external routing
// service over HTTP. Estimation is best effort: every failure mode (network,
// timeout, bad status, bad payload) is reported as ErrEstimateUnavailable and
// callers proceed without an estimate.
package maps

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"delivery-tracking/internal/pkg/errs"
)

// DefaultTimeout bounds a single estimate call when no explicit timeout is
// configured. The routing service sits on the delivery creation path, so the
// bound must stay tight.
const DefaultTimeout = 2 * time.Second

// ErrEstimateUnavailable is returned when the routing service could not
// produce an estimate for any reason.
var ErrEstimateUnavailable = errors.New("estimate unavailable")

// Client calls the routing service's estimate endpoint.
// Each call is bounded by the configured timeout and never retried;
// the estimate is optional and not worth waiting for.
type Client struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
}

// NewClient creates a routing service client.
// baseURL is the service root, e.g. "http://maps:8090". A non-positive
// timeout falls back to DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		timeout:    timeout,
		httpClient: &http.Client{},
	}, nil
}

// estimateResponse is the routing service's wire format.
type estimateResponse struct {
	Minutes int `json:"minutes"`
}

// Estimate returns the estimated delivery time in minutes for a route from
// pickupAddress to deliveryAddress. Both addresses are required.
func (c *Client) Estimate(ctx context.Context, pickupAddress string, deliveryAddress string) (int, error) {
	if pickupAddress == "" {
		return 0, fmt.Errorf("%w: %w", ErrEstimateUnavailable, errs.NewValueIsRequiredError("pickupAddress"))
	}
	if deliveryAddress == "" {
		return 0, fmt.Errorf("%w: %w", ErrEstimateUnavailable, errs.NewValueIsRequiredError("deliveryAddress"))
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	endpoint := fmt.Sprintf("%s/eta?origin=%s&destination=%s",
		c.baseURL, url.QueryEscape(pickupAddress), url.QueryEscape(deliveryAddress))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrEstimateUnavailable, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrEstimateUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("%w: routing service returned %d", ErrEstimateUnavailable, resp.StatusCode)
	}

	var payload estimateResponse
	if err = json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrEstimateUnavailable, err)
	}
	if payload.Minutes < 0 {
		return 0, fmt.Errorf("%w: negative estimate %d", ErrEstimateUnavailable, payload.Minutes)
	}

	return payload.Minutes, nil
}
