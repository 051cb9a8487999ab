package location

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// GeoHTTPClient resolves the current location through an IP-geolocation
// endpoint. Every call issues a fresh request; responses are never cached.
type GeoHTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewGeoHTTPClient creates a provider against the given geolocation
// endpoint base URL.
func NewGeoHTTPClient(baseURL string) *GeoHTTPClient {
	return &GeoHTTPClient{
		baseURL:    baseURL,
		httpClient: &http.Client{},
	}
}

// CurrentLocation requests a single location fix. The call is bounded by
// LOCATION_REQUEST_TIMEOUT in addition to any deadline already on ctx.
func (c *GeoHTTPClient) CurrentLocation(ctx context.Context) (*Location, error) {
	ctx, cancel := context.WithTimeout(ctx, LOCATION_REQUEST_TIMEOUT)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+"/json", nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPositionUnavailable, err)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, ErrTimeout
		}
		return nil, fmt.Errorf("%w: %v", ErrPositionUnavailable, err)
	}
	defer res.Body.Close()

	switch {
	case res.StatusCode == http.StatusUnauthorized || res.StatusCode == http.StatusForbidden:
		return nil, ErrPermissionDenied
	case res.StatusCode < 200 || res.StatusCode >= 300:
		return nil, fmt.Errorf("%w: unexpected status %s", ErrPositionUnavailable, res.Status)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPositionUnavailable, err)
	}

	var loc Location
	if err := json.Unmarshal(body, &loc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPositionUnavailable, err)
	}
	return &loc, nil
}
