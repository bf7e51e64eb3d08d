// Package geo implements the Geocoder port against a Yandex-compatible
// geocoding HTTP API.
package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

const upstreamName = "geocoder"

var (
	ErrBaseURLIsRequired = errors.New("geocoder base URL is required")
	ErrTimeoutIsRequired = errors.New("geocoder timeout must be positive")
)

// Client resolves free-form addresses to coordinates through the geocoding
// API. Every call carries the configured timeout; a timeout or transport
// failure surfaces as an upstream unavailable error so the caller can decide
// whether to retry.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a geocoding client. The base URL points at the geocoder
// endpoint itself, e.g. https://geocode-maps.yandex.ru/1.x/.
func NewClient(baseURL string, apiKey string, timeout time.Duration) (*Client, error) {
	if baseURL == "" {
		return nil, ErrBaseURLIsRequired
	}
	if timeout <= 0 {
		return nil, ErrTimeoutIsRequired
	}

	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// geocodeResponse mirrors the parts of the API response we read. The pos
// field carries "longitude latitude" separated by a space.
type geocodeResponse struct {
	Response struct {
		GeoObjectCollection struct {
			FeatureMember []struct {
				GeoObject struct {
					Point struct {
						Pos string `json:"pos"`
					} `json:"Point"`
				} `json:"GeoObject"`
			} `json:"featureMember"`
		} `json:"GeoObjectCollection"`
	} `json:"response"`
}

// Resolve geocodes an address. Returns an object not found error when the
// API finds no match and an upstream unavailable error on transport
// failures, timeouts or non-200 responses.
func (c *Client) Resolve(ctx context.Context, address string) (kernel.GeoPoint, error) {
	if address == "" {
		return kernel.GeoPoint{}, errs.NewValueIsRequiredError("address")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return kernel.GeoPoint{}, errs.NewUpstreamUnavailableError(upstreamName, err)
	}

	query := url.Values{}
	if c.apiKey != "" {
		query.Set("apikey", c.apiKey)
	}
	query.Set("geocode", address)
	query.Set("format", "json")
	req.URL.RawQuery = query.Encode()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return kernel.GeoPoint{}, errs.NewUpstreamUnavailableError(upstreamName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return kernel.GeoPoint{}, errs.NewUpstreamUnavailableError(
			upstreamName, fmt.Errorf("unexpected status %d", resp.StatusCode),
		)
	}

	var payload geocodeResponse
	if err = json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return kernel.GeoPoint{}, errs.NewUpstreamUnavailableError(upstreamName, err)
	}

	members := payload.Response.GeoObjectCollection.FeatureMember
	if len(members) == 0 {
		return kernel.GeoPoint{}, errs.NewObjectNotFoundError("location", address)
	}

	return parsePos(members[0].GeoObject.Point.Pos, address)
}

// parsePos converts the API's "lon lat" pair into a GeoPoint.
func parsePos(pos string, address string) (kernel.GeoPoint, error) {
	parts := strings.Fields(pos)
	if len(parts) != 2 {
		return kernel.GeoPoint{}, errs.NewObjectNotFoundError("location", address)
	}

	var lon, lat float64
	if _, err := fmt.Sscanf(pos, "%f %f", &lon, &lat); err != nil {
		return kernel.GeoPoint{}, errs.NewObjectNotFoundError("location", address)
	}

	point, err := kernel.NewGeoPoint(lat, lon)
	if err != nil {
		return kernel.GeoPoint{}, errs.NewObjectNotFoundErrorWithCause("location", address, err)
	}

	return point, nil
}
