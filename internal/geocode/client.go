// Package geocode resolves place rows to coordinates via Nominatim.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/seongmin-k/biffplan/internal/service"
)

const defaultBaseURL = "https://nominatim.openstreetmap.org/search"

// userAgent identifies the tool per the Nominatim usage policy.
const userAgent = "biffplan/1.0"

// Client queries the Nominatim free-text search endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a client with a bounded per-request timeout.
func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    defaultBaseURL,
	}
}

// nominatimResult is the subset of the search response we consume. Nominatim
// returns coordinates as strings.
type nominatimResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Query runs one free-text search and returns the best match, or nil when
// the service has no result for the query.
func (c *Client) Query(ctx context.Context, query string) (*service.Coordinate, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build geocode request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocode request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocode request returned status %d", resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("failed to decode geocode response: %w", err)
	}
	if len(results) == 0 {
		return nil, nil
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("geocode result has invalid latitude %q", results[0].Lat)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("geocode result has invalid longitude %q", results[0].Lon)
	}

	return &service.Coordinate{Lat: lat, Lon: lon}, nil
}
