// Package places searches for points of interest around a coordinate via a
// SerpAPI-compatible place-search service.
package places

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/raahsarthi/service-route/internal/domain"
	"github.com/raahsarthi/service-route/internal/geo"
	"go.uber.org/zap"
)

// GPS is the upstream coordinate shape.
type GPS struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Result is one raw place result scoped to a single search point.
type Result struct {
	PlaceID   string   `json:"place_id"`
	DataID    string   `json:"data_id"`
	Title     string   `json:"title"`
	Rating    *float64 `json:"rating"`
	Reviews   int      `json:"reviews"`
	Address   string   `json:"address"`
	OpenState string   `json:"open_state"`
	Type      string   `json:"type"`
	Thumbnail string   `json:"thumbnail"`
	GPS       *GPS     `json:"gps_coordinates"`
}

// Identity returns the dedup identity: upstream place id, data id, or the
// title when neither is present.
func (r Result) Identity() string {
	if r.PlaceID != "" {
		return r.PlaceID
	}
	if r.DataID != "" {
		return r.DataID
	}
	return r.Title
}

// Client talks to the upstream place-search service.
type Client struct {
	baseURL    string
	apiKey     string
	timeout    time.Duration
	httpClient *http.Client
	log        *zap.Logger
}

// NewClient creates a place-search client.
func NewClient(baseURL, apiKey string, timeout time.Duration, log *zap.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		timeout:    timeout,
		httpClient: &http.Client{},
		log:        log,
	}
}

type searchResponse struct {
	LocalResults []Result `json:"local_results"`
}

// Nearby searches for query in the vicinity of point. Each call carries its
// own timeout so one slow region cannot stall the whole fan-out.
func (c *Client) Nearby(ctx context.Context, point geo.Coordinate, query string) ([]Result, error) {
	if c.apiKey == "" {
		return nil, domain.NewUpstreamError("place search is not configured", nil)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	params := url.Values{}
	params.Set("engine", "google_maps")
	params.Set("q", query)
	params.Set("ll", fmt.Sprintf("@%f,%f,14z", point.Lat, point.Lng))
	params.Set("type", "search")
	params.Set("api_key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search.json?"+params.Encode(), nil)
	if err != nil {
		return nil, domain.NewUpstreamError("failed to build place search request", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, domain.NewUpstreamTimeoutError("place search timed out", err)
		}
		return nil, domain.NewUpstreamError("place search unreachable", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, domain.NewUpstreamError(
			fmt.Sprintf("place search returned status %d", resp.StatusCode), nil)
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, domain.NewUpstreamError("malformed place search payload", err)
	}

	return payload.LocalResults, nil
}
