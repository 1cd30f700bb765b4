// Package geocode resolves free-text place names to coordinates via a
// Nominatim-compatible forward-geocoding service.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/raahsarthi/service-route/internal/domain"
	"github.com/raahsarthi/service-route/internal/geo"
	"go.uber.org/zap"
)

const userAgent = "RaahSarthi/1.0"

// Match is one geocoding candidate.
type Match struct {
	Coordinate  geo.Coordinate `json:"coordinate"`
	DisplayName string         `json:"display_name"`
}

// Client talks to the upstream geocoder.
type Client struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	log        *zap.Logger
}

// NewClient creates a geocoding client with the given per-call time budget.
func NewClient(baseURL string, timeout time.Duration, log *zap.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		timeout:    timeout,
		httpClient: &http.Client{},
		log:        log,
	}
}

// nominatimResult is the upstream wire shape; coordinates arrive as strings.
type nominatimResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Resolve returns the single highest-confidence match for text. Zero
// results, an unreachable upstream or an exhausted time budget all surface
// as a location-not-found error: the caller shows "location not found", not
// a crash.
func (c *Client) Resolve(ctx context.Context, text string) (*Match, error) {
	matches, err := c.search(ctx, text, 1, false)
	if err != nil {
		c.log.Warn("geocoding failed", zap.String("query", text), zap.Error(err))
		return nil, domain.NewLocationNotFoundError(
			fmt.Sprintf("could not find %q, try a more specific name", text))
	}
	if len(matches) == 0 {
		return nil, domain.NewLocationNotFoundError(
			fmt.Sprintf("could not find %q, try a more specific name", text))
	}
	return &matches[0], nil
}

// Suggest returns up to limit candidates for an autocomplete query.
func (c *Client) Suggest(ctx context.Context, text string, limit int) ([]Match, error) {
	return c.search(ctx, text, limit, true)
}

func (c *Client) search(ctx context.Context, text string, limit int, details bool) ([]Match, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	params := url.Values{}
	params.Set("q", text)
	params.Set("format", "json")
	params.Set("limit", strconv.Itoa(limit))
	if details {
		params.Set("addressdetails", "1")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoder returned status %d", resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("malformed geocoder payload: %w", err)
	}

	matches := make([]Match, 0, len(results))
	for _, r := range results {
		lat, latErr := strconv.ParseFloat(r.Lat, 64)
		lng, lngErr := strconv.ParseFloat(r.Lon, 64)
		if latErr != nil || lngErr != nil {
			continue
		}
		matches = append(matches, Match{
			Coordinate:  geo.Coordinate{Lat: lat, Lng: lng},
			DisplayName: r.DisplayName,
		})
	}
	return matches, nil
}
