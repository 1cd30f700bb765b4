// Package routing fetches candidate routes from an OSRM-compatible routing
// engine.
package routing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/raahsarthi/service-route/internal/domain"
	"github.com/raahsarthi/service-route/internal/domain/trip"
	"github.com/raahsarthi/service-route/internal/geo"
	"go.uber.org/zap"
)

// GeometryFormat selects the wire encoding of route geometry.
type GeometryFormat string

const (
	GeometryGeoJSON  GeometryFormat = "geojson"
	GeometryPolyline GeometryFormat = "polyline"
)

// RawStep is one upstream turn instruction before normalization.
type RawStep struct {
	Name             string
	DistanceMeters   int
	DurationSeconds  int
	ManeuverType     string
	ManeuverModifier string
}

// RawLeg groups the steps between two consecutive waypoints.
type RawLeg struct {
	Steps []RawStep
}

// RawRoute is one candidate route as returned by the engine, ranked best
// first in the slice the client returns.
type RawRoute struct {
	Points          []geo.Coordinate
	DistanceMeters  int
	DurationSeconds int
	Legs            []RawLeg
}

// Client talks to the upstream routing engine.
type Client struct {
	baseURL    string
	geometry   GeometryFormat
	timeout    time.Duration
	httpClient *http.Client
	log        *zap.Logger
}

// NewClient creates a routing client. geometry selects the geometry wire
// format the engine is asked for.
func NewClient(baseURL string, geometry GeometryFormat, timeout time.Duration, log *zap.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		geometry:   geometry,
		timeout:    timeout,
		httpClient: &http.Client{},
		log:        log,
	}
}

type osrmManeuver struct {
	Type     string `json:"type"`
	Modifier string `json:"modifier"`
}

type osrmStep struct {
	Name     string       `json:"name"`
	Distance float64      `json:"distance"`
	Duration float64      `json:"duration"`
	Maneuver osrmManeuver `json:"maneuver"`
}

type osrmLeg struct {
	Steps []osrmStep `json:"steps"`
}

type osrmRoute struct {
	Geometry json.RawMessage `json:"geometry"`
	Distance float64         `json:"distance"`
	Duration float64         `json:"duration"`
	Legs     []osrmLeg       `json:"legs"`
}

type osrmResponse struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Routes  []osrmRoute `json:"routes"`
}

var profiles = map[trip.TravelMode]string{
	trip.ModeDriving: "driving",
	trip.ModeWalking: "foot",
	trip.ModeCycling: "bike",
}

// Routes requests the primary route plus up to three alternatives through
// the ordered coordinate list for the given travel mode, with full geometry
// and step-level turn data.
func (c *Client) Routes(ctx context.Context, coords []geo.Coordinate, mode trip.TravelMode) ([]RawRoute, error) {
	profile, ok := profiles[mode]
	if !ok {
		return nil, domain.NewValidationError(fmt.Sprintf("unsupported travel mode: %s", mode))
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	pairs := make([]string, len(coords))
	for i, p := range coords {
		pairs[i] = fmt.Sprintf("%f,%f", p.Lng, p.Lat)
	}

	params := url.Values{}
	params.Set("overview", "full")
	params.Set("geometries", string(c.geometry))
	params.Set("steps", "true")
	params.Set("alternatives", "3")

	endpoint := fmt.Sprintf("%s/route/v1/%s/%s?%s",
		c.baseURL, profile, strings.Join(pairs, ";"), params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, domain.NewUpstreamError("failed to build routing request", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, domain.NewUpstreamTimeoutError("routing engine timed out", err)
		}
		return nil, domain.NewUpstreamError("routing engine unreachable", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, domain.NewUpstreamError(
			fmt.Sprintf("routing engine returned status %d", resp.StatusCode), nil)
	}

	var payload osrmResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, domain.NewUpstreamError("malformed routing payload", err)
	}

	if payload.Code != "Ok" || len(payload.Routes) == 0 {
		c.log.Info("no route found",
			zap.String("code", payload.Code),
			zap.String("message", payload.Message),
		)
		return nil, domain.NewNoRouteFoundError("no route found between these locations")
	}

	routes := make([]RawRoute, 0, len(payload.Routes))
	for _, r := range payload.Routes {
		points, err := c.decodeGeometry(r.Geometry)
		if err != nil {
			return nil, domain.NewUpstreamError("malformed route geometry", err)
		}
		routes = append(routes, RawRoute{
			Points:          points,
			DistanceMeters:  int(math.Round(r.Distance)),
			DurationSeconds: int(math.Round(r.Duration)),
			Legs:            convertLegs(r.Legs),
		})
	}
	return routes, nil
}

func (c *Client) decodeGeometry(raw json.RawMessage) ([]geo.Coordinate, error) {
	if c.geometry == GeometryPolyline {
		var encoded string
		if err := json.Unmarshal(raw, &encoded); err != nil {
			return nil, err
		}
		return geo.DecodePolyline(encoded), nil
	}

	var g geojson.Geometry
	if err := json.Unmarshal(raw, &g); err != nil {
		return nil, err
	}
	line, ok := g.Geometry().(orb.LineString)
	if !ok {
		return nil, fmt.Errorf("unexpected geometry type %q", g.Type)
	}

	points := make([]geo.Coordinate, len(line))
	for i, p := range line {
		points[i] = geo.Coordinate{Lat: p.Lat(), Lng: p.Lon()}
	}
	return points, nil
}

func convertLegs(legs []osrmLeg) []RawLeg {
	out := make([]RawLeg, len(legs))
	for i, leg := range legs {
		steps := make([]RawStep, len(leg.Steps))
		for j, s := range leg.Steps {
			steps[j] = RawStep{
				Name:             s.Name,
				DistanceMeters:   int(math.Round(s.Distance)),
				DurationSeconds:  int(math.Round(s.Duration)),
				ManeuverType:     s.Maneuver.Type,
				ManeuverModifier: s.Maneuver.Modifier,
			}
		}
		out[i] = RawLeg{Steps: steps}
	}
	return out
}
