// Package application wires the domain pipeline to the upstream clients:
// route planning and POI aggregation as request-scoped use cases.
package application

import (
	"context"
	"fmt"

	"github.com/raahsarthi/service-route/internal/domain"
	"github.com/raahsarthi/service-route/internal/domain/trip"
	"github.com/raahsarthi/service-route/internal/geo"
	"github.com/raahsarthi/service-route/internal/upstream/geocode"
	"github.com/raahsarthi/service-route/internal/upstream/routing"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Geocoder resolves free-text place names to coordinates.
type Geocoder interface {
	Resolve(ctx context.Context, text string) (*geocode.Match, error)
	Suggest(ctx context.Context, text string, limit int) ([]geocode.Match, error)
}

// Router fetches candidate routes from the routing engine.
type Router interface {
	Routes(ctx context.Context, coords []geo.Coordinate, mode trip.TravelMode) ([]routing.RawRoute, error)
}

// PlanRequest holds the data needed to plan a journey.
type PlanRequest struct {
	Origin      string          `json:"origin" binding:"required"`
	Destination string          `json:"destination" binding:"required"`
	Waypoints   []trip.Waypoint `json:"waypoints"`
	Mode        trip.TravelMode `json:"mode"`
}

// TextDTO carries a formatted display value.
type TextDTO struct {
	Text string `json:"text"`
}

// DurationDTO carries a formatted duration plus its raw seconds.
type DurationDTO struct {
	Text  string `json:"text"`
	Value int    `json:"value"`
}

// AlternativeDTO is one alternative route in the plan response.
type AlternativeDTO struct {
	ID          string           `json:"id"`
	RoutePoints []geo.Coordinate `json:"route_points"`
	Distance    TextDTO          `json:"distance"`
	Duration    DurationDTO      `json:"duration"`
}

// RouteDTO is the response representation of a planned route.
type RouteDTO struct {
	RoutePoints  []geo.Coordinate `json:"route_points"`
	Polyline     string           `json:"polyline"`
	Alternatives []AlternativeDTO `json:"alternative_routes"`
	Steps        []trip.Step      `json:"steps"`
	StartAddress string           `json:"start_address"`
	EndAddress   string           `json:"end_address"`
	StartCoords  geo.Coordinate   `json:"start_coords"`
	EndCoords    geo.Coordinate   `json:"end_coords"`
	Distance     TextDTO          `json:"distance"`
	Duration     DurationDTO      `json:"duration"`
	Advisories   []trip.Advisory  `json:"advisories"`
}

// TripService is the application service orchestrating route planning.
type TripService struct {
	geocoder Geocoder
	router   Router
	logger   *zap.Logger
}

// NewTripService creates a new TripService.
func NewTripService(geocoder Geocoder, router Router, logger *zap.Logger) *TripService {
	return &TripService{
		geocoder: geocoder,
		router:   router,
		logger:   logger,
	}
}

// Plan resolves the origin and destination, requests a route with
// alternatives and turn steps, and assembles the immutable route model with
// formatted totals and duration advisories.
func (s *TripService) Plan(ctx context.Context, req PlanRequest) (*RouteDTO, error) {
	if req.Origin == "" || req.Destination == "" {
		return nil, domain.NewValidationError("origin and destination are required")
	}
	if req.Mode == "" {
		req.Mode = trip.ModeDriving
	}
	if !req.Mode.IsValid() {
		return nil, domain.NewValidationError(fmt.Sprintf("unsupported travel mode: %s", req.Mode))
	}
	for _, wp := range req.Waypoints {
		if !wp.Coordinate.Valid() {
			return nil, domain.NewValidationError(fmt.Sprintf("waypoint %q has invalid coordinates", wp.ID))
		}
	}

	// Resolve both endpoints concurrently; the first failure cancels the
	// sibling lookup and fails the whole request.
	var startGeo, endGeo *geocode.Match
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		m, err := s.geocoder.Resolve(gctx, req.Origin)
		startGeo = m
		return err
	})
	g.Go(func() error {
		m, err := s.geocoder.Resolve(gctx, req.Destination)
		endGeo = m
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	coords := make([]geo.Coordinate, 0, len(req.Waypoints)+2)
	coords = append(coords, startGeo.Coordinate)
	for _, wp := range req.Waypoints {
		coords = append(coords, wp.Coordinate)
	}
	coords = append(coords, endGeo.Coordinate)

	rawRoutes, err := s.router.Routes(ctx, coords, req.Mode)
	if err != nil {
		return nil, err
	}
	if len(rawRoutes[0].Points) < 2 {
		return nil, domain.NewUpstreamError("routing engine returned a route without geometry", nil)
	}

	route := assembleRoute(rawRoutes, startGeo, endGeo, req)

	s.logger.Info("route planned",
		zap.String("origin", req.Origin),
		zap.String("destination", req.Destination),
		zap.String("mode", string(req.Mode)),
		zap.Int("distance_meters", route.Primary.DistanceMeters),
		zap.Int("duration_seconds", route.Primary.DurationSeconds),
		zap.Int("alternatives", len(route.Alternatives)),
	)

	dto := toRouteDTO(route)
	return &dto, nil
}

// Suggest proxies autocomplete lookups to the geocoder, returning at most
// five candidates. Lookup failures degrade to an empty list.
func (s *TripService) Suggest(ctx context.Context, query string) []geocode.Match {
	matches, err := s.geocoder.Suggest(ctx, query, 5)
	if err != nil {
		s.logger.Warn("geocode suggestion failed", zap.String("query", query), zap.Error(err))
		return nil
	}
	return matches
}

func assembleRoute(rawRoutes []routing.RawRoute, startGeo, endGeo *geocode.Match, req PlanRequest) trip.Route {
	best := rawRoutes[0]
	primary := trip.NewPath(best.Points, best.DistanceMeters, best.DurationSeconds)

	alternatives := make([]trip.Path, 0, len(rawRoutes)-1)
	for _, r := range rawRoutes[1:] {
		alternatives = append(alternatives, trip.NewPath(r.Points, r.DistanceMeters, r.DurationSeconds))
	}

	// Flatten leg-level steps in traversal order. Maneuver metadata passes
	// through as the fixed type+modifier vocabulary.
	var steps []trip.Step
	for _, leg := range best.Legs {
		for _, s := range leg.Steps {
			steps = append(steps, trip.Step{
				Name: s.Name,
				Maneuver: trip.Maneuver{
					Type:     trip.ManeuverType(s.ManeuverType),
					Modifier: trip.ManeuverModifier(s.ManeuverModifier),
				},
				DistanceMeters:  s.DistanceMeters,
				DurationSeconds: s.DurationSeconds,
			})
		}
	}

	startAddress := startGeo.DisplayName
	if startAddress == "" {
		startAddress = req.Origin
	}
	endAddress := endGeo.DisplayName
	if endAddress == "" {
		endAddress = req.Destination
	}

	start := primary.Points[0]
	end := primary.Points[len(primary.Points)-1]

	return trip.Route{
		Primary:      primary,
		Alternatives: alternatives,
		Steps:        steps,
		StartAddress: startAddress,
		EndAddress:   endAddress,
		Start:        start,
		End:          end,
		Advisories:   trip.Advise(primary.DurationSeconds),
	}
}

func toRouteDTO(route trip.Route) RouteDTO {
	alternatives := make([]AlternativeDTO, len(route.Alternatives))
	for i, alt := range route.Alternatives {
		alternatives[i] = AlternativeDTO{
			ID:          fmt.Sprintf("alt-%d", i),
			RoutePoints: alt.Points,
			Distance:    TextDTO{Text: alt.DistanceText},
			Duration:    DurationDTO{Text: alt.DurationText, Value: alt.DurationSeconds},
		}
	}

	return RouteDTO{
		RoutePoints:  route.Primary.Points,
		Polyline:     geo.EncodePolyline(route.Primary.Points),
		Alternatives: alternatives,
		Steps:        route.Steps,
		StartAddress: route.StartAddress,
		EndAddress:   route.EndAddress,
		StartCoords:  route.Start,
		EndCoords:    route.End,
		Distance:     TextDTO{Text: route.Primary.DistanceText},
		Duration:     DurationDTO{Text: route.Primary.DurationText, Value: route.Primary.DurationSeconds},
		Advisories:   route.Advisories,
	}
}
