package application

import (
	"context"
	"fmt"
	"sync"

	"github.com/raahsarthi/service-route/internal/domain"
	"github.com/raahsarthi/service-route/internal/domain/place"
	"github.com/raahsarthi/service-route/internal/geo"
	"github.com/raahsarthi/service-route/internal/upstream/places"
	"go.uber.org/zap"
)

const (
	// sampleIntervalMeters spaces the upstream search points along the route.
	sampleIntervalMeters = 50000
	// maxSearchPoints bounds upstream call volume per aggregation request.
	maxSearchPoints = 5
)

// Searcher runs one place search scoped to a coordinate's vicinity.
type Searcher interface {
	Nearby(ctx context.Context, point geo.Coordinate, query string) ([]places.Result, error)
}

// SearchRequest holds the data needed to aggregate POIs along a route.
type SearchRequest struct {
	RoutePoints    []geo.Coordinate `json:"route_points" binding:"required"`
	Category       place.Category   `json:"category"`
	MinRating      float64          `json:"min_rating"`
	OpenNow        bool             `json:"open_now"`
	CorridorMeters float64          `json:"corridor_meters"`
}

// SearchResult is the response representation of an aggregation.
type SearchResult struct {
	Places   []place.POI `json:"places"`
	Total    int         `json:"total"`
	Warnings []string    `json:"warnings,omitempty"`
}

// PlaceService is the application service aggregating POIs along a route.
type PlaceService struct {
	searcher Searcher
	logger   *zap.Logger
}

// NewPlaceService creates a new PlaceService.
func NewPlaceService(searcher Searcher, logger *zap.Logger) *PlaceService {
	return &PlaceService{
		searcher: searcher,
		logger:   logger,
	}
}

// Search samples the route, fans out one concurrent place search per sample
// point, merges the batches with identifier dedup, and applies the corridor,
// rating and open-now filters plus the rating sort. A failed sample point
// contributes zero results and a warning; only all points failing surfaces
// as an upstream error.
func (s *PlaceService) Search(ctx context.Context, req SearchRequest) (*SearchResult, error) {
	if len(req.RoutePoints) < 2 {
		return nil, domain.NewInvalidRouteError("at least two route points are required")
	}
	if req.Category == "" {
		req.Category = place.CategoryRestaurant
	}
	if req.CorridorMeters == 0 {
		req.CorridorMeters = place.DefaultCorridorMeters
	}

	spec := place.FilterSpec{
		Category:       req.Category,
		MinRating:      req.MinRating,
		OpenNow:        req.OpenNow,
		CorridorMeters: req.CorridorMeters,
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	searchPoints := geo.SampleAtInterval(req.RoutePoints, sampleIntervalMeters)
	if len(searchPoints) > maxSearchPoints {
		searchPoints = searchPoints[:maxSearchPoints]
	}

	query := spec.Category.SearchQuery()

	// Fire all searches, gather all outcomes. Batches are indexed by sample
	// point so the merge runs in route order regardless of completion order.
	batches := make([][]places.Result, len(searchPoints))
	errs := make([]error, len(searchPoints))

	var wg sync.WaitGroup
	for i, point := range searchPoints {
		wg.Add(1)
		go func(i int, point geo.Coordinate) {
			defer wg.Done()
			batches[i], errs[i] = s.searcher.Nearby(ctx, point, query)
		}(i, point)
	}
	wg.Wait()

	var warnings []string
	failed := 0
	for i, err := range errs {
		if err == nil {
			continue
		}
		failed++
		s.logger.Warn("search point failed",
			zap.Int("point", i),
			zap.Float64("lat", searchPoints[i].Lat),
			zap.Float64("lng", searchPoints[i].Lng),
			zap.Error(err),
		)
		warnings = append(warnings, fmt.Sprintf("search around point %d failed, results may be incomplete", i+1))
	}
	if failed == len(searchPoints) {
		return nil, domain.NewUpstreamError("place search failed for the whole route", errs[0])
	}

	normalized := make([][]place.POI, len(batches))
	for i, batch := range batches {
		normalized[i] = normalizeBatch(batch, spec.Category)
	}

	merged := place.Merge(normalized)
	filtered := spec.Apply(merged, req.RoutePoints)
	place.SortByRating(filtered)

	s.logger.Info("places aggregated",
		zap.String("category", string(spec.Category)),
		zap.Int("search_points", len(searchPoints)),
		zap.Int("merged", len(merged)),
		zap.Int("returned", len(filtered)),
		zap.Int("failed_points", failed),
	)

	return &SearchResult{
		Places:   filtered,
		Total:    len(filtered),
		Warnings: warnings,
	}, nil
}

// normalizeBatch converts raw upstream results into the POI shape,
// resolving the tri-state open status once and discarding results without a
// resolvable coordinate.
func normalizeBatch(batch []places.Result, category place.Category) []place.POI {
	pois := make([]place.POI, 0, len(batch))
	for _, r := range batch {
		if r.GPS == nil {
			continue
		}
		id := r.Identity()
		if id == "" {
			continue
		}
		name := r.Title
		if name == "" {
			name = "Unknown"
		}
		pois = append(pois, place.POI{
			ID:          id,
			Name:        name,
			Coordinate:  geo.Coordinate{Lat: r.GPS.Latitude, Lng: r.GPS.Longitude},
			Rating:      r.Rating,
			RatingCount: r.Reviews,
			Address:     r.Address,
			OpenState:   place.ParseOpenState(r.OpenState),
			Category:    category,
			Thumbnail:   r.Thumbnail,
		})
	}
	return pois
}
