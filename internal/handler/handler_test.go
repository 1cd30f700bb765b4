package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/raahsarthi/service-route/internal/application"
	"github.com/raahsarthi/service-route/internal/domain"
	"github.com/raahsarthi/service-route/internal/domain/trip"
	"github.com/raahsarthi/service-route/internal/geo"
	"github.com/raahsarthi/service-route/internal/upstream/geocode"
	"github.com/raahsarthi/service-route/internal/upstream/places"
	"github.com/raahsarthi/service-route/internal/upstream/routing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubGeocoder struct{}

func (stubGeocoder) Resolve(_ context.Context, text string) (*geocode.Match, error) {
	switch text {
	case "Delhi":
		return &geocode.Match{Coordinate: geo.Coordinate{Lat: 28.6139, Lng: 77.209}, DisplayName: "Delhi, India"}, nil
	case "Jaipur":
		return &geocode.Match{Coordinate: geo.Coordinate{Lat: 26.9124, Lng: 75.7873}, DisplayName: "Jaipur, India"}, nil
	}
	return nil, domain.NewLocationNotFoundError("could not find " + text)
}

func (stubGeocoder) Suggest(_ context.Context, text string, limit int) ([]geocode.Match, error) {
	return []geocode.Match{{DisplayName: text + " Suggestion"}}, nil
}

type stubRouter struct{}

func (stubRouter) Routes(_ context.Context, coords []geo.Coordinate, _ trip.TravelMode) ([]routing.RawRoute, error) {
	return []routing.RawRoute{{
		Points:          coords,
		DistanceMeters:  281000,
		DurationSeconds: 18000,
	}}, nil
}

type stubSearcher struct {
	err error
}

func (s stubSearcher) Nearby(_ context.Context, point geo.Coordinate, _ string) ([]places.Result, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []places.Result{{
		PlaceID: "p1",
		Title:   "Spice Court",
		GPS:     &places.GPS{Latitude: point.Lat, Longitude: point.Lng},
	}}, nil
}

func newTestRouter(searcher application.Searcher) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	log := zap.NewNop()
	tripSvc := application.NewTripService(stubGeocoder{}, stubRouter{}, log)
	placeSvc := application.NewPlaceService(searcher, log)

	NewTripHandler(tripSvc).RegisterRoutes(&router.RouterGroup)
	NewPlaceHandler(placeSvc).RegisterRoutes(&router.RouterGroup)
	NewHealthHandler("service-route").RegisterRoutes(&router.RouterGroup)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestPlanRouteEndpoint(t *testing.T) {
	router := newTestRouter(stubSearcher{})

	w := doJSON(t, router, http.MethodPost, "/api/route", gin.H{
		"origin":      "Delhi",
		"destination": "Jaipur",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp application.RouteDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Delhi, India", resp.StartAddress)
	assert.Equal(t, "281.0 km", resp.Distance.Text)
	assert.Equal(t, 18000, resp.Duration.Value)
	assert.Len(t, resp.Advisories, 4)
}

func TestPlanRouteLocationNotFoundIs400(t *testing.T) {
	router := newTestRouter(stubSearcher{})

	w := doJSON(t, router, http.MethodPost, "/api/route", gin.H{
		"origin":      "Delhi",
		"destination": "Atlantis",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "error")
}

func TestPlanRouteMissingBodyIs400(t *testing.T) {
	router := newTestRouter(stubSearcher{})

	w := doJSON(t, router, http.MethodPost, "/api/route", nil)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSearchPlacesEndpoint(t *testing.T) {
	router := newTestRouter(stubSearcher{})

	w := doJSON(t, router, http.MethodPost, "/api/places", gin.H{
		"route_points": []geo.Coordinate{
			{Lat: 0, Lng: 0},
			{Lat: 0, Lng: 0.5},
		},
		"category": "restaurant",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp application.SearchResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, resp.Total, len(resp.Places))
	assert.NotZero(t, resp.Total)
}

func TestSearchPlacesTooFewPointsIs400(t *testing.T) {
	router := newTestRouter(stubSearcher{})

	w := doJSON(t, router, http.MethodPost, "/api/places", gin.H{
		"route_points": []geo.Coordinate{{Lat: 0, Lng: 0}},
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSearchPlacesUpstreamFailureIs500(t *testing.T) {
	router := newTestRouter(stubSearcher{err: domain.NewUpstreamError("place search unreachable", nil)})

	w := doJSON(t, router, http.MethodPost, "/api/places", gin.H{
		"route_points": []geo.Coordinate{
			{Lat: 0, Lng: 0},
			{Lat: 0, Lng: 0.5},
		},
	})

	require.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGeocodeSuggestEndpoint(t *testing.T) {
	router := newTestRouter(stubSearcher{})

	w := doJSON(t, router, http.MethodGet, "/api/geocode?q=Jai", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Jai Suggestion")

	w = doJSON(t, router, http.MethodGet, "/api/geocode", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(stubSearcher{})

	w := doJSON(t, router, http.MethodGet, "/api/health", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
	assert.Contains(t, w.Body.String(), "service-route")
}
