package places

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/raahsarthi/service-route/internal/domain"
	"github.com/raahsarthi/service-route/internal/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var searchPoint = geo.Coordinate{Lat: 26.9124, Lng: 75.7873}

func TestNearby(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search.json", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "google_maps", q.Get("engine"))
		assert.Equal(t, "restaurants food", q.Get("q"))
		assert.Equal(t, "@26.912400,75.787300,14z", q.Get("ll"))
		assert.Equal(t, "search", q.Get("type"))
		assert.Equal(t, "test-key", q.Get("api_key"))

		_, _ = w.Write([]byte(`{
			"local_results": [
				{
					"place_id": "p1",
					"title": "Spice Court",
					"rating": 4.4,
					"reviews": 1280,
					"address": "Civil Lines, Jaipur",
					"open_state": "Open ⋅ Closes 11 PM",
					"type": "Restaurant",
					"thumbnail": "https://example.com/t.jpg",
					"gps_coordinates": {"latitude": 26.9131, "longitude": 75.7881}
				},
				{
					"data_id": "d2",
					"title": "No Rating Dhaba",
					"gps_coordinates": {"latitude": 26.90, "longitude": 75.78}
				}
			]
		}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key", time.Second, zap.NewNop())
	results, err := c.Nearby(context.Background(), searchPoint, "restaurants food")

	require.NoError(t, err)
	require.Len(t, results, 2)

	first := results[0]
	assert.Equal(t, "p1", first.Identity())
	assert.Equal(t, "Spice Court", first.Title)
	require.NotNil(t, first.Rating)
	assert.InDelta(t, 4.4, *first.Rating, 1e-9)
	assert.Equal(t, 1280, first.Reviews)
	assert.Equal(t, "Open ⋅ Closes 11 PM", first.OpenState)
	require.NotNil(t, first.GPS)
	assert.InDelta(t, 26.9131, first.GPS.Latitude, 1e-9)

	second := results[1]
	assert.Nil(t, second.Rating)
	assert.Equal(t, "d2", second.Identity(), "data id backs a missing place id")
}

func TestIdentityFallsBackToTitle(t *testing.T) {
	assert.Equal(t, "Some Dhaba", Result{Title: "Some Dhaba"}.Identity())
}

func TestNearbyMissingAPIKey(t *testing.T) {
	c := NewClient("http://unused", "", time.Second, zap.NewNop())
	_, err := c.Nearby(context.Background(), searchPoint, "restaurants food")

	require.Error(t, err)
	assert.Equal(t, domain.CodeUpstream, domain.CodeOf(err))
}

func TestNearbyUpstreamStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key", time.Second, zap.NewNop())
	_, err := c.Nearby(context.Background(), searchPoint, "cafe coffee shop")

	require.Error(t, err)
	assert.Equal(t, domain.CodeUpstream, domain.CodeOf(err))
}

func TestNearbyTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key", 20*time.Millisecond, zap.NewNop())
	_, err := c.Nearby(context.Background(), searchPoint, "atm bank")

	require.Error(t, err)
	assert.Equal(t, domain.CodeUpstreamTimeout, domain.CodeOf(err))
}
