package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/raahsarthi/service-route/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestResolveBestMatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "Jaipur", r.URL.Query().Get("q"))
		assert.Equal(t, "1", r.URL.Query().Get("limit"))
		assert.Equal(t, "RaahSarthi/1.0", r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"lat": "26.9124", "lon": "75.7873", "display_name": "Jaipur, Rajasthan, India"},
			{"lat": "27.0000", "lon": "75.0000", "display_name": "Jaipur, Elsewhere"}
		]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, zap.NewNop())
	match, err := c.Resolve(context.Background(), "Jaipur")

	require.NoError(t, err)
	assert.Equal(t, "Jaipur, Rajasthan, India", match.DisplayName)
	assert.InDelta(t, 26.9124, match.Coordinate.Lat, 1e-9)
	assert.InDelta(t, 75.7873, match.Coordinate.Lng, 1e-9)
}

func TestResolveZeroResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, zap.NewNop())
	_, err := c.Resolve(context.Background(), "Atlantis")

	require.Error(t, err)
	assert.Equal(t, domain.CodeLocationNotFound, domain.CodeOf(err))
}

func TestResolveTimeoutIsNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 20*time.Millisecond, zap.NewNop())
	_, err := c.Resolve(context.Background(), "Jaipur")

	require.Error(t, err)
	// An exhausted budget reads as "location not found" to the caller.
	assert.Equal(t, domain.CodeLocationNotFound, domain.CodeOf(err))
}

func TestResolveUpstreamErrorIsNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, zap.NewNop())
	_, err := c.Resolve(context.Background(), "Jaipur")

	require.Error(t, err)
	assert.Equal(t, domain.CodeLocationNotFound, domain.CodeOf(err))
}

func TestSuggestReturnsCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		assert.Equal(t, "1", r.URL.Query().Get("addressdetails"))
		_, _ = w.Write([]byte(`[
			{"lat": "26.9", "lon": "75.7", "display_name": "Jaipur"},
			{"lat": "26.2", "lon": "78.1", "display_name": "Jaipur Road"}
		]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, zap.NewNop())
	matches, err := c.Suggest(context.Background(), "Jaip", 5)

	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, "Jaipur", matches[0].DisplayName)
}

func TestSuggestSkipsUnparsableCoordinates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[
			{"lat": "not-a-number", "lon": "75.7", "display_name": "Broken"},
			{"lat": "26.9", "lon": "75.7", "display_name": "Jaipur"}
		]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, zap.NewNop())
	matches, err := c.Suggest(context.Background(), "Jaip", 5)

	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "Jaipur", matches[0].DisplayName)
}
