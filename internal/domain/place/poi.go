// Package place holds the point-of-interest model and the merge, corridor
// and filter pipeline applied to upstream search results.
package place

import (
	"strings"

	"github.com/raahsarthi/service-route/internal/geo"
)

// OpenState is the tri-state open status of a POI, resolved once at
// normalization time and never re-parsed downstream.
type OpenState string

const (
	OpenStateOpen    OpenState = "open"
	OpenStateClosed  OpenState = "closed"
	OpenStateUnknown OpenState = "unknown"
)

// ParseOpenState derives the tri-state status from a free-text upstream
// open-state string. "open" is checked before "close" so mixed strings like
// "Closed ⋅ Opens 9 AM" resolve the same way the upstream's own ordering
// does; anything without either substring is unknown.
func ParseOpenState(raw string) OpenState {
	if raw == "" {
		return OpenStateUnknown
	}
	lower := strings.ToLower(raw)
	if strings.Contains(lower, "open") {
		return OpenStateOpen
	}
	if strings.Contains(lower, "close") {
		return OpenStateClosed
	}
	return OpenStateUnknown
}

// POI is one point of interest, owned for the lifetime of a single
// aggregation request. Identity for deduplication is ID, which is the
// upstream identifier when present and the name otherwise.
type POI struct {
	ID          string         `json:"place_id"`
	Name        string         `json:"name"`
	Coordinate  geo.Coordinate `json:"coordinate"`
	Rating      *float64       `json:"rating,omitempty"`
	RatingCount int            `json:"user_ratings_total"`
	Address     string         `json:"vicinity"`
	OpenState   OpenState      `json:"open_state"`
	Category    Category       `json:"category"`
	Thumbnail   string         `json:"thumbnail,omitempty"`
}

// RatingOrZero returns the rating, treating an absent rating as 0 for
// filtering and sorting.
func (p POI) RatingOrZero() float64 {
	if p.Rating == nil {
		return 0
	}
	return *p.Rating
}
