// Package trip holds the route model produced by the planner: traversed
// paths, turn steps, waypoints, travel modes and duration-based advisories.
package trip

import "github.com/raahsarthi/service-route/internal/geo"

// TravelMode selects the routing profile for a journey.
type TravelMode string

const (
	ModeDriving TravelMode = "driving"
	ModeWalking TravelMode = "walking"
	ModeCycling TravelMode = "cycling"
)

// IsValid reports whether the travel mode is one of the supported profiles.
func (m TravelMode) IsValid() bool {
	switch m {
	case ModeDriving, ModeWalking, ModeCycling:
		return true
	}
	return false
}

// Path is one traversed point sequence with its totals. Points are in
// direction of travel and never reordered.
type Path struct {
	Points          []geo.Coordinate `json:"points"`
	DistanceMeters  int              `json:"distance_meters"`
	DurationSeconds int              `json:"duration_seconds"`
	DistanceText    string           `json:"distance_text"`
	DurationText    string           `json:"duration_text"`
}

// NewPath builds a Path with its formatted distance and duration texts.
func NewPath(points []geo.Coordinate, distanceMeters, durationSeconds int) Path {
	return Path{
		Points:          points,
		DistanceMeters:  distanceMeters,
		DurationSeconds: durationSeconds,
		DistanceText:    FormatDistance(distanceMeters),
		DurationText:    FormatDuration(durationSeconds),
	}
}

// Step is a single turn instruction in display order.
type Step struct {
	Name            string   `json:"name"`
	Maneuver        Maneuver `json:"maneuver"`
	DistanceMeters  int      `json:"distance_meters"`
	DurationSeconds int      `json:"duration_seconds"`
}

// Waypoint is a caller-supplied intermediate stop. The engine never mutates
// or reorders waypoints; reordering is a new plan request.
type Waypoint struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Coordinate geo.Coordinate `json:"coordinate"`
}

// Route is the assembled result of one plan request. Immutable once
// returned; nothing is persisted between requests.
type Route struct {
	Primary      Path           `json:"primary"`
	Alternatives []Path         `json:"alternatives"`
	Steps        []Step         `json:"steps"`
	StartAddress string         `json:"start_address"`
	EndAddress   string         `json:"end_address"`
	Start        geo.Coordinate `json:"start"`
	End          geo.Coordinate `json:"end"`
	Advisories   []Advisory     `json:"advisories"`
}
