package place

import "github.com/raahsarthi/service-route/internal/geo"

// WithinCorridor reports whether p lies within thresholdMeters of any
// consecutive segment of route. It short-circuits on the first satisfying
// segment: the policy is existence, not closest distance.
func WithinCorridor(p geo.Coordinate, route []geo.Coordinate, thresholdMeters float64) bool {
	for i := 0; i < len(route)-1; i++ {
		if geo.PointToSegmentMeters(p, route[i], route[i+1]) <= thresholdMeters {
			return true
		}
	}
	return false
}
