package geo

// sampleEpsilonDegrees is the tolerance used to decide whether the last
// emitted sample already coincides with the final input point.
const sampleEpsilonDegrees = 1e-4

// SampleAtInterval walks points accumulating haversine distance and emits a
// point each time the accumulator reaches intervalMeters, resetting it. The
// first input point is always emitted and the final input point is appended
// when the last emitted sample differs from it. For any input of at least
// two points the output also has at least two points: degenerate short
// routes fall back to first, interior midpoint and last.
func SampleAtInterval(points []Coordinate, intervalMeters float64) []Coordinate {
	if len(points) == 0 {
		return nil
	}

	sampled := []Coordinate{points[0]}
	accumulated := 0.0

	for i := 1; i < len(points); i++ {
		accumulated += HaversineMeters(points[i-1], points[i])
		if accumulated >= intervalMeters {
			sampled = append(sampled, points[i])
			accumulated = 0
		}
	}

	last := points[len(points)-1]
	prev := sampled[len(sampled)-1]
	if !nearlyEqual(prev, last) {
		sampled = append(sampled, last)
	}

	if len(sampled) < 2 && len(points) >= 2 {
		sampled = sampled[:1]
		mid := points[len(points)/2]
		if !nearlyEqual(sampled[0], mid) {
			sampled = append(sampled, mid)
		}
		if !nearlyEqual(sampled[len(sampled)-1], last) {
			sampled = append(sampled, last)
		}
		// All points coincide within tolerance; keep the guarantee anyway.
		if len(sampled) < 2 {
			sampled = append(sampled, last)
		}
	}

	return sampled
}

func nearlyEqual(a, b Coordinate) bool {
	return abs(a.Lat-b.Lat) <= sampleEpsilonDegrees && abs(a.Lng-b.Lng) <= sampleEpsilonDegrees
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
