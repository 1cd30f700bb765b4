package geo

import "math"

// HaversineMeters returns the great-circle distance between a and b in meters.
func HaversineMeters(a, b Coordinate) float64 {
	dLat := toRad(b.Lat - a.Lat)
	dLng := toRad(b.Lng - a.Lng)

	sinDLat := math.Sin(dLat / 2)
	sinDLng := math.Sin(dLng / 2)

	x := sinDLat*sinDLat + math.Cos(toRad(a.Lat))*math.Cos(toRad(b.Lat))*sinDLng*sinDLng
	return EarthRadiusMeters * 2 * math.Atan2(math.Sqrt(x), math.Sqrt(1-x))
}

// PointToSegmentMeters returns the distance in meters from p to the segment
// [segA, segB]. The segment is treated as locally planar via an
// equirectangular projection centered on segA, which is accurate for the
// short segments and narrow corridors this service works with. A degenerate
// segment (segA == segB) falls back to the haversine distance to segA.
func PointToSegmentMeters(p, segA, segB Coordinate) float64 {
	lat := toRad(p.Lat)
	lng := toRad(p.Lng)
	aLat := toRad(segA.Lat)
	aLng := toRad(segA.Lng)
	bLat := toRad(segB.Lat)
	bLng := toRad(segB.Lng)

	// Project onto a plane relative to segA, scaling longitude by the
	// cosine of the mean latitude.
	px := (lng - aLng) * math.Cos((lat+aLat)/2) * EarthRadiusMeters
	py := (lat - aLat) * EarthRadiusMeters
	dx := (bLng - aLng) * math.Cos((bLat+aLat)/2) * EarthRadiusMeters
	dy := (bLat - aLat) * EarthRadiusMeters

	segLenSq := dx*dx + dy*dy
	if segLenSq == 0 {
		return HaversineMeters(p, segA)
	}

	t := (px*dx + py*dy) / segLenSq
	t = math.Max(0, math.Min(1, t))

	distX := px - t*dx
	distY := py - t*dy
	return math.Sqrt(distX*distX + distY*distY)
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}
