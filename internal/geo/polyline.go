package geo

import "strings"

// polylinePrecision is the Google Maps standard 1e-5 coordinate precision.
const polylinePrecision = 1e5

// DecodePolyline converts a Google encoded polyline string into a coordinate
// sequence.
func DecodePolyline(encoded string) []Coordinate {
	var points []Coordinate
	index, lat, lng := 0, 0, 0

	for index < len(encoded) {
		dLat, next, ok := decodeVarint(encoded, index)
		if !ok {
			return points
		}
		lat += dLat

		dLng, next2, ok := decodeVarint(encoded, next)
		if !ok {
			return points
		}
		lng += dLng
		index = next2

		points = append(points, Coordinate{
			Lat: float64(lat) / polylinePrecision,
			Lng: float64(lng) / polylinePrecision,
		})
	}

	return points
}

// EncodePolyline converts a coordinate sequence into a Google encoded
// polyline string.
func EncodePolyline(points []Coordinate) string {
	var sb strings.Builder
	prevLat, prevLng := 0, 0

	for _, p := range points {
		lat := int(round(p.Lat * polylinePrecision))
		lng := int(round(p.Lng * polylinePrecision))
		encodeVarint(&sb, lat-prevLat)
		encodeVarint(&sb, lng-prevLng)
		prevLat, prevLng = lat, lng
	}

	return sb.String()
}

func decodeVarint(encoded string, index int) (value, next int, ok bool) {
	shift, result := 0, 0
	for {
		if index >= len(encoded) {
			return 0, index, false
		}
		b := int(encoded[index]) - 63
		index++
		result |= (b & 0x1f) << shift
		shift += 5
		if b < 0x20 {
			break
		}
	}
	if result&1 != 0 {
		return ^(result >> 1), index, true
	}
	return result >> 1, index, true
}

func encodeVarint(sb *strings.Builder, value int) {
	v := value << 1
	if value < 0 {
		v = ^v
	}
	for v >= 0x20 {
		sb.WriteByte(byte((0x20 | (v & 0x1f)) + 63))
		v >>= 5
	}
	sb.WriteByte(byte(v + 63))
}

func round(v float64) float64 {
	if v < 0 {
		return float64(int(v - 0.5))
	}
	return float64(int(v + 0.5))
}
