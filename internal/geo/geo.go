// Package geo estimates distances between user and store positions.
package geo

import (
	"math"

	"github.com/pricescan/catalog-service/internal/catalog"
)

const earthRadiusKm = 6371.0

// HaversineKm calculates the great-circle distance between two points in
// kilometers. Symmetric, and zero for identical points.
func HaversineKm(a, b catalog.LatLng) float64 {
	dLat := toRad(b.Latitude - a.Latitude)
	dLon := toRad(b.Longitude - a.Longitude)
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(a.Latitude))*math.Cos(toRad(b.Latitude))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return earthRadiusKm * c
}

// DistanceKm reports the distance from a to b, or ok=false when b is
// unknown. Callers must treat an unknown distance as missing, never as
// zero.
func DistanceKm(a catalog.LatLng, b *catalog.LatLng) (float64, bool) {
	if b == nil {
		return 0, false
	}
	return HaversineKm(a, *b), true
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}
