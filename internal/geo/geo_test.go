package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pricescan/catalog-service/internal/catalog"
)

var (
	zagreb = catalog.LatLng{Latitude: 45.8150, Longitude: 15.9819}
	split  = catalog.LatLng{Latitude: 43.5081, Longitude: 16.4402}
)

func TestHaversineKnownDistance(t *testing.T) {
	// Zagreb to Split is roughly 258 km as the crow flies
	d := HaversineKm(zagreb, split)
	assert.InDelta(t, 258, d, 5)
}

func TestHaversineSymmetry(t *testing.T) {
	assert.Equal(t, HaversineKm(zagreb, split), HaversineKm(split, zagreb))
}

func TestHaversineIdentity(t *testing.T) {
	assert.Equal(t, 0.0, HaversineKm(zagreb, zagreb))
}

func TestDistanceKmUnknown(t *testing.T) {
	_, ok := DistanceKm(zagreb, nil)
	assert.False(t, ok)

	d, ok := DistanceKm(zagreb, &split)
	assert.True(t, ok)
	assert.Greater(t, d, 0.0)
}
