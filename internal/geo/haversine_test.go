package geo

import (
	"math"
	"testing"

	"route-optimization-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	boise   = domain.Coordinate{Lat: 43.6150, Lon: -116.2023}
	seattle = domain.Coordinate{Lat: 47.6062, Lon: -122.3321}
	nyc     = domain.Coordinate{Lat: 40.7128, Lon: -74.0060}
	la      = domain.Coordinate{Lat: 34.0522, Lon: -118.2437}
)

func TestDistanceMilesKnownPairs(t *testing.T) {
	assert.InDelta(t, 404.54, DistanceMiles(boise, seattle), 0.05)
	assert.InDelta(t, 2445.71, DistanceMiles(nyc, la), 0.05)
}

func TestDistanceMilesSymmetric(t *testing.T) {
	points := []domain.Coordinate{boise, seattle, nyc, la, {Lat: -33.86, Lon: 151.21}, {Lat: 0, Lon: 180}}
	for _, a := range points {
		for _, b := range points {
			assert.Equal(t, DistanceMiles(a, b), DistanceMiles(b, a), "a=%v b=%v", a, b)
			assert.GreaterOrEqual(t, DistanceMiles(a, b), 0.0)
		}
	}
}

func TestDistanceMilesIdentity(t *testing.T) {
	assert.Equal(t, 0.0, DistanceMiles(boise, boise))
	assert.Greater(t, DistanceMiles(boise, domain.Coordinate{Lat: 43.6151, Lon: -116.2023}), 0.0)
}

func TestDistanceMilesAntipodal(t *testing.T) {
	d := DistanceMiles(domain.Coordinate{Lat: 0, Lon: 0}, domain.Coordinate{Lat: 0, Lon: 180})
	require.False(t, math.IsNaN(d))
	assert.InDelta(t, math.Pi*EarthRadiusMiles, d, 0.01)
}

func TestDistanceKm(t *testing.T) {
	assert.InDelta(t, DistanceMiles(nyc, la)*1.60934, DistanceKm(nyc, la), 1e-9)
}

func TestInitialBearing(t *testing.T) {
	north := InitialBearing(domain.Coordinate{Lat: 0, Lon: 0}, domain.Coordinate{Lat: 10, Lon: 0})
	assert.InDelta(t, 0, north, 1e-9)

	east := InitialBearing(domain.Coordinate{Lat: 0, Lon: 0}, domain.Coordinate{Lat: 0, Lon: 10})
	assert.InDelta(t, 90, east, 1e-9)

	assert.Equal(t, "northwest", CompassDirection(InitialBearing(boise, seattle)))
	assert.Equal(t, "north", CompassDirection(359))
}
