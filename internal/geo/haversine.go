// Package geo holds the great-circle math shared by the estimator and planner.
package geo

import (
	"math"
	"route-optimization-service/internal/domain"
)

// EarthRadiusMiles is the mean Earth radius used by every distance in the service.
const EarthRadiusMiles = 3959.0

func toRadians(deg float64) float64 { return deg * math.Pi / 180 }

// DistanceMiles returns the haversine distance between a and b in miles.
// It is symmetric and returns exactly 0 for identical coordinates.
func DistanceMiles(a, b domain.Coordinate) float64 {
	if a == b {
		return 0
	}

	lat1 := toRadians(a.Lat)
	lat2 := toRadians(b.Lat)
	dLat := lat2 - lat1
	dLon := toRadians(b.Lon - a.Lon)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	// Clamp guards against h drifting past 1 for antipodal points.
	h = math.Min(1, math.Max(0, h))

	return 2 * EarthRadiusMiles * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

func DistanceKm(a, b domain.Coordinate) float64 {
	return DistanceMiles(a, b) * domain.KmPerMile
}

// InitialBearing returns the forward azimuth from a to b in degrees [0,360).
func InitialBearing(a, b domain.Coordinate) float64 {
	lat1 := toRadians(a.Lat)
	lat2 := toRadians(b.Lat)
	dLon := toRadians(b.Lon - a.Lon)

	y := math.Sin(dLon) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLon)

	deg := math.Atan2(y, x) * 180 / math.Pi
	return math.Mod(deg+360, 360)
}

var compassPoints = []string{"north", "northeast", "east", "southeast", "south", "southwest", "west", "northwest"}

// CompassDirection names the 8-point compass sector for a bearing.
func CompassDirection(bearing float64) string {
	idx := int(math.Round(math.Mod(bearing, 360)/45)) % len(compassPoints)
	return compassPoints[idx]
}
