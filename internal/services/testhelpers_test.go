package services

import (
	"route-optimization-service/internal/domain"
	"time"
)

var (
	boise    = domain.Coordinate{Lat: 43.6150, Lon: -116.2023}
	seattle  = domain.Coordinate{Lat: 47.6062, Lon: -122.3321}
	portland = domain.Coordinate{Lat: 45.5152, Lon: -122.6784}
	spokane  = domain.Coordinate{Lat: 47.6588, Lon: -117.4260}

	fixedNow = time.Date(2026, 3, 2, 6, 0, 0, 0, time.UTC)
)

func fixedClock() time.Time { return fixedNow }

func fixedID() string { return "route-fixed" }

func newTestEstimator() *FallbackEstimator {
	return NewFallbackEstimator(DefaultSpeedModel(), DefaultFuelPricePerGallon, WithClock(fixedClock), WithIDGenerator(fixedID))
}
