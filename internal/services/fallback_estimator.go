package services

import (
	"fmt"
	"math"
	"route-optimization-service/internal/domain"
	"route-optimization-service/internal/geo"
	"time"

	"github.com/google/uuid"
)

// FallbackWarning is attached to every locally estimated route.
const FallbackWarning = "Route estimated from straight-line distance and average vehicle speed; actual road distance and travel time may differ."

// FallbackEstimator synthesizes a route from great-circle distance and the
// speed model, without any external service.
//
// Estimate is total: any structurally valid request produces a result.
// Given the same clock, ID generator, speed model and fuel price the
// output is identical across calls.
type FallbackEstimator struct {
	speeds    SpeedModel
	fuelPrice float64
	now       func() time.Time
	newID     func() string
}

type EstimatorOption func(*FallbackEstimator)

// WithClock replaces time.Now as the source of the default departure time.
func WithClock(now func() time.Time) EstimatorOption {
	return func(e *FallbackEstimator) {
		if now != nil {
			e.now = now
		}
	}
}

// WithIDGenerator replaces the random route ID source.
func WithIDGenerator(newID func() string) EstimatorOption {
	return func(e *FallbackEstimator) {
		if newID != nil {
			e.newID = newID
		}
	}
}

func NewFallbackEstimator(speeds SpeedModel, fuelPricePerGallon float64, opts ...EstimatorOption) *FallbackEstimator {
	if fuelPricePerGallon <= 0 {
		fuelPricePerGallon = DefaultFuelPricePerGallon
	}

	e := &FallbackEstimator{
		speeds:    speeds,
		fuelPrice: fuelPricePerGallon,
		now:       time.Now,
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

func (e *FallbackEstimator) Estimate(req domain.RouteRequest) domain.RouteResult {
	distance := geo.DistanceMiles(req.Origin, req.Destination)
	speed := e.speeds.AverageSpeedMph(req.VehicleClass)
	mpg := e.speeds.AverageMPG(req.VehicleClass)

	durationMinutes := int(math.Round(distance / speed * 60))
	departure := req.Departure(e.now)

	var instructions []string
	if distance > 0 {
		heading := geo.CompassDirection(geo.InitialBearing(req.Origin, req.Destination))
		instructions = []string{fmt.Sprintf("Head %s toward destination (%.1f mi)", heading, distance)}
	}

	return domain.RouteResult{
		RouteID:             e.newID(),
		DistanceMiles:       domain.RoundTo(distance, 2),
		DistanceKm:          domain.RoundTo(geo.DistanceKm(req.Origin, req.Destination), 2),
		DurationMinutes:     durationMinutes,
		TrafficDelayMinutes: 0,
		EstimatedArrival:    departure.Add(time.Duration(durationMinutes) * time.Minute),
		TollCost:            0,
		Summary: summarize(
			req.OptimizationMode.OrDefault(),
			distance,
			durationMinutes,
			mpg,
			e.fuelPrice,
			[]string{FallbackWarning},
		),
		Instructions: instructions,
	}
}
