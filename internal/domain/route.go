package domain

import "time"

// KmPerMile converts miles to kilometers for display fields.
const KmPerMile = 1.60934

// RouteRequest describes a single origin->destination computation.
type RouteRequest struct {
	Origin           Coordinate
	Destination      Coordinate
	VehicleClass     VehicleClass
	DepartureTime    *time.Time
	AvoidTolls       bool
	AvoidHighways    bool
	OptimizationMode OptimizationMode
}

// Validate checks both endpoints against the legal lat/lon ranges.
func (r RouteRequest) Validate() error {
	if err := ValidateCoordinate("origin", r.Origin); err != nil {
		return err
	}
	return ValidateCoordinate("destination", r.Destination)
}

// Departure returns the requested departure time, or now when none was given.
func (r RouteRequest) Departure(now func() time.Time) time.Time {
	if r.DepartureTime != nil {
		return *r.DepartureTime
	}
	return now()
}

// RouteSummary holds the derived cost and advisory data of a route.
type RouteSummary struct {
	OptimizationMode       OptimizationMode
	FuelConsumptionGallons float64
	EstimatedFuelCost      float64
	RestStopsRequired      int
	Warnings               []string
}

// RouteResult is an immutable snapshot of one route computation.
// RouteID only correlates a single response and is never persisted.
type RouteResult struct {
	RouteID             string
	DistanceMiles       float64
	DistanceKm          float64
	DurationMinutes     int
	TrafficDelayMinutes int
	EstimatedArrival    time.Time
	TollCost            float64
	Summary             RouteSummary
	Instructions        []string
}

// DistanceDuration is the distance/time projection of a RouteResult.
type DistanceDuration struct {
	DistanceMiles       float64
	DistanceKm          float64
	DurationMinutes     int
	TrafficDelayMinutes int
}

func (r RouteResult) DistanceDuration() DistanceDuration {
	return DistanceDuration{
		DistanceMiles:       r.DistanceMiles,
		DistanceKm:          r.DistanceKm,
		DurationMinutes:     r.DurationMinutes,
		TrafficDelayMinutes: r.TrafficDelayMinutes,
	}
}
