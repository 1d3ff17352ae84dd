package domain

import (
	"fmt"
	"time"
)

// Waypoint is one stop of a multi-stop itinerary.
// ServiceTimeMinutes is dwell time at the stop; it extends the itinerary
// but is never part of a leg's driving duration.
type Waypoint struct {
	LocationID         string
	Coordinate         Coordinate
	DisplayName        string
	ServiceTimeMinutes int
	RequiredArrival    *time.Time
}

// Label returns the most readable identifier available for the stop.
func (w Waypoint) Label() string {
	if w.DisplayName != "" {
		return w.DisplayName
	}
	if w.LocationID != "" {
		return w.LocationID
	}
	return w.Coordinate.LatLon()
}

// MaxServiceTimeMinutes caps dwell at one stop to seven days.
const MaxServiceTimeMinutes = 7 * 24 * 60

type MultiStopRequest struct {
	Waypoints        []Waypoint
	VehicleClass     VehicleClass
	DepartureTime    *time.Time
	OptimizeOrder    bool
	OptimizationMode OptimizationMode
	AvoidTolls       bool
	AvoidHighways    bool
}

// Validate requires at least two waypoints with legal coordinates and
// service times between zero and MaxServiceTimeMinutes.
func (r MultiStopRequest) Validate() error {
	if len(r.Waypoints) < 2 {
		return &InvalidRequestError{
			Field:  "waypoints",
			Reason: fmt.Sprintf("at least 2 waypoints are required, got %d", len(r.Waypoints)),
		}
	}

	for i, w := range r.Waypoints {
		if err := ValidateCoordinate(fmt.Sprintf("waypoints[%d]", i), w.Coordinate); err != nil {
			return err
		}
		if w.ServiceTimeMinutes < 0 || w.ServiceTimeMinutes > MaxServiceTimeMinutes {
			return &InvalidRequestError{
				Field:  fmt.Sprintf("waypoints[%d].service_time_minutes", i),
				Reason: fmt.Sprintf("must be between 0 and %d", MaxServiceTimeMinutes),
			}
		}
	}

	return nil
}

// MultiStopResult is the aggregated outcome of a multi-stop plan.
type MultiStopResult struct {
	Waypoints               []Waypoint
	Legs                    []RouteResult
	TotalDistanceMiles      float64
	TotalDurationMinutes    int
	TotalFuelCost           float64
	EstimatedCompletionTime time.Time
	Warnings                []string
}
