package dto

import (
	"fmt"
	"route-optimization-service/internal/domain"
	"time"
)

type WaypointRequest struct {
	LocationID         string             `json:"location_id"`
	DisplayName        string             `json:"display_name"`
	Coordinate         *domain.Coordinate `json:"coordinate"`
	ServiceTimeMinutes int                `json:"service_time_minutes"`
	RequiredArrival    *time.Time         `json:"required_arrival"`
}

type PlanRequest struct {
	Waypoints        []WaypointRequest `json:"waypoints"`
	VehicleClass     string            `json:"vehicle_class"`
	DepartureTime    *time.Time        `json:"departure_time"`
	OptimizeOrder    bool              `json:"optimize_order"`
	OptimizationMode string            `json:"optimization_mode"`
	AvoidTolls       bool              `json:"avoid_tolls"`
	AvoidHighways    bool              `json:"avoid_highways"`
}

func (r PlanRequest) ToDomain() (domain.MultiStopRequest, error) {
	mode, err := domain.ParseOptimizationMode(r.OptimizationMode)
	if err != nil {
		return domain.MultiStopRequest{}, err
	}

	waypoints := make([]domain.Waypoint, 0, len(r.Waypoints))
	for i, w := range r.Waypoints {
		if w.Coordinate == nil {
			return domain.MultiStopRequest{}, &domain.InvalidRequestError{
				Field:  fmt.Sprintf("waypoints[%d].coordinate", i),
				Reason: "is required",
			}
		}
		waypoints = append(waypoints, domain.Waypoint{
			LocationID:         w.LocationID,
			Coordinate:         *w.Coordinate,
			DisplayName:        w.DisplayName,
			ServiceTimeMinutes: w.ServiceTimeMinutes,
			RequiredArrival:    w.RequiredArrival,
		})
	}

	return domain.MultiStopRequest{
		Waypoints:        waypoints,
		VehicleClass:     domain.ParseVehicleClass(r.VehicleClass),
		DepartureTime:    r.DepartureTime,
		OptimizeOrder:    r.OptimizeOrder,
		OptimizationMode: mode,
		AvoidTolls:       r.AvoidTolls,
		AvoidHighways:    r.AvoidHighways,
	}, nil
}

type WaypointResponse struct {
	LocationID         string            `json:"location_id,omitempty"`
	DisplayName        string            `json:"display_name,omitempty"`
	Coordinate         domain.Coordinate `json:"coordinate"`
	ServiceTimeMinutes int               `json:"service_time_minutes"`
	RequiredArrival    *time.Time        `json:"required_arrival,omitempty"`
}

type PlanResponse struct {
	Waypoints               []WaypointResponse `json:"waypoints"`
	Legs                    []RouteResponse    `json:"legs"`
	TotalDistanceMiles      float64            `json:"total_distance_miles"`
	TotalDurationMinutes    int                `json:"total_duration_minutes"`
	TotalFuelCost           float64            `json:"total_fuel_cost"`
	EstimatedCompletionTime time.Time          `json:"estimated_completion_time"`
	Warnings                []string           `json:"warnings"`
}

func FromPlan(p domain.MultiStopResult) PlanResponse {
	waypoints := make([]WaypointResponse, 0, len(p.Waypoints))
	for _, w := range p.Waypoints {
		waypoints = append(waypoints, WaypointResponse{
			LocationID:         w.LocationID,
			DisplayName:        w.DisplayName,
			Coordinate:         w.Coordinate,
			ServiceTimeMinutes: w.ServiceTimeMinutes,
			RequiredArrival:    w.RequiredArrival,
		})
	}

	warnings := p.Warnings
	if warnings == nil {
		warnings = []string{}
	}

	return PlanResponse{
		Waypoints:               waypoints,
		Legs:                    FromRoutes(p.Legs),
		TotalDistanceMiles:      domain.RoundTo(p.TotalDistanceMiles, 2),
		TotalDurationMinutes:    p.TotalDurationMinutes,
		TotalFuelCost:           p.TotalFuelCost,
		EstimatedCompletionTime: p.EstimatedCompletionTime,
		Warnings:                warnings,
	}
}
