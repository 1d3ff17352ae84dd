package dto

import (
	"route-optimization-service/internal/domain"
	"time"
)

type RouteRequest struct {
	Origin           *domain.Coordinate `json:"origin"`
	Destination      *domain.Coordinate `json:"destination"`
	VehicleClass     string             `json:"vehicle_class"`
	DepartureTime    *time.Time         `json:"departure_time"`
	AvoidTolls       bool               `json:"avoid_tolls"`
	AvoidHighways    bool               `json:"avoid_highways"`
	OptimizationMode string             `json:"optimization_mode"`
}

// ToDomain checks required fields and parses enums. Coordinate ranges are
// validated by the services.
func (r RouteRequest) ToDomain() (domain.RouteRequest, error) {
	origin, dest, err := endpoints(r.Origin, r.Destination)
	if err != nil {
		return domain.RouteRequest{}, err
	}

	mode, err := domain.ParseOptimizationMode(r.OptimizationMode)
	if err != nil {
		return domain.RouteRequest{}, err
	}

	return domain.RouteRequest{
		Origin:           origin,
		Destination:      dest,
		VehicleClass:     domain.ParseVehicleClass(r.VehicleClass),
		DepartureTime:    r.DepartureTime,
		AvoidTolls:       r.AvoidTolls,
		AvoidHighways:    r.AvoidHighways,
		OptimizationMode: mode,
	}, nil
}

func endpoints(origin, dest *domain.Coordinate) (domain.Coordinate, domain.Coordinate, error) {
	if origin == nil {
		return domain.Coordinate{}, domain.Coordinate{}, &domain.InvalidRequestError{Field: "origin", Reason: "is required"}
	}
	if dest == nil {
		return domain.Coordinate{}, domain.Coordinate{}, &domain.InvalidRequestError{Field: "destination", Reason: "is required"}
	}
	return *origin, *dest, nil
}

type RouteSummaryResponse struct {
	OptimizationMode       domain.OptimizationMode `json:"optimization_mode"`
	FuelConsumptionGallons float64                 `json:"fuel_consumption_gallons"`
	EstimatedFuelCost      float64                 `json:"estimated_fuel_cost"`
	RestStopsRequired      int                     `json:"rest_stops_required"`
	Warnings               []string                `json:"warnings"`
}

type RouteResponse struct {
	RouteID             string               `json:"route_id"`
	DistanceMiles       float64              `json:"distance_miles"`
	DistanceKm          float64              `json:"distance_km"`
	DurationMinutes     int                  `json:"duration_minutes"`
	TrafficDelayMinutes int                  `json:"traffic_delay_minutes"`
	EstimatedArrival    time.Time            `json:"estimated_arrival"`
	TollCost            float64              `json:"toll_cost"`
	Summary             RouteSummaryResponse `json:"summary"`
	Instructions        []string             `json:"instructions,omitempty"`
}

func FromRoute(r domain.RouteResult) RouteResponse {
	warnings := r.Summary.Warnings
	if warnings == nil {
		warnings = []string{}
	}

	return RouteResponse{
		RouteID:             r.RouteID,
		DistanceMiles:       r.DistanceMiles,
		DistanceKm:          r.DistanceKm,
		DurationMinutes:     r.DurationMinutes,
		TrafficDelayMinutes: r.TrafficDelayMinutes,
		EstimatedArrival:    r.EstimatedArrival,
		TollCost:            r.TollCost,
		Summary: RouteSummaryResponse{
			OptimizationMode:       r.Summary.OptimizationMode,
			FuelConsumptionGallons: r.Summary.FuelConsumptionGallons,
			EstimatedFuelCost:      r.Summary.EstimatedFuelCost,
			RestStopsRequired:      r.Summary.RestStopsRequired,
			Warnings:               warnings,
		},
		Instructions: r.Instructions,
	}
}

func FromRoutes(rs []domain.RouteResult) []RouteResponse {
	out := make([]RouteResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, FromRoute(r))
	}
	return out
}

type DistanceRequest struct {
	Origin       *domain.Coordinate `json:"origin"`
	Destination  *domain.Coordinate `json:"destination"`
	VehicleClass string             `json:"vehicle_class"`
}

type DistanceResponse struct {
	DistanceMiles       float64 `json:"distance_miles"`
	DistanceKm          float64 `json:"distance_km"`
	DurationMinutes     int     `json:"duration_minutes"`
	TrafficDelayMinutes int     `json:"traffic_delay_minutes"`
}

func (r DistanceRequest) Endpoints() (domain.Coordinate, domain.Coordinate, error) {
	return endpoints(r.Origin, r.Destination)
}

func FromDistanceDuration(dd domain.DistanceDuration) DistanceResponse {
	return DistanceResponse{
		DistanceMiles:       dd.DistanceMiles,
		DistanceKm:          dd.DistanceKm,
		DurationMinutes:     dd.DurationMinutes,
		TrafficDelayMinutes: dd.TrafficDelayMinutes,
	}
}

type ETARequest struct {
	Origin        *domain.Coordinate `json:"origin"`
	Destination   *domain.Coordinate `json:"destination"`
	DepartureTime *time.Time         `json:"departure_time"`
}

func (r ETARequest) Endpoints() (domain.Coordinate, domain.Coordinate, error) {
	return endpoints(r.Origin, r.Destination)
}

type ETAResponse struct {
	EstimatedArrival time.Time `json:"estimated_arrival"`
}

// DefaultMaxAlternatives applies when max_alternatives is omitted.
const DefaultMaxAlternatives = 3

type AlternativesRequest struct {
	RouteRequest
	MaxAlternatives *int `json:"max_alternatives"`
}

func (r AlternativesRequest) Max() int {
	if r.MaxAlternatives == nil {
		return DefaultMaxAlternatives
	}
	return *r.MaxAlternatives
}

type AlternativesResponse struct {
	Routes []RouteResponse `json:"routes"`
}
