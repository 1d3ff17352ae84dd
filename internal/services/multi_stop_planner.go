package services

import (
	"context"
	"fmt"
	"route-optimization-service/internal/domain"
	"route-optimization-service/internal/platform/obs"
	"route-optimization-service/internal/ports"
	"time"
)

// MultiStopPlanner sequences waypoints and routes each consecutive pair.
//
// Legs are computed one after another because every leg departs when the
// previous one (plus service time) ends.
type MultiStopPlanner struct {
	router ports.RouteCalculator
	now    func() time.Time
}

// NewMultiStopPlanner builds a planner over router. A nil now uses time.Now.
func NewMultiStopPlanner(router ports.RouteCalculator, now func() time.Time) *MultiStopPlanner {
	if now == nil {
		now = time.Now
	}
	return &MultiStopPlanner{router: router, now: now}
}

// PlanRoute resolves the visiting order and aggregates per-leg routes.
// Only requests with fewer than two waypoints or invalid coordinates are
// rejected; individual legs cannot fail because the router degrades to
// local estimates.
func (p *MultiStopPlanner) PlanRoute(
	ctx context.Context,
	req domain.MultiStopRequest,
) (_ domain.MultiStopResult, err error) {
	defer obs.Time(ctx, "planner.PlanRoute")(&err)

	if err := req.Validate(); err != nil {
		return domain.MultiStopResult{}, err
	}

	ordered := append([]domain.Waypoint(nil), req.Waypoints...)
	if req.OptimizeOrder {
		ordered = OrderByNearestNeighbor(req.Waypoints)
	}

	departAt := p.now()
	if req.DepartureTime != nil {
		departAt = *req.DepartureTime
	}

	legs := make([]domain.RouteResult, 0, len(ordered)-1)
	warnings := []string{}
	totalDistance := 0.0
	totalDuration := 0
	totalFuelCost := 0.0

	for i := 0; i < len(ordered)-1; i++ {
		from := ordered[i]
		to := ordered[i+1]

		// Dwell at interior stops delays the next departure.
		if i > 0 {
			totalDuration += from.ServiceTimeMinutes
		}
		legDepart := departAt.Add(time.Duration(totalDuration) * time.Minute)

		leg, err := p.router.CalculateRoute(ctx, domain.RouteRequest{
			Origin:           from.Coordinate,
			Destination:      to.Coordinate,
			VehicleClass:     req.VehicleClass,
			DepartureTime:    &legDepart,
			AvoidTolls:       req.AvoidTolls,
			AvoidHighways:    req.AvoidHighways,
			OptimizationMode: req.OptimizationMode,
		})
		if err != nil {
			return domain.MultiStopResult{}, fmt.Errorf(
				"plan route: leg %d %q -> %q: %w",
				i+1, from.Label(), to.Label(), err,
			)
		}

		totalDistance += leg.DistanceMiles
		totalDuration += leg.DurationMinutes
		totalFuelCost += leg.Summary.EstimatedFuelCost

		arriveAt := departAt.Add(time.Duration(totalDuration) * time.Minute)
		if to.RequiredArrival != nil && arriveAt.After(*to.RequiredArrival) {
			warnings = append(warnings, fmt.Sprintf(
				"arrival at %s (%s) is later than required (%s)",
				to.Label(),
				arriveAt.Format(time.RFC3339),
				to.RequiredArrival.Format(time.RFC3339),
			))
		}

		legs = append(legs, leg)
	}

	return domain.MultiStopResult{
		Waypoints:               ordered,
		Legs:                    legs,
		TotalDistanceMiles:      totalDistance,
		TotalDurationMinutes:    totalDuration,
		TotalFuelCost:           domain.RoundTo(totalFuelCost, 2),
		EstimatedCompletionTime: departAt.Add(time.Duration(totalDuration) * time.Minute),
		Warnings:                warnings,
	}, nil
}
