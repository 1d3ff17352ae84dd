package services

import (
	"context"
	"fmt"
	"log"
	"route-optimization-service/internal/domain"
	"route-optimization-service/internal/platform/obs"
	"route-optimization-service/internal/ports"
	"time"

	"golang.org/x/sync/errgroup"
)

// RouteOptimizer is the single-leg routing entry point.
//
// It prefers the external provider and substitutes the fallback estimate on
// any provider failure, so callers only ever see a result or an
// InvalidRequestError. A nil provider means no credential is configured and
// every route is estimated locally.
//
// The optimizer holds no mutable state and is safe for concurrent use.
type RouteOptimizer struct {
	provider ports.RouteProvider
	fallback *FallbackEstimator
	retry    RetryPolicy
}

type OptimizerOption func(*RouteOptimizer)

func WithRetryPolicy(p RetryPolicy) OptimizerOption {
	return func(o *RouteOptimizer) { o.retry = p }
}

func NewRouteOptimizer(
	provider ports.RouteProvider,
	fallback *FallbackEstimator,
	opts ...OptimizerOption,
) *RouteOptimizer {
	if fallback == nil {
		fallback = NewFallbackEstimator(DefaultSpeedModel(), DefaultFuelPricePerGallon)
	}

	o := &RouteOptimizer{
		provider: provider,
		fallback: fallback,
		retry:    DefaultRetryPolicy(),
	}
	for _, opt := range opts {
		opt(o)
	}

	return o
}

// HasProvider reports whether an external provider is configured.
func (o *RouteOptimizer) HasProvider() bool { return o.provider != nil }

func normalizeRequest(req domain.RouteRequest) domain.RouteRequest {
	req.OptimizationMode = req.OptimizationMode.OrDefault()
	if req.VehicleClass == "" {
		req.VehicleClass = domain.DefaultVehicleClass
	}
	return req
}

// CalculateRoute returns the provider route when available and the local
// estimate otherwise. The only error it returns is *domain.InvalidRequestError.
func (o *RouteOptimizer) CalculateRoute(
	ctx context.Context,
	req domain.RouteRequest,
) (_ domain.RouteResult, err error) {
	defer obs.Time(ctx, "optimizer.CalculateRoute")(&err)

	if err := req.Validate(); err != nil {
		return domain.RouteResult{}, err
	}
	req = normalizeRequest(req)

	if o.provider == nil {
		return o.fallback.Estimate(req), nil
	}

	res, perr := o.fetchWithRetry(ctx, req)
	if perr != nil {
		log.Printf(
			"req_id=%s route provider failed, using fallback estimate: origin=%s destination=%s err=%v",
			obs.RequestID(ctx), req.Origin.LatLon(), req.Destination.LatLon(), perr,
		)
		return o.fallback.Estimate(req), nil
	}

	return o.completeProviderResult(req, res), nil
}

// completeProviderResult fills the fields a provider does not report:
// arrival time, km, fuel summary and rest stops.
func (o *RouteOptimizer) completeProviderResult(req domain.RouteRequest, res domain.RouteResult) domain.RouteResult {
	if res.RouteID == "" {
		res.RouteID = o.fallback.newID()
	}
	if res.DistanceMiles < 0 {
		res.DistanceMiles = 0
	}
	if res.DurationMinutes < 0 {
		res.DurationMinutes = 0
	}
	if res.TrafficDelayMinutes < 0 {
		res.TrafficDelayMinutes = 0
	}
	if res.TollCost < 0 {
		res.TollCost = 0
	}

	departure := req.Departure(o.fallback.now)
	res.EstimatedArrival = departure.Add(time.Duration(res.DurationMinutes) * time.Minute)
	res.DistanceKm = domain.RoundTo(res.DistanceMiles*domain.KmPerMile, 2)
	res.Summary = summarize(
		req.OptimizationMode,
		res.DistanceMiles,
		res.DurationMinutes,
		o.fallback.speeds.AverageMPG(req.VehicleClass),
		o.fallback.fuelPrice,
		nil,
	)

	return res
}

// GetDistanceAndDuration is the distance/time projection of CalculateRoute.
func (o *RouteOptimizer) GetDistanceAndDuration(
	ctx context.Context,
	origin domain.Coordinate,
	destination domain.Coordinate,
	vc domain.VehicleClass,
) (domain.DistanceDuration, error) {
	res, err := o.CalculateRoute(ctx, domain.RouteRequest{
		Origin:       origin,
		Destination:  destination,
		VehicleClass: vc,
	})
	if err != nil {
		return domain.DistanceDuration{}, fmt.Errorf("get distance and duration: %w", err)
	}

	return res.DistanceDuration(), nil
}

// CalculateETA returns departure plus the route duration for the default
// vehicle class.
func (o *RouteOptimizer) CalculateETA(
	ctx context.Context,
	origin domain.Coordinate,
	destination domain.Coordinate,
	departure time.Time,
) (time.Time, error) {
	res, err := o.CalculateRoute(ctx, domain.RouteRequest{
		Origin:        origin,
		Destination:   destination,
		VehicleClass:  domain.DefaultVehicleClass,
		DepartureTime: &departure,
	})
	if err != nil {
		return time.Time{}, fmt.Errorf("calculate eta: %w", err)
	}

	return departure.Add(time.Duration(res.DurationMinutes) * time.Minute), nil
}

// AlternativeRequests lists the request variants for GetAlternativeRoutes in
// output order: the primary request, then fastest and shortest (skipping the
// primary's own mode), then a toll-avoiding variant when the primary allows
// tolls. The list is truncated to maxAlternatives+1.
func AlternativeRequests(req domain.RouteRequest, maxAlternatives int) []domain.RouteRequest {
	primary := normalizeRequest(req)

	out := []domain.RouteRequest{primary}
	for _, mode := range []domain.OptimizationMode{domain.ModeFastest, domain.ModeShortest} {
		if mode == primary.OptimizationMode {
			continue
		}
		v := primary
		v.OptimizationMode = mode
		out = append(out, v)
	}

	if !primary.AvoidTolls {
		v := primary
		v.AvoidTolls = true
		out = append(out, v)
	}

	if maxAlternatives < 0 {
		maxAlternatives = 0
	}
	// Compared without adding one so math.MaxInt cannot overflow.
	if maxAlternatives < len(out)-1 {
		out = out[:maxAlternatives+1]
	}

	return out
}

// GetAlternativeRoutes computes the variants from AlternativeRequests in
// parallel. The primary route is always first.
func (o *RouteOptimizer) GetAlternativeRoutes(
	ctx context.Context,
	req domain.RouteRequest,
	maxAlternatives int,
) ([]domain.RouteResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	variants := AlternativeRequests(req, maxAlternatives)
	results := make([]domain.RouteResult, len(variants))

	g, gctx := errgroup.WithContext(ctx)
	for i, v := range variants {
		i, v := i, v
		g.Go(func() error {
			r, err := o.CalculateRoute(gctx, v)
			if err != nil {
				return fmt.Errorf("get alternative routes: variant %d: %w", i, err)
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// CalculateFuelCost applies the fuel model to a distance. A non-positive
// price uses the configured default.
func (o *RouteOptimizer) CalculateFuelCost(
	distanceMiles float64,
	vc domain.VehicleClass,
	fuelPricePerGallon float64,
) (domain.FuelCostEstimate, error) {
	if fuelPricePerGallon <= 0 {
		fuelPricePerGallon = o.fallback.fuelPrice
	}
	return EstimateFuelCost(o.fallback.speeds, distanceMiles, vc, fuelPricePerGallon)
}
