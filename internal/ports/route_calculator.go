package ports

import (
	"context"
	"route-optimization-service/internal/domain"
)

// Single-leg route computation consumed by the multi-stop planner.
type RouteCalculator interface {
	// Return a route for a valid request. Only *domain.InvalidRequestError
	// may be returned; provider failures must already be absorbed.
	CalculateRoute(ctx context.Context, req domain.RouteRequest) (domain.RouteResult, error)
}
