package ports

import (
	"context"
	"route-optimization-service/internal/domain"
)

// Contract for an external routing service.
type RouteProvider interface {
	// Fetch a single route. Failures are reported as *domain.ProviderError.
	// Implementations must not retry; retry policy belongs to the caller.
	FetchRoute(ctx context.Context, req domain.RouteRequest) (domain.RouteResult, error)
}
