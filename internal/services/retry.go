package services

import (
	"context"
	"errors"
	"route-optimization-service/internal/domain"
	"time"
)

// RetryPolicy controls how often the optimizer repeats a failed provider call
// before falling back. MaxAttempts <= 1 disables retries.
type RetryPolicy struct {
	MaxAttempts    int
	InitialBackoff time.Duration
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxAttempts: 1, InitialBackoff: 200 * time.Millisecond}
}

// fetchWithRetry retries temporary provider failures (throttling, 5xx,
// network errors) using exponential backoff while respecting context
// cancellation.
func (o *RouteOptimizer) fetchWithRetry(ctx context.Context, req domain.RouteRequest) (domain.RouteResult, error) {
	maxAttempts := o.retry.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	backoff := o.retry.InitialBackoff

	var lastErr error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return domain.RouteResult{}, &domain.ProviderError{Op: "fetch route", Err: err}
		}

		res, err := o.provider.FetchRoute(ctx, req)
		if err == nil {
			return res, nil
		}
		lastErr = err

		var pe *domain.ProviderError
		if !errors.As(err, &pe) || !pe.Temporary() || attempt == maxAttempts {
			return domain.RouteResult{}, lastErr
		}

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return domain.RouteResult{}, &domain.ProviderError{Op: "fetch route", Err: ctx.Err()}
		case <-timer.C:
		}

		backoff *= 2
	}

	return domain.RouteResult{}, lastErr
}
