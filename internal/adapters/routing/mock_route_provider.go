package routing

import (
	"context"
	"errors"
	"fmt"
	"route-optimization-service/internal/domain"
	"sync"
)

type MockLeg struct {
	From, To            domain.Coordinate
	Miles               float64
	Minutes             int
	TrafficDelayMinutes int
	TollCost            float64
}

// MockRouteProvider serves canned legs keyed by origin/destination and
// records every request. Unknown pairs fail with a ProviderError.
type MockRouteProvider struct {
	mu       sync.Mutex
	legs     map[string]MockLeg
	err      error
	failures []error
	calls    []domain.RouteRequest
}

func NewMockRouteProvider(legs []MockLeg) *MockRouteProvider {
	m := make(map[string]MockLeg, len(legs))
	for _, l := range legs {
		m[mockKey(l.From, l.To)] = l
	}
	return &MockRouteProvider{legs: m}
}

// NewFailingRouteProvider fails every call with err.
func NewFailingRouteProvider(err error) *MockRouteProvider {
	return &MockRouteProvider{legs: map[string]MockLeg{}, err: err}
}

// WithFailures makes the next len(errs) calls fail in order before canned
// legs are served.
func (p *MockRouteProvider) WithFailures(errs ...error) *MockRouteProvider {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.failures = append(p.failures, errs...)
	return p
}

func mockKey(from, to domain.Coordinate) string {
	return from.LatLon() + "|" + to.LatLon()
}

func (p *MockRouteProvider) FetchRoute(ctx context.Context, req domain.RouteRequest) (domain.RouteResult, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.calls = append(p.calls, req)

	err := p.err
	if err == nil && len(p.failures) > 0 {
		err = p.failures[0]
		p.failures = p.failures[1:]
	}
	if err != nil {
		var pe *domain.ProviderError
		if !errors.As(err, &pe) {
			err = &domain.ProviderError{Op: "mock fetch", Err: err}
		}
		return domain.RouteResult{}, err
	}

	l, ok := p.legs[mockKey(req.Origin, req.Destination)]
	if !ok {
		return domain.RouteResult{}, &domain.ProviderError{
			Op:  "mock fetch",
			Err: fmt.Errorf("missing pair %q -> %q", req.Origin.LatLon(), req.Destination.LatLon()),
		}
	}

	return domain.RouteResult{
		RouteID:             "mock-" + mockKey(req.Origin, req.Destination),
		DistanceMiles:       l.Miles,
		DurationMinutes:     l.Minutes,
		TrafficDelayMinutes: l.TrafficDelayMinutes,
		TollCost:            l.TollCost,
	}, nil
}

// Calls returns a copy of the requests received so far.
func (p *MockRouteProvider) Calls() []domain.RouteRequest {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]domain.RouteRequest(nil), p.calls...)
}
