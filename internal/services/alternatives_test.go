package services

import (
	"context"
	"math"
	"route-optimization-service/internal/adapters/routing"
	"route-optimization-service/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type variant struct {
	mode       domain.OptimizationMode
	avoidTolls bool
}

func variantsOf(reqs []domain.RouteRequest) []variant {
	out := make([]variant, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, variant{r.OptimizationMode, r.AvoidTolls})
	}
	return out
}

func TestAlternativeRequests(t *testing.T) {
	tests := []struct {
		name       string
		mode       domain.OptimizationMode
		avoidTolls bool
		max        int
		want       []variant
	}{
		{
			name: "shortest primary drops duplicate mode",
			mode: domain.ModeShortest,
			max:  3,
			want: []variant{
				{domain.ModeShortest, false},
				{domain.ModeFastest, false},
				{domain.ModeShortest, true},
			},
		},
		{
			name: "fuel efficient primary",
			mode: domain.ModeFuelEfficient,
			max:  3,
			want: []variant{
				{domain.ModeFuelEfficient, false},
				{domain.ModeFastest, false},
				{domain.ModeShortest, false},
				{domain.ModeFuelEfficient, true},
			},
		},
		{
			name: "default mode is fastest",
			max:  5,
			want: []variant{
				{domain.ModeFastest, false},
				{domain.ModeShortest, false},
				{domain.ModeFastest, true},
			},
		},
		{
			name:       "already avoiding tolls",
			mode:       domain.ModeFastest,
			avoidTolls: true,
			max:        3,
			want: []variant{
				{domain.ModeFastest, true},
				{domain.ModeShortest, true},
			},
		},
		{
			name: "truncated",
			mode: domain.ModeFuelEfficient,
			max:  1,
			want: []variant{
				{domain.ModeFuelEfficient, false},
				{domain.ModeFastest, false},
			},
		},
		{
			name: "zero keeps primary",
			mode: domain.ModeShortest,
			max:  0,
			want: []variant{{domain.ModeShortest, false}},
		},
		{
			name: "max int keeps every variant",
			mode: domain.ModeShortest,
			max:  math.MaxInt,
			want: []variant{
				{domain.ModeShortest, false},
				{domain.ModeFastest, false},
				{domain.ModeShortest, true},
			},
		},
		{
			name: "negative treated as zero",
			mode: domain.ModeShortest,
			max:  -4,
			want: []variant{{domain.ModeShortest, false}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := domain.RouteRequest{
				Origin:           boise,
				Destination:      seattle,
				OptimizationMode: tt.mode,
				AvoidTolls:       tt.avoidTolls,
			}
			assert.Equal(t, tt.want, variantsOf(AlternativeRequests(req, tt.max)))
		})
	}
}

func TestGetAlternativeRoutesPrimaryFirst(t *testing.T) {
	o := NewRouteOptimizer(nil, newTestEstimator())

	routes, err := o.GetAlternativeRoutes(context.Background(), domain.RouteRequest{
		Origin:           boise,
		Destination:      seattle,
		OptimizationMode: domain.ModeShortest,
	}, 3)

	require.NoError(t, err)
	require.Len(t, routes, 3)
	assert.Equal(t, domain.ModeShortest, routes[0].Summary.OptimizationMode)
	assert.Equal(t, domain.ModeFastest, routes[1].Summary.OptimizationMode)
	assert.Equal(t, domain.ModeShortest, routes[2].Summary.OptimizationMode)
	for _, r := range routes {
		assert.Equal(t, 485, r.DurationMinutes)
	}
}

func TestGetAlternativeRoutesMaxIntReturnsAllVariants(t *testing.T) {
	o := NewRouteOptimizer(nil, newTestEstimator())

	var routes []domain.RouteResult
	var err error
	require.NotPanics(t, func() {
		routes, err = o.GetAlternativeRoutes(context.Background(), domain.RouteRequest{
			Origin:           boise,
			Destination:      seattle,
			OptimizationMode: domain.ModeShortest,
		}, math.MaxInt)
	})

	require.NoError(t, err)
	assert.Len(t, routes, 3)
}

func TestGetAlternativeRoutesForwardsVariantsToProvider(t *testing.T) {
	provider := routing.NewMockRouteProvider([]routing.MockLeg{boiseSeattleLeg()})
	o := NewRouteOptimizer(provider, newTestEstimator())

	routes, err := o.GetAlternativeRoutes(context.Background(), domain.RouteRequest{
		Origin:      boise,
		Destination: seattle,
	}, 3)

	require.NoError(t, err)
	require.Len(t, routes, 3)

	calls := provider.Calls()
	require.Len(t, calls, 3)
	assert.ElementsMatch(t, []variant{
		{domain.ModeFastest, false},
		{domain.ModeShortest, false},
		{domain.ModeFastest, true},
	}, variantsOf(calls))
}

func TestGetAlternativeRoutesInvalidRequest(t *testing.T) {
	o := NewRouteOptimizer(nil, newTestEstimator())

	routes, err := o.GetAlternativeRoutes(context.Background(), domain.RouteRequest{
		Origin:      boise,
		Destination: domain.Coordinate{Lat: -95},
	}, 2)

	assert.Nil(t, routes)
	assert.True(t, domain.IsInvalidRequest(err))
}
