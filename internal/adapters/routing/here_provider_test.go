package routing

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"route-optimization-service/internal/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	boise   = domain.Coordinate{Lat: 43.6150, Lon: -116.2023}
	seattle = domain.Coordinate{Lat: 47.6062, Lon: -122.3321}
)

const routeBody = `{
  "routes": [{
    "id": "route-abc",
    "sections": [{
      "id": "sec-1",
      "summary": {"duration": 28800, "length": 804672, "baseDuration": 27000},
      "actions": [
        {"action": "depart", "instruction": "Head north on Main St."},
        {"action": "arrive", "instruction": "Arrive at destination."},
        {"action": "continue"}
      ]
    }]
  }]
}`

func newTestProvider(t *testing.T, handler http.HandlerFunc, opts ...Option) *HereRouteProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	opts = append([]Option{WithBaseURL(server.URL), WithHTTPClient(server.Client())}, opts...)
	p, err := NewHereRouteProvider("test-key", opts...)
	require.NoError(t, err)
	return p
}

func TestNewHereRouteProviderRequiresKey(t *testing.T) {
	_, err := NewHereRouteProvider("")
	assert.Error(t, err)
}

func TestFetchRouteMapsFirstSection(t *testing.T) {
	var gotQuery map[string]string
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v8/routes", r.URL.Path)
		q := r.URL.Query()
		gotQuery = map[string]string{
			"origin":          q.Get("origin"),
			"destination":     q.Get("destination"),
			"transportMode":   q.Get("transportMode"),
			"routingMode":     q.Get("routingMode"),
			"avoid[features]": q.Get("avoid[features]"),
			"departureTime":   q.Get("departureTime"),
			"apiKey":          q.Get("apiKey"),
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(routeBody))
	})

	depart := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	res, err := p.FetchRoute(context.Background(), domain.RouteRequest{
		Origin:           boise,
		Destination:      seattle,
		VehicleClass:     domain.VehicleTruck,
		DepartureTime:    &depart,
		AvoidTolls:       true,
		AvoidHighways:    true,
		OptimizationMode: domain.ModeShortest,
	})
	require.NoError(t, err)

	assert.Equal(t, "43.615000,-116.202300", gotQuery["origin"])
	assert.Equal(t, "47.606200,-122.332100", gotQuery["destination"])
	assert.Equal(t, "truck", gotQuery["transportMode"])
	assert.Equal(t, "short", gotQuery["routingMode"])
	assert.Equal(t, "tollRoad,controlledAccessHighway", gotQuery["avoid[features]"])
	assert.Equal(t, "2026-01-01T08:00:00Z", gotQuery["departureTime"])
	assert.Equal(t, "test-key", gotQuery["apiKey"])

	assert.Equal(t, "route-abc", res.RouteID)
	assert.InDelta(t, 500.0, res.DistanceMiles, 0.001)
	assert.Equal(t, 480, res.DurationMinutes)
	assert.Equal(t, 30, res.TrafficDelayMinutes)
	assert.Equal(t, []string{"Head north on Main St.", "Arrive at destination."}, res.Instructions)
}

func TestFetchRouteCarModeWithoutFlags(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "car", q.Get("transportMode"))
		assert.Equal(t, "fast", q.Get("routingMode"))
		assert.False(t, q.Has("avoid[features]"))
		assert.False(t, q.Has("departureTime"))
		_, _ = w.Write([]byte(`{"routes":[{"sections":[{"summary":{"duration":600,"length":16093.44}}]}]}`))
	})

	res, err := p.FetchRoute(context.Background(), domain.RouteRequest{
		Origin:       boise,
		Destination:  seattle,
		VehicleClass: domain.VehicleVan,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.RouteID, "missing provider id is replaced")
	assert.InDelta(t, 10.0, res.DistanceMiles, 0.001)
	assert.Equal(t, 10, res.DurationMinutes)
	assert.Equal(t, 0, res.TrafficDelayMinutes)
}

func TestFetchRouteFailures(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantStatus int
		temporary  bool
	}{
		{name: "server error", status: http.StatusServiceUnavailable, body: "down", wantStatus: 503, temporary: true},
		{name: "throttled", status: http.StatusTooManyRequests, body: "slow down", wantStatus: 429, temporary: true},
		{name: "unauthorized", status: http.StatusUnauthorized, body: "bad key", wantStatus: 401},
		{name: "no routes", status: http.StatusOK, body: `{"routes":[]}`},
		{name: "no sections", status: http.StatusOK, body: `{"routes":[{"id":"x","sections":[]}]}`},
		{name: "no summary", status: http.StatusOK, body: `{"routes":[{"sections":[{"id":"s"}]}]}`},
		{name: "garbage", status: http.StatusOK, body: `not json`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := p.FetchRoute(context.Background(), domain.RouteRequest{Origin: boise, Destination: seattle})
			require.Error(t, err)

			var pe *domain.ProviderError
			require.True(t, errors.As(err, &pe), "want ProviderError, got %T", err)
			assert.Equal(t, tt.wantStatus, pe.StatusCode)
			assert.Equal(t, tt.temporary, pe.Temporary())
		})
	}
}

func TestFetchRouteTimeout(t *testing.T) {
	release := make(chan struct{})
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}, WithTimeout(50*time.Millisecond))
	defer close(release)

	start := time.Now()
	_, err := p.FetchRoute(context.Background(), domain.RouteRequest{Origin: boise, Destination: seattle})
	require.Error(t, err)
	assert.Less(t, time.Since(start), 2*time.Second)

	var pe *domain.ProviderError
	require.True(t, errors.As(err, &pe))
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestFetchRouteHonorsCallerCancel(t *testing.T) {
	called := false
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.FetchRoute(ctx, domain.RouteRequest{Origin: boise, Destination: seattle})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.False(t, called)
}

func TestMockRouteProvider(t *testing.T) {
	p := NewMockRouteProvider([]MockLeg{{From: boise, To: seattle, Miles: 500, Minutes: 540}})

	res, err := p.FetchRoute(context.Background(), domain.RouteRequest{Origin: boise, Destination: seattle})
	require.NoError(t, err)
	assert.Equal(t, 500.0, res.DistanceMiles)
	assert.Equal(t, 540, res.DurationMinutes)

	_, err = p.FetchRoute(context.Background(), domain.RouteRequest{Origin: seattle, Destination: boise})
	var pe *domain.ProviderError
	assert.True(t, errors.As(err, &pe))
	assert.Len(t, p.Calls(), 2)

	failing := NewFailingRouteProvider(errors.New("offline"))
	for i := 0; i < 2; i++ {
		_, err := failing.FetchRoute(context.Background(), domain.RouteRequest{Origin: boise, Destination: seattle})
		assert.True(t, errors.As(err, &pe))
	}
}
