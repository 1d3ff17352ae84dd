package routing

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"route-optimization-service/internal/domain"
	"strings"
	"time"
)

type httpStatusError struct {
	Code int
	Body string
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("Code %d: %s", e.Code, e.Body)
}

func transportMode(vc domain.VehicleClass) string {
	if vc == domain.VehicleTruck {
		return "truck"
	}
	return "car"
}

func routingMode(m domain.OptimizationMode) string {
	if m == domain.ModeShortest {
		return "short"
	}
	return "fast"
}

func (h *HereRouteProvider) newRequest(ctx context.Context, req domain.RouteRequest) (*http.Request, error) {
	endpoint := h.baseURL + "/v8/routes"

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")

	q := httpReq.URL.Query()
	q.Set("origin", req.Origin.LatLon())
	q.Set("destination", req.Destination.LatLon())
	q.Set("transportMode", transportMode(req.VehicleClass))
	q.Set("routingMode", routingMode(req.OptimizationMode))
	q.Set("return", "summary,actions,instructions")

	avoid := make([]string, 0, 2)
	if req.AvoidTolls {
		avoid = append(avoid, "tollRoad")
	}
	if req.AvoidHighways {
		avoid = append(avoid, "controlledAccessHighway")
	}
	if len(avoid) > 0 {
		q.Set("avoid[features]", strings.Join(avoid, ","))
	}

	if req.DepartureTime != nil {
		q.Set("departureTime", req.DepartureTime.Format(time.RFC3339))
	}

	q.Set("apiKey", h.apiKey)
	httpReq.URL.RawQuery = q.Encode()

	return httpReq, nil
}

// do executes req once. Transport failures and non-2xx responses are
// reported as *domain.ProviderError.
func (h *HereRouteProvider) do(req *http.Request) (*http.Response, error) {
	resp, err := h.session.Do(req)
	if err != nil {
		return nil, &domain.ProviderError{Op: "execute request", Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		resp.Body.Close()
		return nil, &domain.ProviderError{
			Op:         "execute request",
			StatusCode: resp.StatusCode,
			Err: &httpStatusError{
				Code: resp.StatusCode,
				Body: strings.TrimSpace(string(b)),
			},
		}
	}

	return resp, nil
}
