package routing

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"route-optimization-service/internal/domain"
	"route-optimization-service/internal/platform/obs"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultBaseURL = "https://router.hereapi.com"
	DefaultTimeout = 8 * time.Second

	metersPerMile = 1609.344
)

// HereRouteProvider implements ports.RouteProvider against a HERE-style
// v8 routes API.
//
// Each FetchRoute is a single GET bounded by the provider timeout and the
// caller's context. Failures are returned as *domain.ProviderError and are
// never retried here.
//
// The provider is safe for concurrent use.
type HereRouteProvider struct {
	session *http.Client
	apiKey  string
	baseURL string
	timeout time.Duration
}

type Option func(*HereRouteProvider)

func WithBaseURL(baseURL string) Option {
	return func(h *HereRouteProvider) {
		if baseURL != "" {
			h.baseURL = baseURL
		}
	}
}

func WithHTTPClient(c *http.Client) Option {
	return func(h *HereRouteProvider) {
		if c != nil {
			h.session = c
		}
	}
}

func WithTimeout(d time.Duration) Option {
	return func(h *HereRouteProvider) {
		if d > 0 {
			h.timeout = d
		}
	}
}

func NewHereRouteProvider(apiKey string, opts ...Option) (*HereRouteProvider, error) {
	if apiKey == "" {
		return nil, errors.New("routing provider api key is empty")
	}

	provider := &HereRouteProvider{
		session: &http.Client{},
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(provider)
	}

	return provider, nil
}

type routesResponse struct {
	Routes []struct {
		ID       string `json:"id"`
		Sections []struct {
			ID      string `json:"id"`
			Summary *struct {
				Duration     float64 `json:"duration"`
				Length       float64 `json:"length"`
				BaseDuration float64 `json:"baseDuration"`
			} `json:"summary"`
			Actions []struct {
				Action      string `json:"action"`
				Instruction string `json:"instruction"`
			} `json:"actions"`
		} `json:"sections"`
	} `json:"routes"`
}

// FetchRoute retrieves the provider's first route for req and maps its first
// section into the canonical result. Arrival time and fuel figures are left
// for the caller to derive.
func (h *HereRouteProvider) FetchRoute(
	ctx context.Context,
	req domain.RouteRequest,
) (_ domain.RouteResult, err error) {
	defer obs.Time(ctx, "routing.FetchRoute")(&err)

	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	httpReq, err := h.newRequest(ctx, req)
	if err != nil {
		return domain.RouteResult{}, &domain.ProviderError{Op: "build request", Err: err}
	}

	resp, err := h.do(httpReq)
	if err != nil {
		return domain.RouteResult{}, err
	}
	defer resp.Body.Close()

	var decoded routesResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.RouteResult{}, &domain.ProviderError{Op: "decode response", Err: err}
	}

	return mapRoute(decoded)
}

func mapRoute(decoded routesResponse) (domain.RouteResult, error) {
	if len(decoded.Routes) == 0 {
		return domain.RouteResult{}, &domain.ProviderError{Op: "parse response", Err: errors.New("no routes in response")}
	}
	route := decoded.Routes[0]

	if len(route.Sections) == 0 {
		return domain.RouteResult{}, &domain.ProviderError{Op: "parse response", Err: errors.New("route has no sections")}
	}
	section := route.Sections[0]

	if section.Summary == nil {
		return domain.RouteResult{}, &domain.ProviderError{Op: "parse response", Err: errors.New("section has no summary")}
	}
	summary := section.Summary

	if summary.Length < 0 || summary.Duration < 0 {
		return domain.RouteResult{}, &domain.ProviderError{Op: "parse response", Err: errors.New("negative length or duration")}
	}

	delayMinutes := 0
	if summary.BaseDuration > 0 && summary.Duration > summary.BaseDuration {
		delayMinutes = int(math.Round((summary.Duration - summary.BaseDuration) / 60))
	}

	instructions := make([]string, 0, len(section.Actions))
	for _, a := range section.Actions {
		if a.Instruction != "" {
			instructions = append(instructions, a.Instruction)
		}
	}

	routeID := route.ID
	if routeID == "" {
		routeID = uuid.NewString()
	}

	return domain.RouteResult{
		RouteID:             routeID,
		DistanceMiles:       domain.RoundTo(summary.Length/metersPerMile, 2),
		DurationMinutes:     int(math.Round(summary.Duration / 60)),
		TrafficDelayMinutes: delayMinutes,
		Instructions:        instructions,
	}, nil
}
