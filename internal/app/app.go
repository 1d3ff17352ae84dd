package app

import (
	"log"
	"route-optimization-service/internal/adapters/routing"
	"route-optimization-service/internal/config"
	"route-optimization-service/internal/ports"
	"route-optimization-service/internal/services"
	"time"
)

// Services is the wired service graph shared by the server and the CLI.
type Services struct {
	Optimizer *services.RouteOptimizer
	Planner   *services.MultiStopPlanner
}

// New builds the services from cfg. Without ROUTING_API_KEY every route is
// estimated locally; that is logged once here.
func New(cfg config.Config) (*Services, error) {
	speeds := services.DefaultSpeedModel().WithOverrides(cfg.SpeedMph, cfg.MPG)
	fallback := services.NewFallbackEstimator(speeds, cfg.FuelPricePerGallon)

	provider, err := newProvider(cfg)
	if err != nil {
		return nil, err
	}

	optimizer := services.NewRouteOptimizer(provider, fallback, services.WithRetryPolicy(services.RetryPolicy{
		MaxAttempts:    cfg.RoutingMaxAttempts,
		InitialBackoff: services.DefaultRetryPolicy().InitialBackoff,
	}))

	return &Services{
		Optimizer: optimizer,
		Planner:   services.NewMultiStopPlanner(optimizer, time.Now),
	}, nil
}

// newProvider returns a nil interface, not a typed nil, when no key is set.
func newProvider(cfg config.Config) (ports.RouteProvider, error) {
	if !cfg.HasRoutingKey() {
		log.Println("ROUTING_API_KEY not set; using fallback estimates only")
		return nil, nil
	}

	opts := []routing.Option{routing.WithTimeout(cfg.RoutingTimeout)}
	if cfg.RoutingBaseURL != "" {
		opts = append(opts, routing.WithBaseURL(cfg.RoutingBaseURL))
	}

	p, err := routing.NewHereRouteProvider(cfg.RoutingAPIKey, opts...)
	if err != nil {
		return nil, err
	}
	return p, nil
}
