package api

import (
	"net/http"
	"route-optimization-service/internal/api/handlers"
	"route-optimization-service/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(optimizer *services.RouteOptimizer, planner *services.MultiStopPlanner) http.Handler {
	mux := http.NewServeMux()

	healthHandler := &handlers.HealthHandler{ProviderConfigured: optimizer.HasProvider()}
	routeHandler := &handlers.RouteHandler{Optimizer: optimizer}
	planHandler := &handlers.PlanHandler{Planner: planner}

	mux.HandleFunc("/health", healthHandler.Health)
	mux.HandleFunc("/routes", routeHandler.Calculate)
	mux.HandleFunc("/routes/distance", routeHandler.Distance)
	mux.HandleFunc("/routes/eta", routeHandler.ETA)
	mux.HandleFunc("/routes/alternatives", routeHandler.Alternatives)
	mux.HandleFunc("/fuel-cost", routeHandler.FuelCost)
	mux.HandleFunc("/plans", planHandler.Plan)

	return requestIDMiddleware(loggingMiddleware(mux))
}
