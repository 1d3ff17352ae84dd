package handlers

import (
	"net/http"
	"route-optimization-service/internal/api/dto"
	"route-optimization-service/internal/services"
	"time"
)

// RouteHandler exposes single-leg routing, projections and alternatives.
type RouteHandler struct {
	Optimizer *services.RouteOptimizer
	Now       func() time.Time
}

func (h *RouteHandler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

func (h *RouteHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.RouteRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	routeReq, err := req.ToDomain()
	if err != nil {
		writeServiceError(w, r, "calculate route", err)
		return
	}

	res, err := h.Optimizer.CalculateRoute(r.Context(), routeReq)
	if err != nil {
		writeServiceError(w, r, "calculate route", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.FromRoute(res))
}

func (h *RouteHandler) Distance(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.DistanceRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	origin, dest, err := req.Endpoints()
	if err != nil {
		writeServiceError(w, r, "distance", err)
		return
	}

	dd, err := h.Optimizer.GetDistanceAndDuration(r.Context(), origin, dest, domainVehicle(req.VehicleClass))
	if err != nil {
		writeServiceError(w, r, "distance", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.FromDistanceDuration(dd))
}

func (h *RouteHandler) ETA(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.ETARequest
	if !decodeJSON(w, r, &req) {
		return
	}

	origin, dest, err := req.Endpoints()
	if err != nil {
		writeServiceError(w, r, "eta", err)
		return
	}

	departure := h.now()
	if req.DepartureTime != nil {
		departure = *req.DepartureTime
	}

	eta, err := h.Optimizer.CalculateETA(r.Context(), origin, dest, departure)
	if err != nil {
		writeServiceError(w, r, "eta", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ETAResponse{EstimatedArrival: eta})
}

func (h *RouteHandler) Alternatives(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.AlternativesRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	routeReq, err := req.ToDomain()
	if err != nil {
		writeServiceError(w, r, "alternatives", err)
		return
	}

	routes, err := h.Optimizer.GetAlternativeRoutes(r.Context(), routeReq, req.Max())
	if err != nil {
		writeServiceError(w, r, "alternatives", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.AlternativesResponse{Routes: dto.FromRoutes(routes)})
}
