package handlers

import (
	"net/http"
	"route-optimization-service/internal/api/dto"
	"route-optimization-service/internal/services"
)

type PlanHandler struct {
	Planner *services.MultiStopPlanner
}

// Plan sequences the submitted waypoints and returns per-leg routes plus
// itinerary totals.
func (h *PlanHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.PlanRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	planReq, err := req.ToDomain()
	if err != nil {
		writeServiceError(w, r, "plan route", err)
		return
	}

	plan, err := h.Planner.PlanRoute(r.Context(), planReq)
	if err != nil {
		writeServiceError(w, r, "plan route", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.FromPlan(plan))
}
