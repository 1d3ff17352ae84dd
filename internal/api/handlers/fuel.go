package handlers

import (
	"net/http"
	"route-optimization-service/internal/api/dto"
)

// FuelCost prices a distance with the optimizer's fuel model. No routing is
// performed.
func (h *RouteHandler) FuelCost(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.FuelCostRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	distance, err := req.Distance()
	if err != nil {
		writeServiceError(w, r, "fuel cost", err)
		return
	}

	est, err := h.Optimizer.CalculateFuelCost(distance, domainVehicle(req.VehicleClass), req.FuelPricePerGallon)
	if err != nil {
		writeServiceError(w, r, "fuel cost", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.FromFuelCost(est))
}
