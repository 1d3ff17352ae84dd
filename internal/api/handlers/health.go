package handlers

import (
	"net/http"
)

// HealthHandler reports liveness and whether routes come from the external
// provider or from local estimates only.
type HealthHandler struct {
	ProviderConfigured bool
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	mode := "fallback_only"
	if h.ProviderConfigured {
		mode = "provider"
	}

	res := map[string]string{"status": "ok", "routing": mode}
	writeJSON(w, r, http.StatusOK, res)
}
