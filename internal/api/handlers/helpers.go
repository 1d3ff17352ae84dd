package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"route-optimization-service/internal/domain"
	"route-optimization-service/internal/platform/obs"
)

// maxBodyBytes bounds request bodies; multi-stop plans are the largest.
const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

// allowMethod writes a 405 and returns false when r does not use method.
func allowMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method == method {
		return true
	}
	w.Header().Set("Allow", method)
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	return false
}

// decodeJSON reads exactly one JSON object into v, rejecting unknown fields.
// It writes a 400 and returns false on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return false
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return false
	}

	return true
}

func domainVehicle(s string) domain.VehicleClass { return domain.ParseVehicleClass(s) }

// writeServiceError maps invalid input to 400 and everything else to 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	var ire *domain.InvalidRequestError
	if errors.As(err, &ire) {
		writeError(w, r, http.StatusBadRequest, ire.Error())
		return
	}

	log.Printf("req_id=%s %s failed: %v", obs.RequestID(r.Context()), op, err)
	writeError(w, r, http.StatusInternalServerError, "internal server error")
}
