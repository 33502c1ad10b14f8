package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/condoportal/backend/internal/service"
)

// maxBodyBytes caps every JSON request body.
const maxBodyBytes = 1 << 20

// errMethodNotAllowed is logged by the 405 fallbacks.
var errMethodNotAllowed = errors.New("method not allowed")

// errTrailingData reports bytes after the first JSON value in a body.
var errTrailingData = errors.New("unexpected data after JSON value")

// allowedMethods is the Allow header value for both resident endpoints.
const allowedMethods = "GET, POST"

// Handler carries cross-cutting HTTP concerns: CORS and health.
type Handler struct {
	maintenance service.MaintenanceService
	frontendURL string
}

// New creates a Handler. maintenance is probed by Health.
func New(maintenance service.MaintenanceService, frontendURL string) *Handler {
	return &Handler{maintenance: maintenance, frontendURL: frontendURL}
}

func (h *Handler) CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", h.frontendURL)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")
		w.Header().Set("Access-Control-Expose-Headers", "X-Request-ID")
		w.Header().Add("Vary", "Origin")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// decodeJSON reads exactly one JSON value from the request body into v.
// An empty body leaves v unchanged.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}

	err := dec.Decode(&struct{}{})
	if errors.Is(err, io.EOF) {
		return nil
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return err
	}
	return errTrailingData
}
