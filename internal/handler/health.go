package handler

import (
	"net/http"
)

type healthResponse struct {
	Status           string `json:"status"`
	Message          string `json:"message"`
	MaintenanceItems int    `json:"maintenanceItems"`
}

// Health handles GET /api/health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	items, err := h.maintenance.List(r.Context())
	if err != nil {
		writeJSON(w, http.StatusServiceUnavailable, healthResponse{
			Status:  "unhealthy",
			Message: err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, healthResponse{
		Status:           "ok",
		Message:          "Condo Portal API",
		MaintenanceItems: len(items),
	})
}
