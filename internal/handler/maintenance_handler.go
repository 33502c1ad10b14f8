package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/condoportal/backend/internal/model"
	"github.com/condoportal/backend/internal/service"
)

// MaintenanceHandler serves the upcoming maintenance board.
type MaintenanceHandler struct {
	maintenanceService service.MaintenanceService
}

// NewMaintenanceHandler creates a MaintenanceHandler with the given service.
func NewMaintenanceHandler(maintenanceService service.MaintenanceService) *MaintenanceHandler {
	return &MaintenanceHandler{maintenanceService: maintenanceService}
}

type messageResponse struct {
	Message string `json:"message"`
}

type scheduleResponse struct {
	Message string                 `json:"message"`
	Item    *model.MaintenanceItem `json:"item"`
}

// List handles GET /api/maintenance.
func (h *MaintenanceHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.maintenanceService.List(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "fetch maintenance items", "error", err)
		writeJSON(w, http.StatusInternalServerError, messageResponse{Message: "Failed to fetch maintenance items"})
		return
	}

	// Return [] not null for empty lists
	if items == nil {
		items = []model.MaintenanceItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

// Create handles POST /api/maintenance.
// issueSubject is required; the new item is returned with 201.
func (h *MaintenanceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.MaintenanceRequest
	if err := decodeJSON(w, r, &req); err != nil {
		var typeErr *json.UnmarshalTypeError
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &typeErr) && (typeErr.Field == "issueSubject" || typeErr.Field == ""):
			writeJSON(w, http.StatusBadRequest, messageResponse{Message: "Issue subject is required"})
		case errors.As(err, &typeErr):
			writeJSON(w, http.StatusBadRequest, messageResponse{Message: fmt.Sprintf("Field %s must be a string", typeErr.Field)})
		case errors.As(err, &tooLarge):
			writeJSON(w, http.StatusRequestEntityTooLarge, messageResponse{Message: "Request body too large"})
		default:
			slog.ErrorContext(r.Context(), "process maintenance request: decode body", "error", err)
			writeJSON(w, http.StatusInternalServerError, messageResponse{Message: "Failed to schedule maintenance request"})
		}
		return
	}

	item, err := h.maintenanceService.Schedule(r.Context(), req)
	if err != nil {
		var ve *model.ValidationError
		switch {
		case errors.Is(err, service.ErrIssueSubjectRequired):
			writeJSON(w, http.StatusBadRequest, messageResponse{Message: "Issue subject is required"})
		case errors.As(err, &ve):
			writeJSON(w, http.StatusBadRequest, messageResponse{Message: ve.Fields[0].Message})
		default:
			slog.ErrorContext(r.Context(), "process maintenance request", "error", err)
			writeJSON(w, http.StatusInternalServerError, messageResponse{Message: "Failed to schedule maintenance request"})
		}
		return
	}

	writeJSON(w, http.StatusCreated, scheduleResponse{
		Message: "Maintenance request successfully scheduled",
		Item:    item,
	})
}

// MethodNotAllowed answers any other verb on /api/maintenance.
func (h *MaintenanceHandler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	slog.DebugContext(r.Context(), "maintenance endpoint", "error", errMethodNotAllowed, "method", r.Method)
	w.Header().Set("Allow", allowedMethods)
	http.Error(w, fmt.Sprintf("Method %s Not Allowed", r.Method), http.StatusMethodNotAllowed)
}
