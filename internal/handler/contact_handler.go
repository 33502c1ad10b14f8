package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/condoportal/backend/internal/model"
	"github.com/condoportal/backend/internal/service"
)

// ContactHandler serves the resident contact form.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

type categoriesResponse struct {
	Categories []model.InquiryCategory `json:"categories"`
}

type validationResponse struct {
	Error  string             `json:"error"`
	Fields []model.FieldError `json:"fields"`
}

// Categories handles GET /api/contact.
func (h *ContactHandler) Categories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, categoriesResponse{
		Categories: h.contactService.Categories(r.Context()),
	})
}

// Submit handles POST /api/contact.
// Field failures return 400 with one entry per failing field; malformed JSON
// and unexpected errors return a generic 500.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var sub model.ContactSubmission
	if err := decodeJSON(w, r, &sub); err != nil {
		var typeErr *json.UnmarshalTypeError
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &typeErr):
			ve := &model.ValidationError{}
			if typeErr.Field == "" {
				ve.Add("body", "Expected a JSON object.")
			} else {
				ve.Add(typeErr.Field, "Invalid value type, expected "+typeErr.Type.String()+".")
			}
			writeJSON(w, http.StatusBadRequest, validationResponse{Error: ve.Error(), Fields: ve.Fields})
		case errors.As(err, &tooLarge):
			writeJSON(w, http.StatusRequestEntityTooLarge, map[string]string{"error": "Request body too large"})
		default:
			slog.ErrorContext(r.Context(), "contact submission: decode body", "error", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
		}
		return
	}

	if err := h.contactService.Submit(r.Context(), &sub); err != nil {
		var ve *model.ValidationError
		if errors.As(err, &ve) {
			writeJSON(w, http.StatusBadRequest, validationResponse{Error: ve.Error(), Fields: ve.Fields})
			return
		}
		slog.ErrorContext(r.Context(), "contact submission failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// MethodNotAllowed answers any other verb on /api/contact.
func (h *ContactHandler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	slog.DebugContext(r.Context(), "contact endpoint", "error", errMethodNotAllowed, "method", r.Method)
	w.Header().Set("Allow", allowedMethods)
	writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "Method Not Allowed"})
}
