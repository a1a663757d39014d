package preferences

import (
	"encoding/json"
	"errors"
	"net/http"
)

// Handler holds HTTP handlers for preferences.
type Handler struct {
	service *Service
}

// NewHandler creates a new handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// HandleGet handles GET /v1/preferences.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.sendError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Method not allowed")
		return
	}

	prefs, err := h.service.GetPreferences(r.Context())
	if err != nil {
		h.sendError(w, http.StatusInternalServerError, "internal_error", "Failed to get preferences")
		return
	}

	h.sendJSON(w, http.StatusOK, prefs)
}

// HandleUpdate handles PUT /v1/preferences.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		h.sendError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Method not allowed")
		return
	}

	var req UpdatePreferencesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, http.StatusBadRequest, "invalid_json", "Invalid JSON")
		return
	}

	prefs, err := h.service.UpdatePreferences(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidLanguage):
			h.sendError(w, http.StatusBadRequest, "invalid_language", "Unsupported language")
		case errors.Is(err, ErrInvalidTimeZone):
			h.sendError(w, http.StatusBadRequest, "invalid_time_zone", "Invalid time zone")
		default:
			h.sendError(w, http.StatusInternalServerError, "internal_error", "Failed to save preferences")
		}
		return
	}

	h.sendJSON(w, http.StatusOK, prefs)
}

// sendJSON writes a JSON response.
func (h *Handler) sendJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// sendError writes an ErrorResponse.
func (h *Handler) sendError(w http.ResponseWriter, status int, code, message string) {
	h.sendJSON(w, status, ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	})
}
