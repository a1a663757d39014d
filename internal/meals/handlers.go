package meals

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// Handler holds HTTP handlers for meal analyses.
type Handler struct {
	service *Service
}

// NewHandler creates a new handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// HandleAnalyze handles POST /v1/meals/analyses.
func (h *Handler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.sendError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Method not allowed")
		return
	}

	var req AnalyzeMealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, http.StatusBadRequest, "invalid_json", "Invalid JSON")
		return
	}

	analysis, err := h.service.Analyze(r.Context(), req, r.Header.Get("Accept-Language"))
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyDescription):
			h.sendError(w, http.StatusBadRequest, "empty_description", "Description must not be empty")
		default:
			h.sendError(w, http.StatusInternalServerError, "internal_error", "Failed to analyze meal")
		}
		return
	}

	h.sendJSON(w, http.StatusCreated, analysis)
}

// HandleList handles GET /v1/meals/analyses.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.sendError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Method not allowed")
		return
	}

	analyses, err := h.service.ListAnalyses(r.Context())
	if err != nil {
		h.sendError(w, http.StatusInternalServerError, "internal_error", "Failed to list analyses")
		return
	}

	h.sendJSON(w, http.StatusOK, MealAnalysesResponse{Analyses: analyses})
}

// HandleDelete handles DELETE /v1/meals/analyses/{id}.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		h.sendError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Method not allowed")
		return
	}

	id, err := h.extractID(r.URL.Path)
	if err != nil {
		h.sendError(w, http.StatusBadRequest, "invalid_id", "Invalid analysis ID")
		return
	}

	if err := h.service.DeleteAnalysis(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			h.sendError(w, http.StatusNotFound, "not_found", "Analysis not found")
		default:
			h.sendError(w, http.StatusInternalServerError, "internal_error", "Failed to delete analysis")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// extractID pulls the analysis ID from /v1/meals/analyses/{id}.
func (h *Handler) extractID(path string) (uuid.UUID, error) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) < 4 {
		return uuid.Nil, errors.New("invalid path")
	}

	return uuid.Parse(parts[3])
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
