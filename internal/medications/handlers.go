package medications

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// Handler holds HTTP handlers for medications.
type Handler struct {
	service *Service
}

// NewHandler creates a new handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// HandleList handles GET /v1/medications.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.sendError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Method not allowed")
		return
	}

	meds, err := h.service.ListMedications(r.Context())
	if err != nil {
		h.sendError(w, http.StatusInternalServerError, "internal_error", "Failed to list medications")
		return
	}

	h.sendJSON(w, http.StatusOK, MedicationsResponse{Medications: meds})
}

// HandleCreate handles POST /v1/medications.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.sendError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Method not allowed")
		return
	}

	var req CreateMedicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, http.StatusBadRequest, "invalid_json", "Invalid JSON")
		return
	}

	med, err := h.service.CreateMedication(r.Context(), req)
	if err != nil {
		h.sendValidationError(w, err, "Failed to create medication")
		return
	}

	h.sendJSON(w, http.StatusCreated, med)
}

// HandleUpdate handles PUT /v1/medications/{id}.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		h.sendError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Method not allowed")
		return
	}

	id, err := h.extractID(r.URL.Path)
	if err != nil {
		h.sendError(w, http.StatusBadRequest, "invalid_id", "Invalid medication ID")
		return
	}

	var req UpdateMedicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, http.StatusBadRequest, "invalid_json", "Invalid JSON")
		return
	}

	med, err := h.service.UpdateMedication(r.Context(), id, req)
	if err != nil {
		h.sendValidationError(w, err, "Failed to update medication")
		return
	}

	h.sendJSON(w, http.StatusOK, med)
}

// HandleDelete handles DELETE /v1/medications/{id}.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		h.sendError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Method not allowed")
		return
	}

	id, err := h.extractID(r.URL.Path)
	if err != nil {
		h.sendError(w, http.StatusBadRequest, "invalid_id", "Invalid medication ID")
		return
	}

	if err := h.service.DeleteMedication(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			h.sendError(w, http.StatusNotFound, "not_found", "Medication not found")
		default:
			h.sendError(w, http.StatusInternalServerError, "internal_error", "Failed to delete medication")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleMarkTaken handles POST /v1/medications/{id}/taken.
func (h *Handler) HandleMarkTaken(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.sendError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Method not allowed")
		return
	}

	id, err := h.extractID(r.URL.Path)
	if err != nil {
		h.sendError(w, http.StatusBadRequest, "invalid_id", "Invalid medication ID")
		return
	}

	med, err := h.service.MarkTaken(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			h.sendError(w, http.StatusNotFound, "not_found", "Medication not found")
		default:
			h.sendError(w, http.StatusInternalServerError, "internal_error", "Failed to mark as taken")
		}
		return
	}

	h.sendJSON(w, http.StatusOK, med)
}

func (h *Handler) sendValidationError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, ErrEmptyName):
		h.sendError(w, http.StatusBadRequest, "empty_name", "Name cannot be empty")
	case errors.Is(err, ErrEmptyDosage):
		h.sendError(w, http.StatusBadRequest, "empty_dosage", "Dosage cannot be empty")
	case errors.Is(err, ErrNoTimes):
		h.sendError(w, http.StatusBadRequest, "no_times", "At least one time is required")
	case errors.Is(err, ErrInvalidTime):
		h.sendError(w, http.StatusBadRequest, "invalid_time", "Times must be HH:MM 24h strings")
	case errors.Is(err, ErrNotFound):
		h.sendError(w, http.StatusNotFound, "not_found", "Medication not found")
	default:
		h.sendError(w, http.StatusInternalServerError, "internal_error", fallback)
	}
}

// extractID pulls the UUID out of /v1/medications/{id}[/taken].
func (h *Handler) extractID(path string) (uuid.UUID, error) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) < 3 {
		return uuid.Nil, errors.New("invalid path")
	}

	return uuid.Parse(parts[2])
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
