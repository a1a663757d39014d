package profiles

import (
	"encoding/json"
	"errors"
	"net/http"
)

// Handler holds HTTP handlers for the profile.
type Handler struct {
	service *Service
}

// NewHandler creates a new handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// HandleGet handles GET /v1/profile.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.sendError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Method not allowed")
		return
	}

	profile, err := h.service.GetProfile(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			h.sendError(w, http.StatusNotFound, "not_found", "Profile not found")
		default:
			h.sendError(w, http.StatusInternalServerError, "internal_error", "Failed to get profile")
		}
		return
	}

	h.sendJSON(w, http.StatusOK, profile)
}

// HandleUpsert handles PUT /v1/profile.
func (h *Handler) HandleUpsert(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		h.sendError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Method not allowed")
		return
	}

	var req UpsertProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, http.StatusBadRequest, "invalid_json", "Invalid JSON")
		return
	}

	profile, err := h.service.UpsertProfile(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidAge):
			h.sendError(w, http.StatusBadRequest, "invalid_age", "Age must be between 1 and 120")
		case errors.Is(err, ErrInvalidWeight):
			h.sendError(w, http.StatusBadRequest, "invalid_weight", "Weight must be positive")
		case errors.Is(err, ErrInvalidHeight):
			h.sendError(w, http.StatusBadRequest, "invalid_height", "Height must be positive")
		case errors.Is(err, ErrInvalidPlan):
			h.sendError(w, http.StatusBadRequest, "invalid_plan", "Unknown plan")
		default:
			h.sendError(w, http.StatusInternalServerError, "internal_error", "Failed to save profile")
		}
		return
	}

	h.sendJSON(w, http.StatusOK, profile)
}

// HandleCompleteOnboarding handles POST /v1/profile/onboarding.
func (h *Handler) HandleCompleteOnboarding(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.sendError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Method not allowed")
		return
	}

	profile, err := h.service.CompleteOnboarding(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			h.sendError(w, http.StatusNotFound, "not_found", "Profile not found")
		default:
			h.sendError(w, http.StatusInternalServerError, "internal_error", "Failed to complete onboarding")
		}
		return
	}

	h.sendJSON(w, http.StatusOK, profile)
}

// HandleChangePlan handles POST /v1/profile/plan.
func (h *Handler) HandleChangePlan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.sendError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Method not allowed")
		return
	}

	var req ChangePlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, http.StatusBadRequest, "invalid_json", "Invalid JSON")
		return
	}

	profile, err := h.service.ChangePlan(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidPlan):
			h.sendError(w, http.StatusBadRequest, "invalid_plan", "Unknown plan")
		case errors.Is(err, ErrNotFound):
			h.sendError(w, http.StatusNotFound, "not_found", "Profile not found")
		default:
			h.sendError(w, http.StatusInternalServerError, "internal_error", "Failed to change plan")
		}
		return
	}

	h.sendJSON(w, http.StatusOK, profile)
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
