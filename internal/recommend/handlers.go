package recommend

import (
	"encoding/json"
	"errors"
	"net/http"
)

// Handler holds HTTP handlers for recommendations.
type Handler struct {
	service *Service
}

// NewHandler creates a new handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// HandleExercises handles GET /v1/recommendations/exercises.
func (h *Handler) HandleExercises(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.sendError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Method not allowed")
		return
	}

	exercises, err := h.service.GetExercises(r.Context(), r.Header.Get("Accept-Language"))
	if err != nil {
		h.sendServiceError(w, err, "Failed to get exercises")
		return
	}

	h.sendJSON(w, http.StatusOK, ExercisesResponse{Exercises: exercises})
}

// HandleDiet handles GET /v1/recommendations/diet.
func (h *Handler) HandleDiet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.sendError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Method not allowed")
		return
	}

	plan, err := h.service.GetDiet(r.Context(), r.Header.Get("Accept-Language"))
	if err != nil {
		h.sendServiceError(w, err, "Failed to get diet plan")
		return
	}

	h.sendJSON(w, http.StatusOK, plan)
}

// HandleTips handles GET /v1/recommendations/tips.
func (h *Handler) HandleTips(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.sendError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Method not allowed")
		return
	}

	tips, err := h.service.GetTips(r.Context(), r.Header.Get("Accept-Language"))
	if err != nil {
		h.sendServiceError(w, err, "Failed to get tips")
		return
	}

	h.sendJSON(w, http.StatusOK, TipsResponse{Tips: tips})
}

// HandleSummary handles GET /v1/recommendations/summary.
func (h *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.sendError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Method not allowed")
		return
	}

	summary, err := h.service.GetSummary(r.Context(), r.Header.Get("Accept-Language"))
	if err != nil {
		h.sendServiceError(w, err, "Failed to get recommendations")
		return
	}

	h.sendJSON(w, http.StatusOK, summary)
}

func (h *Handler) sendServiceError(w http.ResponseWriter, err error, fallback string) {
	if errors.Is(err, ErrProfileRequired) {
		h.sendError(w, http.StatusNotFound, "profile_required", "Complete your profile first")
		return
	}
	h.sendError(w, http.StatusInternalServerError, "internal_error", fallback)
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
