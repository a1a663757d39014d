package coach

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"
)

// Handler holds HTTP handlers for the coach conversation.
type Handler struct {
	service *Service
}

// NewHandler creates a new handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// HandleSend handles POST /v1/coach/messages.
func (h *Handler) HandleSend(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.sendError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Method not allowed")
		return
	}

	var req SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, http.StatusBadRequest, "invalid_json", "Invalid JSON")
		return
	}

	resp, err := h.service.SendMessage(r.Context(), req, r.Header.Get("Accept-Language"))
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyMessage):
			h.sendError(w, http.StatusBadRequest, "empty_message", "Message must not be empty")
		default:
			h.sendError(w, http.StatusInternalServerError, "internal_error", "Failed to send message")
		}
		return
	}

	h.sendJSON(w, http.StatusCreated, resp)
}

// HandleList handles GET /v1/coach/messages.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.sendError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Method not allowed")
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, _ = strconv.Atoi(raw)
	}

	var before *time.Time
	if raw := r.URL.Query().Get("before"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			h.sendError(w, http.StatusBadRequest, "invalid_cursor", "before must be an RFC3339 timestamp")
			return
		}
		before = &parsed
	}

	resp, err := h.service.ListMessages(r.Context(), limit, before)
	if err != nil {
		h.sendError(w, http.StatusInternalServerError, "internal_error", "Failed to list messages")
		return
	}

	h.sendJSON(w, http.StatusOK, resp)
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
