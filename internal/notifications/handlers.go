package notifications

import (
	"encoding/json"
	"net/http"
	"strconv"
)

// Handler holds HTTP handlers for the reminder inbox.
type Handler struct {
	service *Service
}

// NewHandler creates a new handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// HandleList handles GET /v1/inbox.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.sendError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Method not allowed")
		return
	}

	onlyUnread := r.URL.Query().Get("unread") == "true"
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	notifications, err := h.service.ListInbox(r.Context(), onlyUnread, limit, offset)
	if err != nil {
		h.sendError(w, http.StatusInternalServerError, "internal_error", "Failed to list notifications")
		return
	}

	h.sendJSON(w, http.StatusOK, InboxListResponse{Notifications: notifications})
}

// HandleUnreadCount handles GET /v1/inbox/unread-count.
func (h *Handler) HandleUnreadCount(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.sendError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Method not allowed")
		return
	}

	count, err := h.service.UnreadCount(r.Context())
	if err != nil {
		h.sendError(w, http.StatusInternalServerError, "internal_error", "Failed to count notifications")
		return
	}

	h.sendJSON(w, http.StatusOK, UnreadCountResponse{Unread: count})
}

// HandleMarkRead handles POST /v1/inbox/read.
func (h *Handler) HandleMarkRead(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.sendError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Method not allowed")
		return
	}

	var req MarkReadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, http.StatusBadRequest, "invalid_json", "Invalid JSON")
		return
	}
	if len(req.IDs) == 0 {
		h.sendError(w, http.StatusBadRequest, "empty_ids", "ids must not be empty")
		return
	}

	marked, err := h.service.MarkRead(r.Context(), req.IDs)
	if err != nil {
		h.sendError(w, http.StatusInternalServerError, "internal_error", "Failed to mark notifications read")
		return
	}

	h.sendJSON(w, http.StatusOK, MarkReadResponse{Marked: marked})
}

// HandleMarkAllRead handles POST /v1/inbox/read-all.
func (h *Handler) HandleMarkAllRead(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.sendError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Method not allowed")
		return
	}

	marked, err := h.service.MarkAllRead(r.Context())
	if err != nil {
		h.sendError(w, http.StatusInternalServerError, "internal_error", "Failed to mark notifications read")
		return
	}

	h.sendJSON(w, http.StatusOK, MarkReadResponse{Marked: marked})
}

// HandleGenerate handles POST /v1/inbox/generate. It runs one reminder
// check for the caller, same as a scheduler tick.
func (h *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.sendError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Method not allowed")
		return
	}

	resp, err := h.service.Generate(r.Context(), GenerateRequest{})
	if err != nil {
		h.sendError(w, http.StatusInternalServerError, "internal_error", "Failed to generate notifications")
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
