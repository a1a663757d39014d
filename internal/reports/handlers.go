package reports

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Handler holds HTTP handlers for reports.
type Handler struct {
	service *Service
}

// NewHandler creates a new handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// HandleCreate handles POST /v1/reports.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.sendError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Method not allowed")
		return
	}

	var req CreateReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, http.StatusBadRequest, "invalid_json", "Invalid JSON")
		return
	}

	report, err := h.service.CreateReport(r.Context(), req, baseURL(r))
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidDate):
			h.sendError(w, http.StatusBadRequest, "invalid_date", "Dates must be YYYY-MM-DD")
		case errors.Is(err, ErrInvalidDateRange):
			h.sendError(w, http.StatusBadRequest, "invalid_range", "from must not be after to")
		case errors.Is(err, ErrRangeTooLarge):
			h.sendError(w, http.StatusBadRequest, "range_too_large", "Date range too large")
		case errors.Is(err, ErrProfileRequired):
			h.sendError(w, http.StatusNotFound, "profile_required", "Complete your profile first")
		default:
			h.sendError(w, http.StatusInternalServerError, "internal_error", "Failed to create report")
		}
		return
	}

	h.sendJSON(w, http.StatusCreated, report)
}

// HandleList handles GET /v1/reports.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.sendError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Method not allowed")
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	reports, err := h.service.ListReports(r.Context(), limit, offset, baseURL(r))
	if err != nil {
		h.sendError(w, http.StatusInternalServerError, "internal_error", "Failed to list reports")
		return
	}

	h.sendJSON(w, http.StatusOK, ReportsResponse{Reports: reports})
}

// HandleDownload handles GET /v1/reports/{id}/download.
func (h *Handler) HandleDownload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.sendError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Method not allowed")
		return
	}

	id, err := h.extractID(r.URL.Path)
	if err != nil {
		h.sendError(w, http.StatusBadRequest, "invalid_id", "Invalid report ID")
		return
	}

	data, err := h.service.GetReportData(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrReportNotFound):
			h.sendError(w, http.StatusNotFound, "not_found", "Report not found")
		default:
			h.sendError(w, http.StatusInternalServerError, "internal_error", "Failed to download report")
		}
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "adherence-report-"+id.String()+".pdf"))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// HandleDelete handles DELETE /v1/reports/{id}.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		h.sendError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Method not allowed")
		return
	}

	id, err := h.extractID(r.URL.Path)
	if err != nil {
		h.sendError(w, http.StatusBadRequest, "invalid_id", "Invalid report ID")
		return
	}

	if err := h.service.DeleteReport(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, ErrReportNotFound):
			h.sendError(w, http.StatusNotFound, "not_found", "Report not found")
		default:
			h.sendError(w, http.StatusInternalServerError, "internal_error", "Failed to delete report")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// extractID pulls the report ID from /v1/reports/{id}[/download].
func (h *Handler) extractID(path string) (uuid.UUID, error) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) < 3 {
		return uuid.Nil, errors.New("invalid path")
	}

	return uuid.Parse(parts[2])
}

func baseURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host
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
