package reports

import (
	"time"

	"github.com/google/uuid"
)

// CreateReportRequest is the body for POST /v1/reports.
type CreateReportRequest struct {
	From string `json:"from"` // YYYY-MM-DD
	To   string `json:"to"`   // YYYY-MM-DD
}

// ReportDTO is the API shape of a report.
type ReportDTO struct {
	ID          uuid.UUID `json:"id"`
	From        string    `json:"from"`
	To          string    `json:"to"`
	DownloadURL string    `json:"download_url"`
	SizeBytes   int64     `json:"size_bytes"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// ReportsResponse is the body of GET /v1/reports.
type ReportsResponse struct {
	Reports []ReportDTO `json:"reports"`
}

// Report statuses.
const (
	StatusReady  = "ready"
	StatusFailed = "failed"
)

// ErrorResponse is the error envelope.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
