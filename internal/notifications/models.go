package notifications

import (
	"time"

	"github.com/google/uuid"
)

// NotificationDTO is the API shape of an inbox entry.
type NotificationDTO struct {
	ID           uuid.UUID  `json:"id"`
	MedicationID uuid.UUID  `json:"medication_id"`
	TimeSlot     string     `json:"time_slot"`
	SourceDate   string     `json:"source_date"`
	Kind         string     `json:"kind"`
	Title        string     `json:"title"`
	Body         string     `json:"body"`
	CreatedAt    time.Time  `json:"created_at"`
	ReadAt       *time.Time `json:"read_at,omitempty"`
}

// InboxListResponse is the body of GET /v1/inbox.
type InboxListResponse struct {
	Notifications []NotificationDTO `json:"notifications"`
}

// UnreadCountResponse is the body of GET /v1/inbox/unread-count.
type UnreadCountResponse struct {
	Unread int `json:"unread"`
}

// MarkReadRequest is the body for POST /v1/inbox/read.
type MarkReadRequest struct {
	IDs []uuid.UUID `json:"ids"`
}

// MarkReadResponse reports how many entries were marked.
type MarkReadResponse struct {
	Marked int `json:"marked"`
}

// GenerateRequest drives one reminder check for one owner. Now defaults
// to the service clock when zero.
type GenerateRequest struct {
	OwnerUserID string
	Now         time.Time
}

// GenerateResponse reports the outcome of one reminder check.
type GenerateResponse struct {
	Matched   int `json:"matched"`
	Delivered int `json:"delivered"`
	Skipped   int `json:"skipped"`
}

// ErrorResponse is the error envelope.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
