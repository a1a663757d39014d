package medications

import (
	"time"

	"github.com/google/uuid"
)

// MedicationDTO is the API shape of a medication with its taken history.
type MedicationDTO struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	Dosage     string     `json:"dosage"`
	Frequency  string     `json:"frequency"`
	Times      []string   `json:"times"`
	Notes      string     `json:"notes,omitempty"`
	Taken      []TakenDTO `json:"taken"`
	TakenToday bool       `json:"taken_today"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// TakenDTO is one recorded intake.
type TakenDTO struct {
	Date string `json:"date"` // YYYY-MM-DD
	Time string `json:"time"` // HH:MM
}

// MedicationsResponse is the reply to GET /v1/medications.
type MedicationsResponse struct {
	Medications []MedicationDTO `json:"medications"`
}

// CreateMedicationRequest is the body for POST /v1/medications.
type CreateMedicationRequest struct {
	Name      string   `json:"name"`
	Dosage    string   `json:"dosage"`
	Frequency string   `json:"frequency"`
	Times     []string `json:"times"`
	Notes     string   `json:"notes"`
}

// UpdateMedicationRequest is the body for PUT /v1/medications/{id}.
type UpdateMedicationRequest struct {
	Name      string   `json:"name"`
	Dosage    string   `json:"dosage"`
	Frequency string   `json:"frequency"`
	Times     []string `json:"times"`
	Notes     string   `json:"notes"`
}

// ErrorResponse is the error envelope.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
