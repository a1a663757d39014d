package profiles

import (
	"time"
)

// ProfileDTO is the API shape of a health profile.
type ProfileDTO struct {
	Age                 int       `json:"age"`
	WeightKg            float64   `json:"weight_kg"`
	HeightCm            float64   `json:"height_cm"`
	Plan                string    `json:"plan"`
	OnboardingCompleted bool      `json:"onboarding_completed"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// UpsertProfileRequest is the body for PUT /v1/profile.
type UpsertProfileRequest struct {
	Age      int     `json:"age"`
	WeightKg float64 `json:"weight_kg"`
	HeightCm float64 `json:"height_cm"`
	Plan     string  `json:"plan,omitempty"`
}

// ChangePlanRequest is the body for POST /v1/profile/plan.
type ChangePlanRequest struct {
	Plan string `json:"plan"`
}

// ErrorResponse is the error envelope.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
