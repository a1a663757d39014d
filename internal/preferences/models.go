package preferences

import "time"

// PreferencesDTO is the API shape of user preferences.
type PreferencesDTO struct {
	Language         string    `json:"language"`
	TimeZone         string    `json:"time_zone"`
	RemindersEnabled bool      `json:"reminders_enabled"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// UpdatePreferencesRequest is the body for PUT /v1/preferences.
// Nil fields keep their current value.
type UpdatePreferencesRequest struct {
	Language         *string `json:"language,omitempty"`
	TimeZone         *string `json:"time_zone,omitempty"`
	RemindersEnabled *bool   `json:"reminders_enabled,omitempty"`
}

// ErrorResponse is the error envelope.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
