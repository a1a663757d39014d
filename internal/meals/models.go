package meals

import (
	"time"

	"github.com/google/uuid"
)

// MealAnalysisDTO is the API shape of a meal analysis.
type MealAnalysisDTO struct {
	ID              uuid.UUID `json:"id"`
	Description     string    `json:"description"`
	Score           int       `json:"score"`
	EstimatedKcal   int       `json:"estimated_kcal"`
	PositivePoints  []string  `json:"positive_points"`
	Improvements    []string  `json:"improvements"`
	Recommendations []string  `json:"recommendations"`
	Date            string    `json:"date"`
	CreatedAt       time.Time `json:"created_at"`
}

// AnalyzeMealRequest is the body for POST /v1/meals/analyses.
type AnalyzeMealRequest struct {
	Description string `json:"description"`
}

// MealAnalysesResponse is the body of GET /v1/meals/analyses.
type MealAnalysesResponse struct {
	Analyses []MealAnalysisDTO `json:"analyses"`
}

// ErrorResponse is the error envelope.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
