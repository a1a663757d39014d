package plans

// PlanDTO is one catalog entry priced for the caller.
type PlanDTO struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Tagline        string   `json:"tagline"`
	Price          float64  `json:"price"`
	PriceFormatted string   `json:"price_formatted"`
	Currency       string   `json:"currency"`
	Period         string   `json:"period"`
	Features       []string `json:"features"`
	Highlighted    bool     `json:"highlighted"`
}

// PlansResponse lists the catalog.
type PlansResponse struct {
	Plans    []PlanDTO `json:"plans"`
	Currency string    `json:"currency"`
}

// ErrorResponse is the error envelope.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
