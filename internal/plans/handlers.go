package plans

import (
	"encoding/json"
	"math"
	"net/http"

	"github.com/cardiovital/server/internal/preferences"
	"github.com/cardiovital/server/internal/pricing"
)

// Handler serves the plan catalog priced for the caller.
type Handler struct {
	prefs *preferences.Service
}

func NewHandler(prefs *preferences.Service) *Handler {
	return &Handler{prefs: prefs}
}

// HandleList handles GET /v1/plans. The currency comes from the
// ?currency override, then the ?timezone hint, then the stored
// preference timezone.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.sendError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Method not allowed")
		return
	}

	query := r.URL.Query()

	currency, ok := pricing.ParseCurrency(query.Get("currency"))
	if !ok {
		timezone := query.Get("timezone")
		if timezone == "" {
			timezone = h.prefs.TimeZone(r.Context())
		}
		currency = pricing.DetectCurrency(timezone)
	}

	lang := h.prefs.ResolveLanguage(r.Context(), r.Header.Get("Accept-Language"))

	catalog := Catalog(lang)
	dtos := make([]PlanDTO, 0, len(catalog))
	for _, p := range catalog {
		dtos = append(dtos, PlanDTO{
			ID:             p.ID,
			Name:           p.Name,
			Tagline:        p.Tagline,
			Price:          math.Round(pricing.Convert(p.PriceBRL, currency)*100) / 100,
			PriceFormatted: pricing.Format(p.PriceBRL, currency),
			Currency:       string(currency),
			Period:         p.Period,
			Features:       p.Features,
			Highlighted:    p.Highlighted,
		})
	}

	h.sendJSON(w, http.StatusOK, PlansResponse{Plans: dtos, Currency: string(currency)})
}

func (h *Handler) sendJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *Handler) sendError(w http.ResponseWriter, status int, code, message string) {
	h.sendJSON(w, status, ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	})
}
