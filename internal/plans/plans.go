// Package plans holds the subscription catalog and feature gating.
package plans

import (
	"strings"

	"github.com/cardiovital/server/internal/i18n"
)

// Plan identifiers. Prices are monthly, in BRL.
const (
	Essencial = "essencial"
	Premium   = "premium"
	Elite     = "elite"
)

// Feature names gated by plan.
type Feature string

const (
	FeatureMedications  Feature = "medications"
	FeatureExercises    Feature = "exercises"
	FeatureDiet         Feature = "diet"
	FeatureCoach        Feature = "coach"
	FeatureMealAnalysis Feature = "meal_analysis"
	FeatureReminders    Feature = "reminders"
	FeatureReports      Feature = "reports"
)

// PriceBRL returns the monthly base price for a plan.
var priceBRL = map[string]float64{
	Essencial: 0,
	Premium:   14.99,
	Elite:     99.99,
}

// IsValid reports whether id names a known plan.
func IsValid(id string) bool {
	_, ok := priceBRL[strings.ToLower(strings.TrimSpace(id))]
	return ok
}

// Normalize lowercases and trims a plan id, defaulting to essencial.
func Normalize(id string) string {
	id = strings.ToLower(strings.TrimSpace(id))
	if !IsValid(id) {
		return Essencial
	}
	return id
}

// PriceBRL returns the monthly BRL price for a plan, 0 for unknown plans.
func PriceBRL(id string) float64 {
	return priceBRL[Normalize(id)]
}

// HasFeatureAccess is a pure function of plan and feature. Medication
// tracking is free; every other feature needs a paid plan. Premium and
// elite grant the same capabilities.
func HasFeatureAccess(plan string, feature Feature) bool {
	if feature == FeatureMedications {
		return true
	}
	plan = Normalize(plan)
	return plan == Premium || plan == Elite
}

// Plan describes one catalog entry with localized copy.
type Plan struct {
	ID          string
	Name        string
	Tagline     string
	PriceBRL    float64
	Period      string
	Features    []string
	Highlighted bool
}

// Catalog returns the three plans with copy in the given language,
// cheapest first.
func Catalog(lang i18n.Language) []Plan {
	copySet, ok := planCopy[lang]
	if !ok {
		copySet = planCopy[i18n.English]
	}

	result := make([]Plan, 0, len(planOrder))
	for _, id := range planOrder {
		c := copySet[id]
		result = append(result, Plan{
			ID:          id,
			Name:        c.name,
			Tagline:     c.tagline,
			PriceBRL:    priceBRL[id],
			Period:      c.period,
			Features:    append([]string(nil), c.features...),
			Highlighted: id == Premium,
		})
	}

	return result
}

var planOrder = []string{Essencial, Premium, Elite}
