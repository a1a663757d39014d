package plans

import (
	"testing"

	"github.com/cardiovital/server/internal/i18n"
)

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"premium":   Premium,
		" Premium ": Premium,
		"ELITE":     Elite,
		"essencial": Essencial,
		"":          Essencial,
		"gold":      Essencial,
	}

	for input, want := range cases {
		if got := Normalize(input); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestHasFeatureAccess(t *testing.T) {
	// Medication tracking is free on every plan.
	for _, plan := range []string{Essencial, Premium, Elite, "unknown"} {
		if !HasFeatureAccess(plan, FeatureMedications) {
			t.Errorf("plan %q should access medications", plan)
		}
	}

	paid := []Feature{FeatureExercises, FeatureDiet, FeatureCoach, FeatureMealAnalysis, FeatureReminders, FeatureReports}
	for _, feature := range paid {
		if HasFeatureAccess(Essencial, feature) {
			t.Errorf("essencial should not access %s", feature)
		}
		if !HasFeatureAccess(Premium, feature) {
			t.Errorf("premium should access %s", feature)
		}
		if !HasFeatureAccess(Elite, feature) {
			t.Errorf("elite should access %s", feature)
		}
	}
}

func TestCatalogOrderAndPrices(t *testing.T) {
	catalog := Catalog(i18n.English)

	if len(catalog) != 3 {
		t.Fatalf("expected 3 plans, got %d", len(catalog))
	}
	if catalog[0].ID != Essencial || catalog[1].ID != Premium || catalog[2].ID != Elite {
		t.Errorf("unexpected order: %s, %s, %s", catalog[0].ID, catalog[1].ID, catalog[2].ID)
	}
	if catalog[0].PriceBRL != 0 || catalog[1].PriceBRL != 14.99 || catalog[2].PriceBRL != 99.99 {
		t.Errorf("unexpected prices: %v, %v, %v", catalog[0].PriceBRL, catalog[1].PriceBRL, catalog[2].PriceBRL)
	}
	if !catalog[1].Highlighted {
		t.Error("premium should be highlighted")
	}
	if catalog[0].Name != "Essential" {
		t.Errorf("expected English copy, got %q", catalog[0].Name)
	}
}

func TestCatalogLocalization(t *testing.T) {
	for _, lang := range i18n.Supported {
		catalog := Catalog(lang)
		for _, p := range catalog {
			if p.Name == "" || p.Tagline == "" || p.Period == "" {
				t.Errorf("lang %s plan %s has empty copy", lang, p.ID)
			}
			if len(p.Features) == 0 {
				t.Errorf("lang %s plan %s has no features", lang, p.ID)
			}
		}
	}

	// Unknown language falls back to English.
	fallback := Catalog(i18n.Language("xx"))
	if fallback[0].Name != "Essential" {
		t.Errorf("expected English fallback, got %q", fallback[0].Name)
	}
}
