package recommend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cardiovital/server/internal/preferences"
	"github.com/cardiovital/server/internal/storage"
	"github.com/cardiovital/server/internal/storage/memory"
)

func newTestHandler(t *testing.T, withProfile bool) *Handler {
	t.Helper()

	store := memory.New()
	if withProfile {
		_, err := store.UpsertProfile(context.Background(), storage.Profile{
			OwnerUserID: "default",
			Age:         55,
			WeightKg:    82,
			HeightCm:    176,
			Plan:        "premium",
		})
		if err != nil {
			t.Fatalf("failed to seed profile: %v", err)
		}
	}

	prefs := preferences.NewService(store)
	service := NewService(store, store, prefs)
	return NewHandler(service)
}

func TestHandleExercisesWithoutProfile(t *testing.T) {
	handler := newTestHandler(t, false)

	req := httptest.NewRequest(http.MethodGet, "/v1/recommendations/exercises", nil)
	w := httptest.NewRecorder()

	handler.HandleExercises(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}

	var resp ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Error.Code != "profile_required" {
		t.Errorf("expected code profile_required, got %s", resp.Error.Code)
	}
}

func TestHandleExercises(t *testing.T) {
	handler := newTestHandler(t, true)

	req := httptest.NewRequest(http.MethodGet, "/v1/recommendations/exercises", nil)
	req.Header.Set("Accept-Language", "en-US")
	w := httptest.NewRecorder()

	handler.HandleExercises(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var resp ExercisesResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(resp.Exercises) != 6 {
		t.Fatalf("expected 6 exercises, got %d", len(resp.Exercises))
	}
	if resp.Exercises[0].Name != "Light Walking" {
		t.Errorf("expected English names, got %s", resp.Exercises[0].Name)
	}
}

func TestHandleDiet(t *testing.T) {
	handler := newTestHandler(t, true)

	req := httptest.NewRequest(http.MethodGet, "/v1/recommendations/diet", nil)
	req.Header.Set("Accept-Language", "en")
	w := httptest.NewRecorder()

	handler.HandleDiet(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var resp DietPlan
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	// BMR = 10*82 + 6.25*176 - 5*55 + 5 = 1650, * 1.3 = 2145
	if resp.DailyCalories != 2145 {
		t.Errorf("expected 2145 daily calories, got %d", resp.DailyCalories)
	}
	if resp.BMI != 26.5 {
		t.Errorf("expected BMI 26.5, got %v", resp.BMI)
	}
	if resp.Status != "Overweight" {
		t.Errorf("expected status Overweight, got %s", resp.Status)
	}
}

func TestHandleSummary(t *testing.T) {
	handler := newTestHandler(t, true)

	req := httptest.NewRequest(http.MethodGet, "/v1/recommendations/summary", nil)
	w := httptest.NewRecorder()

	handler.HandleSummary(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var resp SummaryResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(resp.Exercises) != 6 {
		t.Errorf("expected 6 exercises, got %d", len(resp.Exercises))
	}
	if len(resp.Tips) != 6 {
		t.Errorf("expected 6 tips, got %d", len(resp.Tips))
	}
	if resp.Diet.MealsPerDay != "5-6" {
		t.Errorf("expected '5-6' meals per day, got %s", resp.Diet.MealsPerDay)
	}
}
