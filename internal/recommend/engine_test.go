package recommend

import (
	"math"
	"testing"

	"github.com/cardiovital/server/internal/i18n"
)

func TestBMIStatus(t *testing.T) {
	tests := []struct {
		bmi    float64
		status string
	}{
		{17.0, "underweight"},
		{18.5, "normal"},
		{24.9, "normal"},
		{25.0, "overweight"},
		{29.9, "overweight"},
		{30.0, "obese"},
	}

	for _, tt := range tests {
		if got := BMIStatus(tt.bmi); got != tt.status {
			t.Errorf("BMIStatus(%v) = %s, want %s", tt.bmi, got, tt.status)
		}
	}
}

func TestDailyCalories(t *testing.T) {
	// BMR = 10*80 + 6.25*180 - 5*40 + 5 = 1730, * 1.3 = 2249
	got := DailyCalories(80, 180, 40)
	if got != 2249 {
		t.Errorf("expected 2249 calories, got %d", got)
	}
}

func TestExercisesCalories(t *testing.T) {
	exercises := Exercises(80, 40, i18n.English)

	if len(exercises) != 6 {
		t.Fatalf("expected 6 exercises, got %d", len(exercises))
	}

	wantCalories := []int{24, 8, 4, 40, 32, 16}
	for i, e := range exercises {
		if e.Calories != wantCalories[i] {
			t.Errorf("exercise %d: expected %d calories, got %d", i, wantCalories[i], e.Calories)
		}
	}
}

func TestExercisesSeniorDuration(t *testing.T) {
	young := Exercises(70, 45, i18n.English)
	senior := Exercises(70, 65, i18n.English)

	if young[0].DurationMinutes != 20 {
		t.Errorf("expected 20 minutes of walking at 45, got %d", young[0].DurationMinutes)
	}
	if senior[0].DurationMinutes != 15 {
		t.Errorf("expected 15 minutes of walking at 65, got %d", senior[0].DurationMinutes)
	}
}

func TestExercisesOverweightDuration(t *testing.T) {
	// 90 kg at the 1.70 m reference height is BMI 31.1, overweight
	exercises := Exercises(90, 40, i18n.English)

	if exercises[3].DurationMinutes != 15 {
		t.Errorf("expected reduced bike duration of 15, got %d", exercises[3].DurationMinutes)
	}
}

func TestExercisesRecommendedFlags(t *testing.T) {
	exercises := Exercises(70, 40, i18n.Portuguese)

	for i, e := range exercises {
		want := i != 3
		if e.Recommended != want {
			t.Errorf("exercise %d: expected recommended=%v, got %v", i, want, e.Recommended)
		}
	}
}

func TestDiet(t *testing.T) {
	plan := Diet(70, 175, 50, i18n.English)

	wantBMI := math.Round(70/(1.75*1.75)*10) / 10
	if plan.BMI != wantBMI {
		t.Errorf("expected BMI %v, got %v", wantBMI, plan.BMI)
	}
	if plan.Status != "Normal weight" {
		t.Errorf("expected status 'Normal weight', got %s", plan.Status)
	}
	if plan.MealsPerDay != "5-6" {
		t.Errorf("expected '5-6' meals per day, got %s", plan.MealsPerDay)
	}
}

func TestTipsPriorities(t *testing.T) {
	tips := Tips(70, 50, 2, i18n.French)

	if len(tips) != 6 {
		t.Fatalf("expected 6 tips, got %d", len(tips))
	}

	for i, tip := range tips {
		want := "medium"
		if i < 3 {
			want = "high"
		}
		if tip.Priority != want {
			t.Errorf("tip %d: expected priority %s, got %s", i, want, tip.Priority)
		}
	}
}

func TestContentCoversAllLanguages(t *testing.T) {
	for _, lang := range i18n.Supported {
		if _, ok := exerciseNames[lang]; !ok {
			t.Errorf("missing exercise names for %s", lang)
		}
		if _, ok := statusLabels[lang]; !ok {
			t.Errorf("missing status labels for %s", lang)
		}
		if _, ok := tipRows[lang]; !ok {
			t.Errorf("missing tips for %s", lang)
		}
	}
}
