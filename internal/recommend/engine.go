// Package recommend computes deterministic exercise, diet, and tip
// recommendations from profile biometrics.
package recommend

import (
	"math"

	"github.com/cardiovital/server/internal/i18n"
)

// The exercise engine derives its overweight flag from a fixed reference
// height rather than the profile height. The diet engine uses the real
// height. The divergence is kept on purpose, see DESIGN.md.
const referenceHeightM = 1.70

// Activity factor applied to BMR for the daily calorie target.
const activityFactor = 1.3

// BMI is weight in kilograms over squared height in meters.
func BMI(weightKg, heightCm float64) float64 {
	heightM := heightCm / 100
	return weightKg / (heightM * heightM)
}

// BMIStatus buckets a BMI value. Boundary values take the higher bucket.
func BMIStatus(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "underweight"
	case bmi < 25:
		return "normal"
	case bmi < 30:
		return "overweight"
	default:
		return "obese"
	}
}

// BMR estimates basal metabolic rate with Mifflin-St Jeor male
// coefficients. The profile carries no sex field.
func BMR(weightKg, heightCm float64, age int) float64 {
	return 10*weightKg + 6.25*heightCm - 5*float64(age) + 5
}

// DailyCalories is BMR scaled by the activity factor, rounded.
func DailyCalories(weightKg, heightCm float64, age int) int {
	return int(math.Round(BMR(weightKg, heightCm, age) * activityFactor))
}

var exerciseCoefficients = [6]float64{0.3, 0.1, 0.05, 0.5, 0.4, 0.2}

var exerciseIcons = [6]string{"🚶", "🧘", "💨", "🚴", "🏊", "🧘‍♂️"}

// Exercises builds the 6-archetype catalog personalized by age and weight.
func Exercises(weightKg float64, age int, lang i18n.Language) []Exercise {
	bmi := weightKg / (referenceHeightM * referenceHeightM)
	overweight := bmi > 25
	senior := age > 60

	durations := [6]int{20, 10, 5, 25, 20, 15}
	if senior {
		durations[0] = 15
	}
	if overweight {
		durations[3] = 15
	}

	names := exerciseNames[lang]
	descriptions := exerciseDescriptions[lang]
	intensities := intensityLabels[lang]

	result := make([]Exercise, 0, 6)
	for i := 0; i < 6; i++ {
		result = append(result, Exercise{
			ID:              i + 1,
			Name:            names[i],
			DurationMinutes: durations[i],
			Intensity:       intensities[i],
			Calories:        int(math.Round(weightKg * exerciseCoefficients[i])),
			Description:     descriptions[i],
			Icon:            exerciseIcons[i],
			Recommended:     i != 3,
		})
	}

	return result
}

// Diet computes the daily calorie target and BMI summary.
func Diet(weightKg, heightCm float64, age int, lang i18n.Language) DietPlan {
	bmi := BMI(weightKg, heightCm)

	return DietPlan{
		DailyCalories: DailyCalories(weightKg, heightCm, age),
		BMI:           math.Round(bmi*10) / 10,
		Status:        statusLabels[lang][BMIStatus(bmi)],
		MealsPerDay:   "5-6",
	}
}

// Tips returns the 6 coach tips for a language. The first 3 are high
// priority. The biometric parameters do not alter the output today; they
// are kept for call-site stability.
func Tips(weightKg float64, age, medicationCount int, lang i18n.Language) []Tip {
	_ = weightKg
	_ = age
	_ = medicationCount

	rows := tipRows[lang]

	result := make([]Tip, 0, len(rows))
	for i, row := range rows {
		priority := "medium"
		if i < 3 {
			priority = "high"
		}
		result = append(result, Tip{
			ID:       i + 1,
			Category: row.category,
			Title:    row.title,
			Message:  row.message,
			Tip:      row.tip,
			Priority: priority,
		})
	}

	return result
}
