package recommend

// Exercise is one entry of the personalized exercise catalog.
type Exercise struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	DurationMinutes int    `json:"duration_minutes"`
	Intensity       string `json:"intensity"`
	Calories        int    `json:"calories"`
	Description     string `json:"description"`
	Icon            string `json:"icon"`
	Recommended     bool   `json:"recommended"`
}

// ExercisesResponse is the body of GET /v1/recommendations/exercises.
type ExercisesResponse struct {
	Exercises []Exercise `json:"exercises"`
}

// DietPlan summarizes the daily calorie target and BMI classification.
type DietPlan struct {
	DailyCalories int     `json:"daily_calories"`
	BMI           float64 `json:"bmi"`
	Status        string  `json:"status"`
	MealsPerDay   string  `json:"meals_per_day"`
}

// Tip is one health tip card.
type Tip struct {
	ID       int    `json:"id"`
	Category string `json:"category"`
	Title    string `json:"title"`
	Message  string `json:"message"`
	Tip      string `json:"tip"`
	Priority string `json:"priority"`
}

// TipsResponse is the body of GET /v1/recommendations/tips.
type TipsResponse struct {
	Tips []Tip `json:"tips"`
}

// SummaryResponse bundles every recommendation block in one call.
type SummaryResponse struct {
	Exercises []Exercise `json:"exercises"`
	Diet      DietPlan   `json:"diet"`
	Tips      []Tip      `json:"tips"`
}

// ErrorResponse is the error envelope.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
