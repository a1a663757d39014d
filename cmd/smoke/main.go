package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	_ "github.com/joho/godotenv/autoload"
)

const (
	defaultAPIBase = "http://localhost:8080"
)

var (
	apiBase    string
	token      string
	client     = &http.Client{Timeout: 30 * time.Second}
	testDate   string
	createdIDs = make(map[string]string) // track created resources for cleanup
)

func main() {
	fmt.Println("=== CardioVital E2E Smoke Test ===")
	fmt.Println()

	apiBase = getEnv("API_BASE_URL", defaultAPIBase)
	token = getEnv("SMOKE_TOKEN", "")

	fmt.Printf("API Base: %s\n", apiBase)
	fmt.Printf("Token: %s\n", maskString(token))
	fmt.Println()

	testDate = time.Now().Format("2006-01-02")

	steps := []struct {
		name string
		fn   func() error
	}{
		{"Healthz", testHealthz},
		{"Upsert Profile (premium)", testUpsertProfile},
		{"Create Medication", testCreateMedication},
		{"List Medications", testListMedications},
		{"Mark Taken", testMarkTaken},
		{"Get Exercises", testGetExercises},
		{"Get Diet", testGetDiet},
		{"Send Coach Message", testSendCoachMessage},
		{"Analyze Meal", testAnalyzeMeal},
		{"Generate Reminders", testGenerateReminders},
		{"List Plans", testListPlans},
		{"Create Report", testCreateReport},
		{"List Reports", testListReports},
		{"Download Report", testDownloadReport},
		{"Delete Report", testDeleteReport},
		{"Delete Medication", testDeleteMedication},
	}

	failed := false
	for i, step := range steps {
		fmt.Printf("[%d/%d] %s... ", i+1, len(steps), step.name)
		if err := step.fn(); err != nil {
			fmt.Printf("FAILED\n")
			fmt.Printf("  Error: %v\n\n", err)
			failed = true
			break
		}
		fmt.Printf("OK\n")
	}

	fmt.Println()
	if failed {
		fmt.Println("SMOKE TEST FAILED")
		os.Exit(1)
	}
	fmt.Println("SMOKE TEST PASSED")
}

func testHealthz() error {
	resp, err := client.Get(apiBase + "/healthz")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status=%d", resp.StatusCode)
	}
	return nil
}

func testUpsertProfile() error {
	payload := map[string]interface{}{
		"age":       55,
		"weight_kg": 82,
		"height_cm": 176,
		"plan":      "premium",
	}

	var result struct {
		Plan string `json:"plan"`
	}
	if err := doJSON("PUT", "/v1/profile", payload, http.StatusOK, &result); err != nil {
		return err
	}
	if result.Plan != "premium" {
		return fmt.Errorf("expected plan=premium, got %q", result.Plan)
	}
	return nil
}

func testCreateMedication() error {
	payload := map[string]interface{}{
		"name":      "Losartana",
		"dosage":    "50mg",
		"frequency": "2x ao dia",
		"times":     []string{"08:00", "20:00"},
	}

	var result struct {
		ID string `json:"id"`
	}
	if err := doJSON("POST", "/v1/medications", payload, http.StatusCreated, &result); err != nil {
		return err
	}
	if result.ID == "" {
		return fmt.Errorf("no medication ID returned")
	}

	createdIDs["medication"] = result.ID
	return nil
}

func testListMedications() error {
	var result struct {
		Medications []struct {
			ID string `json:"id"`
		} `json:"medications"`
	}
	if err := doJSON("GET", "/v1/medications", nil, http.StatusOK, &result); err != nil {
		return err
	}
	if len(result.Medications) == 0 {
		return fmt.Errorf("no medications found")
	}
	return nil
}

func testMarkTaken() error {
	payload := map[string]interface{}{
		"date": testDate,
		"time": "08:00",
	}
	path := "/v1/medications/" + createdIDs["medication"] + "/taken"
	return doJSON("POST", path, payload, http.StatusOK, nil)
}

func testGetExercises() error {
	var result struct {
		Exercises []struct {
			ID int `json:"id"`
		} `json:"exercises"`
	}
	if err := doJSON("GET", "/v1/recommendations/exercises", nil, http.StatusOK, &result); err != nil {
		return err
	}
	if len(result.Exercises) != 6 {
		return fmt.Errorf("expected 6 exercises, got %d", len(result.Exercises))
	}
	return nil
}

func testGetDiet() error {
	var result struct {
		DailyCalories int `json:"daily_calories"`
	}
	if err := doJSON("GET", "/v1/recommendations/diet", nil, http.StatusOK, &result); err != nil {
		return err
	}
	if result.DailyCalories <= 0 {
		return fmt.Errorf("daily calories is %d", result.DailyCalories)
	}
	return nil
}

func testSendCoachMessage() error {
	payload := map[string]interface{}{
		"message": "qual o meu peso ideal?",
	}

	var result struct {
		Reply struct {
			Content string `json:"content"`
		} `json:"reply"`
	}
	if err := doJSON("POST", "/v1/coach/messages", payload, http.StatusCreated, &result); err != nil {
		return err
	}
	if result.Reply.Content == "" {
		return fmt.Errorf("empty coach reply")
	}
	return nil
}

func testAnalyzeMeal() error {
	payload := map[string]interface{}{
		"description": "salada com frango grelhado",
	}

	var result struct {
		Score int `json:"score"`
	}
	if err := doJSON("POST", "/v1/meals/analyses", payload, http.StatusCreated, &result); err != nil {
		return err
	}
	if result.Score < 60 || result.Score > 89 {
		return fmt.Errorf("score out of range: %d", result.Score)
	}
	return nil
}

func testGenerateReminders() error {
	return doJSON("POST", "/v1/inbox/generate", map[string]interface{}{}, http.StatusOK, nil)
}

func testListPlans() error {
	var result struct {
		Plans []struct {
			ID string `json:"id"`
		} `json:"plans"`
	}
	if err := doJSON("GET", "/v1/plans", nil, http.StatusOK, &result); err != nil {
		return err
	}
	if len(result.Plans) != 3 {
		return fmt.Errorf("expected 3 plans, got %d", len(result.Plans))
	}
	return nil
}

func testCreateReport() error {
	payload := map[string]interface{}{
		"from": time.Now().AddDate(0, 0, -7).Format("2006-01-02"),
		"to":   testDate,
	}

	var result struct {
		ID        string `json:"id"`
		SizeBytes int64  `json:"size_bytes"`
	}
	if err := doJSON("POST", "/v1/reports", payload, http.StatusCreated, &result); err != nil {
		return err
	}
	if result.SizeBytes < 10 {
		return fmt.Errorf("report size is %d bytes (too small)", result.SizeBytes)
	}

	createdIDs["report"] = result.ID
	return nil
}

func testListReports() error {
	var result struct {
		Reports []struct {
			ID string `json:"id"`
		} `json:"reports"`
	}
	if err := doJSON("GET", "/v1/reports", nil, http.StatusOK, &result); err != nil {
		return err
	}
	if len(result.Reports) == 0 {
		return fmt.Errorf("no reports found")
	}
	return nil
}

func testDownloadReport() error {
	reportID := createdIDs["report"]
	if reportID == "" {
		return fmt.Errorf("no report ID to download")
	}

	req, err := http.NewRequest("GET", apiBase+"/v1/reports/"+reportID+"/download", nil)
	if err != nil {
		return err
	}
	addAuth(req)

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("status=%d body=%s", resp.StatusCode, string(body))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read body: %w", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		return fmt.Errorf("response is not a PDF (%d bytes)", len(data))
	}
	return nil
}

func testDeleteReport() error {
	return doJSON("DELETE", "/v1/reports/"+createdIDs["report"], nil, http.StatusNoContent, nil)
}

func testDeleteMedication() error {
	return doJSON("DELETE", "/v1/medications/"+createdIDs["medication"], nil, http.StatusNoContent, nil)
}

// doJSON sends a JSON request and decodes the response into out (when non-nil).
func doJSON(method, path string, payload interface{}, wantStatus int, out interface{}) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, apiBase+path, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	addAuth(req)

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("status=%d body=%s", resp.StatusCode, string(data))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode failed: %w", err)
		}
	}
	return nil
}

func addAuth(req *http.Request) {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func maskString(s string) string {
	if s == "" {
		return "(not set)"
	}
	if len(s) <= 8 {
		return "****"
	}
	return s[:4] + "****" + s[len(s)-4:]
}
