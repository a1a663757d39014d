package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cardiovital/server/internal/config"
)

func newTestServer() *Server {
	cfg := &config.Config{Port: 8080, AuthMode: "none", MealHistoryLimit: 50, ReportsMaxRangeDays: 90}
	return New(cfg)
}

func TestHealthz(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()

	srv.mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var resp map[string]string
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp["status"] != "ok" {
		t.Errorf("expected status=ok, got %s", resp["status"])
	}
}

func TestHealthzMethodNotAllowed(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/healthz", nil)
	w := httptest.NewRecorder()

	srv.mux.ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected status 405, got %d", w.Code)
	}
}

func TestPlanGateBlocksFreeTier(t *testing.T) {
	srv := newTestServer()

	// Without a profile the caller is on the free tier.
	req := httptest.NewRequest(http.MethodPost, "/v1/meals/analyses", strings.NewReader(`{"description":"salada"}`))
	w := httptest.NewRecorder()
	srv.mux.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for free tier, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "plan_required") {
		t.Errorf("expected plan_required error, got %s", w.Body.String())
	}

	// Medication tracking stays free.
	req = httptest.NewRequest(http.MethodGet, "/v1/medications", nil)
	w = httptest.NewRecorder()
	srv.mux.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("expected 200 for medications on free tier, got %d", w.Code)
	}
}

func TestPlanGateAllowsPremium(t *testing.T) {
	srv := newTestServer()

	// Upgrade by creating a premium profile.
	body := `{"age":55,"weight_kg":82,"height_cm":176,"plan":"premium"}`
	req := httptest.NewRequest(http.MethodPut, "/v1/profile", strings.NewReader(body))
	w := httptest.NewRecorder()
	srv.mux.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("profile upsert failed: %d %s", w.Code, w.Body.String())
	}

	req = httptest.NewRequest(http.MethodPost, "/v1/meals/analyses", strings.NewReader(`{"description":"salada com frango"}`))
	w = httptest.NewRecorder()
	srv.mux.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Errorf("expected 201 for premium, got %d: %s", w.Code, w.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/v1/recommendations/exercises", nil)
	w = httptest.NewRecorder()
	srv.mux.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("expected 200 for exercises, got %d: %s", w.Code, w.Body.String())
	}
}

func TestFreeTierKeepsBasicRecommendations(t *testing.T) {
	srv := newTestServer()

	body := `{"age":55,"weight_kg":82,"height_cm":176}`
	req := httptest.NewRequest(http.MethodPut, "/v1/profile", strings.NewReader(body))
	w := httptest.NewRecorder()
	srv.mux.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("profile upsert failed: %d %s", w.Code, w.Body.String())
	}

	// Tips and summary are open to the free tier.
	for _, path := range []string{"/v1/recommendations/tips", "/v1/recommendations/summary"} {
		req = httptest.NewRequest(http.MethodGet, path, nil)
		w = httptest.NewRecorder()
		srv.mux.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", path, w.Code)
		}
	}

	// Exercises are not.
	req = httptest.NewRequest(http.MethodGet, "/v1/recommendations/exercises", nil)
	w = httptest.NewRecorder()
	srv.mux.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403 for exercises on free tier, got %d", w.Code)
	}
}
