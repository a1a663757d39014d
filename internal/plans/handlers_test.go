package plans

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

func newTestHandler(t *testing.T, timezone string) *Handler {
	t.Helper()

	store := memory.New()
	if timezone != "" {
		_, err := store.UpsertPreferences(context.Background(), storage.Preferences{
			OwnerUserID:      "default",
			Language:         "pt",
			TimeZone:         timezone,
			RemindersEnabled: true,
		})
		if err != nil {
			t.Fatalf("failed to seed preferences: %v", err)
		}
	}

	return NewHandler(preferences.NewService(store))
}

func listPlans(t *testing.T, handler *Handler, url, acceptLanguage string) PlansResponse {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, url, nil)
	if acceptLanguage != "" {
		req.Header.Set("Accept-Language", acceptLanguage)
	}
	rec := httptest.NewRecorder()
	handler.HandleList(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp PlansResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return resp
}

func TestHandleListUsesStoredTimezone(t *testing.T) {
	handler := newTestHandler(t, "Europe/Amsterdam")

	resp := listPlans(t, handler, "/v1/plans", "")
	if resp.Currency != "EUR" {
		t.Errorf("expected EUR for Amsterdam, got %s", resp.Currency)
	}
	if resp.Plans[1].Price != 2.7 {
		t.Errorf("expected premium at 2.70 EUR, got %v", resp.Plans[1].Price)
	}
}

func TestHandleListTimezoneOverride(t *testing.T) {
	handler := newTestHandler(t, "Europe/Amsterdam")

	resp := listPlans(t, handler, "/v1/plans?timezone=Asia/Tokyo", "")
	if resp.Currency != "JPY" {
		t.Errorf("expected JPY for Tokyo, got %s", resp.Currency)
	}
}

func TestHandleListCurrencyOverride(t *testing.T) {
	handler := newTestHandler(t, "America/Sao_Paulo")

	resp := listPlans(t, handler, "/v1/plans?currency=usd", "")
	if resp.Currency != "USD" {
		t.Errorf("expected USD override, got %s", resp.Currency)
	}
	if resp.Plans[1].Price != 3.0 {
		t.Errorf("expected premium at 3.00 USD, got %v", resp.Plans[1].Price)
	}
}

func TestHandleListDefaultsToBrazil(t *testing.T) {
	handler := newTestHandler(t, "America/Sao_Paulo")

	resp := listPlans(t, handler, "/v1/plans", "")
	if resp.Currency != "BRL" {
		t.Errorf("expected BRL for Sao Paulo, got %s", resp.Currency)
	}
	if resp.Plans[1].Price != 14.99 {
		t.Errorf("expected premium at 14.99 BRL, got %v", resp.Plans[1].Price)
	}
}

func TestHandleListLocalizesCopy(t *testing.T) {
	handler := newTestHandler(t, "")

	// No stored preference, so the Accept-Language header decides.
	resp := listPlans(t, handler, "/v1/plans", "de-DE")
	if resp.Plans[0].Name != "Essenziell" {
		t.Errorf("expected German copy, got %q", resp.Plans[0].Name)
	}
}
