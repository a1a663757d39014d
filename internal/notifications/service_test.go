package notifications

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/cardiovital/server/internal/storage"
	"github.com/cardiovital/server/internal/storage/memory"
	"github.com/google/uuid"
)

func newTestService(t *testing.T, plan string, tolerance int) (*Service, *memory.MemoryStorage, uuid.UUID) {
	t.Helper()

	store := memory.New()
	ctx := context.Background()

	_, err := store.UpsertProfile(ctx, storage.Profile{
		OwnerUserID: "default",
		Age:         60,
		WeightKg:    78,
		HeightCm:    172,
		Plan:        plan,
	})
	if err != nil {
		t.Fatalf("failed to seed profile: %v", err)
	}

	med := storage.Medication{
		ID:          uuid.New(),
		OwnerUserID: "default",
		Name:        "Losartana",
		Dosage:      "50mg",
		Frequency:   "2x ao dia",
		Times:       []string{"08:00", "20:00"},
	}
	if err := store.CreateMedication(ctx, &med); err != nil {
		t.Fatalf("failed to seed medication: %v", err)
	}

	service := NewService(store, store, store, store, tolerance).
		WithRand(rand.New(rand.NewSource(7)))

	return service, store, med.ID
}

func generateAt(t *testing.T, service *Service, at time.Time) *GenerateResponse {
	t.Helper()

	resp, err := service.Generate(context.Background(), GenerateRequest{OwnerUserID: "default", Now: at})
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	return resp
}

func TestGenerateFiresOnExactMinute(t *testing.T) {
	service, store, _ := newTestService(t, "premium", 0)

	resp := generateAt(t, service, time.Date(2026, 8, 28, 8, 0, 30, 0, time.UTC))

	if resp.Delivered != 1 {
		t.Fatalf("expected 1 delivered, got %+v", resp)
	}

	inbox, err := store.ListNotifications(context.Background(), "default", false, 10, 0)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(inbox) != 1 {
		t.Fatalf("expected 1 inbox entry, got %d", len(inbox))
	}
	if inbox[0].Kind != KindMedicationReminder {
		t.Errorf("expected kind %s, got %s", KindMedicationReminder, inbox[0].Kind)
	}
	if inbox[0].TimeSlot != "08:00" || inbox[0].SourceDate != "2026-08-28" {
		t.Errorf("unexpected slot/date: %s %s", inbox[0].TimeSlot, inbox[0].SourceDate)
	}
}

func TestGenerateDoesNotFireOffMinute(t *testing.T) {
	service, _, _ := newTestService(t, "premium", 0)

	resp := generateAt(t, service, time.Date(2026, 8, 28, 8, 1, 0, 0, time.UTC))

	if resp.Matched != 0 || resp.Delivered != 0 {
		t.Errorf("expected no match one minute late without tolerance, got %+v", resp)
	}
}

func TestGenerateToleranceWindow(t *testing.T) {
	service, _, _ := newTestService(t, "premium", 5)

	resp := generateAt(t, service, time.Date(2026, 8, 28, 8, 4, 0, 0, time.UTC))
	if resp.Delivered != 1 {
		t.Errorf("expected delivery inside the tolerance window, got %+v", resp)
	}

	resp = generateAt(t, service, time.Date(2026, 8, 28, 8, 6, 0, 0, time.UTC))
	if resp.Matched != 0 {
		t.Errorf("expected no match outside the tolerance window, got %+v", resp)
	}
}

func TestGenerateAtMostOncePerDay(t *testing.T) {
	service, store, _ := newTestService(t, "premium", 0)

	at := time.Date(2026, 8, 28, 20, 0, 0, 0, time.UTC)
	generateAt(t, service, at)
	generateAt(t, service, at)

	inbox, _ := store.ListNotifications(context.Background(), "default", false, 10, 0)
	if len(inbox) != 1 {
		t.Errorf("expected the upsert to keep a single entry, got %d", len(inbox))
	}
}

func TestGenerateSuppressedWhenTakenToday(t *testing.T) {
	service, store, medID := newTestService(t, "premium", 0)

	record := storage.TakenRecord{
		OwnerUserID:  "default",
		MedicationID: medID,
		Date:         "2026-08-28",
		Time:         "07:55",
	}
	if err := store.AddTakenRecord(context.Background(), &record); err != nil {
		t.Fatalf("failed to add taken record: %v", err)
	}

	resp := generateAt(t, service, time.Date(2026, 8, 28, 8, 0, 0, 0, time.UTC))

	if resp.Matched != 1 || resp.Skipped != 1 || resp.Delivered != 0 {
		t.Errorf("expected the match to be suppressed, got %+v", resp)
	}
}

func TestGenerateRequiresPaidPlan(t *testing.T) {
	service, _, _ := newTestService(t, "essencial", 0)

	resp := generateAt(t, service, time.Date(2026, 8, 28, 8, 0, 0, 0, time.UTC))

	if resp.Matched != 0 || resp.Delivered != 0 {
		t.Errorf("expected no reminders on the free plan, got %+v", resp)
	}
}

func TestGenerateRespectsRemindersPreference(t *testing.T) {
	service, store, _ := newTestService(t, "elite", 0)

	_, err := store.UpsertPreferences(context.Background(), storage.Preferences{
		OwnerUserID:      "default",
		Language:         "en",
		RemindersEnabled: false,
	})
	if err != nil {
		t.Fatalf("failed to seed preferences: %v", err)
	}

	resp := generateAt(t, service, time.Date(2026, 8, 28, 8, 0, 0, 0, time.UTC))

	if resp.Delivered != 0 {
		t.Errorf("expected no reminders when disabled, got %+v", resp)
	}
}

func TestGenerateUsesOwnerTimezone(t *testing.T) {
	service, store, _ := newTestService(t, "premium", 0)

	_, err := store.UpsertPreferences(context.Background(), storage.Preferences{
		OwnerUserID:      "default",
		Language:         "pt",
		TimeZone:         "America/Sao_Paulo",
		RemindersEnabled: true,
	})
	if err != nil {
		t.Fatalf("failed to seed preferences: %v", err)
	}

	// 11:00 UTC is 08:00 in Sao Paulo (UTC-3)
	resp := generateAt(t, service, time.Date(2026, 8, 28, 11, 0, 0, 0, time.UTC))

	if resp.Delivered != 1 {
		t.Errorf("expected the local 08:00 slot to fire, got %+v", resp)
	}
}

func TestSchedulerRunOnce(t *testing.T) {
	service, store, _ := newTestService(t, "premium", 24*60)

	// A midnight slot with a full-day tolerance matches at any wall time.
	med := storage.Medication{
		ID:          uuid.New(),
		OwnerUserID: "default",
		Name:        "AAS",
		Dosage:      "100mg",
		Frequency:   "1x ao dia",
		Times:       []string{"00:00"},
	}
	if err := store.CreateMedication(context.Background(), &med); err != nil {
		t.Fatalf("failed to seed medication: %v", err)
	}

	scheduler := NewScheduler(service, store)
	scheduler.RunOnce(context.Background())

	count, err := store.UnreadCount(context.Background(), "default")
	if err != nil {
		t.Fatalf("unread count failed: %v", err)
	}
	if count == 0 {
		t.Error("expected the scheduler pass to deliver reminders")
	}
}
