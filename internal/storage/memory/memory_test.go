package memory

import (
	"context"
	"testing"

	"github.com/cardiovital/server/internal/storage"
	"github.com/google/uuid"
)

func TestProfileRoundTrip(t *testing.T) {
	store := New()
	ctx := context.Background()

	_, ok, err := store.GetProfile(ctx, "u1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if ok {
		t.Fatal("expected no profile")
	}

	saved, err := store.UpsertProfile(ctx, storage.Profile{
		OwnerUserID: " u1 ",
		Age:         55,
		WeightKg:    82,
		HeightCm:    176,
		Plan:        "premium",
	})
	if err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	if saved.OwnerUserID != "u1" {
		t.Errorf("expected trimmed owner, got %q", saved.OwnerUserID)
	}
	if saved.CreatedAt.IsZero() || saved.UpdatedAt.IsZero() {
		t.Error("timestamps should be set")
	}

	got, ok, err := store.GetProfile(ctx, "u1")
	if err != nil || !ok {
		t.Fatalf("get after upsert: ok=%v err=%v", ok, err)
	}
	if got.Plan != "premium" {
		t.Errorf("expected premium, got %q", got.Plan)
	}

	owners, err := store.ListProfileOwners(ctx)
	if err != nil {
		t.Fatalf("list owners failed: %v", err)
	}
	if len(owners) != 1 || owners[0] != "u1" {
		t.Errorf("expected [u1], got %v", owners)
	}
}

func TestDeleteMedicationCascadesTakenRecords(t *testing.T) {
	store := New()
	ctx := context.Background()

	med := &storage.Medication{
		OwnerUserID: "u1",
		Name:        "Losartana",
		Dosage:      "50mg",
		Times:       []string{"08:00"},
	}
	if err := store.CreateMedication(ctx, med); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := store.AddTakenRecord(ctx, &storage.TakenRecord{
		OwnerUserID:  "u1",
		MedicationID: med.ID,
		Date:         "2026-03-14",
		Time:         "08:05",
	}); err != nil {
		t.Fatalf("add record failed: %v", err)
	}

	if err := store.DeleteMedication(ctx, "u1", med.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	records, err := store.ListTakenRecords(ctx, "u1", med.ID, "", "")
	if err != nil {
		t.Fatalf("list records failed: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected cascade delete, got %d records", len(records))
	}

	if err := store.DeleteMedication(ctx, "u1", med.ID); err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestMedicationOwnershipIsolation(t *testing.T) {
	store := New()
	ctx := context.Background()

	med := &storage.Medication{OwnerUserID: "alice", Name: "AAS", Dosage: "100mg", Times: []string{"08:00"}}
	if err := store.CreateMedication(ctx, med); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, ok, _ := store.GetMedication(ctx, "bob", med.ID); ok {
		t.Error("bob should not see alice's medication")
	}
	if err := store.DeleteMedication(ctx, "bob", med.ID); err != ErrNotFound {
		t.Errorf("expected ErrNotFound for foreign delete, got %v", err)
	}
	if _, ok, _ := store.GetMedication(ctx, "alice", med.ID); !ok {
		t.Error("alice's medication should survive")
	}
}

func TestUpsertNotificationDedupesSlot(t *testing.T) {
	store := New()
	ctx := context.Background()
	medID := uuid.New()

	first := &storage.Notification{
		OwnerUserID:  "u1",
		MedicationID: medID,
		TimeSlot:     "08:00",
		SourceDate:   "2026-03-14",
		Kind:         "medication_reminder",
		Title:        "Hora do remédio",
		Body:         "Losartana 50mg",
	}
	if err := store.UpsertNotification(ctx, first); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	// Same slot on the same day updates in place instead of duplicating.
	second := &storage.Notification{
		OwnerUserID:  "u1",
		MedicationID: medID,
		TimeSlot:     "08:00",
		SourceDate:   "2026-03-14",
		Kind:         "medication_reminder",
		Title:        "Hora do remédio",
		Body:         "Losartana 100mg",
	}
	if err := store.UpsertNotification(ctx, second); err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}

	list, err := store.ListNotifications(ctx, "u1", false, 10, 0)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(list))
	}
	if list[0].Body != "Losartana 100mg" {
		t.Errorf("expected updated body, got %q", list[0].Body)
	}

	// A different day is a fresh reminder.
	third := &storage.Notification{
		OwnerUserID:  "u1",
		MedicationID: medID,
		TimeSlot:     "08:00",
		SourceDate:   "2026-03-15",
		Kind:         "medication_reminder",
		Title:        "Hora do remédio",
		Body:         "Losartana 100mg",
	}
	if err := store.UpsertNotification(ctx, third); err != nil {
		t.Fatalf("third upsert failed: %v", err)
	}
	count, err := store.UnreadCount(ctx, "u1")
	if err != nil {
		t.Fatalf("unread count failed: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2 unread, got %d", count)
	}
}

func TestMarkReadAndMarkAllRead(t *testing.T) {
	store := New()
	ctx := context.Background()

	var ids []uuid.UUID
	for i := 0; i < 3; i++ {
		n := &storage.Notification{
			OwnerUserID:  "u1",
			MedicationID: uuid.New(),
			TimeSlot:     "08:00",
			SourceDate:   "2026-03-14",
			Kind:         "medication_reminder",
			Title:        "Hora do remédio",
		}
		if err := store.UpsertNotification(ctx, n); err != nil {
			t.Fatalf("upsert failed: %v", err)
		}
		ids = append(ids, n.ID)
	}

	marked, err := store.MarkRead(ctx, "u1", ids[:1])
	if err != nil {
		t.Fatalf("mark read failed: %v", err)
	}
	if marked != 1 {
		t.Errorf("expected 1 marked, got %d", marked)
	}

	count, _ := store.UnreadCount(ctx, "u1")
	if count != 2 {
		t.Errorf("expected 2 unread, got %d", count)
	}

	marked, err = store.MarkAllRead(ctx, "u1")
	if err != nil {
		t.Fatalf("mark all read failed: %v", err)
	}
	if marked != 2 {
		t.Errorf("expected 2 marked, got %d", marked)
	}

	unread, err := store.ListNotifications(ctx, "u1", true, 10, 0)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(unread) != 0 {
		t.Errorf("expected no unread left, got %d", len(unread))
	}
}

func TestMealAnalysisHistoryCap(t *testing.T) {
	store := New()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		a := &storage.MealAnalysis{
			OwnerUserID: "u1",
			Description: "meal",
			Score:       70,
		}
		if err := store.CreateMealAnalysis(ctx, a, 3); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	list, err := store.ListMealAnalyses(ctx, "u1", 10)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(list) != 3 {
		t.Errorf("expected history capped at 3, got %d", len(list))
	}
}
