package reports

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/cardiovital/server/internal/storage"
	"github.com/cardiovital/server/internal/storage/memory"
	"github.com/google/uuid"
)

func newTestService(t *testing.T) (*Service, *memory.MemoryStorage) {
	t.Helper()

	store := memory.New()
	ctx := context.Background()

	_, err := store.UpsertProfile(ctx, storage.Profile{
		OwnerUserID: "default",
		Age:         55,
		WeightKg:    82,
		HeightCm:    176,
		Plan:        "premium",
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

	for _, date := range []string{"2026-01-01", "2026-01-02"} {
		rec := storage.TakenRecord{
			ID:           uuid.New(),
			OwnerUserID:  "default",
			MedicationID: med.ID,
			Date:         date,
			Time:         "08:05",
		}
		if err := store.AddTakenRecord(ctx, &rec); err != nil {
			t.Fatalf("failed to seed taken record: %v", err)
		}
	}

	generator := NewGenerator(store, store)
	service := NewService(store, generator, nil, 90, 0)

	return service, store
}

func TestCreateReportGeneratesPDF(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	dto, err := service.CreateReport(ctx, CreateReportRequest{From: "2026-01-01", To: "2026-01-07"}, "http://localhost:8080")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if dto.Status != StatusReady {
		t.Errorf("expected status %q, got %q", StatusReady, dto.Status)
	}
	if dto.SizeBytes == 0 {
		t.Error("expected non-zero size")
	}
	if dto.DownloadURL == "" {
		t.Error("expected a download URL")
	}

	data, err := service.GetReportData(ctx, dto.ID)
	if err != nil {
		t.Fatalf("download failed: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("expected PDF magic bytes, got %q", data[:min(len(data), 8)])
	}
}

func TestCreateReportValidation(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	cases := []struct {
		name     string
		from, to string
		wantErr  error
	}{
		{"bad from", "01/01/2026", "2026-01-07", ErrInvalidDate},
		{"bad to", "2026-01-01", "tomorrow", ErrInvalidDate},
		{"inverted range", "2026-01-07", "2026-01-01", ErrInvalidDateRange},
		{"range too large", "2026-01-01", "2026-06-01", ErrRangeTooLarge},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.CreateReport(ctx, CreateReportRequest{From: tc.from, To: tc.to}, "http://localhost:8080")
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestCreateReportRequiresProfile(t *testing.T) {
	store := memory.New()
	generator := NewGenerator(store, store)
	service := NewService(store, generator, nil, 90, 0)

	_, err := service.CreateReport(context.Background(), CreateReportRequest{From: "2026-01-01", To: "2026-01-07"}, "http://localhost:8080")
	if !errors.Is(err, ErrProfileRequired) {
		t.Errorf("expected ErrProfileRequired, got %v", err)
	}
}

func TestListReportsNewestFirst(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	first, err := service.CreateReport(ctx, CreateReportRequest{From: "2026-01-01", To: "2026-01-07"}, "http://localhost:8080")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	second, err := service.CreateReport(ctx, CreateReportRequest{From: "2026-01-08", To: "2026-01-14"}, "http://localhost:8080")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	reports, err := service.ListReports(ctx, 0, 0, "http://localhost:8080")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(reports) != 2 {
		t.Fatalf("expected 2 reports, got %d", len(reports))
	}
	if reports[0].ID != second.ID || reports[1].ID != first.ID {
		t.Error("expected newest report first")
	}
}

func TestDeleteReport(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	dto, err := service.CreateReport(ctx, CreateReportRequest{From: "2026-01-01", To: "2026-01-07"}, "http://localhost:8080")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := service.DeleteReport(ctx, dto.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := service.DeleteReport(ctx, dto.ID); !errors.Is(err, ErrReportNotFound) {
		t.Errorf("expected ErrReportNotFound, got %v", err)
	}
	if _, err := service.GetReportData(ctx, dto.ID); !errors.Is(err, ErrReportNotFound) {
		t.Errorf("expected ErrReportNotFound after delete, got %v", err)
	}
}
