package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/cardiovital/server/internal/storage"
	"github.com/google/uuid"
)

type ReportsMemoryStorage struct {
	mu      sync.RWMutex
	reports map[uuid.UUID]*storage.ReportMeta
	byOwner map[string][]uuid.UUID
}

func NewReportsMemoryStorage() *ReportsMemoryStorage {
	return &ReportsMemoryStorage{
		reports: make(map[uuid.UUID]*storage.ReportMeta),
		byOwner: make(map[string][]uuid.UUID),
	}
}

func (s *ReportsMemoryStorage) CreateReport(ctx context.Context, report *storage.ReportMeta) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if report.ID == uuid.Nil {
		report.ID = uuid.New()
	}
	report.OwnerUserID = strings.TrimSpace(report.OwnerUserID)
	if report.CreatedAt.IsZero() {
		report.CreatedAt = time.Now().UTC()
	}

	clone := *report
	clone.Data = append([]byte(nil), report.Data...)
	s.reports[clone.ID] = &clone
	s.byOwner[clone.OwnerUserID] = append(s.byOwner[clone.OwnerUserID], clone.ID)

	return nil
}

func (s *ReportsMemoryStorage) GetReport(ctx context.Context, ownerUserID string, id uuid.UUID) (storage.ReportMeta, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.reports[id]
	if !ok || r.OwnerUserID != strings.TrimSpace(ownerUserID) {
		return storage.ReportMeta{}, false, nil
	}

	clone := *r
	clone.Data = append([]byte(nil), r.Data...)
	return clone, true, nil
}

func (s *ReportsMemoryStorage) ListReports(ctx context.Context, ownerUserID string, limit, offset int) ([]storage.ReportMeta, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.byOwner[strings.TrimSpace(ownerUserID)]

	result := make([]storage.ReportMeta, 0, len(ids))
	for _, id := range ids {
		if r, ok := s.reports[id]; ok {
			clone := *r
			clone.Data = nil // metadata only in listings
			result = append(result, clone)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	if offset >= len(result) {
		return []storage.ReportMeta{}, nil
	}
	result = result[offset:]
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}

	return result, nil
}

func (s *ReportsMemoryStorage) DeleteReport(ctx context.Context, ownerUserID string, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ownerUserID = strings.TrimSpace(ownerUserID)

	r, ok := s.reports[id]
	if !ok || r.OwnerUserID != ownerUserID {
		return ErrNotFound
	}

	delete(s.reports, id)

	ids := s.byOwner[ownerUserID]
	for i, rid := range ids {
		if rid == id {
			s.byOwner[ownerUserID] = append(ids[:i], ids[i+1:]...)
			break
		}
	}

	return nil
}
