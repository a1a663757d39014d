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

type MealAnalysesMemoryStorage struct {
	mu      sync.RWMutex
	byOwner map[string][]storage.MealAnalysis // newest first
}

func NewMealAnalysesMemoryStorage() *MealAnalysesMemoryStorage {
	return &MealAnalysesMemoryStorage{
		byOwner: make(map[string][]storage.MealAnalysis),
	}
}

func (s *MealAnalysesMemoryStorage) CreateMealAnalysis(ctx context.Context, a *storage.MealAnalysis, maxHistory int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	a.OwnerUserID = strings.TrimSpace(a.OwnerUserID)
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}

	clone := cloneMealAnalysis(a)

	// Prepend, then cap history
	list := append([]storage.MealAnalysis{clone}, s.byOwner[a.OwnerUserID]...)
	if maxHistory > 0 && len(list) > maxHistory {
		list = list[:maxHistory]
	}
	s.byOwner[a.OwnerUserID] = list

	return nil
}

func (s *MealAnalysesMemoryStorage) ListMealAnalyses(ctx context.Context, ownerUserID string, limit int) ([]storage.MealAnalysis, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := s.byOwner[strings.TrimSpace(ownerUserID)]

	result := make([]storage.MealAnalysis, 0, len(list))
	for i := range list {
		result = append(result, cloneMealAnalysis(&list[i]))
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}

	return result, nil
}

func (s *MealAnalysesMemoryStorage) DeleteMealAnalysis(ctx context.Context, ownerUserID string, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ownerUserID = strings.TrimSpace(ownerUserID)
	list := s.byOwner[ownerUserID]

	for i, a := range list {
		if a.ID == id {
			s.byOwner[ownerUserID] = append(list[:i], list[i+1:]...)
			return nil
		}
	}

	return ErrNotFound
}

func cloneMealAnalysis(a *storage.MealAnalysis) storage.MealAnalysis {
	clone := *a
	clone.PositivePoints = append([]string(nil), a.PositivePoints...)
	clone.Improvements = append([]string(nil), a.Improvements...)
	clone.Recommendations = append([]string(nil), a.Recommendations...)
	return clone
}
