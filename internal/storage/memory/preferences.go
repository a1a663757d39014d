package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/cardiovital/server/internal/storage"
)

type PreferencesMemoryStorage struct {
	mu      sync.RWMutex
	byOwner map[string]storage.Preferences
}

func NewPreferencesMemoryStorage() *PreferencesMemoryStorage {
	return &PreferencesMemoryStorage{
		byOwner: make(map[string]storage.Preferences),
	}
}

func (s *PreferencesMemoryStorage) GetPreferences(ctx context.Context, ownerUserID string) (storage.Preferences, bool, error) {
	_ = ctx

	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.byOwner[strings.TrimSpace(ownerUserID)]
	if !ok {
		return storage.Preferences{}, false, nil
	}

	return p, true, nil
}

func (s *PreferencesMemoryStorage) UpsertPreferences(ctx context.Context, p storage.Preferences) (storage.Preferences, error) {
	_ = ctx

	s.mu.Lock()
	defer s.mu.Unlock()

	p.OwnerUserID = strings.TrimSpace(p.OwnerUserID)
	now := time.Now().UTC()

	if existing, ok := s.byOwner[p.OwnerUserID]; ok {
		p.CreatedAt = existing.CreatedAt
	} else {
		p.CreatedAt = now
	}
	p.UpdatedAt = now

	s.byOwner[p.OwnerUserID] = p

	return p, nil
}
