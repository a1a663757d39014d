package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/cardiovital/server/internal/storage"
	"github.com/google/uuid"
)

type MedicationsMemoryStorage struct {
	mu          sync.RWMutex
	medications map[uuid.UUID]*storage.Medication
	byOwner     map[string][]uuid.UUID // owner_user_id -> medication ids
	taken       []storage.TakenRecord
}

func NewMedicationsMemoryStorage() *MedicationsMemoryStorage {
	return &MedicationsMemoryStorage{
		medications: make(map[uuid.UUID]*storage.Medication),
		byOwner:     make(map[string][]uuid.UUID),
		taken:       make([]storage.TakenRecord, 0),
	}
}

func (s *MedicationsMemoryStorage) ListMedications(ctx context.Context, ownerUserID string) ([]storage.Medication, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids, ok := s.byOwner[strings.TrimSpace(ownerUserID)]
	if !ok {
		return []storage.Medication{}, nil
	}

	result := make([]storage.Medication, 0, len(ids))
	for _, id := range ids {
		if med, ok := s.medications[id]; ok {
			result = append(result, cloneMedication(med))
		}
	}

	// Sort by created_at desc
	for i := 0; i < len(result); i++ {
		for j := i + 1; j < len(result); j++ {
			if result[i].CreatedAt.Before(result[j].CreatedAt) {
				result[i], result[j] = result[j], result[i]
			}
		}
	}

	return result, nil
}

func (s *MedicationsMemoryStorage) GetMedication(ctx context.Context, ownerUserID string, id uuid.UUID) (storage.Medication, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	med, ok := s.medications[id]
	if !ok || med.OwnerUserID != strings.TrimSpace(ownerUserID) {
		return storage.Medication{}, false, nil
	}

	return cloneMedication(med), true, nil
}

func (s *MedicationsMemoryStorage) CreateMedication(ctx context.Context, med *storage.Medication) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if med.ID == uuid.Nil {
		med.ID = uuid.New()
	}
	med.OwnerUserID = strings.TrimSpace(med.OwnerUserID)

	now := time.Now().UTC()
	if med.CreatedAt.IsZero() {
		med.CreatedAt = now
	}
	med.UpdatedAt = now

	clone := cloneMedication(med)
	s.medications[clone.ID] = &clone
	s.byOwner[clone.OwnerUserID] = append(s.byOwner[clone.OwnerUserID], clone.ID)

	return nil
}

func (s *MedicationsMemoryStorage) UpdateMedication(ctx context.Context, med *storage.Medication) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.medications[med.ID]
	if !ok || existing.OwnerUserID != strings.TrimSpace(med.OwnerUserID) {
		return ErrNotFound
	}

	med.CreatedAt = existing.CreatedAt
	med.UpdatedAt = time.Now().UTC()

	clone := cloneMedication(med)
	s.medications[clone.ID] = &clone

	return nil
}

func (s *MedicationsMemoryStorage) DeleteMedication(ctx context.Context, ownerUserID string, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ownerUserID = strings.TrimSpace(ownerUserID)

	med, ok := s.medications[id]
	if !ok || med.OwnerUserID != ownerUserID {
		return ErrNotFound
	}

	delete(s.medications, id)

	ids := s.byOwner[ownerUserID]
	for i, mid := range ids {
		if mid == id {
			s.byOwner[ownerUserID] = append(ids[:i], ids[i+1:]...)
			break
		}
	}

	// Cascade taken records
	kept := s.taken[:0]
	for _, r := range s.taken {
		if r.MedicationID != id {
			kept = append(kept, r)
		}
	}
	s.taken = kept

	return nil
}

func (s *MedicationsMemoryStorage) AddTakenRecord(ctx context.Context, r *storage.TakenRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	med, ok := s.medications[r.MedicationID]
	if !ok || med.OwnerUserID != strings.TrimSpace(r.OwnerUserID) {
		return ErrNotFound
	}

	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	r.OwnerUserID = strings.TrimSpace(r.OwnerUserID)
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}

	s.taken = append(s.taken, *r)

	return nil
}

func (s *MedicationsMemoryStorage) ListTakenRecords(ctx context.Context, ownerUserID string, medicationID uuid.UUID, from, to string) ([]storage.TakenRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ownerUserID = strings.TrimSpace(ownerUserID)

	result := make([]storage.TakenRecord, 0)
	for _, r := range s.taken {
		if r.OwnerUserID != ownerUserID || r.MedicationID != medicationID {
			continue
		}
		if from != "" && r.Date < from {
			continue
		}
		if to != "" && r.Date > to {
			continue
		}
		result = append(result, r)
	}

	return result, nil
}

func (s *MedicationsMemoryStorage) ListTakenByDate(ctx context.Context, ownerUserID string, date string) ([]storage.TakenRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ownerUserID = strings.TrimSpace(ownerUserID)

	result := make([]storage.TakenRecord, 0)
	for _, r := range s.taken {
		if r.OwnerUserID == ownerUserID && r.Date == date {
			result = append(result, r)
		}
	}

	return result, nil
}

func cloneMedication(med *storage.Medication) storage.Medication {
	clone := *med
	clone.Times = append([]string(nil), med.Times...)
	return clone
}
