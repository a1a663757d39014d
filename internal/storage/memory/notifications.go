package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/cardiovital/server/internal/storage"
	"github.com/google/uuid"
)

type NotificationsMemoryStorage struct {
	mu            sync.RWMutex
	notifications map[uuid.UUID]*storage.Notification
	byOwner       map[string][]uuid.UUID // owner_user_id -> notification ids
	uniqueKeys    map[string]uuid.UUID   // unique key -> notification id
}

func NewNotificationsMemoryStorage() *NotificationsMemoryStorage {
	return &NotificationsMemoryStorage{
		notifications: make(map[uuid.UUID]*storage.Notification),
		byOwner:       make(map[string][]uuid.UUID),
		uniqueKeys:    make(map[string]uuid.UUID),
	}
}

func (s *NotificationsMemoryStorage) UpsertNotification(ctx context.Context, n *storage.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	n.OwnerUserID = strings.TrimSpace(n.OwnerUserID)
	uniqueKey := makeReminderKey(n.OwnerUserID, n.MedicationID, n.TimeSlot, n.SourceDate)

	// Update in place when the reminder already fired for this slot
	if existingID, exists := s.uniqueKeys[uniqueKey]; exists {
		if existing, ok := s.notifications[existingID]; ok {
			existing.Title = n.Title
			existing.Body = n.Body
			// Keep CreatedAt and ReadAt
			return nil
		}
	}

	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}

	clone := *n
	s.notifications[clone.ID] = &clone
	s.byOwner[clone.OwnerUserID] = append(s.byOwner[clone.OwnerUserID], clone.ID)
	s.uniqueKeys[uniqueKey] = clone.ID

	return nil
}

func (s *NotificationsMemoryStorage) ListNotifications(ctx context.Context, ownerUserID string, onlyUnread bool, limit, offset int) ([]storage.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids, ok := s.byOwner[strings.TrimSpace(ownerUserID)]
	if !ok {
		return []storage.Notification{}, nil
	}

	var result []storage.Notification
	for _, id := range ids {
		if n, ok := s.notifications[id]; ok {
			if onlyUnread && n.ReadAt != nil {
				continue
			}
			result = append(result, *n)
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

	if offset >= len(result) {
		return []storage.Notification{}, nil
	}
	result = result[offset:]
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}

	return result, nil
}

func (s *NotificationsMemoryStorage) UnreadCount(ctx context.Context, ownerUserID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, id := range s.byOwner[strings.TrimSpace(ownerUserID)] {
		if n, ok := s.notifications[id]; ok && n.ReadAt == nil {
			count++
		}
	}

	return count, nil
}

func (s *NotificationsMemoryStorage) MarkRead(ctx context.Context, ownerUserID string, ids []uuid.UUID) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ownerUserID = strings.TrimSpace(ownerUserID)
	marked := 0
	now := time.Now().UTC()

	for _, id := range ids {
		if n, ok := s.notifications[id]; ok {
			if n.OwnerUserID != ownerUserID {
				continue
			}
			if n.ReadAt != nil {
				continue
			}
			n.ReadAt = &now
			marked++
		}
	}

	return marked, nil
}

func (s *NotificationsMemoryStorage) MarkAllRead(ctx context.Context, ownerUserID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	marked := 0
	now := time.Now().UTC()

	for _, id := range s.byOwner[strings.TrimSpace(ownerUserID)] {
		if n, ok := s.notifications[id]; ok && n.ReadAt == nil {
			n.ReadAt = &now
			marked++
		}
	}

	return marked, nil
}

func makeReminderKey(ownerUserID string, medicationID uuid.UUID, timeSlot, sourceDate string) string {
	return ownerUserID + ":" + medicationID.String() + ":" + timeSlot + ":" + sourceDate
}
