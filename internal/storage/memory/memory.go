package memory

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/cardiovital/server/internal/storage"
	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("not found")
)

// MemoryStorage is the in-memory implementation of all storage interfaces.
type MemoryStorage struct {
	mu            sync.RWMutex
	profiles      map[string]storage.Profile // owner_user_id -> profile
	medications   *MedicationsMemoryStorage
	meals         *MealAnalysesMemoryStorage
	notifications *NotificationsMemoryStorage
	preferences   *PreferencesMemoryStorage
	chat          *ChatMemoryStorage
	reports       *ReportsMemoryStorage
}

// New creates an empty MemoryStorage.
func New() *MemoryStorage {
	return &MemoryStorage{
		profiles:      make(map[string]storage.Profile),
		medications:   NewMedicationsMemoryStorage(),
		meals:         NewMealAnalysesMemoryStorage(),
		notifications: NewNotificationsMemoryStorage(),
		preferences:   NewPreferencesMemoryStorage(),
		chat:          NewChatMemoryStorage(),
		reports:       NewReportsMemoryStorage(),
	}
}

func (m *MemoryStorage) GetProfile(ctx context.Context, ownerUserID string) (storage.Profile, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.profiles[strings.TrimSpace(ownerUserID)]
	if !ok {
		return storage.Profile{}, false, nil
	}

	return p, true, nil
}

func (m *MemoryStorage) UpsertProfile(ctx context.Context, p storage.Profile) (storage.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p.OwnerUserID = strings.TrimSpace(p.OwnerUserID)
	now := time.Now().UTC()

	if existing, ok := m.profiles[p.OwnerUserID]; ok {
		p.CreatedAt = existing.CreatedAt
	} else {
		p.CreatedAt = now
	}
	p.UpdatedAt = now

	m.profiles[p.OwnerUserID] = p

	return p, nil
}

func (m *MemoryStorage) Close() error {
	// no-op for memory
	return nil
}

// ListProfileOwners returns all owner IDs that have a profile.
// Used by the reminder scheduler to iterate users.
func (m *MemoryStorage) ListProfileOwners(ctx context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	owners := make([]string, 0, len(m.profiles))
	for owner := range m.profiles {
		owners = append(owners, owner)
	}

	return owners, nil
}

// GetMedicationsStorage returns the medications storage.
func (m *MemoryStorage) GetMedicationsStorage() *MedicationsMemoryStorage {
	return m.medications
}

// MedicationsStorage methods - delegate to embedded medications storage.

func (m *MemoryStorage) ListMedications(ctx context.Context, ownerUserID string) ([]storage.Medication, error) {
	return m.medications.ListMedications(ctx, ownerUserID)
}

func (m *MemoryStorage) GetMedication(ctx context.Context, ownerUserID string, id uuid.UUID) (storage.Medication, bool, error) {
	return m.medications.GetMedication(ctx, ownerUserID, id)
}

func (m *MemoryStorage) CreateMedication(ctx context.Context, med *storage.Medication) error {
	return m.medications.CreateMedication(ctx, med)
}

func (m *MemoryStorage) UpdateMedication(ctx context.Context, med *storage.Medication) error {
	return m.medications.UpdateMedication(ctx, med)
}

func (m *MemoryStorage) DeleteMedication(ctx context.Context, ownerUserID string, id uuid.UUID) error {
	return m.medications.DeleteMedication(ctx, ownerUserID, id)
}

func (m *MemoryStorage) AddTakenRecord(ctx context.Context, r *storage.TakenRecord) error {
	return m.medications.AddTakenRecord(ctx, r)
}

func (m *MemoryStorage) ListTakenRecords(ctx context.Context, ownerUserID string, medicationID uuid.UUID, from, to string) ([]storage.TakenRecord, error) {
	return m.medications.ListTakenRecords(ctx, ownerUserID, medicationID, from, to)
}

func (m *MemoryStorage) ListTakenByDate(ctx context.Context, ownerUserID string, date string) ([]storage.TakenRecord, error) {
	return m.medications.ListTakenByDate(ctx, ownerUserID, date)
}

// GetMealAnalysesStorage returns the meal analyses storage.
func (m *MemoryStorage) GetMealAnalysesStorage() *MealAnalysesMemoryStorage {
	return m.meals
}

// MealAnalysesStorage methods - delegate to embedded meals storage.

func (m *MemoryStorage) CreateMealAnalysis(ctx context.Context, a *storage.MealAnalysis, maxHistory int) error {
	return m.meals.CreateMealAnalysis(ctx, a, maxHistory)
}

func (m *MemoryStorage) ListMealAnalyses(ctx context.Context, ownerUserID string, limit int) ([]storage.MealAnalysis, error) {
	return m.meals.ListMealAnalyses(ctx, ownerUserID, limit)
}

func (m *MemoryStorage) DeleteMealAnalysis(ctx context.Context, ownerUserID string, id uuid.UUID) error {
	return m.meals.DeleteMealAnalysis(ctx, ownerUserID, id)
}

// GetNotificationsStorage returns the notifications storage.
func (m *MemoryStorage) GetNotificationsStorage() *NotificationsMemoryStorage {
	return m.notifications
}

// NotificationsStorage methods - delegate to embedded notifications storage.

func (m *MemoryStorage) UpsertNotification(ctx context.Context, n *storage.Notification) error {
	return m.notifications.UpsertNotification(ctx, n)
}

func (m *MemoryStorage) ListNotifications(ctx context.Context, ownerUserID string, onlyUnread bool, limit, offset int) ([]storage.Notification, error) {
	return m.notifications.ListNotifications(ctx, ownerUserID, onlyUnread, limit, offset)
}

func (m *MemoryStorage) UnreadCount(ctx context.Context, ownerUserID string) (int, error) {
	return m.notifications.UnreadCount(ctx, ownerUserID)
}

func (m *MemoryStorage) MarkRead(ctx context.Context, ownerUserID string, ids []uuid.UUID) (int, error) {
	return m.notifications.MarkRead(ctx, ownerUserID, ids)
}

func (m *MemoryStorage) MarkAllRead(ctx context.Context, ownerUserID string) (int, error) {
	return m.notifications.MarkAllRead(ctx, ownerUserID)
}

// GetPreferencesStorage returns the preferences storage.
func (m *MemoryStorage) GetPreferencesStorage() *PreferencesMemoryStorage {
	return m.preferences
}

// PreferencesStorage methods - delegate to embedded preferences storage.

func (m *MemoryStorage) GetPreferences(ctx context.Context, ownerUserID string) (storage.Preferences, bool, error) {
	return m.preferences.GetPreferences(ctx, ownerUserID)
}

func (m *MemoryStorage) UpsertPreferences(ctx context.Context, p storage.Preferences) (storage.Preferences, error) {
	return m.preferences.UpsertPreferences(ctx, p)
}

// GetChatStorage returns the chat storage.
func (m *MemoryStorage) GetChatStorage() *ChatMemoryStorage {
	return m.chat
}

// ChatStorage methods - delegate to embedded chat storage.

func (m *MemoryStorage) InsertMessage(ctx context.Context, ownerUserID, role, content string) (storage.ChatMessage, error) {
	return m.chat.InsertMessage(ctx, ownerUserID, role, content)
}

func (m *MemoryStorage) ListMessages(ctx context.Context, ownerUserID string, limit int, before *time.Time) ([]storage.ChatMessage, *time.Time, error) {
	return m.chat.ListMessages(ctx, ownerUserID, limit, before)
}

// GetReportsStorage returns the reports storage.
func (m *MemoryStorage) GetReportsStorage() *ReportsMemoryStorage {
	return m.reports
}

// ReportsStorage methods - delegate to embedded reports storage.

func (m *MemoryStorage) CreateReport(ctx context.Context, report *storage.ReportMeta) error {
	return m.reports.CreateReport(ctx, report)
}

func (m *MemoryStorage) GetReport(ctx context.Context, ownerUserID string, id uuid.UUID) (storage.ReportMeta, bool, error) {
	return m.reports.GetReport(ctx, ownerUserID, id)
}

func (m *MemoryStorage) ListReports(ctx context.Context, ownerUserID string, limit, offset int) ([]storage.ReportMeta, error) {
	return m.reports.ListReports(ctx, ownerUserID, limit, offset)
}

func (m *MemoryStorage) DeleteReport(ctx context.Context, ownerUserID string, id uuid.UUID) error {
	return m.reports.DeleteReport(ctx, ownerUserID, id)
}
