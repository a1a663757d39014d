package storage

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Profile represents a user's health profile.
type Profile struct {
	OwnerUserID         string
	Age                 int
	WeightKg            float64
	HeightCm            float64
	Plan                string // "essencial", "premium", "elite"
	OnboardingCompleted bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Storage manages user profiles.
type Storage interface {
	// GetProfile returns the profile for an owner. bool=false means not found.
	GetProfile(ctx context.Context, ownerUserID string) (Profile, bool, error)

	// UpsertProfile creates or updates the owner's profile.
	UpsertProfile(ctx context.Context, p Profile) (Profile, error)

	// Close releases the underlying connection (Postgres).
	Close() error
}

// MedicationsStorage manages medications and their taken records.
type MedicationsStorage interface {
	// ListMedications returns the owner's medications, newest first.
	ListMedications(ctx context.Context, ownerUserID string) ([]Medication, error)

	// GetMedication returns a medication by ID within the owner.
	GetMedication(ctx context.Context, ownerUserID string, id uuid.UUID) (Medication, bool, error)

	// CreateMedication stores a new medication.
	CreateMedication(ctx context.Context, m *Medication) error

	// UpdateMedication updates an existing medication within the owner.
	UpdateMedication(ctx context.Context, m *Medication) error

	// DeleteMedication deletes a medication and cascades its taken records.
	DeleteMedication(ctx context.Context, ownerUserID string, id uuid.UUID) error

	// AddTakenRecord appends a taken record for a medication.
	AddTakenRecord(ctx context.Context, r *TakenRecord) error

	// ListTakenRecords returns taken records for a medication within a date range.
	// Empty from/to means unbounded.
	ListTakenRecords(ctx context.Context, ownerUserID string, medicationID uuid.UUID, from, to string) ([]TakenRecord, error)

	// ListTakenByDate returns all of the owner's taken records for a date.
	ListTakenByDate(ctx context.Context, ownerUserID string, date string) ([]TakenRecord, error)
}

// Medication represents a tracked medication with its daily schedule.
type Medication struct {
	ID          uuid.UUID
	OwnerUserID string
	Name        string
	Dosage      string
	Frequency   string
	Times       []string // "HH:MM", 24h
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TakenRecord marks one intake of a medication. Append-only.
type TakenRecord struct {
	ID           uuid.UUID
	OwnerUserID  string
	MedicationID uuid.UUID
	Date         string // YYYY-MM-DD
	Time         string // HH:MM
	CreatedAt    time.Time
}

// MealAnalysesStorage manages meal analysis history.
type MealAnalysesStorage interface {
	// CreateMealAnalysis stores an analysis and prunes history beyond maxHistory.
	CreateMealAnalysis(ctx context.Context, a *MealAnalysis, maxHistory int) error

	// ListMealAnalyses returns the owner's analyses, newest first.
	ListMealAnalyses(ctx context.Context, ownerUserID string, limit int) ([]MealAnalysis, error)

	// DeleteMealAnalysis deletes an analysis by ID within the owner.
	DeleteMealAnalysis(ctx context.Context, ownerUserID string, id uuid.UUID) error
}

// MealAnalysis is one stored meal evaluation.
type MealAnalysis struct {
	ID              uuid.UUID
	OwnerUserID     string
	Description     string
	Score           int
	EstimatedKcal   int
	PositivePoints  []string
	Improvements    []string
	Recommendations []string
	Date            string // YYYY-MM-DD
	CreatedAt       time.Time
}

// NotificationsStorage manages the reminder inbox.
type NotificationsStorage interface {
	// UpsertNotification stores a notification, unique on
	// (owner, medication, time_slot, source_date).
	UpsertNotification(ctx context.Context, n *Notification) error

	// ListNotifications returns the owner's notifications, newest first.
	ListNotifications(ctx context.Context, ownerUserID string, onlyUnread bool, limit, offset int) ([]Notification, error)

	// UnreadCount returns the number of unread notifications.
	UnreadCount(ctx context.Context, ownerUserID string) (int, error)

	// MarkRead marks the given notifications read (ownership checked).
	MarkRead(ctx context.Context, ownerUserID string, ids []uuid.UUID) (int, error)

	// MarkAllRead marks all of the owner's notifications read.
	MarkAllRead(ctx context.Context, ownerUserID string) (int, error)
}

// Notification is one inbox entry, typically a medication reminder.
type Notification struct {
	ID           uuid.UUID
	OwnerUserID  string
	MedicationID uuid.UUID
	TimeSlot     string // HH:MM the reminder fired for
	SourceDate   string // YYYY-MM-DD
	Kind         string // "medication_reminder"
	Title        string
	Body         string
	CreatedAt    time.Time
	ReadAt       *time.Time
}

// PreferencesStorage manages per-user app preferences.
type PreferencesStorage interface {
	// GetPreferences returns preferences by owner. bool=false means not found.
	GetPreferences(ctx context.Context, ownerUserID string) (Preferences, bool, error)

	// UpsertPreferences creates or updates the owner's preferences.
	UpsertPreferences(ctx context.Context, p Preferences) (Preferences, error)
}

// Preferences holds persisted per-user settings.
type Preferences struct {
	OwnerUserID      string
	Language         string // "pt", "en", "nl", "fr", "de"
	TimeZone         string // IANA name, e.g. "America/Sao_Paulo"
	RemindersEnabled bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ChatStorage stores coach conversation messages.
type ChatStorage interface {
	// InsertMessage stores a chat message.
	InsertMessage(ctx context.Context, ownerUserID, role, content string) (ChatMessage, error)

	// ListMessages returns the last messages for an owner, oldest first.
	// before is a created_at cursor (strictly less than).
	ListMessages(ctx context.Context, ownerUserID string, limit int, before *time.Time) ([]ChatMessage, *time.Time, error)
}

// ChatMessage is a stored coach conversation message.
type ChatMessage struct {
	ID          uuid.UUID
	OwnerUserID string
	Role        string // "user" or "assistant"
	Content     string
	CreatedAt   time.Time
}

// ReportsStorage manages adherence report metadata.
type ReportsStorage interface {
	// CreateReport stores report metadata (and data in memory mode).
	CreateReport(ctx context.Context, report *ReportMeta) error

	// GetReport returns a report by ID within the owner.
	GetReport(ctx context.Context, ownerUserID string, id uuid.UUID) (ReportMeta, bool, error)

	// ListReports returns the owner's reports with pagination.
	ListReports(ctx context.Context, ownerUserID string, limit, offset int) ([]ReportMeta, error)

	// DeleteReport removes a report (metadata and data).
	DeleteReport(ctx context.Context, ownerUserID string, id uuid.UUID) error
}

// ReportMeta describes one generated adherence report.
type ReportMeta struct {
	ID          uuid.UUID
	OwnerUserID string
	FromDate    string // YYYY-MM-DD
	ToDate      string // YYYY-MM-DD
	ObjectKey   *string
	SizeBytes   int64
	Status      string // "ready" or "failed"
	Error       *string
	CreatedAt   time.Time
	Data        []byte // PDF bytes in local blob mode, nil in S3 mode
}
