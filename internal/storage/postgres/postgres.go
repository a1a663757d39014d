package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/cardiovital/server/internal/storage"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound = errors.New("not found")
)

// PostgresStorage is the Postgres implementation of all storage interfaces.
type PostgresStorage struct {
	pool          *pgxpool.Pool
	medications   *PostgresMedicationsStorage
	meals         *PostgresMealAnalysesStorage
	notifications *PostgresNotificationsStorage
	preferences   *PostgresPreferencesStorage
	chat          *PostgresChatStorage
	reports       *PostgresReportsStorage
}

// New connects the pool and verifies it with a ping.
func New(ctx context.Context, databaseURL string) (*PostgresStorage, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		return nil, err
	}

	return &PostgresStorage{
		pool:          pool,
		medications:   NewPostgresMedicationsStorage(pool),
		meals:         NewPostgresMealAnalysesStorage(pool),
		notifications: NewPostgresNotificationsStorage(pool),
		preferences:   NewPostgresPreferencesStorage(pool),
		chat:          NewPostgresChatStorage(pool),
		reports:       NewPostgresReportsStorage(pool),
	}, nil
}

func (p *PostgresStorage) GetProfile(ctx context.Context, ownerUserID string) (storage.Profile, bool, error) {
	const query = `
		SELECT owner_user_id, age, weight_kg, height_cm, plan, onboarding_completed, created_at, updated_at
		FROM profiles
		WHERE owner_user_id = $1
	`

	var prof storage.Profile
	err := p.pool.QueryRow(ctx, query, strings.TrimSpace(ownerUserID)).Scan(
		&prof.OwnerUserID,
		&prof.Age,
		&prof.WeightKg,
		&prof.HeightCm,
		&prof.Plan,
		&prof.OnboardingCompleted,
		&prof.CreatedAt,
		&prof.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return storage.Profile{}, false, nil
	}
	if err != nil {
		return storage.Profile{}, false, err
	}

	return prof, true, nil
}

func (p *PostgresStorage) UpsertProfile(ctx context.Context, prof storage.Profile) (storage.Profile, error) {
	prof.OwnerUserID = strings.TrimSpace(prof.OwnerUserID)
	now := time.Now().UTC()
	prof.UpdatedAt = now

	const query = `
		INSERT INTO profiles (owner_user_id, age, weight_kg, height_cm, plan, onboarding_completed, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		ON CONFLICT (owner_user_id)
		DO UPDATE SET
			age = EXCLUDED.age,
			weight_kg = EXCLUDED.weight_kg,
			height_cm = EXCLUDED.height_cm,
			plan = EXCLUDED.plan,
			onboarding_completed = EXCLUDED.onboarding_completed,
			updated_at = EXCLUDED.updated_at
		RETURNING created_at
	`

	err := p.pool.QueryRow(ctx, query,
		prof.OwnerUserID,
		prof.Age,
		prof.WeightKg,
		prof.HeightCm,
		prof.Plan,
		prof.OnboardingCompleted,
		now,
	).Scan(&prof.CreatedAt)
	if err != nil {
		return storage.Profile{}, err
	}

	return prof, nil
}

// ListProfileOwners returns all owner IDs that have a profile.
// Used by the reminder scheduler to iterate users.
func (p *PostgresStorage) ListProfileOwners(ctx context.Context) ([]string, error) {
	const query = `SELECT owner_user_id FROM profiles ORDER BY created_at ASC`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	owners := []string{}
	for rows.Next() {
		var owner string
		if err := rows.Scan(&owner); err != nil {
			return nil, err
		}
		owners = append(owners, owner)
	}

	return owners, rows.Err()
}

func (p *PostgresStorage) Close() error {
	p.pool.Close()
	return nil
}

// GetMedicationsStorage returns the medications storage.
func (p *PostgresStorage) GetMedicationsStorage() *PostgresMedicationsStorage {
	return p.medications
}

// MedicationsStorage methods - delegate to embedded medications storage.

func (p *PostgresStorage) ListMedications(ctx context.Context, ownerUserID string) ([]storage.Medication, error) {
	return p.medications.ListMedications(ctx, ownerUserID)
}

func (p *PostgresStorage) GetMedication(ctx context.Context, ownerUserID string, id uuid.UUID) (storage.Medication, bool, error) {
	return p.medications.GetMedication(ctx, ownerUserID, id)
}

func (p *PostgresStorage) CreateMedication(ctx context.Context, med *storage.Medication) error {
	return p.medications.CreateMedication(ctx, med)
}

func (p *PostgresStorage) UpdateMedication(ctx context.Context, med *storage.Medication) error {
	return p.medications.UpdateMedication(ctx, med)
}

func (p *PostgresStorage) DeleteMedication(ctx context.Context, ownerUserID string, id uuid.UUID) error {
	return p.medications.DeleteMedication(ctx, ownerUserID, id)
}

func (p *PostgresStorage) AddTakenRecord(ctx context.Context, r *storage.TakenRecord) error {
	return p.medications.AddTakenRecord(ctx, r)
}

func (p *PostgresStorage) ListTakenRecords(ctx context.Context, ownerUserID string, medicationID uuid.UUID, from, to string) ([]storage.TakenRecord, error) {
	return p.medications.ListTakenRecords(ctx, ownerUserID, medicationID, from, to)
}

func (p *PostgresStorage) ListTakenByDate(ctx context.Context, ownerUserID string, date string) ([]storage.TakenRecord, error) {
	return p.medications.ListTakenByDate(ctx, ownerUserID, date)
}

// GetMealAnalysesStorage returns the meal analyses storage.
func (p *PostgresStorage) GetMealAnalysesStorage() *PostgresMealAnalysesStorage {
	return p.meals
}

// MealAnalysesStorage methods - delegate to embedded meals storage.

func (p *PostgresStorage) CreateMealAnalysis(ctx context.Context, a *storage.MealAnalysis, maxHistory int) error {
	return p.meals.CreateMealAnalysis(ctx, a, maxHistory)
}

func (p *PostgresStorage) ListMealAnalyses(ctx context.Context, ownerUserID string, limit int) ([]storage.MealAnalysis, error) {
	return p.meals.ListMealAnalyses(ctx, ownerUserID, limit)
}

func (p *PostgresStorage) DeleteMealAnalysis(ctx context.Context, ownerUserID string, id uuid.UUID) error {
	return p.meals.DeleteMealAnalysis(ctx, ownerUserID, id)
}

// GetNotificationsStorage returns the notifications storage.
func (p *PostgresStorage) GetNotificationsStorage() *PostgresNotificationsStorage {
	return p.notifications
}

// NotificationsStorage methods - delegate to embedded notifications storage.

func (p *PostgresStorage) UpsertNotification(ctx context.Context, n *storage.Notification) error {
	return p.notifications.UpsertNotification(ctx, n)
}

func (p *PostgresStorage) ListNotifications(ctx context.Context, ownerUserID string, onlyUnread bool, limit, offset int) ([]storage.Notification, error) {
	return p.notifications.ListNotifications(ctx, ownerUserID, onlyUnread, limit, offset)
}

func (p *PostgresStorage) UnreadCount(ctx context.Context, ownerUserID string) (int, error) {
	return p.notifications.UnreadCount(ctx, ownerUserID)
}

func (p *PostgresStorage) MarkRead(ctx context.Context, ownerUserID string, ids []uuid.UUID) (int, error) {
	return p.notifications.MarkRead(ctx, ownerUserID, ids)
}

func (p *PostgresStorage) MarkAllRead(ctx context.Context, ownerUserID string) (int, error) {
	return p.notifications.MarkAllRead(ctx, ownerUserID)
}

// GetPreferencesStorage returns the preferences storage.
func (p *PostgresStorage) GetPreferencesStorage() *PostgresPreferencesStorage {
	return p.preferences
}

// PreferencesStorage methods - delegate to embedded preferences storage.

func (p *PostgresStorage) GetPreferences(ctx context.Context, ownerUserID string) (storage.Preferences, bool, error) {
	return p.preferences.GetPreferences(ctx, ownerUserID)
}

func (p *PostgresStorage) UpsertPreferences(ctx context.Context, prefs storage.Preferences) (storage.Preferences, error) {
	return p.preferences.UpsertPreferences(ctx, prefs)
}

// GetChatStorage returns the chat storage.
func (p *PostgresStorage) GetChatStorage() *PostgresChatStorage {
	return p.chat
}

// ChatStorage methods - delegate to embedded chat storage.

func (p *PostgresStorage) InsertMessage(ctx context.Context, ownerUserID, role, content string) (storage.ChatMessage, error) {
	return p.chat.InsertMessage(ctx, ownerUserID, role, content)
}

func (p *PostgresStorage) ListMessages(ctx context.Context, ownerUserID string, limit int, before *time.Time) ([]storage.ChatMessage, *time.Time, error) {
	return p.chat.ListMessages(ctx, ownerUserID, limit, before)
}

// GetReportsStorage returns the reports storage.
func (p *PostgresStorage) GetReportsStorage() *PostgresReportsStorage {
	return p.reports
}

// ReportsStorage methods - delegate to embedded reports storage.

func (p *PostgresStorage) CreateReport(ctx context.Context, report *storage.ReportMeta) error {
	return p.reports.CreateReport(ctx, report)
}

func (p *PostgresStorage) GetReport(ctx context.Context, ownerUserID string, id uuid.UUID) (storage.ReportMeta, bool, error) {
	return p.reports.GetReport(ctx, ownerUserID, id)
}

func (p *PostgresStorage) ListReports(ctx context.Context, ownerUserID string, limit, offset int) ([]storage.ReportMeta, error) {
	return p.reports.ListReports(ctx, ownerUserID, limit, offset)
}

func (p *PostgresStorage) DeleteReport(ctx context.Context, ownerUserID string, id uuid.UUID) error {
	return p.reports.DeleteReport(ctx, ownerUserID, id)
}
