package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/cardiovital/server/internal/storage"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresPreferencesStorage struct {
	pool *pgxpool.Pool
}

func NewPostgresPreferencesStorage(pool *pgxpool.Pool) *PostgresPreferencesStorage {
	return &PostgresPreferencesStorage{pool: pool}
}

func (s *PostgresPreferencesStorage) GetPreferences(ctx context.Context, ownerUserID string) (storage.Preferences, bool, error) {
	const query = `
		SELECT owner_user_id, language, time_zone, reminders_enabled, created_at, updated_at
		FROM preferences
		WHERE owner_user_id = $1
	`

	var p storage.Preferences
	err := s.pool.QueryRow(ctx, query, strings.TrimSpace(ownerUserID)).Scan(
		&p.OwnerUserID,
		&p.Language,
		&p.TimeZone,
		&p.RemindersEnabled,
		&p.CreatedAt,
		&p.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return storage.Preferences{}, false, nil
	}
	if err != nil {
		return storage.Preferences{}, false, err
	}

	return p, true, nil
}

func (s *PostgresPreferencesStorage) UpsertPreferences(ctx context.Context, p storage.Preferences) (storage.Preferences, error) {
	p.OwnerUserID = strings.TrimSpace(p.OwnerUserID)
	now := time.Now().UTC()
	p.UpdatedAt = now

	const query = `
		INSERT INTO preferences (owner_user_id, language, time_zone, reminders_enabled, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		ON CONFLICT (owner_user_id)
		DO UPDATE SET
			language = EXCLUDED.language,
			time_zone = EXCLUDED.time_zone,
			reminders_enabled = EXCLUDED.reminders_enabled,
			updated_at = EXCLUDED.updated_at
		RETURNING created_at
	`

	err := s.pool.QueryRow(ctx, query,
		p.OwnerUserID,
		p.Language,
		p.TimeZone,
		p.RemindersEnabled,
		now,
	).Scan(&p.CreatedAt)
	if err != nil {
		return storage.Preferences{}, err
	}

	return p, nil
}
