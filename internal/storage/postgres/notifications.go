package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cardiovital/server/internal/storage"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresNotificationsStorage struct {
	pool *pgxpool.Pool
}

func NewPostgresNotificationsStorage(pool *pgxpool.Pool) *PostgresNotificationsStorage {
	return &PostgresNotificationsStorage{pool: pool}
}

func (s *PostgresNotificationsStorage) UpsertNotification(ctx context.Context, n *storage.Notification) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	n.OwnerUserID = strings.TrimSpace(n.OwnerUserID)
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}

	const query = `
		INSERT INTO notifications (id, owner_user_id, medication_id, time_slot, source_date, kind, title, body, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (owner_user_id, medication_id, time_slot, source_date)
		DO UPDATE SET
			title = EXCLUDED.title,
			body = EXCLUDED.body
	`

	_, err := s.pool.Exec(ctx, query,
		n.ID,
		n.OwnerUserID,
		n.MedicationID,
		n.TimeSlot,
		n.SourceDate,
		n.Kind,
		n.Title,
		n.Body,
		n.CreatedAt,
	)

	return err
}

func (s *PostgresNotificationsStorage) ListNotifications(ctx context.Context, ownerUserID string, onlyUnread bool, limit, offset int) ([]storage.Notification, error) {
	query := `
		SELECT id, owner_user_id, medication_id, time_slot, source_date, kind, title, body, created_at, read_at
		FROM notifications
		WHERE owner_user_id = $1
	`

	args := []interface{}{strings.TrimSpace(ownerUserID)}

	if onlyUnread {
		query += " AND read_at IS NULL"
	}

	query += " ORDER BY created_at DESC"

	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}
	if offset > 0 {
		query += fmt.Sprintf(" OFFSET %d", offset)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []storage.Notification
	for rows.Next() {
		var n storage.Notification
		if err := rows.Scan(
			&n.ID,
			&n.OwnerUserID,
			&n.MedicationID,
			&n.TimeSlot,
			&n.SourceDate,
			&n.Kind,
			&n.Title,
			&n.Body,
			&n.CreatedAt,
			&n.ReadAt,
		); err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}

	return notifications, rows.Err()
}

func (s *PostgresNotificationsStorage) UnreadCount(ctx context.Context, ownerUserID string) (int, error) {
	const query = `
		SELECT COUNT(*)
		FROM notifications
		WHERE owner_user_id = $1 AND read_at IS NULL
	`

	var count int
	if err := s.pool.QueryRow(ctx, query, strings.TrimSpace(ownerUserID)).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}

func (s *PostgresNotificationsStorage) MarkRead(ctx context.Context, ownerUserID string, ids []uuid.UUID) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	const query = `
		UPDATE notifications
		SET read_at = $1
		WHERE owner_user_id = $2
			AND id = ANY($3)
			AND read_at IS NULL
	`

	result, err := s.pool.Exec(ctx, query, time.Now().UTC(), strings.TrimSpace(ownerUserID), ids)
	if err != nil {
		return 0, err
	}

	return int(result.RowsAffected()), nil
}

func (s *PostgresNotificationsStorage) MarkAllRead(ctx context.Context, ownerUserID string) (int, error) {
	const query = `
		UPDATE notifications
		SET read_at = $1
		WHERE owner_user_id = $2 AND read_at IS NULL
	`

	result, err := s.pool.Exec(ctx, query, time.Now().UTC(), strings.TrimSpace(ownerUserID))
	if err != nil {
		return 0, err
	}

	return int(result.RowsAffected()), nil
}
