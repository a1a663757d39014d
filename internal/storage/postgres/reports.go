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

type PostgresReportsStorage struct {
	pool *pgxpool.Pool
}

func NewPostgresReportsStorage(pool *pgxpool.Pool) *PostgresReportsStorage {
	return &PostgresReportsStorage{pool: pool}
}

func (s *PostgresReportsStorage) CreateReport(ctx context.Context, report *storage.ReportMeta) error {
	if report.ID == uuid.Nil {
		report.ID = uuid.New()
	}
	report.OwnerUserID = strings.TrimSpace(report.OwnerUserID)
	if report.CreatedAt.IsZero() {
		report.CreatedAt = time.Now().UTC()
	}

	// In local blob mode the PDF bytes land in the data column;
	// in S3 mode data is nil and object_key points at the blob store.
	const query = `
		INSERT INTO reports (id, owner_user_id, from_date, to_date, object_key, size_bytes, status, error, data, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := s.pool.Exec(ctx, query,
		report.ID,
		report.OwnerUserID,
		report.FromDate,
		report.ToDate,
		report.ObjectKey,
		report.SizeBytes,
		report.Status,
		report.Error,
		report.Data,
		report.CreatedAt,
	)

	return err
}

func (s *PostgresReportsStorage) GetReport(ctx context.Context, ownerUserID string, id uuid.UUID) (storage.ReportMeta, bool, error) {
	const query = `
		SELECT id, owner_user_id, from_date, to_date, object_key, size_bytes, status, error, data, created_at
		FROM reports
		WHERE owner_user_id = $1 AND id = $2
	`

	var r storage.ReportMeta
	err := s.pool.QueryRow(ctx, query, strings.TrimSpace(ownerUserID), id).Scan(
		&r.ID,
		&r.OwnerUserID,
		&r.FromDate,
		&r.ToDate,
		&r.ObjectKey,
		&r.SizeBytes,
		&r.Status,
		&r.Error,
		&r.Data,
		&r.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return storage.ReportMeta{}, false, nil
	}
	if err != nil {
		return storage.ReportMeta{}, false, err
	}

	return r, true, nil
}

func (s *PostgresReportsStorage) ListReports(ctx context.Context, ownerUserID string, limit, offset int) ([]storage.ReportMeta, error) {
	if limit <= 0 {
		limit = 50
	}

	const query = `
		SELECT id, owner_user_id, from_date, to_date, object_key, size_bytes, status, error, created_at
		FROM reports
		WHERE owner_user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := s.pool.Query(ctx, query, strings.TrimSpace(ownerUserID), limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reports := []storage.ReportMeta{}
	for rows.Next() {
		var r storage.ReportMeta
		if err := rows.Scan(
			&r.ID,
			&r.OwnerUserID,
			&r.FromDate,
			&r.ToDate,
			&r.ObjectKey,
			&r.SizeBytes,
			&r.Status,
			&r.Error,
			&r.CreatedAt,
		); err != nil {
			return nil, err
		}
		reports = append(reports, r)
	}

	return reports, rows.Err()
}

func (s *PostgresReportsStorage) DeleteReport(ctx context.Context, ownerUserID string, id uuid.UUID) error {
	const query = `DELETE FROM reports WHERE owner_user_id = $1 AND id = $2`

	result, err := s.pool.Exec(ctx, query, strings.TrimSpace(ownerUserID), id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
