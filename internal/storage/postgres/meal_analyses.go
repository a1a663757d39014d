package postgres

import (
	"context"
	"strings"
	"time"

	"github.com/cardiovital/server/internal/storage"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresMealAnalysesStorage struct {
	pool *pgxpool.Pool
}

func NewPostgresMealAnalysesStorage(pool *pgxpool.Pool) *PostgresMealAnalysesStorage {
	return &PostgresMealAnalysesStorage{pool: pool}
}

func (s *PostgresMealAnalysesStorage) CreateMealAnalysis(ctx context.Context, a *storage.MealAnalysis, maxHistory int) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	a.OwnerUserID = strings.TrimSpace(a.OwnerUserID)
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}

	const insert = `
		INSERT INTO meal_analyses (id, owner_user_id, description, score, estimated_kcal,
			positive_points, improvements, recommendations, date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := s.pool.Exec(ctx, insert,
		a.ID,
		a.OwnerUserID,
		a.Description,
		a.Score,
		a.EstimatedKcal,
		a.PositivePoints,
		a.Improvements,
		a.Recommendations,
		a.Date,
		a.CreatedAt,
	)
	if err != nil {
		return err
	}

	if maxHistory <= 0 {
		return nil
	}

	// Prune entries beyond the history cap, oldest first
	const prune = `
		DELETE FROM meal_analyses
		WHERE owner_user_id = $1
		  AND id NOT IN (
			SELECT id FROM meal_analyses
			WHERE owner_user_id = $1
			ORDER BY created_at DESC
			LIMIT $2
		  )
	`

	_, err = s.pool.Exec(ctx, prune, a.OwnerUserID, maxHistory)
	return err
}

func (s *PostgresMealAnalysesStorage) ListMealAnalyses(ctx context.Context, ownerUserID string, limit int) ([]storage.MealAnalysis, error) {
	query := `
		SELECT id, owner_user_id, description, score, estimated_kcal,
			positive_points, improvements, recommendations, date, created_at
		FROM meal_analyses
		WHERE owner_user_id = $1
		ORDER BY created_at DESC
	`

	args := []interface{}{strings.TrimSpace(ownerUserID)}
	if limit > 0 {
		args = append(args, limit)
		query += " LIMIT $2"
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	analyses := []storage.MealAnalysis{}
	for rows.Next() {
		var a storage.MealAnalysis
		if err := rows.Scan(
			&a.ID,
			&a.OwnerUserID,
			&a.Description,
			&a.Score,
			&a.EstimatedKcal,
			&a.PositivePoints,
			&a.Improvements,
			&a.Recommendations,
			&a.Date,
			&a.CreatedAt,
		); err != nil {
			return nil, err
		}
		analyses = append(analyses, a)
	}

	return analyses, rows.Err()
}

func (s *PostgresMealAnalysesStorage) DeleteMealAnalysis(ctx context.Context, ownerUserID string, id uuid.UUID) error {
	const query = `DELETE FROM meal_analyses WHERE owner_user_id = $1 AND id = $2`

	result, err := s.pool.Exec(ctx, query, strings.TrimSpace(ownerUserID), id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
