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

type PostgresMedicationsStorage struct {
	pool *pgxpool.Pool
}

func NewPostgresMedicationsStorage(pool *pgxpool.Pool) *PostgresMedicationsStorage {
	return &PostgresMedicationsStorage{pool: pool}
}

func (s *PostgresMedicationsStorage) ListMedications(ctx context.Context, ownerUserID string) ([]storage.Medication, error) {
	const query = `
		SELECT id, owner_user_id, name, dosage, frequency, times, notes, created_at, updated_at
		FROM medications
		WHERE owner_user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := s.pool.Query(ctx, query, strings.TrimSpace(ownerUserID))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	medications := []storage.Medication{}
	for rows.Next() {
		var med storage.Medication
		if err := rows.Scan(
			&med.ID,
			&med.OwnerUserID,
			&med.Name,
			&med.Dosage,
			&med.Frequency,
			&med.Times,
			&med.Notes,
			&med.CreatedAt,
			&med.UpdatedAt,
		); err != nil {
			return nil, err
		}
		medications = append(medications, med)
	}

	return medications, rows.Err()
}

func (s *PostgresMedicationsStorage) GetMedication(ctx context.Context, ownerUserID string, id uuid.UUID) (storage.Medication, bool, error) {
	const query = `
		SELECT id, owner_user_id, name, dosage, frequency, times, notes, created_at, updated_at
		FROM medications
		WHERE owner_user_id = $1 AND id = $2
	`

	var med storage.Medication
	err := s.pool.QueryRow(ctx, query, strings.TrimSpace(ownerUserID), id).Scan(
		&med.ID,
		&med.OwnerUserID,
		&med.Name,
		&med.Dosage,
		&med.Frequency,
		&med.Times,
		&med.Notes,
		&med.CreatedAt,
		&med.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return storage.Medication{}, false, nil
	}
	if err != nil {
		return storage.Medication{}, false, err
	}

	return med, true, nil
}

func (s *PostgresMedicationsStorage) CreateMedication(ctx context.Context, med *storage.Medication) error {
	if med.ID == uuid.Nil {
		med.ID = uuid.New()
	}
	med.OwnerUserID = strings.TrimSpace(med.OwnerUserID)

	now := time.Now().UTC()
	med.CreatedAt = now
	med.UpdatedAt = now

	const query = `
		INSERT INTO medications (id, owner_user_id, name, dosage, frequency, times, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := s.pool.Exec(ctx, query,
		med.ID,
		med.OwnerUserID,
		med.Name,
		med.Dosage,
		med.Frequency,
		med.Times,
		med.Notes,
		med.CreatedAt,
		med.UpdatedAt,
	)

	return err
}

func (s *PostgresMedicationsStorage) UpdateMedication(ctx context.Context, med *storage.Medication) error {
	med.UpdatedAt = time.Now().UTC()

	const query = `
		UPDATE medications
		SET name = $3, dosage = $4, frequency = $5, times = $6, notes = $7, updated_at = $8
		WHERE owner_user_id = $1 AND id = $2
	`

	result, err := s.pool.Exec(ctx, query,
		strings.TrimSpace(med.OwnerUserID),
		med.ID,
		med.Name,
		med.Dosage,
		med.Frequency,
		med.Times,
		med.Notes,
		med.UpdatedAt,
	)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *PostgresMedicationsStorage) DeleteMedication(ctx context.Context, ownerUserID string, id uuid.UUID) error {
	// taken_records and notifications cascade via FK
	const query = `DELETE FROM medications WHERE owner_user_id = $1 AND id = $2`

	result, err := s.pool.Exec(ctx, query, strings.TrimSpace(ownerUserID), id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *PostgresMedicationsStorage) AddTakenRecord(ctx context.Context, r *storage.TakenRecord) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	r.OwnerUserID = strings.TrimSpace(r.OwnerUserID)
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}

	const query = `
		INSERT INTO taken_records (id, owner_user_id, medication_id, date, time, created_at)
		SELECT $1, $2, $3, $4, $5, $6
		WHERE EXISTS (
			SELECT 1 FROM medications WHERE id = $3 AND owner_user_id = $2
		)
	`

	result, err := s.pool.Exec(ctx, query,
		r.ID,
		r.OwnerUserID,
		r.MedicationID,
		r.Date,
		r.Time,
		r.CreatedAt,
	)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *PostgresMedicationsStorage) ListTakenRecords(ctx context.Context, ownerUserID string, medicationID uuid.UUID, from, to string) ([]storage.TakenRecord, error) {
	query := `
		SELECT id, owner_user_id, medication_id, date, time, created_at
		FROM taken_records
		WHERE owner_user_id = $1 AND medication_id = $2
	`

	args := []interface{}{strings.TrimSpace(ownerUserID), medicationID}

	if from != "" {
		args = append(args, from)
		query += " AND date >= $3"
	}
	if to != "" {
		args = append(args, to)
		if from != "" {
			query += " AND date <= $4"
		} else {
			query += " AND date <= $3"
		}
	}

	query += " ORDER BY date ASC, time ASC"

	return s.queryTakenRecords(ctx, query, args...)
}

func (s *PostgresMedicationsStorage) ListTakenByDate(ctx context.Context, ownerUserID string, date string) ([]storage.TakenRecord, error) {
	const query = `
		SELECT id, owner_user_id, medication_id, date, time, created_at
		FROM taken_records
		WHERE owner_user_id = $1 AND date = $2
		ORDER BY time ASC
	`

	return s.queryTakenRecords(ctx, query, strings.TrimSpace(ownerUserID), date)
}

func (s *PostgresMedicationsStorage) queryTakenRecords(ctx context.Context, query string, args ...interface{}) ([]storage.TakenRecord, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []storage.TakenRecord{}
	for rows.Next() {
		var r storage.TakenRecord
		if err := rows.Scan(
			&r.ID,
			&r.OwnerUserID,
			&r.MedicationID,
			&r.Date,
			&r.Time,
			&r.CreatedAt,
		); err != nil {
			return nil, err
		}
		records = append(records, r)
	}

	return records, rows.Err()
}
