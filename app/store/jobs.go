package store

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/hirewire/jobboard/app/models"
)

type JobsStore struct {
	db *sql.DB
}

// GetAll lists jobs newest first. A non-empty ownerID scopes the listing to
// that owner (authenticated variant); an empty ownerID returns everything.
func (s *JobsStore) GetAll(ctx context.Context, ownerID string) ([]models.Job, error) {
	query := `SELECT id, title, type, description, company,
	COALESCE(owner_user_id::text, ''), created_at, updated_at FROM jobs
	WHERE ($1 = '' OR owner_user_id::text = $1)
	ORDER BY created_at DESC`
	var jobs []models.Job
	rows, err := s.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var job models.Job
		var company []byte
		err := rows.Scan(
			&job.ID,
			&job.Title,
			&job.Type,
			&job.Description,
			&company,
			&job.OwnerUserID,
			&job.CreatedAt,
			&job.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(company, &job.Company); err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

func (s *JobsStore) GetByID(ctx context.Context, id, ownerID string) (*models.Job, error) {
	query := `SELECT id, title, type, description, company,
	COALESCE(owner_user_id::text, ''), created_at, updated_at FROM jobs
	WHERE id = $1 AND ($2 = '' OR owner_user_id::text = $2)`
	var job models.Job
	var company []byte
	err := s.db.QueryRowContext(ctx, query, id, ownerID).Scan(
		&job.ID,
		&job.Title,
		&job.Type,
		&job.Description,
		&company,
		&job.OwnerUserID,
		&job.CreatedAt,
		&job.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(company, &job.Company); err != nil {
		return nil, err
	}
	return &job, nil
}

func (s *JobsStore) Create(ctx context.Context, job *models.Job) error {
	query := `
	INSERT INTO jobs (id, title, type, description, company, owner_user_id)
	VALUES ($1, $2, $3, $4, $5, NULLIF($6, '')::uuid)
	RETURNING created_at, updated_at
	`

	company, err := json.Marshal(job.Company)
	if err != nil {
		return err
	}

	job.ID = uuid.NewString()
	err = s.db.QueryRowContext(ctx, query,
		job.ID,
		job.Title,
		job.Type,
		job.Description,
		company,
		job.OwnerUserID,
	).Scan(&job.CreatedAt, &job.UpdatedAt)

	if err != nil {
		return err
	}

	return nil
}

func (s *JobsStore) Update(ctx context.Context, job *models.Job) error {
	query := `UPDATE jobs SET title = $1, type = $2, description = $3,
	company = $4, updated_at = now() WHERE id = $5
	RETURNING updated_at`

	company, err := json.Marshal(job.Company)
	if err != nil {
		return err
	}

	err = s.db.QueryRowContext(ctx, query,
		job.Title,
		job.Type,
		job.Description,
		company,
		job.ID,
	).Scan(&job.UpdatedAt)
	if err != nil {
		return err
	}
	return nil
}

func (s *JobsStore) Delete(ctx context.Context, id, ownerID string) error {
	query := `DELETE FROM jobs WHERE id = $1 AND ($2 = '' OR owner_user_id::text = $2)`
	res, err := s.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
