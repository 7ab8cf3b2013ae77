package store

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirewire/jobboard/app/models"
)

/*
JobsStore Test Cases:

1. TestJobsStore_Create_Success
   - Insert succeeds, generated ID and timestamps are set
   - Company is persisted as a JSON document

2. TestJobsStore_GetAll_Success
   - Rows decode including the company document

3. TestJobsStore_GetByID_NotFound

4. TestJobsStore_Update_Success

5. TestJobsStore_Delete_Success / NotFound
   - Zero rows affected maps to sql.ErrNoRows
*/

func setupJobsMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *JobsStore) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err, "Failed to create mock database")

	store := &JobsStore{db: db}

	return db, mock, store
}

func sampleJob() models.Job {
	return models.Job{
		ID:          "9d8a1c2e-0000-0000-0000-000000000001",
		Title:       "Software Developer",
		Type:        "Full-time",
		Description: "C++ Senior Developer",
		Company: models.Company{
			Name:         "HelloWorld",
			ContactEmail: "helloworld@world.com",
			ContactPhone: "0451203698",
		},
		OwnerUserID: "4f9f0c6e-0000-0000-0000-000000000001",
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}

func jobRow(job models.Job) *sqlmock.Rows {
	company := `{"name":"` + job.Company.Name + `","contactEmail":"` + job.Company.ContactEmail + `","contactPhone":"` + job.Company.ContactPhone + `"}`
	return sqlmock.NewRows([]string{
		"id", "title", "type", "description", "company", "owner_user_id", "created_at", "updated_at",
	}).AddRow(
		job.ID, job.Title, job.Type, job.Description, []byte(company),
		job.OwnerUserID, job.CreatedAt, job.UpdatedAt,
	)
}

func TestJobsStore_Create_Success(t *testing.T) {
	db, mock, store := setupJobsMockDB(t)
	defer db.Close()

	job := sampleJob()
	job.ID = ""

	now := time.Now()
	mock.ExpectQuery(`INSERT INTO jobs`).
		WithArgs(sqlmock.AnyArg(), job.Title, job.Type, job.Description,
			sqlmock.AnyArg(), job.OwnerUserID).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	err := store.Create(context.Background(), &job)

	require.NoError(t, err)
	assert.NotEmpty(t, job.ID)
	assert.Equal(t, now, job.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJobsStore_GetAll_Success(t *testing.T) {
	db, mock, store := setupJobsMockDB(t)
	defer db.Close()

	stored := sampleJob()
	mock.ExpectQuery(`SELECT id, title, type, description, company`).
		WithArgs(stored.OwnerUserID).
		WillReturnRows(jobRow(stored))

	jobs, err := store.GetAll(context.Background(), stored.OwnerUserID)

	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, stored.Title, jobs[0].Title)
	assert.Equal(t, "HelloWorld", jobs[0].Company.Name)
	assert.Equal(t, "helloworld@world.com", jobs[0].Company.ContactEmail)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJobsStore_GetByID_NotFound(t *testing.T) {
	db, mock, store := setupJobsMockDB(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, title, type, description, company`).
		WithArgs("missing-id", "").
		WillReturnError(sql.ErrNoRows)

	job, err := store.GetByID(context.Background(), "missing-id", "")

	require.Error(t, err)
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.Nil(t, job)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJobsStore_Update_Success(t *testing.T) {
	db, mock, store := setupJobsMockDB(t)
	defer db.Close()

	job := sampleJob()
	job.Type = "Full-Time"

	updatedAt := time.Now()
	mock.ExpectQuery(`UPDATE jobs SET title`).
		WithArgs(job.Title, job.Type, job.Description, sqlmock.AnyArg(), job.ID).
		WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(updatedAt))

	err := store.Update(context.Background(), &job)

	require.NoError(t, err)
	assert.Equal(t, updatedAt, job.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJobsStore_Delete_Success(t *testing.T) {
	db, mock, store := setupJobsMockDB(t)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM jobs WHERE id`).
		WithArgs("job-1", "owner-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := store.Delete(context.Background(), "job-1", "owner-1")

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJobsStore_Delete_NotFound(t *testing.T) {
	db, mock, store := setupJobsMockDB(t)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM jobs WHERE id`).
		WithArgs("missing-id", "").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := store.Delete(context.Background(), "missing-id", "")

	require.Error(t, err)
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}
