package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/hirewire/jobboard/app/models"
)

// ErrDuplicateEmail is returned by Users.Create when the email unique index
// rejects the insert. The check and the insert are a single atomic operation
// at the storage layer, so concurrent signups for the same email cannot race.
var ErrDuplicateEmail = errors.New("email already registered")

type Storage struct {
	Users interface {
		GetByID(ctx context.Context, id string) (*models.User, error)
		GetByEmail(ctx context.Context, email string) (*models.User, error)
		Create(ctx context.Context, user *models.User) error
	}
	Jobs interface {
		GetAll(ctx context.Context, ownerID string) ([]models.Job, error)
		GetByID(ctx context.Context, id, ownerID string) (*models.Job, error)
		Create(ctx context.Context, job *models.Job) error
		Update(ctx context.Context, job *models.Job) error
		Delete(ctx context.Context, id, ownerID string) error
	}
}

func NewStorage(db *sql.DB) Storage {
	return Storage{
		Users: &UsersStore{db: db},
		Jobs:  &JobsStore{db: db},
	}
}
