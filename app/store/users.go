package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/hirewire/jobboard/app/models"
)

const pgUniqueViolation = "23505"

type UsersStore struct {
	db *sql.DB
}

func (s *UsersStore) GetByID(ctx context.Context, id string) (*models.User, error) {
	query := `SELECT id, name, email, password_hash, phone_number,
	gender, date_of_birth, membership_status, created_at FROM users WHERE id = $1`
	var user models.User
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.PhoneNumber,
		&user.Gender,
		&user.DateOfBirth,
		&user.MembershipStatus,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UsersStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT id, name, email, password_hash, phone_number,
	gender, date_of_birth, membership_status, created_at FROM users WHERE email = $1`
	var user models.User
	err := s.db.QueryRowContext(ctx, query, email).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.PhoneNumber,
		&user.Gender,
		&user.DateOfBirth,
		&user.MembershipStatus,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UsersStore) Create(ctx context.Context, user *models.User) error {
	query := `
	INSERT INTO users (id, name, email, password_hash, phone_number, gender, date_of_birth, membership_status)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	RETURNING created_at
	`

	user.ID = uuid.NewString()
	err := s.db.QueryRowContext(ctx, query,
		user.ID,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.PhoneNumber,
		user.Gender,
		user.DateOfBirth,
		user.MembershipStatus,
	).Scan(&user.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return ErrDuplicateEmail
		}
		return err
	}

	return nil
}
