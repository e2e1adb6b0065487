package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// Repository defines user data access interface
type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, u *User) error
	Anonymize(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *sqlx.DB
}

const userSelectColumns = `
	id, username, email, password_hash, role, phone, gender,
	profile_picture, data_status, created_at, updated_at
`

// NewRepository creates new user repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, u *User) error {
	query := `
		INSERT INTO users (
			id, username, email, password_hash, role, phone, gender,
			profile_picture, data_status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.db.ExecContext(ctx, query,
		u.ID, u.Username, u.Email, u.PasswordHash, u.Role, u.Phone, u.Gender,
		u.ProfilePicture, u.DataStatus, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		return mapUserDBError(err)
	}
	return nil
}

func mapUserDBError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}
	if pqErr.Code == "23505" {
		constraint := strings.ToLower(pqErr.Constraint)
		switch {
		case strings.Contains(constraint, "username"):
			return fmt.Errorf("%w: %w", ErrDuplicateUsername, err)
		case strings.Contains(constraint, "email"):
			return fmt.Errorf("%w: %w", ErrDuplicateEmail, err)
		}
	}
	return err
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	query := `SELECT ` + userSelectColumns + ` FROM users WHERE id = $1`

	var u User
	err := r.db.GetContext(ctx, &u, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *repository) GetByUsername(ctx context.Context, username string) (*User, error) {
	query := `SELECT ` + userSelectColumns + ` FROM users WHERE username = $1`

	var u User
	err := r.db.GetContext(ctx, &u, query, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *repository) GetByEmail(ctx context.Context, email string) (*User, error) {
	query := `SELECT ` + userSelectColumns + ` FROM users WHERE email = $1`

	var u User
	err := r.db.GetContext(ctx, &u, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *repository) Update(ctx context.Context, u *User) error {
	query := `
		UPDATE users SET
			username = $2, email = $3, phone = $4, gender = $5,
			profile_picture = $6, data_status = $7, updated_at = NOW()
		WHERE id = $1
	`
	_, err := r.db.ExecContext(ctx, query,
		u.ID, u.Username, u.Email, u.Phone, u.Gender, u.ProfilePicture, u.DataStatus,
	)
	if err != nil {
		return mapUserDBError(err)
	}
	return nil
}

// Anonymize blanks identifying fields and flips the account to deleted in
// one statement, so the row keeps satisfying foreign keys while carrying no
// personal data.
func (r *repository) Anonymize(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE users SET
			username = 'deleted_' || LEFT(id::text, 8),
			email = 'deleted_' || LEFT(id::text, 8) || '@anonymized.invalid',
			phone = NULL,
			profile_picture = NULL,
			data_status = 'deleted',
			updated_at = NOW()
		WHERE id = $1
	`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}
