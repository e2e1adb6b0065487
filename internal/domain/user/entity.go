package user

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/parkhive/parkhive-api/internal/pkg/lifecycle"
)

// User represents an account (matches users table)
type User struct {
	ID        uuid.UUID `db:"id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`

	Username     string `db:"username"`
	Email        string `db:"email"`
	PasswordHash string `db:"password_hash"`
	Role         string `db:"role"` // user, admin

	Phone          sql.NullString `db:"phone"`
	Gender         sql.NullString `db:"gender"` // male, female, other
	ProfilePicture sql.NullString `db:"profile_picture"`

	DataStatus lifecycle.DataStatus `db:"data_status"`
}

// IsDeleted returns true if the account was soft-deleted
func (u *User) IsDeleted() bool {
	return u.DataStatus.IsDeleted()
}

// IsAdmin returns true if the account carries the admin role
func (u *User) IsAdmin() bool {
	return u.Role == "admin"
}
