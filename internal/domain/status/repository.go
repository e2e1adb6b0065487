package status

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// Repository defines status catalog data access interface
type Repository interface {
	Create(ctx context.Context, s *Status) error
	GetByID(ctx context.Context, id uuid.UUID) (*Status, error)
	Update(ctx context.Context, s *Status) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*Status, error)
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates new status repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, s *Status) error {
	query := `
		INSERT INTO statuses (id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.db.ExecContext(ctx, query, s.ID, s.Name, s.CreatedAt, s.UpdatedAt)
	if err != nil {
		return mapStatusDBError(err)
	}
	return nil
}

func mapStatusDBError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}
	if pqErr.Code == "23505" {
		return fmt.Errorf("%w: %w", ErrDuplicateName, err)
	}
	return err
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Status, error) {
	var s Status
	err := r.db.GetContext(ctx, &s,
		`SELECT id, name, created_at, updated_at FROM statuses WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *repository) Update(ctx context.Context, s *Status) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE statuses SET name = $2, updated_at = NOW() WHERE id = $1`, s.ID, s.Name)
	if err != nil {
		return mapStatusDBError(err)
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM statuses WHERE id = $1`, id)
	return err
}

func (r *repository) List(ctx context.Context) ([]*Status, error) {
	statuses := []*Status{}
	err := r.db.SelectContext(ctx, &statuses,
		`SELECT id, name, created_at, updated_at FROM statuses ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	return statuses, nil
}
