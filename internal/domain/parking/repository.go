package parking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// Pagination represents pagination params
type Pagination struct {
	Page  int
	Limit int
}

// Repository defines parking data access interface
type Repository interface {
	Create(ctx context.Context, p *Parking) error
	GetByID(ctx context.Context, id uuid.UUID) (*Parking, error)
	Update(ctx context.Context, p *Parking) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, pagination *Pagination) ([]*Parking, int, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*Parking, error)
}

type repository struct {
	db *sqlx.DB
}

const parkingSelectColumns = `
	id, owner_id, name, description, latitude, longitude,
	is_enabled, data_status, created_at, updated_at
`

// NewRepository creates new parking repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, p *Parking) error {
	query := `
		INSERT INTO parkings (
			id, owner_id, name, description, latitude, longitude,
			is_enabled, data_status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.db.ExecContext(ctx, query,
		p.ID, p.OwnerID, p.Name, p.Description, p.Latitude, p.Longitude,
		p.IsEnabled, p.DataStatus, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return mapParkingDBError(err)
	}
	return nil
}

func mapParkingDBError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}
	if pqErr.Code == "23503" {
		return fmt.Errorf("%w: %w", ErrOwnerNotFound, err)
	}
	return err
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Parking, error) {
	query := `SELECT ` + parkingSelectColumns + ` FROM parkings WHERE id = $1 AND data_status != 'deleted'`

	var p Parking
	err := r.db.GetContext(ctx, &p, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *repository) Update(ctx context.Context, p *Parking) error {
	query := `
		UPDATE parkings SET
			name = $2, description = $3, latitude = $4, longitude = $5,
			is_enabled = $6, data_status = $7, updated_at = NOW()
		WHERE id = $1
	`
	_, err := r.db.ExecContext(ctx, query,
		p.ID, p.Name, p.Description, p.Latitude, p.Longitude, p.IsEnabled, p.DataStatus,
	)
	return err
}

// Delete soft-deletes the parking and hard-deletes its prices in one
// transaction. Prices carry no retention value once the parking is gone.
func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`UPDATE parkings SET data_status = 'deleted', updated_at = NOW() WHERE id = $1`, id,
	); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM prices WHERE parking_id = $1`, id); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *repository) List(ctx context.Context, pagination *Pagination) ([]*Parking, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total,
		`SELECT COUNT(*) FROM parkings WHERE data_status = 'active'`,
	); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT ` + parkingSelectColumns + `
		FROM parkings
		WHERE data_status = 'active'
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
	parkings := []*Parking{}
	offset := (pagination.Page - 1) * pagination.Limit
	if err := r.db.SelectContext(ctx, &parkings, query, pagination.Limit, offset); err != nil {
		return nil, 0, err
	}
	return parkings, total, nil
}

func (r *repository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*Parking, error) {
	query := `
		SELECT ` + parkingSelectColumns + `
		FROM parkings
		WHERE owner_id = $1 AND data_status != 'deleted'
		ORDER BY created_at DESC
	`
	parkings := []*Parking{}
	if err := r.db.SelectContext(ctx, &parkings, query, ownerID); err != nil {
		return nil, err
	}
	return parkings, nil
}
