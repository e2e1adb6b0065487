package price

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// Repository defines price data access interface
type Repository interface {
	Create(ctx context.Context, p *Price) error
	GetByID(ctx context.Context, id uuid.UUID) (*Price, error)
	Update(ctx context.Context, p *Price) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*Price, error)
	ListActiveByParking(ctx context.Context, parkingID uuid.UUID) ([]*Price, error)
	ExistsActiveForParking(ctx context.Context, parkingID uuid.UUID, excludeID uuid.UUID) (bool, error)
}

type repository struct {
	db *sqlx.DB
}

const priceSelectColumns = `
	id, parking_id, amount, duration, currency, data_status, created_at, updated_at
`

// NewRepository creates new price repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, p *Price) error {
	query := `
		INSERT INTO prices (
			id, parking_id, amount, duration, currency, data_status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query,
		p.ID, p.ParkingID, p.Amount, p.Duration, p.Currency, p.DataStatus, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return mapPriceDBError(err)
	}
	return nil
}

// mapPriceDBError translates constraint failures. 23505 can only come from
// the partial unique index on (parking_id) WHERE data_status = 'active',
// which closes the one-active-price race behind the service-level check.
func mapPriceDBError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}
	switch pqErr.Code {
	case "23505":
		return fmt.Errorf("%w: %w", ErrPriceExists, err)
	case "23503":
		return fmt.Errorf("%w: %w", ErrParkingNotFound, err)
	}
	return err
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Price, error) {
	query := `SELECT ` + priceSelectColumns + ` FROM prices WHERE id = $1`

	var p Price
	err := r.db.GetContext(ctx, &p, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *repository) Update(ctx context.Context, p *Price) error {
	query := `
		UPDATE prices SET
			parking_id = $2, amount = $3, duration = $4, currency = $5,
			data_status = $6, updated_at = NOW()
		WHERE id = $1
	`
	_, err := r.db.ExecContext(ctx, query,
		p.ID, p.ParkingID, p.Amount, p.Duration, p.Currency, p.DataStatus,
	)
	if err != nil {
		return mapPriceDBError(err)
	}
	return nil
}

// Delete removes the row. Prices are hard-deleted.
func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM prices WHERE id = $1`, id)
	return err
}

func (r *repository) List(ctx context.Context) ([]*Price, error) {
	query := `SELECT ` + priceSelectColumns + ` FROM prices ORDER BY created_at DESC`

	prices := []*Price{}
	if err := r.db.SelectContext(ctx, &prices, query); err != nil {
		return nil, err
	}
	return prices, nil
}

func (r *repository) ListActiveByParking(ctx context.Context, parkingID uuid.UUID) ([]*Price, error) {
	query := `
		SELECT ` + priceSelectColumns + `
		FROM prices
		WHERE parking_id = $1 AND data_status = 'active'
		ORDER BY created_at DESC
	`
	prices := []*Price{}
	if err := r.db.SelectContext(ctx, &prices, query, parkingID); err != nil {
		return nil, err
	}
	return prices, nil
}

func (r *repository) ExistsActiveForParking(ctx context.Context, parkingID uuid.UUID, excludeID uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM prices
			WHERE parking_id = $1 AND data_status = 'active' AND id != $2
		)
	`
	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, parkingID, excludeID); err != nil {
		return false, err
	}
	return exists, nil
}
