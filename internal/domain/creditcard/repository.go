package creditcard

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository defines credit card data access interface
type Repository interface {
	Create(ctx context.Context, c *CreditCard) error
	GetByID(ctx context.Context, id uuid.UUID) (*CreditCard, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*CreditCard, error)
}

type repository struct {
	db *sqlx.DB
}

const cardSelectColumns = `
	id, owner_id, number, owner_name, expiration_date, created_at, updated_at
`

// NewRepository creates new credit card repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, c *CreditCard) error {
	query := `
		INSERT INTO credit_cards (
			id, owner_id, number, owner_name, expiration_date, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.ExecContext(ctx, query,
		c.ID, c.OwnerID, c.Number, c.OwnerName, c.ExpirationDate, c.CreatedAt, c.UpdatedAt,
	)
	return err
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*CreditCard, error) {
	query := `SELECT ` + cardSelectColumns + ` FROM credit_cards WHERE id = $1`

	var c CreditCard
	err := r.db.GetContext(ctx, &c, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

// Delete removes the row. The payments.credit_card_id FK is ON DELETE SET
// NULL, so payments survive the removal.
func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM credit_cards WHERE id = $1`, id)
	return err
}

func (r *repository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*CreditCard, error) {
	query := `
		SELECT ` + cardSelectColumns + `
		FROM credit_cards
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`
	cards := []*CreditCard{}
	if err := r.db.SelectContext(ctx, &cards, query, ownerID); err != nil {
		return nil, err
	}
	return cards, nil
}
