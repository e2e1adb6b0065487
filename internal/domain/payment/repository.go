package payment

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository defines payment data access interface. CreateTx runs inside
// the booking-creation transaction.
type Repository interface {
	CreateTx(ctx context.Context, tx *sqlx.Tx, p *Payment) error
	GetByID(ctx context.Context, id uuid.UUID) (*Payment, error)
	Update(ctx context.Context, p *Payment) error
	List(ctx context.Context) ([]*Payment, error)
	ListByStakeholder(ctx context.Context, userID uuid.UUID) ([]*Payment, error)
}

type repository struct {
	db *sqlx.DB
}

// Reads join through bookings and parkings so the stakeholder gate has the
// client and space owner without a second query.
const paymentSelectColumns = `
	p.id, p.booking_id, p.total_price, p.credit_card_id, p.credit_card_number,
	p.status, p.data_status, p.created_at, p.updated_at,
	b.client_id AS client_id, pk.owner_id AS parking_owner_id
`

const paymentFromClause = `
	FROM payments p
	JOIN bookings b ON b.id = p.booking_id
	JOIN parkings pk ON pk.id = b.parking_id
`

// NewRepository creates new payment repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateTx(ctx context.Context, tx *sqlx.Tx, p *Payment) error {
	query := `
		INSERT INTO payments (
			id, booking_id, total_price, credit_card_id, credit_card_number,
			status, data_status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := tx.ExecContext(ctx, query,
		p.ID, p.BookingID, p.TotalPrice, p.CreditCardID, p.CreditCardNumber,
		p.Status, p.DataStatus, p.CreatedAt, p.UpdatedAt,
	)
	return err
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Payment, error) {
	query := `SELECT ` + paymentSelectColumns + paymentFromClause + ` WHERE p.id = $1 AND p.data_status != 'deleted'`

	var p Payment
	err := r.db.GetContext(ctx, &p, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *repository) Update(ctx context.Context, p *Payment) error {
	query := `
		UPDATE payments SET
			status = $2, data_status = $3, updated_at = NOW()
		WHERE id = $1
	`
	_, err := r.db.ExecContext(ctx, query, p.ID, p.Status, p.DataStatus)
	return err
}

func (r *repository) List(ctx context.Context) ([]*Payment, error) {
	query := `
		SELECT ` + paymentSelectColumns + paymentFromClause + `
		WHERE p.data_status != 'deleted'
		ORDER BY p.created_at DESC
	`
	payments := []*Payment{}
	if err := r.db.SelectContext(ctx, &payments, query); err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *repository) ListByStakeholder(ctx context.Context, userID uuid.UUID) ([]*Payment, error) {
	query := `
		SELECT ` + paymentSelectColumns + paymentFromClause + `
		WHERE p.data_status != 'deleted' AND (b.client_id = $1 OR pk.owner_id = $1)
		ORDER BY p.created_at DESC
	`
	payments := []*Payment{}
	if err := r.db.SelectContext(ctx, &payments, query, userID); err != nil {
		return nil, err
	}
	return payments, nil
}
