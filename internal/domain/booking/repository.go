package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/parkhive/parkhive-api/internal/domain/payment"
)

// Repository defines booking data access interface. The counting methods
// back the account-deletion guard in the user service.
type Repository interface {
	CreateWithPayment(ctx context.Context, b *Booking, p *payment.Payment) error
	GetByID(ctx context.Context, id uuid.UUID) (*Booking, error)
	Update(ctx context.Context, b *Booking) error
	List(ctx context.Context) ([]*Booking, error)
	ListByParticipant(ctx context.Context, userID uuid.UUID) ([]*Booking, error)
	ListByClient(ctx context.Context, clientID uuid.UUID) ([]*Booking, error)
	CountActiveByClient(ctx context.Context, clientID uuid.UUID) (int, error)
	CountActiveByParkingOwner(ctx context.Context, ownerID uuid.UUID) (int, error)
}

type repository struct {
	db       *sqlx.DB
	payments payment.Repository
}

const bookingSelectColumns = `
	b.id, b.parking_id, b.price_id, b.payment_id, b.client_id, b.status_name,
	b.start_date, b.end_date, b.data_status, b.created_at, b.updated_at,
	pk.owner_id AS parking_owner_id
`

const bookingFromClause = `
	FROM bookings b
	JOIN parkings pk ON pk.id = b.parking_id
`

// NewRepository creates new booking repository
func NewRepository(db *sqlx.DB, payments payment.Repository) Repository {
	return &repository{db: db, payments: payments}
}

// CreateWithPayment persists the booking and its payment in one
// transaction. The booking row goes in first with a NULL payment reference,
// the payment row points back at it, then the reference is closed.
func (r *repository) CreateWithPayment(ctx context.Context, b *Booking, p *payment.Payment) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	insertBooking := `
		INSERT INTO bookings (
			id, parking_id, price_id, client_id, status_name,
			start_date, end_date, data_status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	if _, err := tx.ExecContext(ctx, insertBooking,
		b.ID, b.ParkingID, b.PriceID, b.ClientID, b.StatusName,
		b.StartDate, b.EndDate, b.DataStatus, b.CreatedAt, b.UpdatedAt,
	); err != nil {
		return mapBookingDBError(err)
	}

	if err := r.payments.CreateTx(ctx, tx, p); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE bookings SET payment_id = $2 WHERE id = $1`, b.ID, p.ID,
	); err != nil {
		return err
	}
	b.PaymentID = uuid.NullUUID{UUID: p.ID, Valid: true}

	return tx.Commit()
}

func mapBookingDBError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}
	if pqErr.Code == "23503" {
		return fmt.Errorf("%w: %w", ErrParkingNotFound, err)
	}
	return err
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	query := `SELECT ` + bookingSelectColumns + bookingFromClause + ` WHERE b.id = $1 AND b.data_status != 'deleted'`

	var b Booking
	err := r.db.GetContext(ctx, &b, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

func (r *repository) Update(ctx context.Context, b *Booking) error {
	query := `
		UPDATE bookings SET
			status_name = $2, start_date = $3, end_date = $4,
			data_status = $5, updated_at = NOW()
		WHERE id = $1
	`
	_, err := r.db.ExecContext(ctx, query,
		b.ID, b.StatusName, b.StartDate, b.EndDate, b.DataStatus,
	)
	return err
}

func (r *repository) List(ctx context.Context) ([]*Booking, error) {
	query := `
		SELECT ` + bookingSelectColumns + bookingFromClause + `
		WHERE b.data_status != 'deleted'
		ORDER BY b.created_at DESC
	`
	bookings := []*Booking{}
	if err := r.db.SelectContext(ctx, &bookings, query); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *repository) ListByParticipant(ctx context.Context, userID uuid.UUID) ([]*Booking, error) {
	query := `
		SELECT ` + bookingSelectColumns + bookingFromClause + `
		WHERE b.data_status != 'deleted' AND (b.client_id = $1 OR pk.owner_id = $1)
		ORDER BY b.created_at DESC
	`
	bookings := []*Booking{}
	if err := r.db.SelectContext(ctx, &bookings, query, userID); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *repository) ListByClient(ctx context.Context, clientID uuid.UUID) ([]*Booking, error) {
	query := `
		SELECT ` + bookingSelectColumns + bookingFromClause + `
		WHERE b.data_status != 'deleted' AND b.client_id = $1
		ORDER BY b.created_at DESC
	`
	bookings := []*Booking{}
	if err := r.db.SelectContext(ctx, &bookings, query, clientID); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *repository) CountActiveByClient(ctx context.Context, clientID uuid.UUID) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM bookings WHERE client_id = $1 AND data_status = 'active'`, clientID)
	return count, err
}

func (r *repository) CountActiveByParkingOwner(ctx context.Context, ownerID uuid.UUID) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM bookings b
		JOIN parkings pk ON pk.id = b.parking_id
		WHERE pk.owner_id = $1 AND b.data_status = 'active'
	`
	var count int
	err := r.db.GetContext(ctx, &count, query, ownerID)
	return count, err
}
