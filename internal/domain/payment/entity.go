package payment

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/parkhive/parkhive-api/internal/pkg/lifecycle"
)

// Payment represents the payment attached 1:1 to a booking. The card
// reference is optional and survives card deletion as NULL; a raw card
// number may be stored instead.
//
// ClientID and ParkingOwnerID are joined read-only columns used for the
// stakeholder gate; writes ignore them.
type Payment struct {
	ID               uuid.UUID            `db:"id"`
	BookingID        uuid.UUID            `db:"booking_id"`
	TotalPrice       float64              `db:"total_price"`
	CreditCardID     uuid.NullUUID        `db:"credit_card_id"`
	CreditCardNumber sql.NullString       `db:"credit_card_number"`
	Status           string               `db:"status"`
	DataStatus       lifecycle.DataStatus `db:"data_status"`
	CreatedAt        time.Time            `db:"created_at"`
	UpdatedAt        time.Time            `db:"updated_at"`

	ClientID       uuid.UUID `db:"client_id"`
	ParkingOwnerID uuid.UUID `db:"parking_owner_id"`
}

// DefaultStatus is the label new payments start with.
const DefaultStatus = "Pending"
