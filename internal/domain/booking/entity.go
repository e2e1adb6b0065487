package booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/parkhive/parkhive-api/internal/pkg/lifecycle"
)

// Booking represents a reservation of a parking for a date range.
//
// ParkingOwnerID is a joined read-only column used for the stakeholder
// gate; writes ignore it.
type Booking struct {
	ID         uuid.UUID            `db:"id"`
	ParkingID  uuid.UUID            `db:"parking_id"`
	PriceID    uuid.UUID            `db:"price_id"`
	PaymentID  uuid.NullUUID        `db:"payment_id"`
	ClientID   uuid.UUID            `db:"client_id"`
	StatusName string               `db:"status_name"`
	StartDate  time.Time            `db:"start_date"`
	EndDate    time.Time            `db:"end_date"`
	DataStatus lifecycle.DataStatus `db:"data_status"`
	CreatedAt  time.Time            `db:"created_at"`
	UpdatedAt  time.Time            `db:"updated_at"`

	ParkingOwnerID uuid.UUID `db:"parking_owner_id"`
}

// DefaultStatus is the workflow label new bookings start with.
const DefaultStatus = "Pending"
