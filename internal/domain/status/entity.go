package status

import (
	"time"

	"github.com/google/uuid"
)

// Status is a workflow label from the catalog. Bookings and payments carry
// labels by name; the catalog itself does not constrain assignment.
type Status struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
