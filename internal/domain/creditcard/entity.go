package creditcard

import (
	"time"

	"github.com/google/uuid"
)

// CreditCard represents a stored payment card. Cards are hard-deleted on
// removal; payments that referenced one keep running with the reference
// set to NULL.
type CreditCard struct {
	ID             uuid.UUID `db:"id"`
	OwnerID        uuid.UUID `db:"owner_id"`
	Number         string    `db:"number"`
	OwnerName      string    `db:"owner_name"`
	ExpirationDate time.Time `db:"expiration_date"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}
