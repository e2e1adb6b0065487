package price

import (
	"time"

	"github.com/google/uuid"

	"github.com/parkhive/parkhive-api/internal/pkg/interval"
	"github.com/parkhive/parkhive-api/internal/pkg/lifecycle"
)

// Price represents the tariff of a parking: an amount charged per duration.
type Price struct {
	ID         uuid.UUID            `db:"id"`
	ParkingID  uuid.UUID            `db:"parking_id"`
	Amount     float64              `db:"amount"`
	Duration   interval.Interval    `db:"duration"`
	Currency   string               `db:"currency"`
	DataStatus lifecycle.DataStatus `db:"data_status"`
	CreatedAt  time.Time            `db:"created_at"`
	UpdatedAt  time.Time            `db:"updated_at"`
}
