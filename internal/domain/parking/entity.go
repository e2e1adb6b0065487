package parking

import (
	"time"

	"github.com/google/uuid"

	"github.com/parkhive/parkhive-api/internal/pkg/lifecycle"
)

// Parking represents a bookable parking space
type Parking struct {
	ID          uuid.UUID            `db:"id"`
	OwnerID     uuid.UUID            `db:"owner_id"`
	Name        string               `db:"name"`
	Description string               `db:"description"`
	Latitude    float64              `db:"latitude"`
	Longitude   float64              `db:"longitude"`
	IsEnabled   bool                 `db:"is_enabled"`
	DataStatus  lifecycle.DataStatus `db:"data_status"`
	CreatedAt   time.Time            `db:"created_at"`
	UpdatedAt   time.Time            `db:"updated_at"`
}

func (p *Parking) IsDeleted() bool {
	return p.DataStatus.IsDeleted()
}
