package price

import (
	"time"

	"github.com/google/uuid"
)

// CreatePriceRequest for POST /prices. Duration is an ISO-8601 interval
// string ("P1D", "PT2H30M").
type CreatePriceRequest struct {
	ParkingID uuid.UUID `json:"parking_id" validate:"required"`
	Price     float64   `json:"price"`
	Duration  string    `json:"duration" validate:"required"`
	Currency  string    `json:"currency" validate:"required,currency_code"`
}

// UpdatePriceRequest for PATCH /prices/{id}
type UpdatePriceRequest struct {
	ParkingID *uuid.UUID `json:"parking_id"`
	Price     *float64   `json:"price"`
	Duration  *string    `json:"duration"`
	Currency  *string    `json:"currency" validate:"omitempty,currency_code"`
}

// PriceResponse represents a price in API responses
type PriceResponse struct {
	ID         uuid.UUID `json:"id"`
	ParkingID  uuid.UUID `json:"parking_id"`
	Price      float64   `json:"price"`
	Duration   string    `json:"duration"`
	Currency   string    `json:"currency"`
	DataStatus string    `json:"data_status"`
	CreatedAt  string    `json:"created_at"`
	UpdatedAt  string    `json:"updated_at"`
}

// PriceResponseFromEntity converts entity to response DTO
func PriceResponseFromEntity(p *Price) *PriceResponse {
	return &PriceResponse{
		ID:         p.ID,
		ParkingID:  p.ParkingID,
		Price:      p.Amount,
		Duration:   p.Duration.String(),
		Currency:   p.Currency,
		DataStatus: string(p.DataStatus),
		CreatedAt:  p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  p.UpdatedAt.Format(time.RFC3339),
	}
}
