package payment

import (
	"time"

	"github.com/google/uuid"
)

// UpdatePaymentRequest for PATCH /payments/{id}
type UpdatePaymentRequest struct {
	Status string `json:"status" validate:"required,min=1,max=50"`
}

// PaymentResponse represents a payment in API responses
type PaymentResponse struct {
	ID           uuid.UUID  `json:"id"`
	BookingID    uuid.UUID  `json:"booking_id"`
	TotalPrice   float64    `json:"total_price"`
	CreditCardID *uuid.UUID `json:"credit_card_id,omitempty"`
	Status       string     `json:"status"`
	DataStatus   string     `json:"data_status"`
	CreatedAt    string     `json:"created_at"`
	UpdatedAt    string     `json:"updated_at"`
}

// PaymentResponseFromEntity converts entity to response DTO. The raw card
// number is never serialized.
func PaymentResponseFromEntity(p *Payment) *PaymentResponse {
	resp := &PaymentResponse{
		ID:         p.ID,
		BookingID:  p.BookingID,
		TotalPrice: p.TotalPrice,
		Status:     p.Status,
		DataStatus: string(p.DataStatus),
		CreatedAt:  p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  p.UpdatedAt.Format(time.RFC3339),
	}
	if p.CreditCardID.Valid {
		id := p.CreditCardID.UUID
		resp.CreditCardID = &id
	}
	return resp
}
