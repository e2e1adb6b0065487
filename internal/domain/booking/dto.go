package booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/parkhive/parkhive-api/internal/domain/payment"
)

// PaymentRequest is the payment nested in a booking creation
type PaymentRequest struct {
	TotalPrice       float64    `json:"total_price"`
	CreditCardID     *uuid.UUID `json:"credit_card_id"`
	CreditCardNumber string     `json:"credit_card_number"`
}

// CreateBookingRequest for POST /bookings. Dates are RFC3339.
type CreateBookingRequest struct {
	ParkingID uuid.UUID      `json:"parking_id" validate:"required"`
	PriceID   uuid.UUID      `json:"price_id" validate:"required"`
	StartDate time.Time      `json:"start_date" validate:"required"`
	EndDate   time.Time      `json:"end_date" validate:"required"`
	Payment   PaymentRequest `json:"payment"`
}

// UpdateBookingRequest for PATCH /bookings/{id}
type UpdateBookingRequest struct {
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
	Status    *string    `json:"status" validate:"omitempty,min=1,max=50"`
}

// BookingResponse represents a booking in API responses
type BookingResponse struct {
	ID         uuid.UUID                `json:"id"`
	ParkingID  uuid.UUID                `json:"parking_id"`
	PriceID    uuid.UUID                `json:"price_id"`
	PaymentID  *uuid.UUID               `json:"payment_id,omitempty"`
	ClientID   uuid.UUID                `json:"client_id"`
	Status     string                   `json:"status"`
	StartDate  string                   `json:"start_date"`
	EndDate    string                   `json:"end_date"`
	DataStatus string                   `json:"data_status"`
	CreatedAt  string                   `json:"created_at"`
	UpdatedAt  string                   `json:"updated_at"`
	Payment    *payment.PaymentResponse `json:"payment,omitempty"`
}

// BookingResponseFromEntity converts entity to response DTO
func BookingResponseFromEntity(b *Booking) *BookingResponse {
	resp := &BookingResponse{
		ID:         b.ID,
		ParkingID:  b.ParkingID,
		PriceID:    b.PriceID,
		ClientID:   b.ClientID,
		Status:     b.StatusName,
		StartDate:  b.StartDate.Format(time.RFC3339),
		EndDate:    b.EndDate.Format(time.RFC3339),
		DataStatus: string(b.DataStatus),
		CreatedAt:  b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  b.UpdatedAt.Format(time.RFC3339),
	}
	if b.PaymentID.Valid {
		id := b.PaymentID.UUID
		resp.PaymentID = &id
	}
	return resp
}
