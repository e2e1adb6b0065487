package creditcard

import (
	"time"

	"github.com/google/uuid"
)

// CreateCreditCardRequest for POST /credit-cards. ExpirationDate is RFC3339.
type CreateCreditCardRequest struct {
	Number         string    `json:"number" validate:"required"`
	OwnerName      string    `json:"owner_name" validate:"required,min=2,max=100"`
	ExpirationDate time.Time `json:"expiration_date" validate:"required"`
}

// CreditCardResponse represents a stored card in API responses. The number
// is returned masked except for the last four digits.
type CreditCardResponse struct {
	ID             uuid.UUID `json:"id"`
	OwnerID        uuid.UUID `json:"owner_id"`
	Number         string    `json:"number"`
	OwnerName      string    `json:"owner_name"`
	ExpirationDate string    `json:"expiration_date"`
	CreatedAt      string    `json:"created_at"`
}

// CreditCardResponseFromEntity converts entity to response DTO
func CreditCardResponseFromEntity(c *CreditCard) *CreditCardResponse {
	return &CreditCardResponse{
		ID:             c.ID,
		OwnerID:        c.OwnerID,
		Number:         maskNumber(c.Number),
		OwnerName:      c.OwnerName,
		ExpirationDate: c.ExpirationDate.Format(time.RFC3339),
		CreatedAt:      c.CreatedAt.Format(time.RFC3339),
	}
}

func maskNumber(number string) string {
	if len(number) <= 4 {
		return number
	}
	return "************" + number[len(number)-4:]
}
