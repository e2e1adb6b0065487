package creditcard

import (
	"time"

	"github.com/parkhive/parkhive-api/internal/pkg/validator"
)

// Card violation messages. Booking reuses ValidateNumber for raw card
// numbers supplied with a nested payment.
const (
	MsgNumberLength = "The credit card number must be exactly 16 characters long"
	MsgNumberDigits = "The credit card number must contain only digits"
	MsgExpiryFuture = "The expiration date must be in the future"
)

// ValidateNumber checks the 16-digit rule, recording at most one violation
// under the given field key.
func ValidateNumber(violations validator.Violations, field, number string) {
	if len(number) != 16 {
		violations.Add(field, MsgNumberLength)
		return
	}
	for _, r := range number {
		if r < '0' || r > '9' {
			violations.Add(field, MsgNumberDigits)
			return
		}
	}
}

// ValidateExpiry requires a strictly future expiration date.
func ValidateExpiry(violations validator.Violations, field string, expiry time.Time) {
	if !expiry.After(time.Now()) {
		violations.Add(field, MsgExpiryFuture)
	}
}
