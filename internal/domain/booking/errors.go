package booking

import "errors"

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrNotStakeholder  = errors.New("not a booking stakeholder")
	ErrNotClient       = errors.New("not the booking client")
	ErrParkingNotFound = errors.New("parking not found")
	ErrPriceNotFound   = errors.New("price not found")
	ErrPriceMismatch   = errors.New("price does not belong to this parking")
	ErrCardNotFound    = errors.New("credit card not found")
	ErrNotCardOwner    = errors.New("not the card owner")
)
