package price

import "errors"

var (
	ErrPriceNotFound   = errors.New("price not found")
	ErrParkingNotFound = errors.New("parking not found")
	ErrNotParkingOwner = errors.New("not the parking owner")
	ErrPriceExists     = errors.New("Price already exists for this parking.")
)
