package creditcard

import "errors"

var (
	ErrCardNotFound = errors.New("credit card not found")
	ErrNotCardOwner = errors.New("not the card owner")
)
