package parking

import "errors"

var (
	ErrParkingNotFound = errors.New("parking not found")
	ErrNotParkingOwner = errors.New("not the parking owner")
	ErrOwnerNotFound   = errors.New("parking owner does not exist")
)
