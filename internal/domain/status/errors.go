package status

import "errors"

var (
	ErrStatusNotFound = errors.New("status not found")
	ErrDuplicateName  = errors.New("status name already exists")
)
