package user

import "errors"

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrNotResourceOwner  = errors.New("not the resource owner")
	ErrDuplicateUsername = errors.New("username already taken")
	ErrDuplicateEmail    = errors.New("email already registered")

	// Deletion guards; the messages travel to the client verbatim.
	ErrHasActiveBookings = errors.New("You have active bookings. You cannot delete your account.")
	ErrParkingsHaveActiveBookings = errors.New("Your parkings have active bookings. You cannot delete your account.")
)
