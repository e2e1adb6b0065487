package auth

import "errors"

var (
	ErrUsernameAlreadyExists = errors.New("username already taken")
	ErrEmailAlreadyExists    = errors.New("email already registered")
	ErrInvalidCredentials    = errors.New("invalid username or password")
	ErrInvalidRefreshToken   = errors.New("invalid or expired refresh token")
	ErrRefreshTokenRequired  = errors.New("refresh token is required")
	ErrAccountDeleted        = errors.New("account is deleted")
	ErrUserNotFound          = errors.New("user not found")
)
