package account

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Input validation errors.
var (
	ErrInvalidEmail = errors.New("email address is not valid")
	ErrWeakPassword = errors.New("password does not meet length requirements")
	ErrInvalidName  = errors.New("name is required")
)
