package usererrors

import (
	"errors"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrMissingCreds = errors.New("user name and password are required")
	ErrEmptyName    = errors.New("empty user name")
)
