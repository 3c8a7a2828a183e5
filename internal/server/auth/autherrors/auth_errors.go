package autherrors

import "errors"

var (
	ErrInvalidSessionToken = errors.New("invalid session token")
	ErrMissingSessionToken = errors.New("missing session token")
	ErrEmptySessionName    = errors.New("empty session name")
)
