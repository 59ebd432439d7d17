package scope

import "errors"

var (
	// ErrInvalidToken is returned when a JWT token is invalid, expired, or malformed.
	ErrInvalidToken = errors.New("invalid token")
	// ErrEmptySecret is returned by New for an empty signing key.
	ErrEmptySecret = errors.New("scope: secret key cannot be empty")
)
