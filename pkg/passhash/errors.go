package passhash

import "errors"

var (
	// ErrFailedToHash is returned when bcrypt cannot hash the password.
	ErrFailedToHash = errors.New("failed to hash password")

	// ErrMalformedHash is returned when the stored hash is not valid bcrypt
	// output. This indicates corrupted data or misconfiguration, not a
	// failed verification.
	ErrMalformedHash = errors.New("malformed password hash")
)
