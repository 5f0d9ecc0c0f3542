package token

import "errors"

var (
	// ErrNotFound is returned when no ledger entry or user matches the id.
	ErrNotFound = errors.New("not found")

	// ErrEncryption wraps failures to encrypt or decrypt a stored secret.
	ErrEncryption = errors.New("secret encryption failed")
)
