package auth

import "errors"

var (
	// ErrInvalidCredentials is returned for an unknown identity, a wrong
	// password, or a wrong admin access password. The three cases are
	// deliberately indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNotApproved is returned when the credentials are correct but the
	// account has not been approved yet.
	ErrNotApproved = errors.New("account not approved yet")
)
