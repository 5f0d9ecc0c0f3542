package registration

import "errors"

var (
	// ErrDuplicateIdentity is returned when the username or email already
	// belongs to an active identity of the same kind.
	ErrDuplicateIdentity = errors.New("username or email already exists")

	// ErrDuplicatePending is returned when a registration for the username
	// or email is already awaiting approval.
	ErrDuplicatePending = errors.New("registration already pending approval")

	// ErrInvalidRole is returned when a requested role is not one of the
	// recognized administrative roles.
	ErrInvalidRole = errors.New("invalid role: must be 'admin' or 'super_admin'")

	// ErrNotFound is returned when no pending record matches the given id.
	ErrNotFound = errors.New("registration not found")

	// ErrAlreadyInitialized is returned when bootstrap runs against a store
	// that already holds administrator records.
	ErrAlreadyInitialized = errors.New("super admin already exists")

	// ErrOrphanedPending is returned when the active identity was created
	// but the pending record could not be deleted. The identity exists; the
	// leftover pending record needs manual cleanup or a retried rejection.
	ErrOrphanedPending = errors.New("identity created but pending record not removed")
)
