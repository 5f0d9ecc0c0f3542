package rbac

import "errors"

var (
	// ErrUnauthorized is returned when the claimed role does not carry the
	// required authority level.
	ErrUnauthorized = errors.New("rbac.unauthorized")

	// ErrUnknownRole is returned when a role is not defined in the hierarchy.
	ErrUnknownRole = errors.New("rbac.unknown_role")

	// ErrMissingRole is returned when a role source omits one of the
	// recognized roles.
	ErrMissingRole = errors.New("rbac.missing_role")

	// ErrRoleNotInContext is returned when no role claim is found in the context.
	ErrRoleNotInContext = errors.New("rbac.role_not_in_context")

	// ErrInvalidRoleSource is returned when a role source cannot be parsed.
	ErrInvalidRoleSource = errors.New("rbac.invalid_role_source")
)
