package rbac

import (
	"context"
	"fmt"
)

// Recognized roles of the two-tier administrative hierarchy, plus the
// ordinary user role issued by login.
const (
	RoleUser       = "user"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
)

// RoleSource provides the role hierarchy as a map of role name to
// authority level. Higher levels gate stricter operations.
type RoleSource interface {
	Load(ctx context.Context) (map[string]int, error)
}

// Gate evaluates caller-supplied role claims against required authority
// levels. It holds no mutable state; the level map is treated as immutable
// after construction.
//
// The role is a claim supplied by the caller on every check, not derived
// from a verified session. The gate only decides whether the claimed value
// is strong enough for an operation; whatever issues the claim defines the
// actual security boundary. RoleSource keeps that boundary pluggable.
type Gate struct {
	levels map[string]int
}

// NewGate builds a Gate from the given role source.
// The source must define all three recognized roles.
func NewGate(ctx context.Context, source RoleSource) (*Gate, error) {
	levels, err := source.Load(ctx)
	if err != nil {
		return nil, err
	}

	for _, role := range []string{RoleUser, RoleAdmin, RoleSuperAdmin} {
		if _, ok := levels[role]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingRole, role)
		}
	}

	copied := make(map[string]int, len(levels))
	for k, v := range levels {
		copied[k] = v
	}
	return &Gate{levels: copied}, nil
}

// Default returns a Gate with the built-in three-role hierarchy.
func Default() *Gate {
	gate, _ := NewGate(context.Background(), NewInMemRoleSource(nil))
	return gate
}

// VerifyRole returns ErrUnknownRole if the role is not defined.
func (g *Gate) VerifyRole(role string) error {
	if _, ok := g.levels[role]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownRole, role)
	}
	return nil
}

// IsSuperAdmin reports whether the claimed role carries super-admin authority.
func (g *Gate) IsSuperAdmin(role string) bool {
	return g.atLeast(role, RoleSuperAdmin)
}

// IsAdminOrAbove reports whether the claimed role carries at least admin authority.
func (g *Gate) IsAdminOrAbove(role string) bool {
	return g.atLeast(role, RoleAdmin)
}

// RequireSuperAdmin returns ErrUnauthorized unless the claimed role is a
// super admin.
func (g *Gate) RequireSuperAdmin(role string) error {
	if !g.IsSuperAdmin(role) {
		return ErrUnauthorized
	}
	return nil
}

// RequireAdminOrAbove returns ErrUnauthorized unless the claimed role is an
// admin or a super admin.
func (g *Gate) RequireAdminOrAbove(role string) error {
	if !g.IsAdminOrAbove(role) {
		return ErrUnauthorized
	}
	return nil
}

// RequireSuperAdminFromContext checks the role stored in the context.
func (g *Gate) RequireSuperAdminFromContext(ctx context.Context) error {
	role, ok := GetRoleFromContext(ctx)
	if !ok {
		return ErrRoleNotInContext
	}
	return g.RequireSuperAdmin(role)
}

// RequireAdminOrAboveFromContext checks the role stored in the context.
func (g *Gate) RequireAdminOrAboveFromContext(ctx context.Context) error {
	role, ok := GetRoleFromContext(ctx)
	if !ok {
		return ErrRoleNotInContext
	}
	return g.RequireAdminOrAbove(role)
}

func (g *Gate) atLeast(role, required string) bool {
	level, ok := g.levels[role]
	if !ok {
		return false
	}
	return level >= g.levels[required]
}
