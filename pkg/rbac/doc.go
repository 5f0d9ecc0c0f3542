// Package rbac evaluates caller-supplied role claims against the two-tier
// administrative hierarchy (admin, super_admin) plus the ordinary user role.
//
// The gate is a set of pure predicates over a precomputed level map: a role
// claim goes in, a decision comes out. No session state is held here; the
// claim is trusted as provided, and the RoleSource abstraction exists so a
// deployment can swap the raw string claim for a verified principal (for
// example, levels resolved from a signed token) without touching callers.
//
// Usage:
//
//	gate := rbac.Default()
//	if err := gate.RequireSuperAdmin(approverRole); err != nil {
//	    // rbac.ErrUnauthorized
//	}
//
// Custom hierarchies load from memory or YAML:
//
//	source := rbac.NewYAMLRoleSource(data)
//	gate, err := rbac.NewGate(ctx, source)
package rbac
