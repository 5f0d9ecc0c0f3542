package rbac_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/totpvault/pkg/rbac"
)

func TestGatePredicates(t *testing.T) {
	t.Parallel()

	gate := rbac.Default()

	tests := []struct {
		role         string
		superAdmin   bool
		adminOrAbove bool
	}{
		{role: rbac.RoleSuperAdmin, superAdmin: true, adminOrAbove: true},
		{role: rbac.RoleAdmin, superAdmin: false, adminOrAbove: true},
		{role: rbac.RoleUser, superAdmin: false, adminOrAbove: false},
		{role: "made_up", superAdmin: false, adminOrAbove: false},
		{role: "", superAdmin: false, adminOrAbove: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run("role "+tt.role, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.superAdmin, gate.IsSuperAdmin(tt.role))
			assert.Equal(t, tt.adminOrAbove, gate.IsAdminOrAbove(tt.role))
		})
	}
}

func TestGateRequire(t *testing.T) {
	t.Parallel()

	gate := rbac.Default()

	t.Run("admin cannot pass super admin gate", func(t *testing.T) {
		t.Parallel()
		assert.ErrorIs(t, gate.RequireSuperAdmin(rbac.RoleAdmin), rbac.ErrUnauthorized)
		assert.NoError(t, gate.RequireSuperAdmin(rbac.RoleSuperAdmin))
	})

	t.Run("user cannot pass admin gate", func(t *testing.T) {
		t.Parallel()
		assert.ErrorIs(t, gate.RequireAdminOrAbove(rbac.RoleUser), rbac.ErrUnauthorized)
		assert.NoError(t, gate.RequireAdminOrAbove(rbac.RoleAdmin))
		assert.NoError(t, gate.RequireAdminOrAbove(rbac.RoleSuperAdmin))
	})

	t.Run("verify role", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, gate.VerifyRole(rbac.RoleAdmin))
		assert.ErrorIs(t, gate.VerifyRole("made_up"), rbac.ErrUnknownRole)
	})
}

func TestGateFromContext(t *testing.T) {
	t.Parallel()

	gate := rbac.Default()

	t.Run("role claim travels through context", func(t *testing.T) {
		t.Parallel()
		ctx := rbac.SetRoleToContext(context.Background(), rbac.RoleSuperAdmin)
		assert.NoError(t, gate.RequireSuperAdminFromContext(ctx))
		assert.NoError(t, gate.RequireAdminOrAboveFromContext(ctx))
	})

	t.Run("missing claim", func(t *testing.T) {
		t.Parallel()
		err := gate.RequireSuperAdminFromContext(context.Background())
		assert.ErrorIs(t, err, rbac.ErrRoleNotInContext)
	})
}

func TestYAMLRoleSource(t *testing.T) {
	t.Parallel()

	t.Run("valid document", func(t *testing.T) {
		t.Parallel()
		data := []byte("roles:\n  user: 0\n  admin: 50\n  super_admin: 100\n")
		gate, err := rbac.NewGate(context.Background(), rbac.NewYAMLRoleSource(data))
		require.NoError(t, err)
		assert.True(t, gate.IsSuperAdmin(rbac.RoleSuperAdmin))
		assert.False(t, gate.IsSuperAdmin(rbac.RoleAdmin))
	})

	t.Run("missing recognized role", func(t *testing.T) {
		t.Parallel()
		data := []byte("roles:\n  user: 0\n  admin: 50\n")
		_, err := rbac.NewGate(context.Background(), rbac.NewYAMLRoleSource(data))
		assert.ErrorIs(t, err, rbac.ErrMissingRole)
	})

	t.Run("malformed document", func(t *testing.T) {
		t.Parallel()
		_, err := rbac.NewGate(context.Background(), rbac.NewYAMLRoleSource([]byte("roles: [nope")))
		assert.ErrorIs(t, err, rbac.ErrInvalidRoleSource)
	})

	t.Run("empty document", func(t *testing.T) {
		t.Parallel()
		_, err := rbac.NewGate(context.Background(), rbac.NewYAMLRoleSource(nil))
		assert.ErrorIs(t, err, rbac.ErrInvalidRoleSource)
	})
}
