package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/totpvault/modules/auth"
	"github.com/dmitrymomot/totpvault/pkg/passhash"
	"github.com/dmitrymomot/totpvault/pkg/rbac"
)

type fakeStorage struct {
	users  []*auth.UserAccount
	admins []*auth.AdminAccount
}

func (f *fakeStorage) FindUser(_ context.Context, username, email string) (*auth.UserAccount, error) {
	for _, u := range f.users {
		if u.Username == username && u.Email == email {
			return u, nil
		}
	}
	return nil, auth.ErrInvalidCredentials
}

func (f *fakeStorage) FindAdmin(_ context.Context, username, email string) (*auth.AdminAccount, error) {
	for _, a := range f.admins {
		if a.Username == username && a.Email == email {
			return a, nil
		}
	}
	return nil, auth.ErrInvalidCredentials
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := passhash.Hash(password)
	require.NoError(t, err)
	return hash
}

func TestLoginUser(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	newService := func(t *testing.T, approved bool) *auth.Service {
		t.Helper()
		storage := &fakeStorage{users: []*auth.UserAccount{{
			ID:           "u1",
			Username:     "alice",
			Email:        "alice@example.com",
			PasswordHash: mustHash(t, "pw123"),
			Approved:     approved,
		}}}
		return auth.NewService(storage, auth.Config{AdminAccessPassword: "ADMIN_ACCESS_2025"})
	}

	t.Run("approved user gets a user session", func(t *testing.T) {
		t.Parallel()

		svc := newService(t, true)
		session, err := svc.LoginUser(ctx, "alice", "alice@example.com", "pw123")
		require.NoError(t, err)

		assert.Equal(t, "u1", session.UserID)
		assert.Equal(t, "alice", session.Username)
		assert.Equal(t, rbac.RoleUser, session.Role)
	})

	t.Run("unknown identity", func(t *testing.T) {
		t.Parallel()

		svc := newService(t, true)
		_, err := svc.LoginUser(ctx, "alice", "wrong@example.com", "pw123")
		require.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		t.Parallel()

		svc := newService(t, true)
		_, err := svc.LoginUser(ctx, "alice", "alice@example.com", "nope")
		require.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("correct password on unapproved account", func(t *testing.T) {
		t.Parallel()

		svc := newService(t, false)
		_, err := svc.LoginUser(ctx, "alice", "alice@example.com", "pw123")
		require.ErrorIs(t, err, auth.ErrNotApproved)
	})

	t.Run("wrong password outranks approval state", func(t *testing.T) {
		t.Parallel()

		svc := newService(t, false)
		_, err := svc.LoginUser(ctx, "alice", "alice@example.com", "nope")
		require.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})
}

func TestLoginAdmin(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	newService := func(t *testing.T, role string) *auth.Service {
		t.Helper()
		storage := &fakeStorage{admins: []*auth.AdminAccount{{
			ID:           "a1",
			Username:     "root",
			Email:        "root@example.com",
			PasswordHash: mustHash(t, "pw123"),
			Role:         role,
		}}}
		return auth.NewService(storage, auth.Config{AdminAccessPassword: "ADMIN_ACCESS_2025"})
	}

	t.Run("session carries the stored role", func(t *testing.T) {
		t.Parallel()

		svc := newService(t, rbac.RoleSuperAdmin)
		session, err := svc.LoginAdmin(ctx, "root", "root@example.com", "pw123", "ADMIN_ACCESS_2025")
		require.NoError(t, err)
		assert.Equal(t, rbac.RoleSuperAdmin, session.Role)
	})

	t.Run("wrong access password", func(t *testing.T) {
		t.Parallel()

		svc := newService(t, rbac.RoleAdmin)
		_, err := svc.LoginAdmin(ctx, "root", "root@example.com", "pw123", "guess")
		require.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		t.Parallel()

		svc := newService(t, rbac.RoleAdmin)
		_, err := svc.LoginAdmin(ctx, "root", "root@example.com", "nope", "ADMIN_ACCESS_2025")
		require.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("unknown admin", func(t *testing.T) {
		t.Parallel()

		svc := newService(t, rbac.RoleAdmin)
		_, err := svc.LoginAdmin(ctx, "ghost", "ghost@example.com", "pw123", "ADMIN_ACCESS_2025")
		require.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})
}
