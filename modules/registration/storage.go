package registration

import "context"

// Storage defines the document-store operations the registration workflow
// needs. All lookups are exact-match or OR-of-exact-match; no transactional
// guarantees are assumed (see the race note on Service).
type Storage interface {
	// User side.
	UserExists(ctx context.Context, username, email string) (bool, error)
	PendingUserExists(ctx context.Context, username, email string) (bool, error)
	InsertPendingUser(ctx context.Context, p *PendingUser) error
	FindPendingUser(ctx context.Context, id string) (*PendingUser, error)
	ListPendingUsers(ctx context.Context) ([]PendingUser, error)
	InsertUser(ctx context.Context, u *User) error
	DeletePendingUser(ctx context.Context, id string) error
	ListUsers(ctx context.Context) ([]User, error)

	// Admin side.
	AdminExists(ctx context.Context, username, email string) (bool, error)
	PendingAdminExists(ctx context.Context, username, email string) (bool, error)
	InsertPendingAdmin(ctx context.Context, p *PendingAdmin) error
	FindPendingAdmin(ctx context.Context, id string) (*PendingAdmin, error)
	ListPendingAdmins(ctx context.Context) ([]PendingAdmin, error)
	InsertAdmin(ctx context.Context, a *Admin) error
	DeletePendingAdmin(ctx context.Context, id string) error
	CountAdmins(ctx context.Context) (int64, error)
}
