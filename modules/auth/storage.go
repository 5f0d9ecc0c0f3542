package auth

import "context"

// Storage looks up accounts for credential verification. Both lookups match
// the username and email pair exactly; a miss is reported as
// ErrInvalidCredentials rather than a not-found error so the transport never
// leaks which part of the identity was wrong.
type Storage interface {
	FindUser(ctx context.Context, username, email string) (*UserAccount, error)
	FindAdmin(ctx context.Context, username, email string) (*AdminAccount, error)
}
