package token

import "context"

// Storage holds the ledger entries and resolves users for issuance.
type Storage interface {
	InsertEntry(ctx context.Context, e *Entry) error
	// MarkDeleted flips the entry's status to deleted. It reports
	// ErrNotFound only when no entry with the id exists; flipping an
	// already-deleted entry succeeds.
	MarkDeleted(ctx context.Context, entryID string) error
	// ListEntries returns every entry, deleted ones included, newest first.
	ListEntries(ctx context.Context) ([]Entry, error)

	// FindAccount resolves the username and password hash behind a user id.
	FindAccount(ctx context.Context, userID string) (*Account, error)
}

// Account is the slice of a user record issuance needs: the display name
// for the ledger entry and the password hash for derived-secret mode.
type Account struct {
	ID           string `bson:"id"`
	Username     string `bson:"username"`
	PasswordHash string `bson:"password_hash"`
}
