package token

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/dmitrymomot/totpvault/pkg/logger"
	"github.com/dmitrymomot/totpvault/pkg/totp"
)

// Ledger records every secret issuance and supports soft revocation.
// Entries are append-only: revocation flips the status field, nothing is
// ever removed, and listings include revoked entries.
type Ledger struct {
	storage       Storage
	encryptionKey []byte
	logger        *slog.Logger
}

// LedgerOption configures the Ledger.
type LedgerOption func(*Ledger)

// WithLedgerLogger sets a custom logger.
func WithLedgerLogger(l *slog.Logger) LedgerOption {
	return func(lg *Ledger) {
		if l != nil {
			lg.logger = l
		}
	}
}

// WithEncryptionKey enables AES-256-GCM encryption of stored secrets. A nil
// key leaves secrets in plaintext, matching entries written before a key
// was configured.
func WithEncryptionKey(key []byte) LedgerOption {
	return func(lg *Ledger) { lg.encryptionKey = key }
}

// NewLedger creates the credential ledger.
func NewLedger(storage Storage, opts ...LedgerOption) *Ledger {
	lg := &Ledger{
		storage: storage,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(lg)
	}
	return lg
}

// Record appends an active issuance entry and returns it with the secret
// as issued (the stored copy may be encrypted).
func (lg *Ledger) Record(ctx context.Context, userID, username, secret string, bitSize int, computationMS float64) (*Entry, error) {
	entry := &Entry{
		ID:                newID(),
		UserID:            userID,
		Username:          username,
		SecretKey:         secret,
		BitSize:           bitSize,
		ComputationTimeMS: computationMS,
		CreatedAt:         nowISO(),
		Status:            StatusActive,
	}

	stored := *entry
	if lg.encryptionKey != nil {
		enc, err := totp.EncryptSecret(secret, lg.encryptionKey)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrEncryption, err)
		}
		stored.SecretKey = enc
		stored.SecretEncrypted = true
	}
	if err := lg.storage.InsertEntry(ctx, &stored); err != nil {
		return nil, fmt.Errorf("failed to record issuance: %w", err)
	}

	lg.logger.InfoContext(ctx, "secret issuance recorded",
		logger.Component("token"),
		slog.String("entry_id", entry.ID),
		logger.UserID(userID),
		slog.Int("bit_size", bitSize),
	)
	return entry, nil
}

// Revoke soft-deletes a ledger entry. Revoking an already-revoked entry is
// a no-op success; an unknown id is ErrNotFound.
func (lg *Ledger) Revoke(ctx context.Context, entryID string) error {
	if err := lg.storage.MarkDeleted(ctx, entryID); err != nil {
		return err
	}
	lg.logger.InfoContext(ctx, "ledger entry revoked",
		logger.Component("token"),
		slog.String("entry_id", entryID),
	)
	return nil
}

// List returns all ledger entries newest first, revoked entries included.
// Callers filter by status themselves. Encrypted secrets are decrypted for
// the response.
func (lg *Ledger) List(ctx context.Context) ([]Entry, error) {
	entries, err := lg.storage.ListEntries(ctx)
	if err != nil {
		return nil, err
	}
	for i := range entries {
		if !entries[i].SecretEncrypted {
			continue
		}
		if lg.encryptionKey == nil {
			return nil, fmt.Errorf("%w: entry %s is encrypted but no key is configured", ErrEncryption, entries[i].ID)
		}
		plain, err := totp.DecryptSecret(entries[i].SecretKey, lg.encryptionKey)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %s: %w", ErrEncryption, entries[i].ID, err)
		}
		entries[i].SecretKey = plain
		entries[i].SecretEncrypted = false
	}
	return entries, nil
}
