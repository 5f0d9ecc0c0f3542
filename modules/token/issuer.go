package token

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/dmitrymomot/totpvault/pkg/logger"
	"github.com/dmitrymomot/totpvault/pkg/qrcode"
	"github.com/dmitrymomot/totpvault/pkg/totp"
)

// Issuer generates TOTP secrets for users, records each issuance in the
// ledger, and returns the current code along with provisioning material.
type Issuer struct {
	storage Storage
	ledger  *Ledger
	cfg     IssuerConfig
	logger  *slog.Logger
}

// IssuerOption configures the Issuer.
type IssuerOption func(*Issuer)

// WithIssuerLogger sets a custom logger.
func WithIssuerLogger(l *slog.Logger) IssuerOption {
	return func(i *Issuer) {
		if l != nil {
			i.logger = l
		}
	}
}

// NewIssuer creates the token issuance service.
func NewIssuer(storage Storage, ledger *Ledger, cfg IssuerConfig, opts ...IssuerOption) *Issuer {
	i := &Issuer{
		storage: storage,
		ledger:  ledger,
		cfg:     cfg,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Mode selects how the secret for an issuance is produced.
type Mode string

const (
	// ModeRandom issues a fresh random secret of the requested bit strength.
	ModeRandom Mode = "random"
	// ModeDerived derives the secret deterministically from the user's
	// stored password hash, so reissuing yields the same secret.
	ModeDerived Mode = "derived"
)

// Issue generates a secret for the user in the given mode, records the
// issuance, and returns the current code with its remaining validity
// window plus an otpauth provisioning URI and QR code. bitSize only
// applies to random mode.
func (i *Issuer) Issue(ctx context.Context, userID string, mode Mode, bitSize int) (*IssuedToken, error) {
	account, err := i.storage.FindAccount(ctx, userID)
	if err != nil {
		return nil, err
	}

	var source totp.SecretSource
	switch mode {
	case ModeDerived:
		source = totp.DerivedSecret(account.PasswordHash)
	default:
		source = totp.RandomSecret(bitSize)
	}

	secret, elapsed, err := source.Resolve()
	if err != nil {
		return nil, fmt.Errorf("failed to generate secret: %w", err)
	}

	code, err := totp.GenerateTOTP(secret)
	if err != nil {
		return nil, fmt.Errorf("failed to compute code: %w", err)
	}

	if _, err := i.ledger.Record(ctx, account.ID, account.Username, secret, source.BitSize(), elapsed); err != nil {
		return nil, err
	}

	issued := &IssuedToken{
		Token:            code,
		RemainingSeconds: totp.RemainingSeconds(),
		Secret:           secret,
		ComputationMS:    elapsed,
	}

	uri, err := totp.GetTOTPURI(totp.TOTPParams{
		Secret:      secret,
		AccountName: account.Username,
		Issuer:      i.cfg.IssuerName,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build provisioning uri: %w", err)
	}
	issued.ProvisioningURI = uri

	if png, err := qrcode.GenerateBase64Image(uri, i.cfg.QRCodeSize); err != nil {
		// Provisioning QR is a convenience; the code and secret already
		// answer the request.
		i.logger.WarnContext(ctx, "failed to render provisioning qr code",
			logger.Component("token"),
			logger.UserID(userID),
			logger.Error(err),
		)
	} else {
		issued.QRCodePNG = png
	}

	return issued, nil
}

// Regenerate issues a fresh random secret of the given bit strength for a
// user and reports the measured generation time. Used by administrators to
// rotate a user's secret.
func (i *Issuer) Regenerate(ctx context.Context, userID string, bitSize int) (float64, error) {
	account, err := i.storage.FindAccount(ctx, userID)
	if err != nil {
		return 0, err
	}

	source := totp.RandomSecret(bitSize)
	secret, elapsed, err := source.Resolve()
	if err != nil {
		return 0, fmt.Errorf("failed to generate secret: %w", err)
	}

	if _, err := i.ledger.Record(ctx, account.ID, account.Username, secret, source.BitSize(), elapsed); err != nil {
		return 0, err
	}
	return elapsed, nil
}

// Verify checks a submitted code against a secret using the standard
// plus-minus one step tolerance.
func (i *Issuer) Verify(ctx context.Context, secret, code string) (bool, error) {
	return totp.ValidateTOTP(secret, code)
}
