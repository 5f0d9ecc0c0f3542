package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"io"
	"log/slog"

	"github.com/dmitrymomot/totpvault/pkg/logger"
	"github.com/dmitrymomot/totpvault/pkg/passhash"
	"github.com/dmitrymomot/totpvault/pkg/rbac"
)

// Service verifies credentials against the account collections and hands
// out Session role claims. It keeps no session state.
type Service struct {
	storage Storage
	cfg     Config
	logger  *slog.Logger
}

// Option configures the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewService creates the login service.
func NewService(storage Storage, cfg Config, opts ...Option) *Service {
	s := &Service{
		storage: storage,
		cfg:     cfg,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// LoginUser verifies a user's credentials. Unknown identities and wrong
// passwords both come back as ErrInvalidCredentials; a correct password on
// an unapproved account comes back as ErrNotApproved.
func (s *Service) LoginUser(ctx context.Context, username, email, password string) (*Session, error) {
	user, err := s.storage.FindUser(ctx, username, email)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	ok, err := passhash.Verify(password, user.PasswordHash)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}

	if !user.Approved {
		return nil, ErrNotApproved
	}

	s.logger.InfoContext(ctx, "user logged in",
		logger.Component("auth"),
		logger.UserID(user.ID),
		slog.String("username", user.Username),
	)
	return &Session{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     rbac.RoleUser,
	}, nil
}

// LoginAdmin verifies an administrator's credentials plus the shared admin
// access password, and returns a Session carrying the stored role.
func (s *Service) LoginAdmin(ctx context.Context, username, email, password, accessPassword string) (*Session, error) {
	admin, err := s.storage.FindAdmin(ctx, username, email)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	ok, err := passhash.Verify(password, admin.PasswordHash)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}

	if subtle.ConstantTimeCompare([]byte(accessPassword), []byte(s.cfg.AdminAccessPassword)) != 1 {
		return nil, ErrInvalidCredentials
	}

	s.logger.InfoContext(ctx, "admin logged in",
		logger.Component("auth"),
		logger.UserID(admin.ID),
		slog.String("username", admin.Username),
		logger.Role(admin.Role),
	)
	return &Session{
		UserID:   admin.ID,
		Username: admin.Username,
		Email:    admin.Email,
		Role:     admin.Role,
	}, nil
}
