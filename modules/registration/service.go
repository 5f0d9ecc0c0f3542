package registration

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/dmitrymomot/totpvault/pkg/email"
	"github.com/dmitrymomot/totpvault/pkg/logger"
	"github.com/dmitrymomot/totpvault/pkg/passhash"
	"github.com/dmitrymomot/totpvault/pkg/rbac"
	"github.com/dmitrymomot/totpvault/pkg/validator"
)

// Service drives the registration approval state machine for both ordinary
// users and administrators: {none} -> pending -> {approved | rejected}.
//
// Uniqueness checks are check-then-write against the document store with no
// atomicity guarantee: two concurrent submissions for the same username can
// both pass the existence check and both insert a pending record. This race
// is an accepted property of the design; the store may add a unique index
// on top, but the workflow does not rely on one.
type Service struct {
	storage  Storage
	gate     *rbac.Gate
	cfg      BootstrapConfig
	logger   *slog.Logger
	notifier email.EmailSender
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

// WithNotifier enables best-effort approval/rejection emails.
func WithNotifier(sender email.EmailSender) Option {
	return func(s *Service) { s.notifier = sender }
}

// NewService creates the registration workflow service.
func NewService(storage Storage, gate *rbac.Gate, cfg BootstrapConfig, opts ...Option) *Service {
	s := &Service{
		storage: storage,
		gate:    gate,
		cfg:     cfg,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SubmitUser submits a user registration for approval. It fails with
// ErrDuplicateIdentity when the username or email belongs to an active
// user and with ErrDuplicatePending when a submission is already waiting.
func (s *Service) SubmitUser(ctx context.Context, username, email, password string) (*PendingUser, error) {
	if err := validator.Apply(
		validator.RequiredString("username", username),
		validator.ValidEmail("email", email),
		validator.RequiredString("password", password),
	); err != nil {
		return nil, err
	}

	if err := s.checkUserUniqueness(ctx, username, email); err != nil {
		return nil, err
	}

	hash, err := passhash.Hash(password)
	if err != nil {
		return nil, err
	}

	pending := &PendingUser{
		ID:           newID(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    nowISO(),
	}
	if err := s.storage.InsertPendingUser(ctx, pending); err != nil {
		return nil, fmt.Errorf("failed to store pending registration: %w", err)
	}

	s.logger.InfoContext(ctx, "user registration submitted",
		logger.Component("registration"),
		slog.String("pending_id", pending.ID),
		slog.String("username", username),
	)
	return pending, nil
}

// ApproveUser turns a pending user registration into an approved identity.
// The approver must claim at least admin authority. The transition creates
// the user first and deletes the pending record second: if the delete fails
// the pending record is orphaned and the error reports it explicitly.
func (s *Service) ApproveUser(ctx context.Context, pendingID, approverRole string) (*User, error) {
	if err := s.gate.RequireAdminOrAbove(approverRole); err != nil {
		return nil, err
	}

	pending, err := s.storage.FindPendingUser(ctx, pendingID)
	if err != nil {
		return nil, err
	}

	user := &User{
		ID:           newID(),
		Username:     pending.Username,
		Email:        pending.Email,
		PasswordHash: pending.PasswordHash,
		Approved:     true,
		CreatedAt:    nowISO(),
	}
	if err := s.storage.InsertUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if err := s.storage.DeletePendingUser(ctx, pendingID); err != nil {
		s.logger.ErrorContext(ctx, "pending record left behind after approval",
			logger.Component("registration"),
			slog.String("pending_id", pendingID),
			logger.UserID(user.ID),
			logger.Error(err),
		)
		return user, fmt.Errorf("%w: %w", ErrOrphanedPending, err)
	}

	s.logger.InfoContext(ctx, "user approved",
		logger.Component("registration"),
		logger.UserID(user.ID),
		slog.String("username", user.Username),
	)
	s.notify(pending.Email, "Registration approved",
		fmt.Sprintf("<p>Hi %s, your account has been approved. You can now sign in.</p>", pending.Username),
		"user-approved")
	return user, nil
}

// RejectUser deletes a pending user registration with no residual trace.
// The approver must claim at least admin authority.
func (s *Service) RejectUser(ctx context.Context, pendingID, approverRole string) error {
	if err := s.gate.RequireAdminOrAbove(approverRole); err != nil {
		return err
	}

	pending, err := s.storage.FindPendingUser(ctx, pendingID)
	if err != nil {
		return err
	}
	if err := s.storage.DeletePendingUser(ctx, pendingID); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "user registration rejected",
		logger.Component("registration"),
		slog.String("pending_id", pendingID),
	)
	s.notify(pending.Email, "Registration rejected",
		fmt.Sprintf("<p>Hi %s, your registration request was not approved.</p>", pending.Username),
		"user-rejected")
	return nil
}

// SubmitAdmin submits an admin registration for super-admin approval.
// The requested role must be one of the two recognized administrative
// roles; anything else fails with ErrInvalidRole before any write.
func (s *Service) SubmitAdmin(ctx context.Context, username, email, password, requestedRole string) (*PendingAdmin, error) {
	if err := validator.Apply(
		validator.RequiredString("username", username),
		validator.ValidEmail("email", email),
		validator.RequiredString("password", password),
	); err != nil {
		return nil, err
	}
	if requestedRole != rbac.RoleAdmin && requestedRole != rbac.RoleSuperAdmin {
		return nil, ErrInvalidRole
	}

	if err := s.checkAdminUniqueness(ctx, username, email); err != nil {
		return nil, err
	}

	hash, err := passhash.Hash(password)
	if err != nil {
		return nil, err
	}

	pending := &PendingAdmin{
		ID:            newID(),
		Username:      username,
		Email:         email,
		PasswordHash:  hash,
		RequestedRole: requestedRole,
		CreatedAt:     nowISO(),
	}
	if err := s.storage.InsertPendingAdmin(ctx, pending); err != nil {
		return nil, fmt.Errorf("failed to store pending admin registration: %w", err)
	}

	s.logger.InfoContext(ctx, "admin registration submitted",
		logger.Component("registration"),
		slog.String("pending_id", pending.ID),
		slog.String("username", username),
		logger.Role(requestedRole),
	)
	return pending, nil
}

// ApproveAdmin turns a pending admin registration into an Admin carrying
// the requested role. Only a super admin may approve.
func (s *Service) ApproveAdmin(ctx context.Context, pendingID, approverRole string) (*Admin, error) {
	if err := s.gate.RequireSuperAdmin(approverRole); err != nil {
		return nil, err
	}

	pending, err := s.storage.FindPendingAdmin(ctx, pendingID)
	if err != nil {
		return nil, err
	}

	admin := &Admin{
		ID:           newID(),
		Username:     pending.Username,
		Email:        pending.Email,
		PasswordHash: pending.PasswordHash,
		Role:         pending.RequestedRole,
		CreatedAt:    nowISO(),
	}
	if err := s.storage.InsertAdmin(ctx, admin); err != nil {
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}

	if err := s.storage.DeletePendingAdmin(ctx, pendingID); err != nil {
		s.logger.ErrorContext(ctx, "pending record left behind after approval",
			logger.Component("registration"),
			slog.String("pending_id", pendingID),
			logger.UserID(admin.ID),
			logger.Error(err),
		)
		return admin, fmt.Errorf("%w: %w", ErrOrphanedPending, err)
	}

	s.logger.InfoContext(ctx, "admin approved",
		logger.Component("registration"),
		logger.UserID(admin.ID),
		slog.String("username", admin.Username),
		logger.Role(admin.Role),
	)
	s.notify(pending.Email, "Admin registration approved",
		fmt.Sprintf("<p>Hi %s, your %s account has been approved.</p>", pending.Username, admin.Role),
		"admin-approved")
	return admin, nil
}

// RejectAdmin deletes a pending admin registration. Only a super admin may
// reject.
func (s *Service) RejectAdmin(ctx context.Context, pendingID, approverRole string) error {
	if err := s.gate.RequireSuperAdmin(approverRole); err != nil {
		return err
	}

	pending, err := s.storage.FindPendingAdmin(ctx, pendingID)
	if err != nil {
		return err
	}
	if err := s.storage.DeletePendingAdmin(ctx, pendingID); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "admin registration rejected",
		logger.Component("registration"),
		slog.String("pending_id", pendingID),
	)
	s.notify(pending.Email, "Admin registration rejected",
		fmt.Sprintf("<p>Hi %s, your admin registration request was not approved.</p>", pending.Username),
		"admin-rejected")
	return nil
}

// CreateAdmin creates an administrator directly, bypassing the pending
// queue. Only a super admin may do this; it exists for manual setup.
func (s *Service) CreateAdmin(ctx context.Context, username, email, password, role, creatorRole string) (*Admin, error) {
	if err := s.gate.RequireSuperAdmin(creatorRole); err != nil {
		return nil, err
	}
	if role != rbac.RoleAdmin && role != rbac.RoleSuperAdmin {
		return nil, ErrInvalidRole
	}

	exists, err := s.storage.AdminExists(ctx, username, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing admin: %w", err)
	}
	if exists {
		return nil, ErrDuplicateIdentity
	}

	hash, err := passhash.Hash(password)
	if err != nil {
		return nil, err
	}

	admin := &Admin{
		ID:           newID(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    nowISO(),
	}
	if err := s.storage.InsertAdmin(ctx, admin); err != nil {
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}
	return admin, nil
}

// InitSuperAdmin creates the first super admin from the bootstrap
// configuration. Allowed only while zero administrator records exist. The
// configured defaults are well-known first-run credentials and must be
// rotated immediately after setup.
func (s *Service) InitSuperAdmin(ctx context.Context) (*Admin, error) {
	count, err := s.storage.CountAdmins(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count admins: %w", err)
	}
	if count > 0 {
		return nil, ErrAlreadyInitialized
	}

	hash, err := passhash.Hash(s.cfg.Password)
	if err != nil {
		return nil, err
	}

	admin := &Admin{
		ID:           newID(),
		Username:     s.cfg.Username,
		Email:        s.cfg.Email,
		PasswordHash: hash,
		Role:         rbac.RoleSuperAdmin,
		CreatedAt:    nowISO(),
	}
	if err := s.storage.InsertAdmin(ctx, admin); err != nil {
		return nil, fmt.Errorf("failed to create super admin: %w", err)
	}

	s.logger.WarnContext(ctx, "bootstrap super admin created with default credentials, rotate them now",
		logger.Component("registration"),
		slog.String("username", admin.Username),
	)
	return admin, nil
}

// ListPendingUsers returns all pending user registrations.
func (s *Service) ListPendingUsers(ctx context.Context) ([]PendingUser, error) {
	return s.storage.ListPendingUsers(ctx)
}

// ListPendingAdmins returns all pending admin registrations. Only a super
// admin may list them.
func (s *Service) ListPendingAdmins(ctx context.Context, callerRole string) ([]PendingAdmin, error) {
	if err := s.gate.RequireSuperAdmin(callerRole); err != nil {
		return nil, err
	}
	return s.storage.ListPendingAdmins(ctx)
}

// ListUsers returns all active users with password hashes zeroed out.
func (s *Service) ListUsers(ctx context.Context) ([]User, error) {
	users, err := s.storage.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i].PasswordHash = ""
	}
	return users, nil
}

func (s *Service) checkUserUniqueness(ctx context.Context, username, email string) error {
	exists, err := s.storage.UserExists(ctx, username, email)
	if err != nil {
		return fmt.Errorf("failed to check existing user: %w", err)
	}
	if exists {
		return ErrDuplicateIdentity
	}

	pending, err := s.storage.PendingUserExists(ctx, username, email)
	if err != nil {
		return fmt.Errorf("failed to check pending registrations: %w", err)
	}
	if pending {
		return ErrDuplicatePending
	}
	return nil
}

func (s *Service) checkAdminUniqueness(ctx context.Context, username, email string) error {
	exists, err := s.storage.AdminExists(ctx, username, email)
	if err != nil {
		return fmt.Errorf("failed to check existing admin: %w", err)
	}
	if exists {
		return ErrDuplicateIdentity
	}

	pending, err := s.storage.PendingAdminExists(ctx, username, email)
	if err != nil {
		return fmt.Errorf("failed to check pending admin registrations: %w", err)
	}
	if pending {
		return ErrDuplicatePending
	}
	return nil
}

// notify sends a best-effort email in the background. Failures are logged
// and never affect the state transition that triggered them.
func (s *Service) notify(sendTo, subject, body, tag string) {
	if s.notifier == nil {
		return
	}

	go func() {
		defer func() {
			if r := recover(); r != nil {
				s.logger.Error("notification panicked",
					logger.Component("registration"),
					slog.Any("panic", r),
				)
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.notifier.SendEmail(ctx, email.SendEmailParams{
			SendTo:   sendTo,
			Subject:  subject,
			BodyHTML: body,
			Tag:      tag,
		}); err != nil {
			s.logger.Error("failed to send notification",
				logger.Component("registration"),
				slog.String("tag", tag),
				logger.Error(err),
			)
		}
	}()
}
