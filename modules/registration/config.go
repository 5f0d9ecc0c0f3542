package registration

// BootstrapConfig holds the credentials for the first super admin created
// by InitSuperAdmin. The defaults exist for first-run convenience only and
// MUST be rotated immediately in any production deployment; they are
// well-known values.
type BootstrapConfig struct {
	Username string `env:"BOOTSTRAP_ADMIN_USERNAME" envDefault:"superadmin"`
	Email    string `env:"BOOTSTRAP_ADMIN_EMAIL" envDefault:"superadmin@totp.com"`
	Password string `env:"BOOTSTRAP_ADMIN_PASSWORD" envDefault:"SuperAdmin@2025"`
}
