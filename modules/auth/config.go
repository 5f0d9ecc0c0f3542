package auth

// Config holds the shared admin access password. The default matches the
// value seeded by first-run setup and exists so a fresh deployment works out
// of the box; rotate it through the environment in anything public.
type Config struct {
	AdminAccessPassword string `env:"ADMIN_ACCESS_PASSWORD" envDefault:"ADMIN_ACCESS_2025"`
}
