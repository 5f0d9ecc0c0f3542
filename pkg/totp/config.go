package totp

// Config holds secret-at-rest protection settings. The encryption key is
// optional: when unset, ledger entries store secrets in plain Base32 and
// the service logs a warning at startup.
type Config struct {
	EncryptionKey string `env:"TOTP_ENCRYPTION_KEY"` // Base64-encoded 32-byte AES-256 key
}
