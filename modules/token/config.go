package token

// IssuerConfig controls the provisioning material attached to issued
// tokens.
type IssuerConfig struct {
	IssuerName string `env:"TOTP_ISSUER_NAME" envDefault:"TOTP Vault"`
	QRCodeSize int    `env:"TOTP_QR_SIZE" envDefault:"256"`
}
