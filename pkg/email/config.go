package email

// Config holds email service configuration.
// Tokens are optional to support development environments where email
// sending is disabled; NewPostmarkClient enforces them when used.
type Config struct {
	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	SenderEmail          string `env:"SENDER_EMAIL"`
}
