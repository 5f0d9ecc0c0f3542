package email

import (
	"context"
	"log/slog"
)

// devSender implements EmailSender for local development: it logs the
// email instead of sending it through a provider.
type devSender struct {
	logger *slog.Logger
}

// NewDevSender creates a development email sender that writes emails to the
// log. A nil logger falls back to the default slog logger.
func NewDevSender(logger *slog.Logger) EmailSender {
	if logger == nil {
		logger = slog.Default()
	}
	return &devSender{logger: logger}
}

func (d *devSender) SendEmail(ctx context.Context, params SendEmailParams) error {
	if err := params.Validate(); err != nil {
		return err
	}

	d.logger.InfoContext(ctx, "email (dev sender, not delivered)",
		slog.String("send_to", params.SendTo),
		slog.String("subject", params.Subject),
		slog.String("tag", params.Tag),
	)
	return nil
}
