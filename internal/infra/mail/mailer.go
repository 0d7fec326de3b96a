// Package mail delivers transactional email.
package mail

import (
	"context"
	"log/slog"

	"hive/config"
	"hive/internal/domain/constants"
	"hive/internal/domain/service"
	"hive/internal/errors"
)

// NewMailer selects the mail provider from config. Without a mail section
// reset links are only logged.
func NewMailer(cfg *config.Config, logger *slog.Logger) (service.Mailer, error) {
	if cfg.Mail == nil || cfg.Mail.Provider == "" || cfg.Mail.Provider == constants.MailProviderLog {
		logger.Info("Mail provider not configured, reset links will be logged")

		return NewLogMailer(logger), nil
	}

	switch cfg.Mail.Provider {
	case constants.MailProviderSendGrid:
		if cfg.Mail.APIKey == "" {
			return nil, errors.New("api key is required for sendgrid provider")
		}
		if cfg.Mail.SenderEmail == "" {
			return nil, errors.New("sender email is required for sendgrid provider")
		}

		return NewSendGridMailer(cfg.Mail, logger), nil
	default:
		return nil, errors.Errorf("unknown mail provider: %s", cfg.Mail.Provider)
	}
}

type logMailer struct {
	logger *slog.Logger
}

// NewLogMailer writes outgoing mail to the log instead of sending it.
func NewLogMailer(logger *slog.Logger) service.Mailer {
	return &logMailer{logger: logger}
}

func (m *logMailer) SendPasswordReset(ctx context.Context, mail service.PasswordResetMail) error {
	m.logger.InfoContext(ctx, "[LogMailer] Password reset requested",
		slog.String("to", mail.ToEmail),
		slog.String("reset_url", mail.ResetURL),
	)

	return nil
}
