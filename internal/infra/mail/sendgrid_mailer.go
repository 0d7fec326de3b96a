package mail

import (
	"context"
	"fmt"
	"log/slog"

	"hive/config"
	domainerrors "hive/internal/domain/errors"
	"hive/internal/domain/service"
	"hive/internal/errors"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

const passwordResetSubject = "Reset your Hive password"

// sendClient is the part of *sendgrid.Client used here.
type sendClient interface {
	SendWithContext(ctx context.Context, email *sgmail.SGMailV3) (*rest.Response, error)
}

type sendGridMailer struct {
	client sendClient
	from   *sgmail.Email
	logger *slog.Logger
}

// NewSendGridMailer sends mail through the SendGrid v3 API.
func NewSendGridMailer(cfg *config.MailConfig, logger *slog.Logger) service.Mailer {
	return newSendGridMailer(sendgrid.NewSendClient(cfg.APIKey), cfg, logger)
}

func newSendGridMailer(client sendClient, cfg *config.MailConfig, logger *slog.Logger) *sendGridMailer {
	return &sendGridMailer{
		client: client,
		from:   sgmail.NewEmail(cfg.SenderName, cfg.SenderEmail),
		logger: logger,
	}
}

func (m *sendGridMailer) SendPasswordReset(ctx context.Context, mail service.PasswordResetMail) error {
	to := sgmail.NewEmail(mail.ToName, mail.ToEmail)
	plain := fmt.Sprintf("Use the link below to choose a new password:\n\n%s\n\nIf you did not ask for this, ignore this email.", mail.ResetURL)
	html := fmt.Sprintf(`<p>Use the link below to choose a new password:</p><p><a href="%s">Reset password</a></p><p>If you did not ask for this, ignore this email.</p>`, mail.ResetURL)

	message := sgmail.NewSingleEmail(m.from, passwordResetSubject, to, plain, html)

	resp, err := m.client.SendWithContext(ctx, message)
	if err != nil {
		return errors.Wrap(domainerrors.ErrMailDeliveryFailed, err.Error())
	}
	if resp.StatusCode >= 300 {
		m.logger.ErrorContext(ctx, "SendGrid rejected message",
			slog.Int("status", resp.StatusCode),
			slog.String("body", resp.Body),
		)

		return domainerrors.ErrMailDeliveryFailed.WithDetails(fmt.Sprintf("provider returned status %d", resp.StatusCode))
	}

	m.logger.InfoContext(ctx, "Password reset mail sent", slog.Int("status", resp.StatusCode))

	return nil
}
