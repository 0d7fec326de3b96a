package service

import "context"

// PasswordResetMail is the content of a password reset email.
type PasswordResetMail struct {
	ToEmail  string
	ToName   string
	ResetURL string
}

// Mailer sends transactional email.
type Mailer interface {
	SendPasswordReset(ctx context.Context, mail PasswordResetMail) error
}
