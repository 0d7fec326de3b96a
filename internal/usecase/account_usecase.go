// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"hive/internal/domain/entity"
	"hive/internal/domain/service"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SignUpInput defines the data required to create an account.
type SignUpInput struct {
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required"`
	Username *string `json:"username,omitempty" validate:"omitempty,min=3,max=32"`
}

// SignInInput defines the data required for a member to sign in.
type SignInInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshSessionInput carries the refresh token of the session to extend.
type RefreshSessionInput struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// SignOutInput carries the refresh token of the session to revoke.
type SignOutInput struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// UpdateProfileInput carries the profile fields to change. Nil fields are kept.
type UpdateProfileInput struct {
	Username  *string `json:"username,omitempty" validate:"omitempty,min=3,max=32"`
	AvatarURL *string `json:"avatar_url,omitempty" validate:"omitempty,url"`
}

// RequestPasswordResetInput defines the data required to send a reset link.
type RequestPasswordResetInput struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordInput defines the data required to set a new password.
type ResetPasswordInput struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required"`
}

// --- Output DTOs ---

// SessionInfo describes the session behind a valid access token.
type SessionInfo struct {
	User      *entity.User `json:"user"`
	ExpiresAt time.Time    `json:"expires_at"`
}

// AccountUsecase is the identity and session provider of the hub.
type AccountUsecase interface {
	// SignUp creates an account and signs it in.
	SignUp(ctx context.Context, input *SignUpInput) (*entity.Session, error)

	// SignIn exchanges credentials for a new session.
	SignIn(ctx context.Context, input *SignInInput) (*entity.Session, error)

	// SignOut revokes the session of the given refresh token.
	SignOut(ctx context.Context, userID uuid.UUID, input *SignOutInput) error

	// RefreshSession issues a new access token for a stored refresh token.
	RefreshSession(ctx context.Context, input *RefreshSessionInput) (*entity.Session, error)

	// GetSession resolves an access token to its user and expiry.
	GetSession(ctx context.Context, accessToken string) (*SessionInfo, error)

	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.User, error)

	// RequestPasswordReset mails a reset link. Unknown emails succeed silently.
	RequestPasswordReset(ctx context.Context, input *RequestPasswordResetInput) error

	// ResetPassword sets a new password and revokes every session of the account.
	ResetPassword(ctx context.Context, input *ResetPasswordInput) error

	// OnAuthStateChange registers listener for the auth events of userID.
	OnAuthStateChange(userID uuid.UUID, listener service.AuthListener) (unsubscribe func())
}
