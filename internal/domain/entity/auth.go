package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProviderType is the credential kind behind an Authentication record.
type ProviderType string

const (
	// ProviderTypeEmail is an email + bcrypt password credential.
	ProviderTypeEmail ProviderType = "email"
)

// Authentication represents a single method of logging in (a credential).
type Authentication struct {
	ID             uuid.UUID    // The unique ID for this specific authentication record itself.
	UserID         uuid.UUID    // Links this authentication method to the User it belongs to.
	Provider       ProviderType // The authentication provider.
	ProviderUserID string       // For the email provider this is the normalized email.
	PasswordHash   string       // Stores the bcrypt-hashed password.
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// RefreshToken represents a long-lived, authorized user session.
// It is used to obtain a new Access Token after the old one expires, without requiring credentials.
type RefreshToken struct {
	ID        uuid.UUID // The unique ID for this specific refresh token record.
	UserID    uuid.UUID // Links this session to the User it belongs to.
	TokenHash string    // Stores a SHA-256 hash of the raw refresh token for secure comparison in the database.
	ExpiresAt time.Time // The exact time when this refresh token will expire and become invalid.
	CreatedAt time.Time // Timestamp of when this session was created (i.e., when the user logged in).
}

// Session is what a signed-in client holds.
type Session struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
	User         *User     `json:"user"`
}

// AuthEventType mirrors the auth state transitions a client can observe.
type AuthEventType string

const (
	AuthEventSignedIn         AuthEventType = "SIGNED_IN"
	AuthEventSignedOut        AuthEventType = "SIGNED_OUT"
	AuthEventTokenRefreshed   AuthEventType = "TOKEN_REFRESHED"
	AuthEventUserUpdated      AuthEventType = "USER_UPDATED"
	AuthEventPasswordRecovery AuthEventType = "PASSWORD_RECOVERY"
)

// AuthEvent is delivered to auth state subscribers.
type AuthEvent struct {
	Type       AuthEventType `json:"type"`
	UserID     uuid.UUID     `json:"user_id"`
	Username   string        `json:"username,omitempty"`
	OccurredAt time.Time     `json:"occurred_at"`
}
