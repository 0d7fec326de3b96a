package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Values of the "type" claim. Each type is signed with its own secret.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
	TokenTypeReset   = "reset"
)

// Claims is the parsed form of any hive token. Roles are only present on
// access tokens.
type Claims struct {
	UserID uuid.UUID
	Roles  []string
	Type   string
	jwt.RegisteredClaims
}

type TokenService interface {
	// IssuePair signs a new access token carrying roles and a refresh token.
	IssuePair(userID uuid.UUID, roles []string) (accessToken string, refreshToken string, err error)
	IssueResetToken(userID uuid.UUID) (string, error)
	// ParseToken verifies signature and expiry. Callers check Claims.Type.
	ParseToken(tokenString string) (*Claims, error)
	// DigestToken is the form refresh tokens are stored under.
	DigestToken(token string) string
	AccessTTL() time.Duration
	RefreshTTL() time.Duration
}
