package repository

import (
	"context"

	"hive/internal/domain/entity"
	"hive/internal/errors"

	"github.com/google/uuid"
)

var (
	ErrRefreshTokenNotFound = errors.New("refresh token not found")
	ErrRefreshTokenExpired  = errors.New("refresh token has expired")
)

// RefreshTokenRepository stores one row per signed-in session. Only the hash
// of a refresh token is ever persisted.
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *entity.RefreshToken) error

	// FindByHash returns ErrRefreshTokenExpired for rows past their expiry.
	FindByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)

	// ListActive returns the unexpired sessions of a user, newest first.
	ListActive(ctx context.Context, userID uuid.UUID) ([]*entity.RefreshToken, error)

	// DeleteByHash ends one session. ErrRefreshTokenNotFound if nothing matched.
	DeleteByHash(ctx context.Context, tokenHash string) error

	// DeleteByUser ends every session of a user.
	DeleteByUser(ctx context.Context, userID uuid.UUID) error

	CountActive(ctx context.Context, userID uuid.UUID) (int, error)
}
