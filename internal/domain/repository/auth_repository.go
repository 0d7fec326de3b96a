package repository

import (
	"context"

	"hive/internal/domain/entity"
	"hive/internal/errors"

	"github.com/google/uuid"
)

var ErrAuthNotFound = errors.New("authentication method not found")

// AuthRepository stores login credentials. A user has at most one credential
// per provider.
type AuthRepository interface {
	Create(ctx context.Context, auth *entity.Authentication) error

	// FindByProvider looks a credential up by what the user signs in with,
	// e.g. (email, "ann@example.com").
	FindByProvider(ctx context.Context, provider entity.ProviderType, providerUserID string) (*entity.Authentication, error)

	FindByUser(ctx context.Context, userID uuid.UUID, provider entity.ProviderType) (*entity.Authentication, error)

	UpdatePasswordHash(ctx context.Context, authID uuid.UUID, passwordHash string) error
}
