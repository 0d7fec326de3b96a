// Package repository declares the persistence ports: the identity tables and
// the key value store behind the shared collections.
package repository

import (
	"context"

	"hive/internal/domain/entity"
	"hive/internal/errors"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrEmailTaken    = errors.New("email already registered")
	ErrUsernameTaken = errors.New("username already taken")
)

// UserRepository stores accounts. Email and username are unique across
// accounts; Create and Update report a clash as ErrEmailTaken or
// ErrUsernameTaken.
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	// FindByEmail expects an already lowercased address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User) error
}
