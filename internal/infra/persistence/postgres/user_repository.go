// Package postgres implements the repositories and the KV store on gorm.
package postgres

import (
	"context"

	"hive/internal/domain/entity"
	domainerrors "hive/internal/domain/errors"
	"hive/internal/domain/repository"
	"hive/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	row, err := first[model.UserModel](ctx, repo.db, repository.ErrUserNotFound, "id = ?", id)
	if err != nil {
		return nil, err
	}

	return toUser(row), nil
}

// FindByEmail expects the normalized (trimmed, lower case) address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	row, err := first[model.UserModel](ctx, repo.db, repository.ErrUserNotFound, "email = ?", email)
	if err != nil {
		return nil, err
	}

	return toUser(row), nil
}

func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	row := fromUser(user)

	if err := repo.db.WithContext(ctx).Create(row).Error; err != nil {
		switch classify(err) {
		case uniqueViolation:
			if mentions(err, "username") {
				return repository.ErrUsernameTaken
			}

			return repository.ErrEmailTaken
		case notNullViolation:
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required user information")
		default:
			return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
		}
	}

	user.ID = row.ID
	user.Roles = entity.DecodeRoles(row.Roles)
	user.CreatedAt = row.CreatedAt
	user.UpdatedAt = row.UpdatedAt

	return nil
}

// Update writes the profile fields and roles. The email is fixed at sign up.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	row := fromUser(user)

	result := repo.db.WithContext(ctx).Model(row).
		Select("username", "avatar_url", "roles", "updated_at").
		Updates(row)
	if err := result.Error; err != nil {
		switch classify(err) {
		case uniqueViolation:
			return repository.ErrUsernameTaken
		case notNullViolation:
			return domainerrors.ErrUserUpdateFailed.WrapMessage("missing required user information")
		default:
			return domainerrors.NewDatabaseExecuteError(err, "failed to update user")
		}
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	user.UpdatedAt = row.UpdatedAt

	return nil
}

func toUser(row *model.UserModel) *entity.User {
	user := &entity.User{
		ID:        row.ID,
		Email:     row.Email,
		AvatarURL: row.AvatarURL,
		Roles:     entity.DecodeRoles(row.Roles),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
	if row.Username != nil {
		user.Username = *row.Username
	}

	return user
}

// fromUser stores an empty username as NULL so any number of accounts can
// leave it unset under the unique index.
func fromUser(user *entity.User) *model.UserModel {
	row := &model.UserModel{
		ID:        user.ID,
		Email:     user.Email,
		AvatarURL: user.AvatarURL,
		Roles:     user.Roles.Encode(),
		CreatedAt: user.CreatedAt,
	}
	if user.Username != "" {
		username := user.Username
		row.Username = &username
	}

	return row
}
