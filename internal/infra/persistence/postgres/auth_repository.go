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

type authRepository struct {
	db *gorm.DB
}

func NewAuthRepository(db *gorm.DB) repository.AuthRepository {
	return &authRepository{db: db}
}

func (repo *authRepository) Create(ctx context.Context, auth *entity.Authentication) error {
	row := &model.AuthenticationModel{
		ID:             auth.ID,
		UserID:         auth.UserID,
		Provider:       string(auth.Provider),
		ProviderUserID: auth.ProviderUserID,
		PasswordHash:   auth.PasswordHash,
	}

	if err := repo.db.WithContext(ctx).Create(row).Error; err != nil {
		switch classify(err) {
		case uniqueViolation:
			return domainerrors.ErrUserAlreadyExists.WrapMessage("credential already registered")
		case foreignKeyViolation, notNullViolation:
			return domainerrors.ErrUserCreationFailed.WrapMessage("incomplete credential")
		default:
			return domainerrors.NewDatabaseExecuteError(err, "failed to create authentication")
		}
	}

	auth.ID = row.ID
	auth.CreatedAt = row.CreatedAt
	auth.UpdatedAt = row.UpdatedAt

	return nil
}

func (repo *authRepository) FindByProvider(ctx context.Context, provider entity.ProviderType, providerUserID string) (*entity.Authentication, error) {
	row, err := first[model.AuthenticationModel](ctx, repo.db, repository.ErrAuthNotFound,
		"provider = ? AND provider_user_id = ?", string(provider), providerUserID)
	if err != nil {
		return nil, err
	}

	return toAuthentication(row), nil
}

func (repo *authRepository) FindByUser(ctx context.Context, userID uuid.UUID, provider entity.ProviderType) (*entity.Authentication, error) {
	row, err := first[model.AuthenticationModel](ctx, repo.db, repository.ErrAuthNotFound,
		"user_id = ? AND provider = ?", userID, string(provider))
	if err != nil {
		return nil, err
	}

	return toAuthentication(row), nil
}

func (repo *authRepository) UpdatePasswordHash(ctx context.Context, authID uuid.UUID, passwordHash string) error {
	result := repo.db.WithContext(ctx).Model(&model.AuthenticationModel{}).
		Where("id = ?", authID).
		Update("password_hash", passwordHash)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update password hash")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAuthNotFound
	}

	return nil
}

func toAuthentication(row *model.AuthenticationModel) *entity.Authentication {
	return &entity.Authentication{
		ID:             row.ID,
		UserID:         row.UserID,
		Provider:       entity.ProviderType(row.Provider),
		ProviderUserID: row.ProviderUserID,
		PasswordHash:   row.PasswordHash,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
}
