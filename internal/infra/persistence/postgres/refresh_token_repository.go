package postgres

import (
	"context"
	"time"

	"hive/internal/domain/entity"
	domainerrors "hive/internal/domain/errors"
	"hive/internal/domain/repository"
	"hive/internal/errors"
	"hive/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type refreshTokenRepository struct {
	db  *gorm.DB
	now func() time.Time
}

func NewRefreshTokenRepository(db *gorm.DB) repository.RefreshTokenRepository {
	return &refreshTokenRepository{db: db, now: time.Now}
}

// active scopes a query to the unexpired sessions of one user.
func (repo *refreshTokenRepository) active(ctx context.Context, userID uuid.UUID) *gorm.DB {
	return repo.db.WithContext(ctx).Model(&model.RefreshTokenModel{}).
		Where("user_id = ? AND expires_at > ?", userID, repo.now())
}

func (repo *refreshTokenRepository) Create(ctx context.Context, token *entity.RefreshToken) error {
	row := &model.RefreshTokenModel{
		ID:        token.ID,
		UserID:    token.UserID,
		TokenHash: token.TokenHash,
		ExpiresAt: token.ExpiresAt,
		CreatedAt: token.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(row).Error; err != nil {
		switch classify(err) {
		case uniqueViolation:
			return domainerrors.ErrRefreshTokenInvalid.WrapMessage("refresh token already exists")
		case foreignKeyViolation:
			return domainerrors.ErrUserCreationFailed.WrapMessage("session for unknown user")
		default:
			return domainerrors.NewDatabaseExecuteError(err, "failed to create refresh token")
		}
	}

	token.ID = row.ID
	token.CreatedAt = row.CreatedAt

	return nil
}

func (repo *refreshTokenRepository) FindByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error) {
	row, err := first[model.RefreshTokenModel](ctx, repo.db, repository.ErrRefreshTokenNotFound, "token_hash = ?", tokenHash)
	if err != nil {
		return nil, err
	}
	if !row.ExpiresAt.After(repo.now()) {
		return nil, repository.ErrRefreshTokenExpired
	}

	return toRefreshToken(row), nil
}

func (repo *refreshTokenRepository) ListActive(ctx context.Context, userID uuid.UUID) ([]*entity.RefreshToken, error) {
	var rows []model.RefreshTokenModel
	if err := repo.active(ctx, userID).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	tokens := make([]*entity.RefreshToken, 0, len(rows))
	for i := range rows {
		tokens = append(tokens, toRefreshToken(&rows[i]))
	}

	return tokens, nil
}

func (repo *refreshTokenRepository) DeleteByHash(ctx context.Context, tokenHash string) error {
	result := repo.db.WithContext(ctx).Where("token_hash = ?", tokenHash).Delete(&model.RefreshTokenModel{})
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrRefreshTokenNotFound
	}

	return nil
}

func (repo *refreshTokenRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	err := repo.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.RefreshTokenModel{}).Error

	return errors.WithStack(err)
}

func (repo *refreshTokenRepository) CountActive(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int64
	if err := repo.active(ctx, userID).Count(&count).Error; err != nil {
		return 0, errors.WithStack(err)
	}

	return int(count), nil
}

func toRefreshToken(row *model.RefreshTokenModel) *entity.RefreshToken {
	return &entity.RefreshToken{
		ID:        row.ID,
		UserID:    row.UserID,
		TokenHash: row.TokenHash,
		ExpiresAt: row.ExpiresAt,
		CreatedAt: row.CreatedAt,
	}
}
