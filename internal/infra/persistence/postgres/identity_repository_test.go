package postgres

import (
	"context"
	"testing"
	"time"

	"hive/internal/domain/entity"
	domainerrors "hive/internal/domain/errors"
	"hive/internal/domain/repository"
	"hive/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createTestUser(t *testing.T, db *gorm.DB, email, username string) *entity.User {
	t.Helper()

	user := &entity.User{Email: email, Username: username, Roles: entity.Roles{entity.RoleMember}}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))

	return user
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewUserRepository(db)

	ann := createTestUser(t, db, "ann@example.com", "")
	assert.NotEqual(t, uuid.Nil, ann.ID)
	assert.Equal(t, uuid.Version(7), ann.ID.Version())
	assert.False(t, ann.CreatedAt.IsZero())

	t.Run("find by id and email", func(t *testing.T) {
		byID, err := repo.FindByID(ctx, ann.ID)
		require.NoError(t, err)
		assert.Equal(t, "ann@example.com", byID.Email)
		assert.Equal(t, entity.Roles{entity.RoleMember}, byID.Roles)

		byEmail, err := repo.FindByEmail(ctx, "ann@example.com")
		require.NoError(t, err)
		assert.Equal(t, ann.ID, byEmail.ID)

		_, err = repo.FindByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, repository.ErrUserNotFound)
	})

	t.Run("usernames may stay unset on many accounts", func(t *testing.T) {
		createTestUser(t, db, "bob@example.com", "")
	})

	t.Run("duplicate email", func(t *testing.T) {
		err := repo.Create(ctx, &entity.User{Email: "ann@example.com"})
		assert.ErrorIs(t, err, repository.ErrEmailTaken)
	})

	t.Run("update profile and roles", func(t *testing.T) {
		ann.Username = "ann"
		ann.AvatarURL = "https://example.com/ann.png"
		ann.Roles = entity.Roles{entity.RoleMember, entity.RoleModerator}
		require.NoError(t, repo.Update(ctx, ann))

		got, err := repo.FindByID(ctx, ann.ID)
		require.NoError(t, err)
		assert.Equal(t, "ann", got.Username)
		assert.Equal(t, "https://example.com/ann.png", got.AvatarURL)
		assert.True(t, got.Roles.Has(entity.RoleModerator))
	})

	t.Run("duplicate username", func(t *testing.T) {
		err := repo.Create(ctx, &entity.User{Email: "other@example.com", Username: "ann"})
		assert.ErrorIs(t, err, repository.ErrUsernameTaken)
	})

	t.Run("update unknown user", func(t *testing.T) {
		err := repo.Update(ctx, &entity.User{ID: uuid.New(), Email: "ghost@example.com"})
		assert.ErrorIs(t, err, repository.ErrUserNotFound)
	})
}

func TestAuthRepository(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewAuthRepository(db)
	user := createTestUser(t, db, "ann@example.com", "")

	auth := &entity.Authentication{
		UserID:         user.ID,
		Provider:       entity.ProviderTypeEmail,
		ProviderUserID: "ann@example.com",
		PasswordHash:   "hash-1",
	}
	require.NoError(t, repo.Create(ctx, auth))
	assert.NotEqual(t, uuid.Nil, auth.ID)

	found, err := repo.FindByProvider(ctx, entity.ProviderTypeEmail, "ann@example.com")
	require.NoError(t, err)
	assert.Equal(t, auth.ID, found.ID)

	require.NoError(t, repo.UpdatePasswordHash(ctx, auth.ID, "hash-2"))
	found, err = repo.FindByUser(ctx, user.ID, entity.ProviderTypeEmail)
	require.NoError(t, err)
	assert.Equal(t, "hash-2", found.PasswordHash)

	err = repo.Create(ctx, &entity.Authentication{UserID: user.ID, Provider: entity.ProviderTypeEmail, ProviderUserID: "ann@example.com"})
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))

	_, err = repo.FindByProvider(ctx, entity.ProviderTypeEmail, "bob@example.com")
	assert.ErrorIs(t, err, repository.ErrAuthNotFound)
	assert.ErrorIs(t, repo.UpdatePasswordHash(ctx, uuid.New(), "x"), repository.ErrAuthNotFound)
}

func TestRefreshTokenRepository(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	user := createTestUser(t, db, "ann@example.com", "")

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	repo := &refreshTokenRepository{db: db, now: func() time.Time { return now }}

	for i, hash := range []string{"old", "new", "expired"} {
		expires := now.Add(time.Hour)
		if hash == "expired" {
			expires = now.Add(-time.Minute)
		}
		require.NoError(t, repo.Create(ctx, &entity.RefreshToken{
			UserID:    user.ID,
			TokenHash: hash,
			ExpiresAt: expires,
			CreatedAt: now.Add(time.Duration(i) * time.Second),
		}))
	}

	count, err := repo.CountActive(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	active, err := repo.ListActive(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, "new", active[0].TokenHash, "newest first")

	_, err = repo.FindByHash(ctx, "expired")
	assert.ErrorIs(t, err, repository.ErrRefreshTokenExpired)
	_, err = repo.FindByHash(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrRefreshTokenNotFound)

	require.NoError(t, repo.DeleteByHash(ctx, "old"))
	assert.ErrorIs(t, repo.DeleteByHash(ctx, "old"), repository.ErrRefreshTokenNotFound)

	require.NoError(t, repo.DeleteByUser(ctx, user.ID))
	count, err = repo.CountActive(ctx, user.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestTransactionManager(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	tm := NewTransactionManager(db)

	t.Run("commit", func(t *testing.T) {
		err := tm.Execute(ctx, func(repos repository.IdentityTx) error {
			user := &entity.User{Email: "ann@example.com"}
			if err := repos.Users().Create(ctx, user); err != nil {
				return err
			}

			return repos.Credentials().Create(ctx, &entity.Authentication{
				UserID: user.ID, Provider: entity.ProviderTypeEmail, ProviderUserID: user.Email,
			})
		})
		require.NoError(t, err)

		_, err = NewAuthRepository(db).FindByProvider(ctx, entity.ProviderTypeEmail, "ann@example.com")
		assert.NoError(t, err)
	})

	t.Run("rollback keeps the callback error", func(t *testing.T) {
		boom := errors.New("boom")
		err := tm.Execute(ctx, func(repos repository.IdentityTx) error {
			if err := repos.Users().Create(ctx, &entity.User{Email: "bob@example.com"}); err != nil {
				return err
			}

			return boom
		})
		assert.ErrorIs(t, err, boom)
		assert.False(t, errors.Is(err, domainerrors.ErrTransactionFailed))

		_, err = NewUserRepository(db).FindByEmail(ctx, "bob@example.com")
		assert.ErrorIs(t, err, repository.ErrUserNotFound)
	})
}
