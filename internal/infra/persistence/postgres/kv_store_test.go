package postgres

import (
	"context"
	"testing"

	"hive/internal/domain/repository"
	"hive/internal/infra/persistence/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.UserModel{},
		&model.AuthenticationModel{},
		&model.RefreshTokenModel{},
		&model.KVEntryModel{},
	))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A second connection would open a fresh in-memory database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}

func TestKVStore_GetMissingKey(t *testing.T) {
	store := NewKVStore(newTestDB(t))

	_, err := store.Get(context.Background(), "hive_cart_items")
	assert.ErrorIs(t, err, repository.ErrKeyNotFound)
}

func TestKVStore_SetOverwrites(t *testing.T) {
	ctx := context.Background()
	store := NewKVStore(newTestDB(t))

	require.NoError(t, store.Set(ctx, "hive_cart_items", []byte(`[{"id":"1"}]`)))
	require.NoError(t, store.Set(ctx, "hive_cart_items", []byte(`[]`)))

	got, err := store.Get(ctx, "hive_cart_items")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(got))
}

func TestKVStore_Delete(t *testing.T) {
	ctx := context.Background()
	store := NewKVStore(newTestDB(t))

	require.NoError(t, store.Set(ctx, "hive_rides", []byte(`[]`)))
	require.NoError(t, store.Delete(ctx, "hive_rides"))
	require.NoError(t, store.Delete(ctx, "hive_rides"))

	_, err := store.Get(ctx, "hive_rides")
	assert.ErrorIs(t, err, repository.ErrKeyNotFound)
}

func TestKVStore_KeysAreIndependent(t *testing.T) {
	ctx := context.Background()
	store := NewKVStore(newTestDB(t))

	require.NoError(t, store.Set(ctx, "a", []byte(`1`)))
	require.NoError(t, store.Set(ctx, "b", []byte(`2`)))

	a, err := store.Get(ctx, "a")
	require.NoError(t, err)
	b, err := store.Get(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, "1", string(a))
	assert.Equal(t, "2", string(b))
}
