package store

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"hive/config"
	"hive/internal/domain/repository"
	"hive/internal/infra/persistence/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestWithPrefix(t *testing.T) {
	ctx := context.Background()
	base := memory.NewKVStore()
	kv := WithPrefix(base, "dev:")

	require.NoError(t, kv.Set(ctx, "hive_cart_items", []byte(`[]`)))

	raw, err := base.Get(ctx, "dev:hive_cart_items")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(raw))

	_, err = base.Get(ctx, "hive_cart_items")
	assert.ErrorIs(t, err, repository.ErrKeyNotFound)

	require.NoError(t, kv.Delete(ctx, "hive_cart_items"))
	_, err = base.Get(ctx, "dev:hive_cart_items")
	assert.ErrorIs(t, err, repository.ErrKeyNotFound)
}

func TestWithPrefix_Empty(t *testing.T) {
	base := memory.NewKVStore()
	assert.Same(t, base, WithPrefix(base, ""))
}

func TestNewKVStore(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name    string
		store   *config.StoreConfig
		wantErr string
	}{
		{name: "defaults to memory", store: nil},
		{name: "memory", store: &config.StoreConfig{Driver: "memory", KeyPrefix: "t:"}},
		{name: "postgres without db", store: &config.StoreConfig{Driver: "postgres"}, wantErr: "requires a database connection"},
		{name: "redis without address", store: &config.StoreConfig{Driver: "redis"}, wantErr: "redis address must be configured"},
		{name: "unknown", store: &config.StoreConfig{Driver: "etcd"}, wantErr: "unsupported store driver"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv, err := NewKVStore(Params{
				Lifecycle: fxtest.NewLifecycle(t),
				Config:    &config.Config{Store: tt.store},
				Logger:    logger,
			})
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}

			require.NoError(t, err)
			require.NoError(t, kv.Set(context.Background(), "k", []byte("v")))
		})
	}
}
