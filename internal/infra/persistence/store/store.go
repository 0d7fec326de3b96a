// Package store selects the KVStore backend behind the feature collections.
package store

import (
	"context"
	"log/slog"

	"hive/config"
	"hive/internal/domain/constants"
	"hive/internal/domain/repository"
	"hive/internal/errors"
	"hive/internal/infra/persistence/memory"
	"hive/internal/infra/persistence/postgres"
	"hive/internal/infra/persistence/redis"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Params defines the dependencies of NewKVStore.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
	DB     *gorm.DB `optional:"true"`
}

// NewKVStore builds the backend named by store.driver and applies store.keyPrefix.
func NewKVStore(params Params) (repository.KVStore, error) {
	driver := constants.StoreDriverMemory
	prefix := ""
	if params.Config.Store != nil {
		if params.Config.Store.Driver != "" {
			driver = params.Config.Store.Driver
		}
		prefix = params.Config.Store.KeyPrefix
	}

	var kv repository.KVStore
	switch driver {
	case constants.StoreDriverMemory:
		kv = memory.NewKVStore()
	case constants.StoreDriverPostgres:
		if params.DB == nil {
			return nil, errors.New("store driver postgres requires a database connection")
		}
		kv = postgres.NewKVStore(params.DB)
	case constants.StoreDriverRedis:
		client, err := redis.New(params.Lifecycle, params.Config, params.Logger)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create redis store")
		}
		kv = redis.NewKVStore(client)
	default:
		return nil, errors.Errorf("unsupported store driver: %s", driver)
	}

	params.Logger.Info("Key-value store selected",
		slog.String("driver", driver),
		slog.String("keyPrefix", prefix),
	)

	return WithPrefix(kv, prefix), nil
}

type prefixedStore struct {
	next   repository.KVStore
	prefix string
}

// WithPrefix namespaces every key of kv. An empty prefix returns kv unchanged.
func WithPrefix(kv repository.KVStore, prefix string) repository.KVStore {
	if prefix == "" {
		return kv
	}

	return &prefixedStore{next: kv, prefix: prefix}
}

func (s *prefixedStore) Get(ctx context.Context, key string) ([]byte, error) {
	return s.next.Get(ctx, s.prefix+key)
}

func (s *prefixedStore) Set(ctx context.Context, key string, value []byte) error {
	return s.next.Set(ctx, s.prefix+key, value)
}

func (s *prefixedStore) Delete(ctx context.Context, key string) error {
	return s.next.Delete(ctx, s.prefix+key)
}
