package redis

import (
	"context"

	"hive/internal/domain/repository"
	"hive/internal/errors"

	goredis "github.com/redis/go-redis/v9"
)

type kvStore struct {
	rdb goredis.Cmdable
}

// NewKVStore stores each document as a plain redis string without expiry.
func NewKVStore(rdb goredis.Cmdable) repository.KVStore {
	return &kvStore{rdb: rdb}
}

func (s *kvStore) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, repository.ErrKeyNotFound
		}

		return nil, errors.Wrapf(err, "redis get %q", key)
	}

	return value, nil
}

func (s *kvStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.rdb.Set(ctx, key, value, 0).Err(); err != nil {
		return errors.Wrapf(err, "redis set %q", key)
	}

	return nil
}

func (s *kvStore) Delete(ctx context.Context, key string) error {
	if err := s.rdb.Del(ctx, key).Err(); err != nil {
		return errors.Wrapf(err, "redis del %q", key)
	}

	return nil
}
