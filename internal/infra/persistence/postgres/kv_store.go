package postgres

import (
	"context"

	"hive/internal/domain/repository"
	"hive/internal/errors"
	"hive/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// kvStore keeps every document in the kv_entries table, one row per key.
type kvStore struct {
	db *gorm.DB
}

// NewKVStore creates a KVStore backed by the kv_entries table.
func NewKVStore(db *gorm.DB) repository.KVStore {
	return &kvStore{db: db}
}

// Get returns the raw document stored under key.
func (s *kvStore) Get(ctx context.Context, key string) ([]byte, error) {
	var entry model.KVEntryModel
	if err := s.db.WithContext(ctx).Where(keyIs(key)).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrKeyNotFound
		}

		return nil, errors.Wrapf(err, "failed to read key %q", key)
	}

	return entry.Value, nil
}

// Set upserts the document under key. Concurrent writers race and the last one wins.
func (s *kvStore) Set(ctx context.Context, key string, value []byte) error {
	entry := &model.KVEntryModel{Key: key, Value: value}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(entry).Error
	if err != nil {
		return errors.Wrapf(err, "failed to write key %q", key)
	}

	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (s *kvStore) Delete(ctx context.Context, key string) error {
	if err := s.db.WithContext(ctx).Where(keyIs(key)).Delete(&model.KVEntryModel{}).Error; err != nil {
		return errors.Wrapf(err, "failed to delete key %q", key)
	}

	return nil
}

func keyIs(key string) clause.Expression {
	return clause.Eq{Column: clause.Column{Name: "key"}, Value: key}
}
