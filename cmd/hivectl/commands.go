package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"hive/config"
	"hive/internal/domain/constants"
	"hive/internal/domain/repository"
	"hive/internal/domain/seed"
	"hive/internal/errors"
	logs "hive/internal/infra/log"
	"hive/internal/infra/persistence/model"
	"hive/internal/infra/persistence/postgres"
	"hive/internal/infra/persistence/store"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

type infra struct {
	db     *gorm.DB
	kv     repository.KVStore
	logger *slog.Logger
}

// withInfra starts the config, logger, database and store lifecycle around fn.
// The database is only opened when needDB is set or the store lives in it.
func withInfra(ctx context.Context, needDB bool, fn func(infra) error) error {
	var in infra

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			func(params postgres.Params) (*gorm.DB, error) {
				if !needDB && !storeUsesPostgres(params.Config) {
					return nil, nil
				}

				return postgres.New(params)
			},
			store.NewKVStore,
		),
		fx.Populate(&in.db, &in.kv, &in.logger),
	)
	if err := app.Err(); err != nil {
		return errors.WithStack(err)
	}

	if err := app.Start(ctx); err != nil {
		return errors.WithStack(err)
	}
	defer func() {
		if err := app.Stop(context.Background()); err != nil {
			in.logger.Warn("Failed to stop cleanly", slog.Any("error", err))
		}
	}()

	return fn(in)
}

func storeUsesPostgres(cfg *config.Config) bool {
	return cfg.Store != nil && cfg.Store.Driver == constants.StoreDriverPostgres
}

func migrate(db *gorm.DB, logger *slog.Logger) error {
	if db == nil {
		return errors.New("migrate requires a postgres connection")
	}

	if err := db.AutoMigrate(
		&model.UserModel{},
		&model.AuthenticationModel{},
		&model.RefreshTokenModel{},
		&model.KVEntryModel{},
	); err != nil {
		return errors.Wrap(err, "auto migrate failed")
	}

	logger.Info("Migration completed")

	return nil
}

// seedStore writes the default collections. Keys that already hold a value
// are left alone unless force is set.
func seedStore(ctx context.Context, kv repository.KVStore, force bool, out io.Writer) error {
	docs := seed.Documents()
	keys := make([]string, 0, len(docs))
	for key := range docs {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	for _, key := range keys {
		if !force {
			_, err := kv.Get(ctx, key)
			if err == nil {
				fmt.Fprintf(out, "skip   %s (already stored)\n", key)

				continue
			}
			if !errors.Is(err, repository.ErrKeyNotFound) {
				return errors.Wrapf(err, "failed to read %s", key)
			}
		}

		value, err := json.Marshal(docs[key])
		if err != nil {
			return errors.Wrapf(err, "failed to encode %s", key)
		}
		if err := kv.Set(ctx, key, value); err != nil {
			return errors.Wrapf(err, "failed to write %s", key)
		}
		fmt.Fprintf(out, "seeded %s\n", key)
	}

	return nil
}

func dump(ctx context.Context, kv repository.KVStore, key string, raw bool, out io.Writer) error {
	value, err := kv.Get(ctx, key)
	if errors.Is(err, repository.ErrKeyNotFound) {
		return errors.Errorf("%s is not stored", key)
	}
	if err != nil {
		return errors.Wrapf(err, "failed to read %s", key)
	}

	if !raw {
		var buf bytes.Buffer
		if err := json.Indent(&buf, value, "", "  "); err == nil {
			value = buf.Bytes()
		}
	}

	_, err = fmt.Fprintln(out, string(value))

	return errors.WithStack(err)
}
