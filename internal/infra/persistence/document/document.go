// Package document stores typed JSON documents in a KVStore and validates them
// at the boundary on both read and write.
package document

import (
	"context"
	"encoding/json"
	"log/slog"
	"reflect"

	domainerrors "hive/internal/domain/errors"
	"hive/internal/domain/repository"
	"hive/internal/errors"
	"hive/internal/infra/validation"

	"github.com/go-playground/validator/v10"
)

type store[T any] struct {
	kv       repository.KVStore
	validate *validator.Validate
	logger   *slog.Logger
}

// New returns a DocumentStore for T. validate must come from validation.New.
func New[T any](kv repository.KVStore, validate *validator.Validate, logger *slog.Logger) repository.DocumentStore[T] {
	return &store[T]{kv: kv, validate: validate, logger: logger}
}

func (s *store[T]) Get(ctx context.Context, key string, def T) (T, error) {
	raw, err := s.kv.Get(ctx, key)
	if err != nil {
		if errors.Is(err, repository.ErrKeyNotFound) {
			return def, nil
		}

		return def, errors.Wrap(domainerrors.ErrStoreUnavailable, err.Error())
	}

	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		s.logger.WarnContext(ctx, "Stored document does not decode, using default",
			slog.String("key", key),
			slog.Any("error", err),
		)

		return def, nil
	}

	if err := s.check(value); err != nil {
		s.logger.WarnContext(ctx, "Stored document failed validation, using default",
			slog.String("key", key),
			slog.String("details", validation.Describe(err)),
		)

		return def, nil
	}

	return value, nil
}

func (s *store[T]) Set(ctx context.Context, key string, value T) error {
	if err := s.check(value); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(validation.Describe(err))
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "failed to encode document %q", key)
	}

	if err := s.kv.Set(ctx, key, raw); err != nil {
		return errors.Wrap(domainerrors.ErrStoreUnavailable, err.Error())
	}

	return nil
}

func (s *store[T]) Delete(ctx context.Context, key string) error {
	if err := s.kv.Delete(ctx, key); err != nil {
		return errors.Wrap(domainerrors.ErrStoreUnavailable, err.Error())
	}

	return nil
}

// check validates structs directly and every element of slices.
func (s *store[T]) check(value T) error {
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Struct:
		return s.validate.Struct(rv.Interface())
	case reflect.Slice, reflect.Array:
		return s.validate.Var(rv.Interface(), "dive")
	default:
		return nil
	}
}
