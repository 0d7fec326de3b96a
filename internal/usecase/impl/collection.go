package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "hive/internal/delivery/context"
	"hive/internal/domain/collection"
	"hive/internal/domain/entity"
	domainerrors "hive/internal/domain/errors"
	"hive/internal/domain/repository"
	"hive/internal/domain/service"
	"hive/internal/errors"
	"hive/internal/usecase"
)

// mutation computes the next collection and reports whether anything changed.
type mutation[T any] func(items []T) (next []T, changed bool)

// sharedCollection loads and stores one feature collection as a whole. Every
// mutation is a read-modify-write of the full snapshot without locking; the
// last write wins.
type sharedCollection[T entity.Record] struct {
	key       string
	docs      repository.DocumentStore[[]T]
	seed      func() []T
	publisher service.EventPublisher
	logger    *slog.Logger
}

func newSharedCollection[T entity.Record](
	key string,
	docs repository.DocumentStore[[]T],
	seed func() []T,
	publisher service.EventPublisher,
	logger *slog.Logger,
) *sharedCollection[T] {
	return &sharedCollection[T]{
		key:       key,
		docs:      docs,
		seed:      seed,
		publisher: publisher,
		logger:    logger,
	}
}

func (c *sharedCollection[T]) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerOr(ctx, c.logger).With(slog.String("key", c.key))
}

// load returns the stored collection, or the seed when the key was never written.
func (c *sharedCollection[T]) load(ctx context.Context) ([]T, error) {
	items, err := c.docs.Get(ctx, c.key, c.seed())
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load %s", c.key)
	}
	if items == nil {
		items = []T{}
	}

	return items, nil
}

// mutate applies fn to the current collection. Unchanged results are returned
// without a write.
func (c *sharedCollection[T]) mutate(
	ctx context.Context,
	actor usecase.Actor,
	action service.CollectionAction,
	recordID string,
	fn mutation[T],
) ([]T, error) {
	items, err := c.load(ctx)
	if err != nil {
		return nil, err
	}

	next, changed := fn(items)
	if !changed {
		c.log(ctx).Debug("Mutation left collection unchanged",
			slog.String("action", string(action)),
			slog.String("record_id", recordID),
		)

		return items, nil
	}

	if err := c.save(ctx, actor, action, recordID, next); err != nil {
		return nil, err
	}

	return next, nil
}

// reset writes the seed back. Only moderators may reset.
func (c *sharedCollection[T]) reset(ctx context.Context, actor usecase.Actor) ([]T, error) {
	if !actor.CanReset() {
		c.log(ctx).Warn("Reset refused", slog.String("actor_id", actor.ID()))

		return nil, errors.Wrap(domainerrors.ErrForbidden, "only moderators can reset collections")
	}

	items := c.seed()
	if err := c.save(ctx, actor, service.CollectionActionReset, "", items); err != nil {
		return nil, err
	}
	c.log(ctx).Info("Collection reset to defaults", slog.String("actor_id", actor.ID()))

	return items, nil
}

func (c *sharedCollection[T]) save(ctx context.Context, actor usecase.Actor, action service.CollectionAction, recordID string, items []T) error {
	if err := c.docs.Set(ctx, c.key, items); err != nil {
		return errors.Wrapf(err, "failed to save %s", c.key)
	}

	c.publish(ctx, &service.CollectionEvent{
		RequestID:  deliverycontext.RequestIDFrom(ctx),
		Key:        c.key,
		Action:     action,
		RecordID:   recordID,
		ActorID:    actor.ID(),
		Size:       len(items),
		OccurredAt: time.Now().UTC(),
	})

	return nil
}

// publish announces the change. The write already happened, so a failed
// publish is logged and not returned.
func (c *sharedCollection[T]) publish(ctx context.Context, event *service.CollectionEvent) {
	if err := c.publisher.PublishCollectionEvent(ctx, event); err != nil {
		c.log(ctx).Warn("Failed to publish collection event",
			slog.String("action", string(event.Action)),
			slog.Any("error", err),
		)
	}
}

// removeByID drops the record carrying id.
func removeByID[T entity.Record](id string) mutation[T] {
	return func(items []T) ([]T, bool) {
		next := collection.Remove(items, id)

		return next, len(next) != len(items)
	}
}

// prepend adds rec in front.
func prepend[T entity.Record](rec T) mutation[T] {
	return func(items []T) ([]T, bool) {
		return collection.Prepend(items, rec), true
	}
}

// toggleByID flips field on the record carrying id.
func toggleByID[T collection.Flaggable[T]](id, field string) mutation[T] {
	return func(items []T) ([]T, bool) {
		rec, ok := collection.Find(items, id)
		if !ok {
			return items, false
		}
		if _, ok := rec.ToggleFlag(field); !ok {
			return items, false
		}

		return collection.Toggle(items, id, field), true
	}
}
