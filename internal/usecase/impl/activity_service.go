package impl

import (
	"context"
	"log/slog"

	deliverycontext "hive/internal/delivery/context"
	"hive/internal/domain/collection"
	"hive/internal/domain/constants"
	"hive/internal/domain/entity"
	"hive/internal/domain/matching"
	"hive/internal/domain/repository"
	"hive/internal/domain/service"
	"hive/internal/errors"
	"hive/internal/usecase"

	"go.uber.org/fx"
)

const defaultActivityLimit = 20

type activityService struct {
	feed   repository.DocumentStore[[]entity.Activity]
	logger *slog.Logger
}

// ActivityServiceParams holds dependencies for ActivityService, injected by Fx.
type ActivityServiceParams struct {
	fx.In

	Feed   repository.DocumentStore[[]entity.Activity]
	Logger *slog.Logger
}

// NewActivityService creates the recent changes feed.
func NewActivityService(params ActivityServiceParams) usecase.ActivityUsecase {
	return &activityService{
		feed:   params.Feed,
		logger: params.Logger,
	}
}

func (srv *activityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerOr(ctx, srv.logger)
}

func (srv *activityService) Record(ctx context.Context, eventID string, event *service.CollectionEvent) error {
	if eventID == "" {
		eventID = entity.NewRecordID()
	}

	feed, err := srv.load(ctx)
	if err != nil {
		return err
	}

	if _, seen := collection.Find(feed, eventID); seen {
		srv.log(ctx).Debug("Activity already recorded", slog.String("event_id", eventID))

		return nil
	}

	feed = collection.Prepend(feed, entity.Activity{
		ID:         eventID,
		Key:        event.Key,
		Action:     string(event.Action),
		TargetID:   event.RecordID,
		ActorID:    event.ActorID,
		Size:       event.Size,
		OccurredAt: event.OccurredAt,
	})
	if len(feed) > entity.ActivityFeedLimit {
		feed = feed[:entity.ActivityFeedLimit]
	}

	if err := srv.feed.Set(ctx, constants.KeyActivity, feed); err != nil {
		return errors.Wrap(err, "failed to save activity feed")
	}

	return nil
}

func (srv *activityService) List(ctx context.Context, key string, limit int) ([]entity.Activity, error) {
	feed, err := srv.load(ctx)
	if err != nil {
		return nil, err
	}

	feed = matching.Filter(feed, matching.EqualFoldUnless(key, func(a entity.Activity) string { return a.Key }))

	if limit <= 0 {
		limit = defaultActivityLimit
	}
	if len(feed) > limit {
		feed = feed[:limit]
	}

	return feed, nil
}

func (srv *activityService) load(ctx context.Context) ([]entity.Activity, error) {
	feed, err := srv.feed.Get(ctx, constants.KeyActivity, []entity.Activity{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load activity feed")
	}

	return nonNil(feed), nil
}
