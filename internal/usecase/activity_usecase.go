package usecase

import (
	"context"

	"hive/internal/domain/entity"
	"hive/internal/domain/service"
)

// ActivityUsecase maintains the recent changes feed.
type ActivityUsecase interface {
	// Record adds a collection event to the front of the feed. Events already
	// recorded under the same id are ignored, so redelivery is harmless.
	Record(ctx context.Context, eventID string, event *service.CollectionEvent) error

	// List returns up to limit entries, newest first, optionally for one key only.
	List(ctx context.Context, key string, limit int) ([]entity.Activity, error)
}
