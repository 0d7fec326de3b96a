package impl

import (
	"context"
	"fmt"
	"testing"
	"time"

	"hive/internal/domain/constants"
	"hive/internal/domain/entity"
	"hive/internal/domain/service"
	"hive/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestActivityService(t *testing.T) usecase.ActivityUsecase {
	feed, _ := newTestDocuments[[]entity.Activity](t)

	return NewActivityService(ActivityServiceParams{Feed: feed, Logger: newDiscardLogger()})
}

func newTestEvent(key string, action service.CollectionAction) *service.CollectionEvent {
	return &service.CollectionEvent{
		Key:        key,
		Action:     action,
		RecordID:   "1",
		Size:       4,
		OccurredAt: time.Now().UTC(),
	}
}

func TestActivityService_RecordNewestFirst(t *testing.T) {
	srv := newTestActivityService(t)
	ctx := context.Background()

	require.NoError(t, srv.Record(ctx, "m-1", newTestEvent(constants.KeyCartItems, service.CollectionActionAdded)))
	require.NoError(t, srv.Record(ctx, "m-2", newTestEvent(constants.KeyRentItems, service.CollectionActionRemoved)))

	feed, err := srv.List(ctx, "", 0)

	require.NoError(t, err)
	require.Len(t, feed, 2)
	assert.Equal(t, "m-2", feed[0].ID)
	assert.Equal(t, constants.KeyRentItems, feed[0].Key)
	assert.Equal(t, "removed", feed[0].Action)
	assert.Equal(t, "1", feed[0].TargetID)
	assert.Equal(t, "m-2", feed[0].RecordID())
}

func TestActivityService_RecordIsIdempotent(t *testing.T) {
	srv := newTestActivityService(t)
	ctx := context.Background()
	event := newTestEvent(constants.KeyCartItems, service.CollectionActionAdded)

	require.NoError(t, srv.Record(ctx, "m-1", event))
	require.NoError(t, srv.Record(ctx, "m-1", event))

	feed, err := srv.List(ctx, "", 0)
	require.NoError(t, err)
	assert.Len(t, feed, 1)
}

func TestActivityService_ListFiltersAndLimits(t *testing.T) {
	srv := newTestActivityService(t)
	ctx := context.Background()

	for i := range entity.ActivityFeedLimit + 5 {
		key := constants.KeyCartItems
		if i%2 == 0 {
			key = constants.KeyAutoShares
		}
		require.NoError(t, srv.Record(ctx, fmt.Sprintf("m-%d", i), newTestEvent(key, service.CollectionActionUpdated)))
	}

	all, err := srv.List(ctx, "", 1000)
	require.NoError(t, err)
	assert.Len(t, all, entity.ActivityFeedLimit)
	assert.Equal(t, fmt.Sprintf("m-%d", entity.ActivityFeedLimit+4), all[0].ID)

	defaults, err := srv.List(ctx, "", 0)
	require.NoError(t, err)
	assert.Len(t, defaults, 20)

	rides, err := srv.List(ctx, "HIVE_AUTO_SHARES", 5)
	require.NoError(t, err)
	assert.Len(t, rides, 5)
	for _, a := range rides {
		assert.Equal(t, constants.KeyAutoShares, a.Key)
	}
}

func TestActivityService_RecordWithoutID(t *testing.T) {
	srv := newTestActivityService(t)
	ctx := context.Background()

	require.NoError(t, srv.Record(ctx, "", newTestEvent(constants.KeyRoommates, service.CollectionActionReset)))

	feed, err := srv.List(ctx, constants.KeyRoommates, 0)
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.NotEmpty(t, feed[0].ID)
}
