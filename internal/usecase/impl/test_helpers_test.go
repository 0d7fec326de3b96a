package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"hive/config"
	"hive/internal/domain/repository"
	"hive/internal/domain/service"
	"hive/internal/infra/persistence/document"
	"hive/internal/infra/persistence/memory"
	"hive/internal/infra/validation"
	mockSvc "hive/internal/mocks/service"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(maxActiveSessions int) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:        12,
			MaxActiveSessions: maxActiveSessions,
		},
		Mail: &config.MailConfig{
			ResetURL: "https://hive.test/reset",
		},
	}
}

// newTestDocuments returns a document store over a fresh in-memory KV.
func newTestDocuments[T any](t *testing.T) (repository.DocumentStore[T], repository.KVStore) {
	t.Helper()

	kv := memory.NewKVStore()

	return document.New[T](kv, validation.New(), newDiscardLogger()), kv
}

// newRecordingPublisher accepts any event and appends it to the returned slice.
func newRecordingPublisher(t *testing.T) (*mockSvc.MockEventPublisher, *[]*service.CollectionEvent) {
	t.Helper()

	events := &[]*service.CollectionEvent{}
	publisher := mockSvc.NewMockEventPublisher(t)
	publisher.EXPECT().
		PublishCollectionEvent(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, event *service.CollectionEvent) error {
			*events = append(*events, event)

			return nil
		}).
		Maybe()

	return publisher, events
}
