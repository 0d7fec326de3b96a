package pubsub

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hive/config"
	"hive/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func newParams(t *testing.T, cfg *config.PubSubConfig) PublisherParams {
	t.Helper()

	return PublisherParams{
		Lc:     fxtest.NewLifecycle(t),
		Ctx:    context.Background(),
		Config: &config.Config{PubSub: cfg},
		Logger: discardLogger,
	}
}

func TestNewEventPublisher_Validation(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr string
	}{
		{name: "nil config", cfg: nil},
		{name: "noop", cfg: &config.PubSubConfig{Provider: "noop"}},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: "local"}, wantErr: "local endpoint is required"},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: "google"}, wantErr: "project ID is required"},
		{name: "google without topic", cfg: &config.PubSubConfig{Provider: "google", ProjectID: "p"}, wantErr: "topic ID is required"},
		{name: "nats without url", cfg: &config.PubSubConfig{Provider: "nats"}, wantErr: "NATS URL is required"},
		{name: "unknown", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: "unknown pubsub provider"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher, err := NewEventPublisher(newParams(t, tt.cfg))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.NoError(t, publisher.PublishCollectionEvent(context.Background(), &service.CollectionEvent{Key: "k"}))
		})
	}
}

func TestLocalHTTPPublisher_Publish(t *testing.T) {
	var received PushEnvelope
	var requestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		_ = json.NewDecoder(r.Body).Decode(&received)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	publisher, err := NewEventPublisher(newParams(t, &config.PubSubConfig{Provider: "local", LocalEndpoint: srv.URL}))
	require.NoError(t, err)

	event := &service.CollectionEvent{
		RequestID:  "req-1",
		Key:        "hive_cart_items",
		Action:     service.CollectionActionAdded,
		RecordID:   "42",
		Size:       3,
		OccurredAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}
	require.NoError(t, publisher.PublishCollectionEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "hive_cart_items", received.Message.Attributes["key"])
	assert.Equal(t, "added", received.Message.Attributes["action"])
	assert.Equal(t, "3", received.Message.Attributes["size"])
	assert.NotEmpty(t, received.Message.MessageID)

	assert.Equal(t, localSubscription, received.Subscription)

	data, err := received.Message.Payload()
	require.NoError(t, err)
	decoded, err := DecodeEvent(data)
	require.NoError(t, err)
	assert.Equal(t, event, decoded)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, discardLogger)
	err := publisher.PublishCollectionEvent(context.Background(), &service.CollectionEvent{Key: "k"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestEventAttributes_OmitsEmpty(t *testing.T) {
	attrs := eventAttributes(&service.CollectionEvent{Key: "k", Action: service.CollectionActionReset})

	assert.Equal(t, map[string]string{"key": "k", "action": "reset", "size": "0"}, attrs)
}

func TestDecodeEvent_Malformed(t *testing.T) {
	tests := map[string][]byte{
		"not json":   []byte("{"),
		"no key":     []byte(`{"action":"added"}`),
		"wrong type": []byte(`{"key":"k","size":"three"}`),
	}

	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeEvent(data)
			assert.ErrorIs(t, err, ErrMalformedEvent)
		})
	}
}

func TestPushMessage_PayloadRejectsBadBase64(t *testing.T) {
	_, err := PushMessage{Data: "%%%"}.Payload()

	assert.ErrorIs(t, err, ErrMalformedEvent)
}
