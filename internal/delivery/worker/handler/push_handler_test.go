package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hive/config"
	deliverycontext "hive/internal/delivery/context"
	domainerrors "hive/internal/domain/errors"
	"hive/internal/domain/service"
	"hive/internal/errors"
	"hive/internal/infra/pubsub"
	mockUsecase "hive/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestPushHandler(t *testing.T) (*PushHandler, *mockUsecase.MockActivityUsecase) {
	activityUC := mockUsecase.NewMockActivityUsecase(t)
	h := NewPushHandler(PushHandlerParams{
		Config:     &config.Config{},
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		ActivityUC: activityUC,
	})

	return h, activityUC
}

func pushBody(t *testing.T, messageID, data string, attributes map[string]string) string {
	body, err := json.Marshal(pubsub.PushEnvelope{
		Message: pubsub.PushMessage{MessageID: messageID, Data: data, Attributes: attributes},
	})
	require.NoError(t, err)

	return string(body)
}

func encodedEvent(t *testing.T, event service.CollectionEvent) string {
	raw, err := json.Marshal(event)
	require.NoError(t, err)

	return base64.StdEncoding.EncodeToString(raw)
}

func doPush(h *PushHandler, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_RecordsEvent(t *testing.T) {
	h, activityUC := newTestPushHandler(t)
	event := service.CollectionEvent{Key: "hive_cart_items", Action: service.CollectionActionAdded, RecordID: "r1", Size: 6}

	activityUC.EXPECT().
		Record(
			mock.MatchedBy(func(ctx context.Context) bool {
				return deliverycontext.RequestIDFrom(ctx) == "req-42"
			}),
			"msg-1",
			mock.MatchedBy(func(e *service.CollectionEvent) bool {
				return e.Key == "hive_cart_items" && e.RecordID == "r1" && e.Size == 6
			}),
		).
		Return(nil)

	rec := doPush(h, pushBody(t, "msg-1", encodedEvent(t, event), map[string]string{"request_id": "req-42"}))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_StoreUnavailableAsksForRedelivery(t *testing.T) {
	h, activityUC := newTestPushHandler(t)
	event := service.CollectionEvent{Key: "hive_rent_items", Action: service.CollectionActionRemoved}

	activityUC.EXPECT().
		Record(mock.Anything, "msg-2", mock.Anything).
		Return(errors.Wrap(domainerrors.ErrStoreUnavailable, "failed to load activity feed"))

	rec := doPush(h, pushBody(t, "msg-2", encodedEvent(t, event), nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_OtherFailuresAreAcknowledged(t *testing.T) {
	h, activityUC := newTestPushHandler(t)
	event := service.CollectionEvent{Key: "hive_rent_items", Action: service.CollectionActionRemoved}

	activityUC.EXPECT().
		Record(mock.Anything, "msg-3", mock.Anything).
		Return(domainerrors.ErrValidationFailed)

	rec := doPush(h, pushBody(t, "msg-3", encodedEvent(t, event), nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_MalformedMessages(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "invalid base64", data: "%%%"},
		{name: "invalid json", data: base64.StdEncoding.EncodeToString([]byte("{not json"))},
		{name: "missing key", data: base64.StdEncoding.EncodeToString([]byte(`{"action":"added"}`))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestPushHandler(t)

			rec := doPush(h, pushBody(t, "msg-x", tt.data, nil))

			assert.Equal(t, http.StatusOK, rec.Code, "malformed messages are acknowledged")
		})
	}
}

func TestPushHandler_InvalidEnvelope(t *testing.T) {
	h, _ := newTestPushHandler(t)

	rec := doPush(h, "{")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPushHandler_ConsumeGeneratesRequestID(t *testing.T) {
	h, activityUC := newTestPushHandler(t)
	raw, err := json.Marshal(service.CollectionEvent{Key: "hive_auto_shares", Action: service.CollectionActionReset})
	require.NoError(t, err)

	activityUC.EXPECT().
		Record(
			mock.MatchedBy(func(ctx context.Context) bool {
				return deliverycontext.RequestIDFrom(ctx) != ""
			}),
			"",
			mock.Anything,
		).
		Return(nil)

	assert.NoError(t, h.Consume(context.Background(), "", nil, raw))
}
