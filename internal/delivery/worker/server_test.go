package worker

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hive/config"
	"hive/internal/delivery/worker/handler"
	"hive/internal/domain/service"
	"hive/internal/infra/pubsub"
	mockUsecase "hive/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestEcho(t *testing.T, cfg *config.Config) (*echo.Echo, *mockUsecase.MockActivityUsecase) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	activityUC := mockUsecase.NewMockActivityUsecase(t)
	pushHandler := handler.NewPushHandler(handler.PushHandlerParams{
		Config:     cfg,
		Logger:     logger,
		ActivityUC: activityUC,
	})

	return NewEcho(cfg, logger, pushHandler), activityUC
}

func TestWorker_Health(t *testing.T) {
	e, _ := newTestEcho(t, &config.Config{PubSub: &config.PubSubConfig{Provider: "nats"}})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "nats", body["provider"])
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestWorker_Push(t *testing.T) {
	e, activityUC := newTestEcho(t, &config.Config{})
	event := &service.CollectionEvent{Key: "hive_auto_shares", Action: service.CollectionActionAdded, RecordID: "7", Size: 2}

	envelope, err := pubsub.NewPushEnvelope(event, "projects/p/subscriptions/s")
	require.NoError(t, err)
	body, err := json.Marshal(envelope)
	require.NoError(t, err)

	activityUC.EXPECT().
		Record(mock.Anything, envelope.Message.MessageID, mock.MatchedBy(func(e *service.CollectionEvent) bool {
			return e.Key == "hive_auto_shares" && e.RecordID == "7"
		})).
		Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(string(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
