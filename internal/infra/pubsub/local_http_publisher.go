package pubsub

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"hive/internal/domain/service"
	"hive/internal/errors"

	"github.com/labstack/echo/v4"
)

const (
	localSubscription = "projects/local/subscriptions/hive-activity"
	localPushTimeout  = 10 * time.Second
)

// localHTTPPublisher POSTs push envelopes straight to a worker, standing in
// for a Pub/Sub push subscription during development.
type localHTTPPublisher struct {
	endpoint string
	client   *http.Client
	logger   *slog.Logger
}

func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint: endpoint,
		client:   &http.Client{Timeout: localPushTimeout},
		logger:   logger,
	}
}

func (p *localHTTPPublisher) PublishCollectionEvent(ctx context.Context, event *service.CollectionEvent) error {
	envelope, err := NewPushEnvelope(event, localSubscription)
	if err != nil {
		return err
	}

	body, err := json.Marshal(envelope)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if event.RequestID != "" {
		req.Header.Set(echo.HeaderXRequestID, event.RequestID)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return errors.Wrapf(err, "failed to push to %s", p.endpoint)
	}
	defer resp.Body.Close()

	// Pub/Sub treats 102, 200, 201, 202 and 204 as an ack.
	if resp.StatusCode/100 != 2 {
		return errors.Errorf("push endpoint answered %d", resp.StatusCode)
	}

	p.logger.DebugContext(ctx, "[LocalPubSub] Event pushed",
		slog.String("key", event.Key),
		slog.String("action", string(event.Action)),
		slog.String("message_id", envelope.Message.MessageID),
	)

	return nil
}

func (p *localHTTPPublisher) Close() error {
	p.client.CloseIdleConnections()

	return nil
}
