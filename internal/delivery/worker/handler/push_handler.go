// Package handler consumes collection change events for the activity feed.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"hive/config"
	deliverycontext "hive/internal/delivery/context"
	"hive/internal/domain/constants"
	domainerrors "hive/internal/domain/errors"
	"hive/internal/domain/service"
	"hive/internal/errors"
	"hive/internal/infra/pubsub"
	"hive/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// ErrRetryable marks failures the broker should redeliver.
var ErrRetryable = errors.New("retryable event failure")

// PushHandler records collection events into the activity feed.
type PushHandler struct {
	verifyPushAuth bool
	logger         *slog.Logger
	activityUC     usecase.ActivityUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	ActivityUC usecase.ActivityUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Only Google signs push requests, and develop runs without credentials.
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		logger:         params.Logger,
		activityUC:     params.ActivityUC,
	}
}

// HandlePush handles incoming Pub/Sub push messages. It answers 503 when the
// broker should redeliver and 200 otherwise, including for malformed messages.
func (h *PushHandler) HandlePush(c echo.Context) error {
	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var envelope pubsub.PushEnvelope
	if err := c.Bind(&envelope); err != nil {
		h.logger.Error("[Worker] Failed to parse push envelope", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	msg := envelope.Message
	data, err := msg.Payload()
	if err != nil {
		h.logger.Error("[Worker] Dropping undecodable message",
			slog.String("message_id", msg.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusOK)
	}

	err = h.Consume(c.Request().Context(), msg.MessageID, msg.Attributes, data)
	if errors.Is(err, ErrRetryable) {
		return c.NoContent(http.StatusServiceUnavailable)
	}

	return c.NoContent(http.StatusOK)
}

// Consume decodes one event payload and records it. Only ErrRetryable
// failures are returned; malformed payloads are logged and dropped.
func (h *PushHandler) Consume(ctx context.Context, messageID string, attributes map[string]string, data []byte) error {
	event, err := pubsub.DecodeEvent(data)
	if err != nil {
		h.logger.Error("[Worker] Dropping malformed collection event",
			slog.String("message_id", messageID),
			slog.Any("error", err),
		)

		return nil
	}

	requestID := h.extractRequestID(ctx, attributes, event)
	ctx = deliverycontext.WithRequest(ctx, requestID, h.logger)
	reqLogger := deliverycontext.LoggerOr(ctx, h.logger)

	if err := h.activityUC.Record(ctx, messageID, event); err != nil {
		retryable := errors.Is(err, domainerrors.ErrStoreUnavailable)
		reqLogger.Error("[Worker] Failed to record activity",
			slog.String("message_id", messageID),
			slog.String("key", event.Key),
			slog.Bool("retryable", retryable),
			slog.Any("error", err),
		)
		if retryable {
			return errors.Join(ErrRetryable, err)
		}

		return nil
	}

	reqLogger.Debug("[Worker] Activity recorded",
		slog.String("message_id", messageID),
		slog.String("key", event.Key),
		slog.String("action", string(event.Action)),
	)

	return nil
}

// extractRequestID prefers message attributes, then the payload, then the
// request context, and finally generates a new ID.
func (h *PushHandler) extractRequestID(ctx context.Context, attributes map[string]string, event *service.CollectionEvent) string {
	if requestID := attributes["request_id"]; requestID != "" {
		return requestID
	}
	if event.RequestID != "" {
		return event.RequestID
	}
	if requestID := deliverycontext.RequestIDFrom(ctx); requestID != "" {
		return requestID
	}

	return uuid.NewString()
}

// verifyPubSubToken verifies the OIDC token Google attaches to push requests.
func verifyPubSubToken(req *http.Request) error {
	token, found := strings.CutPrefix(req.Header.Get("Authorization"), "Bearer ")
	if !found || token == "" {
		return errors.New("missing bearer token")
	}

	// The audience is the URL of this endpoint.
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := scheme + "://" + req.Host + req.URL.Path

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
