package worker

import (
	"context"
	"log/slog"
	"time"

	"hive/config"
	"hive/internal/delivery"
	"hive/internal/delivery/worker/handler"
	"hive/internal/domain/constants"
	"hive/internal/errors"

	"github.com/nats-io/nats.go"
	"go.uber.org/fx"
)

const (
	natsQueueGroup     = "hive-activity"
	natsHandlerTimeout = 10 * time.Second
)

type natsConsumer struct {
	url         string
	subject     string
	serviceName string
	logger      *slog.Logger
	handler     *handler.PushHandler

	conn *nats.Conn
}

// NATSConsumerParams holds dependencies for the NATS consumer.
type NATSConsumerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
}

// NewNATSConsumer subscribes the activity recorder to the NATS event
// subjects. It returns nil when the nats provider is not configured.
func NewNATSConsumer(params NATSConsumerParams) delivery.Delivery {
	cfg := params.Cfg.PubSub
	if cfg == nil || cfg.Provider != constants.PubSubProviderNATS {
		return nil
	}

	c := &natsConsumer{
		url:         cfg.NATSURL,
		subject:     cfg.NATSSubject,
		serviceName: params.Cfg.Env.ServiceName + "-worker",
		logger:      params.Logger,
		handler:     params.PushHandler,
	}

	params.Lc.Append(fx.Hook{
		OnStop: c.stop,
	})

	return c
}

// Serve connects and joins the queue group. Core NATS does not redeliver,
// so retryable failures are only logged.
func (c *natsConsumer) Serve(ctx context.Context) error {
	conn, err := nats.Connect(c.url, nats.Name(c.serviceName))
	if err != nil {
		return errors.Wrapf(err, "failed to connect to NATS at %s", c.url)
	}
	c.conn = conn

	subject := c.subject + ".>"
	if _, err := conn.QueueSubscribe(subject, natsQueueGroup, c.handle); err != nil {
		return errors.Wrapf(err, "failed to subscribe to %s", subject)
	}

	c.logger.Info("NATS consumer subscribed",
		slog.String("subject", subject),
		slog.String("queue", natsQueueGroup),
	)

	return nil
}

func (c *natsConsumer) handle(msg *nats.Msg) {
	ctx, cancel := context.WithTimeout(context.Background(), natsHandlerTimeout)
	defer cancel()

	attributes := make(map[string]string, len(msg.Header))
	for k := range msg.Header {
		attributes[k] = msg.Header.Get(k)
	}

	if err := c.handler.Consume(ctx, msg.Header.Get(nats.MsgIdHdr), attributes, msg.Data); err != nil {
		c.logger.Warn("NATS event lost after retryable failure",
			slog.String("subject", msg.Subject),
			slog.Any("error", err),
		)
	}
}

func (c *natsConsumer) stop(ctx context.Context) error {
	if c.conn == nil || c.conn.IsClosed() {
		return nil
	}

	c.logger.Info("Draining NATS consumer")

	return errors.WithStack(c.conn.Drain())
}
