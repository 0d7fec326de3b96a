package pubsub

import (
	"context"
	"log/slog"
	"time"

	"hive/internal/domain/entity"
	"hive/internal/domain/service"
	"hive/internal/errors"

	"github.com/nats-io/nats.go"
)

const (
	natsConnectTimeout = 5 * time.Second
	natsReconnectWait  = 2 * time.Second
	natsMaxReconnects  = 10
	natsDrainTimeout   = 10 * time.Second
)

// natsPublisher implements EventPublisher on core NATS subjects.
// Events go to <subject>.<key> so consumers can subscribe per collection.
type natsPublisher struct {
	conn    *nats.Conn
	subject string
	logger  *slog.Logger
}

// NewNATSPublisher connects to url and publishes under subject.
func NewNATSPublisher(url, subject, serviceName string, logger *slog.Logger) (service.EventPublisher, error) {
	conn, err := nats.Connect(url,
		nats.Name(serviceName),
		nats.Timeout(natsConnectTimeout),
		nats.ReconnectWait(natsReconnectWait),
		nats.MaxReconnects(natsMaxReconnects),
		nats.DrainTimeout(natsDrainTimeout),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			logger.Warn("NATS disconnected", slog.Any("error", err))
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			logger.Info("NATS reconnected", slog.String("url", c.ConnectedUrl()))
		}),
	)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to connect to NATS at %s", url)
	}

	logger.Info("NATS publisher initialized",
		slog.String("url", url),
		slog.String("subject", subject),
	)

	return &natsPublisher{conn: conn, subject: subject, logger: logger}, nil
}

func (p *natsPublisher) PublishCollectionEvent(ctx context.Context, event *service.CollectionEvent) error {
	data, attributes, err := encodeEvent(event)
	if err != nil {
		return err
	}

	msg := nats.NewMsg(p.subject + "." + event.Key)
	msg.Data = data
	for name, value := range attributes {
		msg.Header.Set(name, value)
	}
	// The consumer skips message ids it has already recorded.
	msg.Header.Set(nats.MsgIdHdr, entity.NewRecordID())

	if err := p.conn.PublishMsg(msg); err != nil {
		return errors.Wrapf(err, "failed to publish to %s", msg.Subject)
	}

	p.logger.DebugContext(ctx, "[NATS] Event published",
		slog.String("subject", msg.Subject),
		slog.String("action", string(event.Action)),
	)

	return nil
}

// Close flushes pending messages before closing the connection.
func (p *natsPublisher) Close() error {
	if p.conn.IsClosed() {
		return nil
	}

	return errors.WithStack(p.conn.Drain())
}
