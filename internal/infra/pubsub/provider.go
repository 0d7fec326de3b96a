// Package pubsub publishes collection change events to the activity worker.
package pubsub

import (
	"context"
	"log/slog"

	"hive/config"
	"hive/internal/domain/constants"
	"hive/internal/domain/service"
	"hive/internal/errors"

	"go.uber.org/fx"
)

const defaultNATSSubject = "hive.collections"

type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishCollectionEvent(ctx context.Context, event *service.CollectionEvent) error {
	p.logger.DebugContext(ctx, "[NoopPubSub] Publishing disabled",
		slog.String("key", event.Key),
		slog.String("action", string(event.Action)),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

type factory func(params PublisherParams, cfg *config.PubSubConfig) (service.EventPublisher, error)

//nolint:gochecknoglobals
var factories = map[string]factory{
	constants.PubSubProviderLocal:  newLocal,
	constants.PubSubProviderGoogle: newGoogle,
	constants.PubSubProviderNATS:   newNATS,
}

func newLocal(params PublisherParams, cfg *config.PubSubConfig) (service.EventPublisher, error) {
	if cfg.LocalEndpoint == "" {
		return nil, errors.New("local endpoint is required for local provider")
	}
	params.Logger.Info("Pushing events straight to the worker", slog.String("endpoint", cfg.LocalEndpoint))

	return NewLocalHTTPPublisher(cfg.LocalEndpoint, params.Logger), nil
}

func newGoogle(params PublisherParams, cfg *config.PubSubConfig) (service.EventPublisher, error) {
	switch {
	case cfg.ProjectID == "":
		return nil, errors.New("project ID is required for google provider")
	case cfg.TopicID == "":
		return nil, errors.New("topic ID is required for google provider")
	}

	return NewGooglePubSubPublisher(params.Ctx, cfg.ProjectID, cfg.TopicID, params.Logger)
}

func newNATS(params PublisherParams, cfg *config.PubSubConfig) (service.EventPublisher, error) {
	if cfg.NATSURL == "" {
		return nil, errors.New("NATS URL is required for nats provider")
	}
	subject := cfg.NATSSubject
	if subject == "" {
		subject = defaultNATSSubject
	}

	return NewNATSPublisher(cfg.NATSURL, subject, params.Config.Env.ServiceName, params.Logger)
}

// NewEventPublisher picks the publisher named by pubsub.provider. A missing
// section or provider means events are dropped.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	if cfg == nil || cfg.Provider == "" || cfg.Provider == constants.PubSubProviderNoop {
		params.Logger.Info("PubSub not configured, collection events are dropped")

		return &noopPublisher{logger: params.Logger}, nil
	}

	build, ok := factories[cfg.Provider]
	if !ok {
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	publisher, err := build(params, cfg)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			params.Logger.Info("Closing event publisher", slog.String("provider", cfg.Provider))

			return publisher.Close()
		},
	})

	return publisher, nil
}

//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
