package pubsub

import (
	"context"
	"fmt"
	"log/slog"

	"hive/internal/domain/service"
	"hive/internal/errors"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
)

// googlePubSubPublisher orders messages by collection key, so one
// collection's events reach the worker in the order they were written.
type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePubSubPublisher fails when the topic does not exist.
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Pub/Sub client")
	}

	topic := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topic}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
	}

	publisher := client.Publisher(topicID)
	publisher.EnableMessageOrdering = true

	logger.Info("Google Pub/Sub publisher initialized", slog.String("topic", topic))

	return &googlePubSubPublisher{client: client, publisher: publisher, logger: logger}, nil
}

// PublishCollectionEvent blocks until the server acknowledges the message.
func (p *googlePubSubPublisher) PublishCollectionEvent(ctx context.Context, event *service.CollectionEvent) error {
	data, attributes, err := encodeEvent(event)
	if err != nil {
		return err
	}

	serverID, err := p.publisher.Publish(ctx, &pubsub.Message{
		Data:        data,
		Attributes:  attributes,
		OrderingKey: event.Key,
	}).Get(ctx)
	if err != nil {
		// Later messages with this ordering key are rejected until resumed.
		p.publisher.ResumePublish(event.Key)

		return errors.Wrapf(err, "failed to publish %s event for %s", event.Action, event.Key)
	}

	p.logger.DebugContext(ctx, "[GooglePubSub] Event published",
		slog.String("key", event.Key),
		slog.String("server_id", serverID),
	)

	return nil
}

func (p *googlePubSubPublisher) Close() error {
	p.publisher.Stop()

	return errors.WithStack(p.client.Close())
}
