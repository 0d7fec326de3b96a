package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"strconv"
	"time"

	"hive/internal/domain/entity"
	"hive/internal/domain/service"
	"hive/internal/errors"
)

// Every provider sends the JSON encoded CollectionEvent as the payload and a
// flat copy of its identifying fields as attributes (Pub/Sub attributes, NATS
// headers) so subscribers can filter without decoding.

// ErrMalformedEvent is returned for payloads that will never decode, which a
// consumer should acknowledge and drop.
var ErrMalformedEvent = errors.New("malformed collection event")

// PushEnvelope is the body a Pub/Sub push subscription POSTs to its endpoint.
type PushEnvelope struct {
	Message      PushMessage `json:"message"`
	Subscription string      `json:"subscription"`
}

type PushMessage struct {
	Data        string            `json:"data"`
	Attributes  map[string]string `json:"attributes,omitempty"`
	MessageID   string            `json:"messageId"`
	PublishTime string            `json:"publishTime"`
}

// Payload returns the decoded data field.
func (m PushMessage) Payload() ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(m.Data)
	if err != nil {
		return nil, errors.Join(ErrMalformedEvent, err)
	}

	return data, nil
}

// NewPushEnvelope wraps event the way Pub/Sub would deliver it.
func NewPushEnvelope(event *service.CollectionEvent, subscription string) (*PushEnvelope, error) {
	data, attributes, err := encodeEvent(event)
	if err != nil {
		return nil, err
	}

	return &PushEnvelope{
		Message: PushMessage{
			Data:        base64.StdEncoding.EncodeToString(data),
			Attributes:  attributes,
			MessageID:   entity.NewRecordID(),
			PublishTime: time.Now().UTC().Format(time.RFC3339),
		},
		Subscription: subscription,
	}, nil
}

// DecodeEvent parses a payload produced by any provider.
func DecodeEvent(data []byte) (*service.CollectionEvent, error) {
	var event service.CollectionEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Join(ErrMalformedEvent, err)
	}
	if event.Key == "" {
		return nil, errors.Join(ErrMalformedEvent, errors.New("event has no key"))
	}

	return &event, nil
}

func encodeEvent(event *service.CollectionEvent) ([]byte, map[string]string, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to encode collection event")
	}

	return data, eventAttributes(event), nil
}

func eventAttributes(event *service.CollectionEvent) map[string]string {
	attributes := map[string]string{
		"key":    event.Key,
		"action": string(event.Action),
		"size":   strconv.Itoa(event.Size),
	}
	for name, value := range map[string]string{
		"record_id":  event.RecordID,
		"actor_id":   event.ActorID,
		"request_id": event.RequestID,
	} {
		if value != "" {
			attributes[name] = value
		}
	}

	return attributes
}
