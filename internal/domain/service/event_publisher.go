package service

import (
	"context"
	"time"
)

// CollectionAction describes what happened to a collection.
type CollectionAction string

const (
	CollectionActionAdded   CollectionAction = "added"
	CollectionActionRemoved CollectionAction = "removed"
	CollectionActionUpdated CollectionAction = "updated"
	CollectionActionCleared CollectionAction = "cleared"
	CollectionActionReset   CollectionAction = "reset"
	CollectionActionSaved   CollectionAction = "saved"
)

// CollectionEvent is published after a collection snapshot was written.
type CollectionEvent struct {
	RequestID  string           `json:"request_id,omitempty"` // For distributed tracing
	Key        string           `json:"key"`
	Action     CollectionAction `json:"action"`
	RecordID   string           `json:"record_id,omitempty"`
	ActorID    string           `json:"actor_id,omitempty"`
	Size       int              `json:"size"`
	OccurredAt time.Time        `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishCollectionEvent announces a collection change to other consumers.
	PublishCollectionEvent(ctx context.Context, event *CollectionEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
