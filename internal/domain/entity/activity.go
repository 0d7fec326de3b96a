package entity

import "time"

// ActivityFeedLimit bounds the number of entries kept in the activity feed.
const ActivityFeedLimit = 100

// Activity is one entry of the hub's recent changes feed.
type Activity struct {
	ID         string    `json:"id" validate:"required"`
	Key        string    `json:"key" validate:"required"`
	Action     string    `json:"action" validate:"required"`
	TargetID   string    `json:"recordId,omitempty"`
	ActorID    string    `json:"actorId,omitempty"`
	Size       int       `json:"size" validate:"gte=0"`
	OccurredAt time.Time `json:"occurredAt"`
}

// RecordID implements Record.
func (a Activity) RecordID() string {
	return a.ID
}
