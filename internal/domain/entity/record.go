package entity

import "github.com/google/uuid"

// Record is implemented by every item stored in a feature collection.
type Record interface {
	RecordID() string
}

// NewRecordID returns a time-ordered identifier for a new collection record.
func NewRecordID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return id.String()
}
