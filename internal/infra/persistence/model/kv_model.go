package model

import "time"

// KVEntryModel holds one JSON document of the persistent store per key.
type KVEntryModel struct {
	Key       string `gorm:"size:255;primaryKey"`
	Value     []byte `gorm:"not null"`
	UpdatedAt time.Time
}

func (KVEntryModel) TableName() string { return "kv_entries" }
