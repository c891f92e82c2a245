package model

import "time"

// SnapshotKey is the primary key of the single application state row.
const SnapshotKey = "playland_data"

// Snapshot holds the full serialized application state as one keyed record.
type Snapshot struct {
	Key       string    `gorm:"primaryKey;size:64"`
	Data      []byte    `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}
