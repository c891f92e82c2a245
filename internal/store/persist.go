package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"playland-backend/internal/model"
)

// gormPersister stores the snapshot document as a single keyed row.
type gormPersister struct {
	db    *gorm.DB
	clock func() time.Time
}

// NewGormPersister creates a database-backed snapshot persister.
func NewGormPersister(db *gorm.DB) Persister {
	return &gormPersister{db: db, clock: time.Now}
}

// Load reads the snapshot row and decodes it. A missing row is not an error.
func (p *gormPersister) Load() (*AppState, error) {
	var row model.Snapshot
	err := p.db.First(&row, "key = ?", model.SnapshotKey).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot row: %w", err)
	}

	var state AppState
	if err := json.Unmarshal(row.Data, &state); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return &state, nil
}

// Save serializes the state and upserts the snapshot row.
func (p *gormPersister) Save(state *AppState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	row := model.Snapshot{
		Key:       model.SnapshotKey,
		Data:      data,
		UpdatedAt: p.clock(),
	}
	if err := p.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&row).Error; err != nil {
		return fmt.Errorf("failed to write snapshot row: %w", err)
	}
	return nil
}
