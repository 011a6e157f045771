package service

import (
	"context"
	"encoding/json"
	"time"
)

// Snapshot is the file written by SnapshotService
type Snapshot struct {
	TakenAt   time.Time                   `json:"takenAt"`
	Documents map[string]SnapshotDocument `json:"documents"`
}

// SnapshotDocument is one document inside a snapshot
type SnapshotDocument struct {
	Version int64           `json:"version"`
	Data    json.RawMessage `json:"data"`
}

// SnapshotResult describes a written snapshot
type SnapshotResult struct {
	Path      string
	Documents int
	TakenAt   time.Time
}

// SnapshotService writes every content document to a JSON file
type SnapshotService interface {
	Snapshot(ctx context.Context) (*SnapshotResult, error)
}

// SeedResult reports what a seed run inserted
type SeedResult struct {
	Documents []string
	Blogs     int
	Events    int
	Contacts  int
}

// Seeder fills an empty store with the bundled demo content
type Seeder interface {
	Seed(ctx context.Context) (*SeedResult, error)
}
