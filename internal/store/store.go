// Package store provides the beatmap library interface and SQLite implementation.
package store

import (
	"context"

	"github.com/rcliao/beatmap/internal/model"
)

// PutParams holds parameters for storing a decoded beatmap.
type PutParams struct {
	Key      string
	Source   string
	Tags     []string
	Document *model.Document
}

// GetParams holds parameters for retrieving a beatmap.
type GetParams struct {
	Key     string
	History bool
	Version int // 0 means latest
}

// ListParams holds parameters for listing beatmaps.
type ListParams struct {
	Tags  []string
	Limit int
}

// RmParams holds parameters for deleting a beatmap.
type RmParams struct {
	Key         string
	AllVersions bool
	Hard        bool
}

// Store defines the beatmap library interface.
type Store interface {
	// Put stores a new version of a beatmap. Returns the created record.
	Put(ctx context.Context, p PutParams) (*model.Beatmap, error)

	// Get retrieves a beatmap by key.
	// Returns a slice (single element normally, multiple with History=true).
	Get(ctx context.Context, p GetParams) ([]model.Beatmap, error)

	// List lists the latest version of each beatmap, without documents.
	List(ctx context.Context, p ListParams) ([]model.Beatmap, error)

	// Rm soft-deletes (or hard-deletes) a beatmap.
	Rm(ctx context.Context, p RmParams) error

	// Close closes the store.
	Close() error
}
