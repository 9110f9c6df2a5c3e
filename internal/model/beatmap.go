package model

import (
	"encoding/json"
	"time"
)

// Beatmap is a decoded document stored in the library under a key.
type Beatmap struct {
	ID            string          `json:"id"`
	Key           string          `json:"key"`
	Version       int             `json:"version"`
	Supersedes    string          `json:"supersedes,omitempty"`
	Title         string          `json:"title,omitempty"`
	Artist        string          `json:"artist,omitempty"`
	Creator       string          `json:"creator,omitempty"`
	DiffName      string          `json:"diff_name,omitempty"`
	Source        string          `json:"source,omitempty"`
	Tags          []string        `json:"tags,omitempty"`
	FormatVersion int             `json:"format_version,omitempty"`
	TimingPoints  int             `json:"timing_points"`
	Uninherited   int             `json:"uninherited_points"`
	Circles       int             `json:"circles"`
	Sliders       int             `json:"sliders"`
	CreatedAt     time.Time       `json:"created_at"`
	DeletedAt     *time.Time      `json:"deleted_at,omitempty"`
	Document      json.RawMessage `json:"document,omitempty"`
}

// Metadata keys copied onto a Beatmap.
const (
	KeyTitle   = "Title"
	KeyArtist  = "Artist"
	KeyCreator = "Creator"
	KeyVersion = "Version"
)
