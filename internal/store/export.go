package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rcliao/beatmap/internal/model"
)

// ExportAll returns all non-deleted beatmaps with their documents.
func (s *SQLiteStore) ExportAll(ctx context.Context) ([]model.Beatmap, error) {
	query := `SELECT ` + fullColumns + `
	          FROM beatmaps WHERE deleted_at IS NULL ORDER BY key, version`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var beatmaps []model.Beatmap
	for rows.Next() {
		b, err := scanBeatmap(rows, true)
		if err != nil {
			return nil, err
		}
		beatmaps = append(beatmaps, b)
	}
	return beatmaps, nil
}

// Import stores beatmaps from an export, each as a new version of its key.
func (s *SQLiteStore) Import(ctx context.Context, beatmaps []model.Beatmap) (int, error) {
	imported := 0
	for _, b := range beatmaps {
		var doc model.Document
		if err := json.Unmarshal(b.Document, &doc); err != nil {
			return imported, fmt.Errorf("decode document %s: %w", b.Key, err)
		}
		_, err := s.Put(ctx, PutParams{
			Key:      b.Key,
			Source:   b.Source,
			Tags:     b.Tags,
			Document: &doc,
		})
		if err != nil {
			return imported, err
		}
		imported++
	}
	return imported, nil
}
