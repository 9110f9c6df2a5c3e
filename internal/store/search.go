package store

import (
	"context"
	"fmt"

	"github.com/rcliao/beatmap/internal/model"
)

// SearchParams holds parameters for searching beatmaps.
type SearchParams struct {
	Query string
	Limit int
}

// Search finds the latest beatmaps whose key or metadata contains the query.
func (s *SQLiteStore) Search(ctx context.Context, p SearchParams) ([]model.Beatmap, error) {
	limit := p.Limit
	if limit <= 0 {
		limit = 20
	}

	query := "%" + p.Query + "%"

	sql := fmt.Sprintf(`
		SELECT %s
		FROM beatmaps m %s
		WHERE m.deleted_at IS NULL
		  AND (m.key LIKE ? OR m.title LIKE ? OR m.artist LIKE ? OR m.creator LIKE ? OR m.diff_name LIKE ?)
		ORDER BY m.created_at DESC
		LIMIT ?`, prefixed(summaryColumns, "m."), latestJoin)

	return s.queryBeatmaps(ctx, sql, query, query, query, query, query, limit)
}
