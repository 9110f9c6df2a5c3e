package store

import (
	"context"
	"os"
)

// Stats holds database statistics.
type Stats struct {
	DBPath         string         `json:"db_path"`
	DBSizeBytes    int64          `json:"db_size_bytes"`
	TotalBeatmaps  int            `json:"total_beatmaps"`
	ActiveBeatmaps int            `json:"active_beatmaps"`
	Keys           int            `json:"keys"`
	TimingPoints   int            `json:"timing_points"`
	Circles        int            `json:"circles"`
	Sliders        int            `json:"sliders"`
	Creators       []CreatorStats `json:"creators"`
}

// CreatorStats holds per-creator counts.
type CreatorStats struct {
	Creator string `json:"creator"`
	Count   int    `json:"count"`
	Keys    int    `json:"keys"`
}

// Stats returns database statistics.
func (s *SQLiteStore) Stats(ctx context.Context, dbPath string) (*Stats, error) {
	st := &Stats{DBPath: dbPath}

	// DB file size
	if info, err := os.Stat(dbPath); err == nil {
		st.DBSizeBytes = info.Size()
	}

	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM beatmaps`).Scan(&st.TotalBeatmaps)
	s.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COUNT(DISTINCT key),
		       COALESCE(SUM(timing_points), 0), COALESCE(SUM(circles), 0), COALESCE(SUM(sliders), 0)
		FROM beatmaps WHERE deleted_at IS NULL`).Scan(
		&st.ActiveBeatmaps, &st.Keys, &st.TimingPoints, &st.Circles, &st.Sliders)

	rows, err := s.db.QueryContext(ctx, `
		SELECT creator, COUNT(*) as cnt, COUNT(DISTINCT key) as keys
		FROM beatmaps WHERE deleted_at IS NULL
		GROUP BY creator ORDER BY cnt DESC`)
	if err != nil {
		return st, err
	}
	defer rows.Close()

	for rows.Next() {
		var c CreatorStats
		rows.Scan(&c.Creator, &c.Count, &c.Keys)
		st.Creators = append(st.Creators, c)
	}

	return st, nil
}
