package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/rcliao/beatmap/internal/model"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db      *sql.DB
	entropy *rand.Rand
}

var _ Store = (*SQLiteStore)(nil)

// NewSQLiteStore opens or creates a SQLite database at the given path.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &SQLiteStore{
		db:      db,
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) newID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy).String()
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS beatmaps (
		id             TEXT PRIMARY KEY,
		key            TEXT NOT NULL,
		version        INTEGER NOT NULL DEFAULT 1,
		supersedes     TEXT,
		title          TEXT NOT NULL DEFAULT '',
		artist         TEXT NOT NULL DEFAULT '',
		creator        TEXT NOT NULL DEFAULT '',
		diff_name      TEXT NOT NULL DEFAULT '',
		source         TEXT,
		tags           TEXT,
		format_version INTEGER NOT NULL DEFAULT 0,
		timing_points  INTEGER NOT NULL DEFAULT 0,
		uninherited    INTEGER NOT NULL DEFAULT 0,
		circles        INTEGER NOT NULL DEFAULT 0,
		sliders        INTEGER NOT NULL DEFAULT 0,
		document       TEXT NOT NULL,
		created_at     TEXT NOT NULL,
		deleted_at     TEXT
	);
	CREATE INDEX IF NOT EXISTS idx_beatmaps_key ON beatmaps(key, version);
	CREATE INDEX IF NOT EXISTS idx_beatmaps_created ON beatmaps(created_at DESC);
	CREATE INDEX IF NOT EXISTS idx_beatmaps_deleted ON beatmaps(deleted_at);
	CREATE INDEX IF NOT EXISTS idx_beatmaps_creator ON beatmaps(creator);
	`
	_, err := s.db.Exec(schema)
	return err
}

// summarize counts what a document contains.
func summarize(doc *model.Document) (timingPoints, uninherited, circles, sliders int) {
	for _, tp := range doc.TimingPoints {
		timingPoints++
		if tp.Uninherited() {
			uninherited++
		}
	}
	for _, obj := range doc.HitObjects {
		switch obj.Kind {
		case model.KindCircle:
			circles++
		case model.KindSlider:
			sliders++
		}
	}
	return
}

func (s *SQLiteStore) Put(ctx context.Context, p PutParams) (*model.Beatmap, error) {
	if p.Key == "" {
		return nil, fmt.Errorf("key is required")
	}
	if p.Document == nil {
		return nil, fmt.Errorf("document is required")
	}

	now := time.Now().UTC()
	id := s.newID()

	docJSON, err := json.Marshal(p.Document)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}

	var tagsJSON *string
	if len(p.Tags) > 0 {
		b, _ := json.Marshal(p.Tags)
		s := string(b)
		tagsJSON = &s
	}

	var sourcePtr *string
	if p.Source != "" {
		sourcePtr = &p.Source
	}

	meta := p.Document.Metadata
	timingPoints, uninherited, circles, sliders := summarize(p.Document)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	// Check for existing latest version
	var prevID string
	var prevVersion int
	err = tx.QueryRowContext(ctx,
		`SELECT id, version FROM beatmaps
		 WHERE key = ? AND deleted_at IS NULL
		 ORDER BY version DESC LIMIT 1`, p.Key).Scan(&prevID, &prevVersion)

	version := 1
	var supersedes *string
	if err == nil {
		version = prevVersion + 1
		supersedes = &prevID
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO beatmaps (id, key, version, supersedes, title, artist, creator, diff_name, source, tags,
		                       format_version, timing_points, uninherited, circles, sliders, document, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, p.Key, version, supersedes,
		meta[model.KeyTitle], meta[model.KeyArtist], meta[model.KeyCreator], meta[model.KeyVersion],
		sourcePtr, tagsJSON, p.Document.Version, timingPoints, uninherited, circles, sliders,
		string(docJSON), now.Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("insert beatmap: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	bm := &model.Beatmap{
		ID:            id,
		Key:           p.Key,
		Version:       version,
		Title:         meta[model.KeyTitle],
		Artist:        meta[model.KeyArtist],
		Creator:       meta[model.KeyCreator],
		DiffName:      meta[model.KeyVersion],
		Source:        p.Source,
		Tags:          p.Tags,
		FormatVersion: p.Document.Version,
		TimingPoints:  timingPoints,
		Uninherited:   uninherited,
		Circles:       circles,
		Sliders:       sliders,
		CreatedAt:     now,
	}
	if supersedes != nil {
		bm.Supersedes = *supersedes
	}

	return bm, nil
}

const summaryColumns = `id, key, version, supersedes, title, artist, creator, diff_name, source, tags,
	format_version, timing_points, uninherited, circles, sliders, created_at, deleted_at`

const fullColumns = summaryColumns + `, document`

func (s *SQLiteStore) Get(ctx context.Context, p GetParams) ([]model.Beatmap, error) {
	var query string
	var args []interface{}

	if p.History {
		query = `SELECT ` + fullColumns + ` FROM beatmaps
				 WHERE key = ? AND deleted_at IS NULL
				 ORDER BY version DESC`
		args = []interface{}{p.Key}
	} else if p.Version > 0 {
		query = `SELECT ` + fullColumns + ` FROM beatmaps
				 WHERE key = ? AND version = ? AND deleted_at IS NULL
				 LIMIT 1`
		args = []interface{}{p.Key, p.Version}
	} else {
		query = `SELECT ` + fullColumns + ` FROM beatmaps
				 WHERE key = ? AND deleted_at IS NULL
				 ORDER BY version DESC LIMIT 1`
		args = []interface{}{p.Key}
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
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

	if len(beatmaps) == 0 {
		return nil, fmt.Errorf("beatmap not found: %s", p.Key)
	}

	return beatmaps, nil
}

// latestJoin restricts m to the latest live version of each key.
const latestJoin = `
		INNER JOIN (
			SELECT key, MAX(version) AS max_ver
			FROM beatmaps WHERE deleted_at IS NULL
			GROUP BY key
		) latest ON m.key = latest.key AND m.version = latest.max_ver`

func (s *SQLiteStore) List(ctx context.Context, p ListParams) ([]model.Beatmap, error) {
	limit := p.Limit
	if limit <= 0 {
		limit = 20
	}

	where := []string{"m.deleted_at IS NULL"}
	var args []interface{}

	// Tag filtering
	for _, tag := range p.Tags {
		where = append(where, "m.tags LIKE ?")
		args = append(args, "%\""+tag+"\"%")
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM beatmaps m %s
		WHERE %s
		ORDER BY m.created_at DESC
		LIMIT ?`, prefixed(summaryColumns, "m."), latestJoin, strings.Join(where, " AND "))
	args = append(args, limit)

	return s.queryBeatmaps(ctx, query, args...)
}

func (s *SQLiteStore) queryBeatmaps(ctx context.Context, query string, args ...interface{}) ([]model.Beatmap, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var beatmaps []model.Beatmap
	for rows.Next() {
		b, err := scanBeatmap(rows, false)
		if err != nil {
			return nil, err
		}
		beatmaps = append(beatmaps, b)
	}
	return beatmaps, rows.Err()
}

func (s *SQLiteStore) Rm(ctx context.Context, p RmParams) error {
	if p.Hard {
		if p.AllVersions {
			res, err := s.db.ExecContext(ctx, `DELETE FROM beatmaps WHERE key = ?`, p.Key)
			if err != nil {
				return err
			}
			return requireAffected(res, p.Key)
		}
		// Hard delete latest only
		var id string
		err := s.db.QueryRowContext(ctx,
			`SELECT id FROM beatmaps WHERE key = ? AND deleted_at IS NULL ORDER BY version DESC LIMIT 1`,
			p.Key).Scan(&id)
		if err != nil {
			return fmt.Errorf("beatmap not found: %s", p.Key)
		}
		_, err = s.db.ExecContext(ctx, `DELETE FROM beatmaps WHERE id = ?`, id)
		return err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	if p.AllVersions {
		res, err := s.db.ExecContext(ctx,
			`UPDATE beatmaps SET deleted_at = ? WHERE key = ? AND deleted_at IS NULL`,
			now, p.Key)
		if err != nil {
			return err
		}
		return requireAffected(res, p.Key)
	}

	// Soft-delete latest version only
	var id string
	err := s.db.QueryRowContext(ctx,
		`SELECT id FROM beatmaps WHERE key = ? AND deleted_at IS NULL ORDER BY version DESC LIMIT 1`,
		p.Key).Scan(&id)
	if err != nil {
		return fmt.Errorf("beatmap not found: %s", p.Key)
	}
	_, err = s.db.ExecContext(ctx, `UPDATE beatmaps SET deleted_at = ? WHERE id = ?`, now, id)
	return err
}

func requireAffected(res sql.Result, key string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("beatmap not found: %s", key)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// prefixed qualifies every column in a comma-separated list.
func prefixed(columns, prefix string) string {
	parts := strings.Split(columns, ",")
	for i, c := range parts {
		parts[i] = prefix + strings.TrimSpace(c)
	}
	return strings.Join(parts, ", ")
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanBeatmap(row scanner, withDocument bool) (model.Beatmap, error) {
	var b model.Beatmap
	var supersedes, source, tagsJSON, deletedAt sql.NullString
	var createdAt, document string

	dest := []interface{}{
		&b.ID, &b.Key, &b.Version, &supersedes, &b.Title, &b.Artist, &b.Creator, &b.DiffName,
		&source, &tagsJSON, &b.FormatVersion, &b.TimingPoints, &b.Uninherited, &b.Circles, &b.Sliders,
		&createdAt, &deletedAt,
	}
	if withDocument {
		dest = append(dest, &document)
	}
	if err := row.Scan(dest...); err != nil {
		return b, err
	}

	b.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	if supersedes.Valid {
		b.Supersedes = supersedes.String
	}
	if source.Valid {
		b.Source = source.String
	}
	if deletedAt.Valid {
		t, _ := time.Parse(time.RFC3339, deletedAt.String)
		b.DeletedAt = &t
	}
	if tagsJSON.Valid {
		json.Unmarshal([]byte(tagsJSON.String), &b.Tags)
	}
	if withDocument {
		b.Document = json.RawMessage(document)
	}

	return b, nil
}
