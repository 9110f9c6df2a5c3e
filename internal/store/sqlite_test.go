package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rcliao/beatmap/internal/decoder"
	"github.com/rcliao/beatmap/internal/model"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dir := t.TempDir()
	s, err := NewSQLiteStore(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// testDoc decodes a small beatmap with the given title and creator.
func testDoc(t *testing.T, title, creator string) *model.Document {
	t.Helper()
	text := "osu file format v14\n" +
		"[Metadata]\nTitle:" + title + "\nArtist:Artist\nCreator:" + creator + "\nVersion:Normal\n" +
		"[TimingPoints]\n0,500,4,1,0,100,1,0\n1000,-50,4,1,0,100,0,0\n" +
		"[HitObjects]\n256,192,0,1,0,0:0:0:0:\n100,100,500,2,0,L|200:100,1,100\n256,192,1000,1,2\n"
	doc, err := decoder.Decode(strings.NewReader(text))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	return doc
}

func TestPutAndGet(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	bm, err := s.Put(ctx, PutParams{Key: "song-normal", Source: "song.osu", Document: testDoc(t, "Song", "mapper")})
	if err != nil {
		t.Fatalf("put: %v", err)
	}
	if bm.Version != 1 {
		t.Errorf("expected version 1, got %d", bm.Version)
	}
	if bm.ID == "" {
		t.Error("expected non-empty ID")
	}
	if bm.Title != "Song" || bm.DiffName != "Normal" || bm.FormatVersion != 14 {
		t.Errorf("unexpected metadata %+v", bm)
	}
	if bm.TimingPoints != 2 || bm.Uninherited != 1 || bm.Circles != 2 || bm.Sliders != 1 {
		t.Errorf("unexpected counts %+v", bm)
	}

	got, err := s.Get(ctx, GetParams{Key: "song-normal"})
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 result, got %d", len(got))
	}
	if got[0].Source != "song.osu" || got[0].Creator != "mapper" {
		t.Errorf("unexpected record %+v", got[0])
	}

	var doc model.Document
	if err := json.Unmarshal(got[0].Document, &doc); err != nil {
		t.Fatalf("stored document is not valid JSON: %v", err)
	}
	if len(doc.HitObjects) != 3 || doc.HitObjects[1].Slider == nil {
		t.Errorf("expected stored hit objects, got %+v", doc.HitObjects)
	}
}

func TestPut_RequiresKeyAndDocument(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	if _, err := s.Put(ctx, PutParams{Document: testDoc(t, "a", "b")}); err == nil {
		t.Error("expected error without key")
	}
	if _, err := s.Put(ctx, PutParams{Key: "k"}); err == nil {
		t.Error("expected error without document")
	}
}

func TestPut_DocumentWithNaN(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	doc, err := decoder.Decode(strings.NewReader("[Difficulty]\nCircleSize: big\n"))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, err := s.Put(ctx, PutParams{Key: "nan", Document: doc}); err != nil {
		t.Fatalf("put: %v", err)
	}
	got, _ := s.Get(ctx, GetParams{Key: "nan"})
	if !strings.Contains(string(got[0].Document), `"CircleSize":null`) {
		t.Errorf("expected NaN stored as null, got %s", got[0].Document)
	}
}

func TestVersioning(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	s.Put(ctx, PutParams{Key: "k", Document: testDoc(t, "v1", "m")})
	b2, _ := s.Put(ctx, PutParams{Key: "k", Document: testDoc(t, "v2", "m")})

	if b2.Version != 2 {
		t.Errorf("expected version 2, got %d", b2.Version)
	}
	if b2.Supersedes == "" {
		t.Error("expected supersedes to be set")
	}

	// Get latest
	got, _ := s.Get(ctx, GetParams{Key: "k"})
	if got[0].Title != "v2" {
		t.Errorf("expected 'v2', got %q", got[0].Title)
	}

	// Get history
	hist, _ := s.Get(ctx, GetParams{Key: "k", History: true})
	if len(hist) != 2 {
		t.Fatalf("expected 2 versions, got %d", len(hist))
	}

	// Get specific version
	v1, _ := s.Get(ctx, GetParams{Key: "k", Version: 1})
	if v1[0].Title != "v1" {
		t.Errorf("expected 'v1', got %q", v1[0].Title)
	}
}

func TestList(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	s.Put(ctx, PutParams{Key: "a", Document: testDoc(t, "alpha", "m")})
	s.Put(ctx, PutParams{Key: "b", Document: testDoc(t, "beta", "m")})
	s.Put(ctx, PutParams{Key: "b", Document: testDoc(t, "beta2", "m")})

	all, err := s.List(ctx, ListParams{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 (latest only), got %d", len(all))
	}
	for _, b := range all {
		if b.Document != nil {
			t.Error("list should not load documents")
		}
		if b.Key == "b" && b.Title != "beta2" {
			t.Errorf("expected latest 'beta2', got %q", b.Title)
		}
	}

	limited, _ := s.List(ctx, ListParams{Limit: 1})
	if len(limited) != 1 {
		t.Errorf("expected 1 with limit, got %d", len(limited))
	}
}

func TestTags(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	s.Put(ctx, PutParams{Key: "a", Tags: []string{"ranked", "stream"}, Document: testDoc(t, "x", "m")})
	s.Put(ctx, PutParams{Key: "b", Tags: []string{"ranked"}, Document: testDoc(t, "y", "m")})
	s.Put(ctx, PutParams{Key: "c", Document: testDoc(t, "z", "m")})

	list, _ := s.List(ctx, ListParams{Tags: []string{"ranked"}})
	if len(list) != 2 {
		t.Errorf("expected 2 with 'ranked' tag, got %d", len(list))
	}

	list, _ = s.List(ctx, ListParams{Tags: []string{"stream"}})
	if len(list) != 1 {
		t.Errorf("expected 1 with 'stream' tag, got %d", len(list))
	}
}

func TestSoftDelete(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	s.Put(ctx, PutParams{Key: "k", Document: testDoc(t, "x", "m")})
	if err := s.Rm(ctx, RmParams{Key: "k"}); err != nil {
		t.Fatalf("rm: %v", err)
	}

	if _, err := s.Get(ctx, GetParams{Key: "k"}); err == nil {
		t.Error("expected error after soft delete")
	}
}

func TestHardDelete(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	s.Put(ctx, PutParams{Key: "k", Document: testDoc(t, "x", "m")})
	if err := s.Rm(ctx, RmParams{Key: "k", Hard: true}); err != nil {
		t.Fatalf("rm hard: %v", err)
	}

	if _, err := s.Get(ctx, GetParams{Key: "k"}); err == nil {
		t.Error("expected error after hard delete")
	}

	st, _ := s.Stats(ctx, "")
	if st.TotalBeatmaps != 0 {
		t.Errorf("expected row removed, got %d", st.TotalBeatmaps)
	}
}

func TestDeleteAllVersions(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	s.Put(ctx, PutParams{Key: "k", Document: testDoc(t, "v1", "m")})
	s.Put(ctx, PutParams{Key: "k", Document: testDoc(t, "v2", "m")})

	s.Rm(ctx, RmParams{Key: "k", AllVersions: true})

	if _, err := s.Get(ctx, GetParams{Key: "k", History: true}); err == nil {
		t.Error("expected error after deleting all versions")
	}
}

func TestDeleteMissing(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	if err := s.Rm(ctx, RmParams{Key: "nope"}); err == nil {
		t.Error("expected error for missing key")
	}
	if err := s.Rm(ctx, RmParams{Key: "nope", AllVersions: true, Hard: true}); err == nil {
		t.Error("expected error for missing key with hard delete")
	}
}

func TestDBPathCreation(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "sub", "dir", "test.db")
	s, err := NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	s.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("expected db file to be created")
	}
}
