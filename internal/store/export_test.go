package store

import (
	"context"
	"path/filepath"
	"testing"
)

func TestExportImport(t *testing.T) {
	ctx := context.Background()
	src := newTestStore(t)

	src.Put(ctx, PutParams{Key: "a", Tags: []string{"ranked"}, Document: testDoc(t, "alpha", "m")})
	src.Put(ctx, PutParams{Key: "b", Document: testDoc(t, "beta", "n")})

	exported, err := src.ExportAll(ctx)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if len(exported) != 2 {
		t.Fatalf("expected 2 exported, got %d", len(exported))
	}
	if len(exported[0].Document) == 0 {
		t.Error("expected export to carry documents")
	}

	dst, err := NewSQLiteStore(filepath.Join(t.TempDir(), "dst.db"))
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	defer dst.Close()

	n, err := dst.Import(ctx, exported)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 imported, got %d", n)
	}

	got, err := dst.Get(ctx, GetParams{Key: "a"})
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got[0].Title != "alpha" || got[0].Sliders != 1 || len(got[0].Tags) != 1 {
		t.Errorf("unexpected imported record %+v", got[0])
	}
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	s.Put(ctx, PutParams{Key: "a", Document: testDoc(t, "alpha", "m")})
	s.Put(ctx, PutParams{Key: "a", Document: testDoc(t, "alpha", "m")})
	s.Put(ctx, PutParams{Key: "b", Document: testDoc(t, "beta", "n")})

	st, err := s.Stats(ctx, "")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if st.TotalBeatmaps != 3 || st.ActiveBeatmaps != 3 || st.Keys != 2 {
		t.Errorf("unexpected totals %+v", st)
	}
	if st.Circles != 6 || st.Sliders != 3 || st.TimingPoints != 6 {
		t.Errorf("unexpected object counts %+v", st)
	}
	if len(st.Creators) != 2 || st.Creators[0].Creator != "m" || st.Creators[0].Count != 2 {
		t.Errorf("unexpected creators %+v", st.Creators)
	}
}
