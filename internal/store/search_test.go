package store

import (
	"context"
	"testing"
)

func TestSearch(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	s.Put(ctx, PutParams{Key: "freedom-dive", Document: testDoc(t, "FREEDOM DiVE", "Nakagawa-Kanon")})
	s.Put(ctx, PutParams{Key: "blue-zenith", Document: testDoc(t, "Blue Zenith", "Asphyxia")})

	tests := []struct {
		query    string
		expected int
	}{
		{"zenith", 1},
		{"freedom", 1},
		{"Asphyxia", 1},
		{"Normal", 2},
		{"nothing-matches", 0},
	}

	for _, test := range tests {
		results, err := s.Search(ctx, SearchParams{Query: test.query})
		if err != nil {
			t.Fatalf("search %q: %v", test.query, err)
		}
		if len(results) != test.expected {
			t.Errorf("search %q: expected %d, got %d", test.query, test.expected, len(results))
		}
	}
}

func TestSearch_LatestVersionOnly(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	s.Put(ctx, PutParams{Key: "k", Document: testDoc(t, "old title", "m")})
	s.Put(ctx, PutParams{Key: "k", Document: testDoc(t, "new title", "m")})

	results, _ := s.Search(ctx, SearchParams{Query: "title"})
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Title != "new title" {
		t.Errorf("expected latest title, got %q", results[0].Title)
	}

	results, _ = s.Search(ctx, SearchParams{Query: "old"})
	if len(results) != 0 {
		t.Errorf("expected superseded version to be hidden, got %d", len(results))
	}
}
