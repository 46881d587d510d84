package kdutil

import (
	"context"
	"sort"
	"testing"

	"github.com/viant/sqlite-kd/engine"
	"github.com/viant/sqlite-kd/point"
)

func newTestDataset(t *testing.T, dims int, opts ...Option) *Dataset {
	t.Helper()
	db, err := engine.Open(":memory:")
	if err != nil {
		t.Fatalf("engine.Open(:memory:) failed: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	ds, err := NewDataset(db, dims, opts...)
	if err != nil {
		t.Fatalf("NewDataset failed: %v", err)
	}
	return ds
}

func TestDataset_WithinAndPairs(t *testing.T) {
	ctx := context.Background()
	ds := newTestDataset(t, 2)

	err := ds.Upsert(ctx, []point.Record{
		{ID: "origin", Coords: []float32{0, 0}},
		{ID: "near", Coords: []float32{3, 4}},
		{ID: "far", Coords: []float32{100, 100}},
	})
	if err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	n, err := ds.Size(ctx)
	if err != nil {
		t.Fatalf("Size failed: %v", err)
	}
	if n != 3 {
		t.Fatalf("Size = %d, want 3", n)
	}

	hits, err := ds.Within(ctx, []float32{0, 0}, 5)
	if err != nil {
		t.Fatalf("Within failed: %v", err)
	}
	got := make(map[string]float32, len(hits))
	for _, h := range hits {
		got[h.ID] = h.Distance
	}
	if len(got) != 2 {
		t.Fatalf("Within returned %v, want origin and near", got)
	}
	if got["origin"] != 0 {
		t.Errorf("origin distance = %v, want 0", got["origin"])
	}
	if got["near"] != 5 {
		t.Errorf("near distance = %v, want 5", got["near"])
	}

	edges, err := ds.Pairs(ctx, 5)
	if err != nil {
		t.Fatalf("Pairs failed: %v", err)
	}
	if len(edges) != 1 {
		t.Fatalf("Pairs returned %d edges, want 1: %v", len(edges), edges)
	}
	if edges[0].A != "origin" || edges[0].B != "near" {
		t.Errorf("edge = (%s, %s), want (origin, near)", edges[0].A, edges[0].B)
	}
	if edges[0].Distance != 5 {
		t.Errorf("edge distance = %v, want 5", edges[0].Distance)
	}
}

func TestDataset_RemoveInvalidatesIndex(t *testing.T) {
	ctx := context.Background()
	ds := newTestDataset(t, 2)

	err := ds.Upsert(ctx, []point.Record{
		{ID: "a", Coords: []float32{0, 0}},
		{ID: "b", Coords: []float32{1, 0}},
		{ID: "c", Coords: []float32{2, 0}},
	})
	if err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	// Build once, then remove the middle point and query again.
	if _, err := ds.Within(ctx, []float32{0, 0}, 10); err != nil {
		t.Fatalf("Within failed: %v", err)
	}
	if err := ds.Remove(ctx, "b"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}

	hits, err := ds.Within(ctx, []float32{0, 0}, 10)
	if err != nil {
		t.Fatalf("Within after remove failed: %v", err)
	}
	ids := make([]string, 0, len(hits))
	for _, h := range hits {
		ids = append(ids, h.ID)
	}
	sort.Strings(ids)
	if len(ids) != 2 || ids[0] != "a" || ids[1] != "c" {
		t.Fatalf("Within after remove returned %v, want [a c]", ids)
	}

	n, err := ds.Size(ctx)
	if err != nil {
		t.Fatalf("Size failed: %v", err)
	}
	if n != 2 {
		t.Fatalf("Size after remove = %d, want 2", n)
	}
}

func TestDataset_ParallelQueries(t *testing.T) {
	ctx := context.Background()
	ds := newTestDataset(t, 3, WithParallelQueries())

	recs := make([]point.Record, 0, 64)
	for i := 0; i < 64; i++ {
		recs = append(recs, point.Record{
			ID:     string(rune('a'+i%26)) + string(rune('0'+i/26)),
			Coords: []float32{float32(i % 8), float32((i / 8) % 8), float32(i % 3)},
		})
	}
	if err := ds.Upsert(ctx, recs); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	edges, err := ds.Pairs(ctx, 1.5)
	if err != nil {
		t.Fatalf("Pairs failed: %v", err)
	}
	for _, e := range edges {
		if e.A == e.B {
			t.Fatalf("Pairs reported a self edge: %v", e)
		}
		if e.Distance > 1.5 {
			t.Fatalf("edge %v exceeds the radius", e)
		}
	}
	if len(edges) == 0 {
		t.Fatalf("expected at least one edge on a dense grid")
	}
}

func TestDataset_EmptyStore(t *testing.T) {
	ctx := context.Background()
	ds := newTestDataset(t, 2)

	hits, err := ds.Within(ctx, []float32{0, 0}, 1)
	if err != nil {
		t.Fatalf("Within on empty dataset failed: %v", err)
	}
	if len(hits) != 0 {
		t.Fatalf("Within on empty dataset returned %v", hits)
	}

	edges, err := ds.Pairs(ctx, 1)
	if err != nil {
		t.Fatalf("Pairs on empty dataset failed: %v", err)
	}
	if len(edges) != 0 {
		t.Fatalf("Pairs on empty dataset returned %v", edges)
	}
}
