package kdutil

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/viant/sqlite-kd/index/kd"
	"github.com/viant/sqlite-kd/point"
)

// Dataset provides a higher-level API over a SQLite point table and a k-d
// index derived from it: upsert coordinates, then run radius or pair queries
// that report point IDs instead of positional indices.
//
// The index is built lazily from the table on first query and cached; any
// write through the Dataset marks it stale so the next query rebuilds it.
// The underlying index is build-once; there is no incremental update.
type Dataset struct {
	db       *sql.DB
	store    *point.SQLiteStore
	dims     int
	parallel bool
	kdOpts   []kd.Option

	mu    sync.Mutex
	idx   *kd.Index
	ids   []string
	stale bool
}

// Option configures a Dataset at construction time.
type Option func(*Dataset)

// WithParallelQueries makes the dataset run its radius and pair queries in
// the index's parallel mode.
func WithParallelQueries() Option {
	return func(d *Dataset) { d.parallel = true }
}

// WithIndexOptions forwards options to the underlying index whenever it is
// (re)built, e.g. kd.WithParallelism for a fixed worker count.
func WithIndexOptions(opts ...kd.Option) Option {
	return func(d *Dataset) { d.kdOpts = opts }
}

// Neighbor is a single radius-query hit resolved to a point ID.
type Neighbor struct {
	ID       string
	Distance float32
}

// Edge is a single pair-enumeration hit resolved to point IDs. The (A, B)
// order follows the stored insertion order of the two points.
type Edge struct {
	A        string
	B        string
	Distance float32
}

// NewDataset constructs a Dataset over the provided database for points of
// the given dimensionality (2 or 3). It ensures the points table exists.
func NewDataset(db *sql.DB, dimensions int, opts ...Option) (*Dataset, error) {
	if db == nil {
		return nil, fmt.Errorf("kdutil: db is nil")
	}
	store, err := point.NewSQLiteStore(db, dimensions)
	if err != nil {
		return nil, err
	}
	d := &Dataset{db: db, store: store, dims: dimensions, stale: true}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Upsert inserts or replaces points and invalidates the cached index.
func (d *Dataset) Upsert(ctx context.Context, recs []point.Record) error {
	if _, err := d.store.AddPoints(ctx, recs); err != nil {
		return err
	}
	d.invalidate()
	return nil
}

// Remove deletes a point by ID and invalidates the cached index.
func (d *Dataset) Remove(ctx context.Context, id string) error {
	if err := d.store.Remove(ctx, id); err != nil {
		return err
	}
	d.invalidate()
	return nil
}

func (d *Dataset) invalidate() {
	d.mu.Lock()
	d.stale = true
	d.mu.Unlock()
}

// ensure returns the current index and the ID table mapping positional
// indices back to point IDs, rebuilding both from storage when stale.
func (d *Dataset) ensure(ctx context.Context) (*kd.Index, []string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.stale && d.idx != nil {
		return d.idx, d.ids, nil
	}
	recs, err := d.store.LoadPoints(ctx)
	if err != nil {
		return nil, nil, err
	}
	ids := make([]string, len(recs))
	pts := make([][]float32, len(recs))
	for i, r := range recs {
		ids[i] = r.ID
		pts[i] = r.Coords
	}
	idx, err := kd.New(d.dims, pts, d.kdOpts...)
	if err != nil {
		return nil, nil, err
	}
	d.idx, d.ids, d.stale = idx, ids, false
	return idx, ids, nil
}

// Within returns the IDs of all stored points within distance of coords
// (closed ball), in no particular order. A stored point equal to coords is
// included at distance 0.
func (d *Dataset) Within(ctx context.Context, coords []float32, distance float32) ([]Neighbor, error) {
	idx, ids, err := d.ensure(ctx)
	if err != nil {
		return nil, err
	}
	matches, err := idx.Within(distance, [][]float32{coords}, d.parallel)
	if err != nil {
		return nil, err
	}
	out := make([]Neighbor, 0, len(matches))
	for _, m := range matches {
		out = append(out, Neighbor{ID: ids[m.PointIndex], Distance: m.Distance})
	}
	return out, nil
}

// Pairs returns every unordered pair of stored points within distance of
// each other, each reported exactly once with IDs in stored order.
func (d *Dataset) Pairs(ctx context.Context, distance float32) ([]Edge, error) {
	idx, ids, err := d.ensure(ctx)
	if err != nil {
		return nil, err
	}
	pairs, err := idx.Pairs(distance, d.parallel)
	if err != nil {
		return nil, err
	}
	out := make([]Edge, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, Edge{A: ids[p.I], B: ids[p.J], Distance: p.Distance})
	}
	return out, nil
}

// Size returns the number of points currently indexed (after any pending
// rebuild).
func (d *Dataset) Size(ctx context.Context) (int, error) {
	idx, _, err := d.ensure(ctx)
	if err != nil {
		return 0, err
	}
	return idx.Size(), nil
}
