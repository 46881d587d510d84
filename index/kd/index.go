package kd

import (
	"fmt"

	"github.com/viant/sqlite-kd/index"
	"github.com/viant/sqlite-kd/index/bruteforce"
)

// Index is a k-d tree spatial index over a fixed set of 2-D or 3-D float32
// points. It is built once and immutable afterwards: concurrent queries
// against the same instance are always safe, including the internal fan-out
// of parallel calls.
//
// The zero value is unusable until Build is called; New is the usual entry
// point.
type Index struct {
	dims    int
	workers int
	impl    searcher
}

// searcher is the dimension-erased view over the generic tree. Exactly one
// instantiation backs an index; its dimensionality never changes.
type searcher interface {
	size() int
	rows() [][]float32
	within(maxSq float32, queries [][]float32, workers int) ([]index.Match, error)
	pairs(maxSq float32, workers int) ([]index.Pair, error)
}

// New builds an index over points with the given dimensionality (2 or 3).
// An empty point set is legal and yields an index that answers every query
// with an empty result.
func New(dimensions int, points [][]float32, opts ...Option) (*Index, error) {
	ix := &Index{}
	for _, opt := range opts {
		opt(ix)
	}
	if err := ix.Build(dimensions, points); err != nil {
		return nil, err
	}
	return ix, nil
}

// Build constructs the tree from points. The input order is retained: the
// position of a point in points is the PointIndex reported by queries.
func (ix *Index) Build(dimensions int, points [][]float32) error {
	if dimensions != 2 && dimensions != 3 {
		return fmt.Errorf("kd: got dimensions %d: %w", dimensions, index.ErrInvalidDimensions)
	}
	for i := range points {
		if len(points[i]) != dimensions {
			return fmt.Errorf("kd: point %d has %d coordinates, want %d: %w",
				i, len(points[i]), dimensions, index.ErrDimensionMismatch)
		}
	}
	ix.dims = dimensions
	switch dimensions {
	case 2:
		ix.impl = newTable[[2]float32](points)
	case 3:
		ix.impl = newTable[[3]float32](points)
	}
	return nil
}

// Within returns every indexed point within distance of each query point as
// (QueryIndex, PointIndex, Distance) records. The ball is closed: a point at
// exactly the threshold distance is included, and a query coinciding with an
// indexed point matches it at distance 0. Result order is unspecified.
//
// The threshold is squared once per call and all tree comparisons happen in
// squared space; the square root is taken once per emitted match.
func (ix *Index) Within(distance float32, queries [][]float32, parallel bool) ([]index.Match, error) {
	if ix.impl == nil {
		return nil, fmt.Errorf("kd: %w", index.ErrNotBuilt)
	}
	for qi := range queries {
		if len(queries[qi]) != ix.dims {
			return nil, fmt.Errorf("kd: query %d has %d coordinates, index has %d: %w",
				qi, len(queries[qi]), ix.dims, index.ErrDimensionMismatch)
		}
	}
	return ix.impl.within(distance*distance, queries, ix.effectiveWorkers(parallel))
}

// Pairs returns every unordered pair of indexed points within distance of
// each other, each reported exactly once with I < J. Logically it runs a
// radius search from every indexed point against the same tree and keeps
// only matches J > I, which dedupes the symmetric search without a seen-set
// and makes self-pairs structurally impossible.
func (ix *Index) Pairs(distance float32, parallel bool) ([]index.Pair, error) {
	if ix.impl == nil {
		return nil, fmt.Errorf("kd: %w", index.ErrNotBuilt)
	}
	return ix.impl.pairs(distance*distance, ix.effectiveWorkers(parallel))
}

// Size returns the number of indexed points.
func (ix *Index) Size() int {
	if ix.impl == nil {
		return 0
	}
	return ix.impl.size()
}

// Dimensions returns the fixed dimensionality of the index, or 0 before
// Build.
func (ix *Index) Dimensions() int { return ix.dims }

// MarshalBinary serializes the point set in the bruteforce encoding. The
// tree shape itself is not persisted; UnmarshalBinary rebuilds it.
func (ix *Index) MarshalBinary() ([]byte, error) {
	if ix.impl == nil {
		return nil, fmt.Errorf("kd: %w", index.ErrNotBuilt)
	}
	return bruteforce.Encode(ix.dims, ix.impl.rows()), nil
}

// UnmarshalBinary restores the point set from the bruteforce encoding and
// rebuilds the tree.
func (ix *Index) UnmarshalBinary(data []byte) error {
	dims, pts, err := bruteforce.Decode(data)
	if err != nil {
		return err
	}
	return ix.Build(dims, pts)
}

var _ index.Index = (*Index)(nil)
