package bruteforce

import (
	"fmt"

	"github.com/viant/sqlite-kd/index"
	"github.com/viant/vec/search"
)

// Index is an exhaustive-scan spatial index. Every query compares the full
// point set, which keeps it trivially correct; it doubles as the reference
// implementation the tree index is checked against and as the owner of the
// on-disk encoding.
type Index struct {
	dims int
	pts  [][]float32
}

// New builds a brute-force index over points.
func New(dimensions int, points [][]float32) (*Index, error) {
	ix := &Index{}
	if err := ix.Build(dimensions, points); err != nil {
		return nil, err
	}
	return ix, nil
}

// Build loads the point set, validating dimensionality.
func (i *Index) Build(dimensions int, points [][]float32) error {
	if dimensions != 2 && dimensions != 3 {
		return fmt.Errorf("bruteforce: got dimensions %d: %w", dimensions, index.ErrInvalidDimensions)
	}
	for j := range points {
		if len(points[j]) != dimensions {
			return fmt.Errorf("bruteforce: point %d has %d coordinates, want %d: %w",
				j, len(points[j]), dimensions, index.ErrDimensionMismatch)
		}
	}
	i.dims = dimensions
	i.pts = append([][]float32(nil), points...)
	return nil
}

// Within scans all indexed points for each query point and keeps those within
// distance (closed ball). The parallel flag is accepted for interface parity
// and ignored: the scan is memory-bound and fan-out does not pay for itself.
func (i *Index) Within(distance float32, queries [][]float32, parallel bool) ([]index.Match, error) {
	_ = parallel
	if i.dims == 0 {
		return nil, fmt.Errorf("bruteforce: %w", index.ErrNotBuilt)
	}
	for qi := range queries {
		if len(queries[qi]) != i.dims {
			return nil, fmt.Errorf("bruteforce: query %d has %d coordinates, index has %d: %w",
				qi, len(queries[qi]), i.dims, index.ErrDimensionMismatch)
		}
	}
	var out []index.Match
	for qi, q := range queries {
		for pi, p := range i.pts {
			if d := search.Float32s(q).EuclideanDistance(p); d <= distance {
				out = append(out, index.Match{QueryIndex: qi, PointIndex: pi, Distance: d})
			}
		}
	}
	return out, nil
}

// Pairs scans all unordered point pairs and keeps those within distance.
func (i *Index) Pairs(distance float32, parallel bool) ([]index.Pair, error) {
	_ = parallel
	if i.dims == 0 {
		return nil, fmt.Errorf("bruteforce: %w", index.ErrNotBuilt)
	}
	var out []index.Pair
	for a := 0; a < len(i.pts); a++ {
		for b := a + 1; b < len(i.pts); b++ {
			if d := search.Float32s(i.pts[a]).EuclideanDistance(i.pts[b]); d <= distance {
				out = append(out, index.Pair{I: a, J: b, Distance: d})
			}
		}
	}
	return out, nil
}

// Size returns the number of indexed points.
func (i *Index) Size() int { return len(i.pts) }

// Dimensions returns the index dimensionality, or 0 before Build.
func (i *Index) Dimensions() int { return i.dims }

// MarshalBinary serializes the point set using Encode.
func (i *Index) MarshalBinary() ([]byte, error) {
	if i.dims == 0 {
		return nil, fmt.Errorf("bruteforce: %w", index.ErrNotBuilt)
	}
	return Encode(i.dims, i.pts), nil
}

// UnmarshalBinary restores the index from bytes produced by Encode.
func (i *Index) UnmarshalBinary(data []byte) error {
	dims, pts, err := Decode(data)
	if err != nil {
		return err
	}
	return i.Build(dims, pts)
}

var _ index.Index = (*Index)(nil)
