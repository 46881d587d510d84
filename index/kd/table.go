package kd

import (
	"math"

	"github.com/viant/sqlite-kd/index"
	"github.com/viant/sqlite-kd/internal/kdtree"
)

// table binds the generic tree to one coordinate array type. All query state
// is per-call; the tree and its points are shared read-only across workers.
type table[P kdtree.Coord] struct {
	tree *kdtree.Tree[P]
}

func newTable[P kdtree.Coord](rows [][]float32) *table[P] {
	pts := make([]P, len(rows))
	for i, row := range rows {
		var p P
		for j := 0; j < len(p); j++ {
			p[j] = row[j]
		}
		pts[i] = p
	}
	return &table[P]{tree: kdtree.New(pts)}
}

func (t *table[P]) size() int { return t.tree.Size() }

func (t *table[P]) rows() [][]float32 {
	out := make([][]float32, t.tree.Size())
	for i := range out {
		p := t.tree.Point(int32(i))
		row := make([]float32, len(p))
		for j := 0; j < len(p); j++ {
			row[j] = p[j]
		}
		out[i] = row
	}
	return out
}

func (t *table[P]) within(maxSq float32, queries [][]float32, workers int) ([]index.Match, error) {
	return collectChunked(len(queries), workers, func(qi int) []index.Match {
		var q P
		row := queries[qi]
		for j := 0; j < len(q); j++ {
			q[j] = row[j]
		}
		var local []index.Match
		t.tree.Within(q, maxSq, func(pi int32, sq float32) {
			local = append(local, index.Match{
				QueryIndex: qi,
				PointIndex: int(pi),
				Distance:   sqrt32(sq),
			})
		})
		return local
	})
}

func (t *table[P]) pairs(maxSq float32, workers int) ([]index.Pair, error) {
	return collectChunked(t.tree.Size(), workers, func(i int) []index.Pair {
		var local []index.Pair
		t.tree.Within(t.tree.Point(int32(i)), maxSq, func(j int32, sq float32) {
			if int(j) > i {
				local = append(local, index.Pair{I: i, J: int(j), Distance: sqrt32(sq)})
			}
		})
		return local
	})
}

func sqrt32(v float32) float32 { return float32(math.Sqrt(float64(v))) }
