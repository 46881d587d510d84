package kdtree

import "sort"

// Tree is a balanced k-d tree over a fixed point set. It is built once from
// the complete set and never mutated afterwards, so any number of concurrent
// readers may traverse it without locking.
type Tree[P Coord] struct {
	pts  []P
	root *node
}

// node splits its subtree on a single axis at the coordinate of the stored
// point. Points with a smaller or equal coordinate live on the left, points
// with a greater or equal coordinate on the right.
type node struct {
	idx   int32
	axis  int8
	split float32
	left  *node
	right *node
}

// New builds a tree over pts using recursive median splits, cycling the
// split axis with depth. The slice is retained as the backing point store;
// positions in pts are the identities reported by Within.
func New[P Coord](pts []P) *Tree[P] {
	t := &Tree[P]{pts: pts}
	if len(pts) == 0 {
		return t
	}
	idxs := make([]int32, len(pts))
	for i := range idxs {
		idxs[i] = int32(i)
	}
	t.root = t.build(idxs, 0)
	return t
}

func (t *Tree[P]) build(idxs []int32, depth int) *node {
	if len(idxs) == 0 {
		return nil
	}
	var zero P
	axis := depth % len(zero)
	sort.Slice(idxs, func(a, b int) bool {
		return t.pts[idxs[a]][axis] < t.pts[idxs[b]][axis]
	})
	mid := len(idxs) / 2
	n := &node{
		idx:   idxs[mid],
		axis:  int8(axis),
		split: t.pts[idxs[mid]][axis],
	}
	n.left = t.build(idxs[:mid], depth+1)
	n.right = t.build(idxs[mid+1:], depth+1)
	return n
}

// Size returns the number of stored points.
func (t *Tree[P]) Size() int { return len(t.pts) }

// Point returns the stored point at position i.
func (t *Tree[P]) Point(i int32) P { return t.pts[i] }

// Within invokes emit for every stored point whose squared distance to query
// is at most maxSq (closed ball). Emission order is an implementation detail.
func (t *Tree[P]) Within(query P, maxSq float32, emit func(idx int32, sqDist float32)) {
	t.within(t.root, query, maxSq, emit)
}

func (t *Tree[P]) within(n *node, query P, maxSq float32, emit func(int32, float32)) {
	if n == nil {
		return
	}
	if d := SquaredDistance(query, t.pts[n.idx]); d <= maxSq {
		emit(n.idx, d)
	}
	// Descend the near side unconditionally; the far side only if the
	// splitting plane is within the search radius.
	delta := query[n.axis] - n.split
	if delta <= 0 {
		t.within(n.left, query, maxSq, emit)
		if delta*delta <= maxSq {
			t.within(n.right, query, maxSq, emit)
		}
	} else {
		t.within(n.right, query, maxSq, emit)
		if delta*delta <= maxSq {
			t.within(n.left, query, maxSq, emit)
		}
	}
}
