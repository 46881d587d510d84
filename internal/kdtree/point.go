package kdtree

// Coord constrains the fixed-size coordinate arrays the tree operates on.
// Keeping coordinates in arrays (rather than slices) preserves value
// semantics and lets the compiler unroll the distance loop per
// instantiation.
type Coord interface {
	[2]float32 | [3]float32
}

// SquaredDistance returns the squared Euclidean distance between a and b.
// Traversal and filtering compare in squared space; callers take the square
// root only when a match is confirmed.
func SquaredDistance[P Coord](a, b P) float32 {
	var sum float32
	for i := 0; i < len(a); i++ {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}
