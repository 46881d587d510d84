package index

// Match is a single radius-search hit: the position of the query point in
// the query batch, the position of the matched point in the indexed set, and
// the true (non-squared) Euclidean distance between them. A query point that
// is itself indexed matches itself at distance 0.
type Match struct {
	QueryIndex int
	PointIndex int
	Distance   float32
}

// Pair is a single pair-enumeration hit. I < J always holds; each unordered
// pair is reported at most once.
type Pair struct {
	I        int
	J        int
	Distance float32
}

// Index defines a fixed-dimension spatial point index supporting radius
// search and pair enumeration. Implementations are built once from a complete
// point set and are safe for concurrent queries afterwards.
type Index interface {
	// Build constructs the index from the given points. dimensions must be 2
	// or 3 and every point must have exactly that many coordinates. An empty
	// point set yields a valid index that answers every query with an empty
	// result.
	Build(dimensions int, points [][]float32) error

	// Within returns every indexed point within distance of each query point
	// (closed ball), in no particular order. Results across query points may
	// interleave arbitrarily; only the result set is specified. When parallel
	// is true the query batch is processed on multiple workers, with a result
	// set identical to the serial run.
	Within(distance float32, queries [][]float32, parallel bool) ([]Match, error)

	// Pairs returns every unordered pair of indexed points within distance of
	// each other, each reported exactly once with I < J.
	Pairs(distance float32, parallel bool) ([]Pair, error)

	// Size returns the number of indexed points (0 for an empty index).
	Size() int

	// Dimensions returns the fixed dimensionality of the index (2 or 3).
	Dimensions() int

	// MarshalBinary serializes the indexed point set into a byte slice.
	MarshalBinary() ([]byte, error)

	// UnmarshalBinary reconstructs the index from a serialized byte slice.
	UnmarshalBinary(data []byte) error
}

// DenseMatches converts matches into dense [query_index, point_index,
// distance] rows with indices stored as float32, the layout used by numeric
// array pipelines. The result is never nil; an empty input yields zero rows.
func DenseMatches(matches []Match) [][3]float32 {
	rows := make([][3]float32, len(matches))
	for i, m := range matches {
		rows[i] = [3]float32{float32(m.QueryIndex), float32(m.PointIndex), m.Distance}
	}
	return rows
}

// DensePairs converts pairs into dense [index_i, index_j, distance] rows with
// indices stored as float32. The result is never nil; an empty input yields
// zero rows.
func DensePairs(pairs []Pair) [][3]float32 {
	rows := make([][3]float32, len(pairs))
	for i, p := range pairs {
		rows[i] = [3]float32{float32(p.I), float32(p.J), p.Distance}
	}
	return rows
}
