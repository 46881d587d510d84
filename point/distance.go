package point

import (
	"fmt"
	"math"
)

// SquaredDistance computes the squared Euclidean distance between two
// coordinate slices. It returns an error if the slices have different
// lengths. Comparing squared distances avoids the square root when only an
// ordering or threshold test is needed.
func SquaredDistance(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("point: squared distance dimension mismatch: %d vs %d", len(a), len(b))
	}
	var sum float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return sum, nil
}

// Distance computes the Euclidean distance between two coordinate slices. It
// returns an error if the slices have different lengths.
func Distance(a, b []float32) (float64, error) {
	sum, err := SquaredDistance(a, b)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(sum), nil
}
