package index

import "testing"

func TestDenseMatches(t *testing.T) {
	rows := DenseMatches([]Match{
		{QueryIndex: 0, PointIndex: 1, Distance: 5},
		{QueryIndex: 2, PointIndex: 0, Distance: 0.25},
	})
	if len(rows) != 2 {
		t.Fatalf("DenseMatches returned %d rows, want 2", len(rows))
	}
	if rows[0] != [3]float32{0, 1, 5} {
		t.Fatalf("rows[0] = %v, want [0 1 5]", rows[0])
	}
	if rows[1] != [3]float32{2, 0, 0.25} {
		t.Fatalf("rows[1] = %v, want [2 0 0.25]", rows[1])
	}
}

func TestDenseAdapters_EmptyYieldsZeroRowsNotNil(t *testing.T) {
	if rows := DenseMatches(nil); rows == nil || len(rows) != 0 {
		t.Fatalf("DenseMatches(nil) = %v, want non-nil empty", rows)
	}
	if rows := DensePairs(nil); rows == nil || len(rows) != 0 {
		t.Fatalf("DensePairs(nil) = %v, want non-nil empty", rows)
	}
}

func TestDensePairs(t *testing.T) {
	rows := DensePairs([]Pair{{I: 3, J: 7, Distance: 1.5}})
	if len(rows) != 1 || rows[0] != [3]float32{3, 7, 1.5} {
		t.Fatalf("DensePairs = %v, want [[3 7 1.5]]", rows)
	}
}
