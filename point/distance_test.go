package point

import "testing"

func TestDistance(t *testing.T) {
	a := []float32{0, 0}
	b := []float32{3, 4}

	d, err := Distance(a, b)
	if err != nil {
		t.Fatalf("Distance failed: %v", err)
	}
	if d != 5 {
		t.Fatalf("Distance(0,0)-(3,4) = %v, want 5", d)
	}
}

func TestSquaredDistance(t *testing.T) {
	sq, err := SquaredDistance([]float32{1, 2, 3}, []float32{1, 2, 3})
	if err != nil {
		t.Fatalf("SquaredDistance failed: %v", err)
	}
	if sq != 0 {
		t.Fatalf("SquaredDistance of identical points = %v, want 0", sq)
	}

	sq, err = SquaredDistance([]float32{0, 0}, []float32{3, 4})
	if err != nil {
		t.Fatalf("SquaredDistance failed: %v", err)
	}
	if sq != 25 {
		t.Fatalf("SquaredDistance(0,0)-(3,4) = %v, want 25", sq)
	}
}

func TestDistance_DimensionMismatch(t *testing.T) {
	if _, err := Distance([]float32{1, 2}, []float32{1, 2, 3}); err == nil {
		t.Fatalf("expected error for mismatched lengths")
	}
}
