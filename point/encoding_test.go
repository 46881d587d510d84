package point

import "testing"

func TestEncodeDecodeCoords_RoundTrip(t *testing.T) {
	orig := []float32{0.0, 1.5, -2.25}

	b, err := EncodeCoords(orig)
	if err != nil {
		t.Fatalf("EncodeCoords failed: %v", err)
	}

	decoded, err := DecodeCoords(b)
	if err != nil {
		t.Fatalf("DecodeCoords failed: %v", err)
	}
	if len(decoded) != len(orig) {
		t.Fatalf("decoded length = %d, want %d", len(decoded), len(orig))
	}
	for i := range orig {
		if got, want := decoded[i], orig[i]; got != want {
			t.Fatalf("decoded[%d] = %v, want %v", i, got, want)
		}
	}
}

func TestEncodeDecodeCoords_Empty(t *testing.T) {
	b, err := EncodeCoords(nil)
	if err != nil {
		t.Fatalf("EncodeCoords(nil) failed: %v", err)
	}
	if len(b) != 0 {
		t.Fatalf("expected empty blob for nil slice, got len=%d", len(b))
	}

	coords, err := DecodeCoords(nil)
	if err != nil {
		t.Fatalf("DecodeCoords(nil) failed: %v", err)
	}
	if len(coords) != 0 {
		t.Fatalf("expected empty slice for nil blob, got len=%d", len(coords))
	}
}

func TestDecodeCoords_RejectsBadLength(t *testing.T) {
	if _, err := DecodeCoords([]byte{1, 2, 3}); err == nil {
		t.Fatalf("expected error for blob length not a multiple of 4")
	}
}
