package bruteforce

import (
	"encoding/binary"
	"errors"
	"math"
)

// Encode stores: dims(uint32), n(uint32), then n*dims little-endian float32
// coordinates in point order. It is the canonical persistence format for all
// index implementations in this module; tree-based indexes rebuild their
// structure from it on load.
func Encode(dims int, points [][]float32) []byte {
	out := make([]byte, 0, 8+4*dims*len(points))
	putU32 := func(v uint32) {
		b := make([]byte, 4)
		binary.LittleEndian.PutUint32(b, v)
		out = append(out, b...)
	}
	putF32 := func(v float32) {
		b := make([]byte, 4)
		binary.LittleEndian.PutUint32(b, math.Float32bits(v))
		out = append(out, b...)
	}
	putU32(uint32(dims))
	putU32(uint32(len(points)))
	for _, p := range points {
		for j := 0; j < dims; j++ {
			putF32(p[j])
		}
	}
	return out
}

// Decode restores the dimensionality and point set from bytes produced by
// Encode.
func Decode(data []byte) (int, [][]float32, error) {
	if len(data) < 8 {
		return 0, nil, errors.New("bruteforce: invalid data")
	}
	off := 0
	getU32 := func() uint32 {
		v := binary.LittleEndian.Uint32(data[off : off+4])
		off += 4
		return v
	}
	dims := int(getU32())
	n := int(getU32())
	if dims < 1 || dims > 3 {
		return 0, nil, errors.New("bruteforce: invalid dimensionality in header")
	}
	if len(data) != 8+4*dims*n {
		return 0, nil, errors.New("bruteforce: truncated data")
	}
	pts := make([][]float32, n)
	for i := 0; i < n; i++ {
		p := make([]float32, dims)
		for j := 0; j < dims; j++ {
			p[j] = math.Float32frombits(getU32())
		}
		pts[i] = p
	}
	return dims, pts, nil
}
