package engine

import (
	"database/sql"
	"database/sql/driver"
	"encoding/binary"
	"fmt"
	"math"

	sqlite "modernc.org/sqlite"
)

// RegisterPointFunctions registers point_l2 and point_l2sq with the driver so
// they are available on new connections opened after this call. Both take two
// coordinate BLOBs and return a REAL: point_l2 the Euclidean distance,
// point_l2sq the squared distance (for WHERE clauses that compare against a
// squared threshold and skip the square root).
// Note: existing open connections will not see new functions.
func RegisterPointFunctions(_ *sql.DB) error {
	// Idempotent registration; driver rejects duplicates but we ignore errors silently here.
	_ = sqlite.RegisterDeterministicScalarFunction("point_l2", 2, pointL2Impl)
	_ = sqlite.RegisterDeterministicScalarFunction("point_l2sq", 2, pointL2SqImpl)
	return nil
}

func asCoords(arg driver.Value) ([]float32, error) {
	switch v := arg.(type) {
	case nil:
		return nil, nil
	case []byte:
		return decodeCoords(v)
	default:
		return nil, fmt.Errorf("point: unsupported argument type %T for coords; want BLOB", arg)
	}
}

func pointL2Impl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("point_l2: expected 2 arguments, got %d", len(args))
	}
	a, err := asCoords(args[0])
	if err != nil {
		return nil, err
	}
	b, err := asCoords(args[1])
	if err != nil {
		return nil, err
	}
	if a == nil || b == nil {
		return nil, nil
	}
	sq, err := l2sq(a, b)
	if err != nil {
		return nil, err
	}
	return math.Sqrt(sq), nil
}

func pointL2SqImpl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("point_l2sq: expected 2 arguments, got %d", len(args))
	}
	a, err := asCoords(args[0])
	if err != nil {
		return nil, err
	}
	b, err := asCoords(args[1])
	if err != nil {
		return nil, err
	}
	if a == nil || b == nil {
		return nil, nil
	}
	return l2sq(a, b)
}

// Local minimal helpers to avoid import cycles in tests.
func decodeCoords(b []byte) ([]float32, error) {
	if len(b) == 0 {
		return nil, nil
	}
	if len(b)%4 != 0 {
		return nil, fmt.Errorf("point: invalid coords blob length %d", len(b))
	}
	n := len(b) / 4
	v := make([]float32, n)
	for i := 0; i < n; i++ {
		v[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
	}
	return v, nil
}

func l2sq(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("point: L2 dim mismatch %d vs %d", len(a), len(b))
	}
	var sum float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return sum, nil
}
