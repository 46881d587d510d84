package index

import "errors"

// Sentinel errors shared by all index implementations. Call sites wrap them
// with context via fmt.Errorf("...: %w", ...), so callers can match with
// errors.Is.
var (
	// ErrInvalidDimensions reports a requested dimensionality outside {2, 3}.
	// Construction fails immediately; no partial index is produced.
	ErrInvalidDimensions = errors.New("index: dimensions must be 2 or 3")

	// ErrDimensionMismatch reports an input or query point whose coordinate
	// count disagrees with the index dimensionality. It is fatal to the
	// offending call only and never corrupts index state.
	ErrDimensionMismatch = errors.New("index: point dimension mismatch")

	// ErrNotBuilt reports a query against an index with no backing structure,
	// i.e. one that was never built. An index built from zero points is not
	// in this state; it answers queries with empty results.
	ErrNotBuilt = errors.New("index: index not built")
)
