package point

import "context"

// Record is a stored point: a caller-assigned identifier plus its
// coordinates. Coordinates are immutable once stored as far as this module is
// concerned; replacing them means upserting the record and rebuilding any
// index derived from the store.
type Record struct {
	// ID is the logical identifier of the point.
	ID string

	// Coords holds the point coordinates; the length must match the
	// dimensionality the store was created with.
	Coords []float32
}

// Store defines durable storage for point sets. Load order is the contract
// that matters: implementations must return points in a stable insertion
// order, because a point's load position is the index identity used in query
// results.
type Store interface {
	// AddPoints upserts records into the store and returns their IDs.
	AddPoints(ctx context.Context, recs []Record) ([]string, error)

	// LoadPoints returns all stored records in insertion order.
	LoadPoints(ctx context.Context) ([]Record, error)

	// Remove deletes the point with the given ID.
	Remove(ctx context.Context, id string) error
}
