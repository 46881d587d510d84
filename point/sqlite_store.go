package point

import (
	"context"
	"database/sql"
	"fmt"
)

// SQLiteStore implements Store on top of a SQLite database. Points load in
// rowid order; because SQLite preserves a row's rowid across upserts, a
// point keeps its position (and therefore its index identity) when its
// coordinates are replaced.
type SQLiteStore struct {
	db   *sql.DB
	dims int
}

// NewSQLiteStore creates a SQLite-backed Store for points of the given
// dimensionality. It ensures the points table exists in the provided
// database.
func NewSQLiteStore(db *sql.DB, dims int) (*SQLiteStore, error) {
	if db == nil {
		return nil, fmt.Errorf("point: db is nil")
	}
	if dims != 2 && dims != 3 {
		return nil, fmt.Errorf("point: unsupported dimensionality %d", dims)
	}
	if err := EnsureSchema(db); err != nil {
		return nil, err
	}
	return &SQLiteStore{db: db, dims: dims}, nil
}

// AddPoints upserts records into the points table. Record.ID must be
// non-empty, and every record's coordinate count must match the store's
// dimensionality.
func (s *SQLiteStore) AddPoints(ctx context.Context, recs []Record) ([]string, error) {
	if len(recs) == 0 {
		return nil, nil
	}
	if ctx == nil {
		ctx = context.Background()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
INSERT INTO points(id, dims, coords) VALUES(?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  dims = excluded.dims,
  coords = excluded.coords`)
	if err != nil {
		return nil, err
	}
	defer stmt.Close()

	ids := make([]string, 0, len(recs))
	for _, r := range recs {
		if r.ID == "" {
			return nil, fmt.Errorf("point: Record.ID must be set in AddPoints")
		}
		if len(r.Coords) != s.dims {
			return nil, fmt.Errorf("point: record %q has %d coordinates, store has %d", r.ID, len(r.Coords), s.dims)
		}
		blob, err := EncodeCoords(r.Coords)
		if err != nil {
			return nil, err
		}
		if _, err := stmt.ExecContext(ctx, r.ID, s.dims, blob); err != nil {
			return nil, err
		}
		ids = append(ids, r.ID)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return ids, nil
}

// LoadPoints returns all stored records in rowid (insertion) order, decoding
// and validating each coordinate BLOB against the store's dimensionality.
func (s *SQLiteStore) LoadPoints(ctx context.Context) ([]Record, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	rows, err := s.db.QueryContext(ctx, `SELECT id, coords FROM points ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var r Record
		var blob []byte
		if err := rows.Scan(&r.ID, &blob); err != nil {
			return nil, err
		}
		if r.Coords, err = DecodeCoords(blob); err != nil {
			return nil, err
		}
		if len(r.Coords) != s.dims {
			return nil, fmt.Errorf("point: stored record %q has %d coordinates, store has %d", r.ID, len(r.Coords), s.dims)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Remove deletes a point by ID from the points table.
func (s *SQLiteStore) Remove(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("point: Remove called with empty id")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	_, err := s.db.ExecContext(ctx, `DELETE FROM points WHERE id = ?`, id)
	return err
}

// Ensure SQLiteStore satisfies the Store interface.
var _ Store = (*SQLiteStore)(nil)
