package point

import (
	"database/sql"
)

const pointsSchema = `
CREATE TABLE IF NOT EXISTS points (
    id TEXT PRIMARY KEY,
    dims INTEGER NOT NULL,
    coords BLOB NOT NULL
);
`

// EnsureSchema creates the base points table in the provided database if it
// does not already exist. SQLite keeps rowids stable across updates, which is
// what makes rowid ordering a valid insertion-order contract for LoadPoints.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(pointsSchema)
	return err
}
