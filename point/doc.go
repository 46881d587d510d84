// Package point defines the coordinate model and SQLite-backed utilities
// used by this module. It includes:
//   - Record model and Store interface
//   - SQLiteStore: durable insertion-ordered storage for points
//   - Schema helpers to create a points table
//   - Coordinate encoding (BLOB) and distance functions
package point
