// Package kdutil ties SQLite point storage to the k-d index: a Dataset
// upserts coordinates into a points table, lazily rebuilds the index from it,
// and answers radius and pair queries with point IDs instead of positions.
package kdutil
