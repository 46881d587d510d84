// Package bruteforce provides an exhaustive-scan spatial index. It preserves
// the same API as the tree-backed implementation so callers can swap it in
// for small point sets or for cross-checking, and it owns the binary
// point-set encoding shared by all implementations.
package bruteforce
