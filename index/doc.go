// Package index defines the abstraction for fixed-dimension spatial point
// indexes: radius search, pair enumeration, and serialization for
// persistence. Implementations in this module include a k-d tree (index/kd)
// and a brute-force baseline (index/bruteforce).
package index
