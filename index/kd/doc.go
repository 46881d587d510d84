// Package kd implements the module's primary spatial index: a balanced k-d
// tree over 2-D or 3-D float32 points with radius search, pair enumeration,
// and optional chunked parallel query execution.
package kd
