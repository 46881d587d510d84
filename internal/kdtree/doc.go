// Package kdtree implements the balanced k-d tree backing the public index
// packages. It is generic over the coordinate array type so the 2-D and 3-D
// code paths share one implementation without giving up fixed-size points.
package kdtree
