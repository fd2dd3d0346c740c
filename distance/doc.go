// Package distance provides the vector distance calculations used to compare
// password masks against centroids.
//
// Vectors are float64 so that results match centroid tables produced by
// double-precision clustering tools bit for bit.
//
// # Usage
//
//	d2 := distance.SquaredL2(a, b)
//	d := distance.L2(a, b)
package distance
