// Package testutil provides testing utilities for maskscore.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating random passwords and centroid tables,
// and for computing exact nearest centroids.
//
// # Random Data
//
//	rng := testutil.NewRNG(seed)
//	pw := rng.Password(12)                 // mixed character classes
//	rows := rng.CentroidRows(30, 28)       // values in [0, 7]
//
// # Exact Search (Ground Truth)
//
//	results := testutil.BruteForceNearest(rows, query, k)
package testutil
