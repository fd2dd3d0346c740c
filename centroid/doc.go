// Package centroid holds the reference cluster centers password masks are
// compared against.
//
// A Matrix is an immutable, ordered set of rows that are each mask.Width wide.
// Tables are produced offline by hierarchical clustering of password masks and
// shipped as text, one row per line:
//
//	1.249,1.287,1.268,0.848,0.346,0.0,...
//
// Loader reads tables from any blobstore.BlobStore. Compressed (".zst",
// ".lz4") and JSON (".json") variants are recognized by name. Bundled returns
// the table embedded in this package.
//
// # Nearest Centroid
//
//	m, _ := centroid.NewLoader().Load(ctx, centroid.Bundled(), centroid.BundledName)
//	_, dist, err := m.Nearest(mask.Encode("hunter2").Float64s())
package centroid
