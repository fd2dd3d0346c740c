// Package maskscore measures how typical the structure of a password is.
//
// A password is encoded into a mask of character classes (see package mask)
// and compared against centroids that were clustered offline from a large
// password corpus (see package centroid). The score is the Euclidean distance
// to the nearest centroid: smaller means a more common, weaker-looking shape.
//
// # Quick Start
//
//	ctx := context.Background()
//	s, _ := maskscore.Default(ctx)
//	d := s.Score("Isim@_Ariri07")
//
// Custom tables are loaded from any blobstore.BlobStore:
//
//	s, _ := maskscore.FromSource(ctx, maskscore.FileSource("/etc/maskscore/centers.csv.zst"))
//
// # Lifecycle
//
// A Scorer is built once and never changes. Scorers are safe for concurrent
// use. A Registry caches one Scorer per source identity and loads each source
// at most once, even under concurrent first use. The package-level functions
// use a process-wide Registry.
//
// Passwords are never logged or stored.
package maskscore
