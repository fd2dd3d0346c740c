// Package blobstore provides the storage abstraction centroid tables are read from.
//
// BlobStore is the interface for opening read-only data blobs by name.
// Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - LocalStore: local filesystem directory
//   - FSStore: any io/fs.FS, including embedded tables
//   - MemoryStore: in-memory blobs, mostly for tests
//   - s3.Store: Amazon S3
//   - minio.Store: MinIO and other S3-compatible storage
//
// # Custom Implementations
//
// Implement the BlobStore interface to support custom storage backends:
//
//	type BlobStore interface {
//	    Open(ctx, name) (Blob, error)
//	    List(ctx, prefix) ([]string, error)
//	}
//
// Stores that can name themselves should also implement Identifier so that
// callers can cache per-source state:
//
//	type Identifier interface {
//	    ID() string
//	}
package blobstore
