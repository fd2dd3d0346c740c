package blobstore

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
)

// ErrNotFound is returned when a blob does not exist.
//
// Implementations should return an error that satisfies `errors.Is(err, ErrNotFound)`.
// The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// BlobStore is an abstraction for accessing immutable data blobs.
type BlobStore interface {
	// Open opens a blob for reading.
	Open(ctx context.Context, name string) (Blob, error)
	// List returns all blob names with the given prefix, sorted.
	List(ctx context.Context, prefix string) ([]string, error)
}

// Blob is a read-only handle to a data blob.
type Blob interface {
	io.Closer
	// ReadAt reads len(p) bytes starting at offset off.
	ReadAt(ctx context.Context, p []byte, off int64) (int, error)
	// ReadRange returns a reader for length bytes starting at off.
	// It returns io.EOF if off is at or past the end of the blob.
	ReadRange(ctx context.Context, off, length int64) (io.ReadCloser, error)
	// Size returns the size of the blob in bytes.
	Size() int64
}

// Identifier is an optional interface for stores with a stable identity.
// Two stores with the same ID must serve the same blobs.
type Identifier interface {
	ID() string
}

// FullReader is an optional interface for Blobs that can fetch their whole
// content more efficiently than a single range read.
type FullReader interface {
	ReadAll(ctx context.Context) ([]byte, error)
}

// ID returns the identity of store. Stores that do not implement Identifier
// are identified by their dynamic type and address.
func ID(store BlobStore) string {
	if id, ok := store.(Identifier); ok {
		return id.ID()
	}
	return fmt.Sprintf("%T@%p", store, store)
}

// ReadAll reads the whole blob.
func ReadAll(ctx context.Context, b Blob) ([]byte, error) {
	if fr, ok := b.(FullReader); ok {
		return fr.ReadAll(ctx)
	}
	size := b.Size()
	if size == 0 {
		return []byte{}, nil
	}
	r, err := b.ReadRange(ctx, 0, size)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()

	var buf bytes.Buffer
	buf.Grow(int(size))
	if _, err := buf.ReadFrom(r); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
