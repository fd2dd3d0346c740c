package centroid

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/hupe1980/maskscore/blobstore"
	"github.com/hupe1980/maskscore/codec"
	"github.com/hupe1980/maskscore/resource"
)

// Loader reads centroid tables from blob stores.
type Loader struct {
	// Controller bounds concurrent loads and read throughput. Optional.
	Controller *resource.Controller
	// Codec decodes ".json" tables. Defaults to codec.Default.
	Codec codec.Codec
}

// NewLoader returns a Loader without resource limits.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads and parses the table stored under name.
//
// Open and read failures are reported as ErrSourceUnavailable, parse
// failures as ErrMalformedCentroidData. An empty table is returned as a
// Matrix with zero rows.
func (l *Loader) Load(ctx context.Context, store blobstore.BlobStore, name string) (*Matrix, error) {
	if err := l.Controller.AcquireLoad(ctx); err != nil {
		return nil, err
	}
	defer l.Controller.ReleaseLoad()

	raw, err := l.read(ctx, store, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSourceUnavailable, name, err)
	}

	compression, base := DetectCompression(name)
	data, err := decompress(raw, compression)
	if err != nil {
		return nil, &MalformedDataError{cause: fmt.Errorf("decompress %s: %w", name, err)}
	}

	if strings.EqualFold(path.Ext(base), ".json") {
		return ParseJSON(data, l.Codec)
	}
	return Parse(bytes.NewReader(data))
}

func (l *Loader) read(ctx context.Context, store blobstore.BlobStore, name string) ([]byte, error) {
	blob, err := store.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer func() { _ = blob.Close() }()

	if l.Controller.IOBurst() == 0 {
		return blobstore.ReadAll(ctx, blob)
	}

	if blob.Size() == 0 {
		return []byte{}, nil
	}
	r, err := blob.ReadRange(ctx, 0, blob.Size())
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()
	return io.ReadAll(resource.NewRateLimitedReader(ctx, r, l.Controller))
}
