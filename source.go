package maskscore

import (
	"path/filepath"

	"github.com/hupe1980/maskscore/blobstore"
	"github.com/hupe1980/maskscore/centroid"
)

// Source locates a centroid table: a blob name inside a store.
type Source struct {
	Store blobstore.BlobStore
	Name  string
}

// BundledSource returns the table embedded in the binary.
func BundledSource() Source {
	return Source{Store: centroid.Bundled(), Name: centroid.BundledName}
}

// FileSource returns a source for a table on the local file system.
func FileSource(path string) Source {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return Source{
		Store: blobstore.NewLocalStore(filepath.Dir(abs)),
		Name:  filepath.Base(abs),
	}
}

// StoreSource returns a source for the blob name inside store.
func StoreSource(store blobstore.BlobStore, name string) Source {
	return Source{Store: store, Name: name}
}

// Key returns the identity of the source. Sources with equal keys serve the
// same table.
func (s Source) Key() string {
	if s.Store == nil {
		return s.Name
	}
	return blobstore.ID(s.Store) + "/" + s.Name
}

func (s Source) String() string {
	return s.Key()
}
